package adaptive

// Defaults for the single-stage noise cancellation workflow.
const (
	DefaultTapLength = 2
	DefaultStepSize  = 0.1
	DefaultLeakage   = 0.0001
)

// Defaults for the cascade denoising workflow.
const (
	DefaultCascadeTapLength = 32
	DefaultCascadeStepSize  = 0.01
	DefaultCascadeStages    = 2
)

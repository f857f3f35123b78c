package engine

// Gradient scale factors for the LMS update w += factor*mu*e*x.
const (
	doubledGradientFactor = 2.0
	unitGradientFactor    = 1.0
)

// Leaky-LMS stability bound: the per-update decay (1 - mu*lambda) must stay
// in (0, 1], so mu*lambda must stay below this.
const maxLeakProduct = 1.0

// Minimum configuration values.
const (
	minTapLength = 1
	minStages    = 1
)

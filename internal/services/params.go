package services

// Parameter structs carry exactly what each routine receives, in the order
// the routine takes them. The arg tag is the argument name the value came
// from.

// GradientTestParams configures the finite-difference gradient check.
type GradientTestParams struct {
	Epsilon float64 `arg:"epsilon"`
	Error   float64 `arg:"error"`
}

// NewtonParams configures Newton's method.
type NewtonParams struct {
	Iter           int  `arg:"iter"`
	SaveIterations bool `arg:"save_iterations"`
}

// BFGSParams configures BFGS with line search.
type BFGSParams struct {
	InitAlpha      float64 `arg:"init_alpha"`
	TolObj         float64 `arg:"tol_obj"`
	TolRelObj      float64 `arg:"tol_rel_obj"`
	TolGrad        float64 `arg:"tol_grad"`
	TolRelGrad     float64 `arg:"tol_rel_grad"`
	TolParam       float64 `arg:"tol_param"`
	Iter           int     `arg:"iter"`
	SaveIterations bool    `arg:"save_iterations"`
	Refresh        int     `arg:"refresh"`
}

// LBFGSParams configures limited-memory BFGS.
type LBFGSParams struct {
	HistorySize int `arg:"history_size"`
	BFGSParams
}

// FixedParamParams configures the fixed parameter sampler.
type FixedParamParams struct {
	NumSamples int `arg:"num_samples"`
	Thin       int `arg:"thin"`
	Refresh    int `arg:"refresh"`
}

// SamplingParams are shared by every HMC routine.
type SamplingParams struct {
	NumWarmup  int  `arg:"num_warmup"`
	NumSamples int  `arg:"num_samples"`
	Thin       int  `arg:"thin"`
	SaveWarmup bool `arg:"save_warmup"`
	Refresh    int  `arg:"refresh"`
}

// NUTSParams configures the No-U-Turn engine.
type NUTSParams struct {
	SamplingParams
	StepSize       float64 `arg:"stepsize"`
	StepSizeJitter float64 `arg:"stepsize_jitter"`
	MaxDepth       int     `arg:"max_depth"`
}

// StaticHMCParams configures HMC with a static integration time.
type StaticHMCParams struct {
	SamplingParams
	StepSize       float64 `arg:"stepsize"`
	StepSizeJitter float64 `arg:"stepsize_jitter"`
	IntTime        float64 `arg:"int_time"`
}

// StepSizeAdaptation tunes the step size during warmup.
type StepSizeAdaptation struct {
	Delta float64 `arg:"delta"`
	Gamma float64 `arg:"gamma"`
	Kappa float64 `arg:"kappa"`
	T0    float64 `arg:"t0"`
}

// WindowAdaptation sizes the metric estimation windows during warmup. Only
// the diag_e and dense_e metrics estimate anything.
type WindowAdaptation struct {
	InitBuffer uint `arg:"init_buffer"`
	TermBuffer uint `arg:"term_buffer"`
	Window     uint `arg:"window"`
}

// NUTSAdaptParams is NUTS with step size adaptation.
type NUTSAdaptParams struct {
	NUTSParams
	StepSizeAdaptation
}

// NUTSWindowAdaptParams is NUTS with step size and metric adaptation.
type NUTSWindowAdaptParams struct {
	NUTSParams
	StepSizeAdaptation
	WindowAdaptation
}

// StaticHMCAdaptParams is static HMC with step size adaptation.
type StaticHMCAdaptParams struct {
	StaticHMCParams
	StepSizeAdaptation
}

// StaticHMCWindowAdaptParams is static HMC with step size and metric
// adaptation.
type StaticHMCWindowAdaptParams struct {
	StaticHMCParams
	StepSizeAdaptation
	WindowAdaptation
}

// ADVIParams configures automatic differentiation variational inference.
// Mean-field and full-rank take the same parameters.
type ADVIParams struct {
	GradSamples     int     `arg:"grad_samples"`
	ElboSamples     int     `arg:"elbo_samples"`
	MaxIterations   int     `arg:"iter"`
	TolRelObj       float64 `arg:"tol_rel_obj"`
	Eta             float64 `arg:"eta"`
	AdaptEngaged    bool    `arg:"adapt.engaged"`
	AdaptIterations int     `arg:"adapt.iter"`
	EvalElbo        int     `arg:"eval_elbo"`
	OutputSamples   int     `arg:"output_samples"`
}

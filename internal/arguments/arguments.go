package arguments

import (
	"math"

	t "github.com/specialistvlad/stangrid/internal/argtree"
)

// DefaultInit is the schema default of the init argument: a radius of 2.
const DefaultInit = "2"

// Arguments is the complete argument tree plus typed handles into it.
type Arguments struct {
	Root *t.Categorical

	ID             *t.Leaf[int]
	DataFile       *t.Leaf[string]
	Init           *t.Leaf[string]
	Seed           *t.Leaf[uint]
	OutputFile     *t.Leaf[string]
	DiagnosticFile *t.Leaf[string]
	Refresh        *t.Leaf[int]

	Method      *t.Selector
	Sample      SampleArgs
	Optimize    OptimizeArgs
	Variational VariationalArgs
	Diagnose    DiagnoseArgs
}

// SampleArgs are the nodes under method=sample.
type SampleArgs struct {
	NumSamples *t.Leaf[int]
	NumWarmup  *t.Leaf[int]
	SaveWarmup *t.Leaf[bool]
	Thin       *t.Leaf[int]
	Adapt      SampleAdaptArgs
	Algorithm  *t.Selector
	HMC        HMCArgs
}

// SampleAdaptArgs are the warmup adaptation settings of the sampler.
type SampleAdaptArgs struct {
	Engaged    *t.Leaf[bool]
	Gamma      *t.Leaf[float64]
	Delta      *t.Leaf[float64]
	Kappa      *t.Leaf[float64]
	T0         *t.Leaf[float64]
	InitBuffer *t.Leaf[uint]
	TermBuffer *t.Leaf[uint]
	Window     *t.Leaf[uint]
}

// HMCArgs are the nodes under algorithm=hmc.
type HMCArgs struct {
	Engine         *t.Selector
	MaxDepth       *t.Leaf[int]
	IntTime        *t.Leaf[float64]
	Metric         *t.Selector
	StepSize       *t.Leaf[float64]
	StepSizeJitter *t.Leaf[float64]
}

// OptimizeArgs are the nodes under method=optimize.
type OptimizeArgs struct {
	Algorithm      *t.Selector
	BFGS           BFGSArgs
	LBFGS          BFGSArgs
	HistorySize    *t.Leaf[int]
	Iter           *t.Leaf[int]
	SaveIterations *t.Leaf[bool]
}

// BFGSArgs are the line search and convergence settings shared by bfgs and
// lbfgs. Each algorithm owns its own copy.
type BFGSArgs struct {
	InitAlpha  *t.Leaf[float64]
	TolObj     *t.Leaf[float64]
	TolRelObj  *t.Leaf[float64]
	TolGrad    *t.Leaf[float64]
	TolRelGrad *t.Leaf[float64]
	TolParam   *t.Leaf[float64]
}

// VariationalArgs are the nodes under method=variational.
type VariationalArgs struct {
	Algorithm     *t.Selector
	Iter          *t.Leaf[int]
	GradSamples   *t.Leaf[int]
	ElboSamples   *t.Leaf[int]
	Eta           *t.Leaf[float64]
	AdaptEngaged  *t.Leaf[bool]
	AdaptIter     *t.Leaf[int]
	TolRelObj     *t.Leaf[float64]
	EvalElbo      *t.Leaf[int]
	OutputSamples *t.Leaf[int]
}

// DiagnoseArgs are the nodes under method=diagnose.
type DiagnoseArgs struct {
	Test    *t.Selector
	Epsilon *t.Leaf[float64]
	Error   *t.Leaf[float64]
}

// New builds the argument tree with every default in place.
func New() *Arguments {
	a := &Arguments{}

	a.Method = t.NewSelector("method", "Analysis method (Note that method= is optional)", string(MethodSample),
		a.Sample.branch(),
		a.Optimize.branch(),
		a.Variational.branch(),
		a.Diagnose.branch(),
	)

	a.ID = t.Int("id", "Unique process identifier", 0,
		t.Rule[int]{Template: "%s >= 0", Check: func(v int) bool { return v >= 0 }})
	a.DataFile = t.String("file", "Input data file", "")
	a.Init = t.String("init", "Initialization method: \"x\" initializes randomly between [-x, x], \"0\" initializes to 0, anything else identifies a file of values", DefaultInit)
	a.Seed = t.Uint("seed", "Random number generator seed; left at its default a seed is taken from the clock", 0, t.AtMost[uint](math.MaxUint32))
	a.OutputFile = t.String("file", "Output file", "output.csv")
	a.DiagnosticFile = t.String("diagnostic_file", "Auxiliary output file for diagnostic information", "")
	a.Refresh = t.Int("refresh", "Number of iterations between screen updates", 100, t.Positive[int]())

	a.Root = t.NewRoot(
		a.Method,
		a.ID,
		t.NewCategorical("data", "Input data options", a.DataFile),
		a.Init,
		t.NewCategorical("random", "Random number configuration", a.Seed),
		t.NewCategorical("output", "File output options", a.OutputFile, a.DiagnosticFile, a.Refresh),
	)
	return a
}

func (s *SampleArgs) branch() *t.Categorical {
	s.NumSamples = t.Int("num_samples", "Number of sampling iterations", 1000, t.NonNegative[int]())
	s.NumWarmup = t.Int("num_warmup", "Number of warmup iterations", 1000, t.NonNegative[int]())
	s.SaveWarmup = t.Bool("save_warmup", "Stream warmup samples to output?", false)
	s.Thin = t.Int("thin", "Period between saved samples", 1, t.Positive[int]())

	ad := &s.Adapt
	ad.Engaged = t.Bool("engaged", "Adaptation engaged?", true)
	ad.Gamma = t.Real("gamma", "Adaptation regularization scale", 0.05, t.Positive[float64]())
	ad.Delta = t.Real("delta", "Adaptation target acceptance statistic", 0.8, t.OpenUnit())
	ad.Kappa = t.Real("kappa", "Adaptation relaxation exponent", 0.75, t.Positive[float64]())
	ad.T0 = t.Real("t0", "Adaptation iteration offset", 10, t.Positive[float64]())
	ad.InitBuffer = t.Uint("init_buffer", "Width of initial fast adaptation interval", 75, t.Unbounded[uint]())
	ad.TermBuffer = t.Uint("term_buffer", "Width of final fast adaptation interval", 50, t.Unbounded[uint]())
	ad.Window = t.Uint("window", "Initial width of slow adaptation interval", 25, t.Unbounded[uint]())

	h := &s.HMC
	h.MaxDepth = t.Int("max_depth", "Maximum tree depth", 10, t.Positive[int]())
	h.IntTime = t.Real("int_time", "Total integration time for Hamiltonian evolution", 2*math.Pi, t.Positive[float64]())
	h.Engine = t.NewSelector("engine", "Engine for Hamiltonian Monte Carlo", string(EngineNUTS),
		t.NewCategorical(string(EngineNUTS), "The No-U-Turn Sampler", h.MaxDepth),
		t.NewCategorical(string(EngineStatic), "Static integration time", h.IntTime),
	)
	h.Metric = t.NewSelector("metric", "Geometry of base manifold", string(MetricDiagE),
		t.NewCategorical(string(MetricUnitE), "Euclidean manifold with unit metric"),
		t.NewCategorical(string(MetricDiagE), "Euclidean manifold with diag metric"),
		t.NewCategorical(string(MetricDenseE), "Euclidean manifold with dense metric"),
	)
	h.StepSize = t.Real("stepsize", "Step size for discrete evolution", 1, t.Positive[float64]())
	h.StepSizeJitter = t.Real("stepsize_jitter", "Uniformly random jitter of the stepsize, in percent", 0, t.UnitInterval())

	s.Algorithm = t.NewSelector("algorithm", "Sampling algorithm", string(SampleHMC),
		t.NewCategorical(string(SampleHMC), "Hamiltonian Monte Carlo", h.Engine, h.Metric, h.StepSize, h.StepSizeJitter),
		t.NewCategorical(string(SampleFixedParam), "Fixed Parameter Sampler"),
	)

	return t.NewCategorical(string(MethodSample), "Bayesian inference with Markov Chain Monte Carlo",
		s.NumSamples,
		s.NumWarmup,
		s.SaveWarmup,
		s.Thin,
		t.NewCategorical("adapt", "Warmup Adaptation",
			ad.Engaged, ad.Gamma, ad.Delta, ad.Kappa, ad.T0, ad.InitBuffer, ad.TermBuffer, ad.Window),
		s.Algorithm,
	)
}

func (b *BFGSArgs) leaves() []t.Arg {
	b.InitAlpha = t.Real("init_alpha", "Line search step size for first iteration", 0.001, t.Positive[float64]())
	b.TolObj = t.Real("tol_obj", "Convergence tolerance on absolute changes in objective function value", 1e-12, t.Positive[float64]())
	b.TolRelObj = t.Real("tol_rel_obj", "Convergence tolerance on relative changes in objective function value", 1e4, t.Positive[float64]())
	b.TolGrad = t.Real("tol_grad", "Convergence tolerance on the norm of the gradient", 1e-8, t.Positive[float64]())
	b.TolRelGrad = t.Real("tol_rel_grad", "Convergence tolerance on the relative norm of the gradient", 1e7, t.Positive[float64]())
	b.TolParam = t.Real("tol_param", "Convergence tolerance on changes in parameter value", 1e-8, t.Positive[float64]())
	return []t.Arg{b.InitAlpha, b.TolObj, b.TolRelObj, b.TolGrad, b.TolRelGrad, b.TolParam}
}

func (o *OptimizeArgs) branch() *t.Categorical {
	o.HistorySize = t.Int("history_size", "Amount of history to keep for L-BFGS", 5, t.Positive[int]())
	lbfgs := t.NewCategorical(string(OptimizeLBFGS), "LBFGS with linesearch", o.LBFGS.leaves()...)
	lbfgs.Add(o.HistorySize)

	o.Algorithm = t.NewSelector("algorithm", "Optimization algorithm", string(OptimizeLBFGS),
		t.NewCategorical(string(OptimizeBFGS), "BFGS with linesearch", o.BFGS.leaves()...),
		lbfgs,
		t.NewCategorical(string(OptimizeNewton), "Newton's method"),
	)
	o.Iter = t.Int("iter", "Total number of iterations", 2000, t.Positive[int]())
	o.SaveIterations = t.Bool("save_iterations", "Stream optimization progress to output?", false)

	return t.NewCategorical(string(MethodOptimize), "Point estimation", o.Algorithm, o.Iter, o.SaveIterations)
}

func (v *VariationalArgs) branch() *t.Categorical {
	v.Algorithm = t.NewSelector("algorithm", "Variational inference algorithm", string(VariationalMeanfield),
		t.NewCategorical(string(VariationalMeanfield), "mean-field approximation"),
		t.NewCategorical(string(VariationalFullrank), "full-rank covariance"),
	)
	v.Iter = t.Int("iter", "Maximum number of ADVI iterations", 10000, t.Positive[int]())
	v.GradSamples = t.Int("grad_samples", "Number of Monte Carlo draws for computing the gradient", 1, t.Positive[int]())
	v.ElboSamples = t.Int("elbo_samples", "Number of Monte Carlo draws for estimate of ELBO", 100, t.Positive[int]())
	v.Eta = t.Real("eta", "Stepsize scaling parameter", 1.0, t.Positive[float64]())
	v.AdaptEngaged = t.Bool("engaged", "Eta adaptation engaged?", true)
	v.AdaptIter = t.Int("iter", "Number of iterations for eta adaptation", 50, t.Positive[int]())
	v.TolRelObj = t.Real("tol_rel_obj", "Relative tolerance parameter for convergence", 0.01, t.Positive[float64]())
	v.EvalElbo = t.Int("eval_elbo", "Number of iterations between ELBO evaluations", 100, t.Positive[int]())
	v.OutputSamples = t.Int("output_samples", "Number of approximate posterior output draws to save", 1000, t.Positive[int]())

	return t.NewCategorical(string(MethodVariational), "Variational inference",
		v.Algorithm,
		v.Iter,
		v.GradSamples,
		v.ElboSamples,
		v.Eta,
		t.NewCategorical("adapt", "Eta Adaptation for Variational Inference", v.AdaptEngaged, v.AdaptIter),
		v.TolRelObj,
		v.EvalElbo,
		v.OutputSamples,
	)
}

func (d *DiagnoseArgs) branch() *t.Categorical {
	d.Epsilon = t.Real("epsilon", "Finite difference step size", 1e-6, t.Positive[float64]())
	d.Error = t.Real("error", "Error threshold", 1e-6, t.Positive[float64]())
	d.Test = t.NewSelector("test", "Diagnostic test", string(TestGradient),
		t.NewCategorical(string(TestGradient), "Check model gradient against finite differences", d.Epsilon, d.Error),
	)
	return t.NewCategorical(string(MethodDiagnose), "Model diagnostics", d.Test)
}

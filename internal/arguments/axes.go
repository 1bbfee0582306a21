package arguments

// Method is a key of the top-level method selector.
type Method string

const (
	MethodSample      Method = "sample"
	MethodOptimize    Method = "optimize"
	MethodVariational Method = "variational"
	MethodDiagnose    Method = "diagnose"
)

// SampleAlgorithm is a key of method.sample.algorithm.
type SampleAlgorithm string

const (
	SampleHMC        SampleAlgorithm = "hmc"
	SampleFixedParam SampleAlgorithm = "fixed_param"
)

// Engine is a key of the hmc engine selector.
type Engine string

const (
	EngineNUTS   Engine = "nuts"
	EngineStatic Engine = "static"
)

// Metric is a key of the hmc metric selector.
type Metric string

const (
	MetricUnitE  Metric = "unit_e"
	MetricDiagE  Metric = "diag_e"
	MetricDenseE Metric = "dense_e"
)

// OptimizeAlgorithm is a key of method.optimize.algorithm.
type OptimizeAlgorithm string

const (
	OptimizeBFGS   OptimizeAlgorithm = "bfgs"
	OptimizeLBFGS  OptimizeAlgorithm = "lbfgs"
	OptimizeNewton OptimizeAlgorithm = "newton"
)

// VariationalAlgorithm is a key of method.variational.algorithm.
type VariationalAlgorithm string

const (
	VariationalMeanfield VariationalAlgorithm = "meanfield"
	VariationalFullrank  VariationalAlgorithm = "fullrank"
)

// DiagnoseTest is a key of method.diagnose.test.
type DiagnoseTest string

const (
	TestGradient DiagnoseTest = "gradient"
)

// SelectedMethod returns the selected method.
func (a *Arguments) SelectedMethod() Method {
	return Method(a.Method.Value())
}

// SelectedAlgorithm returns the selected sampling algorithm.
func (s *SampleArgs) SelectedAlgorithm() SampleAlgorithm {
	return SampleAlgorithm(s.Algorithm.Value())
}

// SelectedEngine returns the selected hmc engine.
func (h *HMCArgs) SelectedEngine() Engine {
	return Engine(h.Engine.Value())
}

// SelectedMetric returns the selected hmc metric.
func (h *HMCArgs) SelectedMetric() Metric {
	return Metric(h.Metric.Value())
}

// SelectedAlgorithm returns the selected optimizer.
func (o *OptimizeArgs) SelectedAlgorithm() OptimizeAlgorithm {
	return OptimizeAlgorithm(o.Algorithm.Value())
}

// SelectedAlgorithm returns the selected variational family.
func (v *VariationalArgs) SelectedAlgorithm() VariationalAlgorithm {
	return VariationalAlgorithm(v.Algorithm.Value())
}

// SelectedTest returns the selected diagnostic test.
func (d *DiagnoseArgs) SelectedTest() DiagnoseTest {
	return DiagnoseTest(d.Test.Value())
}

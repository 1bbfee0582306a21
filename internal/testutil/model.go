package testutil

// StubModel is a services.Model with a fixed parameter count.
type StubModel struct {
	ModelName string
	Params    int
}

func (m StubModel) Name() string    { return m.ModelName }
func (m StubModel) NumParamsR() int { return m.Params }

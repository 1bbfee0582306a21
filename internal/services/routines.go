package services

import "context"

// Env is what every routine receives besides its own parameters.
type Env struct {
	Model      Model
	Init       VarContext
	RandomSeed uint32
	ChainID    int
	InitRadius float64

	Interrupt  Interrupt
	Info       Writer
	Err        Writer
	InitWriter Writer
	Sample     Writer
	Diagnostic Writer
}

// Routines is the set of inference entry points. Each call blocks until the
// routine finishes and returns its status code, 0 meaning success.
type Routines interface {
	Diagnose(ctx context.Context, env Env, p GradientTestParams) int

	Newton(ctx context.Context, env Env, p NewtonParams) int
	BFGS(ctx context.Context, env Env, p BFGSParams) int
	LBFGS(ctx context.Context, env Env, p LBFGSParams) int

	FixedParam(ctx context.Context, env Env, p FixedParamParams) int
	HMCNutsUnitE(ctx context.Context, env Env, p NUTSParams) int
	HMCNutsUnitEAdapt(ctx context.Context, env Env, p NUTSAdaptParams) int
	HMCNutsDiagE(ctx context.Context, env Env, p NUTSParams) int
	HMCNutsDiagEAdapt(ctx context.Context, env Env, p NUTSWindowAdaptParams) int
	HMCNutsDenseE(ctx context.Context, env Env, p NUTSParams) int
	HMCNutsDenseEAdapt(ctx context.Context, env Env, p NUTSWindowAdaptParams) int
	HMCStaticUnitE(ctx context.Context, env Env, p StaticHMCParams) int
	HMCStaticUnitEAdapt(ctx context.Context, env Env, p StaticHMCAdaptParams) int
	HMCStaticDiagE(ctx context.Context, env Env, p StaticHMCParams) int
	HMCStaticDiagEAdapt(ctx context.Context, env Env, p StaticHMCWindowAdaptParams) int
	HMCStaticDenseE(ctx context.Context, env Env, p StaticHMCParams) int
	HMCStaticDenseEAdapt(ctx context.Context, env Env, p StaticHMCWindowAdaptParams) int

	ADVIMeanfield(ctx context.Context, env Env, p ADVIParams) int
	ADVIFullrank(ctx context.Context, env Env, p ADVIParams) int
}

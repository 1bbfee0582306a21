package testutil

import (
	"context"
	"sync"

	"github.com/specialistvlad/stangrid/internal/services"
)

// RoutineCall is one recorded invocation.
type RoutineCall struct {
	Name   string
	Params any
	Env    services.Env
}

// RecordingRoutines implements services.Routines by recording each call and
// returning Code. Optional OnCall runs inside every call, which lets a test
// write through the env's sinks.
type RecordingRoutines struct {
	Code   int
	OnCall func(name string, env services.Env)

	mu    sync.Mutex
	calls []RoutineCall
}

// Calls returns a copy of the recorded calls.
func (r *RecordingRoutines) Calls() []RoutineCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]RoutineCall(nil), r.calls...)
}

func (r *RecordingRoutines) record(name string, env services.Env, params any) int {
	r.mu.Lock()
	r.calls = append(r.calls, RoutineCall{Name: name, Params: params, Env: env})
	r.mu.Unlock()
	if r.OnCall != nil {
		r.OnCall(name, env)
	}
	return r.Code
}

func (r *RecordingRoutines) Diagnose(_ context.Context, env services.Env, p services.GradientTestParams) int {
	return r.record("diagnose", env, p)
}

func (r *RecordingRoutines) Newton(_ context.Context, env services.Env, p services.NewtonParams) int {
	return r.record("newton", env, p)
}

func (r *RecordingRoutines) BFGS(_ context.Context, env services.Env, p services.BFGSParams) int {
	return r.record("bfgs", env, p)
}

func (r *RecordingRoutines) LBFGS(_ context.Context, env services.Env, p services.LBFGSParams) int {
	return r.record("lbfgs", env, p)
}

func (r *RecordingRoutines) FixedParam(_ context.Context, env services.Env, p services.FixedParamParams) int {
	return r.record("fixed_param", env, p)
}

func (r *RecordingRoutines) HMCNutsUnitE(_ context.Context, env services.Env, p services.NUTSParams) int {
	return r.record("hmc_nuts_unit_e", env, p)
}

func (r *RecordingRoutines) HMCNutsUnitEAdapt(_ context.Context, env services.Env, p services.NUTSAdaptParams) int {
	return r.record("hmc_nuts_unit_e_adapt", env, p)
}

func (r *RecordingRoutines) HMCNutsDiagE(_ context.Context, env services.Env, p services.NUTSParams) int {
	return r.record("hmc_nuts_diag_e", env, p)
}

func (r *RecordingRoutines) HMCNutsDiagEAdapt(_ context.Context, env services.Env, p services.NUTSWindowAdaptParams) int {
	return r.record("hmc_nuts_diag_e_adapt", env, p)
}

func (r *RecordingRoutines) HMCNutsDenseE(_ context.Context, env services.Env, p services.NUTSParams) int {
	return r.record("hmc_nuts_dense_e", env, p)
}

func (r *RecordingRoutines) HMCNutsDenseEAdapt(_ context.Context, env services.Env, p services.NUTSWindowAdaptParams) int {
	return r.record("hmc_nuts_dense_e_adapt", env, p)
}

func (r *RecordingRoutines) HMCStaticUnitE(_ context.Context, env services.Env, p services.StaticHMCParams) int {
	return r.record("hmc_static_unit_e", env, p)
}

func (r *RecordingRoutines) HMCStaticUnitEAdapt(_ context.Context, env services.Env, p services.StaticHMCAdaptParams) int {
	return r.record("hmc_static_unit_e_adapt", env, p)
}

func (r *RecordingRoutines) HMCStaticDiagE(_ context.Context, env services.Env, p services.StaticHMCParams) int {
	return r.record("hmc_static_diag_e", env, p)
}

func (r *RecordingRoutines) HMCStaticDiagEAdapt(_ context.Context, env services.Env, p services.StaticHMCWindowAdaptParams) int {
	return r.record("hmc_static_diag_e_adapt", env, p)
}

func (r *RecordingRoutines) HMCStaticDenseE(_ context.Context, env services.Env, p services.StaticHMCParams) int {
	return r.record("hmc_static_dense_e", env, p)
}

func (r *RecordingRoutines) HMCStaticDenseEAdapt(_ context.Context, env services.Env, p services.StaticHMCWindowAdaptParams) int {
	return r.record("hmc_static_dense_e_adapt", env, p)
}

func (r *RecordingRoutines) ADVIMeanfield(_ context.Context, env services.Env, p services.ADVIParams) int {
	return r.record("advi_meanfield", env, p)
}

func (r *RecordingRoutines) ADVIFullrank(_ context.Context, env services.Env, p services.ADVIParams) int {
	return r.record("advi_fullrank", env, p)
}

var _ services.Routines = (*RecordingRoutines)(nil)

// Package print implements every inference routine as a dry run: the routine
// reports what it was asked to do and succeeds without computing anything.
package print

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/stangrid/internal/ctxlog"
	"github.com/specialistvlad/stangrid/internal/services"
)

// Routines implements services.Routines.
type Routines struct{}

// New returns the dry-run routines.
func New() *Routines {
	return &Routines{}
}

// columner is implemented by models that know their output columns.
type columner interface {
	Columns() []string
}

// run prints the routine name and its parameters, sorted by name, to the
// sample sink.
func run(ctx context.Context, routine string, env services.Env, params any) int {
	fields := services.Fields(params)
	sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })

	// The routine attribute comes from the dispatcher's logger.
	logger := ctxlog.FromContext(ctx)
	logger.Info("Printing routine parameters", "count", len(fields))

	if env.Interrupt != nil {
		env.Interrupt()
	}

	sink := env.Sample
	if sink == nil {
		sink = services.NoopWriter{}
	}
	sink.WriteLine(fmt.Sprintf("routine = %s", routine))
	for _, f := range fields {
		value := services.FormatValue(f.Value)
		sink.WriteLine(fmt.Sprintf("%s = %s", f.Name, value))
		logger.Debug("Parameter", "name", f.Name, "value", value)
	}

	if c, ok := env.Model.(columner); ok {
		if cols := c.Columns(); len(cols) > 0 {
			sink.WriteLine(strings.Join(cols, ","))
		}
	}
	return 0
}

func (Routines) Diagnose(ctx context.Context, env services.Env, p services.GradientTestParams) int {
	return run(ctx, "diagnose", env, p)
}

func (Routines) Newton(ctx context.Context, env services.Env, p services.NewtonParams) int {
	return run(ctx, "newton", env, p)
}

func (Routines) BFGS(ctx context.Context, env services.Env, p services.BFGSParams) int {
	return run(ctx, "bfgs", env, p)
}

func (Routines) LBFGS(ctx context.Context, env services.Env, p services.LBFGSParams) int {
	return run(ctx, "lbfgs", env, p)
}

func (Routines) FixedParam(ctx context.Context, env services.Env, p services.FixedParamParams) int {
	return run(ctx, "fixed_param", env, p)
}

func (Routines) HMCNutsUnitE(ctx context.Context, env services.Env, p services.NUTSParams) int {
	return run(ctx, "hmc_nuts_unit_e", env, p)
}

func (Routines) HMCNutsUnitEAdapt(ctx context.Context, env services.Env, p services.NUTSAdaptParams) int {
	return run(ctx, "hmc_nuts_unit_e_adapt", env, p)
}

func (Routines) HMCNutsDiagE(ctx context.Context, env services.Env, p services.NUTSParams) int {
	return run(ctx, "hmc_nuts_diag_e", env, p)
}

func (Routines) HMCNutsDiagEAdapt(ctx context.Context, env services.Env, p services.NUTSWindowAdaptParams) int {
	return run(ctx, "hmc_nuts_diag_e_adapt", env, p)
}

func (Routines) HMCNutsDenseE(ctx context.Context, env services.Env, p services.NUTSParams) int {
	return run(ctx, "hmc_nuts_dense_e", env, p)
}

func (Routines) HMCNutsDenseEAdapt(ctx context.Context, env services.Env, p services.NUTSWindowAdaptParams) int {
	return run(ctx, "hmc_nuts_dense_e_adapt", env, p)
}

func (Routines) HMCStaticUnitE(ctx context.Context, env services.Env, p services.StaticHMCParams) int {
	return run(ctx, "hmc_static_unit_e", env, p)
}

func (Routines) HMCStaticUnitEAdapt(ctx context.Context, env services.Env, p services.StaticHMCAdaptParams) int {
	return run(ctx, "hmc_static_unit_e_adapt", env, p)
}

func (Routines) HMCStaticDiagE(ctx context.Context, env services.Env, p services.StaticHMCParams) int {
	return run(ctx, "hmc_static_diag_e", env, p)
}

func (Routines) HMCStaticDiagEAdapt(ctx context.Context, env services.Env, p services.StaticHMCWindowAdaptParams) int {
	return run(ctx, "hmc_static_diag_e_adapt", env, p)
}

func (Routines) HMCStaticDenseE(ctx context.Context, env services.Env, p services.StaticHMCParams) int {
	return run(ctx, "hmc_static_dense_e", env, p)
}

func (Routines) HMCStaticDenseEAdapt(ctx context.Context, env services.Env, p services.StaticHMCWindowAdaptParams) int {
	return run(ctx, "hmc_static_dense_e_adapt", env, p)
}

func (Routines) ADVIMeanfield(ctx context.Context, env services.Env, p services.ADVIParams) int {
	return run(ctx, "advi_meanfield", env, p)
}

func (Routines) ADVIFullrank(ctx context.Context, env services.Env, p services.ADVIParams) int {
	return run(ctx, "advi_fullrank", env, p)
}

var _ services.Routines = Routines{}

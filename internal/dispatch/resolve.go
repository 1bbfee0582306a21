package dispatch

import (
	"fmt"

	"github.com/specialistvlad/stangrid/internal/arguments"
	"github.com/specialistvlad/stangrid/internal/services"
)

// Resolve picks the routine selected by args and extracts its parameters.
// Only the active branch of each selector is read.
func Resolve(args *arguments.Arguments, model services.Model) (Call, error) {
	switch m := args.SelectedMethod(); m {
	case arguments.MethodDiagnose:
		return resolveDiagnose(&args.Diagnose)
	case arguments.MethodOptimize:
		return resolveOptimize(&args.Optimize, args.Refresh.Value())
	case arguments.MethodSample:
		return resolveSample(&args.Sample, args.Refresh.Value(), model)
	case arguments.MethodVariational:
		return resolveVariational(&args.Variational)
	default:
		return nil, &PreconditionError{Reason: fmt.Sprintf("unknown method %q", m)}
	}
}

func resolveDiagnose(d *arguments.DiagnoseArgs) (Call, error) {
	switch test := d.SelectedTest(); test {
	case arguments.TestGradient:
		p := services.GradientTestParams{
			Epsilon: d.Epsilon.Value(),
			Error:   d.Error.Value(),
		}
		return newCall(RoutineDiagnose, p, services.Routines.Diagnose), nil
	default:
		return nil, &PreconditionError{Reason: fmt.Sprintf("unknown diagnostic test %q", test)}
	}
}

func resolveOptimize(o *arguments.OptimizeArgs, refresh int) (Call, error) {
	switch alg := o.SelectedAlgorithm(); alg {
	case arguments.OptimizeNewton:
		p := services.NewtonParams{
			Iter:           o.Iter.Value(),
			SaveIterations: o.SaveIterations.Value(),
		}
		return newCall(RoutineNewton, p, services.Routines.Newton), nil
	case arguments.OptimizeBFGS:
		p := bfgsParams(&o.BFGS, o, refresh)
		return newCall(RoutineBFGS, p, services.Routines.BFGS), nil
	case arguments.OptimizeLBFGS:
		p := services.LBFGSParams{
			HistorySize: o.HistorySize.Value(),
			BFGSParams:  bfgsParams(&o.LBFGS, o, refresh),
		}
		return newCall(RoutineLBFGS, p, services.Routines.LBFGS), nil
	default:
		return nil, &PreconditionError{Reason: fmt.Sprintf("unknown optimization algorithm %q", alg)}
	}
}

func bfgsParams(b *arguments.BFGSArgs, o *arguments.OptimizeArgs, refresh int) services.BFGSParams {
	return services.BFGSParams{
		InitAlpha:      b.InitAlpha.Value(),
		TolObj:         b.TolObj.Value(),
		TolRelObj:      b.TolRelObj.Value(),
		TolGrad:        b.TolGrad.Value(),
		TolRelGrad:     b.TolRelGrad.Value(),
		TolParam:       b.TolParam.Value(),
		Iter:           o.Iter.Value(),
		SaveIterations: o.SaveIterations.Value(),
		Refresh:        refresh,
	}
}

func resolveVariational(v *arguments.VariationalArgs) (Call, error) {
	p := services.ADVIParams{
		GradSamples:     v.GradSamples.Value(),
		ElboSamples:     v.ElboSamples.Value(),
		MaxIterations:   v.Iter.Value(),
		TolRelObj:       v.TolRelObj.Value(),
		Eta:             v.Eta.Value(),
		AdaptEngaged:    v.AdaptEngaged.Value(),
		AdaptIterations: v.AdaptIter.Value(),
		EvalElbo:        v.EvalElbo.Value(),
		OutputSamples:   v.OutputSamples.Value(),
	}
	switch alg := v.SelectedAlgorithm(); alg {
	case arguments.VariationalMeanfield:
		return newCall(RoutineADVIMeanfield, p, services.Routines.ADVIMeanfield), nil
	case arguments.VariationalFullrank:
		return newCall(RoutineADVIFullrank, p, services.Routines.ADVIFullrank), nil
	default:
		return nil, &PreconditionError{Reason: fmt.Sprintf("unknown variational algorithm %q", alg)}
	}
}

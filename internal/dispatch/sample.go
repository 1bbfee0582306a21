package dispatch

import (
	"fmt"

	"github.com/specialistvlad/stangrid/internal/arguments"
	"github.com/specialistvlad/stangrid/internal/services"
)

// noParamsReason is given when a gradient-based sampler is
// selected for a model without free parameters.
const noParamsReason = "model contains no parameters; use algorithm=fixed_param"

func resolveSample(s *arguments.SampleArgs, refresh int, model services.Model) (Call, error) {
	alg := s.SelectedAlgorithm()
	if model.NumParamsR() == 0 && alg != arguments.SampleFixedParam {
		return nil, &PreconditionError{Reason: noParamsReason}
	}

	switch alg {
	case arguments.SampleFixedParam:
		p := services.FixedParamParams{
			NumSamples: s.NumSamples.Value(),
			Thin:       s.Thin.Value(),
			Refresh:    refresh,
		}
		return newCall(RoutineFixedParam, p, services.Routines.FixedParam), nil
	case arguments.SampleHMC:
		return resolveHMC(s, refresh)
	default:
		return nil, &PreconditionError{Reason: fmt.Sprintf("unknown sampling algorithm %q", alg)}
	}
}

func resolveHMC(s *arguments.SampleArgs, refresh int) (Call, error) {
	h := &s.HMC
	sampling := services.SamplingParams{
		NumWarmup:  s.NumWarmup.Value(),
		NumSamples: s.NumSamples.Value(),
		Thin:       s.Thin.Value(),
		SaveWarmup: s.SaveWarmup.Value(),
		Refresh:    refresh,
	}
	adapt := s.Adapt.Engaged.Value()
	metric := h.SelectedMetric()

	switch engine := h.SelectedEngine(); engine {
	case arguments.EngineNUTS:
		p := services.NUTSParams{
			SamplingParams: sampling,
			StepSize:       h.StepSize.Value(),
			StepSizeJitter: h.StepSizeJitter.Value(),
			MaxDepth:       h.MaxDepth.Value(),
		}
		return resolveNUTS(p, metric, adapt, &s.Adapt)
	case arguments.EngineStatic:
		p := services.StaticHMCParams{
			SamplingParams: sampling,
			StepSize:       h.StepSize.Value(),
			StepSizeJitter: h.StepSizeJitter.Value(),
			IntTime:        h.IntTime.Value(),
		}
		return resolveStatic(p, metric, adapt, &s.Adapt)
	default:
		return nil, &PreconditionError{Reason: fmt.Sprintf("unknown hmc engine %q", engine)}
	}
}

func resolveNUTS(p services.NUTSParams, metric arguments.Metric, adapt bool, a *arguments.SampleAdaptArgs) (Call, error) {
	switch metric {
	case arguments.MetricUnitE:
		if adapt {
			ap := services.NUTSAdaptParams{NUTSParams: p, StepSizeAdaptation: stepSizeAdaptation(a)}
			return newCall(RoutineNutsUnitEAdapt, ap, services.Routines.HMCNutsUnitEAdapt), nil
		}
		return newCall(RoutineNutsUnitE, p, services.Routines.HMCNutsUnitE), nil
	case arguments.MetricDiagE:
		if adapt {
			ap := services.NUTSWindowAdaptParams{NUTSParams: p, StepSizeAdaptation: stepSizeAdaptation(a), WindowAdaptation: windowAdaptation(a)}
			return newCall(RoutineNutsDiagEAdapt, ap, services.Routines.HMCNutsDiagEAdapt), nil
		}
		return newCall(RoutineNutsDiagE, p, services.Routines.HMCNutsDiagE), nil
	case arguments.MetricDenseE:
		if adapt {
			ap := services.NUTSWindowAdaptParams{NUTSParams: p, StepSizeAdaptation: stepSizeAdaptation(a), WindowAdaptation: windowAdaptation(a)}
			return newCall(RoutineNutsDenseEAdapt, ap, services.Routines.HMCNutsDenseEAdapt), nil
		}
		return newCall(RoutineNutsDenseE, p, services.Routines.HMCNutsDenseE), nil
	default:
		return nil, &PreconditionError{Reason: fmt.Sprintf("unknown hmc metric %q", metric)}
	}
}

func resolveStatic(p services.StaticHMCParams, metric arguments.Metric, adapt bool, a *arguments.SampleAdaptArgs) (Call, error) {
	switch metric {
	case arguments.MetricUnitE:
		if adapt {
			ap := services.StaticHMCAdaptParams{StaticHMCParams: p, StepSizeAdaptation: stepSizeAdaptation(a)}
			return newCall(RoutineStaticUnitEAdapt, ap, services.Routines.HMCStaticUnitEAdapt), nil
		}
		return newCall(RoutineStaticUnitE, p, services.Routines.HMCStaticUnitE), nil
	case arguments.MetricDiagE:
		if adapt {
			ap := services.StaticHMCWindowAdaptParams{StaticHMCParams: p, StepSizeAdaptation: stepSizeAdaptation(a), WindowAdaptation: windowAdaptation(a)}
			return newCall(RoutineStaticDiagEAdapt, ap, services.Routines.HMCStaticDiagEAdapt), nil
		}
		return newCall(RoutineStaticDiagE, p, services.Routines.HMCStaticDiagE), nil
	case arguments.MetricDenseE:
		if adapt {
			ap := services.StaticHMCWindowAdaptParams{StaticHMCParams: p, StepSizeAdaptation: stepSizeAdaptation(a), WindowAdaptation: windowAdaptation(a)}
			return newCall(RoutineStaticDenseEAdapt, ap, services.Routines.HMCStaticDenseEAdapt), nil
		}
		return newCall(RoutineStaticDenseE, p, services.Routines.HMCStaticDenseE), nil
	default:
		return nil, &PreconditionError{Reason: fmt.Sprintf("unknown hmc metric %q", metric)}
	}
}

func stepSizeAdaptation(a *arguments.SampleAdaptArgs) services.StepSizeAdaptation {
	return services.StepSizeAdaptation{
		Delta: a.Delta.Value(),
		Gamma: a.Gamma.Value(),
		Kappa: a.Kappa.Value(),
		T0:    a.T0.Value(),
	}
}

func windowAdaptation(a *arguments.SampleAdaptArgs) services.WindowAdaptation {
	return services.WindowAdaptation{
		InitBuffer: a.InitBuffer.Value(),
		TermBuffer: a.TermBuffer.Value(),
		Window:     a.Window.Value(),
	}
}

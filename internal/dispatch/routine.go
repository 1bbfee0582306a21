package dispatch

// Routine identifies one terminal inference entry point.
type Routine int

const (
	RoutineDiagnose Routine = iota
	RoutineNewton
	RoutineBFGS
	RoutineLBFGS
	RoutineFixedParam
	RoutineNutsUnitE
	RoutineNutsUnitEAdapt
	RoutineNutsDiagE
	RoutineNutsDiagEAdapt
	RoutineNutsDenseE
	RoutineNutsDenseEAdapt
	RoutineStaticUnitE
	RoutineStaticUnitEAdapt
	RoutineStaticDiagE
	RoutineStaticDiagEAdapt
	RoutineStaticDenseE
	RoutineStaticDenseEAdapt
	RoutineADVIMeanfield
	RoutineADVIFullrank

	numRoutines
)

var routineNames = [numRoutines]string{
	RoutineDiagnose:          "diagnose",
	RoutineNewton:            "newton",
	RoutineBFGS:              "bfgs",
	RoutineLBFGS:             "lbfgs",
	RoutineFixedParam:        "fixed_param",
	RoutineNutsUnitE:         "hmc_nuts_unit_e",
	RoutineNutsUnitEAdapt:    "hmc_nuts_unit_e_adapt",
	RoutineNutsDiagE:         "hmc_nuts_diag_e",
	RoutineNutsDiagEAdapt:    "hmc_nuts_diag_e_adapt",
	RoutineNutsDenseE:        "hmc_nuts_dense_e",
	RoutineNutsDenseEAdapt:   "hmc_nuts_dense_e_adapt",
	RoutineStaticUnitE:       "hmc_static_unit_e",
	RoutineStaticUnitEAdapt:  "hmc_static_unit_e_adapt",
	RoutineStaticDiagE:       "hmc_static_diag_e",
	RoutineStaticDiagEAdapt:  "hmc_static_diag_e_adapt",
	RoutineStaticDenseE:      "hmc_static_dense_e",
	RoutineStaticDenseEAdapt: "hmc_static_dense_e_adapt",
	RoutineADVIMeanfield:     "advi_meanfield",
	RoutineADVIFullrank:      "advi_fullrank",
}

func (r Routine) String() string {
	if r < 0 || r >= numRoutines {
		return "unknown"
	}
	return routineNames[r]
}

// Routines lists every routine in declaration order.
func Routines() []Routine {
	out := make([]Routine, numRoutines)
	for i := range out {
		out[i] = Routine(i)
	}
	return out
}

package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/alexjackson1/crustabri/internal/sat"
)

// newSatSolverFactory builds the factory every SAT-backed semantics
// solver uses, choosing between the embedded gini solver and an
// external DIMACS-speaking subprocess per --external-sat-solver, and
// wiring a logging listener onto either.
func newSatSolverFactory() sat.FactoryFn {
	if flagExternalSolver != "" {
		log.Infof("using external SAT solver %q for problems requiring a SAT solver", flagExternalSolver)
		opts := append([]string(nil), flagExternalSolverOpts...)
		return func() sat.Solver {
			s := sat.NewExternalSolver(flagExternalSolver, opts)
			s.AddListener(sat.LoggingListener{})
			return s
		}
	}
	log.Info("using the embedded SAT solver for problems requiring a SAT solver")
	return func() sat.Solver {
		s := sat.NewGiniSolver()
		s.AddListener(sat.LoggingListener{})
		return s
	}
}

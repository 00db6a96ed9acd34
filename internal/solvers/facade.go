package solvers

import (
	"github.com/alexjackson1/crustabri/internal/aa"
	"github.com/alexjackson1/crustabri/internal/sat"
)

// AAFSolver bundles SE/DC/DS answering for one semantics, letting
// callers (the CLI, the dynamic facade) pick a semantics at run time
// and treat every solver uniformly.
type AAFSolver[T aa.LabelType] interface {
	SingleExtensionComputer[T]
	CredulousAcceptanceComputer[T]
	SkepticalAcceptanceComputer[T]
}

// NewSolver builds the solver for the given semantics. factory is only
// used by semantics that need a SAT solver (grounded never does).
func NewSolver[T aa.LabelType](af *aa.AAF[T], semantics aa.Semantics, factory sat.FactoryFn) AAFSolver[T] {
	switch semantics {
	case aa.GR:
		return NewGroundedSemanticsSolver(af)
	case aa.CO:
		return NewCompleteSemanticsSolver(af, factory)
	case aa.PR:
		return NewPreferredSemanticsSolver(af, factory)
	case aa.ST:
		return NewStableSemanticsSolver(af, factory)
	case aa.SST:
		return NewSemiStableSemanticsSolver(af, factory)
	case aa.STG:
		return NewStageSemanticsSolver(af, factory)
	case aa.ID:
		return NewIdealSemanticsSolver(af, factory)
	default:
		return nil
	}
}

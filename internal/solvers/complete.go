package solvers

import (
	"github.com/alexjackson1/crustabri/internal/aa"
	"github.com/alexjackson1/crustabri/internal/encodings"
	"github.com/alexjackson1/crustabri/internal/sat"
)

// CompleteSemanticsSolver answers SE/DC/DS-CO. SE returns the grounded
// extension, which is itself always complete. DS coincides with
// grounded acceptance, since the grounded extension is exactly the
// intersection of every complete extension. DC needs one SAT call per
// query: some complete extension contains arg iff the complete theory
// is satisfiable with arg's membership literal assumed true - no
// maximality search is required, unlike preferred.
type CompleteSemanticsSolver[T aa.LabelType] struct {
	af       *aa.AAF[T]
	factory  sat.FactoryFn
	grounded *GroundedSemanticsSolver[T]
}

func NewCompleteSemanticsSolver[T aa.LabelType](af *aa.AAF[T], factory sat.FactoryFn) *CompleteSemanticsSolver[T] {
	return &CompleteSemanticsSolver[T]{af: af, factory: factory, grounded: NewGroundedSemanticsSolver(af)}
}

func (s *CompleteSemanticsSolver[T]) ComputeOneExtension() []*aa.Argument[T] {
	return s.grounded.ComputeOneExtension()
}

func (s *CompleteSemanticsSolver[T]) IsSkepticallyAccepted(arg *aa.Argument[T]) bool {
	return s.grounded.IsSkepticallyAccepted(arg)
}

func (s *CompleteSemanticsSolver[T]) IsSkepticallyAcceptedWithCertificate(arg *aa.Argument[T]) (bool, []*aa.Argument[T]) {
	return s.grounded.IsSkepticallyAcceptedWithCertificate(arg)
}

func (s *CompleteSemanticsSolver[T]) IsCredulouslyAccepted(arg *aa.Argument[T]) bool {
	accepted, _ := s.IsCredulouslyAcceptedWithCertificate(arg)
	return accepted
}

func groundedFiller[T aa.LabelType](cc *aa.AAF[T]) ([]*aa.Argument[T], bool) {
	return aa.GroundedExtension(cc), true
}

func (s *CompleteSemanticsSolver[T]) IsCredulouslyAcceptedWithCertificate(arg *aa.Argument[T]) (bool, []*aa.Argument[T]) {
	cc := aa.ConnectedComponentOf(s.af, arg)
	ccArg, ok := cc.ArgumentSet().GetByLabel(arg.Label())
	if !ok {
		return false, nil
	}
	encoder := encodings.CompleteConstraintsEncoder[T]{}
	solver := s.factory()
	encoder.EncodeConstraints(cc, solver)
	result := solver.SolveUnderAssumptions([]sat.Literal{encoder.ArgToLit(ccArg)})
	if result.Status != sat.Satisfiable {
		return false, nil
	}
	witness, ok := liftToFullFramework(s.af, cc, encoder.AssignmentToExtension(result.Model, cc), groundedFiller[T])
	if !ok {
		return false, nil
	}
	return true, witness
}

package solvers

import (
	"github.com/alexjackson1/crustabri/internal/aa"
	"github.com/alexjackson1/crustabri/internal/encodings"
	"github.com/alexjackson1/crustabri/internal/sat"
)

// StableSemanticsSolver answers SE/DC/DS-ST. Stable extensions are, by
// construction, exactly the models of the stability-augmented complete
// encoding, so every query here is a single SAT call (or one per
// component) - no maximal-extension search is needed, unlike preferred
// and its relatives.
type StableSemanticsSolver[T aa.LabelType] struct {
	af      *aa.AAF[T]
	factory sat.FactoryFn
}

func NewStableSemanticsSolver[T aa.LabelType](af *aa.AAF[T], factory sat.FactoryFn) *StableSemanticsSolver[T] {
	return &StableSemanticsSolver[T]{af: af, factory: factory}
}

// oneExtensionOf returns one stable extension of cc, or false if cc has
// none.
func (s *StableSemanticsSolver[T]) oneExtensionOf(cc *aa.AAF[T]) ([]*aa.Argument[T], bool) {
	encoder := encodings.StableConstraintsEncoder[T]{}
	solver := s.factory()
	encoder.EncodeConstraints(cc, solver)
	result := solver.Solve()
	if result.Status != sat.Satisfiable {
		return nil, false
	}
	return encoder.AssignmentToExtension(result.Model, cc), true
}

// ComputeOneExtension returns a stable extension of af, or nil if af
// has none: a framework has a stable extension iff every one of its
// connected components does, and their union is stable in the whole.
func (s *StableSemanticsSolver[T]) ComputeOneExtension() []*aa.Argument[T] {
	var result []*aa.Argument[T]
	for _, cc := range aa.IterConnectedComponents(s.af) {
		ext, ok := s.oneExtensionOf(cc)
		if !ok {
			return nil
		}
		result = append(result, liftLocalLabels(s.af, ext)...)
	}
	return result
}

func (s *StableSemanticsSolver[T]) IsCredulouslyAccepted(arg *aa.Argument[T]) bool {
	accepted, _ := s.IsCredulouslyAcceptedWithCertificate(arg)
	return accepted
}

func (s *StableSemanticsSolver[T]) IsCredulouslyAcceptedWithCertificate(arg *aa.Argument[T]) (bool, []*aa.Argument[T]) {
	cc := aa.ConnectedComponentOf(s.af, arg)
	ccArg, ok := cc.ArgumentSet().GetByLabel(arg.Label())
	if !ok {
		return false, nil
	}
	encoder := encodings.StableConstraintsEncoder[T]{}
	solver := s.factory()
	encoder.EncodeConstraints(cc, solver)
	result := solver.SolveUnderAssumptions([]sat.Literal{encoder.ArgToLit(ccArg)})
	if result.Status != sat.Satisfiable {
		return false, nil
	}
	witness, ok := liftToFullFramework(s.af, cc, encoder.AssignmentToExtension(result.Model, cc), s.oneExtensionOf)
	if !ok {
		return false, nil
	}
	return true, witness
}

func (s *StableSemanticsSolver[T]) IsSkepticallyAccepted(arg *aa.Argument[T]) bool {
	accepted, _ := s.IsSkepticallyAcceptedWithCertificate(arg)
	return accepted
}

// IsSkepticallyAcceptedWithCertificate looks, within arg's own
// component, for a stable extension omitting arg. Such a counter-
// witness, combined with any stable extension of every other
// component, refutes skeptical acceptance over the whole framework. If
// af has no stable extension at all, skeptical acceptance holds
// vacuously for every argument.
func (s *StableSemanticsSolver[T]) IsSkepticallyAcceptedWithCertificate(arg *aa.Argument[T]) (bool, []*aa.Argument[T]) {
	cc := aa.ConnectedComponentOf(s.af, arg)
	ccArg, ok := cc.ArgumentSet().GetByLabel(arg.Label())
	if !ok {
		return true, nil
	}
	encoder := encodings.StableConstraintsEncoder[T]{}
	solver := s.factory()
	encoder.EncodeConstraints(cc, solver)
	result := solver.SolveUnderAssumptions([]sat.Literal{encoder.ArgToLit(ccArg).Negate()})
	if result.Status != sat.Satisfiable {
		return true, nil
	}
	witness, ok := liftToFullFramework(s.af, cc, encoder.AssignmentToExtension(result.Model, cc), s.oneExtensionOf)
	if !ok {
		return true, nil
	}
	return false, witness
}

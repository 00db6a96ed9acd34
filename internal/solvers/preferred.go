package solvers

import (
	"github.com/alexjackson1/crustabri/internal/aa"
	"github.com/alexjackson1/crustabri/internal/encodings"
	"github.com/alexjackson1/crustabri/internal/sat"
)

// PreferredSemanticsSolver answers SE/DC/DS-PR by driving a
// MaximalExtensionComputer over the complete encoding, per connected
// component. SE takes the first maximal extension found in each
// component. DC coincides with DC-CO (every admissible set extends to a
// preferred one), so it suffices to find any maximal extension
// containing the query argument. DS requires ruling out every maximal
// extension that omits it, so every branch the state machine offers is
// grown to an actual ⊆-maximal extension before its containment is
// checked - a branch is never discarded early just because the query
// argument already happens to be a member of its intermediate model
// (every superset of that model still contains it too, which says
// nothing about whether the branch can prove skeptical acceptance
// false). The only early exit that would be sound - an *attacker* of
// the query argument already present, which permanently blocks it from
// the eventual extension - still has to finish growing that branch to
// produce a valid certificate, so it would only save one redundant
// containment check; not worth it here.
type PreferredSemanticsSolver[T aa.LabelType] struct {
	af      *aa.AAF[T]
	factory sat.FactoryFn
}

func NewPreferredSemanticsSolver[T aa.LabelType](af *aa.AAF[T], factory sat.FactoryFn) *PreferredSemanticsSolver[T] {
	return &PreferredSemanticsSolver[T]{af: af, factory: factory}
}

func (s *PreferredSemanticsSolver[T]) newComputer(cc *aa.AAF[T]) (*MaximalExtensionComputer[T], encodings.CompleteConstraintsEncoder[T]) {
	encoder := encodings.CompleteConstraintsEncoder[T]{}
	solver := s.factory()
	encoder.EncodeConstraints(cc, solver)
	return NewMaximalExtensionComputer[T](cc, solver, encoder, false), encoder
}

// oneExtensionOf returns one preferred extension of cc. Every AAF has
// at least one (the empty set is always admissible), so this never
// fails.
func (s *PreferredSemanticsSolver[T]) oneExtensionOf(cc *aa.AAF[T]) ([]*aa.Argument[T], bool) {
	mc, _ := s.newComputer(cc)
	ext := mc.ComputeMaximal()
	return ext, ext != nil
}

func (s *PreferredSemanticsSolver[T]) ComputeOneExtension() []*aa.Argument[T] {
	var result []*aa.Argument[T]
	for _, cc := range aa.IterConnectedComponents(s.af) {
		ext, ok := s.oneExtensionOf(cc)
		if ok {
			result = append(result, liftLocalLabels(s.af, ext)...)
		}
	}
	return result
}

func (s *PreferredSemanticsSolver[T]) IsCredulouslyAccepted(arg *aa.Argument[T]) bool {
	accepted, _ := s.IsCredulouslyAcceptedWithCertificate(arg)
	return accepted
}

// IsCredulouslyAcceptedWithCertificate answers DC-PR by pinning arg's
// membership literal as a permanent unit clause before driving the
// maximal-extension search: DC-PR coincides with DC-CO, so any admissible
// set containing arg already certifies credulous acceptance, and growing
// it to ⊆-maximality under that constraint yields a preferred extension
// containing arg in the same pass.
func (s *PreferredSemanticsSolver[T]) IsCredulouslyAcceptedWithCertificate(arg *aa.Argument[T]) (bool, []*aa.Argument[T]) {
	cc := aa.ConnectedComponentOf(s.af, arg)
	ccArg, ok := cc.ArgumentSet().GetByLabel(arg.Label())
	if !ok {
		return false, nil
	}
	encoder := encodings.CompleteConstraintsEncoder[T]{}
	solver := s.factory()
	encoder.EncodeConstraints(cc, solver)
	solver.AddClause(sat.Clause{encoder.ArgToLit(ccArg)})

	mc := NewMaximalExtensionComputer[T](cc, solver, encoder, false)
	ext := mc.ComputeMaximal()
	if ext == nil {
		return false, nil
	}
	witness, ok := liftToFullFramework(s.af, cc, ext, s.oneExtensionOf)
	if !ok {
		return false, nil
	}
	return true, witness
}

func (s *PreferredSemanticsSolver[T]) IsSkepticallyAccepted(arg *aa.Argument[T]) bool {
	accepted, _ := s.IsSkepticallyAcceptedWithCertificate(arg)
	return accepted
}

func (s *PreferredSemanticsSolver[T]) IsSkepticallyAcceptedWithCertificate(arg *aa.Argument[T]) (bool, []*aa.Argument[T]) {
	cc := aa.ConnectedComponentOf(s.af, arg)
	ccArg, ok := cc.ArgumentSet().GetByLabel(arg.Label())
	if !ok {
		return true, nil
	}
	mc, _ := s.newComputer(cc)
	for {
		mc.ComputeNext()
		switch mc.State() {
		case StateMaximal:
			ext := mc.TakeCurrent()
			if !containsArg(ext, ccArg) {
				witness, ok := liftToFullFramework(s.af, cc, ext, s.oneExtensionOf)
				if ok {
					return false, witness
				}
			}
		case StateNone:
			return true, nil
		}
	}
}

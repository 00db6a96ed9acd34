package solvers

import (
	"github.com/alexjackson1/crustabri/internal/aa"
	"github.com/alexjackson1/crustabri/internal/encodings"
	"github.com/alexjackson1/crustabri/internal/sat"
)

// IdealSemanticsSolver answers SE/DC/DS-ID. The ideal extension is the
// ⊆-maximal admissible set contained in every preferred extension, so
// it is computed in two passes per component: first intersect every
// preferred extension (by enumerating all of them with the maximal-
// extension state machine), then search for the ⊆-maximal admissible
// subset of that intersection. Like grounded, the result is unique, so
// credulous and skeptical acceptance both reduce to plain membership.
type IdealSemanticsSolver[T aa.LabelType] struct {
	ext   []*aa.Argument[T]
	inExt map[int]bool
}

func NewIdealSemanticsSolver[T aa.LabelType](af *aa.AAF[T], factory sat.FactoryFn) *IdealSemanticsSolver[T] {
	s := &IdealSemanticsSolver[T]{}
	for _, cc := range aa.IterConnectedComponents(af) {
		s.ext = append(s.ext, liftLocalLabels(af, idealExtensionOfComponent(cc, factory))...)
	}
	s.inExt = make(map[int]bool, len(s.ext))
	for _, a := range s.ext {
		s.inExt[a.ID()] = true
	}
	return s
}

func idealExtensionOfComponent[T aa.LabelType](cc *aa.AAF[T], factory sat.FactoryFn) []*aa.Argument[T] {
	n := cc.NArguments()
	inEveryPreferred := make([]bool, n)
	for i := range inEveryPreferred {
		inEveryPreferred[i] = true
	}

	encoder := encodings.CompleteConstraintsEncoder[T]{}
	solver := factory()
	encoder.EncodeConstraints(cc, solver)
	mc := NewMaximalExtensionComputer[T](cc, solver, encoder, false)

	sawAny := false
	for {
		ext := mc.ComputeMaximal()
		if ext == nil {
			break
		}
		sawAny = true
		present := make([]bool, n)
		for _, a := range ext {
			present[a.ID()] = true
		}
		for id := range inEveryPreferred {
			if inEveryPreferred[id] && !present[id] {
				inEveryPreferred[id] = false
			}
		}
	}
	if !sawAny {
		return nil
	}

	restricted := encodings.CompleteConstraintsEncoder[T]{}
	solver2 := factory()
	restricted.EncodeConstraints(cc, solver2)
	for id := 0; id < n; id++ {
		if !inEveryPreferred[id] {
			if arg, ok := cc.ArgumentSet().GetByID(id); ok {
				solver2.AddClause(sat.Clause{restricted.ArgToLit(arg).Negate()})
			}
		}
	}
	mc2 := NewMaximalExtensionComputer[T](cc, solver2, restricted, false)
	return mc2.ComputeMaximal()
}

func (s *IdealSemanticsSolver[T]) ComputeOneExtension() []*aa.Argument[T] {
	return s.ext
}

func (s *IdealSemanticsSolver[T]) IsCredulouslyAccepted(arg *aa.Argument[T]) bool {
	return s.inExt[arg.ID()]
}

func (s *IdealSemanticsSolver[T]) IsCredulouslyAcceptedWithCertificate(arg *aa.Argument[T]) (bool, []*aa.Argument[T]) {
	if s.inExt[arg.ID()] {
		return true, s.ext
	}
	return false, nil
}

func (s *IdealSemanticsSolver[T]) IsSkepticallyAccepted(arg *aa.Argument[T]) bool {
	return s.inExt[arg.ID()]
}

func (s *IdealSemanticsSolver[T]) IsSkepticallyAcceptedWithCertificate(arg *aa.Argument[T]) (bool, []*aa.Argument[T]) {
	if s.inExt[arg.ID()] {
		return true, nil
	}
	return false, s.ext
}

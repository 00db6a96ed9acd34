package solvers

import "github.com/alexjackson1/crustabri/internal/aa"

// GroundedSemanticsSolver answers SE/DC/DS-GR directly from the P-time
// worklist computer: the grounded extension is unique, so credulous and
// skeptical acceptance coincide with plain membership and no SAT solver
// is ever constructed.
type GroundedSemanticsSolver[T aa.LabelType] struct {
	ext   []*aa.Argument[T]
	inExt map[int]bool
}

// NewGroundedSemanticsSolver computes af's grounded extension once, up
// front.
func NewGroundedSemanticsSolver[T aa.LabelType](af *aa.AAF[T]) *GroundedSemanticsSolver[T] {
	ext := aa.GroundedExtension(af)
	inExt := make(map[int]bool, len(ext))
	for _, a := range ext {
		inExt[a.ID()] = true
	}
	return &GroundedSemanticsSolver[T]{ext: ext, inExt: inExt}
}

func (s *GroundedSemanticsSolver[T]) ComputeOneExtension() []*aa.Argument[T] {
	return s.ext
}

func (s *GroundedSemanticsSolver[T]) IsCredulouslyAccepted(arg *aa.Argument[T]) bool {
	return s.inExt[arg.ID()]
}

func (s *GroundedSemanticsSolver[T]) IsCredulouslyAcceptedWithCertificate(arg *aa.Argument[T]) (bool, []*aa.Argument[T]) {
	if s.inExt[arg.ID()] {
		return true, s.ext
	}
	return false, nil
}

func (s *GroundedSemanticsSolver[T]) IsSkepticallyAccepted(arg *aa.Argument[T]) bool {
	return s.inExt[arg.ID()]
}

func (s *GroundedSemanticsSolver[T]) IsSkepticallyAcceptedWithCertificate(arg *aa.Argument[T]) (bool, []*aa.Argument[T]) {
	if s.inExt[arg.ID()] {
		return true, nil
	}
	return false, s.ext
}

// Package dynamics wraps an AAF with mutation operations for
// interactive/incremental use (add/remove an argument, add/remove an
// attack), re-solving from scratch on every query. No
// result is cached across mutations: each call to NewArgument,
// RemoveArgument, NewAttack or RemoveAttack invalidates whatever the
// solvers previously computed, so the next query simply builds a fresh
// solver over the framework's current state.
package dynamics

import (
	"github.com/alexjackson1/crustabri/internal/aa"
	"github.com/alexjackson1/crustabri/internal/sat"
	"github.com/alexjackson1/crustabri/internal/solvers"
)

// DynamicFramework is a mutable AAF paired with the SAT solver factory
// its semantics solvers need, answering the same SE/DC/DS queries as a
// static solvers.AAFSolver but over a framework that can still change
// between calls.
type DynamicFramework[T aa.LabelType] struct {
	af      *aa.AAF[T]
	factory sat.FactoryFn
}

// NewDynamicFramework wraps af for incremental use. factory is handed
// to a fresh solver on every query, so it must be safe to call
// repeatedly.
func NewDynamicFramework[T aa.LabelType](af *aa.AAF[T], factory sat.FactoryFn) *DynamicFramework[T] {
	return &DynamicFramework[T]{af: af, factory: factory}
}

// AAF returns the underlying framework, for callers that need direct
// read access (e.g. an instance writer).
func (d *DynamicFramework[T]) AAF() *aa.AAF[T] {
	return d.af
}

// NewArgument adds an argument with the given label.
func (d *DynamicFramework[T]) NewArgument(label T) (*aa.Argument[T], error) {
	return d.af.NewArgument(label)
}

// RemoveArgument removes an argument and every attack incident to it.
func (d *DynamicFramework[T]) RemoveArgument(label T) error {
	return d.af.RemoveArgument(label)
}

// NewAttack adds an attack from the argument labeled from to the one
// labeled to.
func (d *DynamicFramework[T]) NewAttack(from, to T) error {
	return d.af.NewAttack(from, to)
}

// RemoveAttack removes the attack from `from` to `to`, if present.
func (d *DynamicFramework[T]) RemoveAttack(from, to T) error {
	return d.af.RemoveAttack(from, to)
}

// solverFor builds a fresh solver over the framework's current state.
// Nothing is cached between calls: a query always reflects every
// mutation made up to the moment it runs.
func (d *DynamicFramework[T]) solverFor(semantics aa.Semantics) solvers.AAFSolver[T] {
	return solvers.NewSolver(d.af, semantics, d.factory)
}

// ComputeOneExtension answers the SE query under semantics.
func (d *DynamicFramework[T]) ComputeOneExtension(semantics aa.Semantics) []*aa.Argument[T] {
	return d.solverFor(semantics).ComputeOneExtension()
}

// IsCredulouslyAccepted answers the DC query under semantics.
func (d *DynamicFramework[T]) IsCredulouslyAccepted(semantics aa.Semantics, arg *aa.Argument[T]) bool {
	return d.solverFor(semantics).IsCredulouslyAccepted(arg)
}

// IsCredulouslyAcceptedWithCertificate answers the DC query under
// semantics, additionally returning a witness extension when accepted.
func (d *DynamicFramework[T]) IsCredulouslyAcceptedWithCertificate(semantics aa.Semantics, arg *aa.Argument[T]) (bool, []*aa.Argument[T]) {
	return d.solverFor(semantics).IsCredulouslyAcceptedWithCertificate(arg)
}

// IsSkepticallyAccepted answers the DS query under semantics.
func (d *DynamicFramework[T]) IsSkepticallyAccepted(semantics aa.Semantics, arg *aa.Argument[T]) bool {
	return d.solverFor(semantics).IsSkepticallyAccepted(arg)
}

// IsSkepticallyAcceptedWithCertificate answers the DS query under
// semantics, additionally returning a witness extension lacking arg
// when rejected.
func (d *DynamicFramework[T]) IsSkepticallyAcceptedWithCertificate(semantics aa.Semantics, arg *aa.Argument[T]) (bool, []*aa.Argument[T]) {
	return d.solverFor(semantics).IsSkepticallyAcceptedWithCertificate(arg)
}

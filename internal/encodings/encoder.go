// Package encodings implements the per-semantics reductions from AAF
// extensions to propositional satisfiability: stateless strategies that
// populate a sat.Solver so its models correspond 1-1 with extensions
// under a target semantics, and that decode a model back into an
// extension.
package encodings

import (
	"github.com/alexjackson1/crustabri/internal/aa"
	"github.com/alexjackson1/crustabri/internal/sat"
)

// ConstraintsEncoder is a stateless strategy for one semantics' CNF
// reduction.
type ConstraintsEncoder[T aa.LabelType] interface {
	// EncodeConstraints populates solver so models correspond 1-1 to
	// extensions under the target semantics.
	EncodeConstraints(af *aa.AAF[T], solver sat.Solver)
	// EncodeConstraintsAndRange additionally introduces range
	// variables r_a <-> (a in ext) or (some b in ext attacks a), used
	// by semi-stable/stage to maximize range rather than membership.
	EncodeConstraintsAndRange(af *aa.AAF[T], solver sat.Solver)
	// FirstRangeVar returns the base index of the range variable
	// block for an AAF with nArgs arguments.
	FirstRangeVar(nArgs int) sat.Variable
	// AssignmentToExtension decodes a SAT model into an extension.
	AssignmentToExtension(assignment *sat.Assignment, af *aa.AAF[T]) []*aa.Argument[T]
	// ArgToLit returns the literal whose truth means "arg is in the
	// extension."
	ArgToLit(arg *aa.Argument[T]) sat.Literal
}

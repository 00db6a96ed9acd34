// Package solvers composes the connected-components decomposition, the
// constraint encoders, and the maximal-extension state machine into one
// solver per semantics, each answering the three supported queries (SE,
// DC, DS) over an AAF.
package solvers

import "github.com/alexjackson1/crustabri/internal/aa"

// SingleExtensionComputer answers the SE query: produce one extension
// under the target semantics.
type SingleExtensionComputer[T aa.LabelType] interface {
	ComputeOneExtension() []*aa.Argument[T]
}

// CredulousAcceptanceComputer answers the DC query: does arg belong to
// at least one extension under the target semantics.
type CredulousAcceptanceComputer[T aa.LabelType] interface {
	IsCredulouslyAccepted(arg *aa.Argument[T]) bool
	// IsCredulouslyAcceptedWithCertificate additionally returns a witness
	// extension containing arg when accepted.
	IsCredulouslyAcceptedWithCertificate(arg *aa.Argument[T]) (bool, []*aa.Argument[T])
}

// SkepticalAcceptanceComputer answers the DS query: does arg belong to
// every extension under the target semantics.
type SkepticalAcceptanceComputer[T aa.LabelType] interface {
	IsSkepticallyAccepted(arg *aa.Argument[T]) bool
	// IsSkepticallyAcceptedWithCertificate additionally returns a witness
	// extension lacking arg when rejected.
	IsSkepticallyAcceptedWithCertificate(arg *aa.Argument[T]) (bool, []*aa.Argument[T])
}

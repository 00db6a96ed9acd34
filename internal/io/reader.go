// Package io implements the reasoner's two text-based AAF instance
// formats (Aspartix and ICCMA23) and their response-writing conventions:
// boundary adapters that parse/serialize at the process's edge, built on
// top of internal/aa.
package io

import (
	stdio "io"

	"github.com/alexjackson1/crustabri/internal/aa"
)

// InstanceReader parses an AAF instance from r.
type InstanceReader[T aa.LabelType] interface {
	ReadInstance(r stdio.Reader) (*aa.AAF[T], error)
}

// ResponseWriter writes query answers in one format's output
// conventions.
type ResponseWriter[T aa.LabelType] interface {
	// WriteExtension writes ext, or "NO" when ext is nil (no extension
	// exists under the query's semantics).
	WriteExtension(w stdio.Writer, ext []*aa.Argument[T]) error
	// WriteAcceptance writes "YES"/"NO" for accepted, followed by a
	// certificate line when certificate is non-nil.
	WriteAcceptance(w stdio.Writer, accepted bool, certificate []*aa.Argument[T]) error
}

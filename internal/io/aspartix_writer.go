package io

import (
	"fmt"
	stdio "io"
	"strings"

	"github.com/alexjackson1/crustabri/internal/aa"
)

// AspartixWriter writes responses in Aspartix's conventions:
// "[a,b,c]" for an extension, "YES"/"NO" for acceptance.
type AspartixWriter[T aa.LabelType] struct{}

func (AspartixWriter[T]) WriteExtension(w stdio.Writer, ext []*aa.Argument[T]) error {
	if ext == nil {
		_, err := fmt.Fprintln(w, "NO")
		return err
	}
	_, err := fmt.Fprintln(w, bracketed(ext))
	return err
}

func (AspartixWriter[T]) WriteAcceptance(w stdio.Writer, accepted bool, certificate []*aa.Argument[T]) error {
	answer := "NO"
	if accepted {
		answer = "YES"
	}
	if _, err := fmt.Fprintln(w, answer); err != nil {
		return err
	}
	if certificate != nil {
		if _, err := fmt.Fprintln(w, bracketed(certificate)); err != nil {
			return err
		}
	}
	return nil
}

func bracketed[T aa.LabelType](ext []*aa.Argument[T]) string {
	labels := make([]string, len(ext))
	for i, a := range ext {
		labels[i] = fmt.Sprintf("%v", a.Label())
	}
	return "[" + strings.Join(labels, ",") + "]"
}

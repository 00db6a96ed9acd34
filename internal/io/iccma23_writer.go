package io

import (
	"fmt"
	stdio "io"
	"strings"

	"github.com/alexjackson1/crustabri/internal/aa"
)

// Iccma23Writer writes responses in ICCMA23's conventions: "w" followed
// by space-separated labels for an extension, "YES"/"NO" for
// acceptance.
type Iccma23Writer[T aa.LabelType] struct{}

func (Iccma23Writer[T]) WriteExtension(w stdio.Writer, ext []*aa.Argument[T]) error {
	if ext == nil {
		_, err := fmt.Fprintln(w, "NO")
		return err
	}
	_, err := fmt.Fprintf(w, "w%s\n", labelSuffix(ext))
	return err
}

func (Iccma23Writer[T]) WriteAcceptance(w stdio.Writer, accepted bool, certificate []*aa.Argument[T]) error {
	answer := "NO"
	if accepted {
		answer = "YES"
	}
	if _, err := fmt.Fprintln(w, answer); err != nil {
		return err
	}
	if certificate != nil {
		if _, err := fmt.Fprintf(w, "w%s\n", labelSuffix(certificate)); err != nil {
			return err
		}
	}
	return nil
}

func labelSuffix[T aa.LabelType](ext []*aa.Argument[T]) string {
	var b strings.Builder
	for _, a := range ext {
		b.WriteByte(' ')
		fmt.Fprintf(&b, "%v", a.Label())
	}
	return b.String()
}

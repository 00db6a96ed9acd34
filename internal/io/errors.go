package io

import "fmt"

// ParseError reports a malformed instance file: a bad lexeme, an
// unknown directive, or (in the apx reader) a duplicate argument. An
// attack referencing an argument that was never declared is not
// reported as a ParseError: the readers return the aa.UnknownLabelError
// from AAF.NewAttack, wrapped with the offending attack.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

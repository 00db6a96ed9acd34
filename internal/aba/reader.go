package aba

import (
	"bufio"
	stdio "io"
	"strings"

	textio "github.com/alexjackson1/crustabri/internal/io"
	"github.com/pkg/errors"
)

// ReadIccma23ABA parses the ICCMA23 ABA track's text format: a "p aba
// <n>" header, "a <i>" lines marking atom i an assumption, "c <i> <j>"
// lines setting atom i's contrary to atom j, and "r <head> <b1> <b2>
// ..." lines adding a rule (an absent body is a fact).
func ReadIccma23ABA(r stdio.Reader) (*Framework, error) {
	f := NewFramework()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	headerSeen := false

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if len(fields) != 3 || fields[1] != "aba" {
				return nil, &textio.ParseError{Line: lineNo, Msg: "malformed header: " + line}
			}
			headerSeen = true
		case "a":
			if len(fields) != 2 {
				return nil, &textio.ParseError{Line: lineNo, Msg: "malformed assumption line: " + line}
			}
			f.AddAssumption(fields[1], fields[1])
		case "c":
			if len(fields) != 3 {
				return nil, &textio.ParseError{Line: lineNo, Msg: "malformed contrary line: " + line}
			}
			if !f.IsAssumption(fields[1]) {
				return nil, &textio.ParseError{Line: lineNo, Msg: "contrary declared for non-assumption atom: " + fields[1]}
			}
			f.AddAssumption(fields[1], fields[2])
		case "r":
			if len(fields) < 2 {
				return nil, &textio.ParseError{Line: lineNo, Msg: "malformed rule line: " + line}
			}
			f.AddRule(fields[1], fields[2:])
		default:
			return nil, &textio.ParseError{Line: lineNo, Msg: "unrecognised directive: " + line}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "iccma23_aba: reading instance")
	}
	if !headerSeen {
		return nil, &textio.ParseError{Line: lineNo, Msg: "missing \"p aba\" header"}
	}
	return f, nil
}

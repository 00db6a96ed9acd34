package io

import (
	"bufio"
	stdio "io"
	"regexp"
	"strings"

	"github.com/alexjackson1/crustabri/internal/aa"
	"github.com/pkg/errors"
)

var (
	argPattern = regexp.MustCompile(`arg\(([^),\s]+)\)`)
	attPattern = regexp.MustCompile(`att\(([^),\s]+),([^),\s]+)\)`)
)

// AspartixReader reads the "apx" format: arg(X). lines declare
// arguments, att(X,Y). lines declare attacks. Attacks are applied only
// once every arg(...) line has been seen, so declaration order within
// the file does not matter.
type AspartixReader struct{}

func (AspartixReader) ReadInstance(r stdio.Reader) (*aa.AAF[string], error) {
	af := aa.New[string]()
	var pendingAttacks [][2]string

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if m := argPattern.FindStringSubmatch(line); m != nil {
			if _, err := af.NewArgument(m[1]); err != nil {
				return nil, &ParseError{Line: lineNo, Msg: err.Error()}
			}
			continue
		}
		if m := attPattern.FindStringSubmatch(line); m != nil {
			pendingAttacks = append(pendingAttacks, [2]string{m[1], m[2]})
			continue
		}
		return nil, &ParseError{Line: lineNo, Msg: "unrecognised directive: " + line}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "apx: reading instance")
	}

	for _, pair := range pendingAttacks {
		if err := af.NewAttack(pair[0], pair[1]); err != nil {
			return nil, errors.Wrapf(err, "apx: att(%s,%s) references unknown argument", pair[0], pair[1])
		}
	}
	return af, nil
}

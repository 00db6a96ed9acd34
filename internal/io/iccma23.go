package io

import (
	"bufio"
	stdio "io"
	"strconv"
	"strings"

	"github.com/alexjackson1/crustabri/internal/aa"
	"github.com/pkg/errors"
)

// Iccma23Reader reads the ICCMA23 format: a "p af <n>" header declares
// arguments 1..n, and each following "u v" line declares an attack from
// u to v.
type Iccma23Reader struct{}

func (Iccma23Reader) ReadInstance(r stdio.Reader) (*aa.AAF[int], error) {
	af := aa.New[int]()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	headerSeen := false

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "p ") {
			fields := strings.Fields(line)
			if len(fields) != 3 || fields[1] != "af" {
				return nil, &ParseError{Line: lineNo, Msg: "malformed header: " + line}
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil || n < 0 {
				return nil, &ParseError{Line: lineNo, Msg: "malformed argument count: " + fields[2]}
			}
			for i := 1; i <= n; i++ {
				if _, err := af.NewArgument(i); err != nil {
					return nil, errors.Wrap(err, "iccma23: header")
				}
			}
			headerSeen = true
			continue
		}
		if !headerSeen {
			return nil, &ParseError{Line: lineNo, Msg: "attack line before \"p af\" header"}
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &ParseError{Line: lineNo, Msg: "malformed attack line: " + line}
		}
		u, errU := strconv.Atoi(fields[0])
		v, errV := strconv.Atoi(fields[1])
		if errU != nil || errV != nil {
			return nil, &ParseError{Line: lineNo, Msg: "non-integer attack endpoint: " + line}
		}
		if err := af.NewAttack(u, v); err != nil {
			return nil, errors.Wrapf(err, "iccma23: attack %d %d references unknown argument", u, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "iccma23: reading instance")
	}
	if !headerSeen {
		return nil, &ParseError{Line: lineNo, Msg: "missing \"p af\" header"}
	}
	return af, nil
}

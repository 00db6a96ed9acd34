package sat

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"

	"github.com/go-air/gini/dimacs"
)

// ExternalSolver models a subprocess that reads DIMACS CNF on stdin and
// writes DIMACS result lines on stdout. The underlying protocol is
// non-incremental, so every Solve /
// SolveUnderAssumptions call spawns a fresh child; assumptions are
// encoded as unit clauses added only to that call's instance, never to
// the accumulated clause set.
type ExternalSolver struct {
	program   string
	options   []string
	clauses   []Clause
	maxVar    int
	listeners []SolvingListener
}

// NewExternalSolver returns a Solver that drives `program options...` as
// a DIMACS-speaking subprocess.
func NewExternalSolver(program string, options []string) *ExternalSolver {
	return &ExternalSolver{program: program, options: options}
}

func (s *ExternalSolver) Reserve(n int) {
	if n > s.maxVar {
		s.maxVar = n
	}
}

func (s *ExternalSolver) AddClause(cl Clause) {
	s.clauses = append(s.clauses, cl)
	for _, lit := range cl {
		if v := int(lit.Var()); v > s.maxVar {
			s.maxVar = v
		}
	}
}

func (s *ExternalSolver) NVars() int {
	return s.maxVar
}

func (s *ExternalSolver) AddListener(l SolvingListener) {
	s.listeners = append(s.listeners, l)
}

func (s *ExternalSolver) Solve() SolvingResult {
	return s.solve(nil)
}

func (s *ExternalSolver) SolveUnderAssumptions(assumptions []Literal) SolvingResult {
	return s.solve(assumptions)
}

func (s *ExternalSolver) solve(assumptions []Literal) SolvingResult {
	for _, l := range assumptions {
		if v := int(l.Var()); v > s.maxVar {
			s.maxVar = v
		}
	}
	for _, l := range s.listeners {
		l.SolvingStart(s.maxVar, len(s.clauses)+len(assumptions))
	}
	result := s.runChild(assumptions)
	for _, l := range s.listeners {
		l.SolvingEnd(result)
	}
	return result
}

// runChild spawns the external solver, streaming the DIMACS instance on
// a writer goroutine while this goroutine waits on the child and parses
// its stdout, so neither side blocks the other on a full OS pipe
// buffer.
func (s *ExternalSolver) runChild(assumptions []Literal) SolvingResult {
	var instance bytes.Buffer
	writeDimacsInstance(&instance, s.maxVar, s.clauses, assumptions)

	cmd := exec.Command(s.program, s.options...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return SolvingResult{Status: Unknown}
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return SolvingResult{Status: Unknown}
	}
	if err := cmd.Start(); err != nil {
		return SolvingResult{Status: Unknown}
	}

	go func() {
		_, _ = io.Copy(stdin, &instance)
		_ = stdin.Close()
	}()

	vis := &solveVisitor{}
	parseErr := dimacs.ReadSolve(stdout, vis)
	_ = cmd.Wait()

	if parseErr != nil || !vis.sawStatus {
		// A child that exits without ever emitting an "s" line -
		// whether it crashed, printed garbage, or merely returned a
		// nonzero exit code - is reported as Unknown rather than as an
		// error; only a parsed, recognized status line counts.
		return SolvingResult{Status: Unknown}
	}
	switch vis.status {
	case 1:
		return SolvingResult{Status: Satisfiable, Model: vis.toAssignment(s.maxVar)}
	case -1:
		return SolvingResult{Status: Unsatisfiable}
	default:
		return SolvingResult{Status: Unknown}
	}
}

// writeDimacsInstance writes the header and clauses in insertion order,
// with the assumptions appended as unit clauses local to this call.
func writeDimacsInstance(w io.Writer, nVars int, clauses []Clause, assumptions []Literal) {
	fmt.Fprintf(w, "p cnf %d %d\n", nVars, len(clauses)+len(assumptions))
	for _, cl := range clauses {
		for _, lit := range cl {
			fmt.Fprintf(w, "%d ", int(lit))
		}
		fmt.Fprintln(w, "0")
	}
	for _, lit := range assumptions {
		fmt.Fprintf(w, "%d 0\n", int(lit))
	}
}

// solveVisitor implements gini/dimacs.SolveVis, collecting the parsed
// status line and any "v" lines into a SolvingResult.
type solveVisitor struct {
	sawStatus bool
	status    int
	trueVars  map[int]bool
}

func (v *solveVisitor) Solution(status int) {
	v.sawStatus = true
	v.status = status
}

func (v *solveVisitor) Value(m int) {
	if v.trueVars == nil {
		v.trueVars = make(map[int]bool)
	}
	if m > 0 {
		v.trueVars[m] = true
	}
}

func (v *solveVisitor) Eof() {}

func (v *solveVisitor) toAssignment(nVars int) *Assignment {
	if nVars < len(v.trueVars) {
		for m := range v.trueVars {
			if m > nVars {
				nVars = m
			}
		}
	}
	a := NewAssignment(nVars)
	for i := 1; i <= nVars; i++ {
		a.Set(Variable(i), v.trueVars[i])
	}
	return a
}

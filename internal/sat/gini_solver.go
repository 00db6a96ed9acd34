package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"
)

const (
	giniSatisfiable   = 1
	giniUnsatisfiable = -1
)

// giniSolver is the in-process Solver backend, bound to the gini CDCL
// library. Clause literals are addressed with the same Dimacs-style
// numbering this package's own Literal type already uses, so translation
// is a direct call to z.Dimacs2Lit.
type giniSolver struct {
	g         inter.S
	maxVar    int
	nClauses  int
	listeners []SolvingListener
}

// NewGiniSolver returns a fresh in-process Solver backed by gini.
func NewGiniSolver() Solver {
	return &giniSolver{g: gini.New()}
}

func (s *giniSolver) Reserve(n int) {
	if n > s.maxVar {
		s.maxVar = n
	}
}

func (s *giniSolver) AddClause(cl Clause) {
	for _, lit := range cl {
		s.g.Add(toZLit(lit))
		if v := int(lit.Var()); v > s.maxVar {
			s.maxVar = v
		}
	}
	s.g.Add(z.LitNull)
	s.nClauses++
}

func (s *giniSolver) NVars() int {
	return s.maxVar
}

func (s *giniSolver) AddListener(l SolvingListener) {
	s.listeners = append(s.listeners, l)
}

func (s *giniSolver) Solve() SolvingResult {
	s.notifyStart()
	result := s.toResult(s.g.Solve())
	s.notifyEnd(result)
	return result
}

func (s *giniSolver) SolveUnderAssumptions(assumptions []Literal) SolvingResult {
	s.notifyStart()
	zs := make([]z.Lit, len(assumptions))
	for i, a := range assumptions {
		zs[i] = toZLit(a)
	}
	s.g.Assume(zs...)
	result := s.toResult(s.g.Solve())
	s.notifyEnd(result)
	return result
}

func (s *giniSolver) notifyStart() {
	for _, l := range s.listeners {
		l.SolvingStart(s.maxVar, s.nClauses)
	}
}

func (s *giniSolver) notifyEnd(r SolvingResult) {
	for _, l := range s.listeners {
		l.SolvingEnd(r)
	}
}

func (s *giniSolver) toResult(outcome int) SolvingResult {
	switch outcome {
	case giniSatisfiable:
		return SolvingResult{Status: Satisfiable, Model: s.extractModel()}
	case giniUnsatisfiable:
		return SolvingResult{Status: Unsatisfiable}
	default:
		return SolvingResult{Status: Unknown}
	}
}

func (s *giniSolver) extractModel() *Assignment {
	a := NewAssignment(s.maxVar)
	for v := 1; v <= s.maxVar; v++ {
		a.Set(Variable(v), s.g.Value(z.Dimacs2Lit(v)))
	}
	return a
}

func toZLit(l Literal) z.Lit {
	return z.Dimacs2Lit(int(l))
}

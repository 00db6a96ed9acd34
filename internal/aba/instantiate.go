package aba

import "github.com/alexjackson1/crustabri/internal/aa"

// ABAFrameworkInstantiation instantiates a Framework, restricted to
// atomic assumptions, into an AAF: one argument per assumption atom,
// with an attack from b to a whenever some rule derives a's contrary
// from a body built entirely out of assumptions, for every assumption
// b in that body. Full ABA argument-tree construction (non-atomic
// assumptions, nested sub-arguments, multiple rules combined into one
// argument) is out of scope. Each rule is used on its own: a rule whose
// body has several assumptions adds one attack from each of them, a fact
// (a rule with an empty body) adds no attack, and contraries derived
// only through chains of rules add no attack either.
//
// It exposes the bidirectional assumption-atom <-> instantiated-
// argument mapping the ICCMA23 ABA front end needs to resolve a -a
// query argument into the AAF the core solvers operate on.
type ABAFrameworkInstantiation struct {
	af              *aa.AAF[string]
	assumptionToArg map[string]*aa.Argument[string]
	argToAssumption map[int]string
}

// Instantiate builds the AAF for f and its bidirectional mapping.
func Instantiate(f *Framework) (*ABAFrameworkInstantiation, error) {
	af := aa.New[string]()
	assumptionToArg := make(map[string]*aa.Argument[string])
	argToAssumption := make(map[int]string)

	for _, atom := range f.Assumptions() {
		arg, err := af.NewArgument(atom)
		if err != nil {
			return nil, err
		}
		assumptionToArg[atom] = arg
		argToAssumption[arg.ID()] = atom
	}

	for _, rule := range f.Rules() {
		if !bodyIsAllAssumptions(f, rule.Body) {
			continue
		}
		for _, owner := range contraryOwners(f, rule.Head) {
			for _, b := range rule.Body {
				if err := af.NewAttack(b, owner); err != nil {
					return nil, err
				}
			}
		}
	}

	return &ABAFrameworkInstantiation{af: af, assumptionToArg: assumptionToArg, argToAssumption: argToAssumption}, nil
}

func bodyIsAllAssumptions(f *Framework, body []string) bool {
	for _, atom := range body {
		if !f.IsAssumption(atom) {
			return false
		}
	}
	return true
}

func contraryOwners(f *Framework, contrary string) []string {
	var owners []string
	for _, atom := range f.Assumptions() {
		if c, _ := f.Contrary(atom); c == contrary {
			owners = append(owners, atom)
		}
	}
	return owners
}

// AAF returns the instantiated argumentation framework.
func (i *ABAFrameworkInstantiation) AAF() *aa.AAF[string] {
	return i.af
}

// AssumptionToInstantiatedArg returns the AAF argument instantiated for
// the given assumption atom.
func (i *ABAFrameworkInstantiation) AssumptionToInstantiatedArg(atom string) (*aa.Argument[string], bool) {
	arg, ok := i.assumptionToArg[atom]
	return arg, ok
}

// InstantiatedArgToAssumption returns the assumption atom an AAF
// argument was instantiated from.
func (i *ABAFrameworkInstantiation) InstantiatedArgToAssumption(arg *aa.Argument[string]) (string, bool) {
	atom, ok := i.argToAssumption[arg.ID()]
	return atom, ok
}

package main

import (
	"os"

	"github.com/pkg/errors"

	"github.com/alexjackson1/crustabri/internal/aa"
	"github.com/alexjackson1/crustabri/internal/aba"
	textio "github.com/alexjackson1/crustabri/internal/io"
	"github.com/alexjackson1/crustabri/internal/sat"
	"github.com/alexjackson1/crustabri/internal/solvers"
)

// solveIccma23ABA handles the --reader iccma23_aba front end: the
// framework is flattened to atomic assumptions, instantiated to an AAF
// over the assumption atoms themselves, and then answered exactly like
// any other AAF instance.
func solveIccma23ABA(file *os.File, query aa.Query, semantics aa.Semantics, factory sat.FactoryFn) error {
	framework, err := aba.ReadIccma23ABA(file)
	if err != nil {
		return errors.Wrap(err, "reading ABA instance")
	}
	instantiation, err := aba.Instantiate(framework)
	if err != nil {
		return errors.Wrap(err, "instantiating ABA framework")
	}

	writer := textio.Iccma23Writer[string]{}
	af := instantiation.AAF()

	var arg *aa.Argument[string]
	if flagArg != "" {
		var ok bool
		arg, ok = instantiation.AssumptionToInstantiatedArg(flagArg)
		if !ok {
			return errors.Wrap(&aa.UnknownLabelError[string]{Label: flagArg}, "resolving --arg against the instantiated assumptions")
		}
	}

	solver := solvers.NewSolver(af, semantics, factory)
	return answer(os.Stdout, writer, solver, query, arg)
}

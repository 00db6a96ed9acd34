package main

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/alexjackson1/crustabri/internal/aa"
	textio "github.com/alexjackson1/crustabri/internal/io"
	"github.com/alexjackson1/crustabri/internal/sat"
	"github.com/alexjackson1/crustabri/internal/solvers"
)

var (
	flagInput              string
	flagReader             string
	flagProblem            string
	flagArg                string
	flagWithCertificate    bool
	flagExternalSolver     string
	flagExternalSolverOpts []string
	flagLoggingLevel       string
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Answer one SE/DC/DS query against an argumentation instance",
		RunE:  runSolve,
	}
	flags := cmd.Flags()
	flags.StringVar(&flagInput, "input", "", "path to the instance file")
	flags.StringVar(&flagReader, "reader", "", "instance format: apx, iccma23, iccma23_aba")
	flags.StringVarP(&flagProblem, "problem", "p", "", "query and semantics, e.g. SE-PR, DC-GR, DS-ST")
	flags.StringVarP(&flagArg, "arg", "a", "", "the argument under study, required for DC/DS")
	flags.BoolVarP(&flagWithCertificate, "with-certificate", "c", false, "emit a witness extension alongside a DC/DS answer")
	flags.StringVar(&flagExternalSolver, "external-sat-solver", "", "path to an external DIMACS-speaking SAT solver")
	flags.StringArrayVar(&flagExternalSolverOpts, "external-sat-solver-opt", nil, "an option to pass to the external SAT solver (repeatable)")
	flags.StringVar(&flagLoggingLevel, "logging-level", "info", "off, error, warn, info, debug or trace")
	for _, name := range []string{"input", "reader", "problem"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	if err := applyLoggingLevel(flagLoggingLevel); err != nil {
		return err
	}

	query, semantics, err := aa.ParseProblemString(flagProblem)
	if err != nil {
		return errors.Wrap(err, "parsing --problem")
	}
	if err := checkArgDefinition(query, flagArg); err != nil {
		return err
	}

	file, err := os.Open(flagInput)
	if err != nil {
		return errors.Wrap(err, "opening --input")
	}
	defer file.Close()

	factory := newSatSolverFactory()

	switch flagReader {
	case "apx":
		return solveWithReaderAndWriter[string](file, textio.AspartixReader{}, textio.AspartixWriter[string]{}, query, semantics, factory, parseStringArg)
	case "iccma23":
		return solveWithReaderAndWriter[int](file, textio.Iccma23Reader{}, textio.Iccma23Writer[int]{}, query, semantics, factory, parseIntArg)
	case "iccma23_aba":
		return solveIccma23ABA(file, query, semantics, factory)
	default:
		return fmt.Errorf("unknown --reader %q", flagReader)
	}
}

// checkArgDefinition enforces the argument requiredness that differs
// between queries: SE never uses one, DC/DS always need one.
func checkArgDefinition(query aa.Query, arg string) error {
	if query == aa.SE {
		if arg != "" {
			log.Warnf("--arg is ignored by query %s", query)
		}
		return nil
	}
	if arg == "" {
		return fmt.Errorf("--arg is required for query %s", query)
	}
	return nil
}

func solveWithReaderAndWriter[T aa.LabelType](
	file *os.File,
	reader textio.InstanceReader[T],
	writer textio.ResponseWriter[T],
	query aa.Query,
	semantics aa.Semantics,
	factory sat.FactoryFn,
	parseArg func(af *aa.AAF[T], raw string) (*aa.Argument[T], error),
) error {
	af, err := reader.ReadInstance(file)
	if err != nil {
		return errors.Wrap(err, "reading instance")
	}

	var arg *aa.Argument[T]
	if flagArg != "" {
		arg, err = parseArg(af, flagArg)
		if err != nil {
			return errors.Wrap(err, "resolving --arg")
		}
	}

	solver := solvers.NewSolver(af, semantics, factory)
	return answer(os.Stdout, writer, solver, query, arg)
}

// answer dispatches the already-built solver against query, writing the
// response in writer's format.
func answer[T aa.LabelType](out *os.File, writer textio.ResponseWriter[T], solver solvers.AAFSolver[T], query aa.Query, arg *aa.Argument[T]) error {
	switch query {
	case aa.SE:
		return writer.WriteExtension(out, solver.ComputeOneExtension())
	case aa.DC:
		if flagWithCertificate {
			accepted, certificate := solver.IsCredulouslyAcceptedWithCertificate(arg)
			return writer.WriteAcceptance(out, accepted, certificate)
		}
		return writer.WriteAcceptance(out, solver.IsCredulouslyAccepted(arg), nil)
	case aa.DS:
		if flagWithCertificate {
			accepted, certificate := solver.IsSkepticallyAcceptedWithCertificate(arg)
			return writer.WriteAcceptance(out, accepted, certificate)
		}
		return writer.WriteAcceptance(out, solver.IsSkepticallyAccepted(arg), nil)
	default:
		return fmt.Errorf("unsupported query %s", query)
	}
}

func parseStringArg(af *aa.AAF[string], raw string) (*aa.Argument[string], error) {
	arg, ok := af.ArgumentSet().GetByLabel(raw)
	if !ok {
		return nil, &aa.UnknownLabelError[string]{Label: raw}
	}
	return arg, nil
}

func parseIntArg(af *aa.AAF[int], raw string) (*aa.Argument[int], error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "argument %q is not an integer", raw)
	}
	arg, ok := af.ArgumentSet().GetByLabel(n)
	if !ok {
		return nil, &aa.UnknownLabelError[int]{Label: n}
	}
	return arg, nil
}

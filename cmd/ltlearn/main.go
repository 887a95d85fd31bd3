// Command ltlearn learns an LTLf formula of bounded size that accepts
// the positive traces of the input and rejects the negative ones.
//
// Usage:
//
//	ltlearn [flags] <input> <output>
//
// input and output are file paths; `-` selects stdin/stdout. The size
// flag bounds the skeleton; the format flags select what gets written.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/xDarkicex/ltlearn"
	"github.com/xDarkicex/ltlearn/boollogic"
	"github.com/xDarkicex/ltlearn/trace"
)

type options struct {
	size    int
	fmtExpr bool
	fmtCNF  bool
	fmtRes  bool
	fmtTup  bool
	fmtBoth bool
	verbose bool
}

func main() {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "ltlearn <input> <output>",
		Short:         "Learn an LTLf formula separating positive and negative traces",
		Long:          "ltlearn reduces bounded LTLf formula synthesis to SAT:\nit grows a skeleton size bound until a formula accepts every positive\ntrace and rejects every negative one, then decodes the solver model.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(opts, args[0], args[1])
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "n", 0, "maximum skeleton size to try")
	cmd.Flags().BoolVarP(&opts.fmtExpr, "expr", "e", false, "dump the enforcer expressions")
	cmd.Flags().BoolVarP(&opts.fmtCNF, "cnf", "c", false, "write the constraint system as DIMACS CNF")
	cmd.Flags().BoolVarP(&opts.fmtRes, "result", "r", false, "dump the satisfying assignment")
	cmd.Flags().BoolVarP(&opts.fmtTup, "tuple", "t", false, "emit the formula as a Python tuple")
	cmd.Flags().BoolVarP(&opts.fmtBoth, "both", "b", false, "emit the formula in infix and tuple form")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log solving progress to stderr")
	_ = cmd.MarkFlagRequired("size")
	cmd.MarkFlagsMutuallyExclusive("expr", "cnf", "result", "tuple", "both")

	if err := cmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "ltlearn: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *options, inputPath, outputPath string) error {
	if opts.verbose {
		ltlearn.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger()
	}

	ctx, err := readInput(inputPath)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	switch {
	case opts.fmtExpr:
		return dumpExpressions(ctx, opts.size, out)
	case opts.fmtCNF:
		return dumpCNF(ctx, opts.size, out)
	case opts.fmtRes:
		return dumpResult(ctx, opts.size, out)
	default:
		return emitFormula(ctx, opts, out)
	}
}

func readInput(path string) (*trace.Context, error) {
	if path == "-" {
		return trace.ParseInput(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open input: %w", err)
	}
	defer f.Close()
	return trace.ParseInput(f)
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open output: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// dumpExpressions prints every enforcer rule at the requested bound,
// one per line, before CNF conversion.
func dumpExpressions(ctx *trace.Context, size int, out io.Writer) error {
	ctx.SetSizeBound(size)
	for _, rule := range ltlearn.Rules(ctx) {
		if _, err := fmt.Fprintln(out, rule); err != nil {
			return err
		}
	}
	return nil
}

// dumpCNF writes the normalized constraint system at the requested
// bound in DIMACS form.
func dumpCNF(ctx *trace.Context, size int, out io.Writer) error {
	ctx.SetSizeBound(size)
	conv, err := ltlearn.BuildConverter(ctx)
	if err != nil {
		return err
	}
	return conv.WriteDIMACS(out)
}

// dumpResult iterates the bound like the regular driver but prints the
// raw satisfying assignment instead of the decoded formula. Run,
// phantom and constant variables are elided.
func dumpResult(ctx *trace.Context, size int, out io.Writer) error {
	for n := 2; n <= size; n++ {
		conv, pos, err := ltlearn.SolveBound(ctx, n)
		if err != nil {
			return err
		}
		if pos == nil {
			continue
		}
		fmt.Fprintf(out, "n = %d, SAT = true\n", n)
		for id, name := range ctx.Words() {
			fmt.Fprintf(out, "word %s => %d\n", name, id)
		}
		for _, v := range conv.Variables() {
			if !pos.Holds(v) {
				continue
			}
			switch v.Tag {
			case boollogic.TagRun, boollogic.TagPhantom, boollogic.TagExactly:
				continue
			}
			fmt.Fprintf(out, "%s = true\n", v)
		}
		return nil
	}
	fmt.Fprintf(out, "n = %d, SAT = false\n", size)
	return fmt.Errorf("no formula of size <= %d exists", size)
}

// emitFormula runs the driver and prints the decoded formula in the
// selected rendering.
func emitFormula(ctx *trace.Context, opts *options, out io.Writer) error {
	result, err := ltlearn.Learn(ctx, opts.size)
	if err == ltlearn.ErrNoFormula {
		return fmt.Errorf("no formula of size <= %d exists", opts.size)
	}
	if err != nil {
		return err
	}

	switch {
	case opts.fmtTup:
		fmt.Fprintln(out, result.Formula.Tuple())
	case opts.fmtBoth:
		fmt.Fprintln(out, result.Formula)
		fmt.Fprintln(out, result.Formula.Tuple())
	default:
		fmt.Fprintln(out, result.Formula)
	}
	return nil
}

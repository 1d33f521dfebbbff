// Command vecbench times SAXPY and dot-product kernels in their scalar,
// auto and manually vectorized variants.
//
// Usage:
//
//	vecbench [flags]
//
// Examples:
//
//	vecbench -kernel saxpy -variant scalar
//	vecbench -kernel dot -variant manual -unroll 4 -n 65536 -iters 1000
//	vecbench -variant manual -csv -header
//	vecbench -validate -json
//	vecbench -list
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/must"

	"github.com/cwbudde/algo-vecbench/bench"
	"github.com/cwbudde/algo-vecbench/internal/cpu"
	"github.com/cwbudde/algo-vecbench/kernel"
)

type format int

const (
	formatText format = iota
	formatCSV
	formatJSON
)

type options struct {
	kernelName  string
	variantName string
	n           int
	iters       int
	unroll      int

	format   format
	header   bool
	validate bool
	list     bool
	generic  bool
}

var errValidation = errors.New("checksum validation failed")

func main() {
	log.AddFlags()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns its exit status: 0 on success and
// for -h, 1 for any error including bad flags.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vecbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	// Flags registered globally, such as -log, stay available.
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		fs.Var(f.Value, f.Name, f.Usage)
	})

	opts, err := parseFlags(fs, args)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case err != nil:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	w := bufio.NewWriter(stdout)
	err = execute(opts, w)
	must.Nil(w.Flush(), "flushing output")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	def := bench.DefaultConfig()

	var opts options
	fs.StringVar(&opts.kernelName, "kernel", def.Kernel.String(), "kernel to run: saxpy or dot")
	fs.StringVar(&opts.variantName, "variant", def.Variant.String(), "variant: scalar, auto or manual")
	fs.IntVar(&opts.n, "n", def.N, "number of elements per buffer")
	fs.IntVar(&opts.iters, "iters", def.Iterations, "number of timed kernel invocations")
	fs.IntVar(&opts.unroll, "unroll", def.Unroll, "manual unroll factor: 1, 2, 4 or 8 (others run as 2)")
	csvOut := fs.Bool("csv", false, "print one CSV row: kernel,variant,n,iters,unroll_factor,time_sec,gflops,checksum")
	jsonOut := fs.Bool("json", false, "print the result as a JSON object")
	fs.BoolVar(&opts.header, "header", false, "with -csv, print a header row first")
	fs.BoolVar(&opts.validate, "validate", false, "check the checksum against a float64 recomputation")
	fs.BoolVar(&opts.list, "list", false, "list CPU features and manual implementations, then exit")
	fs.BoolVar(&opts.generic, "generic", false, "ignore vector instruction sets (manual falls back to scalar)")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: vecbench [flags]\n\n")
		fmt.Fprintf(out, "Times SAXPY and dot-product kernels across scalar, auto and manual variants.\n\n")
		fmt.Fprintf(out, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if *csvOut && *jsonOut {
		return options{}, errors.New("-csv and -json are mutually exclusive")
	}
	switch {
	case *csvOut:
		opts.format = formatCSV
	case *jsonOut:
		opts.format = formatJSON
	}
	if opts.n < 0 {
		return options{}, fmt.Errorf("-n must be non-negative, got %d", opts.n)
	}
	if opts.iters < 0 {
		return options{}, fmt.Errorf("-iters must be non-negative, got %d", opts.iters)
	}
	return opts, nil
}

// config translates the command-line names. Unknown names stop here,
// before any buffers are allocated.
func (o options) config() (bench.Config, error) {
	k, err := kernel.ParseKind(o.kernelName)
	if err != nil {
		return bench.Config{}, err
	}
	v, err := kernel.ParseVariant(o.variantName)
	if err != nil {
		return bench.Config{}, err
	}
	return bench.Config{
		Kernel:     k,
		Variant:    v,
		N:          o.n,
		Iterations: o.iters,
		Unroll:     o.unroll,
	}, nil
}

func execute(opts options, w io.Writer) error {
	if opts.generic {
		cpu.ForceGeneric()
		kernel.Refresh()
	}
	if opts.list {
		return printList(w)
	}

	cfg, err := opts.config()
	if err != nil {
		return err
	}

	res, err := bench.Run(cfg)
	if err != nil {
		return err
	}

	var val *bench.Validation
	if opts.validate {
		v := bench.Validate(cfg, res, bench.DefaultTolerance)
		val = &v
		if !v.OK {
			log.Error.Printf("checksum %v differs from reference %v (relative error %.3g > %.3g)",
				res.Checksum, v.Reference, v.RelErr, v.Tolerance)
		}
	}

	switch opts.format {
	case formatCSV:
		err = writeCSV(w, cfg, res, val, opts.header)
	case formatJSON:
		err = writeJSON(w, cfg, res, val)
	default:
		err = writeText(w, cfg, res, val)
	}
	if err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	if val != nil && !val.OK {
		return errValidation
	}
	return nil
}

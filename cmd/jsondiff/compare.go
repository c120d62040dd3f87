// The jsondiff command compares two JSON files, or two directories of JSON
// files, and prints every difference between them.
//
// Usage:
//
//	jsondiff [flags] LHS RHS
//
// In directory mode files are paired by relative path and compared
// concurrently; files present on only one side are reported as missing.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/askiada/go-jsondiff/internal/log"
	"github.com/askiada/go-jsondiff/pkg/jsondiff"
	"github.com/askiada/go-jsondiff/pkg/jsondiff/report"
)

// Exit codes, so wrapping scripts can tell "documents differ" from "the tool
// could not run".
const (
	exitMatch       = 0
	exitDifferences = 1
	exitUsageError  = 2
	exitIOError     = 3
)

type options struct {
	mode            string
	unorderedArrays bool
	assumeFloat     bool
	epsilon         float64
	dotFile         string
	concurrency     int
	logLevel        string
	quiet           bool
}

func run(args []string, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("jsondiff", flag.ContinueOnError)
	fset.SetOutput(stderr)

	opts := options{}
	fset.StringVar(&opts.mode, "mode", "strict", "compare mode: strict or inclusive")
	fset.BoolVar(&opts.unorderedArrays, "unordered-arrays", false, "ignore array ordering (inclusive mode only)")
	fset.BoolVar(&opts.assumeFloat, "assume-float", false, "compare every number as a float")
	fset.Float64Var(&opts.epsilon, "epsilon", -1, "treat floats equal within this tolerance (negative disables)")
	fset.StringVar(&opts.dotFile, "dot", "", "write a DOT graph of the differences to this file")
	fset.IntVar(&opts.concurrency, "concurrency", runtime.NumCPU(), "number of concurrent comparisons in directory mode")
	fset.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fset.BoolVar(&opts.quiet, "quiet", false, "only print differences, no summary logging")

	err := fset.Parse(args)
	if err != nil {
		return exitUsageError
	}

	if opts.quiet {
		opts.logLevel = "error"
	}
	log.Configure(log.Config{Level: opts.logLevel, Output: stderr})
	logger := log.WithComponent("cli")

	if fset.NArg() != 2 {
		fmt.Fprintln(stderr, "usage: jsondiff [flags] LHS RHS")
		fset.PrintDefaults()

		return exitUsageError
	}

	cfg, err := buildConfig(opts)
	if err != nil {
		logger.Error().Err(err).Msg("invalid configuration")

		return exitUsageError
	}

	lhs, rhs := fset.Arg(0), fset.Arg(1)
	lhsInfo, err := os.Stat(lhs)
	if err != nil {
		logger.Error().Err(err).Str("path", lhs).Msg("unable to stat path")

		return exitIOError
	}
	rhsInfo, err := os.Stat(rhs)
	if err != nil {
		logger.Error().Err(err).Str("path", rhs).Msg("unable to stat path")

		return exitIOError
	}

	if lhsInfo.IsDir() != rhsInfo.IsDir() {
		fmt.Fprintln(stderr, "jsondiff: LHS and RHS must both be files or both be directories")

		return exitUsageError
	}

	if lhsInfo.IsDir() {
		if opts.dotFile != "" {
			fmt.Fprintln(stderr, "jsondiff: -dot is only supported when comparing two files")

			return exitUsageError
		}

		return runDirs(lhs, rhs, cfg, opts, stdout, logger)
	}

	return runFiles(lhs, rhs, cfg, opts, stdout, logger)
}

func buildConfig(opts options) (*jsondiff.Config, error) {
	var mode jsondiff.CompareMode
	switch opts.mode {
	case "strict":
		mode = jsondiff.Strict
	case "inclusive":
		mode = jsondiff.Inclusive
	default:
		return nil, errors.Errorf("unknown compare mode %q", opts.mode)
	}

	var cfgOpts []jsondiff.Option
	if opts.unorderedArrays {
		cfgOpts = append(cfgOpts, jsondiff.WithIgnoredArrayOrder())
	}
	if opts.assumeFloat {
		cfgOpts = append(cfgOpts, jsondiff.WithNumericMode(jsondiff.AssumeFloat))
	}
	if opts.epsilon >= 0 {
		cfgOpts = append(cfgOpts, jsondiff.WithFloatCompareMode(jsondiff.FloatEpsilon(opts.epsilon)))
	}

	return jsondiff.NewConfig(mode, cfgOpts...)
}

func runFiles(lhs, rhs string, cfg *jsondiff.Config, opts options, stdout io.Writer, logger zerolog.Logger) int {
	diffs, err := compareFiles(lhs, rhs, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("comparison failed")

		return exitIOError
	}

	if opts.dotFile != "" {
		err = writeDOT(opts.dotFile, diffs)
		if err != nil {
			logger.Error().Err(err).Str("file", opts.dotFile).Msg("unable to write graph")

			return exitIOError
		}
	}

	if len(diffs) == 0 {
		logger.Info().Str("lhs", lhs).Str("rhs", rhs).Msg("documents match")

		return exitMatch
	}

	printDifferences(stdout, diffs)
	logger.Info().Str("lhs", lhs).Str("rhs", rhs).Int("differences", len(diffs)).Msg("documents differ")

	return exitDifferences
}

func compareFiles(lhs, rhs string, cfg *jsondiff.Config) ([]jsondiff.Difference, error) {
	lv, err := loadJSON(lhs)
	if err != nil {
		return nil, err
	}
	rv, err := loadJSON(rhs)
	if err != nil {
		return nil, err
	}

	return jsondiff.Diff(lv, rv, cfg)
}

func loadJSON(name string) (any, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", name)
	}
	defer file.Close()

	dec := json.NewDecoder(file)
	dec.UseNumber()

	var v any
	err = dec.Decode(&v)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode %s", name)
	}

	return v, nil
}

func printDifferences(wrt io.Writer, diffs []jsondiff.Difference) {
	for i, d := range diffs {
		if i > 0 {
			fmt.Fprintln(wrt)
		}
		fmt.Fprintln(wrt, d.String())
	}
}

func writeDOT(name string, diffs []jsondiff.Difference) error {
	rep, err := report.NewDOTReporter()
	if err != nil {
		return err
	}
	for _, d := range diffs {
		err = rep.AddDifference(d)
		if err != nil {
			return err
		}
	}

	return rep.WriteFile(name)
}

// Command gridwalk runs one puzzle solution over an input file and prints
// the answer.
//
//	gridwalk [-config file] [-v] <solution> <input-file>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"

	"github.com/katalvlaran/gridwalk/config"
	"github.com/katalvlaran/gridwalk/internal/ctxlog"
)

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "gridwalk:", err)
		}
		os.Exit(1)
	}
}

// errUsage is returned after the usage text has been written.
var errUsage = errors.New("usage")

// solution computes one answer from a whole input file.
type solution func(ctx context.Context, cfg config.Config, input string) (int64, error)

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func usage(w io.Writer, fs *flag.FlagSet) {
	names := make([]string, 0, len(solutions))
	for name := range solutions {
		names = append(names, name)
	}
	slices.Sort(names)
	fmt.Fprintf(w, "usage: gridwalk [flags] <solution> <input-file>\n")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(w, " ", name)
	}
}

// run parses args, solves, and writes the answer to stdout. Logs and
// usage go to stderr. Any returned error is fatal; nothing is written to
// stdout in that case.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	fs := flag.NewFlagSet("gridwalk", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration `file`")
	verbose := fs.Bool("v", false, "log at debug level")
	fs.Usage = func() { usage(stderr, fs) }
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 2 {
		usage(stderr, fs)
		return errUsage
	}
	name, path := fs.Arg(0), fs.Arg(1)
	fn, ok := solutions[name]
	if !ok {
		return fmt.Errorf("unknown solution %q", name)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, logger), "solution", name)
	logger = ctxlog.FromContext(ctx)
	logger.Debug("effective configuration", "config", pretty.Sprint(cfg))

	input, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	start := time.Now()
	answer, err := fn(ctx, cfg, string(input))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	logger.Info("solved",
		"answer", humanize.Comma(answer),
		"input", humanize.Bytes(uint64(len(input))),
		"elapsed", time.Since(start))

	_, err = fmt.Fprintln(stdout, answer)
	return err
}

// newLogger builds the slog handler named by cfg.
func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), nil
}

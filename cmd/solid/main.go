package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"go.uber.org/zap"

	"github.com/sghaida/solid/demo"
	"github.com/sghaida/solid/internal/config"
	"github.com/sghaida/solid/internal/logging"
)

// run executes the CLI and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("solid", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "", "path to a YAML config file")
	principles := flags.String("principle", "", "comma separated principles (srp,ocp,lsp,isp,dip); empty means all")
	variant := flags.String("variant", "", "good, bad or both")
	list := flags.Bool("list", false, "list registered snippets and exit")
	var headers optionalBool
	flags.Var(&headers, "headers", "print a header line before each snippet")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() > 0 {
		_, _ = fmt.Fprintln(stderr, "usage: solid [-config file] [-principle list] [-variant good|bad|both] [-headers] [-list]")
		return 2
	}

	// Load does not validate; the selection is checked by cfg.Keys once
	// flags have been applied.
	cfg, err := config.Load(*configPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "solid:", err)
		return 2
	}
	if *principles != "" {
		cfg.Principles = config.SplitList(*principles)
	}
	if *variant != "" {
		cfg.Variant = *variant
	}
	if headers.set {
		cfg.Headers = headers.val
	}

	reg := demo.Default()
	if *list {
		for _, k := range reg.Keys() {
			_, _ = fmt.Fprintf(stdout, "%s\t%s\n", k, k.Principle.Title())
		}
		return 0
	}

	keys, err := cfg.Keys()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "solid:", err)
		return 2
	}

	logger, err := logging.New(logging.Options{
		Level:       cfg.LogLevel,
		Development: cfg.Development,
		File:        cfg.LogFile,
	}, stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "solid: logger:", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	runner := demo.NewRunner(reg, logger)
	runner.Headers = cfg.Headers

	logger.Debug("running snippets", zap.Int("count", len(keys)))
	if err := runner.Run(ctx, stdout, keys...); err != nil {
		logger.Error("run failed", zap.Error(err))
		return 1
	}
	return 0
}

// optionalBool is a bool flag that remembers whether it was given.
type optionalBool struct {
	set bool
	val bool
}

func (b *optionalBool) String() string {
	if b == nil || !b.val {
		return "false"
	}
	return "true"
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.set, b.val = true, v
	return nil
}

func (b *optionalBool) IsBoolFlag() bool { return true }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

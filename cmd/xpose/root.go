package main

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-transpose/hwy"
	"github.com/ajroetker/go-transpose/hwy/contrib/transpose"
)

var (
	errInvalidOrder = errors.New("matrix order must be positive")
	errInvalidFlag  = errors.New("invalid flag value")
)

// options holds the command-line configuration.
type options struct {
	order     int
	threads   int
	strategy  string
	repeat    int
	symmetric bool
	seed      int64
	logLevel  string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "xpose",
		Short: "Benchmark square float32 matrix transposes and symmetry checks",
		Long: `xpose fills an n×n float32 matrix with random values, times every
symmetry check and transpose strategy on it, and verifies each result
against the naive implementation.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.setupLogger(cmd); err != nil {
				return err
			}
			strategies, err := opts.validate()
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), opts, strategies)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.order, "order", "n", 4096, "matrix order (rows and columns)")
	f.IntVarP(&opts.threads, "threads", "t", runtime.GOMAXPROCS(0), "worker count for the parallel strategies")
	f.StringVarP(&opts.strategy, "strategy", "s", "all",
		"comma-separated strategies ("+strings.Join(strategyNames(), ",")+"), 'auto' or 'all'")
	f.IntVarP(&opts.repeat, "repeat", "r", 1, "runs per strategy; the reported time is the average")
	f.BoolVar(&opts.symmetric, "symmetric", false, "generate a symmetric matrix")
	f.Int64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

// setupLogger installs a text logger on stderr for this command and for the
// transpose packages.
func (o *options) setupLogger(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return fmt.Errorf("--log-level %q: %w", o.logLevel, errInvalidFlag)
	}
	hwy.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

// validate checks the numeric flags, fills in the seed and resolves the
// strategy list.
func (o *options) validate() ([]transpose.Strategy, error) {
	if o.order <= 0 {
		return nil, fmt.Errorf("--order %d: %w", o.order, errInvalidOrder)
	}
	if o.threads <= 0 {
		return nil, fmt.Errorf("--threads %d: %w", o.threads, errInvalidFlag)
	}
	if o.repeat <= 0 {
		return nil, fmt.Errorf("--repeat %d: %w", o.repeat, errInvalidFlag)
	}
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}
	strategies, err := parseStrategies(o.strategy, o.order)
	if err != nil {
		return nil, fmt.Errorf("--strategy: %w", err)
	}
	return strategies, nil
}

// parseStrategies resolves a comma-separated strategy list. "all" selects
// every strategy and "auto" the one transpose.Select picks for n.
func parseStrategies(s string, n int) ([]transpose.Strategy, error) {
	var result []transpose.Strategy
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		switch name {
		case "":
			continue
		case "all":
			return transpose.Strategies(), nil
		case "auto":
			result = append(result, transpose.Select(n))
		default:
			st, err := transpose.ParseStrategy(name)
			if err != nil {
				return nil, err
			}
			result = append(result, st)
		}
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no strategy in %q: %w", s, errInvalidFlag)
	}
	return result, nil
}

func strategyNames() []string {
	var names []string
	for _, s := range transpose.Strategies() {
		names = append(names, s.String())
	}
	return names
}

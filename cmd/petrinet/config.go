package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/petrinet/config"
	"github.com/katalvlaran/petrinet/explore"
	"github.com/katalvlaran/petrinet/ilp"
	"github.com/katalvlaran/petrinet/net"
	"github.com/katalvlaran/petrinet/symbolic"
	"github.com/katalvlaran/petrinet/telemetry"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run-config <file.yaml>",
		Short: "Run the task described by a YAML run configuration",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfig,
	}
	return cmd
}

func runConfig(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}

	logger := telemetry.Noop()
	if cfg.LogLevel == "debug" {
		logger = telemetry.Stderr()
	}

	n, err := loadNet(cfg.NetPath)
	if err != nil {
		return err
	}

	switch cfg.Task {
	case "explore":
		opts := []explore.Option{}
		if cfg.Limits.ExploreVisited > 0 {
			opts = append(opts, explore.WithLimit(cfg.Limits.ExploreVisited))
		}
		result, err := explore.Run(n, opts...)
		if err != nil {
			return err
		}
		fmt.Printf("reachable markings: %d\n", result.Count())
		return nil

	case "symbolic":
		r, err := computeSymbolic(n, cfg, logger)
		if err != nil {
			return err
		}
		fmt.Printf("reachable markings: %d\n", r.Count())
		return nil

	case "deadlock":
		r, err := computeSymbolic(n, cfg, logger)
		if err != nil {
			return err
		}
		result, err := ilp.FindDeadlock(n, r, deadlockOpts(cfg, logger)...)
		return reportDeadlock(result, err)

	case "maximize":
		r, err := computeSymbolic(n, cfg, logger)
		if err != nil {
			return err
		}
		weights := make([]int, n.NumPlaces())
		for pid, w := range cfg.Weights {
			if idx, ok := n.PlaceIndex[pid]; ok {
				weights[idx] = w
			}
		}
		result, err := ilp.Maximize(n, r, weights, deadlockOpts(cfg, logger)...)
		switch {
		case truncated(err):
			fmt.Println("maximization truncated: no answer within the configured limits")
			return nil
		case err != nil:
			return err
		case result == nil:
			fmt.Println("no reachable marking satisfies the relaxation")
			return nil
		}
		fmt.Printf("optimal marking: %v, objective: %d\n", result.Marking, result.Objective)
		return nil

	default: // "analyze"
		r, err := computeSymbolic(n, cfg, logger)
		if err != nil {
			return err
		}
		fmt.Printf("reachable markings: %d\n", r.Count())
		result, err := ilp.FindDeadlock(n, r, deadlockOpts(cfg, logger)...)
		return reportDeadlock(result, err)
	}
}

func computeSymbolic(n *net.Net, cfg *config.Config, logger *telemetry.Logger) (*symbolic.Reachable, error) {
	var opts []symbolic.Option
	if cfg.Limits.SymbolicIterations > 0 {
		opts = append(opts, symbolic.WithMaxIterations(cfg.Limits.SymbolicIterations))
	}
	if cfg.Limits.SymbolicNodes > 0 {
		opts = append(opts, symbolic.WithMaxNodes(cfg.Limits.SymbolicNodes))
	}
	opts = append(opts, symbolic.WithLogger(symbolicLogAdapter{l: logger}))
	return symbolic.Compute(n, opts...)
}

func deadlockOpts(cfg *config.Config, logger *telemetry.Logger) []ilp.Option {
	var opts []ilp.Option
	if cfg.Limits.ILPAttempts > 0 {
		opts = append(opts, ilp.WithMaxAttempts(cfg.Limits.ILPAttempts))
	}
	if cfg.Limits.ILPSolveTimeoutMS > 0 {
		opts = append(opts, ilp.WithSolveTimeout(time.Duration(cfg.Limits.ILPSolveTimeoutMS)*time.Millisecond))
	}
	opts = append(opts, ilp.WithLogger(ilpLogAdapter{l: logger}))
	return opts
}

func reportDeadlock(result *ilp.DeadlockResult, err error) error {
	switch {
	case errors.Is(err, ilp.ErrNoDeadlockPossible):
		fmt.Println("no deadlock possible: a transition has an empty pre-set")
		return nil
	case truncated(err):
		fmt.Println("deadlock search truncated: no answer within the configured limits")
		return nil
	case err != nil:
		return err
	case result == nil:
		fmt.Println("no deadlock found")
		return nil
	default:
		fmt.Printf("deadlock marking: %v\n", result.Marking)
		return nil
	}
}

// truncated reports whether err signals an incomplete (capped) search
// rather than a definite answer or a failure.
func truncated(err error) bool {
	return errors.Is(err, ilp.ErrSolveTimeout) ||
		errors.Is(err, ilp.ErrNodeLimit) ||
		errors.Is(err, ilp.ErrAttemptsExhausted)
}

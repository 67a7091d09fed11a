package main

import (
	"fmt"

	"github.com/katalvlaran/petrinet/ilp"
	"github.com/katalvlaran/petrinet/symbolic"
	"github.com/spf13/cobra"
)

func newDeadlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deadlock",
		Short: "Search for a reachable deadlock marking",
		RunE:  runDeadlock,
	}
	addNetFlag(cmd)
	return cmd
}

func runDeadlock(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("net")
	n, err := loadNet(path)
	if err != nil {
		return err
	}

	logger := commandLogger(cmd)
	r, err := symbolic.Compute(n, symbolic.WithLogger(symbolicLogAdapter{l: logger}))
	if err != nil {
		return fmt.Errorf("symbolic: %w", err)
	}

	result, err := ilp.FindDeadlock(n, r, ilp.WithLogger(ilpLogAdapter{l: logger}))
	if result != nil && err == nil {
		fmt.Printf("deadlock marking: %v\n", result.Marking)
		fmt.Printf("firing vector: %v\n", result.FiringVector)
		return nil
	}
	return reportDeadlock(result, err)
}

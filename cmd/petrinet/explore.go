package main

import (
	"fmt"

	"github.com/katalvlaran/petrinet/explore"
	"github.com/spf13/cobra"
)

func newExploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Explicit Bitmask BFS reachability exploration",
		RunE:  runExplore,
	}
	addNetFlag(cmd)
	cmd.Flags().Int("limit", 0, "cap on the number of visited markings (0 = unlimited)")
	return cmd
}

func runExplore(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("net")
	limit, _ := cmd.Flags().GetInt("limit")

	n, err := loadNet(path)
	if err != nil {
		return err
	}

	result, err := explore.Run(n, explore.WithLimit(limit))
	if err != nil {
		return fmt.Errorf("explore: %w", err)
	}

	fmt.Printf("reachable markings: %d\n", result.Count())
	if result.Truncated {
		fmt.Println("result truncated: visited-set limit reached")
	}
	return nil
}

// Command petrinet is the CLI driver for the 1-safe Petri net analyzer:
// it loads a PNML document, runs one or more of the explicit BFS,
// symbolic BDD, deadlock-search, or weighted-maximization analyses, and
// reports the result. Every subcommand follows the same call order:
// parse, validate, normalize, then dispatch to the requested analysis.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "petrinet",
		Short: "Analyze 1-safe Place/Transition Petri nets from PNML",
	}

	root.AddCommand(
		newExploreCmd(),
		newSymbolicCmd(),
		newDeadlockCmd(),
		newMaximizeCmd(),
		newAnalyzeCmd(),
		newConfigCmd(),
	)

	return root
}

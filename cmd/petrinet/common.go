package main

import (
	"fmt"

	"github.com/katalvlaran/petrinet/net"
	"github.com/katalvlaran/petrinet/pnml"
	"github.com/katalvlaran/petrinet/telemetry"
	"github.com/spf13/cobra"
)

// loadNet parses, validates, and normalizes the PNML document at path.
// Parser errors and validation errors are surfaced here with file
// context; the core is never handed an unvalidated net.
func loadNet(path string) (*net.Net, error) {
	n, err := pnml.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return n, nil
}

func commandLogger(cmd *cobra.Command) *telemetry.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return telemetry.Noop()
	}
	return telemetry.Stderr()
}

func addNetFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("net", "n", "", "path to the PNML document")
	cmd.Flags().Bool("verbose", false, "emit structured progress logging")
	_ = cmd.MarkFlagRequired("net")
}

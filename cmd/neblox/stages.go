package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neblox/internal/stage"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List the loaded stages",
	Long: `Shows the stages a session would play, in order. The door of the
last stage leads back into the last stage.

Examples:
  neblox stages
  neblox stages --stages ./my-stages.yaml`,
	Args: cobra.NoArgs,
	RunE: runStages,
}

func init() {
	stagesCmd.Flags().StringVar(&flagStages, "stages", "", "Path to custom stages YAML")
}

func runStages(_ *cobra.Command, _ []string) error {
	stages, err := stage.Load(flagStages)
	if err != nil {
		return err
	}
	printStages(os.Stdout, stages)
	return nil
}

func printStages(w io.Writer, stages []stage.Stage) {
	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range stages {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Fprintln(w, "Stages:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  #  %-*s  %-9s  %-7s  %s\n", maxIDLen, "ID", "Platforms", "Enemies", "Name")
	fmt.Fprintf(w, "  -  %-*s  %-9s  %-7s  %s\n", maxIDLen, "--", "---------", "-------", "----")

	for i, s := range stages {
		fmt.Fprintf(w, "  %d  %-*s  %-9d  %-7d  %s\n", i+1, maxIDLen, s.ID, len(s.Platforms), len(s.Enemies), s.Name)
	}
}

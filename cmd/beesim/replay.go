package main

import (
	"github.com/spf13/cobra"

	"beesim/internal/sim"
)

var (
	replayFile   string
	replayOutput string
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Render a previously exported run",
	Long:  "replay loads a run exported with 'simulate --export' and renders it without re-running the model.",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := sim.LoadResult(replayFile)
		if err != nil {
			return err
		}
		writer, cleanup, err := newResultWriter(replayOutput, "")
		if err != nil {
			return err
		}
		defer cleanup()
		return writer.WriteResult(res)
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayFile, "file", "", "Path to an exported run JSON file")
	replayCmd.Flags().StringVar(&replayOutput, "output", "tui", "Output mode: json, table, or tui")
	_ = replayCmd.MarkFlagRequired("file")
}

package main

import (
	"fmt"

	"beesim/internal/sim"
)

// newResultWriter builds the output writer for a run. The returned cleanup
// func closes any export file and must be called after the result is written.
func newResultWriter(output, exportPath string) (sim.ResultWriter, func(), error) {
	var w sim.ResultWriter
	switch output {
	case "json":
		w = sim.NewJSONWriter()
	case "table":
		w = sim.NewTableWriter()
	case "tui":
		w = sim.NewTUIWriter()
	default:
		return nil, nil, fmt.Errorf("unknown output format %q (want json, table, or tui)", output)
	}

	cleanup := func() {}
	if exportPath != "" {
		fw, err := sim.NewFileWriter(exportPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open export file: %w", err)
		}
		w = sim.NewMultiWriter(w, fw)
		cleanup = func() { _ = fw.Close() }
	}
	return w, cleanup, nil
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"beesim/internal/model"
	"beesim/internal/sim"
)

func TestNewResultWriterFormats(t *testing.T) {
	cases := map[string]any{
		"json":  &sim.JSONWriter{},
		"table": &sim.TableWriter{},
		"tui":   &sim.TUIWriter{},
	}
	for format, want := range cases {
		w, cleanup, err := newResultWriter(format, "")
		if err != nil {
			t.Fatalf("newResultWriter(%q) returned error: %v", format, err)
		}
		cleanup()
		if gotType, wantType := typeName(w), typeName(want); gotType != wantType {
			t.Fatalf("format %q: expected %s, got %s", format, wantType, gotType)
		}
	}
}

func TestNewResultWriterUnknownFormat(t *testing.T) {
	if _, _, err := newResultWriter("yaml", ""); err == nil {
		t.Fatal("expected error for unknown output format")
	}
}

func TestNewResultWriterExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.json")
	w, cleanup, err := newResultWriter("json", path)
	if err != nil {
		t.Fatalf("newResultWriter returned error: %v", err)
	}
	if _, ok := w.(*sim.MultiWriter); !ok {
		t.Fatalf("expected *sim.MultiWriter, got %T", w)
	}

	runner := sim.NewRunner(model.DefaultCalibration(), model.ClampLosses)
	res, err := runner.RunComparison(3,
		model.ScenarioParams{EnvironmentStress: 0.3, DiseaseManagement: 0.7, ClimateFactor: 0.6},
		model.ScenarioParams{EnvironmentStress: 0.8, DiseaseManagement: 0.3, ClimateFactor: 0.4},
	)
	if err != nil {
		t.Fatalf("comparison failed: %v", err)
	}
	if err := w.WriteResult(res); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	cleanup()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected export file to be non-empty")
	}
	loaded, err := sim.LoadResult(path)
	if err != nil {
		t.Fatalf("loading export failed: %v", err)
	}
	if loaded.RunID != res.RunID {
		t.Fatalf("expected run ID %q, got %q", res.RunID, loaded.RunID)
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *sim.JSONWriter:
		return "*sim.JSONWriter"
	case *sim.TableWriter:
		return "*sim.TableWriter"
	case *sim.TUIWriter:
		return "*sim.TUIWriter"
	case *sim.MultiWriter:
		return "*sim.MultiWriter"
	default:
		return "unknown"
	}
}

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"beesim/internal/model"
	"beesim/internal/scenario"
	"beesim/internal/sim"
)

func testServer() *Server {
	runner := sim.NewRunner(model.DefaultCalibration(), model.ClampLosses)
	return NewServer(runner, nil, nil)
}

func postSimulate(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(http.MethodPost, "/api/simulate", nil)
	} else {
		req = httptest.NewRequest(http.MethodPost, "/api/simulate", strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHandleSimulate_Defaults(t *testing.T) {
	w := postSimulate(t, testServer(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status OK, got %d: %s", w.Code, w.Body.String())
	}

	var res sim.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if res.Years != 20 {
		t.Errorf("default years = %d, want 20", res.Years)
	}
	if len(res.Series.Baseline) != 21 || len(res.Series.Loss) != 21 {
		t.Errorf("expected 21 points, got %d/%d", len(res.Series.Baseline), len(res.Series.Loss))
	}
	if res.Baseline["environment_stress"] != 0.3 || res.Scenario["environment_stress"] != 0.8 {
		t.Errorf("default drivers not applied: %v / %v", res.Baseline, res.Scenario)
	}
	if res.Summary.ScenarioColonies >= res.Summary.BaselineColonies {
		t.Errorf("default stress scenario should end below baseline: %+v", res.Summary)
	}
}

func TestHandleSimulate_ClampsDrivers(t *testing.T) {
	w := postSimulate(t, testServer(), `{"years":1,"scenario":{"environment_stress":7.5}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status OK, got %d: %s", w.Code, w.Body.String())
	}
	var res sim.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if res.Scenario["environment_stress"] != 1 {
		t.Errorf("driver should be clamped to 1, got %f", res.Scenario["environment_stress"])
	}
}

func TestHandleSimulate_ZeroYears(t *testing.T) {
	w := postSimulate(t, testServer(), `{"years":0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status OK, got %d", w.Code)
	}
	var res sim.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(res.Series.Baseline) != 1 {
		t.Errorf("expected one record for zero years, got %d", len(res.Series.Baseline))
	}
	if res.Series.Loss[0].EconomicLossCHF != 0 {
		t.Errorf("zero-year loss should be zero, got %f", res.Series.Loss[0].EconomicLossCHF)
	}
}

func TestHandleSimulate_InvalidYears(t *testing.T) {
	for _, body := range []string{`{"years":-1}`, `{"years":100000}`} {
		if w := postSimulate(t, testServer(), body); w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestHandleSimulate_MalformedBody(t *testing.T) {
	if w := postSimulate(t, testServer(), `{"years":`); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed JSON, got %d", w.Code)
	}
}

func TestHandleSimulate_Preset(t *testing.T) {
	w := postSimulate(t, testServer(), `{"years":5,"scenario":{"preset":"collapse"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status OK, got %d: %s", w.Code, w.Body.String())
	}
	var res sim.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if res.Scenario["environment_stress"] != 1 || res.Scenario["disease_management"] != 0 {
		t.Errorf("collapse preset not applied: %v", res.Scenario)
	}
}

func TestHandleSimulate_UnknownPreset(t *testing.T) {
	if w := postSimulate(t, testServer(), `{"scenario":{"preset":"nope"}}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown preset, got %d", w.Code)
	}
}

func TestHandlePresets(t *testing.T) {
	extra := []scenario.Preset{{Name: "drought", EnvironmentStress: 0.6, DiseaseManagement: 0.5, ClimateFactor: 0.2}}
	srv := NewServer(sim.NewRunner(model.DefaultCalibration(), model.ClampLosses), extra, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/presets", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status OK, got %d", w.Code)
	}
	var presets map[string]scenario.Preset
	if err := json.Unmarshal(w.Body.Bytes(), &presets); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if _, ok := presets["stress"]; !ok {
		t.Error("built-in preset missing from response")
	}
	if _, ok := presets["drought"]; !ok {
		t.Error("extra preset missing from response")
	}
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	testServer().Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected status OK, got %d", w.Code)
	}
}

func TestHandleStatic_IndexAndFallback(t *testing.T) {
	srv := testServer()

	for _, path := range []string{"/", "/compare/runs"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s: expected status OK, got %d", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), "scenario simulator") {
			t.Errorf("GET %s: expected index page", path)
		}
	}

	// File-looking paths and assets keep their 404.
	for _, path := range []string{"/missing.js", "/assets/app.css"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("GET %s: expected 404, got %d", path, w.Code)
		}
	}
}

func TestHandleMetrics(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	testServer().Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected status OK, got %d", w.Code)
	}
}

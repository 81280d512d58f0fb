package api

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"beesim/internal/logging"
	"beesim/internal/metrics"
	"beesim/internal/model"
	"beesim/internal/scenario"
	"beesim/internal/sim"
)

//go:embed static
var content embed.FS

// Default parameters applied when a request omits them, matching the
// reference scenario pair.
const defaultYears = 20

var (
	defaultBaseline = model.ScenarioParams{EnvironmentStress: 0.3, DiseaseManagement: 0.7, ClimateFactor: 0.6}
	defaultScenario = model.ScenarioParams{EnvironmentStress: 0.8, DiseaseManagement: 0.3, ClimateFactor: 0.4}
)

// Server exposes the simulation engine over a JSON API and serves the static
// frontend.
type Server struct {
	runner  *sim.Runner
	presets []scenario.Preset
	log     *slog.Logger
}

// NewServer creates a Server around a runner and optional extra presets.
func NewServer(runner *sim.Runner, presets []scenario.Preset, log *slog.Logger) *Server {
	if log == nil {
		log = logging.New()
	}
	return &Server{runner: runner, presets: presets, log: log}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/simulate", s.handleSimulate)
	mux.HandleFunc("GET /api/presets", s.handlePresets)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("/", s.handleStatic)
	return mux
}

// Start runs the HTTP server until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	s.log.Info("api listening", "addr", addr)
	return srv.ListenAndServe()
}

type driverRequest struct {
	Preset            string   `json:"preset,omitempty"`
	EnvironmentStress *float64 `json:"environment_stress"`
	DiseaseManagement *float64 `json:"disease_management"`
	ClimateFactor     *float64 `json:"climate_factor"`
}

type simulateRequest struct {
	Years    *int           `json:"years"`
	Baseline *driverRequest `json:"baseline"`
	Scenario *driverRequest `json:"scenario"`
}

// resolve builds engine parameters from an optional request block: preset
// first, explicit drivers on top, everything clamped at this boundary.
func (s *Server) resolve(req *driverRequest, fallback model.ScenarioParams) (model.ScenarioParams, error) {
	p := fallback
	if req == nil {
		return p, nil
	}
	if req.Preset != "" {
		preset, ok := scenario.Find(req.Preset, s.presets)
		if !ok {
			return p, fmt.Errorf("unknown preset %q", req.Preset)
		}
		p = preset.Params()
	}
	if req.EnvironmentStress != nil {
		p.EnvironmentStress = *req.EnvironmentStress
	}
	if req.DiseaseManagement != nil {
		p.DiseaseManagement = *req.DiseaseManagement
	}
	if req.ClimateFactor != nil {
		p.ClimateFactor = *req.ClimateFactor
	}
	return p.Clamped(), nil
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	// An empty body means "all defaults".
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		metrics.SimulationsTotal.WithLabelValues("invalid").Inc()
		httpError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	years := defaultYears
	if req.Years != nil {
		years = *req.Years
	}
	if years < 0 || years > model.MaxYears {
		metrics.SimulationsTotal.WithLabelValues("invalid").Inc()
		httpError(w, http.StatusBadRequest, fmt.Sprintf("years must be between 0 and %d", model.MaxYears))
		return
	}

	baseline, err := s.resolve(req.Baseline, defaultBaseline)
	if err != nil {
		metrics.SimulationsTotal.WithLabelValues("invalid").Inc()
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	scen, err := s.resolve(req.Scenario, defaultScenario)
	if err != nil {
		metrics.SimulationsTotal.WithLabelValues("invalid").Inc()
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	res, err := s.runner.RunComparison(years, baseline, scen)
	if err != nil {
		metrics.SimulationsTotal.WithLabelValues("error").Inc()
		s.log.Error("comparison failed", "err", err)
		httpError(w, http.StatusInternalServerError, "simulation failed")
		return
	}
	metrics.SimulationsTotal.WithLabelValues("ok").Inc()
	metrics.SimulationDuration.Observe(time.Since(start).Seconds())
	metrics.SimulationHorizonYears.Observe(float64(years))
	s.log.Info("comparison served", "run_id", res.RunID, "years", years)

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	merged := make(map[string]scenario.Preset)
	for name, p := range scenario.BuiltIn() {
		merged[name] = p
	}
	for _, p := range s.presets {
		merged[strings.ToLower(p.Name)] = p
	}
	writeJSON(w, http.StatusOK, merged)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleStatic serves the embedded frontend. Paths that look like files keep
// their 404; anything else falls back to index.html so client-side routing
// works.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/")
	if path == "" {
		path = "index.html"
	}

	sub, err := fs.Sub(content, "static")
	if err != nil {
		httpError(w, http.StatusInternalServerError, "static assets unavailable")
		return
	}
	if _, err := fs.Stat(sub, path); err != nil {
		last := path[strings.LastIndex(path, "/")+1:]
		if strings.HasPrefix(r.URL.Path, "/assets/") || strings.Contains(last, ".") {
			http.NotFound(w, r)
			return
		}
		path = "index.html"
	}
	http.ServeFileFS(w, r, sub, path)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

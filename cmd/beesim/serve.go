package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"beesim/internal/api"
	"beesim/internal/config"
	"beesim/internal/logging"
	"beesim/internal/sim"
)

var (
	serveConfigPath string
	serveSchemaPath string
	serveListen     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulation API and frontend",
	Long:  "serve starts the HTTP server exposing the JSON simulation API, Prometheus metrics, and the static frontend.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(serveConfigPath, serveSchemaPath)
		if err != nil {
			return err
		}
		addr := cfg.Listen
		if cmd.Flags().Changed("listen") {
			addr = serveListen
		}

		log := logging.New()
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		ctx = logging.NewContext(ctx, log)

		runner := sim.NewRunner(cfg.Calibration(), cfg.Policy())
		srv := api.NewServer(runner, cfg.Presets, log)

		if err := srv.Start(ctx, addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		log.Info("server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to simulation configuration YAML")
	serveCmd.Flags().StringVar(&serveSchemaPath, "schema", "schemas/simulation.cue", "Path to CUE schema file")
	serveCmd.Flags().StringVar(&serveListen, "listen", ":8080", "HTTP listen address")
}

package main

import (
	"github.com/spf13/cobra"

	"beesim/internal/dashboard"
)

var dashboardOutDir string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Render Grafana dashboard templates",
	Long:  "dashboard renders the Grafana dashboard templates for the simulation metrics. Set PROMETHEUS_DATASOURCE_UID before running.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboard.Render(dashboardOutDir)
	},
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardOutDir, "out", "dashboards", "Output directory for rendered dashboards")
}

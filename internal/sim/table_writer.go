// TableWriter prints a human-friendly, colorized comparison to STDOUT.
package sim

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
)

const (
	colorReset   = "\x1b[0m"
	colorRed     = "\x1b[31m"
	colorGreen   = "\x1b[32m"
	colorYellow  = "\x1b[33m"
	colorBlue    = "\x1b[34m"
	colorMagenta = "\x1b[35m"
	colorCyan    = "\x1b[36m"
	colorGray    = "\x1b[90m"
)

// TableWriter prints the year-by-year comparison using ANSI colors.
type TableWriter struct {
	out io.Writer
}

// NewTableWriter creates a TableWriter writing to os.Stdout.
func NewTableWriter() *TableWriter {
	return &TableWriter{out: os.Stdout}
}

// WriteResult renders the comparison as an aligned table with a summary.
func (w *TableWriter) WriteResult(res *Result) error {
	fmt.Fprintf(w.out, "%sRun %s — %d years%s\n", colorGray, res.RunID, res.Years, colorReset)
	fmt.Fprintf(w.out, "%sbaseline%s stress=%.2f disease=%.2f climate=%.2f\n",
		colorBlue, colorReset,
		res.Baseline["environment_stress"], res.Baseline["disease_management"], res.Baseline["climate_factor"])
	fmt.Fprintf(w.out, "%sscenario%s stress=%.2f disease=%.2f climate=%.2f\n\n",
		colorMagenta, colorReset,
		res.Scenario["environment_stress"], res.Scenario["disease_management"], res.Scenario["climate_factor"])

	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Year\tBaseline\tScenario\tHoney Loss (t)\tEconomic Loss (CHF)\tCumulative (CHF)\n")
	for i, l := range res.Series.Loss {
		b := res.Series.Baseline[i]
		s := res.Series.Scenario[i]
		fmt.Fprintf(tw, "%d\t%.0f\t%.0f\t%.1f\t%s%.0f%s\t%.0f\n",
			l.Year, b.BeeColonies, s.BeeColonies, l.HoneyLossTons,
			lossColor(l.EconomicLossCHF), l.EconomicLossCHF, colorReset,
			l.CumulativeEconomicLossCHF)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	sum := res.Summary
	fmt.Fprintf(w.out, "\n%sFinal colonies%s baseline=%.0f scenario=%.0f delta=%.0f\n",
		colorCyan, colorReset, sum.BaselineColonies, sum.ScenarioColonies, sum.ColoniesDelta)
	fmt.Fprintf(w.out, "%sCumulative losses%s %.0f CHF, %.1f t honey\n",
		colorYellow, colorReset, sum.CumulativeLossCHF, sum.CumulativeHoneyLossTons)
	fmt.Fprintf(w.out, "%sFinal honey yield%s baseline=%.1f kg/colony scenario=%.1f kg/colony\n",
		colorGreen, colorReset, sum.BaselineHoneyYield, sum.ScenarioHoneyYield)
	return nil
}

func lossColor(loss float64) string {
	switch {
	case loss > 0:
		return colorRed
	case loss < 0:
		return colorGreen
	default:
		return colorGray
	}
}

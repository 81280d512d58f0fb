// TUIWriter renders a comparison in an interactive terminal view.
package sim

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// TUIWriter displays the comparison in a bubbletea table until the user
// quits.
type TUIWriter struct{}

// NewTUIWriter creates a TUIWriter.
func NewTUIWriter() *TUIWriter {
	return &TUIWriter{}
}

// WriteResult runs the TUI program. It blocks until the view is dismissed.
func (w *TUIWriter) WriteResult(res *Result) error {
	p := tea.NewProgram(newTUIModel(res), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

const (
	viewColonies = iota
	viewLosses
)

var (
	tuiTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	tuiSummaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	tuiHelpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tuiBorderStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
)

type tuiModel struct {
	res    *Result
	table  table.Model
	view   int
	width  int
	height int
}

func newTUIModel(res *Result) tuiModel {
	m := tuiModel{res: res, view: viewColonies}
	m.table = m.buildTable()
	return m
}

func (m tuiModel) buildTable() table.Model {
	var cols []table.Column
	var rows []table.Row
	switch m.view {
	case viewColonies:
		cols = []table.Column{
			{Title: "Year", Width: 6},
			{Title: "Baseline", Width: 12},
			{Title: "Scenario", Width: 12},
			{Title: "Yield b (kg)", Width: 12},
			{Title: "Yield s (kg)", Width: 12},
		}
		for i, b := range m.res.Series.Baseline {
			s := m.res.Series.Scenario[i]
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", b.Year),
				fmt.Sprintf("%.0f", b.BeeColonies),
				fmt.Sprintf("%.0f", s.BeeColonies),
				fmt.Sprintf("%.1f", b.HoneyYieldPerColony),
				fmt.Sprintf("%.1f", s.HoneyYieldPerColony),
			})
		}
	case viewLosses:
		cols = []table.Column{
			{Title: "Year", Width: 6},
			{Title: "Loss (CHF)", Width: 14},
			{Title: "Cum. (CHF)", Width: 14},
			{Title: "Honey (t)", Width: 10},
			{Title: "Cum. (t)", Width: 10},
		}
		for _, l := range m.res.Series.Loss {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", l.Year),
				fmt.Sprintf("%.0f", l.EconomicLossCHF),
				fmt.Sprintf("%.0f", l.CumulativeEconomicLossCHF),
				fmt.Sprintf("%.1f", l.HoneyLossTons),
				fmt.Sprintf("%.1f", l.CumulativeHoneyLossTons),
			})
		}
	}
	height := len(rows) + 1
	if m.height > 0 && height > m.height-8 {
		height = m.height - 8
	}
	if height < 2 {
		height = 2
	}
	t := table.New(table.WithColumns(cols), table.WithRows(rows), table.WithHeight(height), table.WithFocused(true))
	return t
}

func (m tuiModel) Init() tea.Cmd { return nil }

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.buildTable()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.view = (m.view + 1) % 2
			m.table = m.buildTable()
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m tuiModel) View() string {
	title := tuiTitleStyle.Render(fmt.Sprintf("beesim run %s — %d years", m.res.RunID, m.res.Years))

	sum := m.res.Summary
	summary := tuiSummaryStyle.Render(fmt.Sprintf(
		"final colonies: baseline %.0f / scenario %.0f (delta %.0f)  cumulative loss: %.0f CHF, %.1f t honey",
		sum.BaselineColonies, sum.ScenarioColonies, sum.ColoniesDelta,
		sum.CumulativeLossCHF, sum.CumulativeHoneyLossTons))
	if m.width > 0 {
		summary = wordwrap.String(summary, m.width)
	}

	help := tuiHelpStyle.Render("tab: switch colonies/losses  q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, tuiBorderStyle.Render(m.table.View()), summary, help)
}

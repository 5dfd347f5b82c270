package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cryptk/omnilogic-local/internal/mspconfig"
	"github.com/cryptk/omnilogic-local/internal/omniapi"
	"github.com/cryptk/omnilogic-local/internal/telemetry"
	"github.com/cryptk/omnilogic-local/internal/ui"
)

type tickMsg time.Time

type telemetryMsg struct {
	snapshot *telemetry.Snapshot
	err      error
}

type configMsg struct {
	config *mspconfig.Config
	err    error
}

// model is the single-screen dashboard: it polls telemetry on an
// interval and re-fetches the (rarely changing) equipment config only
// once at startup, joining the two by SystemID for display.
type model struct {
	client   *omniapi.Client
	host     string
	port     int
	interval time.Duration

	cfg      *mspconfig.Config
	snap     *telemetry.Snapshot
	lastErr  error
	lastPoll time.Time
	polling  bool

	spinner spinner.Model
	width   int
	height  int
}

func newModel(client *omniapi.Client, host string, port int, interval time.Duration) model {
	s := spinner.New()
	s.Style = lipgloss.NewStyle().Foreground(ui.PrimaryColor)
	return model{
		client:   client,
		host:     host,
		port:     port,
		interval: interval,
		spinner:  s,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.fetchConfig, m.fetchTelemetry, m.spinner.Tick)
}

func (m model) fetchConfig() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	cfg, err := m.client.GetConfig(ctx)
	return configMsg{config: cfg, err: err}
}

func (m model) fetchTelemetry() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	snap, err := m.client.GetTelemetry(ctx)
	return telemetryMsg{snapshot: snap, err: err}
}

func waitForTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.polling = true
			return m, m.fetchTelemetry
		}
		return m, nil

	case configMsg:
		if msg.err != nil {
			m.lastErr = msg.err
		} else {
			m.cfg = msg.config
			m.lastErr = nil
		}
		return m, nil

	case telemetryMsg:
		m.polling = false
		m.lastPoll = time.Now()
		if msg.err != nil {
			m.lastErr = msg.err
		} else {
			m.snap = msg.snapshot
			m.lastErr = nil
		}
		return m, waitForTick(m.interval)

	case tickMsg:
		m.polling = true
		return m, m.fetchTelemetry

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().Foreground(ui.PrimaryColor).Bold(true).
		Render(fmt.Sprintf(" OMNI-MONITOR  %s:%d ", m.host, m.port))
	status := m.statusLine()
	b.WriteString(title + "  " + status + "\n\n")

	if m.lastErr != nil {
		b.WriteString(ui.ErrorMessageStyle.Render("  error: "+m.lastErr.Error()) + "\n\n")
	}

	if m.snap == nil || m.cfg == nil {
		b.WriteString("  waiting for first telemetry poll...\n")
		return b.String()
	}

	b.WriteString(m.renderBackyard())
	b.WriteString("\n")
	for _, bow := range m.cfg.Backyard.BodiesOfWater {
		b.WriteString(m.renderBoW(bow))
		b.WriteString("\n")
	}

	help := lipgloss.NewStyle().Foreground(ui.MutedColor).
		Render("  q quit  ·  r refresh now")
	b.WriteString("\n" + help + "\n")

	return b.String()
}

func (m model) statusLine() string {
	if m.polling {
		return m.spinner.View() + " polling..."
	}
	if m.lastPoll.IsZero() {
		return ""
	}
	return lipgloss.NewStyle().Foreground(ui.MutedColor).
		Render(fmt.Sprintf("last updated %s ago", time.Since(m.lastPoll).Round(time.Second)))
}

func (m model) renderBackyard() string {
	by := m.snap.Backyard
	headerStyle := lipgloss.NewStyle().Foreground(ui.TextColor).Bold(true)
	return headerStyle.Render(fmt.Sprintf("  Backyard   air=%dF  state=%d", by.AirTemp, by.State)) + "\n"
}

func (m model) renderBoW(bow mspconfig.BodyOfWater) string {
	var b strings.Builder
	var waterTemp, flow int
	for _, t := range m.snap.BoW {
		if t.SystemID == bow.SystemID {
			waterTemp, flow = t.WaterTemp, t.Flow
		}
	}

	nameStyle := lipgloss.NewStyle().Foreground(ui.PrimaryColor).Bold(true)
	b.WriteString(nameStyle.Render(fmt.Sprintf("  %s", bow.Name)) +
		fmt.Sprintf("  water=%dF  flow=%d\n", waterTemp, flow))

	for _, f := range bow.Filter {
		for _, t := range m.snap.Filter {
			if t.SystemID == f.SystemID {
				b.WriteString(fmt.Sprintf("    %-20s %s  speed=%d%%\n", f.Name, onOff(t.State != 0), t.Speed))
			}
		}
	}
	if bow.Heater != nil {
		for _, t := range m.snap.VirtualHeater {
			if t.SystemID == bow.Heater.SystemID {
				b.WriteString(fmt.Sprintf("    %-20s set_point=%dF  mode=%d\n", "Heater", t.CurrentSetPoint, t.Mode))
			}
		}
	}
	if bow.Chlorinator != nil {
		for _, t := range m.snap.Chlorinator {
			if t.SystemID == bow.Chlorinator.SystemID {
				b.WriteString(fmt.Sprintf("    %-20s %s  salt=%d  errors=%#04x\n",
					"Chlorinator", onOff(t.Active()), t.InstantSaltLevel, uint16(t.Errors())))
			}
		}
	}
	for _, l := range bow.ColorLogicLight {
		for _, t := range m.snap.ColorLogicLight {
			if t.SystemID == l.SystemID {
				b.WriteString(fmt.Sprintf("    %-20s power=%d  show=%s\n", l.Name, int(t.PowerState()), t.ShowName(l.Type, l.V2Active)))
			}
		}
	}

	return b.String()
}

func onOff(on bool) string {
	if on {
		return lipgloss.NewStyle().Foreground(ui.SuccessColor).Render("on")
	}
	return lipgloss.NewStyle().Foreground(ui.MutedColor).Render("off")
}

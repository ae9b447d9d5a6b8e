// Package tui is an interactive monitor for the daemon: it polls the
// IPC socket and renders outputs, workspaces and the window stack.
package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/quoinwm/quoin/internal/ipc"
)

const refreshInterval = time.Second

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("236"))

	okDot   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("●")
	downDot = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("●")
)

type tickMsg time.Time

type refreshMsg struct {
	status  *ipc.StatusData
	outputs *ipc.OutputsData
	windows *ipc.WindowsData
	err     error
}

// model is the root bubbletea model for the monitor.
type model struct {
	client *ipc.Client

	status  *ipc.StatusData
	outputs *ipc.OutputsData
	windows *ipc.WindowsData

	selectedIndex int
	lastError     string

	width  int
	height int
}

func newModel() model {
	return model{
		client: ipc.NewClient(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) refresh() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		status, err := client.GetStatus()
		if err != nil {
			return refreshMsg{err: err}
		}
		outputs, err := client.GetOutputs()
		if err != nil {
			return refreshMsg{err: err}
		}
		windows, err := client.ListWindows()
		if err != nil {
			return refreshMsg{err: err}
		}
		return refreshMsg{status: status, outputs: outputs, windows: windows}
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return tea.Batch(m.refresh(), tick())
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.refresh(), tick())

	case refreshMsg:
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		m.lastError = ""
		m.status = msg.status
		m.outputs = msg.outputs
		m.windows = msg.windows
		if n := len(m.windows.Windows); n > 0 && m.selectedIndex >= n {
			m.selectedIndex = n - 1
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "j", "down":
			m.moveSelection(1)
		case "k", "up":
			m.moveSelection(-1)
		case "r":
			return m, m.refresh()
		}
	}

	return m, nil
}

func (m *model) moveSelection(delta int) {
	if m.windows == nil || len(m.windows.Windows) == 0 {
		return
	}
	n := len(m.windows.Windows)
	m.selectedIndex += delta
	if m.selectedIndex < 0 {
		m.selectedIndex = n - 1
	} else if m.selectedIndex >= n {
		m.selectedIndex = 0
	}
}

// View implements tea.Model.
func (m model) View() string {
	title := titleStyle.Render("quoin")

	var status string
	if m.status != nil {
		grab := "idle"
		if m.status.GrabActive {
			grab = "grab active"
		}
		status = fmt.Sprintf("%s daemon up %s  workspace %s  %d windows  %s",
			okDot,
			formatUptime(m.status.UptimeSeconds),
			m.status.CurrentWorkspace,
			m.status.WindowCount,
			grab,
		)
	} else {
		status = downDot + " daemon unreachable"
	}

	sections := []string{
		lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", status),
		"",
		m.renderOutputs(),
		"",
		m.renderWindows(),
	}

	if m.lastError != "" {
		sections = append(sections, "", errorStyle.Render(m.lastError))
	}
	sections = append(sections, "", dimStyle.Render("j/k navigate · r refresh · q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m model) renderOutputs() string {
	lines := []string{headerStyle.Render("Outputs")}
	if m.outputs == nil || len(m.outputs.Outputs) == 0 {
		lines = append(lines, dimStyle.Render("  (none)"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
	for _, o := range m.outputs.Outputs {
		state := "enabled"
		if !o.Enabled {
			state = "disabled"
		}
		lines = append(lines, fmt.Sprintf("  %-12s %dx%d+%d+%d  usable %dx%d  %s",
			o.Name, o.Width, o.Height, o.X, o.Y, o.UsableW, o.UsableH, state))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m model) renderWindows() string {
	lines := []string{headerStyle.Render("Windows (topmost first)")}
	if m.windows == nil || len(m.windows.Windows) == 0 {
		lines = append(lines, dimStyle.Render("  (none)"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
	for i, w := range m.windows.Windows {
		kind := "tiled"
		if w.Floating {
			kind = "floating"
		}
		line := fmt.Sprintf("  %-28s %-10s %dx%d+%d+%d  ws %s  %s",
			truncate(w.Title, 28), w.AppID, w.Width, w.Height, w.X, w.Y, w.Workspace, kind)
		if i == m.selectedIndex {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

func formatUptime(seconds int64) string {
	d := time.Duration(seconds) * time.Second
	if d < time.Minute {
		return d.String()
	}
	return d.Truncate(time.Second).String()
}

// Run starts the monitor, blocking until the user quits.
func Run() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui failed: %w", err)
	}
	return nil
}

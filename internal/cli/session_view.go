package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/microspark/microspark/internal/cli/formatter"
	"github.com/microspark/microspark/internal/domain"
)

// sessionTickMsg drives the countdown once per second while the UI is up.
type sessionTickMsg time.Time

func sessionTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return sessionTickMsg(t)
	})
}

// sessionModel renders the live challenge session. The runner owns the
// session state; the model only ticks it and draws snapshots.
type sessionModel struct {
	app   *App
	bar   progress.Model
	width int
	done  bool
}

func newSessionModel(app *App) sessionModel {
	bar := progress.New(
		progress.WithGradient("#4e5a3a", "#8ec07c"),
		progress.WithoutPercentage(),
	)
	bar.Width = 40
	return sessionModel{app: app, bar: bar}
}

func (m sessionModel) Init() tea.Cmd {
	return sessionTick()
}

func (m sessionModel) helpBindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause/resume")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete now")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 12; w > 10 && w < 60 {
			m.bar.Width = w
		}
		return m, nil

	case sessionTickMsg:
		if m.done {
			return m, nil
		}
		m.app.Runner.Tick()
		if view := m.app.Runner.View(); view != nil && view.State == domain.SessionCompleted {
			m.done = true
			return m, nil
		}
		return m, sessionTick()

	case tea.KeyMsg:
		if m.done {
			return m, tea.Quit
		}
		switch msg.String() {
		case "p":
			view := m.app.Runner.View()
			if view != nil && view.State == domain.SessionPaused {
				m.app.Runner.Resume()
			} else {
				m.app.Runner.Pause()
			}
			return m, nil
		case "c":
			m.app.Runner.Complete()
			m.done = true
			return m, nil
		case "s", "q", "esc", "ctrl+c":
			m.app.Runner.Stop()
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m sessionModel) View() string {
	view := m.app.Runner.View()
	if view == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Bold(view.ChallengeTitle) + "\n\n")

	if m.done {
		b.WriteString(renderCompletionSummary(m.app.Runner.LastResult()) + "\n\n")
		b.WriteString(formatter.Dim("Press any key to exit."))
		return boxed(b.String())
	}

	for i, step := range view.Instructions {
		b.WriteString(fmt.Sprintf("%s %s\n", formatter.Dim(fmt.Sprintf("%d.", i+1)), step))
	}
	b.WriteString("\n")

	timer := lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true).Render(view.FormattedTime)
	if view.State == domain.SessionPaused {
		timer += "  " + formatter.StyleYellow.Render("⏸ paused")
	}
	b.WriteString(timer + "\n")
	b.WriteString(m.bar.ViewAs(view.ProgressPercent/100) + "\n\n")

	help := make([]string, 0, 4)
	for _, binding := range m.helpBindings() {
		help = append(help, fmt.Sprintf("%s %s",
			formatter.Bold(binding.Help().Key), formatter.Dim(binding.Help().Desc)))
	}
	b.WriteString(strings.Join(help, formatter.Dim("  •  ")))

	return boxed(b.String())
}

func boxed(content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(formatter.ColorDim).
		Padding(1, 2).
		Render(content) + "\n"
}

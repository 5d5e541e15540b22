package dirflat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	renamedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

var errInterrupted = errors.New("interrupted")

type TUI struct {
	app         *App
	noAnimation bool
}

func NewTUI(app *App, noAnimation bool) *TUI {
	return &TUI{app: app, noAnimation: noAnimation}
}

func (t *TUI) Run() (Summary, error) {
	if t.noAnimation {
		summary, err := t.app.Execute()
		if err == nil {
			fmt.Print(FormatSummary(summary))
		}
		return summary, err
	}

	p := tea.NewProgram(newRunModel(t.app))
	out, err := p.Run()
	if err != nil {
		return Summary{}, err
	}

	final := out.(runModel)
	if final.err != nil {
		return final.summary, final.err
	}
	fmt.Print(FormatSummary(final.summary))
	return final.summary, nil
}

type progressMsg struct {
	dir     string
	renamed int
}

type doneMsg struct {
	summary Summary
	err     error
}

type runModel struct {
	app      *App
	spinner  spinner.Model
	progress chan progressMsg

	dir     string
	renamed int
	summary Summary
	err     error
	done    bool
}

func newRunModel(app *App) runModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	ch := make(chan progressMsg, 16)
	app.SetProgressCallback(func(dir string, renamed int) {
		select {
		case ch <- progressMsg{dir: dir, renamed: renamed}:
		default:
		}
	})

	return runModel{app: app, spinner: sp, progress: ch}
}

func (m runModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.execute(), m.waitProgress())
}

func (m runModel) execute() tea.Cmd {
	return func() tea.Msg {
		summary, err := m.app.Execute()
		// No progress arrives after Execute returns; closing releases the
		// pending waitProgress command.
		close(m.progress)
		return doneMsg{summary: summary, err: err}
	}
}

func (m runModel) waitProgress() tea.Cmd {
	return func() tea.Msg {
		if p, ok := <-m.progress; ok {
			return p
		}
		return nil
	}
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = errInterrupted
			return m, tea.Quit
		}
		return m, nil

	case progressMsg:
		m.dir = msg.dir
		m.renamed = msg.renamed
		return m, m.waitProgress()

	case doneMsg:
		m.summary = msg.summary
		m.err = msg.err
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m runModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s Flattening %s (%d renamed)\n",
		m.spinner.View(), dimStyle.Render(m.dir), m.renamed)
}

func FormatSummary(s Summary) string {
	var b strings.Builder
	if s.Message != "" {
		b.WriteString(headerStyle.Render(s.Message) + "\n\n")
	}

	renderList := func(title string, style lipgloss.Style, list []string) {
		if len(list) == 0 {
			return
		}
		b.WriteString(style.Render(title) + "\n")
		for _, f := range list {
			b.WriteString(fmt.Sprintf("  %s\n", f))
		}
	}

	renderList("Renamed:", renamedStyle, s.Renamed)
	renderList("Skipped:", skippedStyle, s.Skipped)
	renderList("Failed:", errorStyle, s.Failed)

	return b.String()
}

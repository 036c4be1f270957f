package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	exprStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// maxShown is the number of past entries the TUI keeps on screen.
const maxShown = 5

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively evaluate expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nodeBuffer, err := cmd.Flags().GetBool(nodeBufferFlag)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			s, err := newSession(ctx, nodeBuffer)
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return runLineMode(s, cmd.InOrStdin(), cmd.OutOrStdout())
			}
			_, err = tea.NewProgram(newReplModel(s)).Run()
			return err
		},
	}
}

// runLineMode reads one expression per line until EOF.
func runLineMode(s *session, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		expr := strings.TrimSpace(sc.Text())
		if expr == "" {
			continue
		}
		in, err := s.inspect(expr)
		if err != nil {
			fmt.Fprintf(w, "%s\n  error: %v\n", expr, err)
			continue
		}
		writeInspection(w, in)
	}
	return sc.Err()
}

type entry struct {
	expr string
	in   *inspection
	err  error
}

type replModel struct {
	s       *session
	input   textinput.Model
	entries []entry
	history []string
	histIdx int
}

func newReplModel(s *session) *replModel {
	ti := textinput.New()
	ti.Placeholder = "new Uint8Array([1, 2, 3])"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()
	return &replModel{s: s, input: ti}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "up":
			if m.histIdx > 0 {
				m.histIdx--
				m.input.SetValue(m.history[m.histIdx])
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if m.histIdx < len(m.history)-1 {
				m.histIdx++
				m.input.SetValue(m.history[m.histIdx])
				m.input.CursorEnd()
			} else {
				m.histIdx = len(m.history)
				m.input.SetValue("")
			}
			return m, nil

		case "enter":
			expr := strings.TrimSpace(m.input.Value())
			if expr == "" {
				return m, nil
			}
			m.history = append(m.history, expr)
			m.histIdx = len(m.history)
			m.input.SetValue("")
			m.evaluate(expr)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evaluate runs on the update goroutine. goja runtimes are single-goroutine.
func (m *replModel) evaluate(expr string) {
	in, err := m.s.inspect(expr)
	m.entries = append(m.entries, entry{expr: expr, in: in, err: err})
	if len(m.entries) > maxShown {
		m.entries = m.entries[len(m.entries)-maxShown:]
	}
}

func (m *replModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Value Inspector"))
	b.WriteString("\n\n")

	for _, e := range m.entries {
		b.WriteString(exprStyle.Render(e.expr))
		b.WriteString("\n")
		if e.err != nil {
			b.WriteString("  " + errorStyle.Render(fmt.Sprintf("Error: %v", e.err)) + "\n\n")
			continue
		}
		kinds := make([]string, len(e.in.kinds))
		for i, k := range e.in.kinds {
			kinds[i] = k.String()
		}
		b.WriteString("  " + kindStyle.Render(e.in.kind.String()) + " " + helpStyle.Render("["+strings.Join(kinds, ", ")+"]") + "\n")
		for _, c := range e.in.conversions {
			b.WriteString(fmt.Sprintf("  %-9s ", c.name+":"))
			if c.err != nil {
				b.WriteString(errorStyle.Render(c.err.Error()))
			} else {
				b.WriteString(resultStyle.Render(c.result))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter evaluate • ↑/↓ history • esc quit"))
	return b.String()
}

var _ tea.Model = (*replModel)(nil)

package main

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mython/pkg/lexer"
	"mython/pkg/parser"
	"mython/pkg/runtime"
)

var (
	accentColor  = lipgloss.Color("#3B82F6")
	successColor = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")

	promptStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	outputStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle  = lipgloss.NewStyle().Foreground(errorColor)
	mutedStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	headerStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
)

type historyEntry struct {
	input string
	output string
	isErr bool
}

// replModel holds one Closure across the whole session, so a class defined
// in one entry is visible by name in the next, exactly like top-level
// statements in a single file.
type replModel struct {
	textInput textinput.Model
	globals   runtime.Closure
	ctx       runtime.Context
	out       *bytes.Buffer
	history   []historyEntry
	quitting  bool
}

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "a statement, e.g. print 1 + 2"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "mython> "

	var out bytes.Buffer
	globals := runtime.NewClosure()
	return replModel{
		textInput: ti,
		globals:   globals,
		ctx:       runtime.NewSimpleContext(&out, globals),
		out:       &out,
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+l":
			m.history = nil
			return m, nil
		case "enter":
			input := strings.TrimSpace(m.textInput.Value())
			m.textInput.SetValue("")
			if input == "" {
				return m, nil
			}
			if input == ":quit" || input == ":q" {
				m.quitting = true
				return m, tea.Quit
			}
			output, isErr := m.evaluate(input)
			m.history = append(m.history, historyEntry{input: input, output: output, isErr: isErr})
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// evaluate lexes and parses input as a one-line module and executes it
// against the REPL's persistent globals Closure.
func (m replModel) evaluate(input string) (string, bool) {
	lx, err := lexer.New(strings.NewReader(input + "\n"))
	if err != nil {
		return err.Error(), true
	}
	module, err := parser.New(lx).ParseModule()
	if err != nil {
		return err.Error(), true
	}

	m.out.Reset()
	if _, err := module.Execute(m.globals, m.ctx); err != nil {
		return err.Error(), true
	}
	return strings.TrimRight(m.out.String(), "\n"), false
}

func (m replModel) View() string {
	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("mython REPL") + "\n\n")

	for _, entry := range m.history {
		b.WriteString(mutedStyle.Render("  > ") + entry.input + "\n")
		if entry.output == "" {
			continue
		}
		if entry.isErr {
			b.WriteString("  " + errorStyle.Render(entry.output) + "\n")
		} else {
			b.WriteString("  " + outputStyle.Render(entry.output) + "\n")
		}
	}

	b.WriteString("\n" + m.textInput.View() + "\n")
	b.WriteString(mutedStyle.Render("ctrl+l clear  ctrl+c quit"))
	return b.String()
}

func runREPL() error {
	p := tea.NewProgram(newREPLModel())
	_, err := p.Run()
	return err
}

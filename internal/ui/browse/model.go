package browse

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"thorbench/internal/report"
)

// Model browses a report one dimension at a time using Bubble Tea.
type Model struct {
	doc      report.Document
	sections []report.Section
	index    int
	table    table.Model
	noColor  bool
}

// Options configures the browse model.
type Options struct {
	NoColor bool
}

// NewModel constructs a browse model for a report document.
func NewModel(doc report.Document, opts Options) Model {
	m := Model{
		doc:      doc,
		sections: doc.Sections(),
		noColor:  opts.NoColor,
	}
	m.table = m.tableFor(0)
	return m
}

// Init has no startup work.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update switches sections on tab keys and forwards navigation to the table.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		switch typed.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			return m.selectSection(m.index + 1), nil
		case "shift+tab", "left", "h":
			return m.selectSection(m.index - 1), nil
		}
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the header, section tabs, table, and key help.
func (m Model) View() string {
	header := stylize(m.doc.Title, m.noColor, lipgloss.Color("33"))
	overall := "Overall Accuracy: " + m.doc.Overall.Display + " (" + m.doc.Overall.Counts() + ")"
	if len(m.sections) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, overall, "", "No groups to show.", helpLine(m.noColor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, overall, "", m.tabs(), m.table.View(), helpLine(m.noColor))
}

// Section returns the currently selected section.
func (m Model) Section() (report.Section, bool) {
	if len(m.sections) == 0 {
		return report.Section{}, false
	}
	return m.sections[m.index], true
}

func (m Model) selectSection(index int) Model {
	if len(m.sections) == 0 {
		return m
	}
	index = (index + len(m.sections)) % len(m.sections)
	m.index = index
	m.table = m.tableFor(index)
	return m
}

func (m Model) tableFor(index int) table.Model {
	if index >= len(m.sections) {
		return table.New()
	}
	return report.NewSectionTable(m.sections[index], m.noColor, true)
}

func (m Model) tabs() string {
	labels := make([]string, 0, len(m.sections))
	for i, section := range m.sections {
		label := " " + section.Title + " "
		if i == m.index {
			if m.noColor {
				label = "[" + section.Title + "]"
			} else {
				label = lipgloss.NewStyle().Reverse(true).Render(label)
			}
		}
		labels = append(labels, label)
	}
	return strings.Join(labels, " ")
}

func helpLine(noColor bool) string {
	return stylize("tab/shift+tab: switch dimension  up/down: scroll  q: quit", noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// Run starts an interactive program reading keys from in.
func Run(doc report.Document, in io.Reader, out io.Writer, opts Options) error {
	program := tea.NewProgram(NewModel(doc, opts), tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

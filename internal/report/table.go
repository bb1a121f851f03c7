package report

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableStyles returns table styles for terminal output.
func TableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Header = lipgloss.NewStyle().Bold(true).Padding(0, 1)
		styles.Cell = lipgloss.NewStyle().Padding(0, 1)
		styles.Selected = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252")).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	return styles
}

// SectionColumns returns the table columns for one section.
func SectionColumns(section Section) []table.Column {
	width := len("Value")
	for _, entry := range section.Entries {
		width = max(width, lipgloss.Width(entry.Label()))
	}
	return []table.Column{
		{Title: "Value", Width: width},
		{Title: "Accuracy", Width: 9},
		{Title: "Correct", Width: 7},
		{Title: "Total", Width: 7},
	}
}

// SectionRows converts section entries into table rows.
func SectionRows(section Section) []table.Row {
	rows := make([]table.Row, 0, len(section.Entries))
	for _, entry := range section.Entries {
		rows = append(rows, table.Row{
			entry.Label(),
			entry.Display,
			strconv.Itoa(entry.Correct),
			strconv.Itoa(entry.Total),
		})
	}
	return rows
}

// NewSectionTable builds a table model for one section.
func NewSectionTable(section Section, noColor bool, focused bool) table.Model {
	return table.New(
		table.WithColumns(SectionColumns(section)),
		table.WithRows(SectionRows(section)),
		table.WithHeight(len(section.Entries)+2),
		table.WithFocused(focused),
		table.WithStyles(TableStyles(noColor)),
	)
}

// RenderTables renders every section as a static terminal table.
func RenderTables(doc Document, noColor bool) string {
	var b strings.Builder
	heading := lipgloss.NewStyle().Bold(true)
	if noColor {
		heading = lipgloss.NewStyle()
	}
	b.WriteString(heading.Render(doc.Title))
	b.WriteString("\n")
	b.WriteString("Overall Accuracy: " + doc.Overall.Display + " (" + doc.Overall.Counts() + ")\n")
	for _, section := range doc.Sections() {
		b.WriteString("\n")
		b.WriteString(heading.Render(section.Title))
		b.WriteString("\n")
		b.WriteString(NewSectionTable(section, noColor, false).View())
		b.WriteString("\n")
	}
	return b.String()
}

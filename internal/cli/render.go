package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/hallo/internal/model"
	"github.com/theirongolddev/hallo/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	value  lipgloss.Style
	muted  lipgloss.Style
	money  lipgloss.Style
	warn   lipgloss.Style
	border lipgloss.Style
}

func currentStyles() styles {
	t := theme.Active
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Align(lipgloss.Center),
		header: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		value:  lipgloss.NewStyle().Foreground(t.TextPrimary),
		muted:  lipgloss.NewStyle().Foreground(t.TextMuted),
		money:  lipgloss.NewStyle().Foreground(t.Value),
		warn:   lipgloss.NewStyle().Foreground(t.Warn),
		border: lipgloss.NewStyle().Foreground(t.TextDim),
	}
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return box.Render(currentStyles().title.Render(title))
}

// RenderLabel renders a "label: value" line with the value highlighted as money.
func RenderLabel(label, value string) string {
	s := currentStyles()
	return "  " + s.muted.Render(label+":") + " " + s.money.Render(value)
}

// RenderWarning renders a warning line.
func RenderWarning(msg string) string {
	return "  " + currentStyles().warn.Render(msg)
}

// ProjectRow returns the table cells describing a project.
func ProjectRow(p model.Project) []string {
	a := p.Allocation()
	return []string{
		p.Name(),
		FormatDate(a.StartDate()),
		FormatDate(a.EndDate()),
		FormatDays(a.Days()),
		FormatValue(p.Value()),
	}
}

// RenderProjects renders projects as a table.
func RenderProjects(title string, projects []model.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, ProjectRow(p))
	}
	return RenderTable(Table{
		Title:   title,
		Headers: []string{"Project", "Start", "End", "Length", "Value"},
		Rows:    rows,
	})
}

// RenderTable renders a bordered table with headers and rows.
// A row holding the single cell "---" renders as a separator.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	s := currentStyles()
	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(s.header.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(s.border.Render(left))
		for i, w := range widths {
			b.WriteString(s.border.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(s.border.Render(mid))
			}
		}
		b.WriteString(s.border.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(s.border.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(s.header.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			if i < numCols-1 {
				b.WriteString(s.border.Render("│"))
			}
		}
		b.WriteString(s.border.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}

		b.WriteString(s.border.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// First column is left-aligned, the rest right-aligned.
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", widths[i], cell)
			} else {
				padded = fmt.Sprintf(" %*s ", widths[i], cell)
			}
			b.WriteString(s.value.Render(padded))
			if i < numCols-1 {
				b.WriteString(s.border.Render("│"))
			}
		}
		b.WriteString(s.border.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")

	return b.String()
}

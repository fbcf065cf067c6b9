// pkg/render/render.go

// Package render turns a classified manual set into terminal output.
package render

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/pkgtools/apt-world/pkg/status"
	"github.com/pkgtools/apt-world/pkg/world"
)

// Row is one line of output with every column resolved for display
type Row struct {
	Name         string
	Architecture string
	Version      string
	Manual       string // "Explicit" or "Implicit"
	Priority     string
	Section      string
}

var headers = []string{"Package", "Architecture", "Version", "Manual", "Priority", "Section"}

func (r Row) columns() []string {
	return []string{r.Name, r.Architecture, r.Version, r.Manual, r.Priority, r.Section}
}

// Rows joins a manual set with its package records, sorted by name in
// plain byte order so the output is stable regardless of locale.
func Rows(set world.ManualSet, records status.Records) []Row {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]Row, 0, len(names))
	for _, name := range names {
		rec := records[name]
		rows = append(rows, Row{
			Name:         name,
			Architecture: rec.Architecture,
			Version:      rec.Version,
			Manual:       set[name].String(),
			Priority:     rec.Priority.String(),
			Section:      rec.Section,
		})
	}
	return rows
}

// Names renders rows as a bare newline-terminated name list, one
// package per line
func Names(rows []Row) string {
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(row.Name)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Options control table decoration
type Options struct {
	// Color enables styled output. Callers normally tie this to
	// whether stdout is a terminal.
	Color bool
}

// Table renders rows as an aligned table with a header and separator
// line. An empty row set renders as an empty string.
func Table(rows []Row, opts Options) string {
	if len(rows) == 0 {
		return ""
	}

	styles := plainStyles()
	if opts.Color {
		styles = colorStyles()
	}

	// Column widths from the widest cell, header included
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row.columns() {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	// Add padding to widths because lipgloss Width includes padding
	for i := range widths {
		widths[i] += 2
	}

	var sb strings.Builder

	for i, h := range headers {
		sb.WriteString(styles.header.Width(widths[i]).Render(h))
		if i < len(headers)-1 {
			sb.WriteString(styles.separator.Render("|"))
		}
	}
	sb.WriteString("\n")

	total := len(headers) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(styles.separator.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")

	for _, row := range rows {
		cells := row.columns()
		for i, cell := range cells {
			sb.WriteString(styles.cell.Width(widths[i]).Render(cell))
			if i < len(cells)-1 {
				sb.WriteString(styles.separator.Render("|"))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// IsTerminal reports whether w is attached to an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type tableStyles struct {
	header    lipgloss.Style
	cell      lipgloss.Style
	separator lipgloss.Style
}

func plainStyles() tableStyles {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return tableStyles{
		header:    cell,
		cell:      cell,
		separator: lipgloss.NewStyle(),
	}
}

func colorStyles() tableStyles {
	return tableStyles{
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1),
		cell:      lipgloss.NewStyle().Padding(0, 1),
		separator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// filepath: internal/console/table.go
package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	createdLayout = "2006-01-02 15:04:05"
	absent        = "-"
)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// renderTable prints a markdown style table.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.MarkdownBorder()).
		BorderTop(false).
		BorderBottom(false).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

func idCell(id int64) string { return strconv.FormatInt(id, 10) }

func optionalCell(s *string) string {
	if s == nil || *s == "" {
		return absent
	}
	return *s
}

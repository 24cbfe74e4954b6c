// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	rejectedStyle = cellStyle.Foreground(lipgloss.Color("196"))
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// output prints tabular results: a styled table on a terminal, tab separated
// lines everywhere else or when plain is set.
type output struct {
	w       io.Writer
	plain   bool
	headers []string
	rows    [][]string
	// rejected marks rows rendered in the rejection color.
	rejected map[int]bool
}

func newOutput(w io.Writer, plain bool, headers ...string) *output {
	return &output{
		w:        w,
		plain:    plain || !isTerminal(w),
		headers:  headers,
		rejected: map[int]bool{},
	}
}

func (o *output) row(cells ...string) {
	o.rows = append(o.rows, cells)
}

func (o *output) rejectedRow(cells ...string) {
	o.rejected[len(o.rows)] = true
	o.row(cells...)
}

func (o *output) flush() error {
	if o.plain {
		for _, r := range o.rows {
			if _, err := fmt.Fprintln(o.w, strings.Join(r, "\t")); err != nil {
				return err
			}
		}
		return nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(o.headers...).
		Rows(o.rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case o.rejected[row]:
				return rejectedStyle
			default:
				return cellStyle
			}
		})
	_, err := fmt.Fprintln(o.w, t.Render())
	return err
}

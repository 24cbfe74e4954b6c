// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/toeirei/maskedit/internal/i18n"
)

// result is one submitted field.
type result struct {
	ID     string
	Label  string
	Value  string
	Amount string
}

var (
	resultHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	resultCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func renderResults(results []result) string {
	if len(results) == 0 {
		return ""
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(i18n.T("tui.header.field"), i18n.T("tui.header.value"), i18n.T("tui.header.amount")).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return resultHeaderStyle
			}
			return resultCellStyle
		})
	for _, r := range results {
		t.Row(r.Label, r.Value, r.Amount)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(i18n.T("tui.submitted")),
		t.Render(),
	)
}

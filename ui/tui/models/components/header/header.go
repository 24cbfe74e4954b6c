// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/maskedit/buildvars"
	"github.com/toeirei/maskedit/internal/i18n"
	"github.com/toeirei/maskedit/ui/tui/util"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	versionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type Model struct {
	size util.Size
}

func New() *Model {
	return &Model{}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) View() string {
	line := titleStyle.Render(i18n.T("tui.title")) + " " +
		versionStyle.Render(buildvars.VersionOrDefault("dev"))
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		Render(lipgloss.PlaceHorizontal(m.size.Width, lipgloss.Center, line))
}

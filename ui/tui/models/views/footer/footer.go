// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/maskedit/ui/tui/models/components/keyhelp"
	"github.com/toeirei/maskedit/ui/tui/util"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)

// Model shows a status line above the key help. The base key map is merged
// into every announced key map.
type Model struct {
	baseKeyMap help.KeyMap
	status     string
	size       util.Size
	help       *keyhelp.Model
}

func New(baseKeyMap help.KeyMap) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
	}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	}

	m.size.Update(msg)
	return m.help.Update(msg)
}

func (m Model) View() string {
	h := lipgloss.Left
	if m.help.Expanded {
		h = lipgloss.Center
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			statusStyle.Render(m.status),
			lipgloss.PlaceHorizontal(m.size.Width, h, m.help.View()),
		))
}

func (m *Model) SetStatus(status string) {
	m.status = status
}

func (m Model) Status() string { return m.status }

func (m Model) Expanded() bool { return m.help.Expanded }

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}

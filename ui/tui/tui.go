// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/maskedit/core/currency"
	"github.com/toeirei/maskedit/core/mask"
	"github.com/toeirei/maskedit/internal/config"
	"github.com/toeirei/maskedit/ui/tui/models/views/root"
)

// Run opens the playground form for fields and blocks until the user quits.
// It returns the values of the last submit keyed by field id.
func Run(fields []config.Field, table currency.Table, opts ...mask.Option) (map[string]string, error) {
	m, err := root.New(fields, table, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return nil, err
	}
	return m.Results(), nil
}

// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/maskedit/core/currency"
	"github.com/toeirei/maskedit/core/mask"
	"github.com/toeirei/maskedit/internal/config"
	"github.com/toeirei/maskedit/internal/i18n"
	"github.com/toeirei/maskedit/ui/tui/models/components/header"
	"github.com/toeirei/maskedit/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/maskedit/ui/tui/models/helpers/form/input"
	windowtitle "github.com/toeirei/maskedit/ui/tui/models/helpers/title"
	"github.com/toeirei/maskedit/ui/tui/models/views/footer"
	"github.com/toeirei/maskedit/ui/tui/util"
	"github.com/toeirei/maskedit/util/slicest"
)

const submitID = "_submit"

type submittedMsg struct {
	values map[string]string
	err    error
}

// Model is the playground: one masked input per configured field, a submit
// button and the table of the last submitted values.
type Model struct {
	keyMap   KeyMap
	header   *header.Model
	form     form.Form[map[string]string]
	footer   *footer.Model
	title    *windowtitle.TitleHandler
	fields   []config.Field
	engines  map[string]*mask.Engine
	results  []result
	activeID string
}

func New(fields []config.Field, table currency.Table, opts ...mask.Option) (*Model, error) {
	keyMap := DefaultKeyMap()
	m := &Model{
		keyMap:  keyMap,
		header:  header.New(),
		footer:  footer.New(keyMap),
		title:   windowtitle.NewHandler(i18n.T("tui.title"), " | "),
		fields:  fields,
		engines: make(map[string]*mask.Engine, len(fields)),
	}

	formOpts := []form.NewOpt[map[string]string]{
		form.WithOnSubmit(func(values map[string]string, err error) tea.Cmd {
			return func() tea.Msg { return submittedMsg{values: values, err: err} }
		}),
	}
	for _, f := range fields {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		e, err := newEngine(f, table, opts...)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.ID, err)
		}
		m.engines[f.ID] = e

		in := forminput.NewText(label(f), placeholder(f), e)
		if f.Value != "" {
			in.Set(f.Value)
		}
		formOpts = append(formOpts, form.WithInput[map[string]string](f.ID, in))
	}
	formOpts = append(formOpts, form.WithInput[map[string]string](submitID, forminput.NewButton(i18n.T("tui.submit"), false)))
	m.form = form.New(formOpts...)
	m.footer.SetStatus(i18n.T("tui.status.ready"))

	return m, nil
}

func newEngine(f config.Field, table currency.Table, opts ...mask.Option) (*mask.Engine, error) {
	if f.Currency != "" {
		return mask.NewCurrency(f.Currency, table, opts...)
	}
	return mask.New(f.Mask, opts...), nil
}

func label(f config.Field) string {
	l := f.Label
	if l == "" {
		l = f.ID
	}
	if f.Currency != "" {
		l += " (" + f.Currency + ")"
	}
	return l
}

func placeholder(f config.Field) string {
	if f.Currency != "" {
		return "0"
	}
	return f.Mask
}

func (m *Model) Init() tea.Cmd {
	m.activeID = m.form.ActiveID()
	return tea.Sequence(
		m.title.Init(),
		m.form.Init(),
		m.form.Focus(nil),
		windowtitle.Set(m.activeLabel()),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Help):
			m.footer.ToggleExpanded()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.header.Update(msg)
		m.footer.Update(msg)
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	case util.AnnounceKeyMapMsg:
		return m, m.footer.Update(msg)
	case submittedMsg:
		m.submitted(msg)
		return m, nil
	}

	if cmd, ok := m.title.Handle(msg); ok {
		return m, cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, tea.Batch(cmd, m.syncTitle())
}

func (m *Model) syncTitle() tea.Cmd {
	if id := m.form.ActiveID(); id != m.activeID {
		m.activeID = id
		return windowtitle.Set(m.activeLabel())
	}
	return nil
}

func (m *Model) activeLabel() string {
	for _, f := range m.fields {
		if f.ID == m.activeID {
			return label(f)
		}
	}
	return i18n.T("tui.submit")
}

func (m *Model) submitted(msg submittedMsg) {
	if msg.err != nil {
		m.footer.SetStatus(i18n.T("tui.status.error", msg.err))
		return
	}
	m.results = m.results[:0]
	for _, f := range m.fields {
		value := msg.values[f.ID]
		r := result{ID: f.ID, Label: label(f), Value: value}
		if e := m.engines[f.ID]; e != nil {
			if _, ok := e.Currency(); ok && value != "" {
				r.Amount = e.Amount(value).Text('f')
			}
		}
		m.results = append(m.results, r)
	}
	m.footer.SetStatus(i18n.T("tui.status.submitted", len(m.results)))
}

// Results returns the values of the last submit keyed by field id.
func (m *Model) Results() map[string]string {
	return slicest.ToMap(m.results, func(r result) (string, string) {
		return r.ID, r.Value
	})
}

func (m *Model) View() string {
	parts := []string{m.header.View(), m.form.View()}
	if r := renderResults(m.results); r != "" {
		parts = append(parts, r)
	}
	parts = append(parts, m.footer.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

var _ tea.Model = (*Model)(nil)

// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/maskedit/core/mask"
	"github.com/toeirei/maskedit/internal/i18n"
	"github.com/toeirei/maskedit/ui/tui/models/helpers/form"
	"github.com/toeirei/maskedit/ui/tui/util"
)

// Formatter is the strategy a Text input formats its value with.
// *mask.Engine implements it; a nil Formatter leaves the input unformatted.
type Formatter interface {
	Init(initial string) mask.Result
	Apply(s mask.State, ev mask.Event) mask.Result
}

type maxLengther interface {
	MaxLength() int
}

type Text struct {
	Label       string
	Placeholder string
	KeyMap      TextKeyMap
	Formatter   Formatter
	// ReadClipboard backs the paste binding. Defaults to the system clipboard.
	ReadClipboard func() (string, error)

	input   textinput.Model
	focused bool
	reason  mask.Reason
}

type TextKeyMap struct {
	Next  key.Binding
	Paste key.Binding
}

func (k TextKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Next, k.Paste} }

func (k TextKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Next, k.Paste}} }

func NewText(label, placeholder string, formatter Formatter) *Text {
	t := &Text{
		Label:       label,
		Placeholder: placeholder,
		Formatter:   formatter,
		KeyMap: TextKeyMap{
			Next: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("tui.help.next")),
			),
			Paste: key.NewBinding(
				key.WithKeys("ctrl+v"),
				key.WithHelp("ctrl+v", i18n.T("tui.help.paste")),
			),
		},
		ReadClipboard: clipboard.ReadAll,
		input:         textinput.New(),
	}
	t.input.Prompt = "> "
	if ml, ok := formatter.(maxLengther); ok {
		t.input.CharLimit = ml.MaxLength()
	}
	return t
}

func (t *Text) Blur() {
	t.input.Blur()
	t.focused = false
}

func (t *Text) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	t.focused = true
	return tea.Batch(t.input.Focus(), util.AnnounceKeyMapCmd(baseKeyMap, t.KeyMap))
}

func (t *Text) Get() any {
	return t.input.Value()
}

// Position is the caret offset in runes.
func (t *Text) Position() int {
	return t.input.Position()
}

// Rejection is the reason the last event was refused, ReasonNone otherwise.
func (t *Text) Rejection() mask.Reason {
	return t.reason
}

func (t *Text) Init() tea.Cmd {
	return nil
}

func (t *Text) Reset() {
	t.input.SetValue("")
	t.input.SetCursor(0)
	t.reason = mask.ReasonNone
}

// Set assigns a value programmatically; it is reformatted as a whole.
func (t *Text) Set(value any) {
	s, ok := value.(string)
	if !ok {
		return
	}
	if t.Formatter == nil {
		t.input.SetValue(s)
		t.input.CursorEnd()
		return
	}
	t.commit(t.Formatter.Init(s))
}

func (t *Text) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return cmd, form.ActionNone
	}

	switch {
	case key.Matches(kmsg, t.KeyMap.Next):
		return nil, form.ActionNext
	case key.Matches(kmsg, t.KeyMap.Paste):
		if t.ReadClipboard != nil {
			if text, err := t.ReadClipboard(); err == nil {
				t.paste(text)
			}
		}
		return nil, form.ActionNone
	}

	if t.Formatter == nil {
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return cmd, form.ActionNone
	}

	switch {
	case kmsg.Paste:
		t.paste(string(kmsg.Runes))
	case kmsg.Type == tea.KeyRunes && !kmsg.Alt, kmsg.Type == tea.KeySpace:
		for _, r := range kmsg.Runes {
			t.apply(mask.Keystroke{Rune: r, Caret: t.input.Position()})
		}
	case kmsg.Type == tea.KeyBackspace:
		t.apply(mask.Backspace{Caret: t.input.Position()})
	case kmsg.Type == tea.KeyDelete:
		t.apply(mask.Delete{Caret: t.input.Position()})
	default:
		// Cursor movement goes to the textinput. Edits the engine did not see
		// (ctrl+w, ctrl+k, ...) are reformatted as a whole afterwards.
		before := t.input.Value()
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		if after := t.input.Value(); after != before {
			t.apply(mask.Set{Text: after})
		}
		return cmd, form.ActionNone
	}
	return nil, form.ActionNone
}

// paste inserts text at the caret and reformats the whole value.
func (t *Text) paste(text string) {
	value := []rune(t.input.Value())
	p := util.Clamp(0, t.input.Position(), len(value))
	combined := string(value[:p]) + text + string(value[p:])
	if t.Formatter == nil {
		t.input.SetValue(combined)
		return
	}
	t.apply(mask.Set{Text: combined})
}

func (t *Text) apply(ev mask.Event) {
	state := mask.State{Value: t.input.Value(), Caret: t.input.Position()}
	t.commit(t.Formatter.Apply(state, ev))
}

func (t *Text) commit(res mask.Result) {
	if !res.Accepted {
		t.reason = res.Reason
		return
	}
	t.reason = mask.ReasonNone
	t.input.SetValue(res.State.Value)
	mask.ApplyEffects(&t.input, res.Effects)
}

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	reasonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Italic(true)
)

func (t *Text) View(width int) string {
	label := labelStyle.Render(t.Label)
	if t.focused {
		label = focusedStyle.Render(t.Label)
	}

	if width > 2 {
		t.input.Width = width - 2
	}
	t.input.Placeholder = t.Placeholder

	lines := []string{label, t.input.View()}
	if t.reason != mask.ReasonNone {
		lines = append(lines, reasonStyle.Render(i18n.T("mask.reason."+t.reason.String())))
	} else {
		lines = append(lines, "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

var _ form.FormInput = (*Text)(nil)

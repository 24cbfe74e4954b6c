// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/maskedit/core/currency"
	"github.com/toeirei/maskedit/core/mask"
	"github.com/toeirei/maskedit/ui/tui/models/helpers/form"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeKeys(t *testing.T, in *Text, keys string) {
	t.Helper()
	for _, r := range keys {
		if _, action := in.Update(runes(string(r))); action != form.ActionNone {
			t.Fatalf("unexpected action %v for %q", action, r)
		}
	}
}

func TestText_FormatsWhileTyping(t *testing.T) {
	in := NewText("Date", "dd/mm/yyyy", mask.New("99/99/9999"))
	typeKeys(t, in, "12012024")

	if got := in.Get(); got != "12/01/2024" {
		t.Fatalf("value = %q", got)
	}
	if in.Position() != 10 {
		t.Fatalf("caret = %d, want 10", in.Position())
	}
	if in.input.CharLimit != 10 {
		t.Fatalf("char limit = %d, want mask length", in.input.CharLimit)
	}
}

func TestText_RejectionIsShownAndCleared(t *testing.T) {
	in := NewText("Date", "", mask.New("99/99/9999"))
	typeKeys(t, in, "12x")

	if in.Get() != "12" {
		t.Fatalf("rejected rune changed the value: %q", in.Get())
	}
	if in.Rejection() != mask.ReasonClass {
		t.Fatalf("rejection = %v", in.Rejection())
	}
	if view := in.View(40); !strings.Contains(view, "character not allowed here") {
		t.Fatalf("view does not explain the rejection:\n%s", view)
	}

	typeKeys(t, in, "0")
	if in.Rejection() != mask.ReasonNone || in.Get() != "12/0" {
		t.Fatalf("unexpected state after accepted key: %q %v", in.Get(), in.Rejection())
	}
}

func TestText_BackspaceAndDelete(t *testing.T) {
	in := NewText("Date", "", mask.New("99/99/9999"))
	typeKeys(t, in, "1201202")

	in.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if in.Get() != "12/01/20" {
		t.Fatalf("after backspace: %q", in.Get())
	}
	in.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	in.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if in.Get() != "12/01" || in.Position() != 5 {
		t.Fatalf("separator must not be orphaned: %q caret %d", in.Get(), in.Position())
	}

	in.input.SetCursor(0)
	in.Update(tea.KeyMsg{Type: tea.KeyDelete})
	if in.Get() != "20/1" || in.Position() != 0 {
		t.Fatalf("after delete: %q caret %d", in.Get(), in.Position())
	}
}

func TestText_PasteFromClipboardAndBracketed(t *testing.T) {
	in := NewText("Date", "", mask.New("99/99/9999"))
	in.ReadClipboard = func() (string, error) { return "31-12-1999", nil }

	in.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if in.Get() != "31/12/1999" {
		t.Fatalf("clipboard paste: %q", in.Get())
	}

	in.Reset()
	in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0102"), Paste: true})
	if in.Get() != "01/02" {
		t.Fatalf("bracketed paste: %q", in.Get())
	}

	in.ReadClipboard = func() (string, error) { return "", errors.New("no clipboard") }
	in.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if in.Get() != "01/02" {
		t.Fatalf("failed clipboard read must not change the value: %q", in.Get())
	}
}

func TestText_CurrencyFormatter(t *testing.T) {
	e, err := mask.NewCurrency("$", currency.DefaultTable())
	if err != nil {
		t.Fatalf("NewCurrency: %v", err)
	}
	in := NewText("Amount", "", e)
	if in.input.CharLimit != 0 {
		t.Fatalf("currency input must be unbounded, got %d", in.input.CharLimit)
	}

	var renders []string
	for _, r := range "500" {
		in.Update(runes(string(r)))
		renders = append(renders, in.Get().(string))
	}
	if strings.Join(renders, " ") != "0.05 0.50 5.00" {
		t.Fatalf("renders = %v", renders)
	}

	in.Update(runes("a"))
	if in.Rejection() != mask.ReasonNotDigit {
		t.Fatalf("rejection = %v", in.Rejection())
	}
}

func TestText_SetReformats(t *testing.T) {
	in := NewText("Plate", "", mask.New("aaa-9*99"))
	in.Set("abc1d23")
	if in.Get() != "abc-1d23" {
		t.Fatalf("Set: %q", in.Get())
	}
	in.Set(42)
	if in.Get() != "abc-1d23" {
		t.Fatalf("non-string Set must be ignored: %q", in.Get())
	}
}

func TestText_UnseenEditsAreReformatted(t *testing.T) {
	in := NewText("Date", "", mask.New("99/99/9999"))
	in.Focus(nil)
	in.Set("12012024")
	in.input.SetCursor(4)

	in.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	if in.Get() != "12/0" {
		t.Fatalf("after ctrl+k: %q", in.Get())
	}
}

func TestText_WithoutFormatter(t *testing.T) {
	in := NewText("Free", "", nil)
	in.Focus(nil)
	in.Update(runes("a/b"))
	if in.Get() != "a/b" {
		t.Fatalf("plain input: %q", in.Get())
	}
}

func TestText_EnterMovesOn(t *testing.T) {
	in := NewText("Date", "", mask.New("99"))
	if _, action := in.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != form.ActionNext {
		t.Fatalf("enter action = %v", action)
	}
}

func TestButton_Submits(t *testing.T) {
	b := NewButton("Submit", false)
	if _, action := b.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != form.ActionSubmit {
		t.Fatalf("action = %v", action)
	}
	b.Disabled = true
	if _, action := b.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != form.ActionNone {
		t.Fatalf("disabled button must not submit")
	}
	if !strings.Contains(b.View(20), "Submit") {
		t.Fatalf("label missing from view")
	}
}

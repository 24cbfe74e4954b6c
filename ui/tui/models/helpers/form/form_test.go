// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.
package form_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/toeirei/maskedit/core/mask"
	"github.com/toeirei/maskedit/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/maskedit/ui/tui/models/helpers/form/input"
)

func press(f form.Form[map[string]string], msgs ...tea.Msg) form.Form[map[string]string] {
	for _, msg := range msgs {
		f, _ = f.Update(msg)
	}
	return f
}

func keys(s string) []tea.Msg {
	var out []tea.Msg
	for _, r := range s {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

func newForm(opts ...form.NewOpt[map[string]string]) form.Form[map[string]string] {
	base := []form.NewOpt[map[string]string]{
		form.WithInput[map[string]string]("date", forminput.NewText("Date", "", mask.New("99/99/9999"))),
		form.WithInput[map[string]string]("plate", forminput.NewText("Plate", "", mask.New("aaa-9*99"))),
		form.WithInput[map[string]string]("submit", forminput.NewButton("Submit", false)),
	}
	return form.New(append(base, opts...)...)
}

func TestForm_Navigation(t *testing.T) {
	f := newForm()
	f.Focus(nil)
	if got := f.ActiveID(); got != "date" {
		t.Fatalf("expected date to be active, got %q", got)
	}

	steps := []struct {
		key  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, "plate"},
		{tea.KeyMsg{Type: tea.KeyEnter}, "submit"}, // enter in a text input moves on
		{tea.KeyMsg{Type: tea.KeyTab}, "date"},     // wraps around
		{tea.KeyMsg{Type: tea.KeyShiftTab}, "submit"},
	}
	for i, step := range steps {
		f = press(f, step.key)
		if got := f.ActiveID(); got != step.want {
			t.Fatalf("step %d (%s): expected %q, got %q", i, step.key, step.want, got)
		}
	}
}

func TestForm_UnfocusedIgnoresKeys(t *testing.T) {
	f := newForm()
	f = press(f, keys("12")...)

	data, err := f.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data["date"] != "" {
		t.Fatalf("unfocused form accepted keys: %q", data["date"])
	}
}

func TestForm_GetCollectsFormattedValues(t *testing.T) {
	f := newForm()
	f.Focus(nil)
	f = press(f, keys("120120")...)
	f = press(f, tea.KeyMsg{Type: tea.KeyTab})
	f = press(f, keys("abc1d2")...)

	data, err := f.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if diff := cmp.Diff(map[string]string{"date": "12/01/20", "plate": "abc-1d2"}, data); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestForm_SubmitAndReset(t *testing.T) {
	var got map[string]string
	f := newForm(
		form.WithOnSubmit(func(result map[string]string, err error) tea.Cmd {
			got = result
			return nil
		}),
		form.WithResetAfterSubmit[map[string]string](),
	)
	f.Focus(nil)
	f = press(f, keys("3112")...)
	f = press(f, tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.ActiveID() != "submit" {
		t.Fatalf("expected submit to be active, got %q", f.ActiveID())
	}
	f = press(f, tea.KeyMsg{Type: tea.KeyEnter})

	if got["date"] != "31/12" {
		t.Fatalf("submitted date = %q, expected 31/12", got["date"])
	}
	if f.ActiveID() != "date" {
		t.Fatalf("reset must return focus to the first input, got %q", f.ActiveID())
	}

	data, err := f.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data["date"] != "" {
		t.Fatalf("reset kept %q", data["date"])
	}
}

func TestForm_SetReformats(t *testing.T) {
	f := newForm()
	if err := f.Set(map[string]string{"date": "01021999", "plate": "xyz9999"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, err := f.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data["date"] != "01/02/1999" || data["plate"] != "xyz-9999" {
		t.Fatalf("unexpected values: %v", data)
	}

	in, ok := f.Input("plate")
	if !ok {
		t.Fatalf("input plate not found")
	}
	if got := in.Get(); got != "xyz-9999" {
		t.Fatalf("plate input holds %v", got)
	}
	if _, ok := f.Input("missing"); ok {
		t.Fatalf("unknown id must not resolve")
	}
}

func TestForm_ViewRendersEveryInput(t *testing.T) {
	f := newForm()
	f = press(f, tea.WindowSizeMsg{Width: 60, Height: 20})
	view := f.View()
	for _, label := range []string{"Date", "Plate", "Submit"} {
		if !strings.Contains(view, label) {
			t.Fatalf("view misses %q:\n%s", label, view)
		}
	}
}

func TestForm_WithRowSharesOneLine(t *testing.T) {
	f := form.New(
		form.WithRow[map[string]string](
			[]string{"from", "to"},
			forminput.NewText("From", "", mask.New("99:99")),
			forminput.NewText("To", "", mask.New("99:99")),
		),
	)
	f.Focus(nil)
	f = press(f, tea.WindowSizeMsg{Width: 60, Height: 10})
	f = press(f, keys("0830")...)
	f = press(f, tea.KeyMsg{Type: tea.KeyTab})
	f = press(f, keys("1700")...)

	data, err := f.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if diff := cmp.Diff(map[string]string{"from": "08:30", "to": "17:00"}, data); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	first := strings.Split(f.View(), "\n")[0]
	if !strings.Contains(first, "From") || !strings.Contains(first, "To") {
		t.Fatalf("both labels should share the first line, got %q", first)
	}
}

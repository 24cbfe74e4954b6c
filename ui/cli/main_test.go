// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/toeirei/maskedit/core/currency"
	"github.com/toeirei/maskedit/core/mask"
	"github.com/toeirei/maskedit/internal/config"
	"github.com/toeirei/maskedit/internal/i18n"
	"github.com/toeirei/maskedit/internal/logging"
)

// isolate keeps config discovery away from the developer's files.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Chdir(tmp)
	t.Cleanup(func() {
		i18n.Init("en")
		logging.SetOutput(os.Stderr)
	})
	return tmp
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFormat_MaskArgs(t *testing.T) {
	isolate(t)
	out, err := run(t, "", "format", "--mask", "99/99/9999", "12012024", "31-12-1999", "1x2")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if want := "12/01/2024\n31/12/1999\n12\n"; out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestFormat_CurrencyFromStdin(t *testing.T) {
	isolate(t)
	out, err := run(t, "1234.5\n1000\n", "format", "--currency", "$", "--amount")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if want := "1,234.50\t1234.50\n1,000.00\t1000.00\n"; out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestFormat_Errors(t *testing.T) {
	isolate(t)
	_, err := run(t, "", "format", "--mask", "99", "--currency", "$", "1")
	if err == nil || !strings.Contains(err.Error(), "--mask") {
		t.Fatalf("expected an error naming --mask, got %v", err)
	}

	_, err = run(t, "", "format", "--currency", "XYZ", "1")
	if !errors.Is(err, currency.ErrUnknownCurrency) {
		t.Fatalf("expected ErrUnknownCurrency, got %v", err)
	}
}

func TestType_ShowsEveryStep(t *testing.T) {
	isolate(t)
	out, err := run(t, "", "type", "--mask", "99/99/9999", "12x0<")
	if err != nil {
		t.Fatalf("type: %v", err)
	}
	want := strings.Join([]string{
		"1\t1\taccepted\t1\t1",
		"2\t2\taccepted\t12\t2",
		"3\tx\trejected (character not allowed here)\t12\t2",
		"4\t0\taccepted\t12/0\t4",
		"5\t⌫\taccepted\t12\t2",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("steps mismatch (-want +got):\n%s", diff)
	}
}

func TestType_LeadingLiteralMask(t *testing.T) {
	isolate(t)
	out, err := run(t, "", "type", "--mask", "+1 999", "155")
	if err != nil {
		t.Fatalf("type: %v", err)
	}
	if !strings.Contains(out, "3\t5\taccepted\t+1 155\t6") {
		t.Fatalf("typed 1 must be kept, got:\n%s", out)
	}
}

func TestType_Language(t *testing.T) {
	isolate(t)
	out, err := run(t, "", "--language", "de", "type", "--currency", "€", "1a")
	if err != nil {
		t.Fatalf("type: %v", err)
	}
	for _, want := range []string{"1\t1\tangenommen\t0,01\t4", "abgelehnt (nur Ziffern erlaubt)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestHelpLanguage(t *testing.T) {
	t.Setenv("MASKEDIT_LANGUAGE", "")
	cases := []struct {
		args []string
		want string
	}{
		{nil, "en"},
		{[]string{"format", "--language", "de"}, "de"},
		{[]string{"--language=de", "--help"}, "de"},
		{[]string{"--language"}, "en"},
		{[]string{"format", "--", "--language", "de"}, "en"},
	}
	for _, tc := range cases {
		if got := helpLanguage(tc.args); got != tc.want {
			t.Fatalf("helpLanguage(%q) = %q, expected %q", tc.args, got, tc.want)
		}
	}

	t.Setenv("MASKEDIT_LANGUAGE", "de")
	if got := helpLanguage([]string{"format"}); got != "de" {
		t.Fatalf("env not used: %q", got)
	}
	if got := helpLanguage([]string{"--language", "en"}); got != "en" {
		t.Fatalf("flag must win over env: %q", got)
	}
}

func TestHelp_IsTranslated(t *testing.T) {
	isolate(t)
	args := []string{"--language", "de", "--help"}
	i18n.Init(helpLanguage(args))

	out, err := run(t, "", args...)
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	for _, want := range []string{"Eingabemasken-Engine und Spielwiese", "Sprache der Oberfläche"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in help:\n%s", want, out)
		}
	}
}

func TestReplay_EmptyMaskPassesThrough(t *testing.T) {
	steps := replay(mask.New(""), "a<b")
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	if got := steps[2].result.State.Value; got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
}

func TestCurrencies_ListsConfiguredTable(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "maskedit.yaml")
	if err := os.WriteFile(file, []byte(`currencies:
  - symbol: "pts"
    decimal_digits: 0
    decimal_separator: "."
    group_separator: ","
`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := run(t, "", "currencies")
	if err != nil {
		t.Fatalf("currencies: %v", err)
	}
	if want := "pts\tund\t\t0\t\".\"\t\",\"\n"; out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestCurrencies_Defaults(t *testing.T) {
	isolate(t)
	out, err := run(t, "", "currencies")
	if err != nil {
		t.Fatalf("currencies: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(currency.DefaultEntries) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(currency.DefaultEntries), len(lines), out)
	}
	if want := "$\ten-US\tUSD\t2\t\".\"\t\",\""; lines[0] != want {
		t.Fatalf("expected %q, got %q", want, lines[0])
	}
}

func TestConfig_InitAndShow(t *testing.T) {
	tmp := isolate(t)
	path := filepath.Join(tmp, "out", "maskedit.yaml")

	out, err := run(t, "", "config", "init", "--output", path)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Fatalf("init output does not name %s: %q", path, out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	out, err = run(t, "", "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"language: en", "99/99/9999"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestTUI_PrintsSubmittedValues(t *testing.T) {
	isolate(t)
	orig := openTUI
	t.Cleanup(func() { openTUI = orig })

	var got []config.Field
	openTUI = func(fields []config.Field, _ currency.Table, _ ...mask.Option) (map[string]string, error) {
		got = fields
		return map[string]string{"date": "01/02/2003"}, nil
	}

	out, err := run(t, "", "tui", "--field", "date", "--field", "amount")
	if err != nil {
		t.Fatalf("tui: %v", err)
	}
	if len(got) != 2 || got[0].ID != "date" || got[1].ID != "amount" {
		t.Fatalf("unexpected fields: %+v", got)
	}
	if want := "date\t01/02/2003\n"; out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}

	_, err = run(t, "", "tui", "--field", "nope")
	if !errors.Is(err, config.ErrFieldID) {
		t.Fatalf("expected ErrFieldID, got %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	isolate(t)
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if want := versionString() + "\n"; out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package currency

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultTable_Resolve(t *testing.T) {
	table := DefaultTable()
	require.Equal(t, len(DefaultEntries), table.Len())

	cases := []struct {
		symbol   string
		digits   int
		dec, grp string
		locale   string
	}{
		{"$", 2, ".", ",", "en-US"},
		{"R$", 2, ",", ".", "pt-BR"},
		{"¥", 0, ".", ",", "ja-JP"},
		{"kr", 2, ",", " ", "sv-SE"},
	}
	for _, tc := range cases {
		f, err := table.Resolve(tc.symbol)
		require.NoError(t, err, tc.symbol)
		require.Equal(t, tc.digits, f.DecimalDigits, tc.symbol)
		require.Equal(t, tc.dec, f.DecimalSeparator, tc.symbol)
		require.Equal(t, tc.grp, f.GroupSeparator, tc.symbol)
		require.Equal(t, tc.locale, f.Locale.String(), tc.symbol)
	}
}

func TestTable_ResolveErrors(t *testing.T) {
	table, err := NewTable(
		Entry{Symbol: "€", Locale: "de-DE", Code: "EUR", DecimalSeparator: ",", GroupSeparator: "."},
		Entry{Symbol: "€", Locale: "fr-FR", Code: "EUR", DecimalSeparator: ",", GroupSeparator: " "},
	)
	require.NoError(t, err)

	_, err = table.Resolve("€")
	require.ErrorIs(t, err, ErrAmbiguousCurrency)

	_, err = table.Resolve("$")
	require.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestEntry_FormatValidation(t *testing.T) {
	two := 2
	neg := -1
	cases := []struct {
		name  string
		entry Entry
		ok    bool
	}{
		{"explicit digits", Entry{Symbol: "x", DecimalDigits: &two, DecimalSeparator: "."}, true},
		{"iso digits", Entry{Symbol: "x", Code: "USD", DecimalSeparator: "."}, true},
		{"empty symbol", Entry{Code: "USD", DecimalSeparator: "."}, false},
		{"no decimal separator", Entry{Symbol: "x", Code: "USD"}, false},
		{"same separators", Entry{Symbol: "x", Code: "USD", DecimalSeparator: ".", GroupSeparator: "."}, false},
		{"bad code", Entry{Symbol: "x", Code: "XXXX", DecimalSeparator: "."}, false},
		{"bad locale", Entry{Symbol: "x", Locale: "not a tag!", Code: "USD", DecimalSeparator: "."}, false},
		{"negative digits", Entry{Symbol: "x", DecimalDigits: &neg, DecimalSeparator: "."}, false},
		{"no digits source", Entry{Symbol: "x", DecimalSeparator: "."}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.entry.Format()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidEntry)
			}
		})
	}
}

func TestNewTable_KeepsValidEntries(t *testing.T) {
	table, err := NewTable(
		Entry{Symbol: "$", Code: "USD", DecimalSeparator: "."},
		Entry{Symbol: "", Code: "USD", DecimalSeparator: "."},
	)
	require.ErrorIs(t, err, ErrInvalidEntry)
	require.Equal(t, 1, table.Len())

	f, err := table.Resolve("$")
	require.NoError(t, err)
	require.Equal(t, "USD", f.Code)
}

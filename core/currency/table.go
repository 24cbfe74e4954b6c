// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package currency

import (
	"errors"
	"fmt"
	"strings"

	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
)

var (
	ErrUnknownCurrency   = errors.New("no currency format matches symbol")
	ErrAmbiguousCurrency = errors.New("more than one currency format matches symbol")
	ErrInvalidEntry      = errors.New("invalid currency entry")
)

// Entry is the configured form of a currency format. DecimalDigits may be
// omitted, in which case the ISO 4217 standard scale of Code is used.
type Entry struct {
	Symbol           string `mapstructure:"symbol" yaml:"symbol"`
	Locale           string `mapstructure:"locale" yaml:"locale"`
	Code             string `mapstructure:"code" yaml:"code"`
	DecimalDigits    *int   `mapstructure:"decimal_digits" yaml:"decimal_digits,omitempty"`
	DecimalSeparator string `mapstructure:"decimal_separator" yaml:"decimal_separator"`
	GroupSeparator   string `mapstructure:"group_separator" yaml:"group_separator"`
}

// Format is a resolved currency number format.
type Format struct {
	Symbol           string
	Locale           language.Tag
	Code             string
	DecimalDigits    int
	DecimalSeparator string
	GroupSeparator   string
}

// Format validates the entry and fills in derived fields.
func (e Entry) Format() (Format, error) {
	if strings.TrimSpace(e.Symbol) == "" {
		return Format{}, fmt.Errorf("%w: empty symbol", ErrInvalidEntry)
	}
	if e.DecimalSeparator == "" {
		return Format{}, fmt.Errorf("%w: %q has no decimal separator", ErrInvalidEntry, e.Symbol)
	}
	if e.DecimalSeparator == e.GroupSeparator {
		return Format{}, fmt.Errorf("%w: %q uses %q for both separators", ErrInvalidEntry, e.Symbol, e.DecimalSeparator)
	}

	f := Format{
		Symbol:           e.Symbol,
		Locale:           language.Und,
		DecimalSeparator: e.DecimalSeparator,
		GroupSeparator:   e.GroupSeparator,
	}
	if e.Locale != "" {
		tag, err := language.Parse(e.Locale)
		if err != nil {
			return Format{}, fmt.Errorf("%w: %q locale %q: %v", ErrInvalidEntry, e.Symbol, e.Locale, err)
		}
		f.Locale = tag
	}

	var unit xcurrency.Unit
	if e.Code != "" {
		u, err := xcurrency.ParseISO(e.Code)
		if err != nil {
			return Format{}, fmt.Errorf("%w: %q code %q: %v", ErrInvalidEntry, e.Symbol, e.Code, err)
		}
		unit = u
		f.Code = u.String()
	}

	switch {
	case e.DecimalDigits != nil:
		if *e.DecimalDigits < 0 {
			return Format{}, fmt.Errorf("%w: %q has negative decimal digits", ErrInvalidEntry, e.Symbol)
		}
		f.DecimalDigits = *e.DecimalDigits
	case f.Code != "":
		scale, _ := xcurrency.Standard.Rounding(unit)
		f.DecimalDigits = scale
	default:
		return Format{}, fmt.Errorf("%w: %q needs decimal_digits or an ISO code", ErrInvalidEntry, e.Symbol)
	}
	return f, nil
}

// Table is the set of known currency formats.
type Table struct {
	formats []Format
}

// NewTable resolves entries into a Table. Duplicated symbols are allowed here;
// they only fail when that symbol is looked up.
func NewTable(entries ...Entry) (Table, error) {
	t := Table{formats: make([]Format, 0, len(entries))}
	var errs []error
	for _, e := range entries {
		f, err := e.Format()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		t.formats = append(t.formats, f)
	}
	return t, errors.Join(errs...)
}

func (t Table) Formats() []Format {
	return append([]Format(nil), t.formats...)
}

func (t Table) Len() int { return len(t.formats) }

// Resolve returns the single format whose symbol equals symbol.
func (t Table) Resolve(symbol string) (Format, error) {
	var (
		found Format
		n     int
	)
	for _, f := range t.formats {
		if f.Symbol == symbol {
			found = f
			n++
		}
	}
	switch n {
	case 0:
		return Format{}, fmt.Errorf("%w %q", ErrUnknownCurrency, symbol)
	case 1:
		return found, nil
	default:
		return Format{}, fmt.Errorf("%w %q (%d entries)", ErrAmbiguousCurrency, symbol, n)
	}
}

func digits(n int) *int { return &n }

// DefaultEntries is the compiled-in table used when the configuration has no
// currencies section.
var DefaultEntries = []Entry{
	{Symbol: "$", Locale: "en-US", Code: "USD", DecimalSeparator: ".", GroupSeparator: ","},
	{Symbol: "R$", Locale: "pt-BR", Code: "BRL", DecimalSeparator: ",", GroupSeparator: "."},
	{Symbol: "£", Locale: "en-GB", Code: "GBP", DecimalSeparator: ".", GroupSeparator: ","},
	{Symbol: "€", Locale: "de-DE", Code: "EUR", DecimalSeparator: ",", GroupSeparator: "."},
	{Symbol: "¥", Locale: "ja-JP", Code: "JPY", DecimalSeparator: ".", GroupSeparator: ","},
	{Symbol: "CHF", Locale: "de-CH", Code: "CHF", DecimalSeparator: ".", GroupSeparator: "’"},
	{Symbol: "kr", Locale: "sv-SE", Code: "SEK", DecimalDigits: digits(2), DecimalSeparator: ",", GroupSeparator: " "},
}

// DefaultTable resolves DefaultEntries. The entries are static, so an error is
// a programming mistake.
func DefaultTable() Table {
	t, err := NewTable(DefaultEntries...)
	if err != nil {
		panic(err)
	}
	return t
}

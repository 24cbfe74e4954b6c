// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package currency

import (
	"strings"
	"unicode"

	"github.com/cockroachdb/apd/v3"
)

// MaxDigits is the largest number of significant digits an amount may carry.
const MaxDigits = 28

var decimalContext = apd.BaseContext.WithPrecision(MaxDigits + 6)

// Digits keeps only the ASCII digits of s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidRaw reports whether raw is a well-formed unsigned decimal digit string
// that fits in MaxDigits significant digits.
func ValidRaw(raw string) bool {
	if raw == "" {
		return false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(strings.TrimLeft(raw, "0")) <= MaxDigits
}

// Render formats a raw digit string: the last DecimalDigits digits form the
// zero-padded fraction, the rest the thousands-grouped integer part. An empty
// raw string renders as the empty string.
func (f Format) Render(raw string) string {
	if raw == "" {
		return ""
	}
	n := f.DecimalDigits
	intPart, frac := raw, ""
	if n > 0 {
		if len(raw) > n {
			intPart, frac = raw[:len(raw)-n], raw[len(raw)-n:]
		} else {
			intPart, frac = "", strings.Repeat("0", n-len(raw))+raw
		}
	}
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(f.GroupSeparator)
		b.WriteString(intPart[i : i+3])
	}
	if n > 0 {
		b.WriteString(f.DecimalSeparator)
		b.WriteString(frac)
	}
	return b.String()
}

// Parse reads a value written in this format (group separators optional, an
// optional leading symbol) into a decimal.
func (f Format) Parse(s string) (*apd.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimPrefix(s, f.Symbol))
	if f.GroupSeparator != "" {
		s = strings.ReplaceAll(s, f.GroupSeparator, "")
	}
	s = strings.ReplaceAll(s, f.DecimalSeparator, ".")
	s = strings.TrimFunc(s, unicode.IsSpace)
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Amount parses a rendered value. Malformed values yield zero.
func (f Format) Amount(s string) *apd.Decimal {
	d, err := f.Parse(s)
	if err != nil || d.Form != apd.Finite {
		return apd.New(0, 0)
	}
	return d
}

// RawFromAmount quantizes d to the format scale and returns its digits, the
// inverse of Render. The sign is dropped.
func (f Format) RawFromAmount(d *apd.Decimal) (string, bool) {
	if d == nil || d.Form != apd.Finite {
		return "", false
	}
	var q apd.Decimal
	q.Abs(d)
	if _, err := decimalContext.Quantize(&q, &q, -int32(f.DecimalDigits)); err != nil {
		return "", false
	}
	raw := strings.Replace(q.Text('f'), ".", "", 1)
	if !ValidRaw(raw) {
		return "", false
	}
	return raw, true
}

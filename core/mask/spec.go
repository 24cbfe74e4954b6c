// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package mask

import (
	"maps"
	"slices"
	"unicode"
)

// Kind is the class of a single mask position.
type Kind int

const (
	KindLiteral Kind = iota
	KindLetter
	KindDigit
	KindLetterOrDigit
)

func (k Kind) String() string {
	switch k {
	case KindLetter:
		return "letter"
	case KindDigit:
		return "digit"
	case KindLetterOrDigit:
		return "letter-or-digit"
	default:
		return "literal"
	}
}

// Token is one position of a compiled mask.
type Token struct {
	Kind    Kind
	Literal rune
}

// Accepts reports whether r may occupy this position.
func (t Token) Accepts(r rune) bool {
	switch t.Kind {
	case KindLetter:
		return unicode.IsLetter(r)
	case KindDigit:
		return unicode.IsDigit(r)
	case KindLetterOrDigit:
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	default:
		return r == t.Literal
	}
}

// Spec is a compiled mask. It is read-only after Compile.
type Spec struct {
	pattern  string
	tokens   []Token
	literals map[int]rune
	order    []int
}

// Compile builds a Spec from a mask pattern. An empty pattern yields an empty
// Spec, which formats nothing.
func Compile(pattern string) Spec {
	s := Spec{
		pattern:  pattern,
		literals: make(map[int]rune),
	}
	for i, r := range []rune(pattern) {
		var t Token
		switch r {
		case 'a':
			t.Kind = KindLetter
		case '9':
			t.Kind = KindDigit
		case '*':
			t.Kind = KindLetterOrDigit
		default:
			t = Token{Kind: KindLiteral, Literal: r}
			s.literals[i] = r
			s.order = append(s.order, i)
		}
		s.tokens = append(s.tokens, t)
	}
	return s
}

func (s Spec) Pattern() string { return s.pattern }

// Len is the mask length in runes.
func (s Spec) Len() int { return len(s.tokens) }

func (s Spec) IsEmpty() bool { return len(s.tokens) == 0 }

// Token returns the token at position i.
func (s Spec) Token(i int) (Token, bool) {
	if i < 0 || i >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[i], true
}

func (s Spec) IsLiteral(i int) bool {
	_, ok := s.literals[i]
	return ok
}

// Literals returns a copy of the literal position map.
func (s Spec) Literals() map[int]rune {
	return maps.Clone(s.literals)
}

// Placeholders is the number of user-typed positions.
func (s Spec) Placeholders() int {
	return len(s.tokens) - len(s.order)
}

// Inject inserts every literal whose position lies within the value and is
// not already present. The length is re-read after each insertion, so one
// pass is enough and a second pass is a no-op.
func (s Spec) Inject(value string) string {
	if value == "" || len(s.order) == 0 {
		return value
	}
	rs := []rune(value)
	for _, pos := range s.order {
		if len(rs) < pos+1 {
			break
		}
		if lit := s.literals[pos]; rs[pos] != lit {
			rs = slices.Insert(rs, pos, lit)
		}
	}
	return string(rs)
}

// Strip removes the literals Inject would have placed. Positions are scanned
// in increasing order and each removal shifts the following literals one to
// the left, which is accounted for.
//
// Strip compares runes, not positions, so it cannot tell a typed rune from a
// literal equal to it. Idempotence and Strip(Inject(raw)) == raw hold for raw
// values that contain no literal rune of the mask. The engine works on
// positions instead (see layout) and does not depend on either property.
func (s Spec) Strip(value string) string {
	if value == "" || len(s.order) == 0 {
		return value
	}
	rs := []rune(value)
	removed := 0
	for _, pos := range s.order {
		i := pos - removed
		if i >= len(rs) {
			break
		}
		if rs[i] == s.literals[pos] {
			rs = slices.Delete(rs, i, i+1)
			removed++
		}
	}
	return string(rs)
}

// TrimTrailing drops runes sitting on literal positions at the end of value
// so a deletion never leaves an orphaned separator behind.
func (s Spec) TrimTrailing(value string) string {
	rs := []rune(value)
	for len(rs) > 0 && s.IsLiteral(len(rs)-1) {
		rs = rs[:len(rs)-1]
	}
	return string(rs)
}

// Fits reports whether every rune of a formatted value is accepted by the
// token at its position and the value is not longer than the mask.
func (s Spec) Fits(value string) bool {
	rs := []rune(value)
	if len(rs) > len(s.tokens) {
		return false
	}
	for i, r := range rs {
		if !s.tokens[i].Accepts(r) {
			return false
		}
	}
	return true
}

// laidOut reports whether every literal position inside value holds its
// literal, which is the shape every value produced by layout has.
func (s Spec) laidOut(value []rune) bool {
	for _, pos := range s.order {
		if pos >= len(value) {
			break
		}
		if value[pos] != s.literals[pos] {
			return false
		}
	}
	return true
}

// raw returns the user-entered runes of value. A laid out value is read by
// position, so typed runes equal to a literal survive; anything else falls
// back to Strip.
func (s Spec) raw(value []rune) []rune {
	if !s.laidOut(value) {
		return []rune(s.Strip(string(value)))
	}
	out := make([]rune, 0, len(value))
	for i, r := range value {
		if !s.IsLiteral(i) {
			out = append(out, r)
		}
	}
	return out
}

// layout puts raw runes on successive placeholder positions and the literals
// on theirs. Literals after the last raw rune are left out.
func (s Spec) layout(raw []rune) string {
	out := make([]rune, 0, len(s.tokens))
	for pos := 0; pos < len(s.tokens); pos++ {
		if lit, ok := s.literals[pos]; ok {
			out = append(out, lit)
			continue
		}
		if len(raw) == 0 {
			break
		}
		out = append(out, raw[0])
		raw = raw[1:]
	}
	return s.TrimTrailing(string(out))
}

// rawIndex maps a caret in a formatted value to the index of the same spot in
// its raw runes.
func (s Spec) rawIndex(value []rune, caret int) int {
	return len(s.raw(value[:caret]))
}

// skipLiterals advances pos past consecutive literal positions.
func (s Spec) skipLiterals(pos int) int {
	for s.IsLiteral(pos) {
		pos++
	}
	return pos
}

// conform keeps the raw runes that fit the successive placeholder slots and
// drops the rest, then lays them out. Used for pastes and programmatic sets.
func (s Spec) conform(raw []rune) string {
	out := make([]rune, 0, s.Placeholders())
	pos := s.skipLiterals(0)
	for _, r := range raw {
		if pos >= len(s.tokens) {
			break
		}
		if !s.tokens[pos].Accepts(r) {
			continue
		}
		out = append(out, r)
		pos = s.skipLiterals(pos + 1)
	}
	return s.layout(out)
}

// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package mask

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/apd/v3"
	"github.com/toeirei/maskedit/core/currency"
)

// Engine formats the value of one input. It holds configuration only; the
// input state is passed to and returned from Apply, so an Engine may be shared
// by any number of inputs using the same mask.
type Engine struct {
	spec     Spec
	currency *currency.Format
	logger   *log.Logger
}

type Option func(*Engine)

// WithLogger makes the engine log rejected events at debug level.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New returns an engine in positional mode. An empty pattern makes the engine
// a pass-through.
func New(pattern string, opts ...Option) *Engine {
	e := &Engine{spec: Compile(pattern)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewCurrency returns an engine in currency mode. The symbol must resolve to
// exactly one format of table.
func NewCurrency(symbol string, table currency.Table, opts ...Option) (*Engine, error) {
	f, err := table.Resolve(symbol)
	if err != nil {
		return nil, fmt.Errorf("currency mode: %w", err)
	}
	e := &Engine{currency: &f}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) Spec() Spec { return e.spec }

// Currency returns the resolved format when the engine is in currency mode.
func (e *Engine) Currency() (currency.Format, bool) {
	if e.currency == nil {
		return currency.Format{}, false
	}
	return *e.currency, true
}

// MaxLength is the mask length, or 0 when the value length is unbounded.
func (e *Engine) MaxLength() int {
	if e.currency != nil {
		return 0
	}
	return e.spec.Len()
}

// SetMask replaces the mask and reformats s under it. The compiled Spec is only
// rebuilt when the pattern actually changes. Currency engines ignore masks.
func (e *Engine) SetMask(pattern string, s State) Result {
	if e.currency != nil || pattern == e.spec.Pattern() {
		return Result{State: s.Clamped(), Accepted: true}
	}
	e.spec = Compile(pattern)
	return e.Apply(s, Set{Text: s.Value})
}

// Init formats an initial value.
func (e *Engine) Init(initial string) Result {
	return e.Apply(State{}, Set{Text: initial})
}

// Apply computes the state that follows s when ev happens. Rejected events
// return s unchanged and no effects.
func (e *Engine) Apply(s State, ev Event) Result {
	s = s.Clamped()
	if e.currency != nil {
		return e.applyCurrency(s, ev)
	}
	switch ev := ev.(type) {
	case Keystroke:
		return e.keystroke(s, ev)
	case Backspace:
		return e.backspace(s, ev.Caret)
	case Delete:
		return e.delete(s, ev.Caret)
	case Set:
		return e.set(ev.Text)
	default:
		return reject(s, ReasonNone)
	}
}

// Amount is the decimal value of a currency-mode value; zero for positional
// engines and malformed values.
func (e *Engine) Amount(value string) *apd.Decimal {
	if e.currency == nil {
		return apd.New(0, 0)
	}
	return e.currency.Amount(value)
}

func (e *Engine) rejected(s State, reason Reason, ev Event) Result {
	if e.logger != nil {
		e.logger.Debug("input rejected", "reason", reason, "event", fmt.Sprintf("%T", ev), "value", s.Value, "caret", s.Caret)
	}
	return reject(s, reason)
}

func (e *Engine) keystroke(s State, k Keystroke) Result {
	rs := []rune(s.Value)
	p := min(max(k.Caret, 0), len(rs))

	if e.spec.IsEmpty() {
		return accept(string(slices.Insert(rs, p, k.Rune)), p+1)
	}
	if len(rs) >= e.spec.Len() {
		return e.rejected(s, ReasonFull, k)
	}

	// Insert among the raw runes and lay them out again, so literals that the
	// insertion pushed to the right land on their positions again.
	raw := e.spec.raw(rs)
	ri := min(e.spec.rawIndex(rs, p), len(raw))
	candidate := e.spec.layout(slices.Insert(raw, ri, k.Rune))

	cr := []rune(candidate)
	if len(cr) > e.spec.Len() {
		return e.rejected(s, ReasonFull, k)
	}
	pos := e.spec.skipLiterals(p)
	tok, ok := e.spec.Token(pos)
	if !ok || pos >= len(cr) || !tok.Accepts(cr[pos]) || !e.spec.Fits(candidate) {
		return e.rejected(s, ReasonClass, k)
	}
	return accept(candidate, pos+1)
}

func (e *Engine) backspace(s State, caret int) Result {
	rs := []rune(s.Value)
	p := min(max(caret, 0), len(rs))

	if e.spec.IsEmpty() {
		if p == 0 {
			return e.rejected(s, ReasonNothingToDelete, Backspace{Caret: caret})
		}
		return accept(string(slices.Delete(rs, p-1, p)), p-1)
	}

	// A backspace right behind a separator takes the separator and the
	// user-entered rune in front of it.
	i := p - 1
	for i >= 0 && e.spec.IsLiteral(i) {
		i--
	}
	if i < 0 {
		return e.rejected(s, ReasonNothingToDelete, Backspace{Caret: caret})
	}
	return accept(e.removeAt(rs, i), i)
}

func (e *Engine) delete(s State, caret int) Result {
	rs := []rune(s.Value)
	p := min(max(caret, 0), len(rs))

	if e.spec.IsEmpty() {
		if p >= len(rs) {
			return e.rejected(s, ReasonNothingToDelete, Delete{Caret: caret})
		}
		return accept(string(slices.Delete(rs, p, p+1)), p)
	}

	i := p
	for i < len(rs) && e.spec.IsLiteral(i) {
		i++
	}
	if i >= len(rs) {
		return e.rejected(s, ReasonNothingToDelete, Delete{Caret: caret})
	}
	return accept(e.removeAt(rs, i), p)
}

// removeAt removes the user-entered rune at formatted index i and reformats.
func (e *Engine) removeAt(rs []rune, i int) string {
	raw := e.spec.raw(rs)
	ri := e.spec.rawIndex(rs, i)
	if ri < len(raw) {
		raw = slices.Delete(raw, ri, ri+1)
	}
	return e.spec.layout(raw)
}

func (e *Engine) set(text string) Result {
	if e.spec.IsEmpty() {
		return accept(text, len([]rune(text)))
	}
	v := e.spec.conform(e.spec.raw([]rune(text)))
	return accept(v, len([]rune(v)))
}

func (e *Engine) applyCurrency(s State, ev Event) Result {
	f := e.currency
	switch ev := ev.(type) {
	case Keystroke:
		if ev.Rune < '0' || ev.Rune > '9' {
			return e.rejected(s, ReasonNotDigit, ev)
		}
		raw := currency.Digits(s.Value) + string(ev.Rune)
		if !currency.ValidRaw(raw) {
			return e.rejected(s, ReasonMalformed, ev)
		}
		v := f.Render(raw)
		return accept(v, len([]rune(v)))
	case Backspace:
		if s.Value == "" {
			return e.rejected(s, ReasonNothingToDelete, ev)
		}
		raw := strings.TrimLeft(currency.Digits(s.Value), "0")
		if raw != "" {
			raw = raw[:len(raw)-1]
		}
		v := f.Render(raw)
		return accept(v, len([]rune(v)))
	case Set:
		v := e.currencySet(ev.Text)
		return accept(v, len([]rune(v)))
	default:
		return e.rejected(s, ReasonNothingToDelete, ev)
	}
}

// currencySet renders arbitrary text. Text that does not parse as an amount
// falls back to its digits, and to zero when those are not usable either.
func (e *Engine) currencySet(text string) string {
	f := e.currency
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if d, err := f.Parse(text); err == nil {
		if raw, ok := f.RawFromAmount(d); ok {
			return f.Render(raw)
		}
	}
	raw := currency.Digits(text)
	if !currency.ValidRaw(raw) {
		raw = "0"
	}
	return f.Render(raw)
}

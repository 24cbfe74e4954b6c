// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package mask

// State is the displayed value of an input and its caret, in runes.
type State struct {
	Value string
	Caret int
}

// Clamped returns s with the caret limited to [0, len(Value)].
func (s State) Clamped() State {
	n := len([]rune(s.Value))
	s.Caret = min(max(s.Caret, 0), n)
	return s
}

// Event is an input the engine reacts to.
type Event interface {
	isEvent()
}

// Keystroke is a single printable rune typed at Caret.
type Keystroke struct {
	Rune  rune
	Caret int
}

// Backspace deletes the user-entered rune before Caret.
type Backspace struct {
	Caret int
}

// Delete deletes the user-entered rune at or after Caret.
type Delete struct {
	Caret int
}

// Set replaces the whole value, as a paste or a programmatic assignment does.
// The text is reformatted as a whole rather than keystroke by keystroke.
type Set struct {
	Text string
}

func (Keystroke) isEvent() {}
func (Backspace) isEvent() {}
func (Delete) isEvent()    {}
func (Set) isEvent()       {}

// Effect is a side effect the host performs after an accepted event.
type Effect interface {
	isEffect()
}

// MoveCaret asks the host to place its caret at To.
type MoveCaret struct {
	To int
}

func (MoveCaret) isEffect() {}

// Reason explains why an event was rejected.
type Reason int

const (
	ReasonNone Reason = iota
	// ReasonFull means the value already has the length of the mask.
	ReasonFull
	// ReasonClass means the rune is not accepted at its position.
	ReasonClass
	// ReasonNotDigit is the currency mode rejection of non-digit runes.
	ReasonNotDigit
	// ReasonMalformed means the candidate is not a well-formed number.
	ReasonMalformed
	// ReasonNothingToDelete means a deletion had no user-entered rune to remove.
	ReasonNothingToDelete
)

func (r Reason) String() string {
	switch r {
	case ReasonFull:
		return "full"
	case ReasonClass:
		return "class"
	case ReasonNotDigit:
		return "not_digit"
	case ReasonMalformed:
		return "malformed"
	case ReasonNothingToDelete:
		return "nothing_to_delete"
	default:
		return "none"
	}
}

// Result is the outcome of applying an event. A rejected result carries the
// unchanged input state.
type Result struct {
	State    State
	Accepted bool
	Reason   Reason
	Effects  []Effect
}

func accept(value string, caret int) Result {
	s := State{Value: value, Caret: caret}.Clamped()
	return Result{
		State:    s,
		Accepted: true,
		Effects:  []Effect{MoveCaret{To: s.Caret}},
	}
}

func reject(s State, reason Reason) Result {
	return Result{State: s, Reason: reason}
}

// Caret is the host side of caret handling: bubbles' textinput.Model
// satisfies it.
type Caret interface {
	Position() int
	SetCursor(pos int)
}

// ApplyEffects performs the caret effects of a result on c.
func ApplyEffects(c Caret, effects []Effect) {
	for _, e := range effects {
		if mv, ok := e.(MoveCaret); ok {
			c.SetCursor(mv.To)
		}
	}
}

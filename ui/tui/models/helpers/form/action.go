// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.
package form

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionSubmit
)

// Action is what an input asks the surrounding form to do after an update.
type Action int

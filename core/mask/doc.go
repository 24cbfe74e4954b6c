// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package mask implements the incremental input-mask formatting engine.
//
// A mask is a template string over the alphabet {a, 9, *, <other>}: `a`
// accepts a letter, `9` a digit, `*` a letter or digit, and any other rune is
// a literal that the engine inserts on its own. Alternatively an engine can run
// in currency mode, where only digits are accepted and the value is rendered as
// a grouped decimal number using a format from package currency.
//
// The engine never touches a widget. Hosts keep a State, feed events to
// Engine.Apply and receive the next State plus a list of effects (caret moves)
// to perform on their input element.
package mask

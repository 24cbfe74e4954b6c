// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package currency holds the static table of currency number formats and the
// helpers that render raw digit strings as grouped decimal amounts.
//
// Formats are looked up by symbol. A symbol must match exactly one entry of
// the table; anything else is a configuration error.
package currency

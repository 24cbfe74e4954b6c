// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui groups the user interfaces of maskedit: the Cobra CLI in ui/cli
// and the Bubble Tea playground in ui/tui.
package ui

// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.
// Package tui hosts the mask engine in a Bubble Tea program. Inputs take the
// engine as a formatter; the models only translate key messages into engine
// events and apply the results.
package tui

// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli implements the maskedit command-line interface using Cobra.
// Commands stay thin: they load configuration, build a mask engine and
// print what it produces.
package cli

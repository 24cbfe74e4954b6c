// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for maskedit.
//
// Usage:
//
//	go run . [flags]
//	./maskedit format --mask 99/99/9999 12012024
//
// Running without a subcommand opens the interactive form. See --help.
package main

import (
	"context"
	"os"

	"github.com/toeirei/maskedit/ui/cli"
)

func main() {
	// fang prints the error itself.
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}

// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/toeirei/maskedit/internal/config"
	"github.com/toeirei/maskedit/internal/i18n"
	"github.com/toeirei/maskedit/ui/tui"
)

// openTUI is swapped in tests; the real program needs a terminal.
var openTUI = tui.Run

func newTUICmd(a *app) *cobra.Command {
	var only []string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: i18n.T("cli.tui.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd, only)
		},
	}
	cmd.Flags().StringSliceVarP(&only, "field", "f", nil, i18n.T("cli.flag.field"))
	return cmd
}

// runTUI opens the form for the configured fields, or for the fields named
// in only, and prints the submitted values after the program exits.
func (a *app) runTUI(cmd *cobra.Command, only []string) error {
	fields, err := a.cfg.FormFields()
	if err != nil {
		return err
	}
	if len(only) > 0 {
		fields = selectFields(fields, only)
		if len(fields) == 0 {
			return fmt.Errorf("%w: %v", config.ErrFieldID, only)
		}
	}

	values, err := openTUI(fields, a.table)
	if err != nil {
		return err
	}
	for _, f := range fields {
		if v, ok := values[f.ID]; ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", f.ID, v)
		}
	}
	return nil
}

func selectFields(fields []config.Field, ids []string) []config.Field {
	return slices.DeleteFunc(slices.Clone(fields), func(f config.Field) bool {
		return !slices.Contains(ids, f.ID)
	})
}

// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/toeirei/maskedit/internal/i18n"
)

func newCurrenciesCmd(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "currencies",
		Short: i18n.T("cli.currencies.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newOutput(cmd.OutOrStdout(), plain,
				i18n.T("cli.header.symbol"),
				i18n.T("cli.header.locale"),
				i18n.T("cli.header.code"),
				i18n.T("cli.header.digits"),
				i18n.T("cli.header.decimal"),
				i18n.T("cli.header.group"),
			)
			for _, f := range a.table.Formats() {
				out.row(
					f.Symbol,
					f.Locale.String(),
					f.Code,
					strconv.Itoa(f.DecimalDigits),
					strconv.Quote(f.DecimalSeparator),
					strconv.Quote(f.GroupSeparator),
				)
			}
			return out.flush()
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, i18n.T("cli.flag.plain"))
	return cmd
}

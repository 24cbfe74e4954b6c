// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"

	"github.com/spf13/cobra"
	"github.com/toeirei/maskedit/internal/i18n"
)

func newFormatCmd(a *app) *cobra.Command {
	var pattern, symbol string
	var amount, plain bool

	cmd := &cobra.Command{
		Use:     "format [value...]",
		Short:   i18n.T("cli.format.short"),
		Example: "  maskedit format --mask 99/99/9999 12012024\n  echo 123456 | maskedit format --currency '$' --amount",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine(pattern, symbol)
			if err != nil {
				return err
			}
			_, isCurrency := e.Currency()

			values := args
			if len(values) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					values = append(values, scanner.Text())
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}

			headers := []string{i18n.T("cli.header.input"), i18n.T("cli.header.value")}
			withAmount := amount && isCurrency
			if withAmount {
				headers = append(headers, i18n.T("cli.header.amount"))
			}
			out := newOutput(cmd.OutOrStdout(), plain, headers...)
			for _, v := range values {
				formatted := e.Init(v).State.Value
				if !out.plain {
					if withAmount {
						out.row(v, formatted, e.Amount(formatted).Text('f'))
					} else {
						out.row(v, formatted)
					}
					continue
				}
				if withAmount {
					out.row(formatted, e.Amount(formatted).Text('f'))
				} else {
					out.row(formatted)
				}
			}
			return out.flush()
		},
	}
	cmd.Flags().StringVarP(&pattern, "mask", "m", "", i18n.T("cli.flag.mask"))
	cmd.Flags().StringVarP(&symbol, "currency", "c", "", i18n.T("cli.flag.currency"))
	cmd.Flags().BoolVar(&amount, "amount", false, i18n.T("cli.flag.amount"))
	cmd.Flags().BoolVar(&plain, "plain", false, i18n.T("cli.flag.plain"))
	return cmd
}

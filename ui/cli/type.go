// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/toeirei/maskedit/core/mask"
	"github.com/toeirei/maskedit/internal/i18n"
)

const backspaceKey = '<'

// step is one replayed key and the engine's answer to it.
type step struct {
	key    string
	result mask.Result
}

// replay feeds keys into an empty input, typing at the caret. backspaceKey
// deletes the rune in front of the caret.
func replay(e *mask.Engine, keys string) []step {
	state := e.Init("").State
	var steps []step
	for _, r := range keys {
		var ev mask.Event = mask.Keystroke{Rune: r, Caret: state.Caret}
		label := string(r)
		if r == backspaceKey {
			ev = mask.Backspace{Caret: state.Caret}
			label = "⌫"
		}
		res := e.Apply(state, ev)
		state = res.State
		steps = append(steps, step{key: label, result: res})
	}
	return steps
}

func newTypeCmd(a *app) *cobra.Command {
	var pattern, symbol string
	var plain bool

	cmd := &cobra.Command{
		Use:     "type <keys>",
		Short:   i18n.T("cli.type.short"),
		Example: "  maskedit type --mask 99/99/9999 '12x0120<24'",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine(pattern, symbol)
			if err != nil {
				return err
			}

			out := newOutput(cmd.OutOrStdout(), plain,
				i18n.T("cli.header.step"),
				i18n.T("cli.header.key"),
				i18n.T("cli.header.result"),
				i18n.T("cli.header.value"),
				i18n.T("cli.header.caret"),
			)
			for i, s := range replay(e, args[0]) {
				cells := []string{
					strconv.Itoa(i + 1),
					s.key,
					i18n.T("cli.result.accepted"),
					s.result.State.Value,
					strconv.Itoa(s.result.State.Caret),
				}
				if !s.result.Accepted {
					cells[2] = i18n.T("cli.result.rejected", i18n.T("mask.reason."+s.result.Reason.String()))
					out.rejectedRow(cells...)
					continue
				}
				out.row(cells...)
			}
			return out.flush()
		},
	}
	cmd.Flags().StringVarP(&pattern, "mask", "m", "", i18n.T("cli.flag.mask"))
	cmd.Flags().StringVarP(&symbol, "currency", "c", "", i18n.T("cli.flag.currency"))
	cmd.Flags().BoolVar(&plain, "plain", false, i18n.T("cli.flag.plain"))
	return cmd
}

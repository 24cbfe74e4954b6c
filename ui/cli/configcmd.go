// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/toeirei/maskedit/internal/config"
	"github.com/toeirei/maskedit/internal/i18n"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: i18n.T("cli.config.short"),
	}

	show := &cobra.Command{
		Use:   "show",
		Short: i18n.T("cli.config.show.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	var system bool
	var path string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: i18n.T("cli.config.init.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := config.Default()
			if a.cfg.Language != "" {
				c.Language = a.cfg.Language
			}
			written := path
			var err error
			if written != "" {
				err = config.WriteConfigFileTo(&c, written)
			} else {
				written, err = config.WriteConfigFile(&c, system)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.config.written", written))
			return err
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, i18n.T("cli.flag.system"))
	initCmd.Flags().StringVarP(&path, "output", "o", "", i18n.T("cli.flag.output"))

	cmd.AddCommand(show, initCmd)
	return cmd
}

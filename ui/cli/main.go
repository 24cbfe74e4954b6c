// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/maskedit/buildvars"
	"github.com/toeirei/maskedit/core/currency"
	"github.com/toeirei/maskedit/core/mask"
	"github.com/toeirei/maskedit/internal/config"
	"github.com/toeirei/maskedit/internal/i18n"
	"github.com/toeirei/maskedit/internal/logging"
)

const modulePath = "github.com/toeirei/maskedit"

var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// app is the state shared by the commands of one root command.
type app struct {
	cfgFile string
	verbose bool

	cfg   config.Config
	table currency.Table
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logging.SetOutput(cmd.ErrOrStderr())

	cfg, err := config.LoadConfig[config.Config](cmd, config.Defaults(), &a.cfgFile)
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		logging.Debugf("no config file found, using defaults")
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	a.cfg = cfg

	if a.verbose {
		logging.SetDebug(true)
	} else if err := logging.SetLevel(cfg.LogLevel); err != nil {
		logging.Warnf("%v", err)
	}
	i18n.Init(cfg.Language)

	table, err := cfg.CurrencyTable()
	if err != nil {
		if table.Len() == 0 {
			return err
		}
		logging.Warnf("%s", i18n.T("cli.error.config_table", err))
	}
	a.table = table
	return nil
}

// engine builds a positional engine for pattern or a currency engine for
// symbol. Setting both is an error.
func (a *app) engine(pattern, symbol string) (*mask.Engine, error) {
	if pattern != "" && symbol != "" {
		return nil, errors.New(i18n.T("cli.error.mode"))
	}
	opts := []mask.Option{mask.WithLogger(logging.L)}
	if symbol == "" {
		return mask.New(pattern, opts...), nil
	}
	e, err := mask.NewCurrency(symbol, a.table, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", i18n.T("cli.error.engine"), err)
	}
	return e, nil
}

// NewRootCmd builds a fresh command tree. Running without a subcommand opens
// the interactive form.
func NewRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:               "maskedit",
		Short:             i18n.T("cli.short"),
		Long:              i18n.T("cli.long"),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd, nil)
		},
	}
	cmd.Version = versionString()

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, i18n.T("cli.flag.verbose"))
	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", i18n.T("cli.flag.config"))
	cmd.PersistentFlags().String("language", "", i18n.T("cli.flag.language"))

	cmd.AddCommand(
		newFormatCmd(a),
		newTypeCmd(a),
		newCurrenciesCmd(a),
		newTUICmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// helpLanguage picks the language of the command tree from --language or
// MASKEDIT_LANGUAGE. Short texts and flag usages are translated when the tree
// is built, before any flag is parsed; the config file language only applies
// once setup has run.
func helpLanguage(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if v, ok := strings.CutPrefix(arg, "--language="); ok {
			return v
		}
		if arg == "--language" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if lang := os.Getenv("MASKEDIT_LANGUAGE"); lang != "" {
		return lang
	}
	return "en"
}

// Execute runs the CLI entrypoint with fang's styling and signal handling.
func Execute(ctx context.Context) error {
	i18n.Init(helpLanguage(os.Args[1:]))
	return fang.Execute(
		ctx,
		NewRootCmd(),
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("cli.version.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), versionString())
			return err
		},
	}
}

func versionString() string {
	v, c, d := resolveBuildVersion(nil)
	composite := v
	if c != "" && c != "dev" && c != v {
		composite += " (" + c + ")"
	}
	if d != "" {
		composite += " built: " + d
	}
	return composite
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		info, _ = debug.ReadBuildInfo()
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record our version as a dependency.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && resolvedCommit != "" && resolvedCommit != "dev" {
		resolvedVersion = resolvedCommit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}

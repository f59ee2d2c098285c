package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/rolodex/internal/domain"
	"github.com/aalvaropc/rolodex/internal/infra/config"
	"github.com/aalvaropc/rolodex/internal/infra/logger"
	"github.com/aalvaropc/rolodex/internal/infra/workspacefinder"
	"github.com/aalvaropc/rolodex/internal/parser"
)

func Execute() {
	a := &app{}
	cmd := newRootCmd(a)

	err := cmd.Execute()
	switch {
	case err == nil:
	case domain.IsParseError(err):
		logger.L().Info("cli.parse_error", "err", err)
	default:
		logger.L().Error("cli.error", "err", err)
	}
	a.close()

	if err != nil {
		printError(os.Stderr, defaultTheme(), err)
		os.Exit(1)
	}
}

// app holds what every subcommand needs once the root flags are resolved.
type app struct {
	debug     bool
	output    string
	workspace string

	root    string
	cfg     domain.Config
	cleanup func() error
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rolodex",
		Short:         "Rolodex parses contact book commands and prints the result",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable verbose logging to .rolodex/logs/rolodex.log")
	cmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: yaml|json (overrides rolodex.yaml)")
	cmd.PersistentFlags().StringVarP(&a.workspace, "workspace", "w", "", "workspace root (optional; autodetected if omitted)")

	for _, word := range parser.CommandWords() {
		if word == parser.CommandHelp {
			continue
		}
		cmd.AddCommand(parseCmd(a, word))
	}
	cmd.SetHelpCommand(parseCmd(a, parser.CommandHelp))

	cmd.AddCommand(initCmd(a))
	cmd.AddCommand(versionCmd())
	return cmd
}

// setup locates the workspace, loads its config, applies flag overrides and
// starts file logging. Logging is best effort: a failure leaves the discard
// logger in place.
func (a *app) setup(cmd *cobra.Command) error {
	root, found, err := resolveWorkspaceRoot(a.workspace, workspacefinder.NewFinder())
	if err != nil {
		return err
	}
	a.root = root

	cfg := domain.DefaultConfig()
	if found {
		cfg, err = config.LoadConfig(root)
		if err != nil && !domain.IsKind(err, domain.KindNotFound) {
			return err
		}
	}

	if cmd.Flags().Changed("output") {
		format, err := config.ParseOutputFormat(a.output)
		if err != nil {
			return &domain.OpError{Op: "cli.flags", Kind: domain.KindInvalidArgument, Err: fmt.Errorf("--output: %w", err)}
		}
		cfg.Output = format
	}
	if a.debug {
		cfg.Logging.Debug = true
	}
	a.cfg = cfg

	cleanup, err := logger.Setup(logger.Config{
		Root:       root,
		Debug:      cfg.Logging.Debug,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	if err == nil {
		a.cleanup = cleanup
	}

	logger.L().Debug("cli.start", "command", cmd.Name(), "root", root, "workspace_found", found, "log", logger.Path())
	return nil
}

func (a *app) close() {
	if a.cleanup != nil {
		_ = a.cleanup()
		a.cleanup = nil
	}
}

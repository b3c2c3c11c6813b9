// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cli builds the zlendo command tree: the content API server and
// the one-shot commands used by static builds.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"zlendo/internal/config"
)

// Exit codes returned by Run.
const (
	ExitSuccess = 0
	ExitFatal   = 1
)

// AppContext carries the process streams into commands.
type AppContext struct {
	Stdout io.Writer
	Stderr io.Writer
}

type globalFlags struct {
	EnvFile string
	JSON    bool
}

// state is shared by the root command and its subcommands once the
// persistent pre-run has loaded configuration.
type state struct {
	global globalFlags
	cfg    *config.Config
}

// Run executes the CLI and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	app := normalizeAppContext(AppContext{Stdout: stdout, Stderr: stderr})
	root := NewRootCommand(app)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(app.Stderr, "error: %v\n", err)
		return ExitFatal
	}
	return ExitSuccess
}

// NewRootCommand constructs the Cobra command tree for the CLI.
func NewRootCommand(app AppContext) *cobra.Command {
	app = normalizeAppContext(app)
	st := &state{}

	root := &cobra.Command{
		Use:           "zlendo",
		Short:         "Blog and help-center content API backed by WordPress",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(st.global.EnvFile); err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			st.cfg = cfg
			slog.SetDefault(newLogger(cfg, app.Stderr))
			return nil
		},
	}
	root.SetOut(app.Stdout)
	root.SetErr(app.Stderr)

	root.PersistentFlags().StringVar(&st.global.EnvFile, "env-file", ".env", "dotenv file to load before reading the environment")
	root.PersistentFlags().BoolVar(&st.global.JSON, "json", false, "emit machine-readable JSON output")

	root.AddCommand(newServeCommand(st))
	root.AddCommand(newSlugsCommand(app, st))
	root.AddCommand(newCacheCommand(app, st))

	return root
}

// newLogger returns a text logger in development and a JSON logger
// otherwise, at the configured level.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.IsDev() {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func normalizeAppContext(app AppContext) AppContext {
	if app.Stdout == nil {
		app.Stdout = os.Stdout
	}
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}
	return app
}

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/fuelcalc/internal/app"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "fuelcalc",
		Short:         "Fuel cost calculator for daily bike commutes",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return app.Run(ctx, app.Options{ConfigPath: flags.configPath, Verbose: flags.verbose})
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default ~/.config/fuelcalc/config.toml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newCalcCmd(flags))
	cmd.AddCommand(newScenariosCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newResetCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// withEnv bootstraps the engine for a one-shot command. Logs go to stderr.
func withEnv(cmd *cobra.Command, flags *rootFlags, fn func(context.Context, *app.Env) error) error {
	env, err := app.Bootstrap(app.Options{
		ConfigPath: flags.configPath,
		Verbose:    flags.verbose,
		LogWriter:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, env)
}

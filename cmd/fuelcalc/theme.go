package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/fuelcalc/internal/app"
	"github.com/five82/fuelcalc/internal/theme"
)

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [name]",
		Short:     "Show or set the theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: theme.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, rootFlags, func(ctx context.Context, env *app.Env) error {
				if len(args) == 1 {
					if err := env.Engine.SelectTheme(args[0]); err != nil {
						return err
					}
				}
				snap := env.Engine.Snapshot()
				out := cmd.OutOrStdout()
				if snap.ThemeSelection != snap.Theme.Name {
					fmt.Fprintf(out, "%s (%s)\n", snap.ThemeSelection, snap.Theme.Name)
					return nil
				}
				fmt.Fprintln(out, snap.ThemeSelection)
				return nil
			})
		},
	}
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range theme.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

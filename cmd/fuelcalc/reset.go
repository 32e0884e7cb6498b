package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/fuelcalc/internal/app"
	"github.com/five82/fuelcalc/internal/state"
)

func newResetCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore every input to its default value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, rootFlags, func(ctx context.Context, env *app.Env) error {
				env.Engine.Reset()
				fmt.Fprintln(cmd.OutOrStdout(), state.MsgReset)
				return nil
			})
		},
	}
}

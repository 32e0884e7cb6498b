package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/fuelcalc/internal/app"
	"github.com/five82/fuelcalc/internal/calc"
)

func newScenariosCmd(rootFlags *rootFlags) *cobra.Command {
	var price float64

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Print daily cost across common mileages and distances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, rootFlags, func(ctx context.Context, env *app.Env) error {
				p := env.Engine.Snapshot().Inputs.PetrolPrice
				if cmd.Flags().Changed("price") {
					p = price
				}
				m := calc.NewMatrix(p)
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Daily cost at %s / L\n", env.Formatter.Currency(p))
				fmt.Fprintln(out, env.Formatter.ScenarioTable(m).String())
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&price, "price", 0, "Petrol price per litre (default: saved price)")

	return cmd
}

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/five82/fuelcalc/internal/app"
	"github.com/five82/fuelcalc/internal/calc"
	"github.com/five82/fuelcalc/internal/format"
)

type calcOptions struct {
	price    float64
	mileage  float64
	distance float64
	amount   float64
}

func newCalcCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &calcOptions{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Print running costs for the saved inputs",
		Long:  "Print running costs for the saved inputs. Flags override a value for this run only.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, rootFlags, func(ctx context.Context, env *app.Env) error {
				return runCalc(cmd, env, opts)
			})
		},
	}

	cmd.Flags().Float64Var(&opts.price, "price", 0, "Petrol price per litre")
	cmd.Flags().Float64Var(&opts.mileage, "mileage", 0, "Bike mileage in km/L")
	cmd.Flags().Float64Var(&opts.distance, "distance", 0, "Daily distance in km")
	cmd.Flags().Float64Var(&opts.amount, "amount", 0, "Refill amount")

	return cmd
}

func runCalc(cmd *cobra.Command, env *app.Env, opts *calcOptions) error {
	in := env.Engine.Snapshot().Inputs
	flags := cmd.Flags()
	if flags.Changed("price") {
		in.PetrolPrice = opts.price
	}
	if flags.Changed("mileage") {
		in.Mileage = opts.mileage
	}
	if flags.Changed("distance") {
		in.Distance = opts.distance
	}
	if flags.Changed("amount") {
		in.Amount = opts.amount
	}

	return env.Formatter.RenderSummary(cmd.OutOrStdout(), format.NewSummary(in, calc.Derive(in)))
}

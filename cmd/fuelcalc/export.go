package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/fuelcalc/internal/app"
	"github.com/five82/fuelcalc/internal/export"
)

type exportOptions struct {
	format string
	output string
}

func newExportCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a fuel cost report for the saved inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, rootFlags, func(ctx context.Context, env *app.Env) error {
				return runExport(ctx, cmd, env, opts)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Report format: txt, yaml or json (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Directory to write the report to (default from config)")

	return cmd
}

func runExport(ctx context.Context, cmd *cobra.Command, env *app.Env, opts *exportOptions) error {
	f := export.Format(env.Config.Export.Format)
	if opts.format != "" {
		parsed, err := export.ParseFormat(opts.format)
		if err != nil {
			return err
		}
		f = parsed
	}
	dir := env.Config.Export.Dir
	if opts.output != "" {
		dir = opts.output
	}

	adapter := export.New(export.Options{
		Dir:       dir,
		Format:    f,
		Formatter: env.Formatter,
		Logger:    env.Logger,
	})
	path, err := adapter.Export(ctx, env.Engine.Report())
	if err != nil {
		return fmt.Errorf("export report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

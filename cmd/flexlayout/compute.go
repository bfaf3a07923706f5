package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-flex/internal/document"
)

type computeOptions struct {
	size   sizeFlags
	format string
}

func newComputeCmd(root *rootFlags) *cobra.Command {
	opts := &computeOptions{}

	cmd := &cobra.Command{
		Use:   "compute file...",
		Short: "Lay out documents and print every node's frame",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadSettings(cmd, root)
			if err != nil {
				return err
			}
			return runCompute(cmd, args, opts, st)
		},
	}

	opts.size.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: json, yaml or table (default from config)")

	return cmd
}

func runCompute(cmd *cobra.Command, files []string, opts *computeOptions, st settings) error {
	name := st.cfg.Format
	if opts.format != "" {
		name = opts.format
	}
	format, err := document.ParseFormat(name)
	if err != nil {
		return err
	}

	results := make([]document.Result, len(files))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(concurrency(st.cfg, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, res, err := loadHost(cmd, path, &opts.size, st)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return document.Encode(cmd.OutOrStdout(), format, results...)
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/scriptmerge/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var opts app.BuildOptions
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Merge every component into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Config = c.config
			_, err := c.app.Build(cmd.Context(), opts)
			return err
		},
	}
	addOutputFlags(cmd, &opts)
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Report what would be merged without writing")
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	var opts app.BuildOptions
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Build, then rebuild whenever files below the root change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Config = c.config
			return c.app.Watch(cmd.Context(), opts)
		},
	}
	addOutputFlags(cmd, &opts)
	return cmd
}

func (c *CLI) newCleanCmd() *cobra.Command {
	var opts app.BuildOptions
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the merged components written by earlier builds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Config = c.config
			removed, err := c.app.Clean(cmd.Context(), opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %d merged component(s)\n", removed)
			return err
		},
	}
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "", "Output directory, relative to the root (default \".scriptmerge\")")
	return cmd
}

func addOutputFlags(cmd *cobra.Command, opts *app.BuildOptions) {
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "", "Output directory, relative to the root (default \".scriptmerge\")")
	cmd.Flags().StringArrayVar(&opts.Ignores, "ignore", nil, "Glob of source paths to skip, repeatable")
}

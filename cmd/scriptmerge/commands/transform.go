package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newTransformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transform <component.vue>",
		Short: "Print a component with its external script merged in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app.TransformFile(cmd.Context(), c.config, args[0], cmd.OutOrStdout())
			return err
		},
	}
}

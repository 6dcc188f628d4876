package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <component.vue>",
		Short: "Print the external script a component resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := c.app.Resolve(cmd.Context(), c.config, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), script)
			return err
		},
	}
}

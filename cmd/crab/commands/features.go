package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newFeaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "features [path]",
		Short: "List the features declared in a project's manifest",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			features, err := c.app.Features(root)
			if err != nil {
				return err
			}
			for _, f := range features {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}

// Package commands implements the CLI commands for the crab build wrapper.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/crab/internal/app"
)

// CLI represents the command line interface for crab.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "crab",
		Short:         "A thin wrapper around the cargo build driver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "crab.yaml", "Path to profile configuration file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newFeaturesCmd())
	rootCmd.AddCommand(c.newProfilesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

func (c *CLI) configPath() string {
	config, _ := c.rootCmd.PersistentFlags().GetString("config")
	return config
}

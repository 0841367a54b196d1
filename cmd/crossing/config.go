package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in YAML configuration. Save it as
~/.arcade/configs/crossing.yaml or ./configs/crossing.yaml and edit the
values you want to change, or pass it with --config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}

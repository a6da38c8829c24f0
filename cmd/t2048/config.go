package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after loading files and applying flags.

The output is valid YAML and can be saved as ~/.t2048/config.yaml.

Examples:
  t2048 config
  t2048 config --default > ~/.t2048/config.yaml
  t2048 config --config ./my-2048.yaml --seed 7`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in default configuration with comments")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagDefaultConfig {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	data, err := config.Marshal(appConfig)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

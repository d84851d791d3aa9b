package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-garden/internal/config"
)

var (
	flagShowConfig     string
	flagShowDifficulty string
	flagShowDefaults   bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

The search order is --config, ~/.garden/configs/garden.yaml,
./configs/garden.yaml, then the built-in defaults. Save the output to one
of those paths to customize the game.

Examples:
  garden config > ~/.garden/configs/garden.yaml
  garden config --difficulty hard
  garden config --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagShowConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagShowDifficulty, "difficulty", "", "Apply a difficulty preset before printing")
	configCmd.Flags().BoolVar(&flagShowDefaults, "defaults", false, "Print the built-in defaults file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagShowDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadGarden(flagShowConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagShowDifficulty != "" {
		if !config.ValidPreset(flagShowDifficulty) {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagShowDifficulty)
			os.Exit(1)
		}
		config.ApplyGardenPreset(&cfg, config.DifficultyPreset(flagShowDifficulty))
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/neon-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config or validate a file",
	Long: `Without arguments, prints the built-in configuration as YAML. Save it to
~/.neonrun/configs/neon.yaml or ./configs/neon.yaml and edit it to tune
the game; files only need the fields they change.

Examples:
  neonrun config > ~/.neonrun/configs/neon.yaml
  neonrun config validate ./my-neon.yaml
  neonrun config --effective --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfigPrint,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a config file for errors",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigValidate,
}

var flagEffective bool

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the config the game would load, after presets")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.AddCommand(configValidateCmd)
}

func runConfigPrint(cmd *cobra.Command, args []string) {
	if !flagEffective {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.LoadNeon(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyDifficulty(&cfg, preset)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}

func runConfigValidate(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadFile(args[0])
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok\n", args[0])
}

package main

import (
	"fmt"
	"os"

	"github.com/aretw0/fsmd/internal/cli"
	"github.com/aretw0/fsmd/internal/config"
	"github.com/aretw0/fsmd/pkg/ports"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fsmd",
	Short: "fsmd is an interactive finite state machine designer",
	Long: `fsmd lets you declare a deterministic finite automaton with short commands,
simulate input strings on it, and compile it to JSON, YAML, HCL or Redis artifacts.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default ./"+config.DefaultFile+" when present)")
	flags.String("dir", ".", "Directory for artifacts and LOG files")
	flags.Bool("debug", false, "Enable debug logging on stderr")
	flags.Bool("no-color", false, "Disable colored output")
	flags.String("format", "", "Default artifact format when the name has no extension (json, yaml, hcl)")
	flags.String("redis-url", "", "Enable redis:<name> artifacts (e.g. redis://localhost:6379/0)")
}

// loadConfig merges the config file and environment with any flags set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("no-color") {
		noColor, _ := flags.GetBool("no-color")
		cfg.Color = !noColor
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("redis-url") {
		cfg.Redis.URL, _ = flags.GetString("redis-url")
	}
	if flags.Lookup("metrics-addr") != nil && flags.Changed("metrics-addr") {
		cfg.Metrics.Addr, _ = flags.GetString("metrics-addr")
	}
	return cfg, nil
}

// withStore opens the configured artifact store for the duration of fn.
func withStore(cmd *cobra.Command, fn func(store ports.AutomatonStore) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dir, _ := cmd.Flags().GetString("dir")

	store, closeStore, err := cli.NewStore(cfg, dir)
	if err != nil {
		return err
	}
	defer closeStore()

	return fn(store)
}

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/fsmd/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [script...]",
	Short: "Start an interactive designer session",
	Long: `Reads ';'-terminated commands from stdin until EXIT or end of input.
When script files are given they are replayed in order instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dir, _ := cmd.Flags().GetString("dir")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return cli.RunSession(ctx, cli.RunOptions{
			Config:  cfg,
			Scripts: args,
			Dir:     dir,
			Stdin:   cmd.InOrStdin(),
			Stdout:  cmd.OutOrStdout(),
			Stderr:  cmd.ErrOrStderr(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. 127.0.0.1:9090)")

	// 'run' is the default when no command is provided. Positional arguments
	// are only accepted as script files by 'run' itself.
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.Args = func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("unexpected arguments %q; use 'fsmd run <script...>' to replay scripts", args)
		}
		return nil
	}
	rootCmd.RunE = runCmd.RunE
}

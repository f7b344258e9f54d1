package main

import (
	"fmt"

	"github.com/aretw0/fsmd/internal/cli"
	"github.com/aretw0/fsmd/pkg/ports"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <artifact>...",
	Short: "Check compiled artifacts for consistency",
	Long: `Decodes each artifact and reports schema errors, undeclared references and
nondeterministic transitions. Nothing is modified.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(store ports.AutomatonStore) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, name := range args {
				a, err := cli.LoadArtifact(cmd.Context(), store, name)
				if err != nil {
					fmt.Fprintf(out, "%s: invalid: %v\n", name, err)
					failed++
					continue
				}
				fmt.Fprintf(out, "%s: valid (%d states, %d symbols, %d transitions)\n",
					name, len(a.States()), len(a.Symbols()), len(a.Transitions()))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d artifacts failed validation", failed, len(args))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

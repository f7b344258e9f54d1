package main

import (
	"fmt"

	"github.com/aretw0/fsmd/pkg/ports"
	"github.com/aretw0/fsmd/pkg/schema"
	"github.com/spf13/cobra"
)

var artifactCmd = &cobra.Command{
	Use:   "artifact",
	Short: "Manage compiled automata",
	Long:  `List, inspect and remove artifacts in the artifact directory (and Redis when configured).`,
}

var artifactLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all artifacts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(store ports.AutomatonStore) error {
			names, err := store.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list artifacts: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(out, "No artifacts found.")
				return nil
			}
			fmt.Fprintln(out, "Artifacts:")
			for _, name := range names {
				fmt.Fprintln(out, "- "+name)
			}
			return nil
		})
	},
}

var artifactInspectCmd = &cobra.Command{
	Use:   "inspect <artifact>",
	Short: "Print an artifact in another format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		as, _ := cmd.Flags().GetString("as")
		format, err := schema.ParseFormat(as)
		if err != nil {
			return err
		}
		return withStore(cmd, func(store ports.AutomatonStore) error {
			snap, err := store.Load(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", args[0], err)
			}
			data, err := schema.Encode(format, snap)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		})
	},
}

var artifactRmCmd = &cobra.Command{
	Use:   "rm <artifact>...",
	Short: "Remove one or more artifacts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(store ports.AutomatonStore) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, name := range args {
				if err := store.Delete(cmd.Context(), name); err != nil {
					fmt.Fprintf(out, "Error removing '%s': %v\n", name, err)
					failed++
					continue
				}
				fmt.Fprintf(out, "Removed artifact '%s'\n", name)
			}
			if failed > 0 {
				return fmt.Errorf("%d artifacts could not be removed", failed)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(artifactCmd)
	artifactCmd.AddCommand(artifactLsCmd)
	artifactCmd.AddCommand(artifactInspectCmd)
	artifactCmd.AddCommand(artifactRmCmd)

	artifactInspectCmd.Flags().String("as", "yaml", "Output format (json, yaml, hcl)")
}

package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/fsmd/internal/cli"
	"github.com/aretw0/fsmd/internal/presentation/graph"
	"github.com/aretw0/fsmd/pkg/ports"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <artifact>",
	Short: "Export an automaton as a Mermaid diagram",
	Long: `Loads a compiled artifact and outputs a Mermaid flowchart (graph LR).
With --input, the simulated path is highlighted on the diagram.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		return withStore(cmd, func(store ports.AutomatonStore) error {
			return renderGraph(cmd, store, args[0], input)
		})
	},
}

func renderGraph(cmd *cobra.Command, store ports.AutomatonStore, name, input string) error {
	if input == "" {
		a, err := cli.LoadArtifact(cmd.Context(), store, name)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(a, nil))
		return nil
	}

	a, res, err := cli.Simulate(cmd.Context(), store, name, input)
	if err != nil {
		return fmt.Errorf("failed to simulate %q on %s: %w", input, name, err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, graph.GenerateMermaid(a, graph.NewOverlay(res.Path)))
	fmt.Fprintf(out, "    %%%% %s: %s (%s)\n", strings.ToUpper(input), strings.Join(res.Path, " "), res.Verdict)
	return nil
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("input", "", "Highlight the path taken by this input")
}

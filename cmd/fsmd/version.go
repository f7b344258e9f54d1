package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/fsmd"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fsmd",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fsmd version %s\n", strings.TrimSpace(fsmd.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/helix"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of helix",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "helix version %s\n", strings.TrimSpace(helix.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

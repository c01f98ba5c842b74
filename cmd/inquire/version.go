package main

import (
	"fmt"

	"github.com/aretw0/inquire"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of inquire",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "inquire version %s\n", inquire.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

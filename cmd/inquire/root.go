package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/inquire/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "inquire",
	Short: "Inquire asks validated questions on the terminal",
	Long: `Inquire prompts for answers on the terminal, applying defaults, ranges,
validation, modifiers and type conversion before handing the value back.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exit *cli.ExitError
		if errors.As(err, &exit) {
			os.Exit(exit.Code())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "off", "Log level written to stderr (off, debug, info, warn, error)")
}

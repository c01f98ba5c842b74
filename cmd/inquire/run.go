package main

import (
	"os"

	"github.com/aretw0/inquire/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <questionnaire.yaml>",
	Short: "Ask every question of a questionnaire file",
	Long: `Asks the questions declared in a YAML questionnaire in order and writes the
answers to stdout. Prompts are written to stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.RunOptions{Path: args[0]}
		opts.Format, _ = cmd.Flags().GetString("format")
		opts.MetricsAddr, _ = cmd.Flags().GetString("metrics-addr")
		opts.MaxAttempts, _ = cmd.Flags().GetInt("max-attempts")
		opts.LogLevel, _ = cmd.Root().PersistentFlags().GetString("log-level")

		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Stop()
		return cli.RunQuestionnaire(sc, os.Stdin, os.Stdout, os.Stderr, opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("format", "f", "json", "Output format (json or yaml)")
	runCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address while running")
	runCmd.Flags().Int("max-attempts", 0, "Maximum attempts per question when retrying (0 for unlimited)")
}

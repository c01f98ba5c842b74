package main

import (
	"os"

	"github.com/aretw0/inquire/internal/cli"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Ask a single question and print the answer",
	Example: `  inquire ask "Port?" --in 1-65535 --convert int --retry
  inquire ask "Password:" --hidden --mask '*' --required`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		opts := cli.AskOptions{Message: args[0]}
		opts.Default, _ = flags.GetString("default")
		opts.HasDefault = flags.Changed("default")
		opts.Required, _ = flags.GetBool("required")
		opts.Hidden, _ = flags.GetBool("hidden")
		opts.Mask, _ = flags.GetString("mask")
		opts.Char, _ = flags.GetBool("char")
		opts.Raw, _ = flags.GetBool("raw")
		opts.In, _ = flags.GetString("in")
		opts.Validate, _ = flags.GetString("validate")
		opts.ValidateTag, _ = flags.GetString("validate-tag")
		opts.Modify, _ = flags.GetString("modify")
		opts.Convert, _ = flags.GetString("convert")
		opts.Retry, _ = flags.GetBool("retry")
		opts.MaxAttempts, _ = flags.GetInt("max-attempts")
		opts.LogLevel, _ = cmd.Root().PersistentFlags().GetString("log-level")

		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Stop()
		return cli.RunAsk(sc, os.Stdin, os.Stdout, os.Stderr, opts)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().String("default", "", "Answer used when the input is empty")
	askCmd.Flags().Bool("required", false, "Reject empty answers")
	askCmd.Flags().Bool("hidden", false, "Do not echo the input")
	askCmd.Flags().String("mask", "", "Character echoed in place of each typed character")
	askCmd.Flags().Bool("char", false, "Read a single keypress")
	askCmd.Flags().Bool("raw", false, "Read in raw terminal mode")
	askCmd.Flags().String("in", "", "Accepted range, e.g. 1-10 or a..f")
	askCmd.Flags().String("validate", "", "Regular expression the answer must match")
	askCmd.Flags().String("validate-tag", "", "Validator tag the answer must satisfy, e.g. email")
	askCmd.Flags().String("modify", "", "Comma separated modifiers, e.g. trim,down")
	askCmd.Flags().String("convert", "", "Converter applied to the answer (int, float, bool, list, range)")
	askCmd.Flags().Bool("retry", false, "Ask again when the answer is rejected")
	askCmd.Flags().Int("max-attempts", 0, "Maximum attempts when retrying (0 for unlimited)")
}

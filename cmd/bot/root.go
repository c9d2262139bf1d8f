package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, args []string) int {
	exitCode := 0
	rootCmd := newRootCmd(&exitCode)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		return 1
	}
	return exitCode
}

func newRootCmd(exitCode *int) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "bot",
		Short:         "Telegram dice bot for percentile tabletop games",
		Long:          `Answers /roll, /custom_roll, /create_sheet and /choose commands in Telegram chats.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, _ []string) {
			*exitCode = run(cmd.Context(), configPath)
		},
	}
	rootCmd.Flags().StringVar(&configPath, "config", "./config.yaml", "Path to configuration file")

	rootCmd.AddCommand(newEvalCmd())
	return rootCmd
}

package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var tiersFlag string

	ctx := newCommandContext(&tiersFlag)

	rootCmd := &cobra.Command{
		Use:           "contentflow",
		Short:         "Tiered moderation of website content",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&tiersFlag, "tiers", "", "Tier chain file (overrides TIERS_FILE)")

	rootCmd.AddCommand(newServeCommand(ctx))
	for _, cmd := range newTransitionCommands(ctx) {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newTokenCommand(ctx))
	rootCmd.AddCommand(newTiersCommand(ctx))

	return rootCmd
}

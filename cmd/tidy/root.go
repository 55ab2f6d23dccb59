package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var verboseFlag bool
	var flags cleanFlags

	ctx := newCommandContext(&configFlag, &verboseFlag)

	rootCmd := &cobra.Command{
		Use:   "tidy",
		Short: "Sort loose files into the folders that already hold their extension",
		Long: "tidy scans a directory's subfolders, learns which folder holds which file\n" +
			"extension, and moves every loose file in the directory into its folder.\n" +
			"Unknown extensions are resolved interactively.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, ctx, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Mirror log records to stderr")

	rootCmd.Flags().StringVarP(&flags.dir, "dir", "d", "", "Directory to clean (skips the directory prompt)")
	rootCmd.Flags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "Report intended moves without touching the filesystem")
	rootCmd.Flags().BoolVarP(&flags.underscore, "underscore", "u", false, "Replace spaces with underscores in target file names")

	rootCmd.AddCommand(newScanCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newLogsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

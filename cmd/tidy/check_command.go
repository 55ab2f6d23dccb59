package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tidy/internal/config"
	"tidy/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the target and state directories are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			directory := cfg.Paths.DefaultDirectory
			if strings.TrimSpace(dirFlag) != "" {
				if directory, err = config.ExpandPath(strings.TrimSpace(dirFlag)); err != nil {
					return fmt.Errorf("resolve directory: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader("Preflight", colorize) {
				fmt.Fprintln(out, line)
			}
			failed := 0
			for _, result := range preflight.RunAll(cfg, directory, false) {
				kind := statusOK
				if !result.Passed {
					kind = statusError
					failed++
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}
			journalKind, journalDetail := statusInfo, "disabled"
			if cfg.Journal.Enabled {
				journalKind, journalDetail = statusOK, cfg.JournalPath()
			}
			fmt.Fprintln(out, renderStatusLine("Journal", journalKind, journalDetail, colorize))

			if failed > 0 {
				return errors.New("preflight checks failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Directory to check (defaults to paths.default_directory)")
	return cmd
}

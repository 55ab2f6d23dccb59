package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tidy/internal/config"
	"tidy/internal/organizer"
	"tidy/internal/textutil"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Show which folder owns which extension without moving anything",
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

			logger, closeLog := ctx.logger(cmd)
			defer closeLog()

			// Scanning never prompts or moves; an empty answer source and a dry
			// run keep it that way and let read-only directories be scanned.
			session, err := organizer.NewSession(
				organizer.Options{Directory: directory, DryRun: true},
				organizer.NewLinePrompter(strings.NewReader(""), io.Discard),
				organizer.WithLogger(logger),
			)
			if err != nil {
				return err
			}
			if err := session.Scan(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			index := session.Index()
			fmt.Fprintf(out, "Directory: %s\n", session.Directory())
			fmt.Fprintf(out, "Folders:   %d\n", index.Len())

			extensions := index.Extensions()
			if len(extensions) == 0 {
				fmt.Fprintln(out, "No extensions found in subfolders")
				return nil
			}
			fmt.Fprint(out, renderTable([]string{"Extension", "Owner", "Folders"}, extensionRows(index), nil))
			fmt.Fprintln(out)

			if dups := index.DuplicateExtensions(); len(dups) > 0 {
				fmt.Fprintf(out, "Scattered extensions: %s\n", textutil.JoinNames(dups))
			} else {
				fmt.Fprintln(out, "No scattered extensions")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Directory to scan (defaults to paths.default_directory)")
	return cmd
}

func extensionRows(index *organizer.Index) [][]string {
	extensions := index.Extensions()
	rows := make([][]string, 0, len(extensions))
	for _, ext := range extensions {
		owner, _ := index.OwnerOf(ext)
		var names []string
		for _, folder := range index.Owners(ext) {
			names = append(names, folder.Name())
		}
		rows = append(rows, []string{"." + ext, owner.Name(), textutil.JoinNames(names)})
	}
	return rows
}

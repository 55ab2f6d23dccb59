package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tidy/internal/config"
	"tidy/internal/journal"
	"tidy/internal/logging"
	"tidy/internal/organizer"
	"tidy/internal/preflight"
	"tidy/internal/runlock"
)

type cleanFlags struct {
	dir        string
	dryRun     bool
	underscore bool
}

func runClean(cmd *cobra.Command, ctx *commandContext, flags cleanFlags) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	runCtx := logging.WithRunID(cmd.Context(), runID)
	baseLogger, closeLog := ctx.logger(cmd)
	defer closeLog()
	logger := logging.NewComponentLogger(baseLogger, "cli")
	logging.CleanupOldLogs(logger, cfg.Logging.RetentionDays, logging.RetentionTarget{
		Dir:     cfg.Paths.StateDir,
		Pattern: logging.LogFilePattern,
		Exclude: []string{logging.LogFilePath(cfg.Paths.StateDir, time.Now())},
	})

	lock, err := runlock.Acquire(cfg.LockPath())
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("release run lock failed", logging.Error(err))
		}
	}()

	out := cmd.OutOrStdout()
	prompter := organizer.NewLinePrompter(cmd.InOrStdin(), out)

	directory := strings.TrimSpace(flags.dir)
	if directory != "" {
		if directory, err = config.ExpandPath(directory); err != nil {
			return fmt.Errorf("resolve directory: %w", err)
		}
	} else {
		directory, err = promptDirectory(runCtx, prompter, out, cfg.Paths.DefaultDirectory)
		if err != nil {
			return err
		}
		if filepath.Clean(directory) != filepath.Clean(cfg.Paths.DefaultDirectory) {
			persistDefaultDirectory(runCtx, logger, ctx.configPath, directory)
		}
	}

	opts := organizer.Options{
		Directory:  directory,
		DryRun:     flags.dryRun || cfg.Organize.DryRun,
		Underscore: flags.underscore || cfg.Organize.Underscore,
	}
	for _, result := range preflight.RunAll(cfg, directory, opts.DryRun) {
		if !result.Passed {
			return organizer.Wrap(organizer.ErrFilesystemUnavailable, "preflight", result.Name+": "+result.Detail, nil)
		}
	}
	sessionOpts := []organizer.SessionOption{
		organizer.WithLogger(baseLogger),
		organizer.WithOutput(out),
	}
	if store := openJournal(runCtx, logger, cfg, opts.DryRun); store != nil {
		defer store.Close()
		sessionOpts = append(sessionOpts, organizer.WithRecorder(store))
	}

	session, err := organizer.NewSession(opts, prompter, sessionOpts...)
	if err != nil {
		return err
	}
	_, err = session.Run(runCtx)
	return err
}

// openJournal returns nil when journalling is disabled, the run is a dry run,
// or the database cannot be opened. A broken journal never blocks cleaning.
func openJournal(ctx context.Context, logger *slog.Logger, cfg *config.Config, dryRun bool) *journal.Store {
	if dryRun || !cfg.Journal.Enabled {
		return nil
	}
	store, err := journal.Open(cfg.JournalPath())
	if err != nil {
		hint := "check permissions on the state directory"
		if errors.Is(err, journal.ErrSchemaMismatch) {
			hint = "remove the journal database to reset it"
		}
		logging.WarnWithContext(logging.WithContext(ctx, logger), "journal unavailable", "journal_open_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, hint),
			logging.String(logging.FieldImpact, "moves from this run are not recorded"),
		)
		return nil
	}
	return store
}

func persistDefaultDirectory(ctx context.Context, logger *slog.Logger, configPath, directory string) {
	if err := config.SaveDefaultDirectory(configPath, directory); err != nil {
		logging.WarnWithContext(logging.WithContext(ctx, logger), "default directory not saved", "config_write_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "the next run offers the previous default"),
		)
		return
	}
	logging.WithContext(ctx, logger).Info("default directory updated",
		logging.String(logging.FieldDirectory, directory),
		logging.String("config", configPath),
	)
}

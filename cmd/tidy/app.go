package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tidyfs/tidy/internal/configuration"
	"github.com/tidyfs/tidy/internal/dedupe"
	"github.com/tidyfs/tidy/internal/organize"
	"github.com/tidyfs/tidy/internal/rules"
	"github.com/tidyfs/tidy/internal/ui"
)

// App wires the engine handlers to the command-line surface. It is a thin
// collaborator: it translates flags into option structures, launches the
// requested operation and renders its structured result.
type App struct {
	organizeHandler *organize.Handler
	dedupeHandler   *dedupe.Handler
	configHandler   *configuration.Handler
	uiHandler       *ui.Handler
}

// NewApp returns a pointer to a new [App].
func NewApp(organizeHandler *organize.Handler,
	dedupeHandler *dedupe.Handler,
	configHandler *configuration.Handler,
	uiHandler *ui.Handler,
) *App {
	return &App{
		organizeHandler: organizeHandler,
		dedupeHandler:   dedupeHandler,
		configHandler:   configHandler,
		uiHandler:       uiHandler,
	}
}

// Launch runs the operation selected on the command line against the
// target directory and reports its result.
func (app *App) Launch(ctx context.Context) error {
	root := flag.Arg(0)

	switch *operation {
	case "arrange":
		return app.arrange(ctx, root)
	case "dedupe":
		return app.dedupe(ctx, root)
	case "flatten":
		return app.flatten(ctx, root)
	case "archive":
		return app.archive(ctx, root)
	case "empties":
		return app.empties(ctx, root)
	case "largest":
		return app.largest(ctx, root)
	default:
		return fmt.Errorf("(app) unknown operation: %q", *operation)
	}
}

// LaunchUI starts the user interface, when one was requested.
func (app *App) LaunchUI() error {
	if app.uiHandler == nil {
		return nil
	}

	if err := app.uiHandler.Launch(); err != nil {
		return fmt.Errorf("(app-ui) %w", err)
	}

	return nil
}

// publisher returns the progress sink for the observer adapters; a typed
// nil handler must become a nil interface so the trackers can detect it.
func (app *App) publisher() progressPublisher {
	if app.uiHandler == nil {
		return nil
	}

	return app.uiHandler
}

func (app *App) userRules() (rules.CategoryRules, error) {
	if *rulesFile == "" {
		return nil, nil
	}

	userRules, err := app.configHandler.ReadCategoryRules(*rulesFile)
	if err != nil {
		return nil, fmt.Errorf("(app) %w", err)
	}

	return userRules, nil
}

// settings returns the scalar options of the configuration file, or nil
// when no file was given; flags always win over file values.
func (app *App) settings() map[string]string {
	if *rulesFile == "" {
		return nil
	}

	envMap, err := app.configHandler.ReadSettings(*rulesFile)
	if err != nil {
		slog.Warn("Failed to read settings file, using flags only.",
			"path", *rulesFile,
			"err", err,
		)

		return nil
	}

	return envMap
}

func (app *App) arrange(ctx context.Context, root string) error {
	userRules, err := app.userRules()
	if err != nil {
		return err
	}

	tracker := newMoveTracker(app.publisher(), "Arrange")

	stats, err := app.organizeHandler.Arrange(ctx, root, organize.ArrangeOptions{
		UserRules: userRules,
		DryRun:    *dryRun,
		Observer:  tracker,
	})
	if err != nil {
		return err
	}

	tracker.finish(*stats)
	slog.Info("Arrange finished.", "result", stats)

	if len(stats.Errors) > 0 {
		ExitCode = 1
	}

	return nil
}

func (app *App) dedupe(ctx context.Context, root string) error {
	var patterns []string
	for _, pattern := range strings.Split(*ignore, ",") {
		if pattern = strings.TrimSpace(pattern); pattern != "" {
			patterns = append(patterns, pattern)
		}
	}

	tracker := newDedupeTracker(app.publisher())

	result, err := app.dedupeHandler.Dedupe(ctx, root, dedupe.Options{
		Strategy:       dedupe.Strategy(*strategy),
		CanonicalPath:  *canonical,
		IgnorePatterns: patterns,
		DryRun:         *dryRun,
		DeleteEmpty:    *deleteOpt,
		Observer:       tracker,
	})
	if err != nil {
		return err
	}

	tracker.finish()
	slog.Info("Dedupe finished.", "result", result)

	if len(result.Errors) > 0 {
		ExitCode = 1
	}

	return nil
}

func (app *App) flatten(ctx context.Context, root string) error {
	stats, err := app.organizeHandler.Flatten(ctx, root, organize.FlattenOptions{
		MaxDepth:    *maxDepth,
		Conflict:    organize.ConflictStrategy(*conflict),
		DeleteEmpty: *deleteOpt,
		DryRun:      *dryRun,
	})
	if err != nil {
		return err
	}

	slog.Info("Flatten finished.", "result", stats)

	if len(stats.Errors) > 0 {
		ExitCode = 1
	}

	return nil
}

func (app *App) archive(ctx context.Context, root string) error {
	opts := organize.ArchiveOptions{
		Dest:          *archiveTo,
		OlderThanDays: *olderDays,
		DryRun:        *dryRun,
	}

	envMap := app.settings()
	if opts.Dest == "" {
		opts.Dest = app.configHandler.MapKeyToString(envMap, "ARCHIVE_TO")
	}
	if opts.OlderThanDays <= 0 {
		if days := app.configHandler.MapKeyToInt(envMap, "OLDER_THAN"); days > 0 {
			opts.OlderThanDays = days
		}
	}

	result, err := app.organizeHandler.Archive(ctx, root, opts)
	if err != nil {
		return err
	}

	slog.Info("Archive finished.", "result", result)

	if len(result.Errors) > 0 {
		ExitCode = 1
	}

	return nil
}

func (app *App) empties(ctx context.Context, root string) error {
	result, err := app.organizeHandler.RemoveEmptyFiles(ctx, root, organize.EmptyFileOptions{
		DryRun:  *dryRun,
		Collect: *collectOpt,
	})
	if err != nil {
		return err
	}

	for _, path := range result.Paths {
		slog.Info("Empty file:", "path", path)
	}

	slog.Info("Empty-file cleanup finished.",
		"scanned", result.Scanned,
		"deleted", result.Deleted,
		"errors", len(result.Errors),
	)

	if len(result.Errors) > 0 {
		ExitCode = 1
	}

	return nil
}

func (app *App) largest(ctx context.Context, root string) error {
	threshold := *minSize
	if threshold <= 0 {
		if size := app.configHandler.MapKeyToInt64(app.settings(), "MIN_SIZE"); size > 0 {
			threshold = size
		}
	}

	result, err := app.organizeHandler.FindLargest(ctx, root, threshold, *limitFlag)
	if err != nil {
		return err
	}

	for _, file := range result.Files {
		slog.Info("Large file:", "path", file.Path, "size", file.Size)
	}

	slog.Info("Largest-file scan finished.",
		"matches", result.TotalMatches,
		"reported", len(result.Files),
		"errors", len(result.Errors),
	)

	if len(result.Errors) > 0 {
		ExitCode = 1
	}

	return nil
}

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/tidyfs/tidy/internal/configuration"
	"github.com/tidyfs/tidy/internal/dedupe"
	"github.com/tidyfs/tidy/internal/filesystem"
	"github.com/tidyfs/tidy/internal/io"
	"github.com/tidyfs/tidy/internal/organize"
	"github.com/tidyfs/tidy/internal/schema"
	"github.com/tidyfs/tidy/internal/ui"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	operation  = flag.String("op", "arrange", "operation: arrange|dedupe|flatten|archive|empties|largest")
	rulesFile  = flag.String("rules", "", "path to a category rules file (CATEGORY_<Name>=ext,ext)")
	dryRun     = flag.Bool("dry-run", false, "compute and report the plan without touching the filesystem")
	uiEnabled  = flag.Bool("ui", false, "enable the UI")
	maxDepth   = flag.Int("depth", 0, "maximum walk depth (0 = unlimited)")
	conflict   = flag.String("conflict", "rename", "flatten conflict strategy: rename|overwrite|skip")
	deleteOpt  = flag.Bool("delete-empty", false, "prune now-empty directories afterwards")
	strategy   = flag.String("strategy", "", "dedupe strategy: first|canonical|oldest|newest|shortest-path|longest-path")
	canonical  = flag.String("canonical", "", "canonical path prefix for the dedupe canonical strategy")
	ignore     = flag.String("ignore", "", "comma-separated ignore patterns for dedupe")
	archiveTo  = flag.String("archive-to", "", "archive destination directory")
	olderDays  = flag.Int("older-than", 0, "archive files older than this many days")
	minSize    = flag.Int64("min-size", 0, "size threshold in bytes for the largest-files scan")
	limitFlag  = flag.Int("limit", 20, "maximum number of largest files to report")
	collectOpt = flag.Bool("collect", false, "collect affected paths in the empty-file result")
)

func setupLogging(w *slog.LevelVar) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stdout, &tint.Options{
			Level:      w,
			TimeFormat: time.Kitchen,
		}),
	))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()
}

func startApp(ctx context.Context, wg *sync.WaitGroup, app *App) {
	defer wg.Done()

	if app.uiHandler != nil {
		slog.Info("Waiting for UI...")
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			if app.uiHandler.Ready.Load() || app.uiHandler.Failed.Load() {
				break
			}
		}
	}

	if err := app.Launch(ctx); err != nil {
		slog.Error("Operation failed.",
			"err", err,
		)
		ExitCode = 1
	}

	if app.uiHandler != nil {
		app.uiHandler.Quit()
	}
}

func startUI(ctx context.Context, wg *sync.WaitGroup, app *App, level *slog.LevelVar) {
	defer wg.Done()

	if app.uiHandler != nil {
		defer setupLogging(level)

		if err := app.LaunchUI(); err != nil {
			slog.Error("UI failure: falling back to terminal.", "err", err)
		}
	}
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flag.Parse()

	logLevel := &slog.LevelVar{}
	setupLogging(logLevel)
	setupSignalHandlers(cancel)

	root := flag.Arg(0)
	if root == "" {
		slog.Error("No target directory given.")
		ExitCode = 1

		return
	}

	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}
	configProvider := &configuration.GodotenvProvider{}

	fsHandler := filesystem.NewHandler(osProvider)
	ioHandler := io.NewHandler(osProvider, unixProvider)
	configHandler := configuration.NewHandler(configProvider)
	organizeHandler := organize.NewHandler(fsHandler, ioHandler, osProvider)
	dedupeHandler := dedupe.NewHandler(fsHandler, osProvider)

	var uiHandler *ui.Handler
	if uiEnabled != nil && *uiEnabled {
		uiHandler = ui.NewHandler(ctx, cancel)

		slog.SetDefault(slog.New(
			tint.NewHandler(uiHandler.LogWriter, &tint.Options{
				Level:      logLevel,
				TimeFormat: time.Kitchen,
				NoColor:    true,
			}),
		))
	}

	app := NewApp(organizeHandler, dedupeHandler, configHandler, uiHandler)

	var wg sync.WaitGroup

	wg.Add(1)
	go startUI(ctx, &wg, app, logLevel)

	wg.Add(1)
	go startApp(ctx, &wg, app)

	wg.Wait()
}

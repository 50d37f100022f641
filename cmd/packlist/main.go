package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/idilsaglam/packlist/internal/cli"
	"github.com/idilsaglam/packlist/internal/config"
	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	// Root flags (apply to every subcommand)
	fs := pflag.NewFlagSet("packlist", pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "YAML config file (default $"+config.EnvPath+")")
	theme := fs.String("theme", "", "color theme: classic, neon or mono")
	locale := fs.String("locale", "", "locale used to sort item names")
	sortBy := fs.String("sort", "", "initial sort: input, description or packed")
	order := fs.String("order", "", "initial order: ascending or descending")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn or error")
	logFile := fs.String("log-file", "", "write logs to this file")
	noColor := fs.Bool("no-color", false, "disable colors")
	fs.Usage = func() { cli.PrintHelp(os.Stderr) }
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		return 1
	}
	applyFlags(&cfg, fs, *theme, *locale, *sortBy, *order, *logLevel, *logFile, *noColor)
	if err := cfg.Validate(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		return 2
	}

	ui.SetTheme(cfg.Theme)
	if !cfg.ColorEnabled() || os.Getenv("NO_COLOR") != "" {
		ui.SetColor(false)
	}

	logger, tuiLogger, closeLog, err := newLoggers(cfg)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		return 1
	}
	defer closeLog()

	tag, _ := cfg.LocaleTag()
	by, _ := cfg.SortKey()
	mode, _ := cfg.SortMode()

	// Hand the remaining args to the CLI runner.
	return cli.Run(fs.Args(), cli.Options{
		Projector: packing.NewProjector(tag),
		SortBy:    by,
		SortMode:  mode,
		Logger:    logger,
		TUILogger: tuiLogger,
	})
}

func applyFlags(cfg *config.Config, fs *pflag.FlagSet, theme, locale, sortBy, order, level, file string, noColor bool) {
	if fs.Changed("theme") {
		cfg.Theme = theme
	}
	if fs.Changed("locale") {
		cfg.Locale = locale
	}
	if fs.Changed("sort") {
		cfg.Sort.By = sortBy
	}
	if fs.Changed("order") {
		cfg.Sort.Mode = order
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = level
	}
	if fs.Changed("log-file") {
		cfg.Log.File = file
	}
	if noColor {
		off := false
		cfg.Color = &off
	}
}

// newLoggers returns the shell logger and the TUI logger. Both share the
// log file when one is configured; otherwise the shell logs to stderr and
// the TUI discards.
func newLoggers(cfg config.Config) (shell, tui *slog.Logger, closeFn func(), err error) {
	level, _ := cfg.LogLevel()
	if os.Getenv("PACKLIST_DEBUG") != "" {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	closeFn = func() {}

	if cfg.Log.File == "" {
		shell = slog.New(slog.NewTextHandler(os.Stderr, opts))
		tui = slog.New(slog.NewTextHandler(io.Discard, opts))
		return shell, tui, closeFn, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, closeFn, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, opts))
	return logger, logger, func() { f.Close() }, nil
}

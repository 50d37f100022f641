package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/tui"
	"github.com/idilsaglam/packlist/internal/ui"
)

// Options carry everything the root flags and config resolved.
type Options struct {
	Projector *packing.Projector
	SortBy    packing.SortKey
	SortMode  packing.SortMode

	// Logger is used by the shell. TUILogger must not write to the terminal
	// the program draws on.
	Logger    *slog.Logger
	TUILogger *slog.Logger

	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

func (o *Options) fill() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.TUILogger == nil {
		o.TUILogger = slog.New(slog.DiscardHandler)
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// No subcommand starts the interactive UI.
func Run(args []string, opt Options) int {
	opt.fill()
	if opt.Projector == nil {
		ui.Fail(opt.Stderr, "no projector configured")
		return 1
	}
	cmd := "tui"
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "tui":
		if len(args) != 0 {
			ui.Fail(opt.Stderr, "usage: packlist tui")
			return 2
		}
		return doTUI(opt)

	case "shell":
		if len(args) != 0 {
			ui.Fail(opt.Stderr, "usage: packlist shell < commands.txt")
			return 2
		}
		return doShell(opt)
	}

	ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `packlist - a packing list for your next trip

Usage:
  packlist [flags] [tui|shell|help]

Subcommands:
  tui                Interactive list (default)
  shell              Read commands from stdin, one per line
  help               Show this help

Flags:
  --config PATH      YAML config file (or PACKLIST_CONFIG)
  --theme NAME       classic, neon or mono
  --locale TAG       Locale used to sort names (e.g. en, sv, de)
  --sort KEY         input, description or packed
  --order MODE       ascending or descending
  --log-level LEVEL  debug, info, warn or error
  --log-file PATH    Write logs to PATH
  --no-color         Disable colors

Shell commands:
`+shellHelp+`
Examples:
  packlist
  printf 'add 2 Boots\nadd Tent\ndone 2\nls\n' | packlist shell
`)
}

// -------------- subcommand impls ----------------

func newSession(opt Options, logger *slog.Logger) *packing.Store {
	s := packing.NewStore(logger)
	s.SetSortBy(opt.SortBy)
	s.SetSortMode(opt.SortMode)
	return s
}

func doTUI(opt Options) int {
	s := newSession(opt, opt.TUILogger)
	opt.TUILogger.Info("session started", "frontend", "tui")
	if err := tui.Run(s, opt.Projector, opt.TUILogger); err != nil {
		ui.Fail(opt.Stderr, "tui: "+err.Error())
		return 1
	}
	sum := packing.Summarize(s.Items())
	opt.TUILogger.Info("session ended", "items", sum.NumItems, "packed", sum.NumPacked)
	return 0
}

func doShell(opt Options) int {
	s := newSession(opt, opt.Logger)
	opt.Logger.Debug("session started", "frontend", "shell")
	sh := &shell{
		store:  s,
		proj:   opt.Projector,
		out:    opt.Stdout,
		errOut: opt.Stderr,
		log:    opt.Logger,
		prompt: isTerminal(opt.Stdin),
	}
	return sh.run(opt.Stdin)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

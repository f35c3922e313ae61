// Package main is the entry point for the keyshell interactive shell.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyshell/internal/app"
	"github.com/dshills/keyshell/internal/config"
	"github.com/dshills/keyshell/internal/input/keymap"
	"github.com/dshills/keyshell/internal/terminal"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, keyTest := parseFlags()

	if keyTest {
		return runKeyTest(opts.ConfigPath)
	}

	session, tty, err := terminal.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer tty.Close()
	defer session.Close()

	if !session.IsTerminal() {
		fmt.Fprintf(os.Stderr, "Error: %v\n", terminal.ErrNotTerminal)
		return 1
	}

	application, err := app.New(session, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	// Raw mode turns ^C into input, so only signals from outside end the
	// session.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := application.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runKeyTest shows how each key press is decoded and bound, using the
// keymaps of the configuration at path.
func runKeyTest(path string) int {
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	keys := keymap.NewRegistry()
	user, err := cfg.Keymap()
	if err == nil {
		err = keys.Register(keymap.Default())
	}
	if err == nil {
		err = keys.Register(user.WithPriority(10))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	app.NewKeyTest(screen, keys).Run()
	return 0
}

func parseFlags() (app.Options, bool) {
	var opts app.Options
	var keyTest bool
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.LogFile, "log-file", "", "Log file, or - for stderr")
	flag.BoolVar(&opts.NoHistory, "no-history", false, "Do not load or save command history")
	flag.BoolVar(&opts.NoWatch, "no-watch", false, "Do not reload the config or rescan PATH on changes")
	flag.BoolVar(&keyTest, "keytest", false, "Show how key presses are decoded and bound")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keyshell - interactive shell with live syntax feedback\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keyshell [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  keyshell                        Start a session\n")
		fmt.Fprintf(os.Stderr, "  keyshell -c ./config.toml       Use another config file\n")
		fmt.Fprintf(os.Stderr, "  keyshell -log-level debug       Log decoded input and commands\n")
		fmt.Fprintf(os.Stderr, "  keyshell -keytest               Check key bindings\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("keyshell %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level
	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments: %v\n", flag.Args())
		os.Exit(2)
	}

	return opts, keyTest
}

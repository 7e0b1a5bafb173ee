package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Errors for command dispatch.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingCommand = errors.New("no command or input given")
)

// commands lists the subcommand names.
var commands = []string{"convert", "inspect", "version", "help"}

func main() {
	configureMaxProcs(os.Args, os.Stderr)
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// configureMaxProcs sizes GOMAXPROCS to the container CPU quota. Its log is
// shown only with --verbose.
func configureMaxProcs(args []string, w *os.File) {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if slices.Contains(args, "-v") || slices.Contains(args, "--verbose") {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
}

// runMain dispatches the command line and returns the process exit code.
// Interrupt and termination signals cancel the running conversion.
func runMain(args []string, env *Environment) int {
	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	if len(args) < 2 {
		printUsage(env.Stderr)
		return exitCodeFor(ErrMissingCommand)
	}

	cmd, rest := args[1], args[2:]
	// "md2docx doc.md" is shorthand for "md2docx convert doc.md".
	if !isCommand(cmd) && (looksLikeMarkdown(cmd) || isFlag(cmd)) {
		cmd, rest = "convert", args[1:]
	}

	var err error
	switch cmd {
	case "convert":
		err = runConvertCmd(ctx, rest, env)
	case "inspect":
		err = runInspectCmd(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "md2docx %s\n", Version)
	case "help", "-h", "--help":
		err = runHelp(rest, env)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
		printUsage(env.Stderr)
	}

	if err != nil {
		fmt.Fprintln(env.Stderr, formatError(err))
	}
	return exitCodeFor(err)
}

func isCommand(s string) bool {
	return slices.Contains(commands, s)
}

func isFlag(s string) bool {
	return len(s) > 1 && s[0] == '-' && s != "-h" && s != "--help"
}

// looksLikeMarkdown reports whether s names a Markdown file.
func looksLikeMarkdown(s string) bool {
	ext := filepath.Ext(s)
	return ext == ".md" || ext == ".markdown"
}

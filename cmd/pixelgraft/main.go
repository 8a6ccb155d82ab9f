// Command pixelgraft aligns two photographs of the same scene and grafts
// pixels from one onto the other.
//
// Usage:
//
//	pixelgraft [-v] <command> [flags]
//
// Commands:
//
//	match   find where a block of image A appears in image B
//	fill    fill a polygon of the main image from a texture image
//	blur    apply a separable Gaussian blur
//	diff    paint pixels that differ between two aligned images
//	patch   copy individual pixels from a reference image
//
// Defaults come from PIXELGRAFT_* environment variables.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pixelgraft/pixelgraft"
	"github.com/pixelgraft/pixelgraft/internal/config"
)

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, env *env, args []string) error
}

var commands = []command{
	{"match", "find where a block of image A appears in image B", runMatch},
	{"fill", "fill a polygon of the main image from a texture image", runFill},
	{"blur", "apply a separable Gaussian blur", runBlur},
	{"diff", "paint pixels that differ between two aligned images", runDiff},
	{"patch", "copy individual pixels from a reference image", runPatch},
}

// env carries what every command needs.
type env struct {
	cfg    *config.Config
	p      *message.Printer
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger
}

// flagSet returns a flag set for a subcommand that reports errors instead
// of exiting.
func (e *env) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("pixelgraft "+name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

// usageError prints msg and the flag defaults, then returns errUsage.
func (e *env) usageError(fs *flag.FlagSet, msg string) error {
	_, _ = fmt.Fprintf(e.stderr, "%s: %s\n", fs.Name(), msg)
	fs.Usage()
	return errUsage
}

// printf writes a report line with locale-aware number formatting.
func (e *env) printf(format string, args ...any) {
	_, _ = e.p.Fprintf(e.stdout, format, args...)
}

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pixelgraft", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "enable debug logging")
	fs.Usage = func() { usage(fs, stderr) }
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	pixelgraft.SetLogger(logger)
	defer pixelgraft.SetLogger(nil)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		return 1
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	name, rest := fs.Arg(0), fs.Args()[1:]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		e := &env{cfg: cfg, p: message.NewPrinter(language.English), stdout: stdout, stderr: stderr, log: logger}
		err := c.run(ctx, e, rest)
		switch {
		case err == nil:
			return 0
		case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
			return 2
		default:
			logger.Error(name+" failed", "err", err)
			return 1
		}
	}

	_, _ = fmt.Fprintf(stderr, "pixelgraft: unknown command %q\n", name)
	fs.Usage()
	return 2
}

func usage(fs *flag.FlagSet, w io.Writer) {
	_, _ = fmt.Fprintln(w, "Usage: pixelgraft [-v] <command> [flags]")
	_, _ = fmt.Fprintln(w, "\nCommands:")
	for _, c := range commands {
		_, _ = fmt.Fprintf(w, "  %-6s %s\n", c.name, c.usage)
	}
	_, _ = fmt.Fprintln(w, "\nFlags:")
	fs.PrintDefaults()
}

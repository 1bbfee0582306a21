package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/specialistvlad/stangrid/internal/app"
	"github.com/specialistvlad/stangrid/internal/cli"
	"github.com/specialistvlad/stangrid/internal/errcode"
)

// shutdownSignals cancel the run context.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// main is the entrypoint for the stangrid application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	code := run(ctx, os.Stdout, os.Stderr, os.Args[1:], os.Environ())
	stop()
	os.Exit(code)
}

// run encapsulates the main application logic for easier testing and returns
// the process exit code.
func run(ctx context.Context, outW, errW io.Writer, args, environ []string) (code int) {
	cfg, tokens, err := cli.Parse(args, environ, errW)
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(errW, exitErr.Message)
			return exitErr.Code
		}
		fmt.Fprintln(errW, err)
		return errcode.Usage
	}
	if cfg == nil {
		// Help was requested before any flag could be validated.
		cfg = &app.Config{LogLevel: "warn", LogFormat: "text"}
	}

	// Schema construction panics on programmer errors; report them as a
	// clean failure instead of a stack trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(errW, "A critical error occurred: %v\n", r)
			code = errcode.Software
		}
	}()

	a, err := app.NewApp(outW, errW, cfg)
	if err != nil {
		fmt.Fprintln(errW, err)
		if errors.Is(err, os.ErrNotExist) {
			return errcode.NoInput
		}
		return errcode.DataErr
	}

	return a.Run(ctx, tokens)
}

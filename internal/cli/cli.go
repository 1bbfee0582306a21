package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/stangrid/internal/app"
	"github.com/specialistvlad/stangrid/internal/argfile"
	"github.com/specialistvlad/stangrid/internal/errcode"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// helpToken asks the argument parser for the full argument help.
const helpToken = "--help"

// Parse processes command-line arguments. Process flags come first; flag
// parsing stops at the first argument that is not a flag and everything from
// there on is returned as argument tokens. environ supplies defaults for the
// flags, see envDefaults.
//
// -h and --help print the flag usage and then return the single help token,
// so the argument help follows.
func Parse(args []string, environ []string, output io.Writer) (*app.Config, []string, error) {
	slog.Debug("CLI parser started.")
	defaults := envDefaults(environ)

	flagSet := flag.NewFlagSet("stangrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
stangrid - Configure and dispatch a Bayesian inference run.

Usage:
  stangrid [options] [ARGUMENT...]

Arguments:
  ARGUMENT
    name=value pairs selecting the method and its settings, e.g.
    sample num_samples=500 algorithm=hmc engine=nuts max_depth=12
    Run 'stangrid help' for the full argument tree. Arguments from
    --args-file are applied first.

Options:
`)
		flagSet.PrintDefaults()
	}

	modelFlag := flagSet.String("model", defaults.model, "Path to the model manifest file or directory.")
	mFlag := flagSet.String("m", "", "Path to the model manifest file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", defaults.logFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.logLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	argsFileFlag := flagSet.String("args-file", "", "YAML file of arguments applied before the command-line ones.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, []string{helpToken}, nil
		}
		return nil, nil, &ExitError{Code: errcode.Usage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	modelPath := *modelFlag
	if *mFlag != "" {
		modelPath = *mFlag
	}

	config, err := app.NewConfig(app.Config{
		ModelPath: modelPath,
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, nil, &ExitError{Code: errcode.Usage, Message: err.Error()}
	}

	tokens := flagSet.Args()
	if *argsFileFlag != "" {
		fileTokens, err := argfile.Load(*argsFileFlag)
		if err != nil {
			code := errcode.DataErr
			if errors.Is(err, os.ErrNotExist) {
				code = errcode.NoInput
			}
			return nil, nil, &ExitError{Code: code, Message: err.Error()}
		}
		slog.Debug("Arguments file loaded.", "path", *argsFileFlag, "tokens", len(fileTokens))
		tokens = append(fileTokens, tokens...)
	}
	slog.Debug("CLI parser finished successfully.", "config", config, "tokens", len(tokens))
	return config, tokens, nil
}

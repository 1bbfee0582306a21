package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/stangrid/internal/arguments"
	"github.com/specialistvlad/stangrid/internal/ctxlog"
	"github.com/specialistvlad/stangrid/internal/dispatch"
	"github.com/specialistvlad/stangrid/internal/errcode"
	"github.com/specialistvlad/stangrid/internal/parser"
	"github.com/specialistvlad/stangrid/internal/services"
)

// Run parses tokens and dispatches the selected routine. It returns the
// process exit code: errcode.Config when the configuration is rejected,
// otherwise the routine's own code. Nothing is opened or invoked unless
// parsing and resolution both succeed.
func (a *App) Run(ctx context.Context, tokens []string) int {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "tokens", len(tokens))

	args := arguments.New()
	outcome, code := parser.Run(ctx, tokens, args.Root, a.outW, a.errW)
	if code != errcode.OK {
		return code
	}
	if outcome.HelpPrinted {
		return errcode.OK
	}

	call, err := dispatch.Resolve(args, a.model)
	if err != nil {
		fmt.Fprintln(a.errW, err)
		a.logger.Debug("Configuration rejected.", "error", err)
		return errcode.Config
	}

	seed := services.ResolveSeed(args.Seed, a.now)
	// The echoed configuration carries the seed actually used.
	if err := args.Seed.Set(uint(seed)); err != nil {
		fmt.Fprintln(a.errW, err)
		return errcode.Software
	}
	radius, initCtx := services.ResolveInit(args.Init.Value())
	dataCtx := services.NewVarContext(args.DataFile.Value())
	a.logger.Debug("Configuration resolved.", "routine", call.Routine().String(), "seed", seed, "init_radius", radius)

	if code := checkInputs(dataCtx, initCtx, a.errW); code != errcode.OK {
		return code
	}

	info := services.NewStreamWriter(a.outW, "")
	args.Root.Print(info, 0, "")
	info.WriteLine(fmt.Sprintf("random seed = %d", seed))

	sinks, err := openSinks(ctx, args.OutputFile.Value(), args.DiagnosticFile.Value())
	if err != nil {
		fmt.Fprintln(a.errW, err)
		return errcode.CantCreate
	}
	defer sinks.Close(ctx)

	for _, w := range sinks.headers() {
		writeHeader(w, args, a.model, seed)
	}

	env := services.Env{
		Model:      a.model,
		Init:       initCtx,
		RandomSeed: seed,
		ChainID:    args.ID.Value(),
		InitRadius: radius,
		Interrupt:  services.NoopInterrupt,
		Info:       info,
		Err:        services.NewStreamWriter(a.errW, ""),
		InitWriter: services.NoopWriter{},
		Sample:     sinks.sample,
		Diagnostic: sinks.diagnosticWriter(),
	}
	code = dispatch.Dispatch(ctx, call, a.routines, env)

	a.logger.Debug("App.Run method finished.", "code", code, "status", errcode.Name(code))
	return code
}

// checkInputs verifies that every named input file exists before any output
// file is created.
func checkInputs(data, init services.VarContext, errW io.Writer) int {
	for _, vc := range []services.VarContext{data, init} {
		if vc.Empty() {
			continue
		}
		if _, err := os.Stat(vc.Path); err != nil {
			fmt.Fprintf(errW, "cannot read input file: %v\n", err)
			return errcode.NoInput
		}
	}
	return errcode.OK
}

// writeHeader echoes the configuration as comment lines.
func writeHeader(w *services.StreamWriter, args *arguments.Arguments, m services.Model, seed uint32) {
	w.Comment(fmt.Sprintf("model = %s", m.Name()))
	args.Root.Print(w, 0, w.Prefix())
	w.Comment(fmt.Sprintf("random seed = %d", seed))
}

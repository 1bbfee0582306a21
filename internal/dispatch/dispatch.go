package dispatch

import (
	"context"
	"log/slog"

	"github.com/specialistvlad/stangrid/internal/ctxlog"
	"github.com/specialistvlad/stangrid/internal/errcode"
	"github.com/specialistvlad/stangrid/internal/services"
)

// Dispatch invokes the routine behind call exactly once and returns its
// status code unchanged.
func Dispatch(ctx context.Context, call Call, r services.Routines, env services.Env) int {
	ctx, logger := ctxlog.With(ctx, "routine", call.Routine().String())
	logger.Debug("Dispatching routine.", "seed", env.RandomSeed, "chain_id", env.ChainID)

	code := call.invoke(ctx, r, env)

	level := slog.LevelDebug
	if code != errcode.OK {
		level = slog.LevelWarn
	}
	logger.Log(ctx, level, "Routine returned.", "code", code, "status", errcode.Name(code))
	return code
}

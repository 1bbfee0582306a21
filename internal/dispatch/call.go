package dispatch

import (
	"context"

	"github.com/specialistvlad/stangrid/internal/services"
)

// Call is a resolved routine with its parameters extracted. The only
// implementations are produced by Resolve.
type Call interface {
	Routine() Routine
	// Params returns the routine's parameter struct by value.
	Params() any
	invoke(ctx context.Context, r services.Routines, env services.Env) int
}

// call binds a parameter struct to the Routines method that consumes it.
type call[P any] struct {
	routine Routine
	params  P
	fn      func(services.Routines, context.Context, services.Env, P) int
}

func newCall[P any](routine Routine, params P, fn func(services.Routines, context.Context, services.Env, P) int) Call {
	return &call[P]{routine: routine, params: params, fn: fn}
}

func (c *call[P]) Routine() Routine { return c.routine }
func (c *call[P]) Params() any      { return c.params }

func (c *call[P]) invoke(ctx context.Context, r services.Routines, env services.Env) int {
	return c.fn(r, ctx, env, c.params)
}

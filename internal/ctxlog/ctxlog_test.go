package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
	FromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	t.Parallel()

	assert.Same(t, slog.Default(), FromContext(context.Background()))
	var nilCtx context.Context
	assert.Same(t, slog.Default(), FromContext(nilCtx))
}

func TestWith(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	base := WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	ctx, logger := With(base, "routine", "newton")
	FromContext(ctx).Info("from callee")
	logger.Info("from caller")

	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("routine=newton")))
	assert.NotSame(t, FromContext(base), FromContext(ctx))
}

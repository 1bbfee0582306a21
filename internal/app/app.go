package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/specialistvlad/stangrid/internal/ctxlog"
	"github.com/specialistvlad/stangrid/internal/model"
	"github.com/specialistvlad/stangrid/internal/services"
	"github.com/specialistvlad/stangrid/modules/print"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	errW     io.Writer
	logger   *slog.Logger
	config   *Config
	model    services.Model
	routines services.Routines
	now      func() time.Time
}

// Option customizes an App.
type Option func(*App)

// WithRoutines replaces the dry-run routines.
func WithRoutines(r services.Routines) Option {
	return func(a *App) {
		a.routines = r
	}
}

// WithClock sets the time source used to derive a default seed.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// WithModel uses m instead of loading the configured manifest.
func WithModel(m services.Model) Option {
	return func(a *App) {
		a.model = m
	}
}

// NewApp is the constructor for the main application. Info output goes to
// outW; errors and logs go to errW. The model manifest is loaded here so
// that a broken manifest fails before any token is parsed.
func NewApp(outW, errW io.Writer, cfg *Config, opts ...Option) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:     outW,
		errW:     errW,
		logger:   logger,
		config:   cfg,
		routines: print.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.model == nil {
		m, err := loadModel(ctx, cfg.ModelPath)
		if err != nil {
			return nil, err
		}
		a.model = m
	}
	logger.Debug("Model ready.", "model", a.model.Name(), "num_params_r", a.model.NumParamsR())

	return a, nil
}

func loadModel(ctx context.Context, path string) (*model.Model, error) {
	if path == "" {
		ctxlog.FromContext(ctx).Debug("No model manifest given, using an empty model.")
		return model.Empty(), nil
	}
	m, err := model.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}
	return m, nil
}

// Model returns the loaded model. This is primarily for testing.
func (a *App) Model() services.Model {
	return a.model
}

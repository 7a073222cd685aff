package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/behaviorgo/internal/config"
	"github.com/vk/behaviorgo/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	model  *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and the definition
// model already loaded. A failure to load the definition is a fatal startup
// error and panics; the entrypoint recovers.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.DefinitionPath)
	if err != nil {
		panic(fmt.Errorf("failed to load definition: %w", err))
	}
	logger.Debug("Definition loaded and translated into unified model.",
		"states", len(model.States),
		"transitions", len(model.Transitions),
		"wildcards", len(model.Wildcards),
	)

	return &App{
		outW:   outW,
		logger: logger,
		model:  model,
	}
}

// Model returns the loaded definition model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

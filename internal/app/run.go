package app

import (
	"context"
	"fmt"

	"github.com/vk/behaviorgo/internal/builder"
	"github.com/vk/behaviorgo/internal/ctxlog"
)

// Run composes the behavior graph from the loaded model and exports it.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	res, err := builder.Compose(ctx, a.model)
	if err != nil {
		return fmt.Errorf("failed to compose behavior graph: %w", err)
	}
	for _, w := range res.Warnings {
		a.logger.Warn("Definition warning.", "detail", w.Error())
	}

	outputPath := appConfig.OutputPath
	if outputPath == "" {
		outputPath = res.Builder.Name() + ".xml"
	}
	if err := res.Builder.Export(ctx, outputPath); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

package app

import (
	"context"

	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/specialistvlad/bikeshare/internal/loader"
	"github.com/specialistvlad/bikeshare/internal/prompt"
	"github.com/specialistvlad/bikeshare/internal/report"
	"github.com/specialistvlad/bikeshare/internal/session"
)

// Run executes the interactive session until the user quits or input ends.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "data_dir", a.config.DataDir)

	prompter := prompt.New(a.streams.In, a.streams.Out, a.catalog)
	printer := report.New(a.streams.Out, report.WithColor(colorEnabled(a.config, a.streams.Out)))

	s := session.New(a.catalog, prompter, printer, loader.Load)
	if err := s.Run(ctx); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

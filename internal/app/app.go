package app

import (
	"context"
	"log/slog"

	dc "github.com/Corantin/toggl-discord-cron/internal/adapter/discord"
	tg "github.com/Corantin/toggl-discord-cron/internal/adapter/toggl"
	"github.com/Corantin/toggl-discord-cron/internal/config"
	"github.com/Corantin/toggl-discord-cron/internal/usecase"
)

// App wires adapters and the report use case.
type App struct {
	log *slog.Logger
	cfg config.Config
	uc  *usecase.ReportUseCase
}

func New(log *slog.Logger, cfg config.Config) *App {
	togglClient := tg.NewClient(cfg.Toggl.BaseURL, cfg.Toggl.APIToken, log)
	webhook := dc.NewClient(cfg.Discord.WebhookURL, cfg.Discord.ThreadID, log)

	uc := &usecase.ReportUseCase{
		Log:       log,
		Source:    togglClient,
		Messenger: webhook,
	}

	return &App{log: log, cfg: cfg, uc: uc}
}

// RunOnce produces and delivers the report for the configured date.
func (a *App) RunOnce(ctx context.Context) error {
	return a.uc.Run(ctx, usecase.Params{
		DateSpec:    a.cfg.Report.Date,
		WorkspaceID: a.cfg.Toggl.WorkspaceID,
		ProjectID:   a.cfg.Toggl.ProjectID,
		DryRun:      a.cfg.Report.DryRun,
	})
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Corantin/toggl-discord-cron/internal/domain"
	"github.com/Corantin/toggl-discord-cron/internal/ports"
	"github.com/Corantin/toggl-discord-cron/internal/report"
)

// ReportUseCase coordinates fetching entries from Toggl and delivering the
// daily summary to a Messenger.
type ReportUseCase struct {
	Log       *slog.Logger
	Source    ports.TimeEntrySource
	Messenger ports.Messenger
	Out       io.Writer        // dry-run destination; defaults to stdout
	Now       func() time.Time // injected clock; defaults to time.Now
}

// Params selects what one run reports on.
type Params struct {
	DateSpec    string
	WorkspaceID int64 // 0 means no workspace filter
	ProjectID   int64 // 0 means no project filter
	DryRun      bool
}

// Run executes the full pipeline: resolve window, fetch, filter, aggregate,
// format, deliver. A day with no matching entries is not an error; the run
// logs and returns without contacting the messenger.
func (uc *ReportUseCase) Run(ctx context.Context, p Params) error {
	if uc.Source == nil || uc.Messenger == nil {
		return errors.New("usecase not initialized: missing dependencies")
	}
	now := time.Now
	if uc.Now != nil {
		now = uc.Now
	}
	out := uc.Out
	if out == nil {
		out = os.Stdout
	}

	window, err := domain.ResolveWindow(p.DateSpec, now())
	if err != nil {
		return err
	}
	if window.Empty() {
		uc.Log.Info("window precedes report cutoff, nothing to report", slog.String("date", window.Label))
		return nil
	}

	uc.Log.Info("fetching time entries",
		slog.Time("from", window.Start), slog.Time("to", window.End))
	entries, err := uc.Source.ListTimeEntries(ctx, window.Start, window.End)
	if err != nil {
		return err
	}
	uc.Log.Info("fetched time entries", slog.Int("count", len(entries)))

	entries = filterEntries(entries, p.WorkspaceID, p.ProjectID)
	if len(entries) == 0 {
		uc.Log.Info("no entries to report", slog.String("date", window.Label))
		return nil
	}

	summary := report.Aggregate(entries, now())
	message := report.BuildMessage(window.Label, summary)

	if p.DryRun {
		fmt.Fprintln(out, message)
		uc.Log.Info("dry run, skipping delivery")
		return nil
	}
	if err := uc.Messenger.Send(ctx, message); err != nil {
		return err
	}
	uc.Log.Info("report delivered",
		slog.String("date", window.Label),
		slog.Int("labels", len(summary.Labels)),
		slog.String("total", report.FormatDuration(summary.TotalSeconds)))
	return nil
}

// filterEntries keeps entries matching the configured workspace and project.
// A zero id disables the corresponding filter.
func filterEntries(entries []domain.TimeEntry, workspaceID, projectID int64) []domain.TimeEntry {
	if workspaceID == 0 && projectID == 0 {
		return entries
	}
	out := entries[:0]
	for _, e := range entries {
		if workspaceID != 0 && (e.WorkspaceID == nil || *e.WorkspaceID != workspaceID) {
			continue
		}
		if projectID != 0 && (e.ProjectID == nil || *e.ProjectID != projectID) {
			continue
		}
		out = append(out, e)
	}
	return out
}

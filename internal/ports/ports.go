package ports

import (
	"context"
	"time"

	"github.com/Corantin/toggl-discord-cron/internal/domain"
)

// TimeEntrySource defines methods to fetch time entries from Toggl.
type TimeEntrySource interface {
	ListTimeEntries(ctx context.Context, from, to time.Time) ([]domain.TimeEntry, error)
}

// Messenger delivers a finished report to a chat destination. The only
// implementation posts to a Discord webhook, but the interface is
// intentionally generic to support other targets.
type Messenger interface {
	Send(ctx context.Context, content string) error
}

package domain

import "time"

// TimeEntry represents a Toggl time entry in the domain.
type TimeEntry struct {
	ID          int64
	Description string
	ProjectID   *int64
	WorkspaceID *int64
	Tags        []string
	Start       time.Time
	Stop        *time.Time
	DurationSec int64 // Negative means running in Toggl API semantics
}

// roundingBucketSec is the granularity durations are normalized to before
// reporting.
const roundingBucketSec int64 = 300

// EntryDuration returns the duration of an entry in whole seconds as of now.
// Finished entries report their stored duration; running entries (negative
// DurationSec) report elapsed time since Start. Entries without a usable
// duration or start contribute nothing.
func EntryDuration(e *TimeEntry, now time.Time) int64 {
	if e == nil {
		return 0
	}
	if e.DurationSec >= 0 {
		return e.DurationSec
	}
	if e.Start.IsZero() {
		return 0
	}
	elapsed := int64(now.Sub(e.Start) / time.Second)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// RoundDuration normalizes a raw duration to the nearest 5-minute bucket,
// rounding half up. Any positive duration reports as at least one bucket, so
// short entries never vanish from the report.
func RoundDuration(sec int64) int64 {
	if sec <= 0 {
		return 0
	}
	rounded := (sec + roundingBucketSec/2) / roundingBucketSec * roundingBucketSec
	if rounded < roundingBucketSec {
		return roundingBucketSec
	}
	return rounded
}

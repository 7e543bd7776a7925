package domain

import (
	"fmt"
	"time"
)

// reportZone is the civil timezone all report days are anchored to.
var reportZone = mustLoadZone("America/New_York")

// reportCutoff is the earliest instant entries may be reported for. Windows
// are clamped so nothing before it is ever fetched.
var reportCutoff = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func mustLoadZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("load timezone %s: %v", name, err))
	}
	return loc
}

// ReportWindow is a half-open interval [Start, End) covering one report day,
// with a human label for the report header.
type ReportWindow struct {
	Start time.Time
	End   time.Time
	Label string
}

// Empty reports whether the window covers no time at all, which happens when
// the cutoff clamp swallows the whole requested day.
func (w ReportWindow) Empty() bool {
	return !w.Start.Before(w.End)
}

// ResolveWindow turns a date specifier into the report window for that day.
// Accepted specifiers: "today", "yesterday", "" (defaults to yesterday), or
// an explicit YYYY-MM-DD date. The day boundaries are taken in the report
// timezone and the window start is clamped to the report cutoff.
func ResolveWindow(spec string, now time.Time) (ReportWindow, error) {
	local := now.In(reportZone)
	var day time.Time
	switch spec {
	case "today":
		day = local
	case "yesterday", "":
		day = local.AddDate(0, 0, -1)
	default:
		d, err := time.ParseInLocation("2006-01-02", spec, reportZone)
		if err != nil {
			return ReportWindow{}, fmt.Errorf("invalid report date %q, expected today, yesterday or YYYY-MM-DD", spec)
		}
		day = d
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, reportZone)
	end := start.AddDate(0, 0, 1)
	label := start.Format("Jan 2")
	if start.Before(reportCutoff) {
		start = reportCutoff
	}
	if start.After(end) {
		start = end
	}
	return ReportWindow{Start: start, End: end, Label: label}, nil
}

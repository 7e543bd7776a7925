package report

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FormatDuration renders seconds in the compact style used throughout the
// report: "1h05" once hours are reached, "5m30" for sub-hour durations,
// "45s" below a minute. Precision drops to the next-smaller unit only.
func FormatDuration(sec int64) string {
	h := sec / 3600
	m := sec % 3600 / 60
	s := sec % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh%02d", h, m)
	case m > 0:
		return fmt.Sprintf("%dm%02d", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// BuildMessage assembles the Discord message for one report day: a header
// with the day label, a rule sized to the widest line, one bold heading per
// label group with a bullet per description, and a grand-total line. With no
// entries the body is a single placeholder line and the total is omitted.
func BuildMessage(dateLabel string, s Summary) string {
	header := "Time report for " + dateLabel
	var body []string
	if len(s.Labels) == 0 {
		body = append(body, "No entries recorded.")
	} else {
		for _, lt := range s.Labels {
			body = append(body, fmt.Sprintf("**%s**", lt.Name))
			for _, dt := range lt.Descriptions {
				body = append(body, fmt.Sprintf("- %s: %s", dt.Description, FormatDuration(dt.Seconds)))
			}
			body = append(body, "")
		}
		body = append(body, fmt.Sprintf("Total: **%s**", FormatDuration(s.TotalSeconds)))
	}

	width := utf8.RuneCountInString(header)
	for _, line := range body {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}

	lines := make([]string, 0, len(body)+2)
	lines = append(lines, header, strings.Repeat("─", width))
	lines = append(lines, body...)
	return strings.Join(lines, "\n")
}

package report

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/Corantin/toggl-discord-cron/internal/domain"
)

const (
	// NoLabel groups entries that carry no tags.
	NoLabel = "(no label)"
	// NoDescription stands in for entries without a description.
	NoDescription = "(no description)"
)

// DescriptionTotal is the rounded time booked against one description within
// a label group.
type DescriptionTotal struct {
	Description string
	Seconds     int64
}

// LabelTotal is the rounded time booked against one label, broken down by
// description.
type LabelTotal struct {
	Name         string
	Seconds      int64
	Descriptions []DescriptionTotal
}

// Summary is the aggregated view of one report day.
//
// An entry with several tags is credited in full to each of its label groups,
// so the label totals may add up to more than TotalSeconds. TotalSeconds is
// summed directly over the entries and never double-counts.
type Summary struct {
	Labels       []LabelTotal
	TotalSeconds int64
}

// Aggregate groups entries by label and description, summing rounded
// durations. Groups are ordered by descending duration; ties keep the order
// the groups were first seen in.
func Aggregate(entries []domain.TimeEntry, now time.Time) Summary {
	var s Summary
	labelIdx := make(map[string]int)
	descIdx := make(map[string]map[string]int)

	credit := func(label, desc string, sec int64) {
		i, ok := labelIdx[label]
		if !ok {
			i = len(s.Labels)
			labelIdx[label] = i
			descIdx[label] = make(map[string]int)
			s.Labels = append(s.Labels, LabelTotal{Name: label})
		}
		s.Labels[i].Seconds += sec
		j, ok := descIdx[label][desc]
		if !ok {
			j = len(s.Labels[i].Descriptions)
			descIdx[label][desc] = j
			s.Labels[i].Descriptions = append(s.Labels[i].Descriptions, DescriptionTotal{Description: desc})
		}
		s.Labels[i].Descriptions[j].Seconds += sec
	}

	for _, e := range entries {
		sec := domain.RoundDuration(domain.EntryDuration(&e, now))
		s.TotalSeconds += sec

		desc := strings.TrimSpace(e.Description)
		if desc == "" {
			desc = NoDescription
		}
		if len(e.Tags) == 0 {
			credit(NoLabel, desc, sec)
			continue
		}
		for _, tag := range e.Tags {
			credit(tag, desc, sec)
		}
	}

	slices.SortStableFunc(s.Labels, func(a, b LabelTotal) int {
		return cmp.Compare(b.Seconds, a.Seconds)
	})
	for i := range s.Labels {
		slices.SortStableFunc(s.Labels[i].Descriptions, func(a, b DescriptionTotal) int {
			return cmp.Compare(b.Seconds, a.Seconds)
		})
	}
	return s
}

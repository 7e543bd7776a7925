package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntryDuration(t *testing.T) {
	now := time.Date(2025, time.December, 10, 15, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		entry    *TimeEntry
		expected int64
	}{
		{"nil entry", nil, 0},
		{"finished entry uses stored duration", &TimeEntry{DurationSec: 610, Start: now.Add(-2 * time.Hour)}, 610},
		{"zero duration is authoritative", &TimeEntry{DurationSec: 0, Start: now.Add(-time.Hour)}, 0},
		{"running entry counts from start", &TimeEntry{DurationSec: -1, Start: now.Add(-90 * time.Second)}, 90},
		{"running entry with future start", &TimeEntry{DurationSec: -1, Start: now.Add(time.Minute)}, 0},
		{"running entry without start", &TimeEntry{DurationSec: -1}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EntryDuration(tc.entry, now))
		})
	}
}

func TestEntryDurationGrowsWithClock(t *testing.T) {
	start := time.Date(2025, time.December, 10, 9, 0, 0, 0, time.UTC)
	e := &TimeEntry{DurationSec: -1, Start: start}

	prev := int64(-1)
	for _, offset := range []time.Duration{time.Second, time.Minute, time.Hour} {
		d := EntryDuration(e, start.Add(offset))
		assert.Greater(t, d, prev)
		prev = d
	}
}

func TestRoundDuration(t *testing.T) {
	testCases := []struct {
		name     string
		seconds  int64
		expected int64
	}{
		{"negative", -10, 0},
		{"zero", 0, 0},
		{"tiny durations floor to one bucket", 1, 300},
		{"below half bucket still floors", 149, 300},
		{"half bucket rounds up", 150, 300},
		{"just under one bucket", 290, 300},
		{"exact bucket", 300, 300},
		{"rounds down toward bucket", 610, 600},
		{"halfway rounds up", 450, 600},
		{"large value", 7350, 7500},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RoundDuration(tc.seconds))
		})
	}
}

func TestRoundDurationIdempotent(t *testing.T) {
	for _, sec := range []int64{0, 45, 299, 300, 450, 610, 3600, 86399} {
		once := RoundDuration(sec)
		assert.Equal(t, once, RoundDuration(once), "seconds=%d", sec)
		if sec > 0 {
			assert.GreaterOrEqual(t, once, int64(300))
			assert.Zero(t, once%300)
		}
	}
}

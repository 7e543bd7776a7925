package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWindow(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// A fixed "now": 2025-12-11 08:30 in New York.
	now := time.Date(2025, time.December, 11, 8, 30, 0, 0, loc)

	testCases := []struct {
		name      string
		spec      string
		wantStart time.Time
		wantEnd   time.Time
		wantLabel string
	}{
		{
			name:      "explicit date",
			spec:      "2025-12-10",
			wantStart: time.Date(2025, time.December, 10, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2025, time.December, 11, 0, 0, 0, 0, loc),
			wantLabel: "Dec 10",
		},
		{
			name:      "today",
			spec:      "today",
			wantStart: time.Date(2025, time.December, 11, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2025, time.December, 12, 0, 0, 0, 0, loc),
			wantLabel: "Dec 11",
		},
		{
			name:      "yesterday",
			spec:      "yesterday",
			wantStart: time.Date(2025, time.December, 10, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2025, time.December, 11, 0, 0, 0, 0, loc),
			wantLabel: "Dec 10",
		},
		{
			name:      "empty defaults to yesterday",
			spec:      "",
			wantStart: time.Date(2025, time.December, 10, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2025, time.December, 11, 0, 0, 0, 0, loc),
			wantLabel: "Dec 10",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := ResolveWindow(tc.spec, now)
			require.NoError(t, err)
			assert.True(t, w.Start.Equal(tc.wantStart), "start: got %v want %v", w.Start, tc.wantStart)
			assert.True(t, w.End.Equal(tc.wantEnd), "end: got %v want %v", w.End, tc.wantEnd)
			assert.Equal(t, tc.wantLabel, w.Label)
			assert.False(t, w.Empty())
		})
	}
}

func TestResolveWindowInvalidSpec(t *testing.T) {
	now := time.Date(2025, time.December, 11, 8, 30, 0, 0, time.UTC)
	for _, spec := range []string{"tomorrow", "12/10/2025", "2025-13-40", "garbage"} {
		_, err := ResolveWindow(spec, now)
		require.Error(t, err, "spec=%q", spec)
		assert.Contains(t, err.Error(), spec)
	}
}

func TestResolveWindowClampsToCutoff(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	now := time.Date(2025, time.December, 11, 8, 30, 0, 0, loc)

	t.Run("day fully before cutoff is empty", func(t *testing.T) {
		w, err := ResolveWindow("2023-05-01", now)
		require.NoError(t, err)
		assert.True(t, w.Empty())
		assert.False(t, w.Start.Before(reportCutoff))
	})

	t.Run("day straddling cutoff keeps the tail", func(t *testing.T) {
		// New York midnight of Dec 31 2023 precedes the UTC cutoff, but the
		// day's last five hours fall after it.
		w, err := ResolveWindow("2023-12-31", now)
		require.NoError(t, err)
		assert.False(t, w.Empty())
		assert.True(t, w.Start.Equal(reportCutoff))
		assert.True(t, w.End.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, loc)))
	})

	t.Run("day after cutoff is untouched", func(t *testing.T) {
		w, err := ResolveWindow("2024-06-01", now)
		require.NoError(t, err)
		assert.True(t, w.Start.Equal(time.Date(2024, time.June, 1, 0, 0, 0, 0, loc)))
	})
}

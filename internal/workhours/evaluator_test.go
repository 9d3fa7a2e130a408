package workhours_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/directory-microservice/internal/domain"
	"github.com/directory-microservice/internal/workhours"
)

// mondaySchedule opens Monday 09:00-17:00 and says nothing about the
// other days.
var mondaySchedule = domain.WeekSchedule{
	domain.Monday: {Open: "09:00", Close: "17:00"},
}

func TestEvaluate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	// 2026-08-31 is a Monday
	monday := func(hour, min int) time.Time {
		return time.Date(2026, 8, 31, hour, min, 0, 0, loc)
	}
	tuesday := func(hour, min int) time.Time {
		return time.Date(2026, 9, 1, hour, min, 0, 0, loc)
	}

	tests := []struct {
		name     string
		schedule domain.WeekSchedule
		now      time.Time
		expected workhours.Verdict
	}{
		{
			name:     "no schedule at all",
			schedule: nil,
			now:      monday(12, 0),
			expected: workhours.VerdictUnknown,
		},
		{
			name:     "empty schedule",
			schedule: domain.WeekSchedule{},
			now:      monday(12, 0),
			expected: workhours.VerdictUnknown,
		},
		{
			name:     "one minute before close",
			schedule: mondaySchedule,
			now:      monday(16, 59),
			expected: workhours.VerdictOpen,
		},
		{
			name:     "closing minute itself counts as closed",
			schedule: mondaySchedule,
			now:      monday(17, 0),
			expected: workhours.VerdictClosed,
		},
		{
			name:     "opening minute counts as open",
			schedule: mondaySchedule,
			now:      monday(9, 0),
			expected: workhours.VerdictOpen,
		},
		{
			name:     "before opening",
			schedule: mondaySchedule,
			now:      monday(8, 59),
			expected: workhours.VerdictClosed,
		},
		{
			name:     "day absent from schedule",
			schedule: mondaySchedule,
			now:      tuesday(12, 0),
			expected: workhours.VerdictClosed,
		},
		{
			name: "day explicitly closed",
			schedule: domain.WeekSchedule{
				domain.Monday: {Closed: true},
			},
			now:      monday(12, 0),
			expected: workhours.VerdictClosed,
		},
		{
			name: "malformed open time evaluates closed",
			schedule: domain.WeekSchedule{
				domain.Monday: {Open: "nine", Close: "17:00"},
			},
			now:      monday(12, 0),
			expected: workhours.VerdictClosed,
		},
		{
			name: "out of range close time evaluates closed",
			schedule: domain.WeekSchedule{
				domain.Monday: {Open: "09:00", Close: "25:00"},
			},
			now:      monday(12, 0),
			expected: workhours.VerdictClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, workhours.Evaluate(tt.schedule, tt.now, loc))
		})
	}
}

func TestEvaluate_UsesConfiguredZone(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	// 16:30 UTC on a Monday is 18:30 in Madrid (CEST), past closing.
	now := time.Date(2026, 8, 31, 16, 30, 0, 0, time.UTC)

	assert.Equal(t, workhours.VerdictClosed, workhours.Evaluate(mondaySchedule, now, madrid))
	assert.Equal(t, workhours.VerdictOpen, workhours.Evaluate(mondaySchedule, now, time.UTC))
}

func TestFormatWeek(t *testing.T) {
	schedule := domain.WeekSchedule{
		domain.Monday:    {Open: "09:00", Close: "17:00"},
		domain.Wednesday: {Closed: true},
		domain.Saturday:  {Open: "10:00", Close: "14:00"},
	}

	week := workhours.FormatWeek(schedule)
	require.Len(t, week, 7)

	assert.Equal(t, "Monday: 09:00-17:00", week[0])
	assert.Equal(t, "Tuesday: closed", week[1])
	assert.Equal(t, "Wednesday: closed", week[2])
	assert.Equal(t, "Saturday: 10:00-14:00", week[5])
	assert.Equal(t, "Sunday: closed", week[6])
}

func TestFormatWeek_EmptySchedule(t *testing.T) {
	week := workhours.FormatWeek(nil)
	require.Len(t, week, 7)
	for _, day := range week {
		assert.Contains(t, day, "closed")
	}
}

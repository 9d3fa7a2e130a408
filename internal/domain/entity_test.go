package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntity_HasTag(t *testing.T) {
	tests := []struct {
		name     string
		tags     []string
		tag      string
		expected bool
	}{
		{
			name:     "tag present",
			tags:     []string{"beach", "family"},
			tag:      "beach",
			expected: true,
		},
		{
			name:     "tag absent",
			tags:     []string{"beach", "family"},
			tag:      "nightlife",
			expected: false,
		},
		{
			name:     "no tags at all",
			tags:     nil,
			tag:      "beach",
			expected: false,
		},
		{
			name:     "match is exact, not substring",
			tags:     []string{"beachfront"},
			tag:      "beach",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entity{Tags: tt.tags}
			assert.Equal(t, tt.expected, e.HasTag(tt.tag))
		})
	}
}

func TestEntity_Clone(t *testing.T) {
	confirmedAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	original := Entity{
		ID:              "e1",
		Tags:            []string{"beach"},
		WorkHours:       WeekSchedule{Monday: {Open: "09:00", Close: "17:00"}},
		LastConfirmedAt: &confirmedAt,
	}

	clone := original.Clone()
	clone.Tags[0] = "mutated"
	clone.WorkHours[Monday] = DayHours{Closed: true}
	*clone.LastConfirmedAt = confirmedAt.Add(time.Hour)

	assert.Equal(t, "beach", original.Tags[0])
	assert.Equal(t, "09:00", original.WorkHours[Monday].Open)
	assert.Equal(t, confirmedAt, *original.LastConfirmedAt)
}

func TestEntityUpdate_ApplyTo(t *testing.T) {
	e := Entity{
		Type:   "restaurant",
		Area:   "center",
		Title:  "Old",
		Rating: 4.0,
		Status: StatusActive,
	}

	title := "New"
	rating := 4.5
	status := StatusArchived
	update := EntityUpdate{
		Title:  &title,
		Rating: &rating,
		Status: &status,
	}
	update.ApplyTo(&e)

	assert.Equal(t, "New", e.Title)
	assert.Equal(t, 4.5, e.Rating)
	assert.Equal(t, StatusArchived, e.Status)
	assert.Equal(t, "restaurant", e.Type, "nil fields stay unchanged")
	assert.Equal(t, "center", e.Area)
}

func TestEntityStatus_IsValid(t *testing.T) {
	for _, s := range []EntityStatus{StatusActive, StatusUnverified, StatusFlagged, StatusArchived} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, EntityStatus("deleted").IsValid())
	assert.False(t, EntityStatus("").IsValid())
}

func TestWeekdayFromTime(t *testing.T) {
	tests := []struct {
		in       time.Weekday
		expected Weekday
	}{
		{time.Monday, Monday},
		{time.Wednesday, Wednesday},
		{time.Saturday, Saturday},
		{time.Sunday, Sunday},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, WeekdayFromTime(tt.in))
	}
}

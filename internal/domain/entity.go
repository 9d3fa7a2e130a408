package domain

import "time"

// EntityStatus - lifecycle status of a directory entity
type EntityStatus string

const (
	StatusActive     EntityStatus = "active"
	StatusUnverified EntityStatus = "unverified"
	StatusFlagged    EntityStatus = "flagged"
	// StatusArchived is terminal: archived entities are excluded from
	// default listings and are never physically removed.
	StatusArchived EntityStatus = "archived"
)

// IsValid reports whether the status is one of the known values.
func (s EntityStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusUnverified, StatusFlagged, StatusArchived:
		return true
	}
	return false
}

// Entity represents a listed place or activity in the directory
type Entity struct {
	ID               string        `json:"id"`
	Type             string        `json:"type"`
	Area             string        `json:"area"`
	Tags             []string      `json:"tags,omitempty"`
	Title            string        `json:"title"`
	ShortDescription string        `json:"short_description"`
	Rating           float64       `json:"rating"`
	RatingCount      int           `json:"rating_count"`
	Status           EntityStatus  `json:"status"`
	WorkHours        WeekSchedule  `json:"work_hours,omitempty"`
	LastConfirmedAt  *time.Time    `json:"last_confirmed_at,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// HasTag reports whether the entity carries the given tag.
func (e *Entity) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the entity. Snapshots handed out by the
// store must not share mutable state with the live record.
func (e *Entity) Clone() Entity {
	c := *e
	if e.Tags != nil {
		c.Tags = make([]string, len(e.Tags))
		copy(c.Tags, e.Tags)
	}
	if e.WorkHours != nil {
		c.WorkHours = make(WeekSchedule, len(e.WorkHours))
		for day, hours := range e.WorkHours {
			c.WorkHours[day] = hours
		}
	}
	if e.LastConfirmedAt != nil {
		t := *e.LastConfirmedAt
		c.LastConfirmedAt = &t
	}
	return c
}

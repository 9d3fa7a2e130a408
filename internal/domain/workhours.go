package domain

import "time"

// Weekday - schedule key, lower-case english day name
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// WeekOrder lists the seven days in display order, week starts on Monday.
var WeekOrder = [7]Weekday{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

// WeekdayFromTime maps time.Weekday onto the schedule key.
func WeekdayFromTime(d time.Weekday) Weekday {
	switch d {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// DayHours describes one day of a weekly schedule: either closed for the
// whole day or open between two "HH:MM" local times.
type DayHours struct {
	Closed bool   `json:"closed,omitempty"`
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
}

// WeekSchedule maps weekdays to their opening hours. A nil or empty map
// means the entity has no schedule at all. Days absent from the map count
// as closed.
type WeekSchedule map[Weekday]DayHours

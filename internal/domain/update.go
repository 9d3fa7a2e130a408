package domain

// EntityUpdate enumerates the fields a partial update may touch. Nil
// means "leave unchanged". There is deliberately no way to update id,
// created_at, updated_at or last_confirmed_at through this type.
type EntityUpdate struct {
	Type             *string       `json:"type,omitempty"`
	Area             *string       `json:"area,omitempty"`
	Tags             *[]string     `json:"tags,omitempty"`
	Title            *string       `json:"title,omitempty"`
	ShortDescription *string       `json:"short_description,omitempty"`
	Rating           *float64      `json:"rating,omitempty"`
	RatingCount      *int          `json:"rating_count,omitempty"`
	Status           *EntityStatus `json:"status,omitempty"`
	WorkHours        *WeekSchedule `json:"work_hours,omitempty"`
}

// ApplyTo merges the populated fields into the entity.
func (u *EntityUpdate) ApplyTo(e *Entity) {
	if u.Type != nil {
		e.Type = *u.Type
	}
	if u.Area != nil {
		e.Area = *u.Area
	}
	if u.Tags != nil {
		e.Tags = *u.Tags
	}
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.ShortDescription != nil {
		e.ShortDescription = *u.ShortDescription
	}
	if u.Rating != nil {
		e.Rating = *u.Rating
	}
	if u.RatingCount != nil {
		e.RatingCount = *u.RatingCount
	}
	if u.Status != nil {
		e.Status = *u.Status
	}
	if u.WorkHours != nil {
		e.WorkHours = *u.WorkHours
	}
}

package dto

import "github.com/directory-microservice/internal/domain"

// CreateEntityRequest - payload for creating a directory entity. The
// store assigns id and timestamps itself.
type CreateEntityRequest struct {
	Type             string              `json:"type" validate:"required"`
	Area             string              `json:"area" validate:"required"`
	Tags             []string            `json:"tags,omitempty" validate:"omitempty,dive,min=1"`
	Title            string              `json:"title" validate:"required,min=2"`
	ShortDescription string              `json:"short_description,omitempty"`
	Rating           float64             `json:"rating" validate:"min=0,max=5"`
	RatingCount      int                 `json:"rating_count" validate:"min=0"`
	Status           string              `json:"status,omitempty" validate:"omitempty,oneof=active unverified flagged archived"`
	WorkHours        domain.WeekSchedule `json:"work_hours,omitempty"`
}

// ToEntity converts the request into an entity awaiting id/timestamps.
func (r *CreateEntityRequest) ToEntity() domain.Entity {
	return domain.Entity{
		Type:             r.Type,
		Area:             r.Area,
		Tags:             r.Tags,
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Rating:           r.Rating,
		RatingCount:      r.RatingCount,
		Status:           domain.EntityStatus(r.Status),
		WorkHours:        r.WorkHours,
	}
}

// UpdateEntityRequest - partial update payload. Nil fields stay
// unchanged; unknown JSON keys are rejected at decode time.
type UpdateEntityRequest struct {
	Type             *string              `json:"type,omitempty" validate:"omitempty,min=1"`
	Area             *string              `json:"area,omitempty" validate:"omitempty,min=1"`
	Tags             *[]string            `json:"tags,omitempty" validate:"omitempty,dive,min=1"`
	Title            *string              `json:"title,omitempty" validate:"omitempty,min=2"`
	ShortDescription *string              `json:"short_description,omitempty"`
	Rating           *float64             `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	RatingCount      *int                 `json:"rating_count,omitempty" validate:"omitempty,min=0"`
	Status           *string              `json:"status,omitempty" validate:"omitempty,oneof=active unverified flagged archived"`
	WorkHours        *domain.WeekSchedule `json:"work_hours,omitempty"`
}

// ToUpdate converts the request into the domain-level merge type.
func (r *UpdateEntityRequest) ToUpdate() domain.EntityUpdate {
	update := domain.EntityUpdate{
		Type:             r.Type,
		Area:             r.Area,
		Tags:             r.Tags,
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Rating:           r.Rating,
		RatingCount:      r.RatingCount,
		WorkHours:        r.WorkHours,
	}
	if r.Status != nil {
		status := domain.EntityStatus(*r.Status)
		update.Status = &status
	}
	return update
}

// QueryRequest - filter parameters for entity listings. All filters are
// optional and permissive: unmatched values yield empty results, never
// errors.
type QueryRequest struct {
	Type    string   `json:"type,omitempty"`
	Area    string   `json:"area,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	Search  string   `json:"search,omitempty"`
	Status  string   `json:"status,omitempty" validate:"omitempty,oneof=active unverified flagged archived"`
	Limit   int      `json:"limit,omitempty" validate:"omitempty,min=1"`
	Popular bool     `json:"popular,omitempty"`
}

// AddSignalRequest - payload for appending a trust signal. The type set
// is open; only "confirm" carries a side effect.
type AddSignalRequest struct {
	EntityID string  `json:"entity_id" validate:"required"`
	Type     string  `json:"type" validate:"required,min=1"`
	Note     *string `json:"note,omitempty"`
}

package dto

import "github.com/directory-microservice/internal/domain"

// EntityListResponse - ordered entity listing plus total count.
type EntityListResponse struct {
	Entities []domain.Entity `json:"entities"`
	Total    int             `json:"total"`
}

// SignalListResponse - signal listing plus total count.
type SignalListResponse struct {
	Signals []domain.Signal `json:"signals"`
	Total   int             `json:"total"`
}

// GuideListResponse - guide listing plus total count.
type GuideListResponse struct {
	Guides []domain.Guide `json:"guides"`
	Total  int            `json:"total"`
}

// WorkHoursResponse - open/closed verdict plus the formatted week.
type WorkHoursResponse struct {
	Status string   `json:"status"`
	Week   []string `json:"week"`
}

// DistinctValuesResponse - sorted distinct values of a single field.
type DistinctValuesResponse struct {
	Values []string `json:"values"`
	Total  int      `json:"total"`
}

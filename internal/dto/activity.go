package dto

import (
	"time"

	"github.com/openshelf/library_circulation_app/internal/core/domain"
)

// CreateActivityRequest defines the data needed to record a borrower activity.
type CreateActivityRequest struct {
	RegistrationNumber string `json:"registrationNumber" binding:"required"`
	Name               string `json:"name" binding:"required"`
	Activity           string `json:"activity" binding:"required"`
}

// ActivityResponse defines the data returned for an activity log entry.
type ActivityResponse struct {
	EntryID            string    `json:"entryID"`
	RegistrationNumber string    `json:"registrationNumber"`
	Name               string    `json:"name"`
	Activity           string    `json:"activity"`
	LoggedAt           time.Time `json:"loggedAt"`
}

// ToActivityResponse converts a domain.ActivityEntry to an ActivityResponse DTO.
func ToActivityResponse(e *domain.ActivityEntry) ActivityResponse {
	return ActivityResponse{
		EntryID:            e.EntryID,
		RegistrationNumber: e.RegistrationNumber,
		Name:               e.Name,
		Activity:           e.Activity,
		LoggedAt:           e.LoggedAt,
	}
}

// ToListActivityResponse converts a slice of entries to DTOs.
func ToListActivityResponse(entries []domain.ActivityEntry) []ActivityResponse {
	res := make([]ActivityResponse, len(entries))
	for i, e := range entries {
		res[i] = ToActivityResponse(&e)
	}
	return res
}

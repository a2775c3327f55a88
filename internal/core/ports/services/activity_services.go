package services

import (
	"context"

	"github.com/openshelf/library_circulation_app/internal/core/domain"
	"github.com/openshelf/library_circulation_app/internal/dto"
)

// ActivitySvcFacade manages the free-text borrower activity log.
type ActivitySvcFacade interface {
	// Append records a new activity entry.
	Append(ctx context.Context, req dto.CreateActivityRequest) (*domain.ActivityEntry, error)

	// ListAll retrieves all entries in chronological order.
	ListAll(ctx context.Context) ([]domain.ActivityEntry, error)

	// DeleteByRegistrationNumber removes every entry for a registration number.
	DeleteByRegistrationNumber(ctx context.Context, registrationNumber string) (int64, error)
}

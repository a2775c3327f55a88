package repositories

import (
	"context"

	"github.com/openshelf/library_circulation_app/internal/core/domain"
)

// ActivityRepository defines operations for the append-only activity log.
type ActivityRepository interface {
	// SaveEntry appends an activity entry.
	SaveEntry(ctx context.Context, entry domain.ActivityEntry) error

	// ListEntries retrieves all entries in chronological order.
	ListEntries(ctx context.Context) ([]domain.ActivityEntry, error)

	// DeleteEntriesByRegistrationNumber removes every entry recorded for the
	// given registration number and returns how many were removed.
	DeleteEntriesByRegistrationNumber(ctx context.Context, registrationNumber string) (int64, error)
}

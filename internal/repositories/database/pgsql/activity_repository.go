package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openshelf/library_circulation_app/internal/core/domain"
	portsrepo "github.com/openshelf/library_circulation_app/internal/core/ports/repositories"
	"github.com/openshelf/library_circulation_app/internal/models"
)

type PgxActivityRepository struct {
	BaseRepository
}

// newPgxActivityRepository creates a new repository for the activity log.
func newPgxActivityRepository(pool *pgxpool.Pool) portsrepo.ActivityRepository {
	return &PgxActivityRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxActivityRepository implements portsrepo.ActivityRepository
var _ portsrepo.ActivityRepository = (*PgxActivityRepository)(nil)

func toDomainActivityEntry(m models.ActivityEntry) domain.ActivityEntry {
	return domain.ActivityEntry{
		EntryID:            m.EntryID,
		RegistrationNumber: m.RegistrationNumber,
		Name:               m.Name,
		Activity:           m.Activity,
		LoggedAt:           m.LoggedAt,
	}
}

// SaveEntry appends an activity entry.
func (r *PgxActivityRepository) SaveEntry(ctx context.Context, entry domain.ActivityEntry) error {
	query := `
		INSERT INTO activity_log (entry_id, registration_no, name, activity, logged_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.EntryID,
		entry.RegistrationNumber,
		entry.Name,
		entry.Activity,
		entry.LoggedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save activity entry for %s: %w", entry.RegistrationNumber, err)
	}
	return nil
}

// ListEntries retrieves all activity entries in chronological order.
func (r *PgxActivityRepository) ListEntries(ctx context.Context) ([]domain.ActivityEntry, error) {
	query := `
		SELECT entry_id, registration_no, name, activity, logged_at
		FROM activity_log
		ORDER BY logged_at, entry_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity log: %w", err)
	}
	defer rows.Close()

	entries := []domain.ActivityEntry{}
	for rows.Next() {
		var m models.ActivityEntry
		if err := rows.Scan(&m.EntryID, &m.RegistrationNumber, &m.Name, &m.Activity, &m.LoggedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		entries = append(entries, toDomainActivityEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return entries, nil
}

// DeleteEntriesByRegistrationNumber removes all entries for a registration number.
func (r *PgxActivityRepository) DeleteEntriesByRegistrationNumber(ctx context.Context, registrationNumber string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM activity_log WHERE registration_no = $1;`, registrationNumber)
	if err != nil {
		return 0, fmt.Errorf("failed to delete activity entries for %s: %w", registrationNumber, err)
	}
	return tag.RowsAffected(), nil
}

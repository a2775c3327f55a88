package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/openshelf/library_circulation_app/internal/apperrors"
	"github.com/openshelf/library_circulation_app/internal/core/domain"
	portsrepo "github.com/openshelf/library_circulation_app/internal/core/ports/repositories"
	portssvc "github.com/openshelf/library_circulation_app/internal/core/ports/services"
	"github.com/openshelf/library_circulation_app/internal/dto"
)

// activityServiceImpl implements the ActivitySvcFacade interface. The log is
// bookkeeping only and never participates in circulation invariants.
type activityServiceImpl struct {
	BaseService
	activityRepo portsrepo.ActivityRepository
	clock        Clock
}

// ActivityOption is a functional option for configuring the activity service.
type ActivityOption func(*activityServiceImpl)

// WithActivityClock overrides the wall clock used for entry timestamps.
func WithActivityClock(c Clock) ActivityOption {
	return func(s *activityServiceImpl) {
		s.clock = c
	}
}

// NewActivityService creates the borrower activity log service.
func NewActivityService(repo portsrepo.ActivityRepository, options ...ActivityOption) portssvc.ActivitySvcFacade {
	svc := &activityServiceImpl{
		activityRepo: repo,
		clock:        realClock{},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure activityServiceImpl implements the ActivitySvcFacade interface
var _ portssvc.ActivitySvcFacade = (*activityServiceImpl)(nil)

func (s *activityServiceImpl) Append(ctx context.Context, req dto.CreateActivityRequest) (*domain.ActivityEntry, error) {
	switch {
	case strings.TrimSpace(req.RegistrationNumber) == "":
		return nil, fmt.Errorf("%w: registration number must not be empty", apperrors.ErrValidation)
	case strings.TrimSpace(req.Name) == "":
		return nil, fmt.Errorf("%w: name must not be empty", apperrors.ErrValidation)
	case strings.TrimSpace(req.Activity) == "":
		return nil, fmt.Errorf("%w: activity must not be empty", apperrors.ErrValidation)
	}

	entry := domain.ActivityEntry{
		EntryID:            uuid.NewString(),
		RegistrationNumber: strings.TrimSpace(req.RegistrationNumber),
		Name:               strings.TrimSpace(req.Name),
		Activity:           strings.TrimSpace(req.Activity),
		LoggedAt:           s.clock.Now().UTC(),
	}

	if err := s.activityRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save activity entry", slog.String("registration_number", entry.RegistrationNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Activity logged",
		slog.String("registration_number", entry.RegistrationNumber),
		slog.String("activity", entry.Activity))
	return &entry, nil
}

func (s *activityServiceImpl) ListAll(ctx context.Context) ([]domain.ActivityEntry, error) {
	entries, err := s.activityRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list activity entries")
		return nil, err
	}
	return entries, nil
}

func (s *activityServiceImpl) DeleteByRegistrationNumber(ctx context.Context, registrationNumber string) (int64, error) {
	if strings.TrimSpace(registrationNumber) == "" {
		return 0, fmt.Errorf("%w: registration number must not be empty", apperrors.ErrValidation)
	}

	deleted, err := s.activityRepo.DeleteEntriesByRegistrationNumber(ctx, registrationNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete activity entries", slog.String("registration_number", registrationNumber))
		return 0, err
	}

	s.LogInfo(ctx, "Activity entries deleted",
		slog.String("registration_number", registrationNumber),
		slog.Int64("deleted", deleted))
	return deleted, nil
}

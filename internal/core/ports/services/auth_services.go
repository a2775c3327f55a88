package services

import (
	"context"
	"time"
)

// AuthSvcFacade is the capability gate for privileged commands. The
// circulation core never sees credentials; it only runs behind routes this
// service has admitted.
type AuthSvcFacade interface {
	// Login validates the admin credential pair and returns a signed access
	// token with its expiry. Returns apperrors.ErrUnauthorized on mismatch.
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}

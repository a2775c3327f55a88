package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/openshelf/library_circulation_app/internal/apperrors"
	portssvc "github.com/openshelf/library_circulation_app/internal/core/ports/services"
	"github.com/openshelf/library_circulation_app/internal/utils"
	"github.com/openshelf/library_circulation_app/pkg/config"
)

// authServiceImpl implements the AuthSvcFacade interface. The admin
// credential pair is injected through configuration; nothing is hard-coded
// and the circulation services never see it.
type authServiceImpl struct {
	BaseService
	cfg   *config.Config
	clock Clock
}

// AuthOption is a functional option for configuring the auth service.
type AuthOption func(*authServiceImpl)

// WithAuthClock overrides the wall clock used for token timestamps.
func WithAuthClock(c Clock) AuthOption {
	return func(s *authServiceImpl) {
		s.clock = c
	}
}

// NewAuthService creates the admin authentication service.
func NewAuthService(cfg *config.Config, options ...AuthOption) portssvc.AuthSvcFacade {
	svc := &authServiceImpl{
		cfg:   cfg,
		clock: realClock{},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure authServiceImpl implements the AuthSvcFacade interface
var _ portssvc.AuthSvcFacade = (*authServiceImpl)(nil)

func (s *authServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if !s.credentialsValid(username, password) {
		s.LogWarn(ctx, "Admin login rejected")
		return "", time.Time{}, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}

	now := s.clock.Now()
	expiresAt := now.Add(s.cfg.JWTExpiryDuration)
	claims := jwt.RegisteredClaims{
		Subject:   username,
		Issuer:    s.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	s.LogInfo(ctx, "Admin login accepted")
	return signed, expiresAt, nil
}

func (s *authServiceImpl) credentialsValid(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) != 1 {
		return false
	}
	if s.cfg.AdminPasswordHash != "" {
		return utils.CheckPasswordHash(password, s.cfg.AdminPasswordHash)
	}
	if s.cfg.AdminPassword != "" {
		return subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
	}
	return false
}

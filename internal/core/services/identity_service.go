package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/maooe/finance_control_app/internal/apperrors"
	"github.com/maooe/finance_control_app/internal/core/domain"
	portsrepo "github.com/maooe/finance_control_app/internal/core/ports/repositories"
	portssvc "github.com/maooe/finance_control_app/internal/core/ports/services"
	"github.com/maooe/finance_control_app/pkg/config"
)

// identityService implements the IdentitySvcFacade: the authentication gate
// with its three ways in (provider, offline, guest) and one way out.
type identityService struct {
	BaseService
	cfg      *config.Config
	oauth    portssvc.GoogleOAuthSvcFacade
	sessions portsrepo.SessionRepository
}

// IdentityServiceOption is a functional option for configuring the identity service
type IdentityServiceOption func(*identityService)

// WithGoogleOAuth wires the provider adapter. Deployments without Google
// credentials leave this nil and only offer offline/guest modes.
func WithGoogleOAuth(oauth portssvc.GoogleOAuthSvcFacade) IdentityServiceOption {
	return func(s *identityService) {
		s.oauth = oauth
	}
}

// NewIdentityService creates a new authentication gate.
func NewIdentityService(cfg *config.Config, sessions portsrepo.SessionRepository, options ...IdentityServiceOption) portssvc.IdentitySvcFacade {
	svc := &identityService{
		cfg:      cfg,
		sessions: sessions,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure identityService implements the IdentitySvcFacade interface
var _ portssvc.IdentitySvcFacade = (*identityService)(nil)

func (s *identityService) ExchangeGoogleCode(ctx context.Context, code string) (*domain.Identity, error) {
	if s.oauth == nil || !s.cfg.GoogleConfigured() {
		return nil, fmt.Errorf("identity provider not configured: %w", apperrors.ErrValidation)
	}
	if code == "" {
		return nil, fmt.Errorf("authorization code is required: %w", apperrors.ErrValidation)
	}

	profile, err := s.oauth.ExchangeCode(ctx, code)
	if err != nil {
		s.LogWarn(ctx, "Provider code exchange failed", slog.String("error", err.Error()))
		return nil, err
	}

	identity := domain.Identity{
		UserID:         uuid.NewString(),
		Name:           profile.Name,
		Email:          profile.Email,
		AvatarURL:      profile.AvatarURL,
		Mode:           domain.AuthModeProvider,
		Provider:       domain.ProviderGoogle,
		ProviderUserID: profile.Subject,
	}

	// Keep a stable user id across sign-ins of the same provider account.
	if existing, err := s.sessions.LoadSession(ctx); err == nil && existing.ProviderUserID == profile.Subject {
		identity.UserID = existing.UserID
	}

	if err := s.sessions.SaveSession(ctx, identity); err != nil {
		s.LogError(ctx, err, "Failed to persist provider session")
		return nil, err
	}

	s.LogInfo(ctx, "Provider sign-in completed", slog.String("user_id", identity.UserID), slog.String("email", identity.Email))
	return &identity, nil
}

func (s *identityService) OfflineSignIn(ctx context.Context) (*domain.Identity, error) {
	// Offline mode exists for deployments without a provider; when Google
	// is configured the real flow must be used instead.
	if s.cfg.GoogleConfigured() {
		return nil, fmt.Errorf("identity provider is configured, offline mode unavailable: %w", apperrors.ErrValidation)
	}

	identity := domain.Identity{
		UserID: "local-user",
		Name:   domain.OfflineName,
		Email:  domain.OfflineEmail,
		Mode:   domain.AuthModeOffline,
	}

	if err := s.sessions.SaveSession(ctx, identity); err != nil {
		s.LogError(ctx, err, "Failed to persist offline session")
		return nil, err
	}

	s.LogInfo(ctx, "Offline sign-in completed", slog.String("user_id", identity.UserID))
	return &identity, nil
}

func (s *identityService) GuestSignIn(ctx context.Context) (*domain.Identity, error) {
	identity := domain.Identity{
		UserID: "guest",
		Name:   domain.GuestName,
		Email:  domain.GuestEmail,
		Mode:   domain.AuthModeGuest,
	}

	if err := s.sessions.SaveSession(ctx, identity); err != nil {
		s.LogError(ctx, err, "Failed to persist guest session")
		return nil, err
	}

	s.LogInfo(ctx, "Guest sign-in completed")
	return &identity, nil
}

func (s *identityService) RestoreSession(ctx context.Context, userID string) (*domain.Identity, error) {
	identity, err := s.sessions.LoadSession(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to load persisted session")
		return nil, err
	}

	// A token minted for a different identity does not restore this session.
	if identity.UserID != userID {
		return nil, apperrors.ErrUnauthorized
	}

	return identity, nil
}

func (s *identityService) SignOut(ctx context.Context, userID string) error {
	identity, err := s.sessions.LoadSession(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Already signed out; nothing to clear.
			return nil
		}
		return err
	}
	if identity.UserID != userID {
		return apperrors.ErrUnauthorized
	}

	if err := s.sessions.ClearSession(ctx); err != nil {
		s.LogError(ctx, err, "Failed to clear session")
		return err
	}

	s.LogInfo(ctx, "Signed out", slog.String("user_id", userID), slog.String("mode", string(identity.Mode)))
	return nil
}

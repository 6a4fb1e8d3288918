package services

import (
	"context"
	"time"

	"github.com/maooe/finance_control_app/internal/core/domain"
)

// TokenSvcFacade mints and validates the application session JWTs handed to
// every signed-in identity, pseudo or provider-backed.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, identity *domain.Identity) (string, time.Time, error)
	ValidateAccessToken(ctx context.Context, tokenString string) (string, error)
}

// GoogleOAuthSvcFacade finishes the provider redirect flow: it exchanges an
// authorization code and returns the validated profile claims.
type GoogleOAuthSvcFacade interface {
	ExchangeCode(ctx context.Context, code string) (*domain.ProviderProfile, error)
}

// IdentitySvcFacade is the authentication gate. It owns the three sign-in
// transitions out of SignedOut, sign-out back to it, and session restore.
type IdentitySvcFacade interface {
	// ExchangeGoogleCode completes the provider redirect flow: exchanges the
	// authorization code, validates the ID token and derives the identity.
	ExchangeGoogleCode(ctx context.Context, code string) (*domain.Identity, error)

	// OfflineSignIn fabricates the local pseudo-identity. It refuses with
	// apperrors.ErrValidation when the provider is configured for this
	// deployment; offline mode exists for provider-less installs only.
	OfflineSignIn(ctx context.Context) (*domain.Identity, error)

	// GuestSignIn fabricates the low-trust guest pseudo-identity. Always
	// available, regardless of provider configuration.
	GuestSignIn(ctx context.Context) (*domain.Identity, error)

	// RestoreSession returns the persisted identity for userID, or
	// apperrors.ErrUnauthorized when none exists (signed out).
	RestoreSession(ctx context.Context, userID string) (*domain.Identity, error)

	// SignOut clears the persisted session so the next restore yields
	// signed-out. Pseudo-identities clear the same way, just without a
	// provider call.
	SignOut(ctx context.Context, userID string) error
}

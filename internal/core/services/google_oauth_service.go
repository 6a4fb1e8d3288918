package services

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/maooe/finance_control_app/internal/apperrors"
	"github.com/maooe/finance_control_app/internal/core/domain"
	portssvc "github.com/maooe/finance_control_app/internal/core/ports/services"
	"github.com/maooe/finance_control_app/pkg/config"
)

// googleOAuthService implements the GoogleOAuthSvcFacade: it finishes the
// provider redirect flow by exchanging the authorization code and validating
// the ID token Google returns.
type googleOAuthService struct {
	BaseService
	oauthCfg *oauth2.Config
	clientID string
}

// NewGoogleOAuthService creates the provider adapter from configuration.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		oauthCfg: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		clientID: cfg.GoogleClientID,
	}
}

// Ensure googleOAuthService implements the GoogleOAuthSvcFacade interface
var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

// ExchangeCode swaps the authorization code for tokens and returns the
// validated profile claims from the ID token.
func (s *googleOAuthService) ExchangeCode(ctx context.Context, code string) (*domain.ProviderProfile, error) {
	token, err := s.oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	idTokenString, ok := token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		return nil, fmt.Errorf("id token missing from provider response: %w", apperrors.ErrUnauthorized)
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("invalid provider id token: %w", apperrors.ErrUnauthorized)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)

	if email == "" || payload.Subject == "" {
		return nil, fmt.Errorf("essential claims missing from provider token: %w", apperrors.ErrUnauthorized)
	}

	return &domain.ProviderProfile{
		Subject:       payload.Subject,
		Email:         email,
		Name:          name,
		AvatarURL:     picture,
		EmailVerified: emailVerified,
	}, nil
}

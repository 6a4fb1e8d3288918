package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maooe/finance_control_app/internal/apperrors"
	"github.com/maooe/finance_control_app/internal/core/domain"
	"github.com/maooe/finance_control_app/internal/core/services"
	"github.com/maooe/finance_control_app/pkg/config"
)

func tokenTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "maooe-finance-app",
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := services.NewTokenService(tokenTestConfig())
	ctx := context.Background()

	identity := &domain.Identity{UserID: "local-user", Mode: domain.AuthModeOffline}

	token, expiresAt, err := svc.GenerateAccessToken(ctx, identity)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	userID, err := svc.ValidateAccessToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "local-user", userID)
}

func TestTokenService_RejectsTamperedToken(t *testing.T) {
	svc := services.NewTokenService(tokenTestConfig())
	ctx := context.Background()

	token, _, err := svc.GenerateAccessToken(ctx, &domain.Identity{UserID: "guest"})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(ctx, token+"x")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestTokenService_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	ctx := context.Background()

	minting := services.NewTokenService(&config.Config{JWTSecret: "other", JWTExpiryDuration: time.Hour, JWTIssuer: "maooe-finance-app"})
	token, _, err := minting.GenerateAccessToken(ctx, &domain.Identity{UserID: "guest"})
	require.NoError(t, err)

	validating := services.NewTokenService(tokenTestConfig())
	_, err = validating.ValidateAccessToken(ctx, token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

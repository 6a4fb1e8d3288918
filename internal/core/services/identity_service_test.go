package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/maooe/finance_control_app/internal/apperrors"
	"github.com/maooe/finance_control_app/internal/core/domain"
	portssvc "github.com/maooe/finance_control_app/internal/core/ports/services"
	"github.com/maooe/finance_control_app/internal/core/services"
	"github.com/maooe/finance_control_app/pkg/config"
)

// MockSessionRepository is a mock type for the SessionRepository interface
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, identity domain.Identity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

func (m *MockSessionRepository) LoadSession(ctx context.Context) (*domain.Identity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

func (m *MockSessionRepository) ClearSession(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockGoogleOAuth is a mock type for the GoogleOAuthSvcFacade interface
type MockGoogleOAuth struct {
	mock.Mock
}

func (m *MockGoogleOAuth) ExchangeCode(ctx context.Context, code string) (*domain.ProviderProfile, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProviderProfile), args.Error(1)
}

// --- Test Suite Setup ---

type IdentityServiceTestSuite struct {
	suite.Suite
	mockSessions *MockSessionRepository
	mockOAuth    *MockGoogleOAuth
}

func (suite *IdentityServiceTestSuite) SetupTest() {
	suite.mockSessions = new(MockSessionRepository)
	suite.mockOAuth = new(MockGoogleOAuth)
}

// newGate builds the identity service for a deployment with or without
// Google credentials.
func (suite *IdentityServiceTestSuite) newGate(googleConfigured bool) portssvc.IdentitySvcFacade {
	cfg := &config.Config{}
	if googleConfigured {
		cfg.GoogleClientID = "client-id"
		cfg.GoogleClientSecret = "client-secret"
		cfg.GoogleRedirectURL = "https://app.example/callback"
	}
	return services.NewIdentityService(cfg, suite.mockSessions, services.WithGoogleOAuth(suite.mockOAuth))
}

// --- Test Cases ---

func (suite *IdentityServiceTestSuite) TestOfflineSignIn_ShapesThePseudoIdentity() {
	gate := suite.newGate(false)

	suite.mockSessions.On("SaveSession", mock.Anything, mock.AnythingOfType("domain.Identity")).Return(nil).Once()

	identity, err := gate.OfflineSignIn(context.Background())
	suite.Require().NoError(err)
	suite.Equal("local-user", identity.UserID)
	suite.Equal(domain.OfflineName, identity.Name)
	suite.Equal(domain.OfflineEmail, identity.Email)
	suite.Equal(domain.AuthModeOffline, identity.Mode)
	suite.True(identity.IsPseudo())
	suite.mockSessions.AssertExpectations(suite.T())
}

func (suite *IdentityServiceTestSuite) TestOfflineSignIn_RefusedWhenProviderConfigured() {
	gate := suite.newGate(true)

	_, err := gate.OfflineSignIn(context.Background())
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *IdentityServiceTestSuite) TestGuestSignIn_AlwaysAvailable() {
	gate := suite.newGate(true)

	suite.mockSessions.On("SaveSession", mock.Anything, mock.Anything).Return(nil).Once()

	identity, err := gate.GuestSignIn(context.Background())
	suite.Require().NoError(err)
	suite.Equal("guest", identity.UserID)
	suite.Equal(domain.GuestName, identity.Name)
	suite.Equal(domain.AuthModeGuest, identity.Mode)
	suite.True(identity.IsPseudo())
}

func (suite *IdentityServiceTestSuite) TestExchangeGoogleCode_KeepsStableUserID() {
	gate := suite.newGate(true)
	ctx := context.Background()

	existing := &domain.Identity{
		UserID:         "stable-id",
		Mode:           domain.AuthModeProvider,
		Provider:       domain.ProviderGoogle,
		ProviderUserID: "google-sub-1",
	}
	profile := &domain.ProviderProfile{
		Subject: "google-sub-1",
		Email:   "user@example.com",
		Name:    "User",
	}

	suite.mockOAuth.On("ExchangeCode", ctx, "auth-code").Return(profile, nil).Once()
	suite.mockSessions.On("LoadSession", ctx).Return(existing, nil).Once()
	suite.mockSessions.On("SaveSession", ctx, mock.Anything).Return(nil).Once()

	identity, err := gate.ExchangeGoogleCode(ctx, "auth-code")
	suite.Require().NoError(err)
	// Re-signing in with the same Google account keeps the same user id.
	suite.Equal("stable-id", identity.UserID)
	suite.Equal(domain.AuthModeProvider, identity.Mode)
	suite.False(identity.IsPseudo())
	suite.mockOAuth.AssertExpectations(suite.T())
}

func (suite *IdentityServiceTestSuite) TestExchangeGoogleCode_RefusedWhenNotConfigured() {
	gate := suite.newGate(false)

	_, err := gate.ExchangeGoogleCode(context.Background(), "auth-code")
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *IdentityServiceTestSuite) TestRestoreSession_NoSessionIsUnauthorized() {
	gate := suite.newGate(false)

	suite.mockSessions.On("LoadSession", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	_, err := gate.RestoreSession(context.Background(), "local-user")
	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *IdentityServiceTestSuite) TestRestoreSession_MismatchedUserIsUnauthorized() {
	gate := suite.newGate(false)

	persisted := &domain.Identity{UserID: "guest", Mode: domain.AuthModeGuest}
	suite.mockSessions.On("LoadSession", mock.Anything).Return(persisted, nil).Once()

	_, err := gate.RestoreSession(context.Background(), "local-user")
	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *IdentityServiceTestSuite) TestSignOut_ClearsPersistedSession() {
	gate := suite.newGate(false)
	ctx := context.Background()

	persisted := &domain.Identity{UserID: "local-user", Mode: domain.AuthModeOffline}
	suite.mockSessions.On("LoadSession", ctx).Return(persisted, nil).Once()
	suite.mockSessions.On("ClearSession", ctx).Return(nil).Once()

	suite.Require().NoError(gate.SignOut(ctx, "local-user"))
	suite.mockSessions.AssertExpectations(suite.T())
}

func (suite *IdentityServiceTestSuite) TestSignOut_AlreadySignedOutIsFine() {
	gate := suite.newGate(false)

	suite.mockSessions.On("LoadSession", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	suite.Require().NoError(gate.SignOut(context.Background(), "local-user"))
}

func TestIdentityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityServiceTestSuite))
}

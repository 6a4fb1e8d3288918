package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/maooe/finance_control_app/internal/adapters/database/sqlite"
	"github.com/maooe/finance_control_app/internal/apperrors"
	"github.com/maooe/finance_control_app/internal/core/domain"
	"github.com/maooe/finance_control_app/pkg/database"
)

// The suite runs against a real database file so the bootstrap DDL and the
// upsert path are exercised, not mocked.
type StateRepositoryTestSuite struct {
	suite.Suite
	repo *sqlite.StateRepository
}

func (suite *StateRepositoryTestSuite) SetupTest() {
	db, err := database.NewSQLiteDB(filepath.Join(suite.T().TempDir(), "state.db"))
	require.NoError(suite.T(), err)
	suite.T().Cleanup(func() { _ = db.Close() })

	suite.repo = sqlite.NewStateRepository(db)
}

// --- Test Cases ---

func (suite *StateRepositoryTestSuite) TestAccounts_RoundTrip() {
	ctx := context.Background()

	accounts := []domain.Account{
		{
			AccountID:   "a1",
			Description: "Aluguel",
			Type:        domain.AccountTypePersonal,
			PaymentDate: "2026-02-01",
			Status:      domain.AccountStatusOnTime,
			Value:       decimal.RequireFromString("1500.00"),
		},
	}
	suite.Require().NoError(suite.repo.SaveAccounts(ctx, accounts))

	loaded, err := suite.repo.LoadAccounts(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(loaded, 1)
	suite.Equal("Aluguel", loaded[0].Description)
	suite.True(loaded[0].Value.Equal(decimal.RequireFromString("1500.00")))
}

func (suite *StateRepositoryTestSuite) TestLoad_MissingKeysReturnEmptySlices() {
	ctx := context.Background()

	accounts, err := suite.repo.LoadAccounts(ctx)
	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)

	notes, err := suite.repo.LoadNotes(ctx)
	suite.Require().NoError(err)
	suite.Empty(notes)
}

func (suite *StateRepositoryTestSuite) TestSave_OverwritesPreviousValue() {
	ctx := context.Background()

	suite.Require().NoError(suite.repo.SaveNotes(ctx, []domain.Note{{NoteID: "n1", Content: "primeira"}}))
	suite.Require().NoError(suite.repo.SaveNotes(ctx, []domain.Note{{NoteID: "n2", Content: "segunda"}}))

	notes, err := suite.repo.LoadNotes(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(notes, 1)
	suite.Equal("n2", notes[0].NoteID)
}

func (suite *StateRepositoryTestSuite) TestSaveNilSlice_StoresEmptyCollection() {
	ctx := context.Background()

	suite.Require().NoError(suite.repo.SaveIncomes(ctx, nil))

	incomes, err := suite.repo.LoadIncomes(ctx)
	suite.Require().NoError(err)
	suite.NotNil(incomes)
	suite.Empty(incomes)
}

func (suite *StateRepositoryTestSuite) TestPreferences_RoundTripAndDefaults() {
	ctx := context.Background()

	// Fresh database: defaults come back.
	prefs, err := suite.repo.LoadPreferences(ctx)
	suite.Require().NoError(err)
	suite.Equal(domain.DefaultPreferences(), prefs)

	saved := domain.Preferences{ThemeMode: domain.ThemeParchment, SheetsURL: "https://script.example/exec"}
	suite.Require().NoError(suite.repo.SavePreferences(ctx, saved))

	prefs, err = suite.repo.LoadPreferences(ctx)
	suite.Require().NoError(err)
	suite.Equal(saved, prefs)
}

func (suite *StateRepositoryTestSuite) TestSession_Lifecycle() {
	ctx := context.Background()

	// No session persisted yet.
	_, err := suite.repo.LoadSession(ctx)
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)

	identity := domain.Identity{
		UserID: "local-user",
		Name:   domain.OfflineName,
		Email:  domain.OfflineEmail,
		Mode:   domain.AuthModeOffline,
	}
	suite.Require().NoError(suite.repo.SaveSession(ctx, identity))

	loaded, err := suite.repo.LoadSession(ctx)
	suite.Require().NoError(err)
	suite.Equal(identity, *loaded)

	suite.Require().NoError(suite.repo.ClearSession(ctx))
	_, err = suite.repo.LoadSession(ctx)
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)

	// Clearing twice is harmless.
	suite.Require().NoError(suite.repo.ClearSession(ctx))
}

func TestStateRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StateRepositoryTestSuite))
}

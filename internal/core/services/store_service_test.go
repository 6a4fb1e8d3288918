package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/maooe/finance_control_app/internal/apperrors"
	"github.com/maooe/finance_control_app/internal/core/domain"
	portssvc "github.com/maooe/finance_control_app/internal/core/ports/services"
	"github.com/maooe/finance_control_app/internal/core/services"
)

var errMirror = errors.New("local storage unavailable")

// MockStateRepository is a mock type for the StateRepository interface
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

func (m *MockStateRepository) LoadAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockStateRepository) SaveIncomes(ctx context.Context, incomes []domain.Income) error {
	args := m.Called(ctx, incomes)
	return args.Error(0)
}

func (m *MockStateRepository) LoadIncomes(ctx context.Context) ([]domain.Income, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}

func (m *MockStateRepository) SaveNotes(ctx context.Context, notes []domain.Note) error {
	args := m.Called(ctx, notes)
	return args.Error(0)
}

func (m *MockStateRepository) LoadNotes(ctx context.Context) ([]domain.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Note), args.Error(1)
}

func (m *MockStateRepository) SaveAppointments(ctx context.Context, appointments []domain.Appointment) error {
	args := m.Called(ctx, appointments)
	return args.Error(0)
}

func (m *MockStateRepository) LoadAppointments(ctx context.Context) ([]domain.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Appointment), args.Error(1)
}

func (m *MockStateRepository) SavePreferences(ctx context.Context, prefs domain.Preferences) error {
	args := m.Called(ctx, prefs)
	return args.Error(0)
}

func (m *MockStateRepository) LoadPreferences(ctx context.Context) (domain.Preferences, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Preferences), args.Error(1)
}

// --- Test Suite Setup ---

// mutableStore is the store facade plus the late-wiring seam used by the
// service container.
type mutableStore interface {
	portssvc.StoreSvcFacade
	SetMutationHook(func())
}

type StoreServiceTestSuite struct {
	suite.Suite
	mockRepo *MockStateRepository
	store    mutableStore
}

func (suite *StoreServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockStateRepository)
	suite.store = services.NewStoreService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *StoreServiceTestSuite) TestAddAccount_AssignsIDAndPrepends() {
	ctx := context.Background()

	suite.mockRepo.On("SaveAccounts", ctx, mock.AnythingOfType("[]domain.Account")).Return(nil).Twice()

	first, err := suite.store.AddAccount(ctx, domain.Account{
		Description: "Aluguel",
		Type:        domain.AccountTypePersonal,
		Status:      domain.AccountStatusOnTime,
		Value:       decimal.NewFromInt(1500),
	})
	suite.Require().NoError(err)
	suite.NotEmpty(first.AccountID)

	second, err := suite.store.AddAccount(ctx, domain.Account{
		Description: "Internet",
		Type:        domain.AccountTypeBusiness,
		Status:      domain.AccountStatusPaid,
		Value:       decimal.NewFromInt(120),
	})
	suite.Require().NoError(err)

	accounts := suite.store.ListAccounts(ctx)
	suite.Require().Len(accounts, 2)
	// Most recent entry is first.
	suite.Equal(second.AccountID, accounts[0].AccountID)
	suite.Equal(first.AccountID, accounts[1].AccountID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StoreServiceTestSuite) TestAddAccount_MirrorFailurePropagates() {
	ctx := context.Background()

	suite.mockRepo.On("SaveAccounts", ctx, mock.Anything).Return(errMirror).Once()

	_, err := suite.store.AddAccount(ctx, domain.Account{Description: "Luz"})
	suite.Require().Error(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StoreServiceTestSuite) TestDeleteAccount_UnknownIDIsNoOp() {
	ctx := context.Background()

	// No SaveAccounts expectation: a miss must not touch the mirror.
	err := suite.store.DeleteAccount(ctx, "does-not-exist")
	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StoreServiceTestSuite) TestDeleteAccount_RemovesAndMirrors() {
	ctx := context.Background()

	suite.mockRepo.On("SaveAccounts", ctx, mock.Anything).Return(nil).Twice()

	added, err := suite.store.AddAccount(ctx, domain.Account{Description: "Academia"})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.store.DeleteAccount(ctx, added.AccountID))
	suite.Empty(suite.store.ListAccounts(ctx))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StoreServiceTestSuite) TestUpdateNote_EditsInPlace() {
	ctx := context.Background()

	suite.mockRepo.On("SaveNotes", ctx, mock.Anything).Return(nil).Twice()

	note, err := suite.store.AddNote(ctx, domain.Note{Content: "comprar café", Color: "yellow"})
	suite.Require().NoError(err)

	newContent := "comprar café e filtro"
	updated, err := suite.store.UpdateNote(ctx, note.NoteID, &newContent, nil)
	suite.Require().NoError(err)
	suite.Equal(newContent, updated.Content)
	// Color untouched when not provided.
	suite.Equal("yellow", updated.Color)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StoreServiceTestSuite) TestUpdateNote_UnknownIDIsNotFound() {
	ctx := context.Background()

	content := "whatever"
	_, err := suite.store.UpdateNote(ctx, "missing", &content, nil)
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *StoreServiceTestSuite) TestUpdatePreferences_RejectsUnknownTheme() {
	ctx := context.Background()

	err := suite.store.UpdatePreferences(ctx, domain.Preferences{ThemeMode: "neon"})
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *StoreServiceTestSuite) TestUpdatePreferences_PersistsValidTheme() {
	ctx := context.Background()

	suite.mockRepo.On("SavePreferences", ctx, mock.AnythingOfType("domain.Preferences")).Return(nil).Once()

	err := suite.store.UpdatePreferences(ctx, domain.Preferences{ThemeMode: domain.ThemePride})
	suite.Require().NoError(err)
	suite.Equal(domain.ThemePride, suite.store.GetPreferences(ctx).ThemeMode)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StoreServiceTestSuite) TestImportSnapshot_PartialDocumentOnlyReplacesPresentCollections() {
	ctx := context.Background()

	suite.mockRepo.On("SaveAccounts", ctx, mock.Anything).Return(nil).Once()
	suite.mockRepo.On("SaveNotes", ctx, mock.Anything).Return(nil).Once()

	_, err := suite.store.AddAccount(ctx, domain.Account{Description: "Seguro"})
	suite.Require().NoError(err)

	// Only notes present: accounts must survive untouched.
	raw := []byte(`{"notes":[{"id":"n1","content":"importada","color":"green"}]}`)
	suite.Require().NoError(suite.store.ImportSnapshot(ctx, raw))

	suite.Len(suite.store.ListAccounts(ctx), 1)
	notes := suite.store.ListNotes(ctx)
	suite.Require().Len(notes, 1)
	suite.Equal("importada", notes[0].Content)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StoreServiceTestSuite) TestImportSnapshot_MalformedDocumentAppliesNothing() {
	ctx := context.Background()

	err := suite.store.ImportSnapshot(ctx, []byte(`{"notes": [{]`))
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Empty(suite.store.ListNotes(ctx))
}

func (suite *StoreServiceTestSuite) TestHydrate_LoadsEveryCollection() {
	ctx := context.Background()

	suite.mockRepo.On("LoadAccounts", ctx).Return([]domain.Account{{AccountID: "a1"}}, nil).Once()
	suite.mockRepo.On("LoadIncomes", ctx).Return([]domain.Income{{IncomeID: "i1"}}, nil).Once()
	suite.mockRepo.On("LoadNotes", ctx).Return([]domain.Note{}, nil).Once()
	suite.mockRepo.On("LoadAppointments", ctx).Return([]domain.Appointment{{AppointmentID: "ap1"}}, nil).Once()
	suite.mockRepo.On("LoadPreferences", ctx).Return(domain.Preferences{ThemeMode: domain.ThemeLight}, nil).Once()

	suite.Require().NoError(suite.store.Hydrate(ctx))

	suite.Len(suite.store.ListAccounts(ctx), 1)
	suite.Len(suite.store.ListIncomes(ctx), 1)
	suite.Len(suite.store.ListAppointments(ctx), 1)
	suite.Equal(domain.ThemeLight, suite.store.GetPreferences(ctx).ThemeMode)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StoreServiceTestSuite) TestMutationHook_FiresOnEntityChangesOnly() {
	ctx := context.Background()
	fired := 0
	suite.store.SetMutationHook(func() { fired++ })

	suite.mockRepo.On("SaveNotes", ctx, mock.Anything).Return(nil).Once()
	suite.mockRepo.On("SavePreferences", ctx, mock.Anything).Return(nil).Once()

	_, err := suite.store.AddNote(ctx, domain.Note{Content: "x"})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.store.UpdatePreferences(ctx, domain.Preferences{ThemeMode: domain.ThemeDark}))

	// Preference changes do not arm the remote mirror.
	suite.Equal(1, fired)
}

func TestStoreServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StoreServiceTestSuite))
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/maooe/finance_control_app/internal/apperrors"
	"github.com/maooe/finance_control_app/internal/core/domain"
	portsrepo "github.com/maooe/finance_control_app/internal/core/ports/repositories"
	portssvc "github.com/maooe/finance_control_app/internal/core/ports/services"
)

// storeService implements the StoreSvcFacade interface. It holds the four
// collections and the preferences in memory and mirrors every changed slice
// to the state repository before returning. The mirror write is synchronous
// and unconditional; its errors propagate to the caller untouched.
type storeService struct {
	BaseService
	repo portsrepo.StateRepository

	mu           sync.RWMutex
	accounts     []domain.Account
	incomes      []domain.Income
	notes        []domain.Note
	appointments []domain.Appointment
	prefs        domain.Preferences

	// onMutation is invoked after every entity mutation (not preference
	// changes); the remote mirror hangs its debounce off this.
	onMutation func()
}

// StoreServiceOption is a functional option for configuring the store service
type StoreServiceOption func(*storeService)

// WithMutationHook sets the callback fired after every entity mutation.
func WithMutationHook(fn func()) StoreServiceOption {
	return func(s *storeService) {
		s.onMutation = fn
	}
}

// NewStoreService creates a new entity store backed by repo.
func NewStoreService(repo portsrepo.StateRepository, options ...StoreServiceOption) *storeService {
	svc := &storeService{
		repo:  repo,
		prefs: domain.DefaultPreferences(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure storeService implements the StoreSvcFacade interface
var _ portssvc.StoreSvcFacade = (*storeService)(nil)

// SetMutationHook wires the mutation callback after construction. The store
// and the sync service reference each other, so one side has to be attached
// late; this is that seam.
func (s *storeService) SetMutationHook(fn func()) {
	s.onMutation = fn
}

func (s *storeService) notifyMutation() {
	if s.onMutation != nil {
		s.onMutation()
	}
}

// Hydrate loads every persisted slice into memory. Missing keys leave the
// initial empty value in place.
func (s *storeService) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.repo.LoadAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	incomes, err := s.repo.LoadIncomes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load incomes: %w", err)
	}
	notes, err := s.repo.LoadNotes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}
	appointments, err := s.repo.LoadAppointments(ctx)
	if err != nil {
		return fmt.Errorf("failed to load appointments: %w", err)
	}
	prefs, err := s.repo.LoadPreferences(ctx)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	s.accounts = accounts
	s.incomes = incomes
	s.notes = notes
	s.appointments = appointments
	s.prefs = prefs

	s.LogInfo(ctx, "Entity store hydrated from local storage",
		slog.Int("accounts", len(accounts)),
		slog.Int("incomes", len(incomes)),
		slog.Int("notes", len(notes)),
		slog.Int("appointments", len(appointments)))
	return nil
}

// --- Accounts ---

func (s *storeService) AddAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	if account.AccountID == "" {
		account.AccountID = uuid.NewString()
	}

	s.mu.Lock()
	s.accounts = append([]domain.Account{account}, s.accounts...)
	mirror := append([]domain.Account(nil), s.accounts...)
	s.mu.Unlock()

	if err := s.repo.SaveAccounts(ctx, mirror); err != nil {
		s.LogError(ctx, err, "Failed to mirror accounts", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account added", slog.String("account_id", account.AccountID))
	s.notifyMutation()
	return &account, nil
}

func (s *storeService) DeleteAccount(ctx context.Context, accountID string) error {
	s.mu.Lock()
	removed := false
	for i, a := range s.accounts {
		if a.AccountID == accountID {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			removed = true
			break
		}
	}
	mirror := append([]domain.Account(nil), s.accounts...)
	s.mu.Unlock()

	// Deleting an absent id is a no-op, not an error.
	if !removed {
		s.LogDebug(ctx, "Delete for unknown account id ignored", slog.String("account_id", accountID))
		return nil
	}

	if err := s.repo.SaveAccounts(ctx, mirror); err != nil {
		s.LogError(ctx, err, "Failed to mirror accounts after delete", slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	s.notifyMutation()
	return nil
}

func (s *storeService) ListAccounts(ctx context.Context) []domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Account(nil), s.accounts...)
}

func (s *storeService) ReplaceAccounts(ctx context.Context, accounts []domain.Account) error {
	if accounts == nil {
		accounts = []domain.Account{}
	}
	s.mu.Lock()
	s.accounts = accounts
	mirror := append([]domain.Account(nil), s.accounts...)
	s.mu.Unlock()

	if err := s.repo.SaveAccounts(ctx, mirror); err != nil {
		s.LogError(ctx, err, "Failed to mirror replaced accounts")
		return err
	}

	s.notifyMutation()
	return nil
}

// --- Incomes ---

func (s *storeService) AddIncome(ctx context.Context, income domain.Income) (*domain.Income, error) {
	if income.IncomeID == "" {
		income.IncomeID = uuid.NewString()
	}

	s.mu.Lock()
	s.incomes = append([]domain.Income{income}, s.incomes...)
	mirror := append([]domain.Income(nil), s.incomes...)
	s.mu.Unlock()

	if err := s.repo.SaveIncomes(ctx, mirror); err != nil {
		s.LogError(ctx, err, "Failed to mirror incomes", slog.String("income_id", income.IncomeID))
		return nil, err
	}

	s.LogInfo(ctx, "Income added", slog.String("income_id", income.IncomeID))
	s.notifyMutation()
	return &income, nil
}

func (s *storeService) DeleteIncome(ctx context.Context, incomeID string) error {
	s.mu.Lock()
	removed := false
	for i, entry := range s.incomes {
		if entry.IncomeID == incomeID {
			s.incomes = append(s.incomes[:i], s.incomes[i+1:]...)
			removed = true
			break
		}
	}
	mirror := append([]domain.Income(nil), s.incomes...)
	s.mu.Unlock()

	if !removed {
		s.LogDebug(ctx, "Delete for unknown income id ignored", slog.String("income_id", incomeID))
		return nil
	}

	if err := s.repo.SaveIncomes(ctx, mirror); err != nil {
		s.LogError(ctx, err, "Failed to mirror incomes after delete", slog.String("income_id", incomeID))
		return err
	}

	s.LogInfo(ctx, "Income deleted", slog.String("income_id", incomeID))
	s.notifyMutation()
	return nil
}

func (s *storeService) ListIncomes(ctx context.Context) []domain.Income {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Income(nil), s.incomes...)
}

func (s *storeService) ReplaceIncomes(ctx context.Context, incomes []domain.Income) error {
	if incomes == nil {
		incomes = []domain.Income{}
	}
	s.mu.Lock()
	s.incomes = incomes
	mirror := append([]domain.Income(nil), s.incomes...)
	s.mu.Unlock()

	if err := s.repo.SaveIncomes(ctx, mirror); err != nil {
		s.LogError(ctx, err, "Failed to mirror replaced incomes")
		return err
	}

	s.notifyMutation()
	return nil
}

// --- Notes ---

func (s *storeService) AddNote(ctx context.Context, note domain.Note) (*domain.Note, error) {
	if note.NoteID == "" {
		note.NoteID = uuid.NewString()
	}

	s.mu.Lock()
	s.notes = append([]domain.Note{note}, s.notes...)
	mirror := append([]domain.Note(nil), s.notes...)
	s.mu.Unlock()

	if err := s.repo.SaveNotes(ctx, mirror); err != nil {
		s.LogError(ctx, err, "Failed to mirror notes", slog.String("note_id", note.NoteID))
		return nil, err
	}

	s.notifyMutation()
	return &note, nil
}

// UpdateNote edits a note in place. Notes are the only record kind with
// incremental edits; nil fields are left as they are.
func (s *storeService) UpdateNote(ctx context.Context, noteID string, content *string, color *string) (*domain.Note, error) {
	s.mu.Lock()
	var updated *domain.Note
	for i := range s.notes {
		if s.notes[i].NoteID == noteID {
			if content != nil {
				s.notes[i].Content = *content
			}
			if color != nil {
				s.notes[i].Color = *color
			}
			n := s.notes[i]
			updated = &n
			break
		}
	}
	mirror := append([]domain.Note(nil), s.notes...)
	s.mu.Unlock()

	if updated == nil {
		return nil, apperrors.ErrNotFound
	}

	if err := s.repo.SaveNotes(ctx, mirror); err != nil {
		s.LogError(ctx, err, "Failed to mirror notes after edit", slog.String("note_id", noteID))
		return nil, err
	}

	s.notifyMutation()
	return updated, nil
}

func (s *storeService) DeleteNote(ctx context.Context, noteID string) error {
	s.mu.Lock()
	removed := false
	for i, n := range s.notes {
		if n.NoteID == noteID {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			removed = true
			break
		}
	}
	mirror := append([]domain.Note(nil), s.notes...)
	s.mu.Unlock()

	if !removed {
		s.LogDebug(ctx, "Delete for unknown note id ignored", slog.String("note_id", noteID))
		return nil
	}

	if err := s.repo.SaveNotes(ctx, mirror); err != nil {
		s.LogError(ctx, err, "Failed to mirror notes after delete", slog.String("note_id", noteID))
		return err
	}

	s.notifyMutation()
	return nil
}

func (s *storeService) ListNotes(ctx context.Context) []domain.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Note(nil), s.notes...)
}

func (s *storeService) ReplaceNotes(ctx context.Context, notes []domain.Note) error {
	if notes == nil {
		notes = []domain.Note{}
	}
	s.mu.Lock()
	s.notes = notes
	mirror := append([]domain.Note(nil), s.notes...)
	s.mu.Unlock()

	if err := s.repo.SaveNotes(ctx, mirror); err != nil {
		s.LogError(ctx, err, "Failed to mirror replaced notes")
		return err
	}

	s.notifyMutation()
	return nil
}

// --- Appointments ---

func (s *storeService) AddAppointment(ctx context.Context, appointment domain.Appointment) (*domain.Appointment, error) {
	if appointment.AppointmentID == "" {
		appointment.AppointmentID = uuid.NewString()
	}

	s.mu.Lock()
	s.appointments = append([]domain.Appointment{appointment}, s.appointments...)
	mirror := append([]domain.Appointment(nil), s.appointments...)
	s.mu.Unlock()

	if err := s.repo.SaveAppointments(ctx, mirror); err != nil {
		s.LogError(ctx, err, "Failed to mirror appointments", slog.String("appointment_id", appointment.AppointmentID))
		return nil, err
	}

	s.notifyMutation()
	return &appointment, nil
}

func (s *storeService) DeleteAppointment(ctx context.Context, appointmentID string) error {
	s.mu.Lock()
	removed := false
	for i, a := range s.appointments {
		if a.AppointmentID == appointmentID {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			removed = true
			break
		}
	}
	mirror := append([]domain.Appointment(nil), s.appointments...)
	s.mu.Unlock()

	if !removed {
		s.LogDebug(ctx, "Delete for unknown appointment id ignored", slog.String("appointment_id", appointmentID))
		return nil
	}

	if err := s.repo.SaveAppointments(ctx, mirror); err != nil {
		s.LogError(ctx, err, "Failed to mirror appointments after delete", slog.String("appointment_id", appointmentID))
		return err
	}

	s.notifyMutation()
	return nil
}

func (s *storeService) ListAppointments(ctx context.Context) []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Appointment(nil), s.appointments...)
}

func (s *storeService) ReplaceAppointments(ctx context.Context, appointments []domain.Appointment) error {
	if appointments == nil {
		appointments = []domain.Appointment{}
	}
	s.mu.Lock()
	s.appointments = appointments
	mirror := append([]domain.Appointment(nil), s.appointments...)
	s.mu.Unlock()

	if err := s.repo.SaveAppointments(ctx, mirror); err != nil {
		s.LogError(ctx, err, "Failed to mirror replaced appointments")
		return err
	}

	s.notifyMutation()
	return nil
}

// --- Preferences ---

func (s *storeService) GetPreferences(ctx context.Context) domain.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

func (s *storeService) UpdatePreferences(ctx context.Context, prefs domain.Preferences) error {
	if !domain.ValidThemeMode(prefs.ThemeMode) {
		return fmt.Errorf("unknown theme mode %q: %w", prefs.ThemeMode, apperrors.ErrValidation)
	}

	s.mu.Lock()
	s.prefs = prefs
	s.mu.Unlock()

	if err := s.repo.SavePreferences(ctx, prefs); err != nil {
		s.LogError(ctx, err, "Failed to mirror preferences")
		return err
	}

	s.LogInfo(ctx, "Preferences updated", slog.String("theme_mode", string(prefs.ThemeMode)))
	return nil
}

// --- Snapshot / import ---

func (s *storeService) Snapshot(ctx context.Context) domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Snapshot{
		Accounts:     append([]domain.Account{}, s.accounts...),
		Incomes:      append([]domain.Income{}, s.incomes...),
		Notes:        append([]domain.Note{}, s.notes...),
		Appointments: append([]domain.Appointment{}, s.appointments...),
	}
}

// importDocument is the tolerated backup shape: every field optional, only
// present fields replace their collection.
type importDocument struct {
	Accounts     *[]domain.Account     `json:"accounts"`
	Incomes      *[]domain.Income      `json:"incomes"`
	Notes        *[]domain.Note        `json:"notes"`
	Appointments *[]domain.Appointment `json:"appointments"`
	Preferences  *domain.Preferences   `json:"preferences"`
}

func (s *storeService) ImportSnapshot(ctx context.Context, raw []byte) error {
	var doc importDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.LogWarn(ctx, "Rejected malformed import file", slog.String("error", err.Error()))
		return fmt.Errorf("malformed import file: %w", apperrors.ErrValidation)
	}

	if doc.Accounts != nil {
		if err := s.ReplaceAccounts(ctx, *doc.Accounts); err != nil {
			return err
		}
	}
	if doc.Incomes != nil {
		if err := s.ReplaceIncomes(ctx, *doc.Incomes); err != nil {
			return err
		}
	}
	if doc.Notes != nil {
		if err := s.ReplaceNotes(ctx, *doc.Notes); err != nil {
			return err
		}
	}
	if doc.Appointments != nil {
		if err := s.ReplaceAppointments(ctx, *doc.Appointments); err != nil {
			return err
		}
	}
	if doc.Preferences != nil {
		prefs := *doc.Preferences
		if prefs.ThemeMode == "" {
			prefs.ThemeMode = domain.DefaultPreferences().ThemeMode
		}
		if err := s.UpdatePreferences(ctx, prefs); err != nil {
			return err
		}
	}

	s.LogInfo(ctx, "Import applied",
		slog.Bool("accounts", doc.Accounts != nil),
		slog.Bool("incomes", doc.Incomes != nil),
		slog.Bool("notes", doc.Notes != nil),
		slog.Bool("appointments", doc.Appointments != nil))
	return nil
}

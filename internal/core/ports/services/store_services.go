package services

import (
	"context"

	"github.com/maooe/finance_control_app/internal/core/domain"
)

// StoreSvcFacade is the entity store: the in-memory collections plus
// preferences, with every mutation mirrored synchronously to local storage.
// Add prepends (most-recent-first ordering); Delete of an absent id is a
// no-op, not an error; ReplaceAll overwrites a collection wholesale and is
// what import and remote pull are built on.
type StoreSvcFacade interface {
	AddAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID string) error
	ListAccounts(ctx context.Context) []domain.Account
	ReplaceAccounts(ctx context.Context, accounts []domain.Account) error

	AddIncome(ctx context.Context, income domain.Income) (*domain.Income, error)
	DeleteIncome(ctx context.Context, incomeID string) error
	ListIncomes(ctx context.Context) []domain.Income
	ReplaceIncomes(ctx context.Context, incomes []domain.Income) error

	AddNote(ctx context.Context, note domain.Note) (*domain.Note, error)
	UpdateNote(ctx context.Context, noteID string, content *string, color *string) (*domain.Note, error)
	DeleteNote(ctx context.Context, noteID string) error
	ListNotes(ctx context.Context) []domain.Note
	ReplaceNotes(ctx context.Context, notes []domain.Note) error

	AddAppointment(ctx context.Context, appointment domain.Appointment) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error
	ListAppointments(ctx context.Context) []domain.Appointment
	ReplaceAppointments(ctx context.Context, appointments []domain.Appointment) error

	GetPreferences(ctx context.Context) domain.Preferences
	UpdatePreferences(ctx context.Context, prefs domain.Preferences) error

	// Snapshot returns a deep-enough copy of the four collections for
	// serialization; mutating the result does not affect the store.
	Snapshot(ctx context.Context) domain.Snapshot

	// ImportSnapshot applies a JSON backup: present top-level fields replace
	// their collection wholesale, absent fields are left untouched. A
	// malformed document returns apperrors.ErrValidation and applies nothing.
	ImportSnapshot(ctx context.Context, raw []byte) error

	// Hydrate loads every persisted slice from local storage into memory.
	// Called once at startup, before the first request is served.
	Hydrate(ctx context.Context) error
}

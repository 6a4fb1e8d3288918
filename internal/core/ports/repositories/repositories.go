package repositories

import (
	"context"

	"github.com/maooe/finance_control_app/internal/core/domain"
)

// StateRepository is the local persistence mirror: every persisted slice of
// the entity store maps to one namespaced key in durable key-value storage.
// Save operations overwrite the key unconditionally; Load operations return
// the zero value (empty slice, defaults) when the key has never been written.
// Storage errors are returned untouched; the mirror adds no recovery.
type StateRepository interface {
	SaveAccounts(ctx context.Context, accounts []domain.Account) error
	LoadAccounts(ctx context.Context) ([]domain.Account, error)

	SaveIncomes(ctx context.Context, incomes []domain.Income) error
	LoadIncomes(ctx context.Context) ([]domain.Income, error)

	SaveNotes(ctx context.Context, notes []domain.Note) error
	LoadNotes(ctx context.Context) ([]domain.Note, error)

	SaveAppointments(ctx context.Context, appointments []domain.Appointment) error
	LoadAppointments(ctx context.Context) ([]domain.Appointment, error)

	SavePreferences(ctx context.Context, prefs domain.Preferences) error
	LoadPreferences(ctx context.Context) (domain.Preferences, error)
}

// SessionRepository persists the signed-in identity so that the session can
// be restored on the next load without a flash of unauthenticated state.
type SessionRepository interface {
	SaveSession(ctx context.Context, identity domain.Identity) error
	// LoadSession returns apperrors.ErrNotFound when no session is stored.
	LoadSession(ctx context.Context) (*domain.Identity, error)
	ClearSession(ctx context.Context) error
}

// RemoteMirror is the user-configured spreadsheet webhook. Push sends the
// full snapshot tagged "sync_all" and ignores the response body; Pull reads
// a full snapshot back. The endpoint is never verified ahead of time.
type RemoteMirror interface {
	Push(ctx context.Context, endpointURL string, snapshot domain.Snapshot) error
	Pull(ctx context.Context, endpointURL string) (*domain.Snapshot, error)
}

// CompletionClient is the external language-model call behind the assistant
// bridge. It takes the fully composed prompt and returns prose.
type CompletionClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// RepositoryProvider bundles every outbound dependency for service wiring.
type RepositoryProvider struct {
	State      StateRepository
	Sessions   SessionRepository
	Remote     RemoteMirror
	Completion CompletionClient
}

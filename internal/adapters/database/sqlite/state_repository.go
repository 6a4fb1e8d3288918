// Package sqlite implements the local persistence mirror over a single
// key-value table. Each persisted slice of the entity store owns one
// namespaced key; values are JSON text. This mirror is the sole durability
// guarantee when no remote endpoint is configured, so it runs unconditionally.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/maooe/finance_control_app/internal/apperrors"
	"github.com/maooe/finance_control_app/internal/core/domain"
	portsrepo "github.com/maooe/finance_control_app/internal/core/ports/repositories"
)

// Storage keys, one per persisted slice. The maooe_ namespace matches the
// keys existing installations already carry.
const (
	keyAccounts     = "maooe_accounts"
	keyIncomes      = "maooe_incomes"
	keyNotes        = "maooe_notes"
	keyAppointments = "maooe_appointments"
	keyThemeMode    = "maooe_theme_mode"
	keySheetsURL    = "maooe_sheets_url"
	keySession      = "maooe_session"
)

// StateRepository persists entity-store slices in the app_state table.
type StateRepository struct {
	db *sql.DB
}

// NewStateRepository creates a repository over an opened state database.
func NewStateRepository(db *sql.DB) *StateRepository {
	return &StateRepository{db: db}
}

// Ensure StateRepository implements both persistence facades
var (
	_ portsrepo.StateRepository   = (*StateRepository)(nil)
	_ portsrepo.SessionRepository = (*StateRepository)(nil)
)

// setKey overwrites one storage key. No diffing, no recovery: the caller
// gets the raw storage error if the write fails.
func (r *StateRepository) setKey(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(value))
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// getKey reads one storage key. Missing keys return (nil, nil).
func (r *StateRepository) getKey(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return []byte(value), nil
}

func saveSlice[T any](ctx context.Context, r *StateRepository, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return r.setKey(ctx, key, data)
}

func loadSlice[T any](ctx context.Context, r *StateRepository, key string) ([]T, error) {
	data, err := r.getKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r *StateRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	return saveSlice(ctx, r, keyAccounts, accounts)
}

func (r *StateRepository) LoadAccounts(ctx context.Context) ([]domain.Account, error) {
	return loadSlice[domain.Account](ctx, r, keyAccounts)
}

func (r *StateRepository) SaveIncomes(ctx context.Context, incomes []domain.Income) error {
	return saveSlice(ctx, r, keyIncomes, incomes)
}

func (r *StateRepository) LoadIncomes(ctx context.Context) ([]domain.Income, error) {
	return loadSlice[domain.Income](ctx, r, keyIncomes)
}

func (r *StateRepository) SaveNotes(ctx context.Context, notes []domain.Note) error {
	return saveSlice(ctx, r, keyNotes, notes)
}

func (r *StateRepository) LoadNotes(ctx context.Context) ([]domain.Note, error) {
	return loadSlice[domain.Note](ctx, r, keyNotes)
}

func (r *StateRepository) SaveAppointments(ctx context.Context, appointments []domain.Appointment) error {
	return saveSlice(ctx, r, keyAppointments, appointments)
}

func (r *StateRepository) LoadAppointments(ctx context.Context) ([]domain.Appointment, error) {
	return loadSlice[domain.Appointment](ctx, r, keyAppointments)
}

// SavePreferences writes the two scalar preference keys. They are separate
// storage keys so a theme change never rewrites the endpoint URL key's
// history and vice versa.
func (r *StateRepository) SavePreferences(ctx context.Context, prefs domain.Preferences) error {
	theme, err := json.Marshal(prefs.ThemeMode)
	if err != nil {
		return fmt.Errorf("failed to marshal theme mode: %w", err)
	}
	if err := r.setKey(ctx, keyThemeMode, theme); err != nil {
		return err
	}

	url, err := json.Marshal(prefs.SheetsURL)
	if err != nil {
		return fmt.Errorf("failed to marshal sheets url: %w", err)
	}
	return r.setKey(ctx, keySheetsURL, url)
}

func (r *StateRepository) LoadPreferences(ctx context.Context) (domain.Preferences, error) {
	prefs := domain.DefaultPreferences()

	if data, err := r.getKey(ctx, keyThemeMode); err != nil {
		return prefs, err
	} else if data != nil {
		var mode domain.ThemeMode
		if err := json.Unmarshal(data, &mode); err != nil {
			return prefs, fmt.Errorf("failed to parse theme mode: %w", err)
		}
		if domain.ValidThemeMode(mode) {
			prefs.ThemeMode = mode
		}
	}

	if data, err := r.getKey(ctx, keySheetsURL); err != nil {
		return prefs, err
	} else if data != nil {
		if err := json.Unmarshal(data, &prefs.SheetsURL); err != nil {
			return prefs, fmt.Errorf("failed to parse sheets url: %w", err)
		}
	}

	return prefs, nil
}

func (r *StateRepository) SaveSession(ctx context.Context, identity domain.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return r.setKey(ctx, keySession, data)
}

func (r *StateRepository) LoadSession(ctx context.Context) (*domain.Identity, error) {
	data, err := r.getKey(ctx, keySession)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, apperrors.ErrNotFound
	}
	var identity domain.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	return &identity, nil
}

func (r *StateRepository) ClearSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, keySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

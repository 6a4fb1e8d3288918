package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/maooe/finance_control_app/internal/apperrors"
	portsrepo "github.com/maooe/finance_control_app/internal/core/ports/repositories"
	portssvc "github.com/maooe/finance_control_app/internal/core/ports/services"
)

// debounceKey names the single coalesced push schedule. Every mutation
// re-arms the same key, so bursts collapse into one push of the final state.
const debounceKey = "sync_all"

// syncService implements the SyncSvcFacade interface. It mirrors the full
// entity store to the user-configured spreadsheet webhook: debounced pushes
// after mutations, manual push on demand, manual pull to overwrite local
// state with the remote snapshot.
type syncService struct {
	BaseService
	store     portssvc.StoreSvcFacade
	remote    portsrepo.RemoteMirror
	scheduler *DebounceScheduler
	debounce  time.Duration
	logger    *slog.Logger
}

// SyncServiceOption is a functional option for configuring the sync service
type SyncServiceOption func(*syncService)

// WithDebounce overrides the quiet period before an automatic push.
func WithDebounce(d time.Duration) SyncServiceOption {
	return func(s *syncService) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// WithSyncLogger sets the logger used by background pushes, which run
// outside any request context.
func WithSyncLogger(logger *slog.Logger) SyncServiceOption {
	return func(s *syncService) {
		s.logger = logger
	}
}

// NewSyncService creates a new remote mirror service over store and remote.
func NewSyncService(store portssvc.StoreSvcFacade, remote portsrepo.RemoteMirror, options ...SyncServiceOption) portssvc.SyncSvcFacade {
	svc := &syncService{
		store:     store,
		remote:    remote,
		scheduler: NewDebounceScheduler(),
		debounce:  3 * time.Second,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure syncService implements the SyncSvcFacade interface
var _ portssvc.SyncSvcFacade = (*syncService)(nil)

// NotifyMutation arms (or re-arms) the trailing debounce timer. The push
// that eventually fires reads the snapshot at fire time, so only the state
// as of the last mutation in the burst ever reaches the remote.
func (s *syncService) NotifyMutation() {
	s.scheduler.Schedule(debounceKey, s.debounce, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		// Fire-and-forget: a failed push is logged and swallowed; local
		// durability is unaffected.
		if err := s.push(ctx); err != nil && !errors.Is(err, apperrors.ErrValidation) {
			s.backgroundLogger().Warn("Debounced push failed", slog.String("error", err.Error()))
		}
	})
}

func (s *syncService) backgroundLogger() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

func (s *syncService) push(ctx context.Context) error {
	prefs := s.store.GetPreferences(ctx)
	if prefs.SheetsURL == "" {
		// No endpoint configured: the automatic mirror simply stays off.
		return fmt.Errorf("no sync endpoint configured: %w", apperrors.ErrValidation)
	}

	snapshot := s.store.Snapshot(ctx)
	if err := s.remote.Push(ctx, prefs.SheetsURL, snapshot); err != nil {
		return fmt.Errorf("push to remote mirror: %w", err)
	}
	return nil
}

// PushNow pushes the current snapshot immediately. Unlike the debounced
// path its outcome is reported to the caller, so the UI can confirm a
// manual sync.
func (s *syncService) PushNow(ctx context.Context) error {
	// A manual push supersedes whatever the timer was about to send.
	s.scheduler.Cancel(debounceKey)

	if err := s.push(ctx); err != nil {
		s.LogWarn(ctx, "Manual push failed", slog.String("error", err.Error()))
		return err
	}
	s.LogInfo(ctx, "Manual push completed")
	return nil
}

// Pull fetches the remote snapshot and replaces every local collection with
// it. Any failure leaves local state untouched.
func (s *syncService) Pull(ctx context.Context) error {
	prefs := s.store.GetPreferences(ctx)
	if prefs.SheetsURL == "" {
		return fmt.Errorf("no sync endpoint configured: %w", apperrors.ErrValidation)
	}

	snapshot, err := s.remote.Pull(ctx, prefs.SheetsURL)
	if err != nil {
		s.LogWarn(ctx, "Pull from remote mirror failed", slog.String("error", err.Error()))
		return err
	}

	// Full replace, not a merge: the remote snapshot wins wholesale.
	if err := s.store.ReplaceAccounts(ctx, snapshot.Accounts); err != nil {
		return err
	}
	if err := s.store.ReplaceIncomes(ctx, snapshot.Incomes); err != nil {
		return err
	}
	if err := s.store.ReplaceNotes(ctx, snapshot.Notes); err != nil {
		return err
	}
	if err := s.store.ReplaceAppointments(ctx, snapshot.Appointments); err != nil {
		return err
	}

	s.LogInfo(ctx, "Pull applied",
		slog.Int("accounts", len(snapshot.Accounts)),
		slog.Int("incomes", len(snapshot.Incomes)),
		slog.Int("notes", len(snapshot.Notes)),
		slog.Int("appointments", len(snapshot.Appointments)))
	return nil
}

// Stop cancels any pending debounced push.
func (s *syncService) Stop() {
	s.scheduler.CancelAll()
}

package services

import (
	"log/slog"

	portsrepo "github.com/maooe/finance_control_app/internal/core/ports/repositories"
	portssvc "github.com/maooe/finance_control_app/internal/core/ports/services"
	"github.com/maooe/finance_control_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The store is built first; the sync service hangs off its mutation hook.
	store := NewStoreService(repos.State)
	container.Store = store

	container.Sync = NewSyncService(store, repos.Remote,
		WithDebounce(cfg.SyncDebounce),
		WithSyncLogger(logger),
	)
	store.SetMutationHook(container.Sync.NotifyMutation)

	container.Assistant = NewAssistantService(store, repos.Completion)
	container.Export = NewExportService(store)
	container.Token = NewTokenService(cfg)

	identityOpts := []IdentityServiceOption{}
	if cfg.GoogleConfigured() {
		identityOpts = append(identityOpts, WithGoogleOAuth(NewGoogleOAuthService(cfg)))
	}
	container.Identity = NewIdentityService(cfg, repos.Sessions, identityOpts...)

	return container
}

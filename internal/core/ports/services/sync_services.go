package services

import (
	"context"
)

// SyncSvcFacade is the remote mirror. Mutations call NotifyMutation, which
// arms (or re-arms) a trailing debounce timer; when the quiet period elapses
// a single push carries the state as of the last mutation. Push failures are
// logged and swallowed; Pull failures surface to the caller and leave local
// state untouched.
type SyncSvcFacade interface {
	NotifyMutation()
	// PushNow pushes the current snapshot immediately, bypassing the timer.
	PushNow(ctx context.Context) error
	// Pull fetches a full snapshot from the endpoint and replace-alls every
	// local collection with it.
	Pull(ctx context.Context) error
	// Stop cancels any pending debounced push. Called on shutdown.
	Stop()
}

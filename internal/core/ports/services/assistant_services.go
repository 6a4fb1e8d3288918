package services

import (
	"context"
)

// AssistantSvcFacade answers a free-text question over the user's financial
// data. Each call is independent; no conversation state is kept here. Any
// upstream failure degrades to a fixed fallback string; the error return is
// only set for caller mistakes (empty question).
type AssistantSvcFacade interface {
	Query(ctx context.Context, question string) (string, error)
}

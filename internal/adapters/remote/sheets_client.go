// Package remote implements the spreadsheet-mirror client. The endpoint is
// an opaque user-supplied webhook (typically an Apps Script web app); it is
// never validated ahead of time, only discovered to be broken at push/pull
// time.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/maooe/finance_control_app/internal/apperrors"
	"github.com/maooe/finance_control_app/internal/core/domain"
	portsrepo "github.com/maooe/finance_control_app/internal/core/ports/repositories"
)

// syncAction is the discriminant tag the webhook dispatches on.
const syncAction = "sync_all"

// SheetsClient talks to the user-configured spreadsheet webhook.
type SheetsClient struct {
	httpClient *http.Client
}

// SheetsClientOption is a functional option for configuring the client
type SheetsClientOption func(*SheetsClient)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(c *http.Client) SheetsClientOption {
	return func(s *SheetsClient) {
		s.httpClient = c
	}
}

// NewSheetsClient creates a webhook client with a sane default timeout.
func NewSheetsClient(options ...SheetsClientOption) *SheetsClient {
	client := &SheetsClient{
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// Ensure SheetsClient implements the RemoteMirror interface
var _ portsrepo.RemoteMirror = (*SheetsClient)(nil)

// pushPayload is the wire shape of a push request.
type pushPayload struct {
	Action string          `json:"action"`
	Data   domain.Snapshot `json:"data"`
}

// Push posts the full snapshot. The webhook's response body carries no
// information we need (Apps Script answers through a redirect), so a
// completed exchange counts as success regardless of status.
func (c *SheetsClient) Push(ctx context.Context, endpointURL string, snapshot domain.Snapshot) error {
	body, err := json.Marshal(pushPayload{Action: syncAction, Data: snapshot})
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrRemoteUnavailable, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrRemoteUnavailable, err.Error())
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

// Pull issues a data request to the same endpoint and expects the four
// collections at the top level of the JSON response.
func (c *SheetsClient) Pull(ctx context.Context, endpointURL string) (*domain.Snapshot, error) {
	parsed, err := url.Parse(endpointURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrRemoteUnavailable, err.Error())
	}
	q := parsed.Query()
	q.Set("action", "data")
	parsed.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrRemoteUnavailable, err.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrRemoteUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: endpoint answered %d", apperrors.ErrRemoteUnavailable, resp.StatusCode)
	}

	var snapshot domain.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrRemotePayload, err.Error())
	}

	return &snapshot, nil
}

package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maooe/finance_control_app/internal/adapters/remote"
	"github.com/maooe/finance_control_app/internal/apperrors"
	"github.com/maooe/finance_control_app/internal/core/domain"
)

func TestSheetsClient_PushSendsSyncAllEnvelope(t *testing.T) {
	var received struct {
		Action string          `json:"action"`
		Data   domain.Snapshot `json:"data"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := remote.NewSheetsClient()
	snapshot := domain.Snapshot{
		Notes: []domain.Note{{NoteID: "n1", Content: "lembrete", Color: "yellow"}},
	}

	require.NoError(t, client.Push(context.Background(), srv.URL, snapshot))
	assert.Equal(t, "sync_all", received.Action)
	require.Len(t, received.Data.Notes, 1)
	assert.Equal(t, "lembrete", received.Data.Notes[0].Content)
}

func TestSheetsClient_PushIgnoresWebhookStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Apps Script web apps often answer with redirects or errors that
		// carry no meaning for the mirror.
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := remote.NewSheetsClient()
	assert.NoError(t, client.Push(context.Background(), srv.URL, domain.Snapshot{}))
}

func TestSheetsClient_PushUnreachableEndpoint(t *testing.T) {
	client := remote.NewSheetsClient()

	err := client.Push(context.Background(), "http://127.0.0.1:1/never", domain.Snapshot{})
	assert.ErrorIs(t, err, apperrors.ErrRemoteUnavailable)
}

func TestSheetsClient_PullRequestsDataAction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "data", r.URL.Query().Get("action"))
		_ = json.NewEncoder(w).Encode(domain.Snapshot{
			Accounts: []domain.Account{{AccountID: "a1", Description: "Aluguel"}},
		})
	}))
	defer srv.Close()

	client := remote.NewSheetsClient()
	snapshot, err := client.Pull(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, snapshot.Accounts, 1)
	assert.Equal(t, "Aluguel", snapshot.Accounts[0].Description)
}

func TestSheetsClient_PullNonOKStatusIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := remote.NewSheetsClient()
	_, err := client.Pull(context.Background(), srv.URL)
	assert.ErrorIs(t, err, apperrors.ErrRemoteUnavailable)
}

func TestSheetsClient_PullMalformedBodyIsPayloadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := remote.NewSheetsClient()
	_, err := client.Pull(context.Background(), srv.URL)
	assert.ErrorIs(t, err, apperrors.ErrRemotePayload)
}

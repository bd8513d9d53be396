package search

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", zaptest.NewLogger(t))
}

func TestHealthPassesDocumentThrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"status": "ok", "uptime": 12.5}`)
	})

	status, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"status": "ok", "uptime": 12.5}`, string(status))
}

func TestListCollectionsBareArray(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `["calls", "tickets"]`)
	})

	names, err := client.ListCollections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"calls", "tickets"}, names)
}

func TestListCollectionsWrappedObjects(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"collections": [{"name": "calls"}, {"name": "tickets"}]}`)
	})

	names, err := client.ListCollections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"calls", "tickets"}, names)
}

func TestSearchRequestWireFormat(t *testing.T) {
	var received map[string]json.RawMessage
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/collections/calls/search" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		io.WriteString(w, `{"results": [{"id": "a", "score": 0.9}], "total": 1, "executionTimeMs": 3.2}`)
	})

	limit := 5
	resp, err := client.Search(context.Background(), "calls", SearchRequest{
		Vector: []float64{0.1, 0.2},
		Limit:  &limit,
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "a", resp.Results[0].ID)
	assert.Equal(t, 3.2, resp.ExecutionTimeMs)

	// Unset optional fields must be absent, not null.
	assert.Contains(t, received, "vector")
	assert.Contains(t, received, "limit")
	assert.NotContains(t, received, "score_threshold")
	assert.NotContains(t, received, "with_payload")
}

func TestUpstreamErrorMapsToSentinel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "collection not found", http.StatusNotFound)
	})

	_, err := client.GetCollectionInfo(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "collection not found")
}

func TestConnectionFailureMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := NewClient(srv.URL, zaptest.NewLogger(t))

	_, err := client.ListCollections(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHealthDoesNotRetryUpstreamErrors(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Health(context.Background())
	require.Error(t, err)
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	assert.Equal(t, 1, calls)
}

func TestGetCollectionInfoFillsName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"vectorSize": 768, "vectorsCount": 1200, "distance": "cosine"}`)
	})

	info, err := client.GetCollectionInfo(context.Background(), "calls")
	require.NoError(t, err)
	assert.Equal(t, "calls", info.Name)
	assert.Equal(t, 768, info.VectorSize)
}

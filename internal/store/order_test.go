package store_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tagsync/internal/domain"
	"github.com/pkordes/tagsync/internal/store"
)

// ---- FetchOrder --------------------------------------------------------------

func TestOrderStore_FetchOrder_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/orders/ord_9", r.URL.Path)
		assert.Equal(t, "Bearer sekrit", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "ord_9",
			"tags": "urgent, vip",
			"note": "leave at door",
			"created_at": "2025-08-26T10:00:00Z"
		}`))
	}))
	defer srv.Close()

	// Trailing slash on the base URL must not produce a double slash.
	s := store.NewOrderStore(srv.URL+"/", "sekrit")

	got, err := s.FetchOrder(context.Background(), "ord_9")

	require.NoError(t, err)
	assert.Equal(t, "ord_9", got.ID)
	assert.Equal(t, []string{"urgent", "vip"}, got.Tags)
	assert.Equal(t, "leave at door", got.Note)
	assert.Equal(t, time.Date(2025, 8, 26, 10, 0, 0, 0, time.UTC), got.CreatedAt)
}

func TestOrderStore_FetchOrder_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := store.NewOrderStore(srv.URL, "sekrit").FetchOrder(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderStore_FetchOrder_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := store.NewOrderStore(srv.URL, "sekrit").FetchOrder(context.Background(), "ord_9")

	require.Error(t, err)
	assert.ErrorContains(t, err, "503")
	assert.ErrorContains(t, err, "upstream down")
}

func TestOrderStore_FetchOrder_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	_, err := store.NewOrderStore(srv.URL, "sekrit").FetchOrder(context.Background(), "ord_9")

	assert.ErrorContains(t, err, "decode")
}

func TestOrderStore_FetchOrder_NoTokenNoAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":"ord_9","tags":"","note":""}`))
	}))
	defer srv.Close()

	_, err := store.NewOrderStore(srv.URL, "").FetchOrder(context.Background(), "ord_9")

	require.NoError(t, err)
}

// ---- UpdateOrder -------------------------------------------------------------

func TestOrderStore_UpdateOrder_SendsBothFields(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/orders/ord_9", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	tags := "urgent, 26-08-2025"
	note := ""
	err := store.NewOrderStore(srv.URL, "sekrit").UpdateOrder(context.Background(), "ord_9", store.OrderPatch{
		Tags: &tags,
		Note: &note,
	})

	require.NoError(t, err)
	// An empty note is still a write: the whole note may have been a
	// directive, and the store must end up holding "".
	assert.Equal(t, map[string]any{"tags": "urgent, 26-08-2025", "note": ""}, gotBody)
}

func TestOrderStore_UpdateOrder_OmitsNilFields(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tags := "urgent"
	err := store.NewOrderStore(srv.URL, "sekrit").UpdateOrder(context.Background(), "ord_9", store.OrderPatch{Tags: &tags})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"tags": "urgent"}, gotBody)
	assert.NotContains(t, gotBody, "note")
}

func TestOrderStore_UpdateOrder_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	note := "n"
	err := store.NewOrderStore(srv.URL, "sekrit").UpdateOrder(context.Background(), "gone", store.OrderPatch{Note: &note})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderStore_UpdateOrder_RejectedWrite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "tags too long", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	tags := "urgent"
	err := store.NewOrderStore(srv.URL, "sekrit").UpdateOrder(context.Background(), "ord_9", store.OrderPatch{Tags: &tags})

	require.Error(t, err)
	assert.ErrorContains(t, err, "422")
	assert.ErrorContains(t, err, "tags too long")
}

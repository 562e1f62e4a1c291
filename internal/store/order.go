// Package store contains all Order Store access logic for the tagsync
// service. The Order Store is the external system of record for orders;
// this package speaks its HTTP API and maps payloads to domain types.
// No reconciliation logic lives here.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkordes/tagsync/internal/domain"
)

// OrderStore defines the remote operations reconciliation needs.
// The service layer depends on this interface, not the concrete HTTP
// client, which allows it to be unit-tested with a mock.
type OrderStore interface {
	// FetchOrder retrieves the live state of one order.
	// Returns domain.ErrNotFound if the store has no such order.
	FetchOrder(ctx context.Context, id string) (domain.Order, error)

	// UpdateOrder applies a partial update to one order. Nil fields in
	// patch are not transmitted and keep their remote value.
	UpdateOrder(ctx context.Context, id string, patch OrderPatch) error
}

// OrderPatch is a partial order update. Nil fields are omitted from the
// request body; a pointer to the empty string writes an empty value.
type OrderPatch struct {
	Tags *string `json:"tags,omitempty"`
	Note *string `json:"note,omitempty"`
}

// httpOrderStore is the HTTP implementation of OrderStore.
type httpOrderStore struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewOrderStore constructs an OrderStore speaking the Order Store REST API
// at baseURL. token may be empty when the store does not require auth.
func NewOrderStore(baseURL, token string) OrderStore {
	return &httpOrderStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// orderPayload mirrors the Order Store's order representation. Tags travel
// as a single comma-separated string.
type orderPayload struct {
	ID        string    `json:"id"`
	Tags      string    `json:"tags"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// FetchOrder retrieves the live state of one order.
func (s *httpOrderStore) FetchOrder(ctx context.Context, id string) (domain.Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.orderURL(id), nil)
	if err != nil {
		return domain.Order{}, fmt.Errorf("store.OrderStore.FetchOrder: %w", err)
	}
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.Order{}, fmt.Errorf("store.OrderStore.FetchOrder: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.Order{}, fmt.Errorf("store.OrderStore.FetchOrder: %w", domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.Order{}, fmt.Errorf("store.OrderStore.FetchOrder: %s", statusDetail(resp))
	}

	var payload orderPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Order{}, fmt.Errorf("store.OrderStore.FetchOrder: decode: %w", err)
	}
	return domain.Order{
		ID:        payload.ID,
		Tags:      domain.SplitTags(payload.Tags),
		Note:      payload.Note,
		CreatedAt: payload.CreatedAt,
	}, nil
}

// UpdateOrder applies a partial update to one order.
func (s *httpOrderStore) UpdateOrder(ctx context.Context, id string, patch OrderPatch) error {
	body, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("store.OrderStore.UpdateOrder: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, s.orderURL(id), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("store.OrderStore.UpdateOrder: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("store.OrderStore.UpdateOrder: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("store.OrderStore.UpdateOrder: %w", domain.ErrNotFound)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("store.OrderStore.UpdateOrder: %s", statusDetail(resp))
	}
	return nil
}

func (s *httpOrderStore) orderURL(id string) string {
	return s.baseURL + "/orders/" + url.PathEscape(id)
}

func (s *httpOrderStore) authorize(req *http.Request) {
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
}

// statusDetail summarizes a non-success response for error messages.
// The body is truncated; store error pages can be large.
func statusDetail(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	detail := strings.TrimSpace(string(body))
	if detail == "" {
		return fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, detail)
}

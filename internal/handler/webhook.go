package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkordes/tagsync/internal/domain"
	"github.com/pkordes/tagsync/internal/signature"
)

// ackResponse is the fixed acknowledgement body. Senders treat any 200 as
// delivered, so the body never varies with the reconciliation outcome.
type ackResponse struct {
	Status string `json:"status"`
}

// orderEventRequest mirrors the notification body. Tags is the wire form,
// a single comma-separated string. CreatedAt stays a string here: a missing
// or unparsable timestamp must not fail decoding, it just leaves the
// order's creation time zero for the eligibility gate to refuse.
type orderEventRequest struct {
	ID        string `json:"id"`
	Tags      string `json:"tags"`
	Note      string `json:"note"`
	CreatedAt string `json:"created_at"`
}

// HandleOrderWebhook handles POST /webhooks/orders.
//
// The raw body is read in full and verified against the signature header
// before any JSON decoding touches it; failures return 401. Once inside,
// everything the reconciler declines to act on is still acknowledged with
// 200 so the sender does not redeliver. Only malformed payloads and Order
// Store failures surface as 500.
func (s *Server) HandleOrderWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body exceeds limit")
			return
		}
		s.logger.ErrorContext(ctx, "reading webhook body failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "could not read request body")
		return
	}

	// The signature header value itself never reaches the log.
	if !signature.Verify(body, r.Header.Get(HeaderSignature), s.secret) {
		s.logger.WarnContext(ctx, "webhook rejected: signature verification failed",
			"event", r.Header.Get(HeaderEvent),
			"delivery_id", r.Header.Get(HeaderDelivery),
		)
		writeError(w, http.StatusUnauthorized, "unauthorized", "signature verification failed")
		return
	}

	var payload orderEventRequest
	if err := json.Unmarshal(body, &payload); err != nil {
		s.logger.ErrorContext(ctx, "webhook payload malformed",
			"error", err,
			"delivery_id", r.Header.Get(HeaderDelivery),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "malformed payload")
		return
	}
	if strings.TrimSpace(payload.ID) == "" {
		s.logger.ErrorContext(ctx, "webhook payload missing order id",
			"delivery_id", r.Header.Get(HeaderDelivery),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "malformed payload")
		return
	}

	event := domain.OrderEvent{
		Kind: domain.ParseEventKind(r.Header.Get(HeaderEvent)),
		Order: domain.Order{
			ID:        payload.ID,
			Tags:      domain.SplitTags(payload.Tags),
			Note:      payload.Note,
			CreatedAt: parseCreatedAt(payload.CreatedAt),
		},
	}

	outcome, err := s.reconciler.Reconcile(ctx, event)
	if err != nil {
		s.logger.ErrorContext(ctx, "reconciliation failed",
			"order_id", payload.ID,
			"event", string(event.Kind),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "reconciliation failed")
		return
	}

	s.logger.InfoContext(ctx, "webhook processed",
		"order_id", payload.ID,
		"event", string(event.Kind),
		"outcome", string(outcome),
		"delivery_id", r.Header.Get(HeaderDelivery),
	)
	writeJSON(w, http.StatusOK, ackResponse{Status: "ok"})
}

// parseCreatedAt reads an RFC 3339 timestamp, returning the zero time when
// the field is missing or unparsable.
func parseCreatedAt(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

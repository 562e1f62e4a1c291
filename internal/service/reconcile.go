// Package service contains the reconciliation logic for the tagsync API.
// It gates events, extracts target dates, recomputes the desired order
// state, and issues at most one write per notification. No HTTP parsing
// lives here; the handler hands it decoded domain values.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkordes/tagsync/internal/directive"
	"github.com/pkordes/tagsync/internal/domain"
	"github.com/pkordes/tagsync/internal/store"
	"github.com/pkordes/tagsync/internal/tagset"
)

// ReconcileService implements the reconciliation flow for order events.
type ReconcileService struct {
	orders store.OrderStore
	window time.Duration
	format domain.TagFormat
}

// NewReconcileService constructs a ReconcileService writing through the
// provided OrderStore. window bounds update eligibility; format selects the
// canonical date tag rendering.
func NewReconcileService(orders store.OrderStore, window time.Duration, format domain.TagFormat) *ReconcileService {
	return &ReconcileService{orders: orders, window: window, format: format}
}

// Reconcile processes one notification end to end and reports how it was
// disposed of. The event snapshot contributes only the order id, kind,
// creation time, and the note the target date is extracted from; tags and
// note are refetched from the store before anything is written, so a stale
// snapshot can trigger reconciliation but never feed the write.
//
// The write combines the stripped note and the normalized tags into a
// single partial update. When neither differs from the fetched state
// nothing is sent, which is what makes redelivery of the same notification
// safe.
func (s *ReconcileService) Reconcile(ctx context.Context, event domain.OrderEvent) (domain.Outcome, error) {
	if !Eligible(event.Kind, event.Order.CreatedAt, time.Now(), s.window) {
		return domain.OutcomeIneligible, nil
	}

	target, ok := directive.Extract(event.Order.Note)
	if !ok {
		return domain.OutcomeNoDirective, nil
	}

	current, err := s.orders.FetchOrder(ctx, event.Order.ID)
	if err != nil {
		return "", fmt.Errorf("service.ReconcileService.Reconcile: %w", err)
	}

	cleanedNote, noteChanged := directive.Strip(current.Note)
	joinedTags := domain.JoinTags(tagset.Normalize(current.Tags, target, s.format))
	tagsChanged := joinedTags != domain.JoinTags(current.Tags)

	if !noteChanged && !tagsChanged {
		return domain.OutcomeUnchanged, nil
	}

	patch := store.OrderPatch{Tags: &joinedTags, Note: &cleanedNote}
	if err := s.orders.UpdateOrder(ctx, event.Order.ID, patch); err != nil {
		return "", fmt.Errorf("service.ReconcileService.Reconcile: %w", err)
	}
	return domain.OutcomeUpdated, nil
}

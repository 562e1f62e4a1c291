package domain

import "strings"

// EventKind classifies an inbound webhook notification.
type EventKind string

const (
	EventOrderCreated EventKind = "order.created"
	EventOrderUpdated EventKind = "order.updated"
	// EventUnknown covers every event name this service does not act on.
	EventUnknown EventKind = "unknown"
)

// ParseEventKind maps the X-Webhook-Event header value to an EventKind.
// Matching is case-insensitive and ignores surrounding whitespace.
// Unrecognized names map to EventUnknown, which the eligibility gate
// rejects.
func ParseEventKind(s string) EventKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(EventOrderCreated):
		return EventOrderCreated
	case string(EventOrderUpdated):
		return EventOrderUpdated
	default:
		return EventUnknown
	}
}

// OrderEvent is a decoded webhook notification. Order is the snapshot the
// sender attached to the event. Reconciliation reads its Note only to decide
// whether to act and always refetches live state before writing.
type OrderEvent struct {
	Kind  EventKind
	Order Order
}

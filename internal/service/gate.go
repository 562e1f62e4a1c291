package service

import (
	"time"

	"github.com/pkordes/tagsync/internal/domain"
)

// Eligible reports whether an event may trigger an automated mutation.
// Creations always qualify. Updates qualify only while the order's age,
// measured from createdAt to now, lies inside [0, window]; both endpoints
// count as inside. A zero createdAt, a createdAt in the future, and every
// other event kind are refused.
func Eligible(kind domain.EventKind, createdAt, now time.Time, window time.Duration) bool {
	switch kind {
	case domain.EventOrderCreated:
		return true
	case domain.EventOrderUpdated:
		if createdAt.IsZero() {
			return false
		}
		age := now.Sub(createdAt)
		return age >= 0 && age <= window
	default:
		return false
	}
}

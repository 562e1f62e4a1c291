package domain

// Outcome describes how reconciliation disposed of a notification.
// Every outcome is acknowledged with HTTP 200; the distinction exists for
// logs and operator tooling.
type Outcome string

const (
	// OutcomeIneligible means the eligibility gate refused the event.
	OutcomeIneligible Outcome = "ineligible"
	// OutcomeNoDirective means the note carried no delivery date directive.
	OutcomeNoDirective Outcome = "no_directive"
	// OutcomeUnchanged means the store already held the reconciled state.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeUpdated means a write was issued to the Order Store.
	OutcomeUpdated Outcome = "updated"
)

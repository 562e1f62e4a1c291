package domain

import "errors"

// ErrNotFound is returned by the order store client when the remote store
// has no record for the requested id. The webhook handler maps every
// reconciliation failure, this one included, to HTTP 500.
var ErrNotFound = errors.New("order not found")

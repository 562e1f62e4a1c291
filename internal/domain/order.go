// Package domain contains the core data types for the tagsync service.
// This package has zero third-party dependencies and is imported by every
// other internal package (directive, tagset, signature, service, store,
// handler).
package domain

import (
	"strings"
	"time"
)

// Order is the reconciler's view of an order record. It carries only the
// fields reconciliation reads or writes; the Order Store owns everything
// else about an order.
type Order struct {
	ID        string
	Tags      []string
	Note      string
	CreatedAt time.Time // zero when the source did not supply a creation time
}

// SplitTags parses the wire encoding of a tag collection, a single
// comma-separated string. Entries are trimmed and empty entries dropped,
// so "a, b,," yields ["a" "b"]. Returns nil when nothing survives.
func SplitTags(wire string) []string {
	var tags []string
	for _, part := range strings.Split(wire, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tags = append(tags, part)
	}
	return tags
}

// JoinTags renders a tag collection back to its wire encoding.
// Two collections are equal exactly when their joined forms are, which is
// what the reconciler compares before deciding to write.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

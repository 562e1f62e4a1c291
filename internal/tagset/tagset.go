// Package tagset rewrites an order's tag collection so it carries exactly
// one rendering of a target delivery date.
package tagset

import "github.com/pkordes/tagsync/internal/domain"

// Normalize returns tags rewritten so that target appears exactly once, as
// format's canonical rendering. Tags that are not date-like and date tags
// naming other dates pass through verbatim, keeping their relative order.
// Every other rendering or duplicate of target is dropped. When the
// canonical tag already appears, its first occurrence keeps its position;
// otherwise the canonical tag is appended.
//
// Normalize is pure and idempotent. The result is never nil: at minimum it
// holds the canonical tag itself.
func Normalize(tags []string, target domain.DeliveryDate, format domain.TagFormat) []string {
	canonical := format.Render(target)

	out := make([]string, 0, len(tags)+1)
	found := false
	for _, tag := range tags {
		date, ok := domain.ParseDateTag(tag)
		switch {
		case !ok || date != target:
			out = append(out, tag)
		case tag == canonical && !found:
			out = append(out, tag)
			found = true
		}
	}
	if !found {
		out = append(out, canonical)
	}
	return out
}

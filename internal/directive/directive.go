// Package directive locates, parses, and removes delivery date directives
// embedded in order notes. A directive is a parenthesized block of the form
//
//	(Delivery Date: 26/08/2025)
//
// with a case-insensitive label, tolerant internal whitespace, slash or dash
// separators, and either day-month-year or year-month-day field order.
package directive

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkordes/tagsync/internal/domain"
)

// blockPattern recognizes one directive block. Day (1-31) and month (1-12)
// ranges are part of the grammar: a block whose numbers fall outside them is
// not a directive at all, so Extract and Strip always agree on what counts.
// Years are two or four digits in day-first order, four digits in year-first
// order, which keeps an all-two-digit date unambiguous.
var blockPattern = regexp.MustCompile(
	`(?i)\(\s*delivery\s+date\s*:\s*` +
		`(?:(3[01]|[12][0-9]|0?[1-9])\s*[/-]\s*(1[0-2]|0?[1-9])\s*[/-]\s*([0-9]{4}|[0-9]{2})` +
		`|([0-9]{4})\s*[/-]\s*(1[0-2]|0?[1-9])\s*[/-]\s*(3[01]|[12][0-9]|0?[1-9]))` +
		`\s*\)`)

var (
	trailingSpacePattern = regexp.MustCompile(`[ \t]+\n`)
	blankRunPattern      = regexp.MustCompile(`\n{3,}`)
)

// Extract returns the delivery date named by the first directive in text.
// Later directives are ignored here but still removed by Strip.
//
// Day-month-year is tried before year-month-day, so an all-two-digit date
// such as 25-08-26 reads as 25 August 2026. Two-digit years expand to 19xx
// from 70 upward and to 20xx below.
func Extract(text string) (domain.DeliveryDate, bool) {
	m := blockPattern.FindStringSubmatch(text)
	if m == nil {
		return domain.DeliveryDate{}, false
	}
	if m[1] != "" {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return domain.DeliveryDate{Year: expandYear(m[3]), Month: month, Day: day}, true
	}
	year, _ := strconv.Atoi(m[4])
	month, _ := strconv.Atoi(m[5])
	day, _ := strconv.Atoi(m[6])
	return domain.DeliveryDate{Year: year, Month: month, Day: day}, true
}

// Strip removes every directive block from text, replacing each with a
// single space so surrounding words never join. Removing an inner block can
// rebuild an enclosing one, so removal repeats until no block remains; each
// pass shrinks the text, so the loop terminates. Strip then drops whitespace
// left hanging before newlines, collapses runs of three or more newlines to
// a single blank line, and trims both ends.
//
// The changed flag compares against the trimmed input, so a note that only
// loses surrounding whitespace reports false. Strip is idempotent:
// re-stripping its own output changes nothing.
func Strip(text string) (cleaned string, changed bool) {
	cleaned = text
	for {
		next := blockPattern.ReplaceAllString(cleaned, " ")
		if next == cleaned {
			break
		}
		cleaned = next
	}
	cleaned = trailingSpacePattern.ReplaceAllString(cleaned, "\n")
	cleaned = blankRunPattern.ReplaceAllString(cleaned, "\n\n")
	cleaned = strings.TrimSpace(cleaned)
	return cleaned, cleaned != strings.TrimSpace(text)
}

func expandYear(s string) int {
	year, _ := strconv.Atoi(s)
	if len(s) == 2 {
		if year >= 70 {
			return 1900 + year
		}
		return 2000 + year
	}
	return year
}

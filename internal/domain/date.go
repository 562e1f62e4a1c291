package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// DeliveryDate is a calendar date extracted from an order note.
// Values compare field-wise; no time zone or clock is attached.
// Month and day are range-checked at extraction, not calendar-checked,
// so February 31st is representable.
type DeliveryDate struct {
	Year  int
	Month int
	Day   int
}

// TagFormat selects the canonical rendering for delivery date tags.
type TagFormat string

const (
	// FormatDayFirst renders dates as DD-MM-YYYY.
	FormatDayFirst TagFormat = "DD-MM-YYYY"
	// FormatYearFirst renders dates as YYYY-MM-DD.
	FormatYearFirst TagFormat = "YYYY-MM-DD"
)

// ParseTagFormat validates a configured tag format name.
func ParseTagFormat(s string) (TagFormat, error) {
	switch TagFormat(s) {
	case FormatDayFirst:
		return FormatDayFirst, nil
	case FormatYearFirst:
		return FormatYearFirst, nil
	default:
		return "", fmt.Errorf("unknown tag format %q (want %s or %s)", s, FormatDayFirst, FormatYearFirst)
	}
}

// Render produces the canonical tag for d in this format. Day and month
// are zero-padded to two digits, years to four.
func (f TagFormat) Render(d DeliveryDate) string {
	if f == FormatYearFirst {
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, d.Month, d.Year)
}

var (
	dayFirstTagPattern  = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})$`)
	yearFirstTagPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

// ParseDateTag reports whether tag has the exact shape of a canonical
// delivery date tag in either format, and if so which date it names.
// Only the shape is checked: "99-99-2025" parses. Tags that fail the shape
// test are ordinary labels and are preserved verbatim by normalization.
func ParseDateTag(tag string) (DeliveryDate, bool) {
	if m := dayFirstTagPattern.FindStringSubmatch(tag); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return DeliveryDate{Year: year, Month: month, Day: day}, true
	}
	if m := yearFirstTagPattern.FindStringSubmatch(tag); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return DeliveryDate{Year: year, Month: month, Day: day}, true
	}
	return DeliveryDate{}, false
}

// Package units converts SPS header scalars into calendar quantities.
package units

import (
	"fmt"
	"time"
)

// EpochAnchor is the zero point of SPS day-count timestamps. The Start and
// End header scalars count days (with fractional part) from this instant.
var EpochAnchor = time.Date(1900, time.January, 3, 0, 0, 0, 0, time.UTC)

// FromDayCount converts a fractional day count into an absolute UTC time by
// adding it to the epoch anchor. Whole days are added as calendar days and
// only the fractional remainder goes through a Duration, so large day counts
// do not accumulate floating-point error.
func FromDayCount(days float64) time.Time {
	whole := int(days)
	frac := days - float64(whole)
	return EpochAnchor.AddDate(0, 0, whole).Add(time.Duration(frac * float64(24*time.Hour)))
}

// FormatTimestamp renders t in the ISO-8601 form used for output annotation.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05")
}

// OffsetLabel renders a whole-hour UTC offset (the header's TimeZone field)
// as a +HH:MM / -HH:MM label for display.
func OffsetLabel(hours int16) string {
	sign := "+"
	if hours < 0 {
		sign = "-"
		hours = -hours
	}
	return fmt.Sprintf("%s%02d:00", sign, hours)
}

package todo

import "time"

// DisplayLayout renders a day as DD-MM-YYYY.
const DisplayLayout = "02-01-2006"

// FormatDate renders t as DD-MM-YYYY in loc. A nil loc means UTC.
// The zero time renders as the empty string.
func FormatDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DisplayLayout)
}

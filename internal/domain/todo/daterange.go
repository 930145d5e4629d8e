package todo

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/todo-client/internal/domain"
)

// DateLayout is the ISO date form used by the remote filter endpoint.
const DateLayout = "2006-01-02"

// DateRange is an inclusive pair of calendar dates used to filter the list.
// A nil *DateRange means no filter.
type DateRange struct {
	Start string
	End   string
}

// NewDateRange validates both bounds and returns the range.
// Both dates must be YYYY-MM-DD and start must not be after end.
func NewDateRange(start, end string) (DateRange, error) {
	fields := make(map[string]string)

	s, err := time.Parse(DateLayout, start)
	if err != nil {
		fields["start"] = fmt.Sprintf("must be YYYY-MM-DD, got %q", start)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		fields["end"] = fmt.Sprintf("must be YYYY-MM-DD, got %q", end)
	}
	if len(fields) == 0 && s.After(e) {
		fields["end"] = "must not be before start"
	}

	if len(fields) > 0 {
		return DateRange{}, &domain.ValidationError{Fields: fields}
	}
	return DateRange{Start: start, End: end}, nil
}

// String implements fmt.Stringer.
func (r DateRange) String() string {
	return r.Start + " .. " + r.End
}

// Equal reports whether two optional ranges are the same filter.
func Equal(a, b *DateRange) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

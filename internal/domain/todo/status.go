package todo

// Status is the display form of an item's completion flag.
type Status string

const (
	StatusComplete   Status = "Complete"
	StatusIncomplete Status = "Incomplete"
)

// StatusOf maps a completion flag to its Status.
func StatusOf(complete bool) Status {
	if complete {
		return StatusComplete
	}
	return StatusIncomplete
}

// ParseStatus maps a label back to a completion flag. Matching is exact.
func ParseStatus(s string) (complete bool, ok bool) {
	switch Status(s) {
	case StatusComplete:
		return true, true
	case StatusIncomplete:
		return false, true
	default:
		return false, false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

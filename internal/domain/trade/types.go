package trade

type Status string

const (
	StatusPending   Status = "pending"
	StatusWaiting   Status = "waiting"
	StatusConfirmed Status = "confirmed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusWaiting, StatusConfirmed:
		return true
	default:
		return false
	}
}

func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusWaiting
}

// StatusForConfirmations derives the status purely from the number of
// distinct confirming parties. This is the single source of truth for the
// pending -> waiting -> confirmed progression.
func StatusForConfirmations(n int) Status {
	switch {
	case n <= 0:
		return StatusPending
	case n == 1:
		return StatusWaiting
	default:
		return StatusConfirmed
	}
}

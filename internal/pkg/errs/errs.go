package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err is or carries reference. Sentinels attached with
// Mark live outside the Unwrap chain, so the stdlib errors.Is cannot see
// them; classification must go through this helper.
func Is(err error, reference error) bool {
	return cr.Is(err, reference)
}

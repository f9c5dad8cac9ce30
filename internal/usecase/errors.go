package usecase

import "github.com/cockroachdb/errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = errors.New("state conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// invalidInput tags a domain validation error so callers can match it with
// errors.Is against both the domain sentinel and ErrInvalidInput.
func invalidInput(err error) error {
	if err == nil {
		return nil
	}
	return errors.Mark(err, ErrInvalidInput)
}

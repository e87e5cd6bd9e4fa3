package services

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDayNumber     = errors.New("day number must be between 1 and 30")
	ErrInvalidMilestone     = errors.New("milestone must be 7, 15 or 30")
	ErrInvalidTier          = errors.New("unknown tier")
	ErrInvalidWeekNumber    = errors.New("week number must be between 1 and 15")
	ErrPromptNotFound       = errors.New("unknown prompt id")
	ErrWeeklyNotStarted     = errors.New("weekly challenge not started")
	ErrWeeklyAlreadyStarted = errors.New("weekly challenge already started")
	ErrBadgeAlreadyAwarded  = errors.New("badge already awarded")
)

// IneligibleError is the expected "not yet" outcome of a badge award:
// the preconditions are simply not met. It carries how far along the
// user is so clients can render the gap.
type IneligibleError struct {
	Completed int
	Required  int
}

func (err *IneligibleError) Error() string {
	return fmt.Sprintf("not eligible: %d of %d completed", err.Completed, err.Required)
}

// AsIneligible unwraps err into an IneligibleError if it is one.
func AsIneligible(err error) (*IneligibleError, bool) {
	var ineligible *IneligibleError
	if errors.As(err, &ineligible) {
		return ineligible, true
	}
	return nil, false
}

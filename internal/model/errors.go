package model

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrInvalidDates       = errors.New("start and end dates are invalid")
	ErrZeroLengthDuration = errors.New("project has no duration")
)

// DateRangeError reports a rejected start/end pair.
// errors.Is(err, ErrInvalidDates) holds for every DateRangeError.
type DateRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *DateRangeError) Error() string {
	return fmt.Sprintf("%s: end %s is before start %s",
		ErrInvalidDates.Error(), e.End.Format(DateLayout), e.Start.Format(DateLayout))
}

func (e *DateRangeError) Unwrap() error {
	return ErrInvalidDates
}

package model

import "time"

// TimeBound is implemented by anything that owns a start and end day.
//
// The plain setters never reject input; callers wanting ordering checks use
// Allocation.SetRange or Allocation.Validate.
type TimeBound interface {
	StartDate() time.Time
	EndDate() time.Time
	SetStartDate(date time.Time) (time.Time, error)
	SetEndDate(date time.Time) (time.Time, error)
}

// Contribution is implemented by anything that contributes value over time.
type Contribution interface {
	ContributionOn(date time.Time) uint32
}

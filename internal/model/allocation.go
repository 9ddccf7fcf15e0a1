package model

import (
	"fmt"
	"time"
)

// Default placement for new allocations. These are planning placeholders,
// overridable through config.
var (
	DefaultLead   = Weeks(3)
	DefaultLength = Weeks(4)
)

// Allocation is the span of days a project is active for.
// A day is inside the allocation when start < day <= end.
type Allocation struct {
	start time.Time
	end   time.Time
}

// NewAllocation returns an allocation between two days. No ordering check is made.
func NewAllocation(start, end time.Time) Allocation {
	return Allocation{start: Truncate(start), end: Truncate(end)}
}

// DefaultAllocation starts lead after the clock's today and runs for length.
func DefaultAllocation(clock Clock, lead, length time.Duration) Allocation {
	if clock == nil {
		clock = SystemClock{}
	}
	start := addDays(clock.Today(), wholeDays(lead))
	return Allocation{start: start, end: addDays(start, wholeDays(length))}
}

// Duration returns end minus start. It is negative when end precedes start.
// Spans longer than time.Duration can hold saturate; Days is always exact.
func (a Allocation) Duration() time.Duration {
	return a.end.Sub(a.start)
}

// Days returns end minus start as a signed count of days.
func (a Allocation) Days() int {
	return daysBetween(a.start, a.end)
}

// IsActiveOn reports whether date falls after the start day and no later than the end day.
func (a Allocation) IsActiveOn(date time.Time) bool {
	d := Truncate(date)
	if !d.After(a.start) {
		return false
	}
	if d.After(a.end) {
		return false
	}
	return true
}

// Validate returns a *DateRangeError if the end day precedes the start day.
func (a Allocation) Validate() error {
	if a.end.Before(a.start) {
		return &DateRangeError{Start: a.start, End: a.end}
	}
	return nil
}

func (a Allocation) String() string {
	return fmt.Sprintf("%s to %s", a.start.Format(DateLayout), a.end.Format(DateLayout))
}

// StartDate implements TimeBound.
func (a Allocation) StartDate() time.Time { return a.start }

// EndDate implements TimeBound.
func (a Allocation) EndDate() time.Time { return a.end }

// SetStartDate overwrites the start day. It always succeeds.
func (a *Allocation) SetStartDate(date time.Time) (time.Time, error) {
	a.start = Truncate(date)
	return a.start, nil
}

// SetEndDate overwrites the end day. It always succeeds.
func (a *Allocation) SetEndDate(date time.Time) (time.Time, error) {
	a.end = Truncate(date)
	return a.end, nil
}

// SetRange replaces both days, rejecting an end before the start.
// On error the allocation is left unchanged.
func (a *Allocation) SetRange(start, end time.Time) error {
	next := NewAllocation(start, end)
	if err := next.Validate(); err != nil {
		return err
	}
	*a = next
	return nil
}

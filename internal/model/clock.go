package model

import "time"

// Clock supplies the current calendar day.
type Clock interface {
	Today() time.Time
}

// SystemClock reads the wall clock and reports today's UTC day.
type SystemClock struct{}

// Today implements Clock.
func (SystemClock) Today() time.Time {
	return Truncate(time.Now())
}

// FixedClock always reports the same day.
type FixedClock time.Time

// NewFixedClock pins a clock to the day containing t.
func NewFixedClock(t time.Time) FixedClock {
	return FixedClock(Truncate(t))
}

// Today implements Clock.
func (c FixedClock) Today() time.Time {
	return time.Time(c)
}

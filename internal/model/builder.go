package model

import (
	"fmt"
	"time"
)

// Defaults seeds a new ProjectBuilder.
type Defaults struct {
	Name   string
	Value  uint32
	Lead   time.Duration // gap between today and the default start
	Length time.Duration // default allocation length
}

// StandardDefaults returns the built-in builder defaults.
func StandardDefaults() Defaults {
	return Defaults{
		Name:   "New Project",
		Value:  20000,
		Lead:   DefaultLead,
		Length: DefaultLength,
	}
}

// ProjectBuilder constructs Projects. Every setter returns an updated copy,
// so a builder value can be reused as a template.
type ProjectBuilder struct {
	allocation Allocation
	name       string
	value      uint32
}

// NewProjectBuilder returns a builder placed relative to clock's today.
func NewProjectBuilder(clock Clock, d Defaults) ProjectBuilder {
	return ProjectBuilder{
		allocation: DefaultAllocation(clock, d.Lead, d.Length),
		name:       d.Name,
		value:      d.Value,
	}
}

// DefaultProjectBuilder uses the system clock and the standard defaults.
func DefaultProjectBuilder() ProjectBuilder {
	return NewProjectBuilder(SystemClock{}, StandardDefaults())
}

// StartDate moves the project to start on date, keeping its current duration.
func (b ProjectBuilder) StartDate(date time.Time) ProjectBuilder {
	days := b.allocation.Days()
	start := Truncate(date)
	b.allocation = Allocation{start: start, end: addDays(start, days)}
	return b
}

// Duration sets the project's length, keeping its current start.
// Partial days are truncated toward zero, so -36h is one day back.
func (b ProjectBuilder) Duration(d time.Duration) ProjectBuilder {
	return b.DurationDays(wholeDays(d))
}

// DurationWeeks sets the project's length in weeks.
func (b ProjectBuilder) DurationWeeks(n int) ProjectBuilder {
	return b.DurationDays(7 * n)
}

// DurationDays sets the project's length in days.
func (b ProjectBuilder) DurationDays(n int) ProjectBuilder {
	start := b.allocation.start
	b.allocation = Allocation{start: start, end: addDays(start, n)}
	return b
}

// Value sets the project's approximate value.
func (b ProjectBuilder) Value(v uint32) ProjectBuilder {
	b.value = v
	return b
}

// Name sets the project's name.
func (b ProjectBuilder) Name(name string) ProjectBuilder {
	b.name = name
	return b
}

// Build returns the Project. It never fails; see BuildStrict.
func (b ProjectBuilder) Build() Project {
	return Project{
		name:        b.name,
		approxValue: b.value,
		allocation:  b.allocation,
	}
}

// BuildStrict is Build with a duration check: a zero or negative duration
// yields ErrZeroLengthDuration.
func (b ProjectBuilder) BuildStrict() (Project, error) {
	if b.allocation.Days() <= 0 {
		return Project{}, fmt.Errorf("building %q: %w", b.name, ErrZeroLengthDuration)
	}
	return b.Build(), nil
}

// Package model defines the planning domain: allocations, projects and
// the builder used to construct them.
package model

import (
	"fmt"
	"time"
)

// Project represents a piece of work we might do in the future.
// All values are approximate. A Project is immutable; use ProjectBuilder.
type Project struct {
	name        string
	approxValue uint32
	allocation  Allocation
}

// DefaultProject returns the project a fresh builder would produce.
func DefaultProject(clock Clock) Project {
	return NewProjectBuilder(clock, StandardDefaults()).Build()
}

// Name returns the project's name.
func (p Project) Name() string { return p.name }

// Value returns the project's approximate value.
func (p Project) Value() uint32 { return p.approxValue }

// Duration returns the length of the project's allocation.
func (p Project) Duration() time.Duration { return p.allocation.Duration() }

// Allocation returns a copy of the project's allocation.
func (p Project) Allocation() Allocation { return p.allocation }

// ContributionOn returns the full value when the project is active on date, else 0.
func (p Project) ContributionOn(date time.Time) uint32 {
	if p.allocation.IsActiveOn(date) {
		return p.approxValue
	}
	return 0
}

func (p Project) String() string {
	return fmt.Sprintf("%s (%s) %d", p.name, p.allocation, p.approxValue)
}

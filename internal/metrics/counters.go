package metrics

import "github.com/san-kum/algoviz/internal/step"

// Metric accumulates a value over the steps of a sequence.
type Metric interface {
	Name() string
	Observe(s step.Step)
	Value() float64
	Reset()
}

// RoleCount counts the steps in which any of its roles is highlighted.
type RoleCount struct {
	name  string
	roles []step.Role
	count int
}

func NewRoleCount(name string, roles ...step.Role) *RoleCount {
	return &RoleCount{name: name, roles: roles}
}

func NewComparisons() *RoleCount { return NewRoleCount("comparisons", step.RoleCompared) }

func NewSwaps() *RoleCount { return NewRoleCount("swaps", step.RoleSwapped) }

func NewVisits() *RoleCount { return NewRoleCount("visits", step.RoleActive) }

func NewWrites() *RoleCount {
	return NewRoleCount("writes", step.RoleInserted, step.RoleUpdated, step.RoleRemoved)
}

func (r *RoleCount) Name() string { return r.name }

func (r *RoleCount) Observe(s step.Step) {
	for _, role := range r.roles {
		if len(s.Highlights[role]) > 0 {
			r.count++
			return
		}
	}
}

func (r *RoleCount) Value() float64 { return float64(r.count) }

func (r *RoleCount) Reset() { r.count = 0 }

// Steps counts every observed step.
type Steps struct {
	count int
}

func NewSteps() *Steps { return &Steps{} }

func (s *Steps) Name() string { return "steps" }

func (s *Steps) Observe(step.Step) { s.count++ }

func (s *Steps) Value() float64 { return float64(s.count) }

func (s *Steps) Reset() { s.count = 0 }

// Defaults returns a fresh set of the standard sequence metrics.
func Defaults() []Metric {
	return []Metric{NewSteps(), NewComparisons(), NewSwaps(), NewVisits(), NewWrites()}
}

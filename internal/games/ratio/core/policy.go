package core

import (
	"fmt"
	"sort"
)

// Policy decides whether a partitioning solves a level.
type Policy interface {
	Name() string
	Evaluate(l *Level, pt Partitioning) bool
}

// AdvancePolicy accepts every closed path.
type AdvancePolicy struct{}

func (AdvancePolicy) Name() string { return "advance" }

func (AdvancePolicy) Evaluate(*Level, Partitioning) bool { return true }

// ExactPolicy requires every region holding a piece to hold exactly the quota.
type ExactPolicy struct{}

func (ExactPolicy) Name() string { return "exact" }

func (ExactPolicy) Evaluate(l *Level, pt Partitioning) bool {
	for _, r := range pt.Regions {
		if !r.Counts.IsZero() && r.Counts != l.Quota {
			return false
		}
	}
	return true
}

// RatioPolicy requires every region to hold an integer multiple of the quota,
// so all regions keep the quota's square:triangle:circle ratio. Empty regions pass.
type RatioPolicy struct{}

func (RatioPolicy) Name() string { return "ratio" }

func (RatioPolicy) Evaluate(l *Level, pt Partitioning) bool {
	for _, r := range pt.Regions {
		if _, ok := r.Counts.MultipleOf(l.Quota); !ok {
			return false
		}
	}
	return true
}

// WithinPolicy requires no region to exceed the quota for any piece type.
type WithinPolicy struct{}

func (WithinPolicy) Name() string { return "within" }

func (WithinPolicy) Evaluate(l *Level, pt Partitioning) bool {
	for _, r := range pt.Regions {
		if r.Counts.Exceeds(l.Quota) {
			return false
		}
	}
	return true
}

// DefaultPolicy is the policy used when none is configured.
const DefaultPolicy = "ratio"

var policies = map[string]Policy{
	"advance": AdvancePolicy{},
	"exact":   ExactPolicy{},
	"ratio":   RatioPolicy{},
	"within":  WithinPolicy{},
}

// PolicyByName returns the named policy. An empty name selects DefaultPolicy.
func PolicyByName(name string) (Policy, error) {
	if name == "" {
		name = DefaultPolicy
	}
	p, ok := policies[name]
	if !ok {
		return nil, fmt.Errorf("core: unknown policy %q (want one of %v)", name, PolicyNames())
	}
	return p, nil
}

// PolicyNames returns the registered policy names, sorted.
func PolicyNames() []string {
	names := make([]string, 0, len(policies))
	for name := range policies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

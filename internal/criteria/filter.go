package criteria

import "slices"

// Filter is an ordered set of criteria combined with logical AND. It is
// engine-independent: storage implementations translate it into their
// own query language. Criteria keep parse order; order does not affect
// the result set.
type Filter struct {
	criteria []Criterion
}

// Build composes criteria into a conjunctive Filter. Zero criteria
// yield a nil Filter, meaning "no filter" (an unrestricted scan), never
// a filter that matches nothing.
func Build(criteria []Criterion) *Filter {
	if len(criteria) == 0 {
		return nil
	}

	return &Filter{criteria: slices.Clone(criteria)}
}

// Criteria returns the filter's criteria in parse order.
func (f *Filter) Criteria() []Criterion {
	return f.criteria
}

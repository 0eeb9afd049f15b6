package table

// Plan names the derived structures a specializing variant builds at load
// time. It is derived from the shipped query mix, not configured per
// deployment: variants read the plan instead of hard-wiring column ids.
type Plan struct {
	// ValueColumn is the column backing the ordered value index. It is
	// also the column every sum in the workload aggregates.
	ValueColumn int

	// CompositeOuter and CompositeInner are the columns of the composite
	// sum index. The workload bounds the outer column from above and the
	// inner column from below.
	CompositeOuter int
	CompositeInner int
}

// WorkloadPlan returns the plan implied by the four shipped operations:
// the sums and the update predicate read column 0, the two-sided filter
// reads columns 1 and 2.
func WorkloadPlan() Plan {
	return Plan{
		ValueColumn:    0,
		CompositeOuter: 2,
		CompositeInner: 1,
	}
}

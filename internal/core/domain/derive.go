package domain

import "slices"

// DerivedTask is a Task plus its computed display fields. Derived values are
// ephemeral: they are never written back onto the Task and are always
// recomputable from the Task alone.
type DerivedTask struct {
	Task

	// ROI is the return-on-effort ratio revenue/timeTaken. It is always
	// defined because timeTaken > 0 holds for every task in the collection.
	ROI float64
}

// Derive computes the per-task view. It never mutates its input.
func Derive(t Task) DerivedTask {
	return DerivedTask{
		Task: t,
		ROI:  t.Revenue / t.TimeTaken,
	}
}

// DeriveAll computes the derived view for every task, preserving input order.
func DeriveAll(tasks []Task) []DerivedTask {
	derived := make([]DerivedTask, 0, len(tasks))
	for _, t := range tasks {
		derived = append(derived, Derive(t))
	}
	return derived
}

// SortDerived orders derived tasks by ROI, descending. The sort is stable:
// tasks with equal ROI keep their relative input order, so output is
// reproducible. The input slice is not modified.
func SortDerived(derived []DerivedTask) []DerivedTask {
	ordered := slices.Clone(derived)
	slices.SortStableFunc(ordered, func(a, b DerivedTask) int {
		switch {
		case a.ROI > b.ROI:
			return -1
		case a.ROI < b.ROI:
			return 1
		default:
			return 0
		}
	})
	return ordered
}

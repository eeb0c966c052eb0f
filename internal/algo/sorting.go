package algo

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/step"
)

func checkSortable(a *Array, op string) step.Sequence {
	if len(a.Items) > SearchCapacity {
		return step.Rejectf(a, op, step.ErrCapacity,
			"Array has %d elements; at most %d can be visualised", len(a.Items), SearchCapacity)
	}
	return nil
}

// BubbleSort sorts with adjacent compares and swaps. After pass i the
// trailing i+1 elements are marked sorted.
func BubbleSort(a *Array) step.Sequence {
	if diag := checkSortable(a, "bubble"); diag != nil {
		return diag
	}
	w := a.Clone().(*Array)
	x := w.Items
	n := len(x)
	rec := step.NewRecorder()
	rec.Recordf(w, "Starting bubble sort on %d elements", n)

	for i := 0; i < n; i++ {
		sorted := step.On(step.RoleSorted, step.Span(n-i, n)...)
		for j := 0; j < n-i-1; j++ {
			rec.Record(w, fmt.Sprintf("Comparing %d and %d", x[j], x[j+1]),
				step.On(step.RoleCompared, step.Idx(j, j+1)...), sorted)
			if x[j] > x[j+1] {
				x[j], x[j+1] = x[j+1], x[j]
				rec.Record(w, fmt.Sprintf("Swapped %d and %d", x[j+1], x[j]),
					step.On(step.RoleSwapped, step.Idx(j, j+1)...), sorted)
			}
		}
		rec.Record(w, fmt.Sprintf("Pass %d complete: %d is in place", i+1, x[n-i-1]),
			step.On(step.RoleSorted, step.Span(n-i-1, n)...))
	}

	rec.Record(w, "Array sorted", step.On(step.RoleSorted, step.Span(0, n)...))
	return rec.Sequence()
}

// SelectionSort scans for the minimum of the unsorted suffix and performs at
// most one swap per pass.
func SelectionSort(a *Array) step.Sequence {
	if diag := checkSortable(a, "selection"); diag != nil {
		return diag
	}
	w := a.Clone().(*Array)
	x := w.Items
	n := len(x)
	rec := step.NewRecorder()
	rec.Recordf(w, "Starting selection sort on %d elements", n)

	for i := 0; i < n-1; i++ {
		sorted := step.On(step.RoleSorted, step.Span(0, i)...)
		minIdx := i
		for j := i + 1; j < n; j++ {
			rec.Record(w, fmt.Sprintf("Comparing minimum %d with %d", x[minIdx], x[j]),
				step.On(step.RoleCompared, step.Idx(minIdx, j)...), sorted)
			if x[j] < x[minIdx] {
				minIdx = j
				rec.Record(w, fmt.Sprintf("New minimum %d at index %d", x[minIdx], minIdx),
					step.On(step.RoleKey, step.Idx(minIdx)...), sorted)
			}
		}
		if minIdx != i {
			x[i], x[minIdx] = x[minIdx], x[i]
			rec.Record(w, fmt.Sprintf("Swapped %d into position %d", x[i], i),
				step.On(step.RoleSwapped, step.Idx(i, minIdx)...), sorted)
		}
		rec.Record(w, fmt.Sprintf("Position %d holds %d", i, x[i]),
			step.On(step.RoleSorted, step.Span(0, i+1)...))
	}

	rec.Record(w, "Array sorted", step.On(step.RoleSorted, step.Span(0, n)...))
	return rec.Sequence()
}

// InsertionSort grows a sorted prefix by shifting larger elements right and
// placing the key in the gap.
func InsertionSort(a *Array) step.Sequence {
	if diag := checkSortable(a, "insertion"); diag != nil {
		return diag
	}
	w := a.Clone().(*Array)
	x := w.Items
	n := len(x)
	rec := step.NewRecorder()
	rec.Record(w, fmt.Sprintf("Starting insertion sort on %d elements", n),
		step.On(step.RoleSorted, step.Span(0, min(1, n))...))

	for i := 1; i < n; i++ {
		key := x[i]
		sorted := step.On(step.RoleSorted, step.Span(0, i)...)
		rec.Record(w, fmt.Sprintf("Picked key %d", key),
			step.On(step.RoleKey, step.Idx(i)...), sorted)

		j := i - 1
		for j >= 0 {
			rec.Record(w, fmt.Sprintf("Comparing %d with key %d", x[j], key),
				step.On(step.RoleCompared, step.Idx(j)...), step.On(step.RoleKey, step.Idx(j+1)...), sorted)
			if x[j] <= key {
				break
			}
			x[j+1] = x[j]
			rec.Record(w, fmt.Sprintf("Shifted %d right", x[j]),
				step.On(step.RoleUpdated, step.Idx(j+1)...), sorted)
			j--
		}
		x[j+1] = key
		rec.Record(w, fmt.Sprintf("Placed %d at index %d", key, j+1),
			step.On(step.RoleInserted, step.Idx(j+1)...), step.On(step.RoleSorted, step.Span(0, i+1)...))
	}

	rec.Record(w, "Array sorted", step.On(step.RoleSorted, step.Span(0, n)...))
	return rec.Sequence()
}

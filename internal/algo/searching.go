package algo

import (
	"fmt"
	"sort"

	"github.com/san-kum/algoviz/internal/step"
)

// LinearSearch scans left to right and stops at the first match.
func LinearSearch(a *Array, target int) step.Sequence {
	if len(a.Items) > SearchCapacity {
		return step.Rejectf(a, "linear", step.ErrCapacity,
			"Array has %d elements; at most %d can be searched", len(a.Items), SearchCapacity)
	}
	w := a.Clone().(*Array)
	rec := step.NewRecorder()
	rec.Recordf(w, "Searching for %d", target)

	for i, v := range w.Items {
		rec.Record(w, fmt.Sprintf("Checking index %d: %d", i, v),
			step.On(step.RoleActive, step.Idx(i)...), step.On(step.RoleVisited, step.Span(0, i)...))
		if v == target {
			rec.Record(w, fmt.Sprintf("Found %d at index %d", target, i),
				step.On(step.RoleFound, step.Idx(i)...), step.On(step.RoleVisited, step.Span(0, i)...))
			return rec.Sequence()
		}
	}

	rec.Record(w, fmt.Sprintf("%d not found", target),
		step.On(step.RoleVisited, step.Span(0, len(w.Items))...))
	return rec.Sequence()
}

// BinarySearch sorts its working copy ascending, then narrows [low, high]
// around mid = (low+high)/2.
func BinarySearch(a *Array, target int) step.Sequence {
	if len(a.Items) > SearchCapacity {
		return step.Rejectf(a, "binary", step.ErrCapacity,
			"Array has %d elements; at most %d can be searched", len(a.Items), SearchCapacity)
	}
	w := a.Clone().(*Array)
	sort.Ints(w.Items)
	x := w.Items
	low, high := 0, len(x)-1

	rec := step.NewRecorder()
	rec.Record(w, fmt.Sprintf("Sorted the array; searching for %d", target), bounds(low, -1, high)...)

	for low <= high {
		mid := (low + high) / 2
		rec.Record(w, fmt.Sprintf("Checking middle index %d: %d", mid, x[mid]), bounds(low, mid, high)...)
		switch {
		case x[mid] == target:
			rec.Record(w, fmt.Sprintf("Found %d at index %d", target, mid),
				step.On(step.RoleFound, step.Idx(mid)...))
			return rec.Sequence()
		case x[mid] < target:
			rec.Record(w, fmt.Sprintf("%d < %d, discarding left half", x[mid], target),
				step.On(step.RoleRemoved, step.Span(low, mid+1)...))
			low = mid + 1
		default:
			rec.Record(w, fmt.Sprintf("%d > %d, discarding right half", x[mid], target),
				step.On(step.RoleRemoved, step.Span(mid, high+1)...))
			high = mid - 1
		}
		if low <= high {
			rec.Record(w, fmt.Sprintf("New range [%d, %d]", low, high), bounds(low, -1, high)...)
		}
	}

	rec.Recordf(w, "%d not found", target)
	return rec.Sequence()
}

func bounds(low, mid, high int) []step.Mark {
	marks := make([]step.Mark, 0, 3)
	if low >= 0 && low <= high {
		marks = append(marks, step.On(step.RoleLow, step.Idx(low)...), step.On(step.RoleHigh, step.Idx(high)...))
	}
	if mid >= 0 {
		marks = append(marks, step.On(step.RoleMid, step.Idx(mid)...))
	}
	return marks
}

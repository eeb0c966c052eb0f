package algo

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/step"
)

// ArrayInsert writes v at index, shifting the tail right one element per
// step, starting from the end.
func ArrayInsert(a *Array, index, v int) step.Sequence {
	n := len(a.Items)
	if n >= ArrayCapacity {
		return step.Rejectf(a, "insert", step.ErrCapacity, "Array is full: capacity %d reached", ArrayCapacity)
	}
	if index < 0 || index > n {
		return step.Rejectf(a, "insert", step.ErrInvalidOperand, "Index %d is out of bounds [0, %d]", index, n)
	}
	w := a.Clone().(*Array)
	rec := step.NewRecorder()
	rec.Record(w, fmt.Sprintf("Inserting %d at index %d", v, index), step.On(step.RolePointer, step.Idx(index)...))

	w.Items = append(w.Items, 0)
	for k := n; k > index; k-- {
		w.Items[k] = w.Items[k-1]
		rec.Record(w, fmt.Sprintf("Shifted %d from index %d to %d", w.Items[k], k-1, k),
			step.On(step.RoleUpdated, step.Idx(k)...), step.On(step.RoleActive, step.Idx(k-1)...))
	}
	w.Items[index] = v
	rec.Record(w, fmt.Sprintf("Inserted %d at index %d", v, index), step.On(step.RoleInserted, step.Idx(index)...))
	return rec.Sequence()
}

// ArrayDelete removes the element at index, shifting the tail left one
// element per step, then truncating.
func ArrayDelete(a *Array, index int) step.Sequence {
	n := len(a.Items)
	if n == 0 {
		return step.Reject(a, "delete", step.ErrUnderflow, "Array is empty: nothing to delete")
	}
	if index < 0 || index >= n {
		return step.Rejectf(a, "delete", step.ErrInvalidOperand, "Index %d is out of bounds [0, %d]", index, n-1)
	}
	w := a.Clone().(*Array)
	v := w.Items[index]
	rec := step.NewRecorder()
	rec.Record(w, fmt.Sprintf("Read %d at index %d for deletion", v, index), step.On(step.RoleRemoved, step.Idx(index)...))

	for k := index; k < n-1; k++ {
		w.Items[k] = w.Items[k+1]
		rec.Record(w, fmt.Sprintf("Shifted %d from index %d to %d", w.Items[k], k+1, k),
			step.On(step.RoleUpdated, step.Idx(k)...), step.On(step.RoleActive, step.Idx(k+1)...))
	}
	w.Items = w.Items[:n-1]
	rec.Recordf(w, "Deleted %d; array now has %d elements", v, n-1)
	return rec.Sequence()
}

// ArrayUpdate overwrites the element at index.
func ArrayUpdate(a *Array, index, v int) step.Sequence {
	n := len(a.Items)
	if index < 0 || index >= n {
		return step.Rejectf(a, "update", step.ErrInvalidOperand, "Index %d is out of bounds [0, %d]", index, n-1)
	}
	w := a.Clone().(*Array)
	old := w.Items[index]
	rec := step.NewRecorder()
	rec.Record(w, fmt.Sprintf("Read %d at index %d", old, index), step.On(step.RoleActive, step.Idx(index)...))

	w.Items[index] = v
	rec.Record(w, fmt.Sprintf("Updated index %d from %d to %d", index, old, v), step.On(step.RoleUpdated, step.Idx(index)...))
	return rec.Sequence()
}

// ArrayTraverse visits every index in order.
func ArrayTraverse(a *Array) step.Sequence {
	w := a.Clone().(*Array)
	n := len(w.Items)
	rec := step.NewRecorder()
	rec.Recordf(w, "Traversing %d elements", n)

	for i, v := range w.Items {
		rec.Record(w, fmt.Sprintf("Visiting index %d: %d", i, v),
			step.On(step.RoleActive, step.Idx(i)...), step.On(step.RoleVisited, step.Span(0, i)...))
	}
	rec.Record(w, fmt.Sprintf("Traversal complete: %s", w), step.On(step.RoleVisited, step.Span(0, n)...))
	return rec.Sequence()
}

package algo

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/step"
)

// HeapInsert appends v and sifts it up while it is larger than its parent.
func HeapInsert(h *Heap, v int) step.Sequence {
	if len(h.Items) >= HeapCapacity {
		return step.Rejectf(h, "insert", step.ErrCapacity, "Heap is full: capacity %d reached", HeapCapacity)
	}
	w := h.Clone().(*Heap)
	x := append(w.Items, v)
	w.Items = x
	rec := step.NewRecorder()
	rec.Recordf(h, "Inserting %d", v)
	rec.Record(w, fmt.Sprintf("Appended %d at index %d", v, len(x)-1), step.On(step.RoleInserted, step.Idx(len(x)-1)...))

	i := len(x) - 1
	for i > 0 {
		p := (i - 1) / 2
		rec.Record(w, fmt.Sprintf("Comparing %d with parent %d", x[i], x[p]), step.On(step.RoleCompared, step.Idx(i, p)...))
		if x[i] <= x[p] {
			rec.Record(w, "Heap property holds", step.On(step.RoleSorted, step.Idx(p, i)...))
			break
		}
		x[i], x[p] = x[p], x[i]
		rec.Record(w, fmt.Sprintf("Swapped %d up to index %d", x[p], p), step.On(step.RoleSwapped, step.Idx(i, p)...))
		i = p
	}

	rec.Record(w, fmt.Sprintf("Insert of %d complete", v), step.On(step.RoleInserted, step.Idx(i)...))
	return rec.Sequence()
}

// HeapExtract removes the root, moves the last element up and sifts it
// down towards the larger child until the heap property holds.
func HeapExtract(h *Heap) step.Sequence {
	if len(h.Items) == 0 {
		return step.Reject(h, "extract", step.ErrUnderflow, "Heap underflow: nothing to extract")
	}
	w := h.Clone().(*Heap)
	root := w.Items[0]
	rec := step.NewRecorder()
	rec.Record(w, fmt.Sprintf("Extracting max %d", root), step.On(step.RoleRemoved, "0"))

	n := len(w.Items)
	if n == 1 {
		w.Items = w.Items[:0]
		rec.Recordf(w, "Extracted %d; heap is empty", root)
		return rec.Sequence()
	}
	w.Items[0] = w.Items[n-1]
	w.Items = w.Items[:n-1]
	x := w.Items
	rec.Record(w, fmt.Sprintf("Moved last element %d to the root", x[0]), step.On(step.RoleUpdated, "0"))

	i := 0
	for {
		l, r := 2*i+1, 2*i+2
		if l >= len(x) {
			break
		}
		larger := l
		if r < len(x) {
			rec.Record(w, fmt.Sprintf("Comparing children %d and %d", x[l], x[r]), step.On(step.RoleCompared, step.Idx(l, r)...))
			if x[r] > x[l] {
				larger = r
			}
		}
		rec.Record(w, fmt.Sprintf("Comparing %d with larger child %d", x[i], x[larger]),
			step.On(step.RoleCompared, step.Idx(i, larger)...))
		if x[larger] <= x[i] {
			rec.Record(w, "Heap property holds", step.On(step.RoleSorted, step.Idx(i)...))
			break
		}
		x[i], x[larger] = x[larger], x[i]
		rec.Record(w, fmt.Sprintf("Swapped %d down to index %d", x[larger], larger), step.On(step.RoleSwapped, step.Idx(i, larger)...))
		i = larger
	}

	rec.Recordf(w, "Extracted %d", root)
	return rec.Sequence()
}

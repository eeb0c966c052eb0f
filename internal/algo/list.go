package algo

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/step"
)

func (l *List) ids(from, to int) []string {
	out := make([]string, 0, max(to-from, 0))
	for i := from; i < to && i < len(l.Nodes); i++ {
		out = append(out, l.Nodes[i].ID)
	}
	return out
}

// loop describes the tail-to-head link of a circular list.
func (l *List) loop(msg string, marks ...step.Mark) (string, []step.Mark) {
	if !l.Circular || len(l.Nodes) == 0 {
		return msg, marks
	}
	head := l.Nodes[0]
	msg = fmt.Sprintf("%s; tail links back to head %d", msg, head.Value)
	return msg, append(marks, step.On(step.RolePointer, head.ID))
}

// walk records one pointer hop per node from the head up to and including
// position last.
func (l *List) walk(rec *step.Recorder, last int) {
	for k := 0; k <= last && k < len(l.Nodes); k++ {
		n := l.Nodes[k]
		rec.Record(l, fmt.Sprintf("Pointer at node %d (position %d)", n.Value, k),
			step.On(step.RolePointer, n.ID), step.On(step.RoleVisited, l.ids(0, k)...))
	}
}

func ListInsertHead(l *List, v int) step.Sequence {
	return listInsert(l, "insert_head", 0, v)
}

func ListInsertTail(l *List, v int) step.Sequence {
	return listInsert(l, "insert_tail", len(l.Nodes), v)
}

// ListInsertAt links a new node so that it ends up at position index.
func ListInsertAt(l *List, index, v int) step.Sequence {
	return listInsert(l, "insert_at", index, v)
}

func listInsert(l *List, op string, index, v int) step.Sequence {
	n := len(l.Nodes)
	if n >= ListCapacity {
		return step.Rejectf(l, op, step.ErrCapacity, "List is full: capacity %d reached", ListCapacity)
	}
	if index < 0 || index > n {
		return step.Rejectf(l, op, step.ErrInvalidOperand, "Position %d is out of bounds [0, %d]", index, n)
	}
	w := l.Clone().(*List)
	rec := step.NewRecorder()
	rec.Recordf(w, "Inserting %d at position %d", v, index)
	w.walk(rec, index-1)

	node := w.newNode(v)
	w.Nodes = append(w.Nodes, ListNode{})
	copy(w.Nodes[index+1:], w.Nodes[index:])
	w.Nodes[index] = node

	where := fmt.Sprintf("at position %d", index)
	switch index {
	case 0:
		where = "as the new head"
	case n:
		where = "as the new tail"
	}
	msg, marks := w.loop(fmt.Sprintf("Linked %d %s", v, where), step.On(step.RoleInserted, node.ID))
	rec.Record(w, msg, marks...)
	return rec.Sequence()
}

func ListDeleteHead(l *List) step.Sequence {
	return listDelete(l, "delete_head", 0)
}

func ListDeleteTail(l *List) step.Sequence {
	return listDelete(l, "delete_tail", len(l.Nodes)-1)
}

// ListDeleteAt unlinks the node at position index.
func ListDeleteAt(l *List, index int) step.Sequence {
	return listDelete(l, "delete_at", index)
}

func listDelete(l *List, op string, index int) step.Sequence {
	n := len(l.Nodes)
	if n == 0 {
		return step.Reject(l, op, step.ErrUnderflow, "List is empty: nothing to delete")
	}
	if index < 0 || index >= n {
		return step.Rejectf(l, op, step.ErrInvalidOperand, "Position %d is out of bounds [0, %d]", index, n-1)
	}
	w := l.Clone().(*List)
	rec := step.NewRecorder()
	rec.Recordf(w, "Deleting position %d", index)
	w.walk(rec, index-1)

	target := w.Nodes[index]
	rec.Record(w, fmt.Sprintf("Unlinking node %d", target.Value), step.On(step.RoleRemoved, target.ID))

	w.Nodes = append(w.Nodes[:index], w.Nodes[index+1:]...)
	msg := fmt.Sprintf("Deleted %d", target.Value)
	if len(w.Nodes) == 0 {
		msg += "; list is empty"
	}
	msg, marks := w.loop(msg)
	rec.Record(w, msg, marks...)
	return rec.Sequence()
}

// ListSearch walks from the head and stops at the first node holding target.
func ListSearch(l *List, target int) step.Sequence {
	w := l.Clone().(*List)
	rec := step.NewRecorder()
	rec.Recordf(w, "Searching for %d", target)

	for k, n := range w.Nodes {
		rec.Record(w, fmt.Sprintf("Checking node %d (position %d)", n.Value, k),
			step.On(step.RoleActive, n.ID), step.On(step.RoleVisited, w.ids(0, k)...))
		if n.Value == target {
			rec.Record(w, fmt.Sprintf("Found %d at position %d", target, k), step.On(step.RoleFound, n.ID))
			return rec.Sequence()
		}
	}

	msg := fmt.Sprintf("%d not found", target)
	if w.Circular && len(w.Nodes) > 0 {
		msg += " after returning to the head"
	}
	rec.Record(w, msg, step.On(step.RoleVisited, w.ids(0, len(w.Nodes))...))
	return rec.Sequence()
}

package algo

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/step"
)

func ends(n int) []step.Mark {
	if n == 0 {
		return nil
	}
	return []step.Mark{step.On(step.RoleFront, "0"), step.On(step.RoleRear, step.Idx(n-1)...)}
}

// Enqueue appends v at the rear.
func Enqueue(q *Queue, v int) step.Sequence {
	if len(q.Items) >= QueueCapacity {
		return step.Rejectf(q, "enqueue", step.ErrCapacity, "Queue overflow: capacity %d reached", QueueCapacity)
	}
	w := q.Clone().(*Queue)
	rec := step.NewRecorder()
	rec.Record(w, fmt.Sprintf("Enqueueing %d", v), ends(len(w.Items))...)

	w.Items = append(w.Items, v)
	n := len(w.Items)
	rec.Record(w, fmt.Sprintf("Enqueued %d at the rear", v),
		append(ends(n), step.On(step.RoleInserted, step.Idx(n-1)...))...)
	return rec.Sequence()
}

// Dequeue removes the front element.
func Dequeue(q *Queue) step.Sequence {
	if len(q.Items) == 0 {
		return step.Reject(q, "dequeue", step.ErrUnderflow, "Queue underflow: nothing to dequeue")
	}
	w := q.Clone().(*Queue)
	v := w.Items[0]
	rec := step.NewRecorder()
	rec.Record(w, fmt.Sprintf("Dequeueing %d from the front", v),
		append(ends(len(w.Items)), step.On(step.RoleRemoved, "0"))...)

	w.Items = w.Items[1:]
	msg := fmt.Sprintf("Dequeued %d", v)
	if len(w.Items) == 0 {
		msg += "; queue is empty"
	}
	rec.Record(w, msg, ends(len(w.Items))...)
	return rec.Sequence()
}

// PeekQueue highlights the front element.
func PeekQueue(q *Queue) step.Sequence {
	if len(q.Items) == 0 {
		return step.Reject(q, "peek", step.ErrUnderflow, "Queue underflow: nothing to peek")
	}
	rec := step.NewRecorder()
	rec.Record(q, "Peeking at the front", ends(len(q.Items))...)
	rec.Record(q, fmt.Sprintf("Front element is %d", q.Items[0]), step.On(step.RoleFound, "0"))
	return rec.Sequence()
}

// End selects a side of a deque.
type End int

const (
	Front End = iota
	Rear
)

func (e End) String() string {
	if e == Front {
		return "front"
	}
	return "rear"
}

func (e End) index(n int) int {
	if e == Front {
		return 0
	}
	return n - 1
}

// DequePush inserts v at the given end.
func DequePush(d *Deque, at End, v int) step.Sequence {
	op := "push_" + at.String()
	if len(d.Items) >= DequeCapacity {
		return step.Rejectf(d, op, step.ErrCapacity, "Deque overflow: capacity %d reached", DequeCapacity)
	}
	w := d.Clone().(*Deque)
	rec := step.NewRecorder()
	rec.Record(w, fmt.Sprintf("Inserting %d at the %s", v, at), ends(len(w.Items))...)

	if at == Front {
		w.Items = append([]int{v}, w.Items...)
	} else {
		w.Items = append(w.Items, v)
	}
	n := len(w.Items)
	rec.Record(w, fmt.Sprintf("Inserted %d at the %s", v, at),
		append(ends(n), step.On(step.RoleInserted, step.Idx(at.index(n))...))...)
	return rec.Sequence()
}

// DequePop removes the element at the given end.
func DequePop(d *Deque, at End) step.Sequence {
	op := "pop_" + at.String()
	if len(d.Items) == 0 {
		return step.Rejectf(d, op, step.ErrUnderflow, "Deque underflow: nothing to remove from the %s", at)
	}
	w := d.Clone().(*Deque)
	n := len(w.Items)
	i := at.index(n)
	v := w.Items[i]
	rec := step.NewRecorder()
	rec.Record(w, fmt.Sprintf("Removing %d from the %s", v, at),
		append(ends(n), step.On(step.RoleRemoved, step.Idx(i)...))...)

	if at == Front {
		w.Items = w.Items[1:]
	} else {
		w.Items = w.Items[:n-1]
	}
	msg := fmt.Sprintf("Removed %d from the %s", v, at)
	if len(w.Items) == 0 {
		msg += "; deque is empty"
	}
	rec.Record(w, msg, ends(len(w.Items))...)
	return rec.Sequence()
}

// DequePeek highlights the element at the given end.
func DequePeek(d *Deque, at End) step.Sequence {
	if len(d.Items) == 0 {
		return step.Rejectf(d, "peek_"+at.String(), step.ErrUnderflow, "Deque underflow: nothing to peek at the %s", at)
	}
	i := at.index(len(d.Items))
	rec := step.NewRecorder()
	rec.Record(d, fmt.Sprintf("Peeking at the %s", at), ends(len(d.Items))...)
	rec.Record(d, fmt.Sprintf("%s element is %d", capitalize(at.String()), d.Items[i]),
		step.On(step.RoleFound, step.Idx(i)...))
	return rec.Sequence()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

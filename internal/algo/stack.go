package algo

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/step"
)

var top = step.Idx(0)

// Push places v on top of the stack.
func Push(s *Stack, v int) step.Sequence {
	if len(s.Items) >= StackCapacity {
		return step.Rejectf(s, "push", step.ErrCapacity, "Stack overflow: capacity %d reached", StackCapacity)
	}
	w := s.Clone().(*Stack)
	rec := step.NewRecorder()
	if len(w.Items) > 0 {
		rec.Record(w, fmt.Sprintf("Pushing %d", v), step.On(step.RolePointer, top...))
	} else {
		rec.Recordf(w, "Pushing %d onto an empty stack", v)
	}

	w.Items = append([]int{v}, w.Items...)
	rec.Record(w, fmt.Sprintf("Pushed %d onto the top", v),
		step.On(step.RoleInserted, top...), step.On(step.RolePointer, top...))
	return rec.Sequence()
}

// Pop removes the top of the stack.
func Pop(s *Stack) step.Sequence {
	if len(s.Items) == 0 {
		return step.Reject(s, "pop", step.ErrUnderflow, "Stack underflow: nothing to pop")
	}
	w := s.Clone().(*Stack)
	v := w.Items[0]
	rec := step.NewRecorder()
	rec.Record(w, fmt.Sprintf("Popping %d from the top", v), step.On(step.RoleRemoved, top...))

	w.Items = w.Items[1:]
	msg := fmt.Sprintf("Popped %d", v)
	if len(w.Items) == 0 {
		msg += "; stack is empty"
		rec.Record(w, msg)
	} else {
		rec.Record(w, msg, step.On(step.RolePointer, top...))
	}
	return rec.Sequence()
}

// PeekStack highlights the top without removing it.
func PeekStack(s *Stack) step.Sequence {
	if len(s.Items) == 0 {
		return step.Reject(s, "peek", step.ErrUnderflow, "Stack underflow: nothing to peek")
	}
	rec := step.NewRecorder()
	rec.Record(s, "Peeking at the top", step.On(step.RolePointer, top...))
	rec.Record(s, fmt.Sprintf("Top element is %d", s.Items[0]), step.On(step.RoleFound, top...))
	return rec.Sequence()
}

package algo

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/step"
)

func (r *Ring) pointers() []step.Mark {
	if r.Size == 0 {
		return nil
	}
	return []step.Mark{step.On(step.RoleFront, step.Idx(r.Front)...), step.On(step.RoleRear, step.Idx(r.Rear)...)}
}

func (r *Ring) consistent() bool {
	if r.Capacity <= 0 || len(r.Slots) != r.Capacity || r.Size < 0 || r.Size > r.Capacity {
		return false
	}
	if r.Size == 0 {
		return r.Front == -1 && r.Rear == -1
	}
	if r.Front < 0 || r.Front >= r.Capacity || r.Rear < 0 || r.Rear >= r.Capacity {
		return false
	}
	return r.Rear == (r.Front+r.Size-1)%r.Capacity
}

// RingEnqueue advances rear modulo capacity, then writes v into the slot.
// The ring is full exactly when Size equals Capacity.
func RingEnqueue(r *Ring, v int) step.Sequence {
	if !r.consistent() {
		return step.Reject(r, "enqueue", step.ErrInvalidOperand, "Ring buffer state is inconsistent")
	}
	if r.Size >= r.Capacity {
		return step.Rejectf(r, "enqueue", step.ErrCapacity, "Queue overflow: all %d slots are full", r.Capacity)
	}
	w := r.Clone().(*Ring)
	rec := step.NewRecorder()
	rec.Record(w, fmt.Sprintf("Enqueueing %d", v), w.pointers()...)

	msg := ""
	if w.Front == -1 {
		w.Front = 0
		msg = "; front set to 0"
	}
	w.Rear = (w.Rear + 1) % w.Capacity
	rec.Record(w, fmt.Sprintf("Rear advances to slot %d%s", w.Rear, msg),
		step.On(step.RoleFront, step.Idx(w.Front)...), step.On(step.RoleRear, step.Idx(w.Rear)...))

	w.Slots[w.Rear] = Slot{Value: v, Filled: true}
	w.Size++
	rec.Record(w, fmt.Sprintf("Wrote %d into slot %d (size %d)", v, w.Rear, w.Size),
		append(w.pointers(), step.On(step.RoleInserted, step.Idx(w.Rear)...))...)
	return rec.Sequence()
}

// RingDequeue clears the front slot, then advances front or resets both
// pointers to -1 when the ring becomes empty.
func RingDequeue(r *Ring) step.Sequence {
	if !r.consistent() {
		return step.Reject(r, "dequeue", step.ErrInvalidOperand, "Ring buffer state is inconsistent")
	}
	if r.Size == 0 {
		return step.Reject(r, "dequeue", step.ErrUnderflow, "Queue underflow: nothing to dequeue")
	}
	w := r.Clone().(*Ring)
	rec := step.NewRecorder()
	f := w.Front
	v := w.Slots[f].Value
	rec.Record(w, fmt.Sprintf("Dequeueing %d from slot %d", v, f),
		append(w.pointers(), step.On(step.RoleRemoved, step.Idx(f)...))...)

	w.Slots[f] = Slot{}
	w.Size--
	rec.Record(w, fmt.Sprintf("Cleared slot %d (size %d)", f, w.Size),
		step.On(step.RoleRemoved, step.Idx(f)...), step.On(step.RoleFront, step.Idx(f)...))

	if w.Size == 0 {
		w.Front, w.Rear = -1, -1
		rec.Recordf(w, "Dequeued %d; queue is empty, front and rear reset to -1", v)
		return rec.Sequence()
	}
	w.Front = (w.Front + 1) % w.Capacity
	rec.Record(w, fmt.Sprintf("Dequeued %d; front advances to slot %d", v, w.Front), w.pointers()...)
	return rec.Sequence()
}

// RingPeek highlights the front slot.
func RingPeek(r *Ring) step.Sequence {
	if !r.consistent() {
		return step.Reject(r, "peek", step.ErrInvalidOperand, "Ring buffer state is inconsistent")
	}
	if r.Size == 0 {
		return step.Reject(r, "peek", step.ErrUnderflow, "Queue underflow: nothing to peek")
	}
	rec := step.NewRecorder()
	rec.Record(r, "Peeking at the front", r.pointers()...)
	rec.Record(r, fmt.Sprintf("Front element is %d", r.Slots[r.Front].Value),
		step.On(step.RoleFound, step.Idx(r.Front)...))
	return rec.Sequence()
}

package step

import "fmt"

// Recorder accumulates steps from a generator's working copy. Every recorded
// structure is cloned, so the caller may keep mutating its buffer.
type Recorder struct {
	steps Sequence
}

func NewRecorder() *Recorder {
	return &Recorder{steps: make(Sequence, 0, 16)}
}

// Record appends a step holding a snapshot of s.
func (r *Recorder) Record(s Structure, msg string, marks ...Mark) {
	r.steps = append(r.steps, Step{
		State:      s.Clone(),
		Highlights: highlightsOf(marks),
		Message:    msg,
	})
}

// Recordf is Record with a formatted message and no highlights.
func (r *Recorder) Recordf(s Structure, format string, args ...any) {
	r.Record(s, fmt.Sprintf(format, args...))
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int { return len(r.steps) }

// Sequence returns the recorded steps.
func (r *Recorder) Sequence() Sequence {
	out := make(Sequence, len(r.steps))
	copy(out, r.steps)
	return out
}

// Reject returns the single-step sequence of a rejected operation. The
// structure is cloned unchanged.
func Reject(s Structure, op string, cause error, msg string) Sequence {
	return Sequence{{
		State:      s.Clone(),
		Highlights: Highlights{},
		Message:    msg,
		Err:        &Diagnostic{Op: op, Detail: msg, Wrapped: cause},
	}}
}

// Rejectf is Reject with a formatted message.
func Rejectf(s Structure, op string, cause error, format string, args ...any) Sequence {
	return Reject(s, op, cause, fmt.Sprintf(format, args...))
}

// Package step provides the shared primitives of the step-indexed simulation
// engine.
//
// A generator turns one operation on a data structure into a [Sequence] of
// [Step] values. Each step carries a deep copy of the structure, the
// [Highlights] naming the role of every element touched by that step, and a
// message explaining it:
//
//   - [Structure]: snapshot of a data structure that can deep-copy itself
//   - [Step]: one replayable frame of an operation
//   - [Sequence]: the ordered, non-empty list of steps for one operation
//   - [Recorder]: clone-before-mutate helper used by every generator
//   - [Diagnostic]: the error carried by a single-step rejection
//
// # Example
//
//	rec := step.NewRecorder()
//	rec.Record(arr, "Comparing 5 and 3", step.On(step.RoleCompared, step.Idx(0, 1)...))
//	seq := rec.Sequence()
//
// # Immutability
//
// Steps are never mutated after they are recorded. Every structure passed to
// [Recorder.Record] or [Reject] is cloned, so later mutations of a working
// copy cannot leak into earlier steps.
package step

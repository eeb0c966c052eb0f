// Package playback replays step sequences under user control.
//
// A [Controller] owns one history of steps and a cursor into it. It is
// generator-agnostic: any [step.Sequence] can be run from scratch or
// appended after the cursor. Auto-advance is driven by a [Scheduler], with
// exactly one active timer at a time.
//
//	c := playback.New(playback.WithInterval(800 * time.Millisecond))
//	_ = c.Run(algo.BinarySearch(arr, 30))
//	c.Pause()
//	c.Jump(c.Len() - 1)
//
// # Thread Safety
//
// Controller methods may be called from any goroutine. Timer callbacks run
// on the scheduler's goroutine and are serialised with manual navigation.
package playback

package playback

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/san-kum/algoviz/internal/logging"
	"github.com/san-kum/algoviz/internal/step"
)

// DefaultInterval is the auto-advance period when none is configured.
const DefaultInterval = time.Second

var ErrEmptySequence = errors.New("playback: empty sequence")

// Change describes the controller after a mutation.
type Change struct {
	Step   step.Step
	Cursor int
	Len    int
	State  State
}

// Option configures a Controller.
type Option func(*Controller)

func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

func WithInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// Controller owns a step history, a cursor and the auto-advance timer.
type Controller struct {
	mu       sync.Mutex
	history  step.Sequence
	cursor   int
	state    State
	interval time.Duration
	sched    Scheduler
	cancel   func()
	gen      uint64
	onChange []func(Change)
	logger   *slog.Logger
}

func New(opts ...Option) *Controller {
	c := &Controller{
		interval: DefaultInterval,
		sched:    TickerScheduler{},
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnChange registers fn to be called after every cursor, history or state
// change. Callbacks run without the controller lock held.
func (c *Controller) OnChange(fn func(Change)) {
	c.mu.Lock()
	c.onChange = append(c.onChange, fn)
	c.mu.Unlock()
}

// Run replaces the history, rewinds to the first step and starts playing.
func (c *Controller) Run(seq step.Sequence) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	c.mu.Lock()
	c.stopLocked()
	c.history = append(make(step.Sequence, 0, len(seq)), seq...)
	c.cursor = 0
	c.state = c.state.Transition(Playing)
	c.startLocked()
	c.logger.Debug("run", "steps", len(seq))
	ch := c.changeLocked()
	c.mu.Unlock()

	c.notify(ch)
	return nil
}

// Append drops every step after the cursor, adds seq and moves the cursor
// to its first step. On an empty controller it behaves like Run.
func (c *Controller) Append(seq step.Sequence) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	c.mu.Lock()
	if len(c.history) == 0 {
		c.mu.Unlock()
		return c.Run(seq)
	}
	c.stopLocked()
	kept := c.history[:c.cursor+1]
	history := make(step.Sequence, 0, len(kept)+len(seq))
	history = append(history, kept...)
	c.history = append(history, seq...)
	c.cursor = len(kept)
	c.state = c.state.Transition(Playing)
	c.startLocked()
	c.logger.Debug("append", "steps", len(seq), "cursor", c.cursor, "len", len(c.history))
	ch := c.changeLocked()
	c.mu.Unlock()

	c.notify(ch)
	return nil
}

// Next advances the cursor by one, clamped to the last step.
func (c *Controller) Next() step.Step {
	return c.move(func(cur int) int { return cur + 1 })
}

// Prev moves the cursor back by one, clamped to the first step.
func (c *Controller) Prev() step.Step {
	return c.move(func(cur int) int { return cur - 1 })
}

// Jump moves the cursor to i, clamped to the history bounds.
func (c *Controller) Jump(i int) step.Step {
	return c.move(func(int) int { return i })
}

// Reset rewinds to the first step. History is kept and an active timer
// keeps running from there; a finished controller becomes paused.
func (c *Controller) Reset() {
	c.mu.Lock()
	if len(c.history) == 0 {
		c.mu.Unlock()
		return
	}
	c.cursor = 0
	if c.state == Finished {
		c.state = c.state.Transition(Paused)
	}
	ch := c.changeLocked()
	c.mu.Unlock()

	c.notify(ch)
}

// Play starts auto-advance. At the last step there is nothing left to play,
// so the controller finishes without moving the cursor.
func (c *Controller) Play() {
	c.mu.Lock()
	if len(c.history) == 0 || c.state == Playing || c.state == Finished {
		c.mu.Unlock()
		return
	}
	if c.cursor == len(c.history)-1 {
		c.state = c.state.Transition(Finished)
	} else {
		c.state = c.state.Transition(Playing)
		c.startLocked()
	}
	ch := c.changeLocked()
	c.mu.Unlock()

	c.notify(ch)
}

// Pause stops auto-advance without moving the cursor.
func (c *Controller) Pause() {
	c.mu.Lock()
	if c.state != Playing {
		c.mu.Unlock()
		return
	}
	c.stopLocked()
	c.state = c.state.Transition(Paused)
	ch := c.changeLocked()
	c.mu.Unlock()

	c.notify(ch)
}

// Toggle pauses a playing controller and plays any other.
func (c *Controller) Toggle() {
	if c.IsPlaying() {
		c.Pause()
	} else {
		c.Play()
	}
}

// Stop cancels the active timer. It is used before switching operations
// and on teardown.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.stopLocked()
	if c.state != Playing {
		c.mu.Unlock()
		return
	}
	c.state = c.state.Transition(Paused)
	ch := c.changeLocked()
	c.mu.Unlock()

	c.notify(ch)
}

// SetInterval changes the auto-advance period, restarting the timer when
// playing. Non-positive durations are ignored.
func (c *Controller) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.interval = d
	if c.state == Playing {
		c.stopLocked()
		c.startLocked()
	}
}

func (c *Controller) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

// CurrentStep returns the step under the cursor, or the zero step when the
// history is empty.
func (c *Controller) CurrentStep() step.Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentLocked()
}

func (c *Controller) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.history)
}

func (c *Controller) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == Playing
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// History returns a copy of the step history.
func (c *Controller) History() step.Sequence {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append(step.Sequence(nil), c.history...)
}

func (c *Controller) move(to func(int) int) step.Step {
	c.mu.Lock()
	if len(c.history) == 0 {
		c.mu.Unlock()
		return step.Step{}
	}
	c.cursor = clamp(to(c.cursor), len(c.history))
	if c.state == Finished && c.cursor < len(c.history)-1 {
		c.state = c.state.Transition(Paused)
	}
	ch := c.changeLocked()
	c.mu.Unlock()

	c.notify(ch)
	return ch.Step
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.state != Playing {
		c.mu.Unlock()
		return
	}
	last := len(c.history) - 1
	if c.cursor < last {
		c.cursor++
	}
	if c.cursor >= last {
		c.stopLocked()
		c.state = c.state.Transition(Finished)
		c.logger.Debug("finished", "cursor", c.cursor)
	}
	ch := c.changeLocked()
	c.mu.Unlock()

	c.notify(ch)
}

func (c *Controller) startLocked() {
	c.gen++
	gen := c.gen
	c.cancel = c.sched.Every(c.interval, func() { c.tick(gen) })
}

func (c *Controller) stopLocked() {
	c.gen++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller) currentLocked() step.Step {
	if len(c.history) == 0 {
		return step.Step{}
	}
	return c.history[c.cursor]
}

func (c *Controller) changeLocked() Change {
	return Change{Step: c.currentLocked(), Cursor: c.cursor, Len: len(c.history), State: c.state}
}

func (c *Controller) notify(ch Change) {
	c.mu.Lock()
	fns := append([]func(Change){}, c.onChange...)
	c.mu.Unlock()
	for _, fn := range fns {
		fn(ch)
	}
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

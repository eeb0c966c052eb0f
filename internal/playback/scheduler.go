package playback

import (
	"sync"
	"time"
)

// Scheduler runs fn repeatedly every d until the returned cancel is called.
// Cancel must be idempotent and safe to call from inside fn.
type Scheduler interface {
	Every(d time.Duration, fn func()) (cancel func())
}

// TickerScheduler fires callbacks from a time.Ticker goroutine.
type TickerScheduler struct{}

func (TickerScheduler) Every(d time.Duration, fn func()) func() {
	t := time.NewTicker(d)
	stop := make(chan struct{})
	go func() {
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				select {
				case <-stop:
					return
				default:
				}
				fn()
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(stop) }) }
}

// ManualScheduler fires callbacks only when Tick is called. It drives
// playback in tests and in non-interactive replays.
type ManualScheduler struct {
	mu     sync.Mutex
	next   int
	timers map[int]manualTimer
}

type manualTimer struct {
	interval time.Duration
	fn       func()
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{timers: make(map[int]manualTimer)}
}

func (m *ManualScheduler) Every(d time.Duration, fn func()) func() {
	m.mu.Lock()
	id := m.next
	m.next++
	m.timers[id] = manualTimer{interval: d, fn: fn}
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.timers, id)
		m.mu.Unlock()
	}
}

// Tick fires every active timer once.
func (m *ManualScheduler) Tick() {
	m.mu.Lock()
	fns := make([]func(), 0, len(m.timers))
	for id := 0; id < m.next; id++ {
		if t, ok := m.timers[id]; ok {
			fns = append(fns, t.fn)
		}
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// TickN calls Tick n times.
func (m *ManualScheduler) TickN(n int) {
	for i := 0; i < n; i++ {
		m.Tick()
	}
}

// Active returns the number of uncancelled timers.
func (m *ManualScheduler) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// Interval returns the interval of the most recently started active timer,
// or zero when none is active.
func (m *ManualScheduler) Interval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id := m.next - 1; id >= 0; id-- {
		if t, ok := m.timers[id]; ok {
			return t.interval
		}
	}
	return 0
}

package playback_test

import (
	"fmt"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
)

func numbered(n int) step.Sequence {
	rec := step.NewRecorder()
	arr := algo.NewArray()
	for i := 0; i < n; i++ {
		arr.Items = append(arr.Items, i)
		rec.Record(arr, fmt.Sprintf("step %d", i))
	}
	return rec.Sequence()
}

var _ = Describe("Controller", func() {
	var (
		sched *playback.ManualScheduler
		c     *playback.Controller
	)

	BeforeEach(func() {
		sched = playback.NewManualScheduler()
		c = playback.New(playback.WithScheduler(sched), playback.WithInterval(100*time.Millisecond))
	})

	Describe("an empty controller", func() {
		It("starts idle", func() {
			Expect(c.State()).To(Equal(playback.Idle))
			Expect(c.Len()).To(BeZero())
			Expect(c.IsPlaying()).To(BeFalse())
		})

		It("treats navigation as a no-op", func() {
			Expect(c.Next()).To(Equal(step.Step{}))
			Expect(c.Prev()).To(Equal(step.Step{}))
			Expect(c.Jump(3)).To(Equal(step.Step{}))
			c.Reset()
			c.Play()
			Expect(c.Cursor()).To(BeZero())
			Expect(c.State()).To(Equal(playback.Idle))
			Expect(sched.Active()).To(BeZero())
		})

		It("rejects empty sequences", func() {
			Expect(c.Run(nil)).To(MatchError(playback.ErrEmptySequence))
			Expect(c.Append(step.Sequence{})).To(MatchError(playback.ErrEmptySequence))
			Expect(c.State()).To(Equal(playback.Idle))
		})

		It("treats Append as Run", func() {
			Expect(c.Append(numbered(3))).To(Succeed())
			Expect(c.Cursor()).To(BeZero())
			Expect(c.Len()).To(Equal(3))
			Expect(c.State()).To(Equal(playback.Playing))
		})
	})

	Describe("Run", func() {
		BeforeEach(func() {
			Expect(c.Run(numbered(5))).To(Succeed())
		})

		It("rewinds to the first step and plays", func() {
			Expect(c.Cursor()).To(BeZero())
			Expect(c.CurrentStep().Message).To(Equal("step 0"))
			Expect(c.State()).To(Equal(playback.Playing))
			Expect(sched.Active()).To(Equal(1))
			Expect(sched.Interval()).To(Equal(100 * time.Millisecond))
		})

		It("auto-advances once per tick and finishes at the last step", func() {
			sched.TickN(3)
			Expect(c.Cursor()).To(Equal(3))
			Expect(c.State()).To(Equal(playback.Playing))

			sched.Tick()
			Expect(c.Cursor()).To(Equal(4))
			Expect(c.State()).To(Equal(playback.Finished))
			Expect(sched.Active()).To(BeZero())

			sched.TickN(5)
			Expect(c.Cursor()).To(Equal(4))
		})

		It("replaces history and cancels the previous timer", func() {
			sched.TickN(2)
			Expect(c.Run(numbered(2))).To(Succeed())
			Expect(c.Len()).To(Equal(2))
			Expect(c.Cursor()).To(BeZero())
			Expect(sched.Active()).To(Equal(1))

			sched.Tick()
			Expect(c.Cursor()).To(Equal(1), "exactly one advance per tick")
		})

		It("finishes a single-step sequence on the first tick", func() {
			Expect(c.Run(numbered(1))).To(Succeed())
			sched.Tick()
			Expect(c.State()).To(Equal(playback.Finished))
			Expect(c.Cursor()).To(BeZero())
		})
	})

	Describe("navigation", func() {
		BeforeEach(func() {
			Expect(c.Run(numbered(4))).To(Succeed())
			c.Pause()
		})

		It("clamps Prev at the first step", func() {
			c.Prev()
			Expect(c.Cursor()).To(BeZero())
		})

		It("clamps Next at the last step", func() {
			for i := 0; i < 10; i++ {
				c.Next()
			}
			Expect(c.Cursor()).To(Equal(3))
		})

		It("clamps Jump", func() {
			Expect(c.Jump(99).Message).To(Equal("step 3"))
			Expect(c.Jump(-4).Message).To(Equal("step 0"))
			Expect(c.Jump(2).Message).To(Equal("step 2"))
		})

		It("does not resume playback", func() {
			c.Next()
			Expect(c.State()).To(Equal(playback.Paused))
			Expect(sched.Active()).To(BeZero())
		})

		It("reproduces the final state after Reset", func() {
			c.Jump(c.Len() - 1)
			want := c.CurrentStep().State

			c.Reset()
			Expect(c.Cursor()).To(BeZero())
			Expect(c.Len()).To(Equal(4))
			for i := 0; i < c.Len(); i++ {
				c.Next()
			}
			Expect(c.CurrentStep().State).To(Equal(want))
		})

		It("leaves Finished when stepping back from the end", func() {
			c.Play()
			sched.TickN(3)
			Expect(c.State()).To(Equal(playback.Finished))
			c.Prev()
			Expect(c.State()).To(Equal(playback.Paused))
		})
	})

	Describe("manual navigation while playing", func() {
		It("keeps the timer running against the shared cursor", func() {
			Expect(c.Run(numbered(6))).To(Succeed())
			c.Next()
			c.Next()
			Expect(c.State()).To(Equal(playback.Playing))
			Expect(sched.Active()).To(Equal(1))

			sched.Tick()
			Expect(c.Cursor()).To(Equal(3))
		})

		It("finishes on the next tick after reaching the end manually", func() {
			Expect(c.Run(numbered(3))).To(Succeed())
			c.Jump(2)
			Expect(c.State()).To(Equal(playback.Playing))
			sched.Tick()
			Expect(c.State()).To(Equal(playback.Finished))
		})
	})

	Describe("Play and Pause", func() {
		BeforeEach(func() {
			Expect(c.Run(numbered(4))).To(Succeed())
		})

		It("toggles between playing and paused", func() {
			c.Pause()
			Expect(c.State()).To(Equal(playback.Paused))
			sched.TickN(3)
			Expect(c.Cursor()).To(BeZero())

			c.Toggle()
			Expect(c.State()).To(Equal(playback.Playing))
			sched.Tick()
			Expect(c.Cursor()).To(Equal(1))
		})

		It("keeps exactly one timer when Play is repeated", func() {
			c.Pause()
			c.Play()
			c.Play()
			Expect(sched.Active()).To(Equal(1))
			sched.Tick()
			Expect(c.Cursor()).To(Equal(1))
		})

		It("stays on the last step when played from the end", func() {
			sched.TickN(3)
			Expect(c.State()).To(Equal(playback.Finished))
			c.Play()
			Expect(c.Cursor()).To(Equal(3))
			Expect(c.State()).To(Equal(playback.Finished))
			Expect(sched.Active()).To(BeZero())
		})

		It("finishes instead of playing when paused on the last step", func() {
			c.Jump(3)
			c.Pause()
			c.Play()
			Expect(c.Cursor()).To(Equal(3))
			Expect(c.State()).To(Equal(playback.Finished))
			Expect(sched.Active()).To(BeZero())
		})

		It("keeps playing from the first step after Reset", func() {
			sched.TickN(2)
			c.Reset()
			Expect(c.Cursor()).To(BeZero())
			Expect(c.State()).To(Equal(playback.Playing))
			Expect(sched.Active()).To(Equal(1))

			sched.TickN(2)
			Expect(c.Cursor()).To(Equal(2))
			Expect(c.State()).To(Equal(playback.Playing))
		})

		It("pauses a finished controller on Reset", func() {
			sched.TickN(3)
			c.Reset()
			Expect(c.Cursor()).To(BeZero())
			Expect(c.State()).To(Equal(playback.Paused))

			c.Play()
			sched.Tick()
			Expect(c.Cursor()).To(Equal(1))
		})

		It("cancels the timer on Stop", func() {
			var states []playback.State
			c.OnChange(func(ch playback.Change) { states = append(states, ch.State) })

			c.Stop()
			Expect(sched.Active()).To(BeZero())
			Expect(c.State()).To(Equal(playback.Paused))
			Expect(states).To(Equal([]playback.State{playback.Paused}))

			c.Stop()
			Expect(states).To(HaveLen(1))
		})
	})

	Describe("Append", func() {
		BeforeEach(func() {
			Expect(c.Run(numbered(5))).To(Succeed())
			c.Pause()
			c.Jump(2)
		})

		It("truncates after the cursor and continues from the appended steps", func() {
			extra := numbered(3)
			Expect(c.Append(extra)).To(Succeed())

			Expect(c.Len()).To(Equal(6))
			Expect(c.Cursor()).To(Equal(3))
			Expect(c.CurrentStep().Message).To(Equal("step 0"))
			Expect(c.History()[2].Message).To(Equal("step 2"))
			Expect(c.State()).To(Equal(playback.Playing))
			Expect(sched.Active()).To(Equal(1))
		})

		It("layers incremental operations on the displayed state", func() {
			stack := algo.NewStack()
			Expect(c.Run(algo.Push(stack, 1))).To(Succeed())
			c.Jump(c.Len() - 1)

			cur := c.CurrentStep().State.(*algo.Stack)
			Expect(c.Append(algo.Push(cur, 2))).To(Succeed())
			c.Jump(c.Len() - 1)

			Expect(c.CurrentStep().State.(*algo.Stack).Items).To(Equal([]int{2, 1}))
			Expect(c.Len()).To(Equal(4))
		})
	})

	Describe("SetInterval", func() {
		It("restarts the timer while playing", func() {
			Expect(c.Run(numbered(3))).To(Succeed())
			c.SetInterval(800 * time.Millisecond)
			Expect(c.Interval()).To(Equal(800 * time.Millisecond))
			Expect(sched.Active()).To(Equal(1))
			Expect(sched.Interval()).To(Equal(800 * time.Millisecond))
		})

		It("ignores non-positive durations", func() {
			c.SetInterval(0)
			Expect(c.Interval()).To(Equal(100 * time.Millisecond))
		})
	})

	Describe("OnChange", func() {
		It("reports every change", func() {
			var mu sync.Mutex
			var cursors []int
			c.OnChange(func(ch playback.Change) {
				mu.Lock()
				cursors = append(cursors, ch.Cursor)
				mu.Unlock()
			})

			Expect(c.Run(numbered(3))).To(Succeed())
			sched.TickN(2)

			mu.Lock()
			defer mu.Unlock()
			Expect(cursors).To(Equal([]int{0, 1, 2}))
		})
	})
})

var _ = Describe("TickerScheduler", func() {
	It("advances to the end and finishes", func() {
		c := playback.New(playback.WithInterval(5 * time.Millisecond))
		Expect(c.Run(numbered(4))).To(Succeed())

		Eventually(c.State).WithTimeout(time.Second).Should(Equal(playback.Finished))
		Expect(c.Cursor()).To(Equal(3))
	})

	It("stops firing after cancel", func() {
		var mu sync.Mutex
		count := 0
		cancel := playback.TickerScheduler{}.Every(2*time.Millisecond, func() {
			mu.Lock()
			count++
			mu.Unlock()
		})
		Eventually(func() int {
			mu.Lock()
			defer mu.Unlock()
			return count
		}).Should(BeNumerically(">", 0))
		cancel()
		cancel()

		mu.Lock()
		seen := count
		mu.Unlock()
		Consistently(func() int {
			mu.Lock()
			defer mu.Unlock()
			return count
		}, 30*time.Millisecond).Should(BeNumerically("<=", seen+1))
	})
})

var _ = Describe("State", func() {
	DescribeTable("Transition",
		func(from, to, want playback.State) {
			Expect(from.Transition(to)).To(Equal(want))
		},
		Entry("idle to playing", playback.Idle, playback.Playing, playback.Playing),
		Entry("idle to finished is refused", playback.Idle, playback.Finished, playback.Idle),
		Entry("playing to finished", playback.Playing, playback.Finished, playback.Finished),
		Entry("paused to playing", playback.Paused, playback.Playing, playback.Playing),
		Entry("paused to finished", playback.Paused, playback.Finished, playback.Finished),
		Entry("finished to playing", playback.Finished, playback.Playing, playback.Playing),
	)

	It("has readable names", func() {
		Expect(playback.Finished.String()).To(Equal("finished"))
		Expect(playback.State(9).String()).To(Equal("unknown"))
	})
})

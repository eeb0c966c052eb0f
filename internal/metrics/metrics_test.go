package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/step"
)

func TestCollect_BubbleSort(t *testing.T) {
	seq := algo.BubbleSort(algo.NewArray(3, 2, 1))
	values := Collect(seq)

	got := make(map[string]float64)
	for _, v := range values {
		got[v.Name] = v.Value
	}
	if got["steps"] != float64(seq.Len()) {
		t.Errorf("steps = %v, want %d", got["steps"], seq.Len())
	}
	if got["comparisons"] != 3 {
		t.Errorf("comparisons = %v, want 3", got["comparisons"])
	}
	if got["swaps"] != 3 {
		t.Errorf("swaps = %v, want 3", got["swaps"])
	}
}

func TestRoleCount_Reset(t *testing.T) {
	m := NewWrites()
	m.Observe(step.Step{Highlights: step.Highlights{step.RoleInserted: {"0"}, step.RoleUpdated: {"1"}}})
	m.Observe(step.Step{Highlights: step.Highlights{step.RoleCompared: {"0"}}})
	if m.Value() != 1 {
		t.Errorf("Value() = %v, want 1", m.Value())
	}
	m.Reset()
	if m.Value() != 0 {
		t.Errorf("Value() after Reset = %v, want 0", m.Value())
	}
}

func TestSeries_IsCumulative(t *testing.T) {
	seq := algo.InsertionSort(algo.NewArray(4, 3, 2, 1))
	s := Series(seq, NewComparisons())
	if len(s) != seq.Len() {
		t.Fatalf("len(Series) = %d, want %d", len(s), seq.Len())
	}
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			t.Fatalf("series decreases at %d: %v", i, s)
		}
	}
	if s[len(s)-1] != 6 {
		t.Errorf("final comparisons = %v, want 6", s[len(s)-1])
	}
}

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.Observe("stack", "push", algo.Push(algo.NewStack(), 1))
	r.Observe("stack", "pop", algo.Pop(algo.NewStack()))

	if got := testutil.ToFloat64(r.Runs().WithLabelValues("stack", "push")); got != 1 {
		t.Errorf("runs{stack,push} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.Steps().WithLabelValues("stack")); got != 3 {
		t.Errorf("steps{stack} = %v, want 3", got)
	}

	want := `
# HELP algoviz_diagnostics_total Number of rejected operations by family and reason.
# TYPE algoviz_diagnostics_total counter
algoviz_diagnostics_total{family="stack",reason="underflow"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(want), "algoviz_diagnostics_total"); err != nil {
		t.Error(err)
	}
}

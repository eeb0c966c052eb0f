package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/san-kum/algoviz/internal/step"
)

// Recorder exports process-wide generator counters.
type Recorder struct {
	runs        *prometheus.CounterVec
	steps       *prometheus.CounterVec
	diagnostics *prometheus.CounterVec
}

// NewRecorder creates the counters and registers them with reg when reg is
// non-nil.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "algoviz",
			Name:      "generator_runs_total",
			Help:      "Number of generator invocations by family and operation.",
		}, []string{"family", "op"}),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "algoviz",
			Name:      "steps_generated_total",
			Help:      "Number of steps produced by family.",
		}, []string{"family"}),
		diagnostics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "algoviz",
			Name:      "diagnostics_total",
			Help:      "Number of rejected operations by family and reason.",
		}, []string{"family", "reason"}),
	}
	if reg != nil {
		reg.MustRegister(r.runs, r.steps, r.diagnostics)
	}
	return r
}

// Observe counts one generator run.
func (r *Recorder) Observe(family, op string, seq step.Sequence) {
	r.runs.WithLabelValues(family, op).Inc()
	r.steps.WithLabelValues(family).Add(float64(len(seq)))
	if err := seq.Err(); err != nil {
		r.diagnostics.WithLabelValues(family, step.Reason(err)).Inc()
	}
}

func (r *Recorder) Runs() *prometheus.CounterVec { return r.runs }

func (r *Recorder) Steps() *prometheus.CounterVec { return r.steps }

func (r *Recorder) Diagnostics() *prometheus.CounterVec { return r.diagnostics }

package metrics

import "github.com/san-kum/algoviz/internal/step"

// Value is one named metric result.
type Value struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Collect observes every step of seq with each metric and returns their
// values in order. Metrics are reset first.
func Collect(seq step.Sequence, ms ...Metric) []Value {
	if len(ms) == 0 {
		ms = Defaults()
	}
	for _, m := range ms {
		m.Reset()
	}
	for _, s := range seq {
		for _, m := range ms {
			m.Observe(s)
		}
	}
	out := make([]Value, len(ms))
	for i, m := range ms {
		out[i] = Value{Name: m.Name(), Value: m.Value()}
	}
	return out
}

// Series returns the running value of m after each step of seq.
func Series(seq step.Sequence, m Metric) []float64 {
	m.Reset()
	out := make([]float64, len(seq))
	for i, s := range seq {
		m.Observe(s)
		out[i] = m.Value()
	}
	return out
}

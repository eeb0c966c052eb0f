package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/logging"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/step"
)

type handler func(s step.Structure, o algo.Operands) step.Sequence

// Family is a structure family with its operations.
type Family struct {
	Name string
	// Incremental families append each operation to the playback history
	// instead of replacing it.
	Incremental bool
	Empty       func() step.Structure

	ops   []string
	byOp  map[string]handler
	about map[string]string
}

// Ops returns the operation names in registration order.
func (f *Family) Ops() []string { return append([]string(nil), f.ops...) }

// Describe returns the operand summary of op.
func (f *Family) Describe(op string) string { return f.about[op] }

func (f *Family) Has(op string) bool {
	_, ok := f.byOp[op]
	return ok
}

func (f *Family) handle(op, about string, h handler) {
	if f.byOp == nil {
		f.byOp = make(map[string]handler)
		f.about = make(map[string]string)
	}
	f.ops = append(f.ops, op)
	f.byOp[op] = h
	f.about[op] = about
}

// Request names an operation and carries loosely typed operands, as read
// from flags or YAML scripts.
type Request struct {
	Family   string         `yaml:"family"`
	Op       string         `yaml:"op"`
	Operands map[string]any `yaml:"operands,omitempty"`
}

type Option func(*Registry)

func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// WithRingCapacity sets the capacity of empty ring buffers.
func WithRingCapacity(n int) Option {
	return func(r *Registry) { r.ringCapacity = n }
}

func WithMetrics(m *metrics.Recorder) Option {
	return func(r *Registry) { r.metrics = m }
}

// Registry maps family names to generators.
type Registry struct {
	families     map[string]*Family
	logger       *slog.Logger
	ringCapacity int
	metrics      *metrics.Recorder
}

func New(opts ...Option) *Registry {
	r := &Registry{
		families:     make(map[string]*Family),
		logger:       logging.NewNop(),
		ringCapacity: algo.RingCapacity,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.registerDefaults()
	return r
}

func (r *Registry) register(f *Family) {
	r.families[f.Name] = f
}

// Family returns the named family.
func (r *Registry) Family(name string) (*Family, error) {
	f, ok := r.families[name]
	if !ok {
		return nil, fmt.Errorf("unknown family: %s", name)
	}
	return f, nil
}

// ListFamilies returns the family names in sorted order.
func (r *Registry) ListFamilies() []string {
	names := make([]string, 0, len(r.families))
	for name := range r.families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty returns the initial structure of the named family.
func (r *Registry) Empty(family string) (step.Structure, error) {
	f, err := r.Family(family)
	if err != nil {
		return nil, err
	}
	return f.Empty(), nil
}

// Run generates the step sequence of req applied to state. A nil state
// selects the family's empty structure. Only an unknown family is an error;
// every other failure is reported as a diagnostic step.
func (r *Registry) Run(state step.Structure, req Request) (step.Sequence, error) {
	f, err := r.Family(req.Family)
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = f.Empty()
	}

	seq := r.generate(f, state, req)
	if r.metrics != nil {
		r.metrics.Observe(f.Name, req.Op, seq)
	}
	r.logger.Debug("generated",
		"run", uuid.NewString(),
		"family", f.Name,
		"op", req.Op,
		"steps", seq.Len(),
		"diagnostic", step.Reason(seq.Err()),
	)
	return seq, nil
}

func (r *Registry) generate(f *Family, state step.Structure, req Request) step.Sequence {
	h, ok := f.byOp[req.Op]
	if !ok {
		return step.Rejectf(state, req.Op, step.ErrInvalidOperand, "Unknown operation %q for %s", req.Op, f.Name)
	}
	ops, err := DecodeOperands(req.Operands)
	if err != nil {
		return step.Rejectf(state, req.Op, step.ErrInvalidOperand, "Malformed operand: %v", err)
	}
	return h(state, ops)
}

// DecodeOperands converts loosely typed operands into algo.Operands.
// Numeric strings are accepted; unknown keys are ignored.
func DecodeOperands(in map[string]any) (algo.Operands, error) {
	var out algo.Operands
	if len(in) == 0 {
		return out, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return out, fmt.Errorf("create decoder: %w", err)
	}
	if err := dec.Decode(in); err != nil {
		return out, err
	}
	return out, nil
}

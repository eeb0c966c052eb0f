package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/step"
)

// Preset is a canned initial structure.
type Preset struct {
	Values   []int       `yaml:"values,omitempty"`
	Vertices []string    `yaml:"vertices,omitempty"`
	Edges    [][2]string `yaml:"edges,omitempty"`
}

var Presets = map[string]map[string]*Preset{
	"array": {
		"default": {Values: []int{10, 20, 30, 40}},
		"full":    {Values: []int{10, 20, 30, 40, 50, 60, 70, 80}},
	},
	"sorting": {
		"default":  {Values: []int{64, 34, 25, 12, 22, 11, 90}},
		"reversed": {Values: []int{9, 8, 7, 6, 5, 4, 3, 2, 1}},
		"sorted":   {Values: []int{1, 2, 3, 4, 5, 6}},
	},
	"searching": {
		"default": {Values: []int{10, 20, 30, 40, 50}},
		"wide":    {Values: []int{3, 9, 14, 27, 31, 42, 56, 63, 78, 85, 91, 99}},
	},
	"stack": {
		"default": {Values: []int{30, 20, 10}},
	},
	"queue": {
		"default": {Values: []int{10, 20, 30}},
	},
	"deque": {
		"default": {Values: []int{10, 20, 30}},
	},
	"ring": {
		"default": {Values: []int{10, 20, 30}},
	},
	"list": {
		"default": {Values: []int{10, 20, 30}},
	},
	"circular": {
		"default": {Values: []int{10, 20}},
	},
	"bst": {
		"default": {Values: []int{50, 30, 70, 20, 40, 60, 80}},
		"small":   {Values: []int{5, 3, 8, 1, 4}},
		"skewed":  {Values: []int{10, 20, 30, 40}},
	},
	"heap": {
		"default": {Values: []int{90, 70, 80, 30, 50, 60}},
	},
	"graph": {
		"default": {
			Vertices: []string{"A", "B", "C", "D", "E"},
			Edges:    [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}},
		},
		"path": {
			Vertices: []string{"A", "B", "C", "D"},
			Edges:    [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}},
		},
	},
}

func GetPreset(family, preset string) *Preset {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	p, ok := familyPresets[preset]
	if !ok {
		return nil
	}
	return p
}

func ListPresets(family string) []string {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(familyPresets))
	for name := range familyPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// valueLimits caps the number of values each family can start from.
var valueLimits = map[string]int{
	"array":     algo.ArrayCapacity,
	"sorting":   algo.SearchCapacity,
	"searching": algo.SearchCapacity,
	"stack":     algo.StackCapacity,
	"queue":     algo.QueueCapacity,
	"deque":     algo.DequeCapacity,
	"list":      algo.ListCapacity,
	"circular":  algo.ListCapacity,
	"heap":      algo.HeapCapacity,
}

// Build materialises a preset for a family. Value counts are checked
// against the family's capacity; ring, tree and graph presets are built
// through their generators so the same validation applies.
func (p *Preset) Build(family string, ringCapacity int) (step.Structure, error) {
	if limit, ok := valueLimits[family]; ok && len(p.Values) > limit {
		return nil, fmt.Errorf("%s preset has %d values, at most %d allowed: %w", family, len(p.Values), limit, step.ErrCapacity)
	}
	switch family {
	case "array", "sorting", "searching":
		return algo.NewArray(p.Values...), nil
	case "stack":
		return algo.NewStack(p.Values...), nil
	case "queue":
		return algo.NewQueue(p.Values...), nil
	case "deque":
		return algo.NewDeque(p.Values...), nil
	case "list":
		return algo.NewList(false, p.Values...), nil
	case "circular":
		return algo.NewList(true, p.Values...), nil
	case "bst":
		var t step.Structure = &algo.Tree{}
		for _, v := range p.Values {
			seq := algo.TreeInsert(t.(*algo.Tree), v)
			if err := seq.Err(); err != nil {
				return nil, fmt.Errorf("bst preset: %w", err)
			}
			t = seq.Last().State
		}
		return t, nil
	case "heap":
		h := algo.NewHeap(p.Values...)
		if !h.Valid() {
			return nil, fmt.Errorf("heap preset %v violates the max-heap property", p.Values)
		}
		return h, nil
	case "ring":
		var r step.Structure = algo.NewRing(ringCapacity)
		for _, v := range p.Values {
			seq := algo.RingEnqueue(r.(*algo.Ring), v)
			if err := seq.Err(); err != nil {
				return nil, fmt.Errorf("ring preset: %w", err)
			}
			r = seq.Last().State
		}
		return r, nil
	case "graph":
		var g step.Structure = algo.NewGraph()
		for _, v := range p.Vertices {
			seq := algo.AddVertex(g.(*algo.Graph), v)
			if err := seq.Err(); err != nil {
				return nil, fmt.Errorf("graph preset: %w", err)
			}
			g = seq.Last().State
		}
		for _, e := range p.Edges {
			seq := algo.AddEdge(g.(*algo.Graph), e[0], e[1])
			if err := seq.Err(); err != nil {
				return nil, fmt.Errorf("graph preset: %w", err)
			}
			g = seq.Last().State
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown family: %s", family)
	}
}

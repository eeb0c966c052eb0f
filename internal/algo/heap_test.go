package algo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/step"
)

func TestHeapInsert(t *testing.T) {
	h := algo.NewHeap()
	for _, v := range []int{10, 20, 5, 30, 25} {
		seq := algo.HeapInsert(h, v)
		requireWellFormed(t, seq)
		h = seq.Last().State.(*algo.Heap)
		require.True(t, h.Valid(), "heap invalid after inserting %d: %v", v, h.Items)
	}
	assert.Equal(t, 30, h.Items[0])
	assert.Len(t, h.Items, 5)
}

func TestHeapInsert_StopsWhenPropertyHolds(t *testing.T) {
	seq := algo.HeapInsert(algo.NewHeap(30, 20), 5)
	assert.Equal(t, []string{
		"Inserting 5",
		"Appended 5 at index 2",
		"Comparing 5 with parent 30",
		"Heap property holds",
		"Insert of 5 complete",
	}, seq.Messages())
}

func TestHeapInsert_SiftsToRoot(t *testing.T) {
	seq := algo.HeapInsert(algo.NewHeap(30, 20, 5), 40)
	assert.Equal(t, 2, countMessages(seq, "Swapped"))
	assert.Equal(t, 0, countMessages(seq, "Heap property holds"))
	assert.Equal(t, []int{40, 30, 5, 20}, seq.Last().State.(*algo.Heap).Items)
}

func TestHeapExtract(t *testing.T) {
	seq := algo.HeapExtract(algo.NewHeap(30, 20, 5, 10))
	requireWellFormed(t, seq)

	assert.Equal(t, []int{20, 10, 5}, seq.Last().State.(*algo.Heap).Items)
	assert.Equal(t, "Extracted 30", seq.Last().Message)
	assert.Equal(t, 1, countMessages(seq, "Comparing children 20 and 5"))
	assert.Equal(t, 1, countMessages(seq, "Swapped"))
}

func TestHeapExtract_Drains(t *testing.T) {
	h := algo.NewHeap(50, 40, 35, 20, 10, 30)
	var out []int
	for h.Len() > 0 {
		out = append(out, h.Items[0])
		h = algo.HeapExtract(h).Last().State.(*algo.Heap)
		require.True(t, h.Valid(), "%v", h.Items)
	}
	assert.Equal(t, []int{50, 40, 35, 30, 20, 10}, out)
}

func TestHeap_Diagnostics(t *testing.T) {
	requireDiagnostic(t, algo.HeapExtract(algo.NewHeap()), step.ErrUnderflow)
	requireDiagnostic(t, algo.HeapInsert(algo.NewHeap(make([]int, algo.HeapCapacity)...), 1), step.ErrCapacity)
}

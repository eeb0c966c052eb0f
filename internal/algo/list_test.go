package algo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/step"
)

func TestList_InsertAt(t *testing.T) {
	l := algo.NewList(false, 10, 20, 30)
	seq := algo.ListInsertAt(l, 1, 15)
	requireWellFormed(t, seq)

	assert.Len(t, seq, 3, "pre-state, one hop, link")
	got := seq.Last().State.(*algo.List)
	assert.Equal(t, []int{10, 15, 20, 30}, got.Values())
	assert.Equal(t, "n3", got.Nodes[1].ID)
	assert.Equal(t, []string{"n3"}, seq.Last().Highlights[step.RoleInserted])
	assert.Equal(t, []string{"n0"}, seq[1].Highlights[step.RolePointer])
}

func TestList_HeadAndTail(t *testing.T) {
	l := algo.NewList(false, 10, 20, 30)

	assert.Equal(t, []int{5, 10, 20, 30}, algo.ListInsertHead(l, 5).Last().State.(*algo.List).Values())
	assert.Equal(t, []int{10, 20, 30, 40}, algo.ListInsertTail(l, 40).Last().State.(*algo.List).Values())
	assert.Equal(t, []int{20, 30}, algo.ListDeleteHead(l).Last().State.(*algo.List).Values())

	seq := algo.ListDeleteTail(l)
	assert.Equal(t, []int{10, 20}, seq.Last().State.(*algo.List).Values())
	assert.Len(t, seq, 5, "pre-state, two hops, unlink, delete")
}

func TestList_Diagnostics(t *testing.T) {
	l := algo.NewList(false, 1)
	requireDiagnostic(t, algo.ListInsertAt(l, 3, 1), step.ErrInvalidOperand)
	requireDiagnostic(t, algo.ListDeleteAt(l, 1), step.ErrInvalidOperand)
	requireDiagnostic(t, algo.ListDeleteHead(algo.NewList(false)), step.ErrUnderflow)
	requireDiagnostic(t, algo.ListDeleteTail(algo.NewList(true)), step.ErrUnderflow)
	requireDiagnostic(t, algo.ListInsertHead(algo.NewList(false, make([]int, algo.ListCapacity)...), 1), step.ErrCapacity)
}

func TestList_Search(t *testing.T) {
	l := algo.NewList(false, 4, 8, 15)

	seq := algo.ListSearch(l, 8)
	assert.Equal(t, "Found 8 at position 1", seq.Last().Message)
	assert.Equal(t, []string{"n1"}, seq.Last().Highlights[step.RoleFound])

	seq = algo.ListSearch(l, 16)
	assert.Equal(t, "16 not found", seq.Last().Message)
	assert.Equal(t, 3, countMessages(seq, "Checking node"))
}

func TestCircularList_ReportsLoop(t *testing.T) {
	l := algo.NewList(true, 10, 20)
	assert.Equal(t, "circular", l.Kind())

	seq := algo.ListInsertTail(l, 30)
	last := seq.Last()
	assert.Contains(t, last.Message, "tail links back to head 10")
	assert.True(t, last.Highlights.Has(step.RolePointer, "n0"))
	assert.Equal(t, []int{10, 20, 30}, last.State.(*algo.List).Values())

	seq = algo.ListSearch(l, 99)
	assert.Equal(t, "99 not found after returning to the head", seq.Last().Message)
}

func TestList_IDsAreStable(t *testing.T) {
	l := algo.NewList(false, 1, 2)
	l = algo.ListDeleteHead(l).Last().State.(*algo.List)
	l = algo.ListInsertHead(l, 3).Last().State.(*algo.List)

	assert.Equal(t, "n2", l.Nodes[0].ID, "ids are never reused")
	assert.Equal(t, "n1", l.Nodes[1].ID)
}

package algo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/step"
)

func TestBinarySearch(t *testing.T) {
	arr := algo.NewArray(10, 20, 30, 40, 50)

	t.Run("found", func(t *testing.T) {
		seq := algo.BinarySearch(arr, 30)
		requireWellFormed(t, seq)
		last := seq.Last()
		assert.Equal(t, "Found 30 at index 2", last.Message)
		assert.Equal(t, []string{"2"}, last.Highlights[step.RoleFound])
	})

	t.Run("not found", func(t *testing.T) {
		seq := algo.BinarySearch(arr, 25)
		requireWellFormed(t, seq)
		assert.Equal(t, "25 not found", seq.Last().Message)
		for _, s := range seq {
			assert.Empty(t, s.Highlights[step.RoleFound])
		}
	})
}

func TestBinarySearch_SortsWorkingCopy(t *testing.T) {
	arr := algo.NewArray(40, 10, 30)
	seq := algo.BinarySearch(arr, 40)

	assert.Equal(t, []int{10, 30, 40}, seq.First().State.(*algo.Array).Items)
	assert.Equal(t, []int{40, 10, 30}, arr.Items)
	assert.Equal(t, "Found 40 at index 2", seq.Last().Message)
}

func TestBinarySearch_NewRangeOnlyWhenNonEmpty(t *testing.T) {
	seq := algo.BinarySearch(algo.NewArray(10, 20), 5)
	// mid 0 -> discard right half, high = -1: no new range step.
	assert.Equal(t, 0, countMessages(seq, "New range"))
	assert.Equal(t, 1, countMessages(seq, "10 > 5"))

	seq = algo.BinarySearch(algo.NewArray(10, 20, 30, 40, 50), 50)
	assert.Equal(t, 2, countMessages(seq, "New range"))
}

func TestLinearSearch(t *testing.T) {
	arr := algo.NewArray(7, 3, 9, 3)

	seq := algo.LinearSearch(arr, 3)
	requireWellFormed(t, seq)
	assert.Equal(t, "Found 3 at index 1", seq.Last().Message)
	assert.Equal(t, 2, countMessages(seq, "Checking index"))

	seq = algo.LinearSearch(arr, 4)
	assert.Equal(t, "4 not found", seq.Last().Message)
	assert.Equal(t, 4, countMessages(seq, "Checking index"))
	assert.Len(t, seq.Last().Highlights[step.RoleVisited], 4)
}

func TestSearch_EmptyArray(t *testing.T) {
	seq := algo.BinarySearch(algo.NewArray(), 1)
	requireWellFormed(t, seq)
	assert.Equal(t, "1 not found", seq.Last().Message)

	seq = algo.LinearSearch(algo.NewArray(), 1)
	assert.Equal(t, 2, seq.Len())
}

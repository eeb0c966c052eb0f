package algo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoviz/internal/step"
)

func requireDiagnostic(t *testing.T, seq step.Sequence, want error) {
	t.Helper()
	require.Len(t, seq, 1, "diagnostic sequences have exactly one step")
	require.True(t, seq.Diagnosed())
	assert.ErrorIs(t, seq.Err(), want)
	assert.NotEmpty(t, seq[0].Message)
}

func requireWellFormed(t *testing.T, seq step.Sequence) {
	t.Helper()
	require.NotEmpty(t, seq)
	for i, s := range seq {
		require.NotNil(t, s.State, "step %d has no state", i)
		assert.NotEmpty(t, s.Message, "step %d has no message", i)
		assert.NoError(t, s.Err, "step %d", i)
	}
}

func countMessages(seq step.Sequence, prefix string) int {
	n := 0
	for _, m := range seq.Messages() {
		if strings.HasPrefix(m, prefix) {
			n++
		}
	}
	return n
}

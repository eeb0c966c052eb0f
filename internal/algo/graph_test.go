package algo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/step"
)

func buildGraph(t *testing.T, vertices []string, edges [][2]string) *algo.Graph {
	t.Helper()
	g := algo.NewGraph()
	for _, v := range vertices {
		seq := algo.AddVertex(g, v)
		requireWellFormed(t, seq)
		g = seq.Last().State.(*algo.Graph)
	}
	for _, e := range edges {
		seq := algo.AddEdge(g, e[0], e[1])
		requireWellFormed(t, seq)
		g = seq.Last().State.(*algo.Graph)
	}
	return g
}

func TestGraph_AddEdgeIsSymmetric(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, [][2]string{{"A", "B"}})
	assert.Equal(t, []string{"B"}, g.Adj["A"])
	assert.Equal(t, []string{"A"}, g.Adj["B"])
	assert.Equal(t, []algo.Edge{{From: "A", To: "B"}}, g.Edges)
}

func TestGraph_Diagnostics(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, [][2]string{{"A", "B"}})

	requireDiagnostic(t, algo.AddVertex(g, "A"), step.ErrInvalidOperand)
	requireDiagnostic(t, algo.AddVertex(g, "  "), step.ErrInvalidOperand)
	requireDiagnostic(t, algo.AddEdge(g, "A", "Z"), step.ErrInvalidOperand)
	requireDiagnostic(t, algo.AddEdge(g, "A", "A"), step.ErrInvalidOperand)
	requireDiagnostic(t, algo.AddEdge(g, "B", "A"), step.ErrInvalidOperand)
	requireDiagnostic(t, algo.BFS(g, "Z"), step.ErrInvalidOperand)
	requireDiagnostic(t, algo.DFS(g, "Z"), step.ErrInvalidOperand)

	full := algo.NewGraph()
	for _, v := range []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"} {
		full = algo.AddVertex(full, v).Last().State.(*algo.Graph)
	}
	requireDiagnostic(t, algo.AddVertex(full, "X"), step.ErrCapacity)
}

func TestBFS(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D"}, [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}})
	seq := algo.BFS(g, "A")
	requireWellFormed(t, seq)

	assert.Equal(t, "BFS order: A B C D", seq.Last().Message)
	assert.Equal(t, 4, countMessages(seq, "Dequeued"))
	assert.Equal(t, 3, countMessages(seq, "Discovered"))
	assert.Len(t, seq, 9)

	// B and C are both marked visited before B is dequeued.
	for _, s := range seq {
		if s.Message == "Dequeued B" {
			assert.True(t, s.Highlights.Has(step.RoleVisited, "C"))
		}
	}
}

func TestDFS(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D"}, [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}})
	seq := algo.DFS(g, "A")
	requireWellFormed(t, seq)

	assert.Equal(t, "DFS order: A B D C", seq.Last().Message)
	assert.Equal(t, []string{"Pushed C", "Pushed B"}, seq.Messages()[2:4], "neighbours pushed in reverse order")
}

func TestDFS_RecordsAlreadyVisitedPops(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}})
	seq := algo.DFS(g, "A")

	assert.Equal(t, "DFS order: A B C", seq.Last().Message)
	assert.Equal(t, 1, countMessages(seq, "Popped C; already visited"))
}

func TestGraph_SearchOnIsolatedStart(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, nil)
	seq := algo.BFS(g, "B")
	require.Len(t, seq, 3)
	assert.Equal(t, "BFS order: B", seq.Last().Message)
}

package algo

import (
	"fmt"
	"strings"

	"github.com/san-kum/algoviz/internal/step"
)

// AddVertex adds an isolated vertex.
func AddVertex(g *Graph, label string) step.Sequence {
	label = strings.TrimSpace(label)
	switch {
	case label == "":
		return step.Reject(g, "add_vertex", step.ErrInvalidOperand, "Vertex label must not be empty")
	case g.HasVertex(label):
		return step.Rejectf(g, "add_vertex", step.ErrInvalidOperand, "Vertex %s already exists", label)
	case len(g.Vertices) >= GraphCapacity:
		return step.Rejectf(g, "add_vertex", step.ErrCapacity, "Graph is full: capacity %d vertices reached", GraphCapacity)
	}
	w := g.Clone().(*Graph)
	rec := step.NewRecorder()
	rec.Recordf(w, "Adding vertex %s", label)
	w.addVertex(label)
	rec.Record(w, fmt.Sprintf("Added vertex %s", label), step.On(step.RoleInserted, label))
	return rec.Sequence()
}

// AddEdge connects two existing vertices in both adjacency lists.
func AddEdge(g *Graph, from, to string) step.Sequence {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	switch {
	case !g.HasVertex(from):
		return step.Rejectf(g, "add_edge", step.ErrInvalidOperand, "Vertex %q does not exist", from)
	case !g.HasVertex(to):
		return step.Rejectf(g, "add_edge", step.ErrInvalidOperand, "Vertex %q does not exist", to)
	case from == to:
		return step.Rejectf(g, "add_edge", step.ErrInvalidOperand, "Self-loop on %s is not allowed", from)
	case g.HasEdge(from, to):
		return step.Rejectf(g, "add_edge", step.ErrInvalidOperand, "Edge %s-%s already exists", from, to)
	}
	w := g.Clone().(*Graph)
	rec := step.NewRecorder()
	rec.Record(w, fmt.Sprintf("Connecting %s and %s", from, to), step.On(step.RoleActive, from, to))
	w.addEdge(from, to)
	rec.Record(w, fmt.Sprintf("Added edge %s-%s", from, to), step.On(step.RoleUpdated, from, to))
	return rec.Sequence()
}

// BFS marks vertices visited when they are enqueued and records a step per
// dequeue and per newly discovered neighbour.
func BFS(g *Graph, start string) step.Sequence {
	if !g.HasVertex(start) {
		return step.Rejectf(g, "bfs", step.ErrInvalidOperand, "Start vertex %q does not exist", start)
	}
	w := g.Clone().(*Graph)
	rec := step.NewRecorder()

	visited := map[string]bool{start: true}
	seen := []string{start}
	queue := []string{start}
	var order []string
	rec.Record(w, fmt.Sprintf("Starting BFS from %s", start),
		step.On(step.RoleVisited, seen...), step.On(step.RoleFrontier, queue...))

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		rec.Record(w, fmt.Sprintf("Dequeued %s", v),
			step.On(step.RoleActive, v), step.On(step.RoleVisited, seen...), step.On(step.RoleFrontier, queue...))

		for _, nb := range w.Adj[v] {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			seen = append(seen, nb)
			queue = append(queue, nb)
			rec.Record(w, fmt.Sprintf("Discovered %s from %s", nb, v),
				step.On(step.RoleActive, v), step.On(step.RoleInserted, nb),
				step.On(step.RoleVisited, seen...), step.On(step.RoleFrontier, queue...))
		}
	}

	rec.Record(w, fmt.Sprintf("BFS order: %s", strings.Join(order, " ")), step.On(step.RoleVisited, order...))
	return rec.Sequence()
}

// DFS marks vertices visited when they are popped. Neighbours are pushed in
// reverse adjacency order so they pop in natural order; already visited
// pops still produce a step.
func DFS(g *Graph, start string) step.Sequence {
	if !g.HasVertex(start) {
		return step.Rejectf(g, "dfs", step.ErrInvalidOperand, "Start vertex %q does not exist", start)
	}
	w := g.Clone().(*Graph)
	rec := step.NewRecorder()

	visited := map[string]bool{}
	var order []string
	stack := []string{start}
	rec.Record(w, fmt.Sprintf("Starting DFS from %s", start), step.On(step.RoleFrontier, stack...))

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			rec.Record(w, fmt.Sprintf("Popped %s; already visited, skipping", v),
				step.On(step.RoleActive, v), step.On(step.RoleVisited, order...), step.On(step.RoleFrontier, stack...))
			continue
		}
		visited[v] = true
		order = append(order, v)
		rec.Record(w, fmt.Sprintf("Popped %s; visiting", v),
			step.On(step.RoleActive, v), step.On(step.RoleVisited, order...), step.On(step.RoleFrontier, stack...))

		adj := w.Adj[v]
		for k := len(adj) - 1; k >= 0; k-- {
			nb := adj[k]
			if visited[nb] {
				continue
			}
			stack = append(stack, nb)
			rec.Record(w, fmt.Sprintf("Pushed %s", nb),
				step.On(step.RoleActive, v), step.On(step.RoleVisited, order...), step.On(step.RoleFrontier, stack...))
		}
	}

	rec.Record(w, fmt.Sprintf("DFS order: %s", strings.Join(order, " ")), step.On(step.RoleVisited, order...))
	return rec.Sequence()
}

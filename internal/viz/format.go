package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/step"
)

// Format renders a step as the structure snapshot, the message and a legend
// of the roles in play. Diagnostic messages use the error style.
func Format(s step.Step) string {
	var b strings.Builder
	b.WriteString(FormatStructure(s.State, s.Highlights))
	b.WriteString("\n\n")
	if s.IsDiagnostic() {
		b.WriteString(errorStyle().Render("! " + s.Message))
	} else {
		b.WriteString(messageStyle().Render(s.Message))
	}
	if legend := Legend(s.Highlights); legend != "" {
		b.WriteString("\n")
		b.WriteString(subtle().Render(legend))
	}
	return b.String()
}

// Legend lists every role with the ids holding it, one role per line.
func Legend(h step.Highlights) string {
	roles := h.Roles()
	lines := make([]string, len(roles))
	for i, r := range roles {
		lines[i] = fmt.Sprintf("%s: %s", r, strings.Join(h[r], " "))
	}
	return strings.Join(lines, "\n")
}

// FormatStructure draws a snapshot with highlighted elements.
func FormatStructure(st step.Structure, h step.Highlights) string {
	switch v := st.(type) {
	case nil:
		return "(none)"
	case *algo.Array:
		return cells(v.Items, h)
	case *algo.Stack:
		if len(v.Items) == 0 {
			return "(empty stack)"
		}
		return "top -> " + cells(v.Items, h)
	case *algo.Queue:
		if len(v.Items) == 0 {
			return "(empty queue)"
		}
		return "front -> " + cells(v.Items, h) + " <- rear"
	case *algo.Deque:
		if len(v.Items) == 0 {
			return "(empty deque)"
		}
		return "front <-> " + cells(v.Items, h) + " <-> rear"
	case *algo.Heap:
		return heapLevels(v, h)
	case *algo.Ring:
		return ring(v, h)
	case *algo.List:
		return list(v, h)
	case *algo.Tree:
		return tree(v, h)
	case *algo.Graph:
		return graph(v, h)
	case fmt.Stringer:
		return v.String()
	}
	return st.Kind()
}

func cell(h step.Highlights, id, text string) string {
	return paint(h, id, fmt.Sprintf("[%3s]", text))
}

func cells(items []int, h step.Highlights) string {
	if len(items) == 0 {
		return "(empty)"
	}
	var b strings.Builder
	for i, v := range items {
		b.WriteString(cell(h, strconv.Itoa(i), strconv.Itoa(v)))
	}
	return b.String()
}

func heapLevels(hp *algo.Heap, h step.Highlights) string {
	if len(hp.Items) == 0 {
		return "(empty heap)"
	}
	var lines []string
	for start, width := 0, 1; start < len(hp.Items); start, width = start+width, width*2 {
		end := min(start+width, len(hp.Items))
		var b strings.Builder
		for i := start; i < end; i++ {
			b.WriteString(cell(h, strconv.Itoa(i), strconv.Itoa(hp.Items[i])))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func ring(r *algo.Ring, h step.Highlights) string {
	var b strings.Builder
	for i, s := range r.Slots {
		text := "_"
		if s.Filled {
			text = strconv.Itoa(s.Value)
		}
		b.WriteString(cell(h, strconv.Itoa(i), text))
	}
	fmt.Fprintf(&b, "\nfront=%d rear=%d size=%d/%d", r.Front, r.Rear, r.Size, r.Capacity)
	return b.String()
}

func list(l *algo.List, h step.Highlights) string {
	if len(l.Nodes) == 0 {
		return "(empty list)"
	}
	parts := make([]string, len(l.Nodes))
	for i, n := range l.Nodes {
		parts[i] = cell(h, n.ID, strconv.Itoa(n.Value))
	}
	s := strings.Join(parts, " -> ")
	if l.Circular {
		s += " -> (head)"
	}
	return s
}

// tree draws the BST sideways: right subtree above, left below.
func tree(t *algo.Tree, h step.Highlights) string {
	if t.Root == nil {
		return "(empty tree)"
	}
	var lines []string
	var walk func(n *algo.TreeNode, depth int)
	walk = func(n *algo.TreeNode, depth int) {
		if n == nil {
			return
		}
		walk(n.Right, depth+1)
		lines = append(lines, strings.Repeat("      ", depth)+cell(h, n.ID, strconv.Itoa(n.Value)))
		walk(n.Left, depth+1)
	}
	walk(t.Root, 0)
	return strings.Join(lines, "\n")
}

func graph(g *algo.Graph, h step.Highlights) string {
	if len(g.Vertices) == 0 {
		return "(empty graph)"
	}
	lines := make([]string, len(g.Vertices))
	for i, v := range g.Vertices {
		adj := make([]string, len(g.Adj[v]))
		for j, n := range g.Adj[v] {
			adj[j] = paint(h, n, n)
		}
		lines[i] = fmt.Sprintf("%s: %s", paint(h, v, v), strings.Join(adj, " "))
	}
	return strings.Join(lines, "\n")
}

package algo

import (
	"fmt"
	"strings"

	"github.com/san-kum/algoviz/internal/step"
)

// Array is a bounded sequence of integers used by the array, sorting and
// searching families.
type Array struct {
	Items []int `json:"items" yaml:"items"`
}

func NewArray(values ...int) *Array {
	return &Array{Items: append([]int{}, values...)}
}

func (a *Array) Clone() step.Structure {
	return &Array{Items: append([]int{}, a.Items...)}
}

func (a *Array) Kind() string { return "array" }

func (a *Array) Len() int { return len(a.Items) }

func (a *Array) String() string { return formatInts(a.Items) }

// Stack stores its top at index 0.
type Stack struct {
	Items []int `json:"items"`
}

func NewStack(values ...int) *Stack {
	return &Stack{Items: append([]int{}, values...)}
}

func (s *Stack) Clone() step.Structure {
	return &Stack{Items: append([]int{}, s.Items...)}
}

func (s *Stack) Kind() string { return "stack" }

func (s *Stack) Len() int { return len(s.Items) }

func (s *Stack) String() string { return formatInts(s.Items) }

// Queue stores its front at index 0.
type Queue struct {
	Items []int `json:"items"`
}

func NewQueue(values ...int) *Queue {
	return &Queue{Items: append([]int{}, values...)}
}

func (q *Queue) Clone() step.Structure {
	return &Queue{Items: append([]int{}, q.Items...)}
}

func (q *Queue) Kind() string { return "queue" }

func (q *Queue) Len() int { return len(q.Items) }

func (q *Queue) String() string { return formatInts(q.Items) }

// Deque stores its front at index 0.
type Deque struct {
	Items []int `json:"items"`
}

func NewDeque(values ...int) *Deque {
	return &Deque{Items: append([]int{}, values...)}
}

func (d *Deque) Clone() step.Structure {
	return &Deque{Items: append([]int{}, d.Items...)}
}

func (d *Deque) Kind() string { return "deque" }

func (d *Deque) Len() int { return len(d.Items) }

func (d *Deque) String() string { return formatInts(d.Items) }

// Slot is one cell of a ring buffer.
type Slot struct {
	Value  int  `json:"value"`
	Filled bool `json:"filled"`
}

// Ring is a fixed-capacity circular queue. Front and Rear are -1 while the
// ring is empty; Size is the only source of truth for fullness.
type Ring struct {
	Slots    []Slot `json:"slots"`
	Front    int    `json:"front"`
	Rear     int    `json:"rear"`
	Size     int    `json:"size"`
	Capacity int    `json:"capacity"`
}

// NewRing returns an empty ring. A non-positive capacity selects RingCapacity.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = RingCapacity
	}
	return &Ring{
		Slots:    make([]Slot, capacity),
		Front:    -1,
		Rear:     -1,
		Capacity: capacity,
	}
}

func (r *Ring) Clone() step.Structure {
	c := *r
	c.Slots = append([]Slot{}, r.Slots...)
	return &c
}

func (r *Ring) Kind() string { return "ring" }

func (r *Ring) Len() int { return r.Size }

// Values returns the queued values from front to rear.
func (r *Ring) Values() []int {
	out := make([]int, 0, r.Size)
	for i := 0; i < r.Size; i++ {
		out = append(out, r.Slots[(r.Front+i)%r.Capacity].Value)
	}
	return out
}

func (r *Ring) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range r.Slots {
		if i > 0 {
			b.WriteByte(' ')
		}
		if s.Filled {
			fmt.Fprintf(&b, "%d", s.Value)
		} else {
			b.WriteByte('_')
		}
	}
	fmt.Fprintf(&b, "] front=%d rear=%d size=%d", r.Front, r.Rear, r.Size)
	return b.String()
}

// ListNode is a linked-list node with a stable identity.
type ListNode struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

// List is a linked list stored as its nodes in link order. A circular list
// links its tail back to its head logically; the snapshot stays linear.
type List struct {
	Nodes    []ListNode `json:"nodes"`
	Circular bool       `json:"circular"`
	NextID   int        `json:"next_id"`
}

func NewList(circular bool, values ...int) *List {
	l := &List{Circular: circular}
	for _, v := range values {
		l.Nodes = append(l.Nodes, l.newNode(v))
	}
	return l
}

func (l *List) newNode(v int) ListNode {
	n := ListNode{ID: fmt.Sprintf("n%d", l.NextID), Value: v}
	l.NextID++
	return n
}

func (l *List) Clone() step.Structure {
	c := *l
	c.Nodes = append([]ListNode{}, l.Nodes...)
	return &c
}

func (l *List) Kind() string {
	if l.Circular {
		return "circular"
	}
	return "list"
}

func (l *List) Len() int { return len(l.Nodes) }

// Values returns the node values from head to tail.
func (l *List) Values() []int {
	out := make([]int, len(l.Nodes))
	for i, n := range l.Nodes {
		out[i] = n.Value
	}
	return out
}

func (l *List) String() string {
	parts := make([]string, len(l.Nodes))
	for i, n := range l.Nodes {
		parts[i] = fmt.Sprintf("%d", n.Value)
	}
	s := strings.Join(parts, " -> ")
	if l.Circular && len(l.Nodes) > 0 {
		s += " -> (head)"
	}
	return s
}

// TreeNode exclusively owns its children.
type TreeNode struct {
	ID    string    `json:"id"`
	Value int       `json:"value"`
	Left  *TreeNode `json:"left,omitempty"`
	Right *TreeNode `json:"right,omitempty"`
}

func (n *TreeNode) clone() *TreeNode {
	if n == nil {
		return nil
	}
	return &TreeNode{ID: n.ID, Value: n.Value, Left: n.Left.clone(), Right: n.Right.clone()}
}

// Tree is a binary search tree. Smaller values go left, others right.
type Tree struct {
	Root   *TreeNode `json:"root"`
	NextID int       `json:"next_id"`
}

// BuildTree inserts values in order without recording steps or checking
// the depth limit.
func BuildTree(values ...int) *Tree {
	t := &Tree{}
	for _, v := range values {
		link := &t.Root
		for *link != nil {
			if v < (*link).Value {
				link = &(*link).Left
			} else {
				link = &(*link).Right
			}
		}
		*link = t.newNode(v)
	}
	return t
}

func (t *Tree) newNode(v int) *TreeNode {
	n := &TreeNode{ID: fmt.Sprintf("t%d", t.NextID), Value: v}
	t.NextID++
	return n
}

func (t *Tree) Clone() step.Structure {
	return &Tree{Root: t.Root.clone(), NextID: t.NextID}
}

func (t *Tree) Kind() string { return "bst" }

// Len returns the number of nodes.
func (t *Tree) Len() int {
	var count func(*TreeNode) int
	count = func(n *TreeNode) int {
		if n == nil {
			return 0
		}
		return 1 + count(n.Left) + count(n.Right)
	}
	return count(t.Root)
}

// InOrder returns the values in ascending order.
func (t *Tree) InOrder() []int {
	var out []int
	var walk func(*TreeNode)
	walk = func(n *TreeNode) {
		if n == nil {
			return
		}
		walk(n.Left)
		out = append(out, n.Value)
		walk(n.Right)
	}
	walk(t.Root)
	return out
}

// Find returns the first node holding v on the search path, or nil.
func (t *Tree) Find(v int) *TreeNode {
	n := t.Root
	for n != nil && n.Value != v {
		if v < n.Value {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n
}

func (t *Tree) String() string {
	var b strings.Builder
	var walk func(*TreeNode)
	walk = func(n *TreeNode) {
		if n == nil {
			b.WriteByte('.')
			return
		}
		if n.Left == nil && n.Right == nil {
			fmt.Fprintf(&b, "%d", n.Value)
			return
		}
		fmt.Fprintf(&b, "%d(", n.Value)
		walk(n.Left)
		b.WriteByte(' ')
		walk(n.Right)
		b.WriteByte(')')
	}
	if t.Root == nil {
		return "(empty)"
	}
	walk(t.Root)
	return b.String()
}

// Heap is an array-backed max-heap.
type Heap struct {
	Items []int `json:"items"`
}

func NewHeap(values ...int) *Heap {
	return &Heap{Items: append([]int{}, values...)}
}

func (h *Heap) Clone() step.Structure {
	return &Heap{Items: append([]int{}, h.Items...)}
}

func (h *Heap) Kind() string { return "heap" }

func (h *Heap) Len() int { return len(h.Items) }

// Valid reports whether every parent is at least as large as its children.
func (h *Heap) Valid() bool {
	for i := 1; i < len(h.Items); i++ {
		if h.Items[i] > h.Items[(i-1)/2] {
			return false
		}
	}
	return true
}

func (h *Heap) String() string { return formatInts(h.Items) }

// Edge is an undirected edge in insertion order.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is an undirected graph keyed by vertex label.
type Graph struct {
	Vertices []string            `json:"vertices"`
	Adj      map[string][]string `json:"adj"`
	Edges    []Edge              `json:"edges"`
}

func NewGraph() *Graph {
	return &Graph{Adj: make(map[string][]string)}
}

func (g *Graph) Clone() step.Structure {
	c := &Graph{
		Vertices: append([]string{}, g.Vertices...),
		Adj:      make(map[string][]string, len(g.Adj)),
		Edges:    append([]Edge{}, g.Edges...),
	}
	for k, v := range g.Adj {
		c.Adj[k] = append([]string{}, v...)
	}
	return c
}

func (g *Graph) Kind() string { return "graph" }

func (g *Graph) Len() int { return len(g.Vertices) }

func (g *Graph) HasVertex(label string) bool {
	_, ok := g.Adj[label]
	return ok
}

func (g *Graph) HasEdge(from, to string) bool {
	for _, n := range g.Adj[from] {
		if n == to {
			return true
		}
	}
	return false
}

func (g *Graph) addVertex(label string) {
	if g.Adj == nil {
		g.Adj = make(map[string][]string)
	}
	g.Vertices = append(g.Vertices, label)
	g.Adj[label] = nil
}

func (g *Graph) addEdge(from, to string) {
	g.Adj[from] = append(g.Adj[from], to)
	g.Adj[to] = append(g.Adj[to], from)
	g.Edges = append(g.Edges, Edge{From: from, To: to})
}

func (g *Graph) String() string {
	lines := make([]string, len(g.Vertices))
	for i, v := range g.Vertices {
		lines[i] = fmt.Sprintf("%s: %s", v, strings.Join(g.Adj[v], " "))
	}
	return strings.Join(lines, "\n")
}

func formatInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%d", x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

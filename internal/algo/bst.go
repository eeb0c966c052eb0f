package algo

import (
	"fmt"
	"strings"

	"github.com/san-kum/algoviz/internal/step"
)

// depthFor returns the depth a new node holding v would be attached at.
func (t *Tree) depthFor(v int) int {
	depth := 0
	for n := t.Root; n != nil; depth++ {
		if v < n.Value {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return depth
}

// descend records one step for moving from n towards v and returns the
// link to follow.
func descend(rec *step.Recorder, w *Tree, n *TreeNode, v int, path []string) **TreeNode {
	if v < n.Value {
		rec.Record(w, fmt.Sprintf("%d < %d, going left", v, n.Value),
			step.On(step.RoleCompared, n.ID), step.On(step.RoleVisited, path...))
		return &n.Left
	}
	rec.Record(w, fmt.Sprintf("%d >= %d, going right", v, n.Value),
		step.On(step.RoleCompared, n.ID), step.On(step.RoleVisited, path...))
	return &n.Right
}

// TreeInsert walks the search path and attaches v as a new leaf. Nodes
// deeper than TreeMaxDepth are rejected before any step is produced.
func TreeInsert(t *Tree, v int) step.Sequence {
	if d := t.depthFor(v); d > TreeMaxDepth {
		return step.Rejectf(t, "insert", step.ErrCapacity, "Tree depth limit %d reached: %d would sit at depth %d", TreeMaxDepth, v, d)
	}
	w := t.Clone().(*Tree)
	rec := step.NewRecorder()
	rec.Recordf(w, "Inserting %d", v)

	if w.Root == nil {
		w.Root = w.newNode(v)
		rec.Record(w, fmt.Sprintf("%d becomes the root", v), step.On(step.RoleInserted, w.Root.ID))
		return rec.Sequence()
	}

	var parent *TreeNode
	var path []string
	link := &w.Root
	for *link != nil {
		parent = *link
		link = descend(rec, w, parent, v, path)
		path = append(path, parent.ID)
	}
	*link = w.newNode(v)

	side := "right"
	if link == &parent.Left {
		side = "left"
	}
	rec.Record(w, fmt.Sprintf("Inserted %d as the %s child of %d", v, side, parent.Value),
		step.On(step.RoleInserted, (*link).ID), step.On(step.RoleVisited, path...))
	return rec.Sequence()
}

// TreeSearch follows the search path for target.
func TreeSearch(t *Tree, target int) step.Sequence {
	w := t.Clone().(*Tree)
	rec := step.NewRecorder()
	rec.Recordf(w, "Searching for %d", target)

	var path []string
	for n := w.Root; n != nil; {
		if n.Value == target {
			rec.Record(w, fmt.Sprintf("Found %d", target), step.On(step.RoleFound, n.ID), step.On(step.RoleVisited, path...))
			return rec.Sequence()
		}
		next := descend(rec, w, n, target, path)
		path = append(path, n.ID)
		n = *next
	}

	rec.Record(w, fmt.Sprintf("%d not found", target), step.On(step.RoleVisited, path...))
	return rec.Sequence()
}

// TreeDelete removes the first node holding v. A node with two children
// takes its in-order successor's value and the successor is spliced out of
// the right subtree.
func TreeDelete(t *Tree, v int) step.Sequence {
	w := t.Clone().(*Tree)
	rec := step.NewRecorder()
	rec.Recordf(w, "Deleting %d", v)

	var path []string
	link := &w.Root
	for *link != nil && (*link).Value != v {
		n := *link
		link = descend(rec, w, n, v, path)
		path = append(path, n.ID)
	}
	if *link == nil {
		rec.Record(w, fmt.Sprintf("%d not found", v), step.On(step.RoleVisited, path...))
		return rec.Sequence()
	}

	n := *link
	if n.Left == nil || n.Right == nil {
		child, kind := n.Left, "one child"
		if child == nil {
			child = n.Right
		}
		if n.Left == nil && n.Right == nil {
			kind = "a leaf"
		}
		rec.Record(w, fmt.Sprintf("Found %d; it is %s", v, kind), step.On(step.RoleRemoved, n.ID))
		*link = child
		rec.Recordf(w, "Deleted %d", v)
		return rec.Sequence()
	}

	rec.Record(w, fmt.Sprintf("Found %d; it has two children, finding the in-order successor", v),
		step.On(step.RoleActive, n.ID))
	sl := &n.Right
	for {
		s := *sl
		rec.Record(w, fmt.Sprintf("Successor candidate %d", s.Value),
			step.On(step.RolePointer, s.ID), step.On(step.RoleActive, n.ID))
		if s.Left == nil {
			break
		}
		sl = &s.Left
	}
	s := *sl
	n.Value = s.Value
	rec.Record(w, fmt.Sprintf("Copied successor %d into the node", s.Value),
		step.On(step.RoleUpdated, n.ID), step.On(step.RoleRemoved, s.ID))

	*sl = s.Right
	rec.Record(w, fmt.Sprintf("Deleted %d; successor %d took its place", v, s.Value), step.On(step.RoleUpdated, n.ID))
	return rec.Sequence()
}

// Order selects a depth-first traversal order.
type Order int

const (
	PreOrder Order = iota
	InOrder
	PostOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	default:
		return "unknown"
	}
}

// TreeTraverse emits one step per visited node in the given order.
func TreeTraverse(t *Tree, order Order) step.Sequence {
	w := t.Clone().(*Tree)
	rec := step.NewRecorder()
	rec.Recordf(w, "Starting %s traversal", order)

	var visited []string
	var values []string
	visit := func(n *TreeNode) {
		rec.Record(w, fmt.Sprintf("Visiting %d", n.Value), step.On(step.RoleActive, n.ID), step.On(step.RoleVisited, visited...))
		visited = append(visited, n.ID)
		values = append(values, fmt.Sprintf("%d", n.Value))
	}
	var walk func(*TreeNode)
	walk = func(n *TreeNode) {
		if n == nil {
			return
		}
		if order == PreOrder {
			visit(n)
		}
		walk(n.Left)
		if order == InOrder {
			visit(n)
		}
		walk(n.Right)
		if order == PostOrder {
			visit(n)
		}
	}
	walk(w.Root)

	if len(values) == 0 {
		rec.Record(w, "Tree is empty")
		return rec.Sequence()
	}
	rec.Record(w, fmt.Sprintf("%s traversal: %s", capitalize(order.String()), strings.Join(values, " ")),
		step.On(step.RoleVisited, visited...))
	return rec.Sequence()
}

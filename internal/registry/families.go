package registry

import (
	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/step"
)

// on adapts a typed generator, rejecting structures of another kind.
func on[T step.Structure](op string, fn func(T, algo.Operands) step.Sequence) handler {
	return func(s step.Structure, o algo.Operands) step.Sequence {
		t, ok := s.(T)
		if !ok {
			return step.Rejectf(s, op, step.ErrInvalidOperand, "Operation %s does not apply to a %s", op, s.Kind())
		}
		return fn(t, o)
	}
}

func missing(s step.Structure, op, name string) step.Sequence {
	return step.Rejectf(s, op, step.ErrInvalidOperand, "Operation %s needs a numeric %s", op, name)
}

func withValue[T step.Structure](op string, fn func(T, int) step.Sequence) handler {
	return on(op, func(s T, o algo.Operands) step.Sequence {
		if o.Value == nil {
			return missing(s, op, "value")
		}
		return fn(s, *o.Value)
	})
}

func withIndex[T step.Structure](op string, fn func(T, int) step.Sequence) handler {
	return on(op, func(s T, o algo.Operands) step.Sequence {
		if o.Index == nil {
			return missing(s, op, "index")
		}
		return fn(s, *o.Index)
	})
}

func withIndexValue[T step.Structure](op string, fn func(T, int, int) step.Sequence) handler {
	return on(op, func(s T, o algo.Operands) step.Sequence {
		if o.Index == nil {
			return missing(s, op, "index")
		}
		if o.Value == nil {
			return missing(s, op, "value")
		}
		return fn(s, *o.Index, *o.Value)
	})
}

func withTarget[T step.Structure](op string, fn func(T, int) step.Sequence) handler {
	return on(op, func(s T, o algo.Operands) step.Sequence {
		switch {
		case o.Target != nil:
			return fn(s, *o.Target)
		case o.Value != nil:
			return fn(s, *o.Value)
		}
		return missing(s, op, "target")
	})
}

func plain[T step.Structure](op string, fn func(T) step.Sequence) handler {
	return on(op, func(s T, _ algo.Operands) step.Sequence { return fn(s) })
}

func (r *Registry) registerDefaults() {
	r.register(arrayFamily())
	r.register(sortingFamily())
	r.register(searchingFamily())
	r.register(stackFamily())
	r.register(queueFamily())
	r.register(dequeFamily())
	r.register(ringFamily(r.ringCapacity))
	r.register(listFamily("list", false))
	r.register(listFamily("circular", true))
	r.register(bstFamily())
	r.register(heapFamily())
	r.register(graphFamily())
}

func arrayFamily() *Family {
	f := &Family{Name: "array", Incremental: true, Empty: func() step.Structure { return algo.NewArray() }}
	f.handle("insert", "index, value", withIndexValue("insert", algo.ArrayInsert))
	f.handle("delete", "index", withIndex("delete", algo.ArrayDelete))
	f.handle("update", "index, value", withIndexValue("update", algo.ArrayUpdate))
	f.handle("traverse", "", plain("traverse", algo.ArrayTraverse))
	f.handle("search", "target", withTarget("search", algo.LinearSearch))
	return f
}

func sortingFamily() *Family {
	f := &Family{Name: "sorting", Empty: func() step.Structure { return algo.NewArray() }}
	f.handle("bubble", "", plain("bubble", algo.BubbleSort))
	f.handle("selection", "", plain("selection", algo.SelectionSort))
	f.handle("insertion", "", plain("insertion", algo.InsertionSort))
	return f
}

func searchingFamily() *Family {
	f := &Family{Name: "searching", Empty: func() step.Structure { return algo.NewArray() }}
	f.handle("linear", "target", withTarget("linear", algo.LinearSearch))
	f.handle("binary", "target", withTarget("binary", algo.BinarySearch))
	return f
}

func stackFamily() *Family {
	f := &Family{Name: "stack", Incremental: true, Empty: func() step.Structure { return algo.NewStack() }}
	f.handle("push", "value", withValue("push", algo.Push))
	f.handle("pop", "", plain("pop", algo.Pop))
	f.handle("peek", "", plain("peek", algo.PeekStack))
	return f
}

func queueFamily() *Family {
	f := &Family{Name: "queue", Incremental: true, Empty: func() step.Structure { return algo.NewQueue() }}
	f.handle("enqueue", "value", withValue("enqueue", algo.Enqueue))
	f.handle("dequeue", "", plain("dequeue", algo.Dequeue))
	f.handle("peek", "", plain("peek", algo.PeekQueue))
	return f
}

func dequeFamily() *Family {
	f := &Family{Name: "deque", Incremental: true, Empty: func() step.Structure { return algo.NewDeque() }}
	for _, end := range []algo.End{algo.Front, algo.Rear} {
		push, pop, peek := "push_"+end.String(), "pop_"+end.String(), "peek_"+end.String()
		f.handle(push, "value", withValue(push, func(d *algo.Deque, v int) step.Sequence { return algo.DequePush(d, end, v) }))
		f.handle(pop, "", plain(pop, func(d *algo.Deque) step.Sequence { return algo.DequePop(d, end) }))
		f.handle(peek, "", plain(peek, func(d *algo.Deque) step.Sequence { return algo.DequePeek(d, end) }))
	}
	return f
}

func ringFamily(capacity int) *Family {
	f := &Family{Name: "ring", Incremental: true, Empty: func() step.Structure { return algo.NewRing(capacity) }}
	f.handle("enqueue", "value", withValue("enqueue", algo.RingEnqueue))
	f.handle("dequeue", "", plain("dequeue", algo.RingDequeue))
	f.handle("peek", "", plain("peek", algo.RingPeek))
	return f
}

func listFamily(name string, circular bool) *Family {
	f := &Family{Name: name, Incremental: true, Empty: func() step.Structure { return algo.NewList(circular) }}
	f.handle("insert_head", "value", withValue("insert_head", algo.ListInsertHead))
	f.handle("insert_tail", "value", withValue("insert_tail", algo.ListInsertTail))
	f.handle("insert_at", "index, value", withIndexValue("insert_at", algo.ListInsertAt))
	f.handle("delete_head", "", plain("delete_head", algo.ListDeleteHead))
	f.handle("delete_tail", "", plain("delete_tail", algo.ListDeleteTail))
	f.handle("delete_at", "index", withIndex("delete_at", algo.ListDeleteAt))
	f.handle("search", "target", withTarget("search", algo.ListSearch))
	return f
}

func bstFamily() *Family {
	f := &Family{Name: "bst", Incremental: true, Empty: func() step.Structure { return &algo.Tree{} }}
	f.handle("insert", "value", withValue("insert", algo.TreeInsert))
	f.handle("delete", "value", withValue("delete", algo.TreeDelete))
	f.handle("search", "target", withTarget("search", algo.TreeSearch))
	for _, order := range []algo.Order{algo.PreOrder, algo.InOrder, algo.PostOrder} {
		f.handle(order.String(), "", plain(order.String(), func(t *algo.Tree) step.Sequence { return algo.TreeTraverse(t, order) }))
	}
	return f
}

func heapFamily() *Family {
	f := &Family{Name: "heap", Incremental: true, Empty: func() step.Structure { return algo.NewHeap() }}
	f.handle("insert", "value", withValue("insert", algo.HeapInsert))
	f.handle("extract", "", plain("extract", algo.HeapExtract))
	return f
}

func graphFamily() *Family {
	f := &Family{Name: "graph", Incremental: true, Empty: func() step.Structure { return algo.NewGraph() }}
	f.handle("add_vertex", "label", on("add_vertex", func(g *algo.Graph, o algo.Operands) step.Sequence {
		return algo.AddVertex(g, o.Label)
	}))
	f.handle("add_edge", "from, to", on("add_edge", func(g *algo.Graph, o algo.Operands) step.Sequence {
		return algo.AddEdge(g, o.From, o.To)
	}))
	f.handle("bfs", "from", on("bfs", func(g *algo.Graph, o algo.Operands) step.Sequence {
		return algo.BFS(g, start(o))
	}))
	f.handle("dfs", "from", on("dfs", func(g *algo.Graph, o algo.Operands) step.Sequence {
		return algo.DFS(g, start(o))
	}))
	return f
}

func start(o algo.Operands) string {
	if o.From != "" {
		return o.From
	}
	return o.Label
}

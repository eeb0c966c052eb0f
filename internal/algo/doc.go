// Package algo provides step generators for data structures and algorithms.
//
// Every generator takes an immutable starting structure plus operands and
// returns a [step.Sequence] describing the operation one micro-change at a
// time. Generators never mutate their input; they clone it into a working
// buffer and snapshot that buffer into each step.
//
//   - [Array]: dynamic array, sorting and searching
//   - [Stack], [Queue], [Deque]: linear containers
//   - [Ring]: fixed-capacity circular queue
//   - [List]: singly and circular linked lists
//   - [Tree]: binary search tree
//   - [Heap]: array-backed max-heap
//   - [Graph]: undirected graph with BFS and DFS
//
// # Example
//
//	arr := algo.NewArray(5, 3, 1)
//	seq := algo.BubbleSort(arr)
//	final := seq.Last().State.(*algo.Array) // [1 3 5]
//
// Invalid requests never panic or return an error. They produce a
// single-step sequence whose step carries a [step.Diagnostic].
package algo

package algo

// Fixed maxima for each structure family.
const (
	StackCapacity  = 8
	QueueCapacity  = 7
	DequeCapacity  = 7
	RingCapacity   = 8
	ArrayCapacity  = 8
	ListCapacity   = 7
	TreeMaxDepth   = 4
	HeapCapacity   = 15
	GraphCapacity  = 10
	SearchCapacity = 20
)

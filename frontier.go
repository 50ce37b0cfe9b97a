package gridsearch

import "github.com/zyedidia/generic/queue"

type frontierEntry struct {
	Cell     Cell
	Distance int
}

// frontier is the FIFO work set of a breadth-first search.
type frontier struct {
	entries *queue.Queue[frontierEntry]
	size    int
}

func newFrontier() *frontier {
	return &frontier{entries: queue.New[frontierEntry]()}
}

func (f *frontier) Len() int { return f.size }

func (f *frontier) Push(entry frontierEntry) {
	f.entries.Enqueue(entry)
	f.size++
}

func (f *frontier) Pop() (frontierEntry, bool) {
	if f.entries.Empty() {
		return frontierEntry{}, false
	}
	f.size--
	return f.entries.Dequeue(), true
}

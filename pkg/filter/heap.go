package filter

// areaItem is one entry in a bucket's max-heap: the area of a
// completed layout, plus the index bookkeeping container/heap needs
// to support in-place Swap. Grounded on the taskItem/taskQueueImpl
// split in the pack's taskstore package: a small index-aware item type
// wrapped by a typed slice that implements heap.Interface.
type areaItem struct {
	index int
	area  int
}

// areaHeap is a max-heap by area: the root (index 0) is always the
// largest area currently tracked, so it's the one to evict when a
// smaller candidate arrives and the bucket is already at capacity.
type areaHeap []*areaItem

func (h areaHeap) Len() int { return len(h) }

func (h areaHeap) Less(i, j int) bool {
	return h[i].area > h[j].area
}

func (h areaHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *areaHeap) Push(x any) {
	item := x.(*areaItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *areaHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	item.index = -1
	*h = old[:n-1]
	return item
}

// Package filter implements the search's dedup set and the optional
// bounded min-area pruning tracker, stratified by overlap count.
package filter

import (
	"container/heap"

	"github.com/crossplay/crossgen/pkg/crossword"
	"github.com/crossplay/crossgen/pkg/layout"
)

// Filter holds the seen-set and, when K > 0, one bounded max-heap of
// areas per overlap count. It is not safe for concurrent use; callers
// that run more than one enumerator seed over a shared Filter must
// guard every call with their own lock (see pkg/enumerate's -t mode).
type Filter struct {
	k       int
	seen    map[string]struct{}
	buckets map[int]*areaHeap
}

// New returns a Filter with min-area tracking capped at k entries per
// overlap tier. k == 0 disables area tracking; the seen-set dedup
// still runs.
func New(k int) *Filter {
	f := &Filter{k: k, seen: make(map[string]struct{})}
	if k > 0 {
		f.buckets = make(map[int]*areaHeap)
	}
	return f
}

// UpperBound returns the current global pruning bound — the largest
// "K-th best" area across every overlap tier that has filled its K
// slots — and whether one has been established yet. A tier that
// hasn't filled K slots contributes no bound, since it still has room
// for any area.
func (f *Filter) UpperBound() (bound int, ok bool) {
	if f.k == 0 {
		return 0, false
	}
	bound = -1
	for _, h := range f.buckets {
		if h.Len() < f.k {
			continue
		}
		worst := (*h)[0].area
		if worst > bound {
			bound = worst
		}
	}
	if bound < 0 {
		return 0, false
	}
	return bound, true
}

// ByArea reports whether a candidate extension is still worth pursuing:
// false only when the smallest box its descendants could possibly
// achieve — currentBB combined with the new word's own box — already
// exceeds the established upper bound.
func (f *Filter) ByArea(wordLength int, nextPos layout.Position, currentBB layout.BoundingBox) bool {
	bound, ok := f.UpperBound()
	if !ok {
		return true
	}
	candidate := currentBB.Combine(layout.WordBox(nextPos, wordLength))
	return candidate.Area() <= bound
}

// BySeen returns false if cw's placements have already been visited
// this run, else records them and returns true. When remaining == 1
// (cw completes the layout), it also feeds the min-area tracker for
// cw's overlap count.
func (f *Filter) BySeen(cw crossword.Crossword, remaining int) bool {
	key := cw.Key()
	if _, ok := f.seen[key]; ok {
		return false
	}
	f.seen[key] = struct{}{}

	if remaining == 1 && f.k > 0 {
		f.insert(cw.Overlaps, cw.BoundingBox().Area())
	}
	return true
}

func (f *Filter) insert(overlaps, area int) {
	h, ok := f.buckets[overlaps]
	if !ok {
		h = &areaHeap{}
		heap.Init(h)
		f.buckets[overlaps] = h
	}
	if h.Len() < f.k {
		heap.Push(h, &areaItem{area: area})
		return
	}
	if (*h)[0].area > area {
		heap.Pop(h)
		heap.Push(h, &areaItem{area: area})
	}
}

// Package enumerate implements the lazy depth-first search over word
// placements that produces every valid, fully-connected crossword
// layout for a fixed word list.
package enumerate

import (
	"context"
	"errors"
	"iter"
	"sync"

	"github.com/crossplay/crossgen/pkg/crossword"
	"github.com/crossplay/crossgen/pkg/filter"
	"github.com/crossplay/crossgen/pkg/layout"
	"github.com/crossplay/crossgen/pkg/letterindex"
)

// ErrEmptyWords is returned by New when given no words — there is no
// word 0 to seed the search with.
var ErrEmptyWords = errors.New("enumerate: word list is empty")

// Enumerator produces every valid layout for a fixed word list via a
// lazy DFS. It owns the word list, a letter-site index over it for
// fast crossing lookups, and the pruning filter the search consults on
// every candidate extension.
type Enumerator struct {
	words  []string
	index  *letterindex.Index
	filter *filter.Filter
	seed   uint64

	// mu guards filter access when multiple goroutines share this
	// Enumerator (AllThreaded). nil in single-seed mode, where the
	// filter is touched by exactly one goroutine and spec.md §5's
	// single-threaded guarantee holds without locking.
	mu *sync.Mutex
}

// New constructs an Enumerator. k bounds the min-area tracker (0
// disables it); seed, if non-zero, switches the enumeration order to a
// seeded permutation of the same underlying extension set (spec.md's
// shuffled mode — a bijection, never a different set of layouts).
func New(words []string, k int, seed uint64) (*Enumerator, error) {
	if len(words) == 0 {
		return nil, ErrEmptyWords
	}
	return &Enumerator{
		words:  words,
		index:  letterindex.Build(words),
		filter: filter.New(k),
		seed:   seed,
	}, nil
}

// All returns the lazy sequence of every valid completion. The caller
// drives the search by ranging over it; breaking out of the range loop
// is sufficient to abandon the search, and canceling ctx stops it
// between yields.
func (e *Enumerator) All(ctx context.Context) iter.Seq[crossword.Crossword] {
	return func(yield func(crossword.Crossword) bool) {
		cw0 := crossword.Seed(e.words)
		candidates := make([]int, 0, len(e.words)-1)
		for i := 1; i < len(e.words); i++ {
			candidates = append(candidates, i)
		}
		e.recurse(ctx, cw0, candidates, yield)
	}
}

// recurse returns false once the caller's yield has asked the search
// to stop, propagating that refusal back up through every ancestor
// frame so the whole DFS unwinds promptly.
func (e *Enumerator) recurse(ctx context.Context, cw crossword.Crossword, candidates []int, yield func(crossword.Crossword) bool) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}

	if len(candidates) == 0 {
		return yield(cw)
	}

	for _, ext := range e.expand(cw, candidates) {
		if !e.recurse(ctx, ext.cw, ext.candidates, yield) {
			return false
		}
	}
	return true
}

type extension struct {
	cw         crossword.Crossword
	candidates []int
}

// expand implements spec.md §4.5 steps 1-9: every already-placed
// letter crossed against every matching character of every remaining
// candidate word, pruned by area before the (cheaper) collision check,
// then deduplicated before being accepted as a new search frame.
func (e *Enumerator) expand(cw crossword.Crossword, candidates []int) []extension {
	var out []extension

	candidateOrder := e.order(len(candidates), cw, "candidates")
	for _, ci := range candidateOrder {
		c := candidates[ci]
		word := []rune(e.words[c])

		letters := cw.Letters()
		letterOrder := e.order(len(letters), cw, "letters")
		for _, li := range letterOrder {
			l := letters[li]

			// Only the sites where l.Char occurs in word c can host a
			// crossing; the reverse index hands those back directly
			// instead of scanning every rune of word.
			sites := sitesInWord(e.index.Sites(l.Char), c)
			siteOrder := e.order(len(sites), cw, "chars")
			for _, si := range siteOrder {
				i := sites[si].LetterIdx
				nextPos := l.Pos.FromOffset(i)

				if !e.byArea(len(word), nextPos, cw.BoundingBox()) {
					continue
				}
				overlaps, ok := cw.Grid.CanAddWord(nextPos, word)
				if !ok {
					continue
				}

				nextCw := cw.WithWord(c, nextPos, overlaps)
				if !e.bySeen(nextCw, len(candidates)) {
					continue
				}

				out = append(out, extension{
					cw:         nextCw,
					candidates: removeAt(candidates, ci),
				})
			}
		}
	}
	return out
}

func (e *Enumerator) byArea(wordLength int, nextPos layout.Position, currentBB layout.BoundingBox) bool {
	if e.mu == nil {
		return e.filter.ByArea(wordLength, nextPos, currentBB)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filter.ByArea(wordLength, nextPos, currentBB)
}

func (e *Enumerator) bySeen(cw crossword.Crossword, remaining int) bool {
	if e.mu == nil {
		return e.filter.BySeen(cw, remaining)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filter.BySeen(cw, remaining)
}

func sitesInWord(sites []letterindex.Site, wordIdx int) []letterindex.Site {
	var out []letterindex.Site
	for _, s := range sites {
		if s.WordIdx == wordIdx {
			out = append(out, s)
		}
	}
	return out
}

// order returns the identity permutation of [0,n) in the default
// (deterministic) mode, or a seeded shuffle of it when the enumerator
// has a non-zero seed. salt distinguishes the three ranges spec.md
// §4.5 names (candidates, existing letters, candidate-word
// characters) so they don't all shuffle in lockstep.
func (e *Enumerator) order(n int, cw crossword.Crossword, salt string) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if e.seed == 0 {
		return idx
	}
	r := newRand(subSeed(e.seed, cw.Key()+":"+salt))
	r.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
	return idx
}

func removeAt(s []int, i int) []int {
	out := make([]int, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}


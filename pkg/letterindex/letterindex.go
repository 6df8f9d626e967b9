// Package letterindex builds a reverse index from a letter to every
// site in the fixed input word list where that letter occurs, so the
// enumerator can look up crossing candidates without scanning every
// word on each step.
package letterindex

// Site names one occurrence of a letter: the word it belongs to, and
// the letter's index within that word.
type Site struct {
	WordIdx   int
	LetterIdx int
}

// Index maps a letter to every site it occurs at across the word list
// it was built from.
type Index struct {
	sites map[rune][]Site
}

// Build indexes every letter of every word.
func Build(words []string) *Index {
	idx := &Index{sites: make(map[rune][]Site)}
	for wi, w := range words {
		for li, ch := range []rune(w) {
			idx.sites[ch] = append(idx.sites[ch], Site{WordIdx: wi, LetterIdx: li})
		}
	}
	return idx
}

// Sites returns every (word, position) site where ch occurs. The
// returned slice is owned by the index and must not be modified.
func (idx *Index) Sites(ch rune) []Site {
	return idx.sites[ch]
}

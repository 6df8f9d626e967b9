package enumerate

import (
	"hash/fnv"
	"math/rand/v2"
)

// subSeed derives a per-crossword seed from the run seed and a key
// identifying both the crossword being extended and which of the
// three iteration ranges (candidates, letters, chars) is being
// shuffled, so re-entering the same partial layout from a different
// ancestor still permutes identically — spec.md's bijection
// requirement for shuffled mode.
func subSeed(seed uint64, key string) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(seed >> (8 * i))
	}
	h.Write(buf[:])
	h.Write([]byte(key))
	return h.Sum64()
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

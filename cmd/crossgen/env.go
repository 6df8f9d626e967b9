package main

import (
	"os"
	"strconv"
)

// applyEnv fills cfg's fields from CROSSGEN_N/CROSSGEN_SEED/
// CROSSGEN_THREADS when set and parseable, before flags are parsed —
// a flag always overrides its env default. This is a convenience for
// local runs, not part of spec.md's CLI contract, so a malformed env
// value is dropped silently rather than reported the way a malformed
// flag value is.
func applyEnv(cfg *config) {
	setFromEnv("CROSSGEN_N", &cfg.n)
	setFromEnv("CROSSGEN_SEED", &cfg.seed)
	setFromEnv("CROSSGEN_THREADS", &cfg.threads)
}

func setFromEnv(key string, dst *uint64) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return
	}
	*dst = v
}

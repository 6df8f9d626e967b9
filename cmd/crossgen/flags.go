package main

import (
	"fmt"
	"io"
	"strconv"
)

// config holds the three numeric parameters spec.md §6 defines.
// threads defaults to 1 (single enumeration stream).
type config struct {
	n       uint64
	seed    uint64
	threads uint64
}

func defaultConfig() config {
	return config{threads: 1}
}

// parseArgs scans args as flag/value pairs. A malformed numeric value
// for a known flag writes "<flag> <value>: <diagnostic>" to out and
// returns ok=false, meaning the caller must exit without generating
// anything. An unknown flag, and the value paired with it, are
// silently skipped — the flag/value pairing is kept strict even for
// flags we don't recognize, so a later recognized flag never gets
// mistaken for an unrecognized one's value. A trailing flag with no
// paired value is likewise ignored rather than treated as an error.
func parseArgs(args []string, out io.Writer, cfg *config) (ok bool) {
	for i := 0; i+1 < len(args); i += 2 {
		flag, value := args[i], args[i+1]

		var dst *uint64
		switch flag {
		case "-n":
			dst = &cfg.n
		case "-s":
			dst = &cfg.seed
		case "-t":
			dst = &cfg.threads
		default:
			continue
		}

		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			fmt.Fprintf(out, "%s %s: %s\n", flag, value, err)
			return false
		}
		*dst = v
	}
	return true
}

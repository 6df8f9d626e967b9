// Command crossgen reads a word list from standard input and streams
// every valid crossword layout for it to standard output.
package main

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/crossplay/crossgen/pkg/enumerate"
	"github.com/crossplay/crossgen/pkg/render"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := defaultConfig()
	applyEnv(&cfg)
	if ok := parseArgs(os.Args[1:], os.Stdout, &cfg); !ok {
		return
	}

	runID := uuid.New().String()
	log.Printf("crossgen run=%s n=%d seed=%d threads=%d", runID, cfg.n, cfg.seed, cfg.threads)

	words := readWords(os.Stdin)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if err := render.WriteHeader(out, words, int(cfg.n), cfg.seed); err != nil {
		log.Fatalf("crossgen run=%s: writing header: %v", runID, err)
	}
	if len(words) == 0 {
		return
	}

	e, err := enumerate.New(words, int(cfg.n), cfg.seed)
	if err != nil {
		log.Fatalf("crossgen run=%s: %v", runID, err)
	}

	stream := e.All(context.Background())
	if cfg.threads > 1 {
		log.Printf("crossgen run=%s: round-robining across %d seeds", runID, cfg.threads)
		stream = e.AllThreaded(context.Background(), int(cfg.threads))
	}

	emitted := 0
	bestOverlap := -1
	for cw := range stream {
		if cfg.n > 0 {
			if cw.Overlaps < bestOverlap {
				continue
			}
			bestOverlap = cw.Overlaps
		}
		if err := render.WriteLayout(out, cw); err != nil {
			log.Fatalf("crossgen run=%s: writing layout: %v", runID, err)
		}
		emitted++
	}
	log.Printf("crossgen run=%s emitted=%d", runID, emitted)
}

// Package main provides a tool to bake a catalog snapshot.
//
// The server synthesizes a fresh catalog on every start unless it is
// given a snapshot. Baking one with a pinned seed keeps entry ids and
// images stable across deployments.
//
// Usage:
//
//	go run ./cmd/seed --seed 42 --size 208 --out catalog.json
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/heritageapp/heritage-server/internal/catalog"
	"github.com/heritageapp/heritage-server/internal/vocab"
)

var (
	seed = flag.Uint64("seed", 42, "Random seed for catalog synthesis")
	size = flag.Int("size", 208, "Total catalog size including curated entries")
	out  = flag.String("out", "catalog.json", "Output snapshot path")
)

func main() {
	flag.Parse()

	rng := rand.New(rand.NewPCG(*seed, 0))
	entries, err := catalog.Synthesize(vocab.SeedEntries, *size, rng)
	if err != nil {
		log.Fatalf("Failed to synthesize catalog: %v", err)
	}

	if err := catalog.WriteSnapshot(*out, entries); err != nil {
		log.Fatalf("Failed to write snapshot: %v", err)
	}

	fmt.Printf("Wrote %d entries (seed %d) to %s\n", len(entries), *seed, *out)
}

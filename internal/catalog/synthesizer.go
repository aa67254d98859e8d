// Package catalog builds and queries the in-memory heritage catalog.
// The catalog is synthesized once at startup from a curated seed plus
// a template-driven generator, then served read-only.
package catalog

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"

	"github.com/heritageapp/heritage-server/internal/domain"
	"github.com/heritageapp/heritage-server/internal/vocab"
)

// Synthesize grows the seed to exactly targetSize entries. The seed is
// copied verbatim at the head of the result; generated entries continue
// the integer id sequence from max(seed id)+1 with no gaps. A seed
// already at or past the target is returned whole, untouched — the
// curated entries are never trimmed. Word-pool picks come from rng so a
// fixed source reproduces the same catalog, but each entry's image is
// derived from its id alone and never from rng: the same id always
// renders the same image, whatever the draw order around it.
func Synthesize(seed []domain.CatalogEntry, targetSize int, rng *rand.Rand) ([]domain.CatalogEntry, error) {
	if targetSize <= len(seed) {
		return slices.Clone(seed), nil
	}

	entries := make([]domain.CatalogEntry, 0, targetSize)
	entries = append(entries, seed...)

	nextID := maxNumericID(seed) + 1
	for len(entries) < targetSize {
		entries = append(entries, synthesizeEntry(nextID, rng))
		nextID++
	}
	return entries, nil
}

func synthesizeEntry(id int, rng *rand.Rand) domain.CatalogEntry {
	region := pick(rng, vocab.Regions)
	category := pick(rng, vocab.Categories)
	adjective := pick(rng, vocab.Adjectives)
	noun := pick(rng, vocab.Nouns)

	photoIDs := vocab.PhotoIDs(noun)
	// Image choice is locked to the id, not drawn from rng. Re-running
	// synthesis with a different draw sequence may change what entry N
	// is, but entry N's noun always maps through id in the same way.
	photo := photoIDs[id%len(photoIDs)]

	return domain.CatalogEntry{
		ID:               strconv.Itoa(id),
		Name:             region + adjective + noun,
		Category:         category,
		Region:           region,
		ShortDescription: fmt.Sprintf("源自%s的%s%s，传承千年的%s瑰宝。", region, adjective, noun, category),
		FullDescription: fmt.Sprintf(
			"%s%s%s是%s地区独特的%s形式。它融合了%s风格与%s技艺，体现了当地人民的智慧与审美。作为非物质文化遗产，它在现代社会依然焕发着勃勃生机，是%s文化的重要名片。",
			region, adjective, noun, region, category, adjective, noun, region),
		ImageURL: vocab.PhotoURL(photo),
		Tags:     []string{category, region, pick(rng, vocab.TagPool), pick(rng, vocab.TagPool)},
	}
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.IntN(len(pool))]
}

// maxNumericID scans the seed for its highest integer id. Non-numeric
// ids are skipped rather than rejected; the curated seed only uses
// numeric ids.
func maxNumericID(seed []domain.CatalogEntry) int {
	max := 0
	for _, e := range seed {
		if n, err := strconv.Atoi(e.ID); err == nil && n > max {
			max = n
		}
	}
	return max
}

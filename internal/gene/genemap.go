// Package gene scores a user's cultural profile. The whole engine is a
// pure function over its inputs: no clock, no randomness, no state.
package gene

import (
	"slices"

	"github.com/heritageapp/heritage-server/internal/domain"
	"github.com/heritageapp/heritage-server/internal/vocab"
)

// Input carries the answers the scoring run is computed from.
type Input struct {
	Hometown         string
	Age              int
	Interests        []string
	FamilyTraditions []string
}

const (
	maxCulturalScore = 0.95
	baseScore        = 0.5
	scorePerAnswer   = 0.1

	foodStrength    = 0.85
	artBaseStrength = 0.75
	artInterestBump = 0.15

	traitGuardian = "守望者"
	traitBearer   = "传承者"
)

// recommendation ids reference the curated AR exhibit set, which keeps
// its own id namespace apart from the synthesized catalog.
const (
	recommendAlways    = "heritage_001"
	recommendShaanxi   = "heritage_002"
	recommendElsewhere = "heritage_003"
)

// Compute derives the gene map and exhibit recommendations for one
// input. Identical inputs always produce identical outputs, field by
// field. An empty or unmapped hometown lands in the default asset
// bucket instead of erroring.
func Compute(in Input) (domain.GeneMap, []string) {
	assets := vocab.LookupAssets(in.Hometown)

	score := baseScore + scorePerAnswer*float64(len(in.Interests)) + scorePerAnswer*float64(len(in.FamilyTraditions))
	if score > maxCulturalScore {
		score = maxCulturalScore
	}

	artStrength := artBaseStrength
	if slices.Contains(in.Interests, "美术") {
		artStrength += artInterestBump
	}

	gm := domain.GeneMap{
		CulturalElements: []domain.CulturalElement{
			{Type: "food", Strength: foodStrength, Heritages: assets.Food},
			{Type: "art", Strength: artStrength, Heritages: assets.Art},
		},
		RegionalScore: score,
		GenerationGap: generationGap(in.Age),
		PrimaryColor:  assets.Color,
		DominantTrait: dominantTrait(in.Age),
	}

	recommendations := []string{recommendAlways, recommendElsewhere}
	if assets.Key == "陕西" {
		recommendations[1] = recommendShaanxi
	}
	return gm, recommendations
}

// generationGap brackets age into a distance-from-tradition score.
// Younger brackets score a wider gap.
func generationGap(age int) float64 {
	switch {
	case age > 50:
		return 0.1
	case age > 30:
		return 0.3
	default:
		return 0.6
	}
}

func dominantTrait(age int) string {
	if age > 40 {
		return traitGuardian
	}
	return traitBearer
}

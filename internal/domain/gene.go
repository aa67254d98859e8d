package domain

import "time"

// CulturalElement is one scored dimension of a gene map.
type CulturalElement struct {
	Type      string   `json:"type"`     // "food" or "art"
	Strength  float64  `json:"strength"` // [0, 1]
	Heritages []string `json:"heritages"`
}

// GeneMap is the output of the deterministic cultural scoring engine.
// Computed fresh per request from user attributes; never mutated afterwards.
type GeneMap struct {
	CulturalElements []CulturalElement `json:"cultural_elements"`
	RegionalScore    float64           `json:"regional_score"` // capped at 0.95
	GenerationGap    float64           `json:"generation_gap"` // step function of age
	PrimaryColor     string            `json:"primary_color"`
	DominantTrait    string            `json:"dominant_trait"`
}

// GeneProfile is a persisted record of one profile generation, so the
// returned profile id stays dereferenceable.
type GeneProfile struct {
	ID               string    `json:"id"`
	Hometown         string    `json:"hometown"`
	Age              int       `json:"age"`
	Interests        []string  `json:"interests"`
	FamilyTraditions []string  `json:"family_traditions"`
	GeneMap          GeneMap   `json:"gene_map"`
	Recommendations  []string  `json:"recommendations"` // catalog entry ids
	CreatedAt        time.Time `json:"created_at"`
}

package domain

import "time"

// CraftStep is one step of an archetype's craft experience sequence.
type CraftStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ArchetypeCard is one of the fixed personalization cards. Immutable
// reference data; users are assigned exactly one.
type ArchetypeCard struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Keyword     string      `json:"keyword"`
	Traits      []string    `json:"traits"`
	Description string      `json:"description"`
	Blessing    string      `json:"blessing"`
	Pattern     string      `json:"pattern"` // display glyph
	Steps       []CraftStep `json:"steps"`
}

// GeneAssignment relates a user to their archetype card.
// Created once on first successful generation, then only ever read.
type GeneAssignment struct {
	UserID      string    `json:"user_id"`
	ArchetypeID string    `json:"archetype_id"`
	AssignedAt  time.Time `json:"assigned_at"`
}

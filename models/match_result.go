package models

import (
	"github.com/guregu/null/v5"
	"github.com/hashicorp/go-set/v2"
)

// MatchLayer identifies which layer of the matching hierarchy produced a
// hit. Layers are declared in decreasing order of confidence, so when the
// same entity is hit several times with an equal score, the lowest layer
// value wins.
type MatchLayer int

const (
	MatchLayerExact MatchLayer = iota
	MatchLayerToken
	MatchLayerPhonetic
	MatchLayerFuzzy
	MatchLayerUnknown
)

func MatchLayerFrom(s string) MatchLayer {
	switch s {
	case "exact":
		return MatchLayerExact
	case "token":
		return MatchLayerToken
	case "phonetic":
		return MatchLayerPhonetic
	case "fuzzy":
		return MatchLayerFuzzy
	}
	return MatchLayerUnknown
}

func (l MatchLayer) String() string {
	switch l {
	case MatchLayerExact:
		return "exact"
	case MatchLayerToken:
		return "token"
	case MatchLayerPhonetic:
		return "phonetic"
	case MatchLayerFuzzy:
		return "fuzzy"
	}
	return "unknown"
}

// NameIndexEntry is one searchable name of a sanctioned entity, either the
// primary name or an alias. Normalization and tokenization happen once at
// index build time, so a query only pays for its own normalization.
type NameIndexEntry struct {
	OriginalName   string
	NormalizedName string
	Tokens         *set.Set[string]
	Entity         *SanctionEntity
}

// MatchResult is a single hit returned by a screening query, enriched with
// the jurisdictional risk assessment of the matched entity.
type MatchResult struct {
	MatchedName string
	Score       float64
	Layer       MatchLayer
	Entity      SanctionEntitySummary

	// Authority designates the list the hit was found on, Authorities every
	// authority the entity's primary name is known under.
	Authority   string
	Authorities []string
	Tier        int

	RiskScore float64
	RiskLevel RiskLevel
	// IsMultiJurisdictional is null when the index has no jurisdiction data
	// for the matched name, in which case the risk score is the raw match
	// score.
	IsMultiJurisdictional null.Bool
}

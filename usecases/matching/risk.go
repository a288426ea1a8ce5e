package matching

import (
	"math"
	"slices"

	"github.com/guregu/null/v5"
	"github.com/hashicorp/go-set/v2"

	"github.com/vigiehq/vigie-backend/models"
)

type riskAssessment struct {
	Score                 float64
	Level                 models.RiskLevel
	HighestTier           int
	Authorities           []string
	IsMultiJurisdictional null.Bool
}

// assessRisk weighs a match score by the jurisdictions the matched name is
// listed under. A single listing keeps the raw score; a name listed by
// several authorities gets amplified, the more so the stronger the mandates
// involved. With no jurisdiction data at all the multi-jurisdictional flag
// stays unknown rather than guessed false.
func assessRisk(matchScore float64, listTypes []models.ListType) riskAssessment {
	if len(listTypes) == 0 {
		return riskAssessment{
			Score:       matchScore,
			Level:       models.RiskLevelUnknown,
			HighestTier: 3,
		}
	}

	unique := set.From(listTypes).Slice()
	slices.Sort(unique)

	tiers := set.New[int](len(unique))
	authorities := make([]string, 0, len(unique))
	highestTier := 3
	for _, listType := range unique {
		tier := models.AuthorityTierOf(listType)
		tiers.Insert(tier.Tier)
		authorities = append(authorities, tier.Authority)
		if tier.Tier < highestTier {
			highestTier = tier.Tier
		}
	}

	multi := len(unique) > 1
	weighted := matchScore
	if multi {
		switch {
		case tiers.Contains(1) && tiers.Size() > 1:
			weighted = math.Min(100, weighted*1.25)
		case tiers.Contains(1):
			weighted = math.Min(100, weighted*1.20)
		default:
			weighted = math.Min(100, weighted*1.15)
		}
	}

	level := models.RiskLevelLow
	switch {
	case weighted >= 90 && highestTier == 1:
		level = models.RiskLevelCritical
	case weighted >= 85 || (weighted >= 80 && highestTier == 1):
		level = models.RiskLevelVeryHigh
	case weighted >= 75 || multi:
		level = models.RiskLevelHigh
	case weighted >= 70:
		level = models.RiskLevelMedium
	}

	return riskAssessment{
		Score:                 round1(weighted),
		Level:                 level,
		HighestTier:           highestTier,
		Authorities:           authorities,
		IsMultiJurisdictional: null.BoolFrom(multi),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

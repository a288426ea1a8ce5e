package matching

import (
	"math"

	"github.com/hashicorp/go-set/v2"
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/vigiehq/vigie-backend/models"
)

// Each layer owns a disjoint score band, so a result's score alone tells
// which layer produced it.
const (
	scoreExact = 100.0

	tokenScoreFloor = 85.0
	tokenScoreCeil  = 99.0

	phoneticScoreFloor = 75.0
	phoneticScoreCeil  = 84.0

	fuzzyScoreFloor = 70.0
	fuzzyScoreCeil  = 74.0
)

func exactLayer(queryNorm, targetNorm string) (float64, bool) {
	if queryNorm != "" && queryNorm == targetNorm {
		return scoreExact, true
	}
	return 0, false
}

// tokenLayer scores the overlap of the two token sets, weighting the share
// of the query covered heavier than the share of the target covered.
func tokenLayer(queryTokens, targetTokens *set.Set[string], policy models.MatchingPolicy) (float64, bool) {
	if queryTokens.Empty() || targetTokens.Empty() {
		return 0, false
	}

	overlap := 0
	for _, token := range queryTokens.Slice() {
		if targetTokens.Contains(token) {
			overlap++
		}
	}
	if overlap == 0 {
		return 0, false
	}

	queryRatio := float64(overlap) / float64(queryTokens.Size())
	targetRatio := float64(overlap) / float64(targetTokens.Size())
	combined := queryRatio*policy.TokenQueryWeight + targetRatio*(1-policy.TokenQueryWeight)
	if combined < policy.TokenCombinedThreshold {
		return 0, false
	}

	score := tokenScoreFloor + (combined-policy.TokenCombinedThreshold)*
		((tokenScoreCeil-tokenScoreFloor)/(1-policy.TokenCombinedThreshold))
	return math.Min(tokenScoreCeil, score), true
}

// phoneticLayer compares the abbreviation-expanded strings with a
// word-order-tolerant ratio, which absorbs transliteration drift and
// reordered name parts.
func phoneticLayer(queryExpanded, targetExpanded string, policy models.MatchingPolicy) (float64, bool) {
	raw := fuzzy.TokenSortRatio(queryExpanded, targetExpanded)
	if raw < policy.PhoneticThreshold {
		return 0, false
	}

	score := phoneticScoreFloor + float64(raw-policy.PhoneticThreshold)*
		((phoneticScoreCeil-phoneticScoreFloor)/(100-float64(policy.PhoneticThreshold)))
	return math.Min(phoneticScoreCeil, score), true
}

// fuzzyLayer is the last resort: a token-set ratio that stays robust when
// one name's words are a subset of the other's.
func fuzzyLayer(queryNorm, targetNorm string, policy models.MatchingPolicy) (float64, bool) {
	raw := fuzzy.TokenSetRatio(queryNorm, targetNorm)
	if raw < policy.FuzzyThreshold {
		return 0, false
	}

	score := fuzzyScoreFloor + float64(raw-policy.FuzzyThreshold)*
		((fuzzyScoreCeil-fuzzyScoreFloor)/(100-float64(policy.FuzzyThreshold)))
	return math.Min(fuzzyScoreCeil, math.Max(fuzzyScoreFloor, score)), true
}

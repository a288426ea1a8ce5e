package models

import "github.com/cockroachdb/errors"

// MatchingPolicy carries the tunable thresholds of the matching hierarchy.
// The zero value is not usable, start from DefaultMatchingPolicy.
type MatchingPolicy struct {
	// MatchThreshold is the floor under which hits are not returned when the
	// caller does not provide one.
	MatchThreshold int
	// TokenCombinedThreshold is the minimum combined token overlap for the
	// token layer to fire, TokenQueryWeight the share of the query-side
	// overlap in that combination.
	TokenCombinedThreshold float64
	TokenQueryWeight       float64
	// PhoneticThreshold and FuzzyThreshold are minimum raw similarity ratios
	// for their respective layers.
	PhoneticThreshold int
	FuzzyThreshold    int
}

func DefaultMatchingPolicy() MatchingPolicy {
	return MatchingPolicy{
		MatchThreshold:         70,
		TokenCombinedThreshold: 0.85,
		TokenQueryWeight:       0.7,
		PhoneticThreshold:      75,
		FuzzyThreshold:         70,
	}
}

func (p MatchingPolicy) Validate() error {
	if p.MatchThreshold < 0 || p.MatchThreshold > 100 {
		return errors.Wrap(BadParameterError, "match threshold must be between 0 and 100")
	}
	if p.TokenCombinedThreshold <= 0 || p.TokenCombinedThreshold >= 1 {
		return errors.Wrap(BadParameterError, "token combined threshold must be within (0, 1)")
	}
	if p.TokenQueryWeight < 0 || p.TokenQueryWeight > 1 {
		return errors.Wrap(BadParameterError, "token query weight must be within [0, 1]")
	}
	if p.PhoneticThreshold < 0 || p.PhoneticThreshold >= 100 {
		return errors.Wrap(BadParameterError, "phonetic threshold must be within [0, 100)")
	}
	if p.FuzzyThreshold < 0 || p.FuzzyThreshold >= 100 {
		return errors.Wrap(BadParameterError, "fuzzy threshold must be within [0, 100)")
	}
	return nil
}

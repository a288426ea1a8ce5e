package matching

import (
	"context"
	"testing"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigiehq/vigie-backend/models"
	"github.com/vigiehq/vigie-backend/utils"
)

func buildTestEngine(t *testing.T, entities ...models.SanctionEntity) *Engine {
	t.Helper()

	engine := NewEngine(models.DefaultMatchingPolicy())
	engine.Load(context.Background(), entities)
	return engine
}

func TestEngineExactMatch(t *testing.T) {
	engine := buildTestEngine(t, models.SanctionEntity{
		Source:     "UN Consolidated List",
		ListType:   models.ListTypeUN,
		Names:      []string{"Eric Badege"},
		EntityKind: models.EntityKindIndividual,
		ExternalId: "6908555",
	})

	results, err := engine.FindMatches(context.Background(), "Eric Badege", 70)

	require.NoError(t, err)
	require.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, "Eric Badege", r.MatchedName)
	assert.Equal(t, 100.0, r.Score)
	assert.Equal(t, models.MatchLayerExact, r.Layer)
	assert.Equal(t, "Eric Badege", r.Entity.PrimaryName)
	assert.Equal(t, "United Nations Security Council", r.Authority)
	assert.Equal(t, 1, r.Tier)
	assert.Equal(t, 100.0, r.RiskScore)
	assert.Equal(t, models.RiskLevelCritical, r.RiskLevel)
	assert.Equal(t, null.BoolFrom(false), r.IsMultiJurisdictional)
}

func TestEngineAbbreviationEquivalence(t *testing.T) {
	engine := buildTestEngine(t, models.SanctionEntity{
		Source:     "OFAC SDN",
		ListType:   models.ListTypeOFAC,
		Names:      []string{"Acme Ltd"},
		EntityKind: models.EntityKindCompanyOrEntity,
		ExternalId: "12345",
	})

	results, err := engine.FindMatches(context.Background(), "Acme Limited", 70)

	require.NoError(t, err)
	require.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, models.MatchLayerToken, r.Layer)
	assert.GreaterOrEqual(t, r.Score, 85.0)
	assert.LessOrEqual(t, r.Score, 99.0)
	assert.InDelta(t, 89.7, r.Score, 0.1)
	assert.Equal(t, models.RiskLevelVeryHigh, r.RiskLevel)
}

func TestEngineDeduplicatesAliases(t *testing.T) {
	engine := buildTestEngine(t, models.SanctionEntity{
		Source:     "OFAC SDN",
		ListType:   models.ListTypeOFAC,
		Names:      []string{"Global Trading Company", "Global Trading Co"},
		EntityKind: models.EntityKindCompanyOrEntity,
	})

	// Both the primary name and the alias clear the threshold; only the
	// stronger hit survives.
	results, err := engine.FindMatches(context.Background(), "Global Trading Company", 70)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Global Trading Company", results[0].MatchedName)
	assert.Equal(t, 100.0, results[0].Score)
	assert.Equal(t, models.MatchLayerExact, results[0].Layer)
}

func TestEngineMatchesOnAlias(t *testing.T) {
	engine := buildTestEngine(t, models.SanctionEntity{
		Source:     "OFAC SDN",
		ListType:   models.ListTypeOFAC,
		Names:      []string{"Haji Khairullah Haji Sattar Money Exchange", "HKHS"},
		EntityKind: models.EntityKindCompanyOrEntity,
	})

	results, err := engine.FindMatches(context.Background(), "HKHS", 70)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "HKHS", results[0].MatchedName)
	assert.Equal(t, "Haji Khairullah Haji Sattar Money Exchange", results[0].Entity.PrimaryName)
	assert.Equal(t, 100.0, results[0].Score)
}

func TestEngineMultiJurisdictionAmplification(t *testing.T) {
	engine := buildTestEngine(t,
		models.SanctionEntity{
			Source:   "UN Consolidated List",
			ListType: models.ListTypeUN,
			Names:    []string{"John Doe"},
		},
		models.SanctionEntity{
			Source:   "OFAC SDN",
			ListType: models.ListTypeOFAC,
			Names:    []string{"John Doe"},
		},
	)

	results, err := engine.FindMatches(context.Background(), "John Doe", 70)

	require.NoError(t, err)
	// The two listings share one name identity, so one result survives,
	// carrying every authority it is listed under.
	require.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, 100.0, r.Score)
	assert.Equal(t, null.BoolFrom(true), r.IsMultiJurisdictional)
	assert.Equal(t, 100.0, r.RiskScore)
	assert.Equal(t, models.RiskLevelCritical, r.RiskLevel)
	assert.Equal(t, []string{
		"United Nations Security Council",
		"OFAC/US Treasury",
	}, r.Authorities)
	assert.Equal(t, models.ListTypeUN, r.Entity.ListType)
}

func TestEngineRanksByRiskBeforeScore(t *testing.T) {
	engine := buildTestEngine(t,
		models.SanctionEntity{
			Source:   "UN Consolidated List",
			ListType: models.ListTypeUN,
			Names:    []string{"Delta Industrial Holding"},
		},
		models.SanctionEntity{
			Source:   "UN Consolidated List",
			ListType: models.ListTypeUN,
			Names:    []string{"Delta Industrial Partners Group Holding"},
		},
		models.SanctionEntity{
			Source:   "OFAC SDN",
			ListType: models.ListTypeOFAC,
			Names:    []string{"Delta Industrial Partners Group Holding"},
		},
	)

	results, err := engine.FindMatches(context.Background(), "Delta Industrial", 70)

	require.NoError(t, err)
	require.Len(t, results, 2)

	// The multi jurisdictional hit outranks the single listing despite its
	// lower match score.
	first, second := results[0], results[1]
	assert.Equal(t, "Delta Industrial Partners Group Holding", first.Entity.PrimaryName)
	assert.Equal(t, null.BoolFrom(true), first.IsMultiJurisdictional)
	assert.InDelta(t, 74.0, first.Score, 0.1)
	assert.InDelta(t, 92.5, first.RiskScore, 0.1)

	assert.Equal(t, "Delta Industrial Holding", second.Entity.PrimaryName)
	assert.Equal(t, null.BoolFrom(false), second.IsMultiJurisdictional)
	assert.InDelta(t, 89.7, second.Score, 0.1)
	assert.Greater(t, second.Score, first.Score)
	assert.Greater(t, first.RiskScore, second.RiskScore)
}

func TestEngineNoMatch(t *testing.T) {
	engine := buildTestEngine(t,
		models.SanctionEntity{
			Source:   "UN Consolidated List",
			ListType: models.ListTypeUN,
			Names:    []string{"Eric Badege"},
		},
		models.SanctionEntity{
			Source:   "OFAC SDN",
			ListType: models.ListTypeOFAC,
			Names:    []string{"Acme Ltd"},
		},
		models.SanctionEntity{
			Source:   "UK HMT",
			ListType: models.ListTypeUK,
			Names:    []string{"John Doe"},
		},
	)

	results, err := engine.FindMatches(context.Background(), "Zzxxqq Nonexistent", 70)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestEngineEmptyQuery(t *testing.T) {
	engine := buildTestEngine(t, models.SanctionEntity{
		Source:   "UN Consolidated List",
		ListType: models.ListTypeUN,
		Names:    []string{"Eric Badege"},
	})

	for _, query := range []string{"", "   ", "\t\n", "..."} {
		results, err := engine.FindMatches(context.Background(), query, 70)

		require.NoError(t, err)
		assert.Empty(t, results)
	}
}

func TestEngineThresholdMonotonicity(t *testing.T) {
	engine := buildTestEngine(t,
		models.SanctionEntity{
			Source:   "OFAC SDN",
			ListType: models.ListTypeOFAC,
			Names:    []string{"Acme Ltd"},
		},
		models.SanctionEntity{
			Source:   "OFAC SDN",
			ListType: models.ListTypeOFAC,
			Names:    []string{"Acme Limited Industrial Partners"},
		},
	)

	previous := -1
	for _, threshold := range []float64{0, 50, 70, 85, 90, 95, 100} {
		results, err := engine.FindMatches(context.Background(), "Acme Limited", threshold)

		require.NoError(t, err)
		if previous >= 0 {
			assert.LessOrEqual(t, len(results), previous,
				"raising the threshold to %v increased the match count", threshold)
		}
		previous = len(results)
	}
}

func TestEngineThresholdAgainstUnroundedScore(t *testing.T) {
	engine := buildTestEngine(t, models.SanctionEntity{
		Source:   "OFAC SDN",
		ListType: models.ListTypeOFAC,
		Names:    []string{"Acme Ltd"},
	})

	// The layer score is 89.666..., reported as 89.7. The threshold cut
	// happens before rounding.
	results, err := engine.FindMatches(context.Background(), "Acme Limited", 89.7)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestEngineInvalidThreshold(t *testing.T) {
	engine := buildTestEngine(t, models.SanctionEntity{
		Source:   "UN Consolidated List",
		ListType: models.ListTypeUN,
		Names:    []string{"Eric Badege"},
	})

	for _, threshold := range []float64{-0.1, 100.5} {
		results, err := engine.FindMatches(context.Background(), "Eric Badege", threshold)

		assert.ErrorIs(t, err, models.BadParameterError)
		assert.Nil(t, results)
	}
}

func TestEngineNotLoaded(t *testing.T) {
	engine := NewEngine(models.DefaultMatchingPolicy())

	assert.False(t, engine.Loaded())

	_, err := engine.FindMatches(context.Background(), "Eric Badege", 70)
	assert.ErrorIs(t, err, models.ErrEngineNotLoaded)

	_, err = engine.Stats()
	assert.ErrorIs(t, err, models.ErrEngineNotLoaded)
}

func TestEngineLoadStats(t *testing.T) {
	engine := NewEngine(models.DefaultMatchingPolicy())

	stats := engine.Load(context.Background(), []models.SanctionEntity{
		{
			Source:   "UN Consolidated List",
			ListType: models.ListTypeUN,
			Names:    []string{"Eric Badege"},
		},
		{
			Source:   "UN Consolidated List",
			ListType: models.ListTypeUN,
			// The duplicate alias and the single character name are not
			// indexed.
			Names: []string{"Global Trading Company", "Global Trading Co", "Global Trading Company", "X"},
		},
		{
			Source:   "OFAC SDN",
			ListType: models.ListTypeOFAC,
			Names:    []string{"Acme Ltd"},
		},
	})

	assert.True(t, engine.Loaded())
	assert.Equal(t, 3, stats.TotalEntities)
	assert.Equal(t, 4, stats.IndexedNames)
	assert.Equal(t, map[string]int{
		"UN Consolidated List": 2,
		"OFAC SDN":             1,
	}, stats.EntitiesBySource)
	assert.Equal(t, map[models.ListType]int{
		models.ListTypeUN:   2,
		models.ListTypeOFAC: 1,
	}, stats.EntitiesByList)
	assert.False(t, stats.LoadedAt.IsZero())

	fromEngine, err := engine.Stats()
	require.NoError(t, err)
	assert.Equal(t, stats, fromEngine)
}

func TestEngineReload(t *testing.T) {
	engine := buildTestEngine(t, models.SanctionEntity{
		Source:   "UN Consolidated List",
		ListType: models.ListTypeUN,
		Names:    []string{"Eric Badege"},
	})

	results, err := engine.FindMatches(context.Background(), "Eric Badege", 70)
	require.NoError(t, err)
	require.Len(t, results, 1)

	engine.Load(context.Background(), []models.SanctionEntity{{
		Source:   "OFAC SDN",
		ListType: models.ListTypeOFAC,
		Names:    []string{"Acme Ltd"},
	}})

	results, err = engine.FindMatches(context.Background(), "Eric Badege", 70)
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = engine.FindMatches(context.Background(), "Acme Ltd", 70)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	stats, err := engine.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalEntities)
}

// Any entity whose primary name survives normalization must match its own
// name through the exact layer at score 100, whatever faker throws at it.
func TestEngineExactLayerSymmetryOnRandomNames(t *testing.T) {
	type fixture struct {
		Name string `faker:"name"`
	}

	fixtures := utils.FakeStructs[fixture](50)
	entities := make([]models.SanctionEntity, len(fixtures))
	for i, f := range fixtures {
		entities[i] = models.SanctionEntity{
			Source:     "fixtures.xml",
			ListType:   models.ListTypeGeneric,
			Names:      []string{f.Name},
			EntityKind: models.EntityKindIndividual,
		}
	}
	engine := buildTestEngine(t, entities...)

	for _, f := range fixtures {
		if NormalizeName(f.Name) == "" {
			continue
		}
		results, err := engine.FindMatches(context.Background(), f.Name, 70)
		require.NoError(t, err)
		require.NotEmpty(t, results, "no result for %q", f.Name)
		assert.Equal(t, models.MatchLayerExact, results[0].Layer)
		assert.Equal(t, 100.0, results[0].Score)
	}
}

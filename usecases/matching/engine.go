package matching

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-set/v2"

	"github.com/vigiehq/vigie-backend/models"
)

// Engine answers screening queries against an immutable name index. Rebuilds
// happen fully off to the side and are published with a single atomic
// pointer swap, so any number of concurrent readers always observe a
// complete index.
type Engine struct {
	policy models.MatchingPolicy
	index  atomic.Pointer[nameIndex]
}

type nameIndex struct {
	entries []indexEntry
	// listsByPrimary records every list type a normalized primary name is
	// known under, across the whole index. It drives multi-jurisdictional
	// risk amplification.
	listsByPrimary map[string][]models.ListType
	stats          models.WatchlistStats
}

// indexEntry precomputes everything the layers need, so a query pays only
// for its own normalization.
type indexEntry struct {
	models.NameIndexEntry

	expandedName      string
	normalizedPrimary string
}

// Hits are deduplicated per underlying name identity: the normalized primary
// name when there is one, the entity record itself otherwise.
type dedupKey struct {
	primary string
	entity  *models.SanctionEntity
}

func (entry *indexEntry) key() dedupKey {
	if entry.normalizedPrimary != "" {
		return dedupKey{primary: entry.normalizedPrimary}
	}
	return dedupKey{entity: entry.Entity}
}

func NewEngine(policy models.MatchingPolicy) *Engine {
	return &Engine{policy: policy}
}

// Loaded reports whether an index has been published yet.
func (e *Engine) Loaded() bool {
	return e.index.Load() != nil
}

// Load builds a fresh index from entities and atomically replaces the
// current one. In-flight queries keep reading the index they started on.
func (e *Engine) Load(ctx context.Context, entities []models.SanctionEntity) models.WatchlistStats {
	start := time.Now()

	idx := &nameIndex{
		listsByPrimary: make(map[string][]models.ListType, len(entities)),
	}
	entitiesBySource := make(map[string]int)
	entitiesByList := make(map[models.ListType]int)

	for i := range entities {
		entity := &entities[i]
		entitiesBySource[entity.Source]++
		entitiesByList[entity.ListType]++

		normalizedPrimary := NormalizeName(entity.PrimaryName())
		if normalizedPrimary != "" &&
			!slices.Contains(idx.listsByPrimary[normalizedPrimary], entity.ListType) {
			idx.listsByPrimary[normalizedPrimary] = append(
				idx.listsByPrimary[normalizedPrimary], entity.ListType)
		}

		for nameIdx, name := range entity.Names {
			if len(strings.TrimSpace(name)) <= 1 {
				continue
			}
			// Names[0] is the primary name; an alias repeating it adds
			// nothing to the index.
			if nameIdx > 0 && name == entity.PrimaryName() {
				continue
			}

			normalized := NormalizeName(name)
			idx.entries = append(idx.entries, indexEntry{
				NameIndexEntry: models.NameIndexEntry{
					OriginalName:   name,
					NormalizedName: normalized,
					Tokens:         Tokenize(normalized),
					Entity:         entity,
				},
				expandedName:      expandAbbreviations(normalized),
				normalizedPrimary: normalizedPrimary,
			})
		}
	}

	idx.stats = models.WatchlistStats{
		TotalEntities:    len(entities),
		IndexedNames:     len(idx.entries),
		EntitiesBySource: entitiesBySource,
		EntitiesByList:   entitiesByList,
		IndexBuildTime:   time.Since(start),
		LoadedAt:         time.Now(),
	}

	e.index.Store(idx)

	return idx.stats
}

// FindMatches runs the 4-layer hierarchy for query against every index
// entry, deduplicates hits per name identity keeping the strongest one, and
// returns them risk-scored and ranked. An empty or whitespace query matches
// nothing and is not an error.
func (e *Engine) FindMatches(ctx context.Context, query string, threshold float64) ([]models.MatchResult, error) {
	if threshold < 0 || threshold > 100 {
		return nil, models.ErrInvalidThreshold
	}
	idx := e.index.Load()
	if idx == nil {
		return nil, models.ErrEngineNotLoaded
	}

	queryNormalized := NormalizeName(query)
	if queryNormalized == "" {
		return []models.MatchResult{}, nil
	}
	queryTokens := Tokenize(queryNormalized)
	queryExpanded := expandAbbreviations(queryNormalized)

	type hit struct {
		entry *indexEntry
		score float64
		layer models.MatchLayer
	}

	best := make(map[dedupKey]hit)
	order := make([]dedupKey, 0)

	for i := range idx.entries {
		entry := &idx.entries[i]

		score, layer, ok := e.scoreEntry(queryNormalized, queryTokens, queryExpanded, entry)
		if !ok || score < threshold {
			continue
		}

		key := entry.key()
		current, seen := best[key]
		if !seen {
			best[key] = hit{entry: entry, score: score, layer: layer}
			order = append(order, key)
			continue
		}
		if score > current.score || (score == current.score && layer < current.layer) {
			best[key] = hit{entry: entry, score: score, layer: layer}
		}
	}

	results := make([]models.MatchResult, 0, len(order))
	for _, key := range order {
		h := best[key]
		entity := h.entry.Entity

		listTypes := idx.listsByPrimary[h.entry.normalizedPrimary]
		if len(listTypes) == 0 {
			listTypes = []models.ListType{entity.ListType}
		}

		score := round1(h.score)
		risk := assessRisk(score, listTypes)

		results = append(results, models.MatchResult{
			MatchedName:           h.entry.OriginalName,
			Score:                 score,
			Layer:                 h.layer,
			Entity:                entity.Summary(),
			Authority:             models.AuthorityTierOf(entity.ListType).Authority,
			Authorities:           risk.Authorities,
			Tier:                  models.AuthorityTierOf(entity.ListType).Tier,
			RiskScore:             risk.Score,
			RiskLevel:             risk.Level,
			IsMultiJurisdictional: risk.IsMultiJurisdictional,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].RiskScore != results[j].RiskScore {
			return results[i].RiskScore > results[j].RiskScore
		}
		return results[i].Score > results[j].Score
	})

	return results, nil
}

func (e *Engine) scoreEntry(
	queryNorm string,
	queryTokens *set.Set[string],
	queryExpanded string,
	entry *indexEntry,
) (float64, models.MatchLayer, bool) {
	if score, ok := exactLayer(queryNorm, entry.NormalizedName); ok {
		return score, models.MatchLayerExact, true
	}
	if score, ok := tokenLayer(queryTokens, entry.Tokens, e.policy); ok {
		return score, models.MatchLayerToken, true
	}
	if score, ok := phoneticLayer(queryExpanded, entry.expandedName, e.policy); ok {
		return score, models.MatchLayerPhonetic, true
	}
	if score, ok := fuzzyLayer(queryNorm, entry.NormalizedName, e.policy); ok {
		return score, models.MatchLayerFuzzy, true
	}
	return 0, models.MatchLayerUnknown, false
}

// Stats returns the statistics snapshot of the currently published index.
func (e *Engine) Stats() (models.WatchlistStats, error) {
	idx := e.index.Load()
	if idx == nil {
		return models.WatchlistStats{}, models.ErrEngineNotLoaded
	}
	return idx.stats, nil
}

package pure_utils

import (
	"strings"
	"sync"
	"time"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/biter777/countries"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	countryMatchThreshold = 0.85
	countryCacheSize      = 1000
	countryCacheTTL       = time.Hour
)

type countryNameEntry struct {
	lowerName string
	country   countries.CountryCode
}

var (
	countryCache     *expirable.LRU[string, string]
	countryCacheOnce sync.Once

	countryNames     []countryNameEntry
	countryNamesOnce sync.Once
)

func getCountryCache() *expirable.LRU[string, string] {
	countryCacheOnce.Do(func() {
		countryCache = expirable.NewLRU[string, string](countryCacheSize, nil, countryCacheTTL)
	})
	return countryCache
}

// lowercased country names, built once for the fuzzy scan
func getCountryNames() []countryNameEntry {
	countryNamesOnce.Do(func() {
		all := countries.All()
		countryNames = make([]countryNameEntry, 0, len(all))
		for _, c := range all {
			if c == countries.Unknown {
				continue
			}
			countryNames = append(countryNames, countryNameEntry{
				lowerName: strings.ToLower(c.Info().Name),
				country:   c,
			})
		}
	})
	return countryNames
}

// CountryToAlpha2 maps a country spelled any way a watchlist spells it (full
// name, Alpha-2 or Alpha-3 code, typos included) onto its ISO 3166-1 Alpha-2
// code, falling back to fuzzy matching for near-misses:
//
//	CountryToAlpha2("United States") // "US"
//	CountryToAlpha2("USA")           // "US"
//	CountryToAlpha2("Frence")        // "FR"
//
// Inputs that resolve to nothing come back unchanged so the raw value is
// still visible downstream.
func CountryToAlpha2(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if c := countries.ByName(input); c != countries.Unknown {
		return c.Alpha2()
	}

	// ISO 3166-2 subdivision codes ("US-NY", "FR-75"). Only split when the
	// prefix looks like a country code, "Guinea-Bissau" must stay whole.
	if prefix, _, found := strings.Cut(input, "-"); found &&
		len(prefix) >= 2 && len(prefix) <= 3 {
		if c := countries.ByName(prefix); c != countries.Unknown {
			return c.Alpha2()
		}
	}

	cache := getCountryCache()
	if cached, ok := cache.Get(input); ok {
		return cached
	}

	result := fuzzyMatchCountry(input)
	if result == "" {
		result = input
	}
	cache.Add(input, result)

	return result
}

// fuzzyMatchCountry scans every country name with Jaro-Winkler, which works
// well on strings this short.
func fuzzyMatchCountry(input string) string {
	inputLower := strings.ToLower(input)
	metric := metrics.NewJaroWinkler()

	bestMatch := countries.Unknown
	highestScore := 0.0
	for _, entry := range getCountryNames() {
		if score := strutil.Similarity(inputLower, entry.lowerName, metric); score > highestScore {
			highestScore = score
			bestMatch = entry.country
		}
	}

	if highestScore >= countryMatchThreshold && bestMatch != countries.Unknown {
		return bestMatch.Alpha2()
	}
	return ""
}

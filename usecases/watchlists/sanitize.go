package watchlists

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/hashicorp/go-set/v2"

	"github.com/vigiehq/vigie-backend/utils"
)

const (
	minNameLength = 2
	maxNameLength = 200
)

// Watchlist publications embed all kinds of non-name text in name-ish
// fields: contact details, addresses, remarks spanning several sentences.
// These markers flag a string as descriptive rather than a name.
var descriptiveMarkers = []string{
	"address:",
	"tel:",
	"fax:",
	"phone:",
	"email:",
	"date of birth",
	"passport number",
	"place of registration",
	"principal place of business",
	"associated individual",
	"photo available",
}

var sentenceBreak = regexp.MustCompile(`[.!?]\s+[A-Z]`)

// validName reports whether an extracted string plausibly is a real name and
// not a parsing artifact. The input is expected to be trimmed.
func validName(name string) bool {
	runes := []rune(name)
	if len(runes) < minNameLength || len(runes) > maxNameLength {
		return false
	}

	letters, symbols := 0, 0
	for _, r := range runes {
		switch {
		case unicode.IsLetter(r):
			letters++
		case !unicode.IsDigit(r) && !unicode.IsSpace(r):
			symbols++
		}
	}
	if letters == 0 {
		return false
	}
	if symbols*2 > len(runes) {
		return false
	}

	lower := strings.ToLower(name)
	if strings.Contains(lower, "http") ||
		strings.Contains(lower, "www.") ||
		strings.Contains(lower, "://") {
		return false
	}
	if strings.HasPrefix(name, "@") {
		return false
	}
	if strings.Contains(name, "@") && strings.Contains(name, ".") {
		return false
	}
	if strings.Contains(lower, "<script") || strings.Contains(lower, "javascript:") {
		return false
	}
	for _, marker := range descriptiveMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}

	return !sentenceBreak.MatchString(name)
}

// cleanNames trims, validates and deduplicates extracted name strings,
// preserving first-seen order. The primary name of an entity is whatever
// survives first.
func cleanNames(raw []string) []string {
	trimmed := make([]string, 0, len(raw))
	for _, name := range raw {
		trimmed = append(trimmed, strings.TrimSpace(name))
	}

	valid := utils.Filter(trimmed, validName)

	seen := set.New[string](len(valid))
	names := make([]string, 0, len(valid))
	for _, name := range valid {
		if seen.Contains(name) {
			continue
		}
		seen.Insert(name)
		names = append(names, name)
	}
	return names
}

package matching

import (
	"strings"
	"unicode"

	"github.com/hashicorp/go-set/v2"
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName maps a name onto its canonical matching form: lowercase,
// ASCII letters and digits only, words separated by single spaces. Queries
// and index entries go through the exact same function, which is what makes
// the exact layer symmetric.
func NormalizeName(name string) string {
	cleansed := fuzzy.Cleanse(removeDiacritics(name), true)
	return strings.Join(strings.Fields(cleansed), " ")
}

func removeDiacritics(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	result, _, _ := transform.String(t, s)
	return result
}

// Tokenize splits a normalized name into its token set. Single-character
// words carry no signal and are dropped. Abbreviation tokens also contribute
// the words of all their expansion variants, so "acme ltd" and
// "acme limited" produce overlapping sets.
func Tokenize(normalized string) *set.Set[string] {
	tokens := set.New[string](8)
	for _, word := range strings.Fields(normalized) {
		if len(word) <= 1 {
			continue
		}
		tokens.Insert(word)
		for _, expansion := range abbreviationExpansions[word] {
			tokens.InsertSlice(strings.Fields(expansion))
		}
	}
	return tokens
}

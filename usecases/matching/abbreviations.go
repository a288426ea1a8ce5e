package matching

import "strings"

// Business-entity abbreviations and their expansions. The first variant of
// each entry is the one used when expanding a whole string; tokenization
// also absorbs the words of the remaining variants.
var abbreviationExpansions = map[string][]string{
	"jsc":  {"joint stock company", "joint-stock company"},
	"llc":  {"limited liability company"},
	"ltd":  {"limited"},
	"inc":  {"incorporated"},
	"corp": {"corporation"},
	"plc":  {"public limited company"},
	"gmbh": {"gesellschaft mit beschrankter haftung"},
	"ag":   {"aktiengesellschaft"},
	"sa":   {"sociedad anonima", "societe anonyme"},
	"nv":   {"naamloze vennootschap"},
	"bv":   {"besloten vennootschap"},
	"ooo":  {"obshestvo s ogranichennoy otvetstvennostyu"},
	"oao":  {"otkrytoe aktsionernoe obshestvo"},
	"zao":  {"zakrytoe aktsionernoe obshestvo"},
	"pjsc": {"public joint stock company"},
	"cjsc": {"closed joint stock company"},
	"ojsc": {"open joint stock company"},
	"co":   {"company"},
	"intl": {"international"},
	"svcs": {"services"},
	"mfg":  {"manufacturing"},
	"grp":  {"group", "gruppa"},
	"el":   {"electronic", "electronics", "electrical"},
}

// expandAbbreviations rewrites a normalized name with every abbreviation
// token replaced by its first expansion phrase.
func expandAbbreviations(normalized string) string {
	words := strings.Fields(normalized)
	expanded := make([]string, 0, len(words))
	for _, word := range words {
		if expansions, ok := abbreviationExpansions[word]; ok {
			expanded = append(expanded, expansions[0])
		} else {
			expanded = append(expanded, word)
		}
	}
	return strings.Join(expanded, " ")
}

package models

// AuthorityTier ranks sanctioning authorities by the strength of their
// mandate. Tier 1 is a multilateral mandate, tier 2 a key ally
// jurisdiction, tier 3 everything else.
type AuthorityTier struct {
	Tier      int
	Name      string
	Weight    float64
	Authority string
}

var authorityTiers = map[ListType]AuthorityTier{
	ListTypeUN:   {Tier: 1, Name: "Tier 1 - Multilateral Mandate", Weight: 1.0, Authority: "United Nations Security Council"},
	ListTypeOFAC: {Tier: 2, Name: "Tier 2 - Key Ally Jurisdiction", Weight: 0.9, Authority: "OFAC/US Treasury"},
	ListTypeUK:   {Tier: 2, Name: "Tier 2 - Key Ally Jurisdiction", Weight: 0.85, Authority: "UK HM Treasury"},
	ListTypeEU:   {Tier: 2, Name: "Tier 2 - Key Ally Jurisdiction", Weight: 0.85, Authority: "European Union"},
}

var defaultAuthorityTier = AuthorityTier{Tier: 3, Name: "Tier 3 - Other", Weight: 0.7, Authority: "Other Authority"}

func AuthorityTierOf(listType ListType) AuthorityTier {
	if tier, ok := authorityTiers[listType]; ok {
		return tier
	}
	return defaultAuthorityTier
}

type RiskLevel int

const (
	RiskLevelLow RiskLevel = iota
	RiskLevelMedium
	RiskLevelHigh
	RiskLevelVeryHigh
	RiskLevelCritical
	RiskLevelUnknown
)

func RiskLevelFrom(s string) RiskLevel {
	switch s {
	case "Low":
		return RiskLevelLow
	case "Medium":
		return RiskLevelMedium
	case "High":
		return RiskLevelHigh
	case "Very High":
		return RiskLevelVeryHigh
	case "Critical":
		return RiskLevelCritical
	}
	return RiskLevelUnknown
}

func (l RiskLevel) String() string {
	switch l {
	case RiskLevelLow:
		return "Low"
	case RiskLevelMedium:
		return "Medium"
	case RiskLevelHigh:
		return "High"
	case RiskLevelVeryHigh:
		return "Very High"
	case RiskLevelCritical:
		return "Critical"
	}
	return "Unknown"
}

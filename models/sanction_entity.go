package models

import "strings"

// ListType identifies the authority that published a watchlist document.
type ListType int

const (
	ListTypeUN ListType = iota
	ListTypeOFAC
	ListTypeUK
	ListTypeEU
	ListTypeGeneric
)

func ListTypeFrom(s string) ListType {
	switch s {
	case "UN":
		return ListTypeUN
	case "OFAC":
		return ListTypeOFAC
	case "UK":
		return ListTypeUK
	case "EU":
		return ListTypeEU
	}

	return ListTypeGeneric
}

func (lt ListType) String() string {
	switch lt {
	case ListTypeUN:
		return "UN"
	case ListTypeOFAC:
		return "OFAC"
	case ListTypeUK:
		return "UK"
	case ListTypeEU:
		return "EU"
	}

	return "Generic"
}

type EntityKind int

const (
	EntityKindUnknown EntityKind = iota
	EntityKindIndividual
	EntityKindCompanyOrEntity
)

// EntityKindFrom maps the many spellings watchlists use for entity types
// ("Individual", "person", "Enterprise", ...) onto the two kinds we track.
func EntityKindFrom(s string) EntityKind {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return EntityKindUnknown
	case strings.Contains(s, "individual"), strings.Contains(s, "person"):
		return EntityKindIndividual
	case strings.Contains(s, "entity"), strings.Contains(s, "company"),
		strings.Contains(s, "organisation"), strings.Contains(s, "organization"),
		strings.Contains(s, "enterprise"):
		return EntityKindCompanyOrEntity
	}

	return EntityKindUnknown
}

func (ek EntityKind) String() string {
	switch ek {
	case EntityKindIndividual:
		return "individual"
	case EntityKindCompanyOrEntity:
		return "company_or_entity"
	}

	return "unknown"
}

// SanctionEntity is one watchlist record: a listed individual or organization
// with its aliases. Entities are immutable once parsed; a refresh replaces
// them wholesale.
type SanctionEntity struct {
	Source     string
	ListType   ListType
	Names      []string
	EntityKind EntityKind
	ExternalId string
	Countries  []string
	Regime     string
}

// PrimaryName is the first, most authoritative name of the entity. Parsing
// guarantees Names is never empty for an entity that exists.
func (e SanctionEntity) PrimaryName() string {
	if len(e.Names) == 0 {
		return ""
	}
	return e.Names[0]
}

// SanctionEntitySummary is the caller-facing projection of an entity carried
// on match results.
type SanctionEntitySummary struct {
	Source      string
	ListType    ListType
	EntityKind  EntityKind
	PrimaryName string
}

func (e SanctionEntity) Summary() SanctionEntitySummary {
	return SanctionEntitySummary{
		Source:      e.Source,
		ListType:    e.ListType,
		EntityKind:  e.EntityKind,
		PrimaryName: e.PrimaryName(),
	}
}

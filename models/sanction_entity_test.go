package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityKindFrom(t *testing.T) {
	tts := []struct {
		raw  string
		kind EntityKind
	}{
		{"individual", EntityKindIndividual},
		{"Person", EntityKindIndividual},
		{"Natural person", EntityKindIndividual},
		{"entity", EntityKindCompanyOrEntity},
		{"company", EntityKindCompanyOrEntity},
		{"Enterprise", EntityKindCompanyOrEntity},
		{"organisation", EntityKindCompanyOrEntity},
		{"organization", EntityKindCompanyOrEntity},
		{"company_or_entity", EntityKindCompanyOrEntity},
		{"", EntityKindUnknown},
		{"vessel", EntityKindUnknown},
	}

	for _, tt := range tts {
		assert.Equal(t, tt.kind, EntityKindFrom(tt.raw), "kind of %q", tt.raw)
	}
}

func TestSanctionEntityPrimaryName(t *testing.T) {
	entity := SanctionEntity{
		Source:   "un_consolidated.xml",
		ListType: ListTypeUN,
		Names:    []string{"Eric Badege", "Eric BADEGE"},
	}
	assert.Equal(t, "Eric Badege", entity.PrimaryName())

	assert.Equal(t, "", SanctionEntity{}.PrimaryName())
}

func TestSanctionEntitySummary(t *testing.T) {
	entity := SanctionEntity{
		Source:     "ofac_sdn.xml",
		ListType:   ListTypeOFAC,
		Names:      []string{"ACME TRADING LLC", "ACME LLC"},
		EntityKind: EntityKindCompanyOrEntity,
		ExternalId: "12345",
	}

	summary := entity.Summary()
	assert.Equal(t, "ofac_sdn.xml", summary.Source)
	assert.Equal(t, ListTypeOFAC, summary.ListType)
	assert.Equal(t, EntityKindCompanyOrEntity, summary.EntityKind)
	assert.Equal(t, "ACME TRADING LLC", summary.PrimaryName)
}

func TestListTypeRoundTrip(t *testing.T) {
	for _, listType := range []ListType{ListTypeUN, ListTypeOFAC, ListTypeUK, ListTypeEU, ListTypeGeneric} {
		assert.Equal(t, listType, ListTypeFrom(listType.String()))
	}
	assert.Equal(t, ListTypeGeneric, ListTypeFrom("somebody else's list"))
}

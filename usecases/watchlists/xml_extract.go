package watchlists

import (
	"strings"

	"github.com/hashicorp/go-set/v2"

	"github.com/vigiehq/vigie-backend/models"
	"github.com/vigiehq/vigie-backend/pure_utils"
)

func extractXmlEntities(root *xmlNode, source string, listType models.ListType) []models.SanctionEntity {
	switch listType {
	case models.ListTypeEU:
		return extractEuEntities(root, source)
	case models.ListTypeOFAC:
		return extractOfacEntities(root, source)
	case models.ListTypeUN:
		return extractUnEntities(root, source)
	case models.ListTypeUK:
		return extractDesignationEntities(root, source, models.ListTypeUK)
	}
	return extractGenericEntities(root, source)
}

// extractEuEntities reads the EU financial sanctions (FSD) export: one
// sanctionEntity per record, names carried as wholeName attributes on
// nameAlias children.
func extractEuEntities(root *xmlNode, source string) []models.SanctionEntity {
	var entities []models.SanctionEntity
	for _, record := range root.all("sanctionEntity") {
		var names []string
		for _, alias := range record.all("nameAlias") {
			if name := alias.attr("wholeName"); name != "" {
				names = append(names, name)
			}
		}
		names = cleanNames(names)
		if len(names) == 0 {
			continue
		}

		kind := models.EntityKindCompanyOrEntity
		for _, subjectType := range record.all("subjectType") {
			if k := models.EntityKindFrom(subjectType.attr("code")); k != models.EntityKindUnknown {
				kind = k
				break
			}
		}

		var countries []string
		for _, citizenship := range record.all("citizenship") {
			if c := citizenship.attr("countryDescription"); c != "" {
				countries = append(countries, pure_utils.CountryToAlpha2(c))
			}
		}

		entities = append(entities, models.SanctionEntity{
			Source:     source,
			ListType:   models.ListTypeEU,
			Names:      names,
			EntityKind: kind,
			ExternalId: record.attr("logicalId"),
			Countries:  uniqueCountries(countries),
		})
	}
	return entities
}

// extractOfacEntities handles both OFAC publications: the enhanced XML
// (entities > entity > ... > translation > formattedFullName) and the legacy
// SDN list (sdnEntry records).
func extractOfacEntities(root *xmlNode, source string) []models.SanctionEntity {
	if len(root.all("sdnEntry")) > 0 {
		return extractOfacSdnEntities(root, source)
	}

	var entities []models.SanctionEntity
	for _, container := range root.all("entities") {
		for _, record := range container.children {
			if record.local != "entity" {
				continue
			}

			var names []string
			for _, translation := range record.all("translation") {
				for _, child := range translation.children {
					if child.local != "formattedFullName" {
						continue
					}
					if name := child.trimmedText(); name != "" {
						names = append(names, name)
					}
				}
			}
			names = cleanNames(names)
			if len(names) == 0 {
				continue
			}

			kind := models.EntityKindCompanyOrEntity
			for _, entityType := range record.all("entityType") {
				if k := models.EntityKindFrom(entityType.trimmedText()); k != models.EntityKindUnknown {
					kind = k
					break
				}
			}

			entities = append(entities, models.SanctionEntity{
				Source:     source,
				ListType:   models.ListTypeOFAC,
				Names:      names,
				EntityKind: kind,
				ExternalId: record.attr("id"),
			})
		}
	}
	return entities
}

func extractOfacSdnEntities(root *xmlNode, source string) []models.SanctionEntity {
	var entities []models.SanctionEntity
	for _, record := range root.all("sdnEntry") {
		lastName := record.childText("lastName")
		firstName := record.childText("firstName")

		var names []string
		if lastName != "" {
			names = append(names, lastName)
		}
		if firstName != "" && lastName != "" {
			names = append(names, firstName+" "+lastName)
		}
		for _, aka := range record.all("aka") {
			if name := joinNameParts(aka.childText("firstName"), aka.childText("lastName")); name != "" {
				names = append(names, name)
			}
		}
		names = cleanNames(names)
		if len(names) == 0 {
			continue
		}

		kind := models.EntityKindCompanyOrEntity
		if firstName != "" {
			kind = models.EntityKindIndividual
		}

		entities = append(entities, models.SanctionEntity{
			Source:     source,
			ListType:   models.ListTypeOFAC,
			Names:      names,
			EntityKind: kind,
			ExternalId: record.childText("uid"),
		})
	}
	return entities
}

// extractUnEntities reads the UN consolidated list (INDIVIDUAL and ENTITY
// records). Some UN publications instead reuse the Designation shape; when
// no consolidated records exist those are extracted with UN attribution.
func extractUnEntities(root *xmlNode, source string) []models.SanctionEntity {
	var entities []models.SanctionEntity

	for _, record := range root.all("INDIVIDUAL") {
		fullName := joinNameParts(
			record.firstText("FIRST_NAME"),
			record.firstText("SECOND_NAME"),
			record.firstText("THIRD_NAME"),
		)
		names := []string{fullName}
		names = append(names, elementTexts(record, "ALIAS_NAME")...)
		names = cleanNames(names)
		if len(names) == 0 {
			continue
		}

		var countries []string
		for _, nationality := range record.all("NATIONALITY") {
			if c := nationality.trimmedText(); c != "" {
				countries = append(countries, pure_utils.CountryToAlpha2(c))
			}
			for _, value := range nationality.all("VALUE") {
				if c := value.trimmedText(); c != "" {
					countries = append(countries, pure_utils.CountryToAlpha2(c))
				}
			}
		}

		entities = append(entities, models.SanctionEntity{
			Source:     source,
			ListType:   models.ListTypeUN,
			Names:      names,
			EntityKind: models.EntityKindIndividual,
			ExternalId: record.firstText("DATAID"),
			Countries:  uniqueCountries(countries),
		})
	}

	for _, record := range root.all("ENTITY") {
		names := []string{record.firstText("FIRST_NAME")}
		names = append(names, elementTexts(record, "ALIAS_NAME")...)
		names = cleanNames(names)
		if len(names) == 0 {
			continue
		}

		var countries []string
		for _, country := range record.all("COUNTRY") {
			if c := country.trimmedText(); c != "" {
				countries = append(countries, pure_utils.CountryToAlpha2(c))
			}
		}

		entities = append(entities, models.SanctionEntity{
			Source:     source,
			ListType:   models.ListTypeUN,
			Names:      names,
			EntityKind: models.EntityKindCompanyOrEntity,
			ExternalId: record.firstText("DATAID"),
			Countries:  uniqueCountries(countries),
		})
	}

	if len(entities) == 0 {
		return extractDesignationEntities(root, source, models.ListTypeUN)
	}
	return entities
}

// extractDesignationEntities reads the Designation record shape shared by
// the UK list and some UN exports. UK files carry the name in plain Name
// elements; the Name6 variant is preferred when the document was classified
// UN, because there Name6 holds the full name.
func extractDesignationEntities(root *xmlNode, source string, listType models.ListType) []models.SanctionEntity {
	var entities []models.SanctionEntity
	for _, record := range root.all("Designation") {
		var names []string
		if listType == models.ListTypeUN {
			names = append(elementTexts(record, "Name6"), elementTexts(record, "Name")...)
		} else {
			names = append(elementTexts(record, "Name"), elementTexts(record, "Name6")...)
		}
		names = cleanNames(names)
		if len(names) == 0 {
			continue
		}

		entities = append(entities, models.SanctionEntity{
			Source:     source,
			ListType:   listType,
			Names:      names,
			EntityKind: models.EntityKindFrom(record.firstText("IndividualEntityShip")),
			ExternalId: record.firstText("UniqueID"),
			Regime:     record.firstText("RegimeName"),
		})
	}
	return entities
}

// Generic fallback: no known publisher structure recognized. Any element or
// attribute whose name suggests it holds a name is considered, one entity
// per plausible string, deduplicated across the document.
func extractGenericEntities(root *xmlNode, source string) []models.SanctionEntity {
	var entities []models.SanctionEntity
	seen := set.New[string](0)

	emit := func(text string) {
		text = strings.TrimSpace(text)
		if !validName(text) || seen.Contains(text) {
			return
		}
		seen.Insert(text)
		entities = append(entities, models.SanctionEntity{
			Source:   source,
			ListType: models.ListTypeGeneric,
			Names:    []string{text},
		})
	}

	root.walk(func(n *xmlNode) {
		if tagSuggestsName(n.local) {
			emit(n.text)
		}
		for _, a := range n.attrs {
			if tagSuggestsName(a.Name.Local) {
				emit(a.Value)
			}
		}
	})
	return entities
}

func tagSuggestsName(local string) bool {
	lower := strings.ToLower(local)
	return strings.Contains(lower, "name") ||
		strings.Contains(lower, "title") ||
		strings.Contains(lower, "designation")
}

func elementTexts(n *xmlNode, local string) []string {
	var texts []string
	for _, node := range n.all(local) {
		if t := node.trimmedText(); t != "" {
			texts = append(texts, t)
		}
	}
	return texts
}

func joinNameParts(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, " ")
}

func uniqueCountries(countries []string) []string {
	if len(countries) == 0 {
		return nil
	}
	seen := set.New[string](len(countries))
	unique := make([]string, 0, len(countries))
	for _, c := range countries {
		if c == "" || seen.Contains(c) {
			continue
		}
		seen.Insert(c)
		unique = append(unique, c)
	}
	return unique
}

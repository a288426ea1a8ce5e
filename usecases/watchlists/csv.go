package watchlists

import (
	"bytes"
	"encoding/csv"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding/charmap"

	"github.com/vigiehq/vigie-backend/models"
	"github.com/vigiehq/vigie-backend/pure_utils"
)

// Column headers are cleaned to lowercase snake_case before matching, so
// "Entity Name" and "entity_name" select the same column.
var (
	nameColumns = []string{
		"name", "entity", "entity_name", "individual_name", "company_name",
		"target_name", "title", "designation", "individual", "organisation",
		"organization", "alias",
	}
	kindColumns    = []string{"type", "entity_type", "target_type"}
	countryColumns = []string{"country", "nationality", "country_of_origin", "address_country"}
)

func parseCsvDocument(doc models.WatchlistDocument) ([]models.SanctionEntity, error) {
	text, err := decodeTabularText(doc.Data)
	if err != nil {
		return nil, errors.Wrap(models.ErrDocumentUnreadable, err.Error())
	}

	reader := csv.NewReader(bytes.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(models.ErrDocumentUnreadable, err.Error())
	}

	return extractRowTable(rows, doc.SourceLabel)
}

// decodeTabularText turns raw CSV/TXT bytes into UTF-8: the BOM is dropped,
// non-UTF-8 content is decoded as Windows-1252, and as Latin-1 when 1252
// leaves replacement runes behind.
func decodeTabularText(data []byte) ([]byte, error) {
	stripped, err := io.ReadAll(pure_utils.NewReaderWithoutBom(bytes.NewReader(data)))
	if err != nil {
		return nil, err
	}
	if utf8.Valid(stripped) {
		return stripped, nil
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(stripped)
	if err == nil && !bytes.ContainsRune(decoded, utf8.RuneError) {
		return decoded, nil
	}
	return charmap.ISO8859_1.NewDecoder().Bytes(stripped)
}

// extractRowTable converts a header+rows table into entities. Tabular
// sources carry no publisher attribution, so rows land as Generic entities.
func extractRowTable(rows [][]string, source string) ([]models.SanctionEntity, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	headers := pure_utils.Map(rows[0], cleanHeader)
	nameCol := findColumn(headers, nameColumns)
	if nameCol < 0 {
		return nil, errors.Wrap(models.ErrDocumentUnreadable, "no name column recognized in header")
	}
	kindCol := findColumn(headers, kindColumns)
	countryCol := findColumn(headers, countryColumns)

	var entities []models.SanctionEntity
	for _, row := range rows[1:] {
		if nameCol >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[nameCol])
		if !validName(name) {
			continue
		}

		entity := models.SanctionEntity{
			Source:   source,
			ListType: models.ListTypeGeneric,
			Names:    []string{name},
		}
		if kindCol >= 0 && kindCol < len(row) {
			entity.EntityKind = models.EntityKindFrom(row[kindCol])
		}
		if countryCol >= 0 && countryCol < len(row) {
			if country := strings.TrimSpace(row[countryCol]); country != "" {
				entity.Countries = []string{pure_utils.CountryToAlpha2(country)}
			}
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func cleanHeader(header string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(header)), " ", "_")
}

func findColumn(headers []string, candidates []string) int {
	for i, header := range headers {
		if slices.Contains(candidates, header) {
			return i
		}
	}
	return -1
}

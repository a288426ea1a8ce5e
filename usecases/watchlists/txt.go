package watchlists

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/vigiehq/vigie-backend/models"
)

// parseTextDocument reads a plain list, one name per line. Blank lines and
// # comments are skipped.
func parseTextDocument(doc models.WatchlistDocument) ([]models.SanctionEntity, error) {
	text, err := decodeTabularText(doc.Data)
	if err != nil {
		return nil, errors.Wrap(models.ErrDocumentUnreadable, err.Error())
	}

	var entities []models.SanctionEntity
	scanner := bufio.NewScanner(bytes.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !validName(line) {
			continue
		}
		entities = append(entities, models.SanctionEntity{
			Source:   doc.SourceLabel,
			ListType: models.ListTypeGeneric,
			Names:    []string{line},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(models.ErrDocumentUnreadable, err.Error())
	}
	return entities, nil
}

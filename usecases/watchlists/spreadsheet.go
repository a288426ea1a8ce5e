package watchlists

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vigiehq/vigie-backend/models"
)

// parseSpreadsheetDocument reads every sheet of an XLSX workbook through the
// same header-driven extraction as CSV. A sheet without a recognizable name
// column contributes nothing; the document only fails when no sheet at all
// is usable.
func parseSpreadsheetDocument(doc models.WatchlistDocument) ([]models.SanctionEntity, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(doc.Data))
	if err != nil {
		return nil, errors.Wrap(models.ErrDocumentUnreadable, err.Error())
	}
	defer workbook.Close()

	var (
		entities     []models.SanctionEntity
		usableSheets int
	)
	for _, sheet := range workbook.GetSheetList() {
		rows, err := workbook.GetRows(sheet)
		if err != nil || len(rows) == 0 {
			continue
		}
		fromSheet, err := extractRowTable(rows, doc.SourceLabel)
		if err != nil {
			continue
		}
		usableSheets++
		entities = append(entities, fromSheet...)
	}

	if usableSheets == 0 {
		return nil, errors.Wrap(models.ErrDocumentUnreadable, "no sheet with a recognizable name column")
	}
	return entities, nil
}

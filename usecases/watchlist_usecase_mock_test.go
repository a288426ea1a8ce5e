package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/vigiehq/vigie-backend/models"
)

type documentRepositoryMock struct {
	refs    []models.WatchlistDocumentRef
	docs    map[string]models.WatchlistDocument
	listErr error
	getErr  error

	getCalls int
}

func (m *documentRepositoryMock) ListDocuments(ctx context.Context, bucketUrl string) ([]models.WatchlistDocumentRef, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.refs, nil
}

func (m *documentRepositoryMock) GetDocument(ctx context.Context, bucketUrl, key string) (models.WatchlistDocument, error) {
	m.getCalls++
	if m.getErr != nil {
		return models.WatchlistDocument{}, m.getErr
	}
	doc, ok := m.docs[key]
	if !ok {
		return models.WatchlistDocument{}, errors.Wrapf(models.NotFoundError, "no document at %s", key)
	}
	return doc, nil
}

package repositories

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"path"
	"sync"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"

	"github.com/vigiehq/vigie-backend/models"
	"github.com/vigiehq/vigie-backend/utils"
)

type WatchlistDocumentRepository interface {
	ListDocuments(ctx context.Context, bucketUrl string) ([]models.WatchlistDocumentRef, error)
	GetDocument(ctx context.Context, bucketUrl, key string) (models.WatchlistDocument, error)
}

type watchlistDocumentRepository struct {
	buckets map[string]*blob.Bucket
	m       sync.Mutex
}

func NewWatchlistDocumentRepository() WatchlistDocumentRepository {
	return &watchlistDocumentRepository{
		buckets: make(map[string]*blob.Bucket),
	}
}

func (repo *watchlistDocumentRepository) openBucket(ctx context.Context, bucketUrl string) (*blob.Bucket, error) {
	tracer := utils.OpenTelemetryTracerFromContext(ctx)
	ctx, span := tracer.Start(
		ctx,
		"repositories.WatchlistDocumentRepository.openBucket",
		trace.WithAttributes(attribute.String("bucket", bucketUrl)),
	)
	defer span.End()

	if repo.buckets[bucketUrl] == nil {
		repo.m.Lock()
		defer repo.m.Unlock()

		bucket, err := blob.OpenBucket(ctx, bucketUrl)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", bucketUrl)
		}

		ok, err := bucket.IsAccessible(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to check bucket accessibility %s", bucketUrl)
		} else if !ok {
			return nil, errors.Newf("bucket %s is not accessible", bucketUrl)
		}

		repo.buckets[bucketUrl] = bucket
	}
	return repo.buckets[bucketUrl], nil
}

func (repo *watchlistDocumentRepository) ListDocuments(ctx context.Context, bucketUrl string) ([]models.WatchlistDocumentRef, error) {
	tracer := utils.OpenTelemetryTracerFromContext(ctx)
	ctx, span := tracer.Start(
		ctx,
		"repositories.WatchlistDocumentRepository.ListDocuments",
		trace.WithAttributes(attribute.String("bucket", bucketUrl)),
	)
	defer span.End()

	bucket, err := repo.openBucket(ctx, bucketUrl)
	if err != nil {
		return nil, err
	}

	var refs []models.WatchlistDocumentRef
	iter := bucket.List(nil)
	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list bucket %s", bucketUrl)
		}
		if obj.IsDir {
			continue
		}

		refs = append(refs, models.WatchlistDocumentRef{
			Key:         obj.Key,
			SourceLabel: path.Base(obj.Key),
			Kind:        models.DocumentKindFromExtension(path.Ext(obj.Key)),
			Size:        obj.Size,
			UpdatedAt:   obj.ModTime,
		})
	}
	return refs, nil
}

func (repo *watchlistDocumentRepository) GetDocument(ctx context.Context, bucketUrl, key string) (models.WatchlistDocument, error) {
	tracer := utils.OpenTelemetryTracerFromContext(ctx)
	ctx, span := tracer.Start(
		ctx,
		"repositories.WatchlistDocumentRepository.GetDocument",
		trace.WithAttributes(attribute.String("bucket", bucketUrl)),
		trace.WithAttributes(attribute.String("key", key)),
	)
	defer span.End()

	bucket, err := repo.openBucket(ctx, bucketUrl)
	if err != nil {
		return models.WatchlistDocument{}, err
	}

	exists, err := bucket.Exists(ctx, key)
	if err != nil {
		return models.WatchlistDocument{}, errors.Wrapf(err,
			"failed to check if document %s exists in bucket %s", key, bucketUrl)
	} else if !exists {
		return models.WatchlistDocument{}, errors.Wrapf(models.NotFoundError,
			"document %s does not exist in bucket %s", key, bucketUrl)
	}

	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return models.WatchlistDocument{}, errors.Wrapf(err,
			"failed to read document %s/%s", bucketUrl, key)
	}

	hash := sha256.Sum256(data)
	return models.WatchlistDocument{
		SourceLabel: path.Base(key),
		Kind:        models.DocumentKindFromExtension(path.Ext(key)),
		Data:        data,
		ContentHash: hex.EncodeToString(hash[:]),
	}, nil
}

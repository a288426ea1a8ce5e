package dto

import (
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/vigiehq/vigie-backend/models"
	"github.com/vigiehq/vigie-backend/pure_utils"
)

// ValidEntityKinds are the accepted spellings of the entity_kind filter.
var ValidEntityKinds = []string{
	"individual", "person", "company", "entity", "organization", "company_or_entity",
}

type ScreeningRequestBody struct {
	Query      string   `json:"query" binding:"required"`
	Threshold  *float64 `json:"threshold"`
	EntityKind string   `json:"entity_kind"`
	Limit      int      `json:"limit"`
}

func AdaptScreeningRequest(body ScreeningRequestBody) (models.ScreeningRequest, error) {
	kind, err := adaptEntityKind(body.EntityKind)
	if err != nil {
		return models.ScreeningRequest{}, err
	}

	return models.ScreeningRequest{
		Query: body.Query,
		Threshold: pure_utils.PtrValueOrDefault(body.Threshold,
			float64(models.DefaultMatchingPolicy().MatchThreshold)),
		EntityKind: kind,
		Limit:      body.Limit,
	}, nil
}

type BatchScreeningRequestBody struct {
	Queries    []string `json:"queries" binding:"required"`
	Threshold  *float64 `json:"threshold"`
	EntityKind string   `json:"entity_kind"`
	Limit      int      `json:"limit"`
}

func AdaptBatchScreeningRequest(body BatchScreeningRequestBody) (models.BatchScreeningRequest, error) {
	kind, err := adaptEntityKind(body.EntityKind)
	if err != nil {
		return models.BatchScreeningRequest{}, err
	}

	return models.BatchScreeningRequest{
		Queries: body.Queries,
		Threshold: pure_utils.PtrValueOrDefault(body.Threshold,
			float64(models.DefaultMatchingPolicy().MatchThreshold)),
		EntityKind: kind,
		Limit:      body.Limit,
	}, nil
}

func adaptEntityKind(s string) (models.EntityKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return models.EntityKindUnknown, nil
	}
	if !slices.Contains(ValidEntityKinds, s) {
		return models.EntityKindUnknown,
			errors.Wrapf(models.BadParameterError, "unknown entity kind %q", s)
	}
	return models.EntityKindFrom(s), nil
}

type ScreeningResultDto struct {
	ScreeningId string           `json:"screening_id"`
	Query       string           `json:"query"`
	MatchCount  int              `json:"match_count"`
	Matches     []MatchResultDto `json:"matches"`
	ScreenedAt  time.Time        `json:"screened_at"`
}

func AdaptScreeningResultDto(result models.ScreeningResult) ScreeningResultDto {
	return ScreeningResultDto{
		ScreeningId: result.ScreeningId,
		Query:       result.Query,
		MatchCount:  len(result.Matches),
		Matches:     pure_utils.Map(result.Matches, AdaptMatchResultDto),
		ScreenedAt:  result.ScreenedAt,
	}
}

type BatchScreeningResultDto struct {
	Results []ScreeningResultDto `json:"results"`
}

func AdaptBatchScreeningResultDto(results []models.ScreeningResult) BatchScreeningResultDto {
	return BatchScreeningResultDto{
		Results: pure_utils.Map(results, AdaptScreeningResultDto),
	}
}

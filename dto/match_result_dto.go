package dto

import (
	"github.com/guregu/null/v5"

	"github.com/vigiehq/vigie-backend/models"
)

type SanctionEntityDto struct {
	Source      string `json:"source"`
	ListType    string `json:"list_type"`
	EntityKind  string `json:"entity_kind"`
	PrimaryName string `json:"primary_name"`
}

type MatchResultDto struct {
	MatchedName string            `json:"matched_name"`
	Score       float64           `json:"score"`
	Layer       string            `json:"layer"`
	Entity      SanctionEntityDto `json:"entity"`

	Authority   string   `json:"authority"`
	Authorities []string `json:"authorities"`
	Tier        int      `json:"tier"`

	RiskScore             float64   `json:"risk_score"`
	RiskLevel             string    `json:"risk_level"`
	IsMultiJurisdictional null.Bool `json:"is_multi_jurisdictional"`
}

func AdaptMatchResultDto(match models.MatchResult) MatchResultDto {
	return MatchResultDto{
		MatchedName: match.MatchedName,
		Score:       match.Score,
		Layer:       match.Layer.String(),
		Entity: SanctionEntityDto{
			Source:      match.Entity.Source,
			ListType:    match.Entity.ListType.String(),
			EntityKind:  match.Entity.EntityKind.String(),
			PrimaryName: match.Entity.PrimaryName,
		},
		Authority:             match.Authority,
		Authorities:           match.Authorities,
		Tier:                  match.Tier,
		RiskScore:             match.RiskScore,
		RiskLevel:             match.RiskLevel.String(),
		IsMultiJurisdictional: match.IsMultiJurisdictional,
	}
}

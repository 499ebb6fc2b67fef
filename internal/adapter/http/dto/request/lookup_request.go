package request

import (
	"strings"

	"bond_quotation/internal/domain/entities"
)

type ValidateIntermediaryRequest struct {
	IntermediaryID string `json:"intermediaryId" binding:"required"`
}

type CompanyAddressRequest struct {
	CompanyID string `json:"companyId"`
	Address   string `json:"address" binding:"required"`
}

type SanctionCheckRequest struct {
	BeneficiaryName string  `json:"beneficiaryName" binding:"required"`
	Country         string  `json:"country"`
	Amount          float64 `json:"amount" binding:"gte=0"`
}

func (r SanctionCheckRequest) ToEntity() entities.SanctionCheck {
	return entities.SanctionCheck{
		BeneficiaryName: strings.TrimSpace(r.BeneficiaryName),
		Country:         strings.ToUpper(strings.TrimSpace(r.Country)),
		Amount:          r.Amount,
	}
}

type PricingContextRequest struct {
	CompanyID string  `json:"companyId"`
	Grade     string  `json:"grade"`
	BondType  string  `json:"bondType"`
	Country   string  `json:"country"`
	Amount    float64 `json:"amount"`
	TenorDays int     `json:"tenorDays"`
}

type PricingQueryRequest struct {
	Query   string                `json:"query" binding:"required"`
	Context PricingContextRequest `json:"context"`
}

func (r PricingQueryRequest) ToEntity() entities.PricingQuery {
	return entities.PricingQuery{
		Query: strings.TrimSpace(r.Query),
		Context: entities.PricingContext{
			CompanyID: strings.TrimSpace(r.Context.CompanyID),
			Grade:     entities.Grade(strings.ToUpper(strings.TrimSpace(r.Context.Grade))),
			BondType:  r.Context.BondType,
			Country:   strings.ToUpper(strings.TrimSpace(r.Context.Country)),
			Amount:    r.Context.Amount,
			TenorDays: r.Context.TenorDays,
		},
	}
}

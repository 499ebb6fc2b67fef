package entities

import "bond_quotation/internal/domain/pricing"

// Grade is the company creditworthiness tier returned by IRP (A best, E worst).
//
// The zero value means the company has not been graded yet.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
)

// IsValid reports whether g is one of A-E.
func (g Grade) IsValid() bool {
	switch g {
	case GradeA, GradeB, GradeC, GradeD, GradeE:
		return true
	}
	return false
}

// AllowsPricing reports whether the grade may use RAG pricing (A, B and C only).
func (g Grade) AllowsPricing() bool {
	return g == GradeA || g == GradeB || g == GradeC
}

type BondType string

const (
	BondTypePerformance BondType = "Performance"
	BondTypeAdvance     BondType = "Advance"
	BondTypeBid         BondType = "Bid"
	BondTypeCustom      BondType = "Custom"
)

// BondTypes lists the supported bond types in display order.
var BondTypes = []BondType{BondTypePerformance, BondTypeAdvance, BondTypeBid, BondTypeCustom}

// Pricing holds the rate breakdown of a quotation. All rates are basis points.
type Pricing struct {
	BaseRateBps      int     `json:"baseRateBps" validate:"gte=0"`
	LoadingsBps      int     `json:"loadingsBps" validate:"gte=0"`
	DiscountsBps     int     `json:"discountsBps" validate:"gte=0"`
	FinalRateBps     int     `json:"finalRateBps" validate:"gte=0"`
	EstimatedPremium float64 `json:"estimatedPremium" validate:"gte=0"`
}

// QuoteDraft is the quotation being assembled during a conversation.
//
// A draft is only mutated through ApplyDraftUpdates, which validates the
// invariants declared in the struct tags before committing.
type QuoteDraft struct {
	IntermediaryID         string   `json:"intermediaryId"`
	CompanyID              string   `json:"companyId"`
	CompanyName            string   `json:"companyName"`
	Grade                  Grade    `json:"grade" validate:"omitempty,oneof=A B C D E"`
	ProspectCompanyAddress string   `json:"prospectCompanyAddress"`
	BusinessUnit           string   `json:"businessUnit"`
	DebtTypeCode           string   `json:"debtTypeCode"`
	DepositionCountry      string   `json:"depositionCountry"`
	DurationMonths         int      `json:"durationMonths" validate:"gte=0"`
	DurationDays           int      `json:"durationDays" validate:"gte=0"`
	TenorDays              int      `json:"tenorDays" validate:"gte=0"`
	HasContract            *bool    `json:"hasContract"`
	ContractNumber         string   `json:"contractNumber"`
	SubcontractNumber      string   `json:"subcontractNumber"`
	LimitNumber            string   `json:"limitNumber"`
	BondType               BondType `json:"bondType" validate:"omitempty,oneof=Performance Advance Bid Custom"`
	Amount                 float64  `json:"amount" validate:"gte=0"`
	Country                string   `json:"country"`
	Obligee                string   `json:"obligee"`
	RiskNotes              string   `json:"riskNotes"`
	Pricing                Pricing  `json:"pricing"`
}

// NewQuoteDraft returns the draft a session starts with (and returns to on reset).
func NewQuoteDraft() QuoteDraft {
	return QuoteDraft{BondType: BondTypePerformance}
}

// IsComplete reports whether the draft carries everything a bond request needs.
func (d QuoteDraft) IsComplete() bool {
	return d.CompanyID != "" &&
		d.BondType != "" &&
		d.Amount > 0 &&
		d.TenorDays > 0 &&
		d.Pricing.FinalRateBps > 0
}

func (d QuoteDraft) CanUseRAG() bool {
	return d.Grade.AllowsPricing()
}

// CanFinalize reports whether a quotation may be minted from the draft.
func (d QuoteDraft) CanFinalize() bool {
	return d.CanUseRAG() && d.Pricing.FinalRateBps > 0
}

func (d QuoteDraft) EstimatedPremium() float64 {
	return pricing.EstimatePremium(d.Amount, d.Pricing.FinalRateBps, d.TenorDays)
}

// ContractAnswer renders the tri-state contract flag for display.
func (d QuoteDraft) ContractAnswer() string {
	switch {
	case d.HasContract == nil:
		return "unknown"
	case *d.HasContract:
		return "yes"
	default:
		return "no"
	}
}

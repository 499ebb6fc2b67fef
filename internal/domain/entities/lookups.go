package entities

import (
	"errors"
	"time"
)

var (
	// ErrAccessDenied is returned by pricing lookups for grades outside A-C.
	// It is a business rule, not a failure.
	ErrAccessDenied = errors.New("rag access denied")
	// ErrNoPricingFound means no pricing table matched the query.
	ErrNoPricingFound = errors.New("no pricing information found for the query")
)

type IntermediaryValidation struct {
	IntermediaryID string `json:"intermediaryId"`
	Registered     bool   `json:"registered"`
	Name           string `json:"name,omitempty"`
}

type CompanyGrade struct {
	CompanyID string    `json:"companyId"`
	Grade     Grade     `json:"grade"`
	Timestamp time.Time `json:"timestamp"`
}

// CompanyAddress is a prospect company address recorded through IRP.
//
// Storage model (DynamoDB):
//   - PK: company_id
//   - SK: recorded_at
type CompanyAddress struct {
	CompanyID  string    `json:"companyId"`
	Address    string    `json:"address"`
	RecordedAt time.Time `json:"recordedAt"`
}

type SanctionStatus string

const (
	SanctionPass   SanctionStatus = "PASS"
	SanctionReview SanctionStatus = "REVIEW"
	SanctionFail   SanctionStatus = "FAIL"
)

// ChipStatus maps a screening outcome onto a chip colour.
func (s SanctionStatus) ChipStatus() ChipStatus {
	switch s {
	case SanctionPass:
		return ChipSuccess
	case SanctionReview:
		return ChipWarning
	default:
		return ChipError
	}
}

type SanctionCheck struct {
	BeneficiaryName string  `json:"beneficiaryName"`
	Country         string  `json:"country"`
	Amount          float64 `json:"amount"`
}

type SanctionResult struct {
	Status SanctionStatus `json:"status"`
	Reason string         `json:"reason,omitempty"`
}

type PricingContext struct {
	CompanyID string  `json:"companyId"`
	Grade     Grade   `json:"grade"`
	BondType  string  `json:"bondType"`
	Country   string  `json:"country"`
	Amount    float64 `json:"amount"`
	TenorDays int     `json:"tenorDays"`
}

type PricingQuery struct {
	Query   string         `json:"query"`
	Context PricingContext `json:"context"`
}

type RateBand struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// PricingGuidance is what the pricing retriever returns for a query.
type PricingGuidance struct {
	BondType  string     `json:"bondType"`
	Bands     []RateBand `json:"bands"`
	Rules     []string   `json:"rules"`
	Notes     []string   `json:"notes"`
	Base      int        `json:"base"`
	Loadings  int        `json:"loadings"`
	Discounts int        `json:"discounts"`
	Timestamp time.Time  `json:"timestamp"`
}

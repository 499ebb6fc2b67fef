package entities

import "time"

// QuotationStatus represents the lifecycle of a saved quotation.
type QuotationStatus string

const (
	QuotationStatusActive  QuotationStatus = "active"
	QuotationStatusExpired QuotationStatus = "expired"
)

// Quotation is a finalized draft persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - expires_at_epoch (N) drives the scheduled expiry sweep
type Quotation struct {
	ID        string          `json:"id"`
	Draft     QuoteDraft      `json:"quoteDraft"`
	Status    QuotationStatus `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

type SaveQuotationResult struct {
	QuotationID string    `json:"quotationId"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

const BondRequestNotes = "created by virtual agent v1"

type BondRequestPricing struct {
	FinalRateBps     int     `json:"finalRateBps"`
	EstimatedPremium float64 `json:"estimatedPremium"`
}

// BondRequestPayload is the body a client submits to POST /bondRequests once
// a quotation is finalized.
type BondRequestPayload struct {
	QuotationID string             `json:"quotationId"`
	CompanyID   string             `json:"companyId"`
	BondType    string             `json:"bondType"`
	Amount      float64            `json:"amount"`
	TenorDays   int                `json:"tenorDays"`
	Pricing     BondRequestPricing `json:"pricing"`
	Attachments []string           `json:"attachments"`
	Notes       string             `json:"notes"`
}

func NewBondRequestPayload(quotationID string, d QuoteDraft) BondRequestPayload {
	return BondRequestPayload{
		QuotationID: quotationID,
		CompanyID:   d.CompanyID,
		BondType:    string(d.BondType),
		Amount:      d.Amount,
		TenorDays:   d.TenorDays,
		Pricing: BondRequestPricing{
			FinalRateBps:     d.Pricing.FinalRateBps,
			EstimatedPremium: d.Pricing.EstimatedPremium,
		},
		Attachments: []string{},
		Notes:       BondRequestNotes,
	}
}

package response

import (
	"time"

	"bond_quotation/internal/domain/entities"
)

type QuotationResponse struct {
	QuotationID string              `json:"quotationId"`
	Status      string              `json:"status"`
	QuoteDraft  entities.QuoteDraft `json:"quoteDraft"`
	CreatedAt   time.Time           `json:"createdAt"`
	ExpiresAt   time.Time           `json:"expiresAt"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	return QuotationResponse{
		QuotationID: q.ID,
		Status:      string(q.Status),
		QuoteDraft:  q.Draft,
		CreatedAt:   q.CreatedAt,
		ExpiresAt:   q.ExpiresAt,
	}
}

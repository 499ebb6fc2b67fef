package request

import "bond_quotation/internal/domain/entities"

type SaveQuotationRequest struct {
	QuoteDraft entities.QuoteDraft `json:"quoteDraft"`
}

// BondPayloadRequest builds a bond request for quotationId. When quoteDraft
// is omitted the stored quotation is used.
type BondPayloadRequest struct {
	QuotationID string               `json:"quotationId" binding:"required"`
	QuoteDraft  *entities.QuoteDraft `json:"quoteDraft"`
}

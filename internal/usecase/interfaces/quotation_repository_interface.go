package interfaces

import (
	"context"
	"time"

	"bond_quotation/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// GetByID returns a zero Quotation (empty ID) when nothing is stored under id.
// ExpireBefore flips every active quotation whose expiry is before now to
// expired and returns how many were updated.

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ExpireBefore(ctx context.Context, now time.Time) (int, error)
}

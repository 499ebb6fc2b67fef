package interfaces

import (
	"context"

	"bond_quotation/internal/domain/entities"
)

// ICompanyAddressRepository records prospect company addresses posted through IRP.

type ICompanyAddressRepository interface {
	Create(ctx context.Context, a entities.CompanyAddress) (entities.CompanyAddress, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]entities.CompanyAddress, error)
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"bond_quotation/internal/domain/entities"
	"bond_quotation/internal/usecase/interfaces"
)

var (
	ErrMissingIntermediaryID = errors.New("intermediaryId is required")
	ErrMissingCompanyID      = errors.New("companyId is required")
	ErrInvalidAddress        = errors.New("address must have at least 5 characters")
	ErrMissingBeneficiary    = errors.New("beneficiaryName is required")
	ErrMissingPricingQuery   = errors.New("query is required")
)

const minCompanyAddressLength = 5

// ILookupUseCase exposes the external lookups (IRP, sanctions, pricing
// retrieval) as standalone operations.

type ILookupUseCase interface {
	ValidateIntermediary(ctx context.Context, intermediaryID string) (entities.IntermediaryValidation, error)
	GetCompanyGrade(ctx context.Context, companyID string) (entities.CompanyGrade, error)
	RecordCompanyAddress(ctx context.Context, companyID, address string) (entities.CompanyAddress, error)
	ListCompanyAddresses(ctx context.Context, companyID string) ([]entities.CompanyAddress, error)
	CheckSanction(ctx context.Context, check entities.SanctionCheck) (entities.SanctionResult, error)
	QueryPricing(ctx context.Context, query entities.PricingQuery) (entities.PricingGuidance, error)
}

type LookupUseCase struct {
	registry  interfaces.IIntermediaryRegistry
	grades    interfaces.ICompanyGradeProvider
	addresses interfaces.ICompanyAddressRepository
	sanctions interfaces.ISanctionScreener
	pricing   interfaces.IPricingRetriever
	now       func() time.Time
}

var _ ILookupUseCase = (*LookupUseCase)(nil)

func NewLookupUseCase(
	registry interfaces.IIntermediaryRegistry,
	grades interfaces.ICompanyGradeProvider,
	addresses interfaces.ICompanyAddressRepository,
	sanctions interfaces.ISanctionScreener,
	pricing interfaces.IPricingRetriever,
) *LookupUseCase {
	return &LookupUseCase{
		registry:  registry,
		grades:    grades,
		addresses: addresses,
		sanctions: sanctions,
		pricing:   pricing,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *LookupUseCase) ValidateIntermediary(ctx context.Context, intermediaryID string) (entities.IntermediaryValidation, error) {
	intermediaryID = strings.TrimSpace(intermediaryID)
	if intermediaryID == "" {
		return entities.IntermediaryValidation{}, ErrMissingIntermediaryID
	}
	return u.registry.ValidateIntermediary(ctx, intermediaryID)
}

func (u *LookupUseCase) GetCompanyGrade(ctx context.Context, companyID string) (entities.CompanyGrade, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.CompanyGrade{}, ErrMissingCompanyID
	}
	return u.grades.GetCompanyGrade(ctx, companyID)
}

func (u *LookupUseCase) RecordCompanyAddress(ctx context.Context, companyID, address string) (entities.CompanyAddress, error) {
	address = strings.TrimSpace(address)
	if utf8.RuneCountInString(address) < minCompanyAddressLength {
		return entities.CompanyAddress{}, ErrInvalidAddress
	}
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		companyID = "UNKNOWN"
	}
	return u.addresses.Create(ctx, entities.CompanyAddress{
		CompanyID:  companyID,
		Address:    address,
		RecordedAt: u.now(),
	})
}

func (u *LookupUseCase) ListCompanyAddresses(ctx context.Context, companyID string) ([]entities.CompanyAddress, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrMissingCompanyID
	}
	return u.addresses.ListByCompanyID(ctx, companyID)
}

func (u *LookupUseCase) CheckSanction(ctx context.Context, check entities.SanctionCheck) (entities.SanctionResult, error) {
	check.BeneficiaryName = strings.TrimSpace(check.BeneficiaryName)
	if check.BeneficiaryName == "" {
		return entities.SanctionResult{}, ErrMissingBeneficiary
	}
	return u.sanctions.CheckSanction(ctx, check)
}

func (u *LookupUseCase) QueryPricing(ctx context.Context, query entities.PricingQuery) (entities.PricingGuidance, error) {
	if strings.TrimSpace(query.Query) == "" {
		return entities.PricingGuidance{}, ErrMissingPricingQuery
	}
	return u.pricing.QueryPricing(ctx, query)
}

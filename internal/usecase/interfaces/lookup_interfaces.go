package interfaces

import (
	"context"

	"bond_quotation/internal/domain/entities"
)

// IIntermediaryRegistry validates that an intermediary may quote through the agent.

type IIntermediaryRegistry interface {
	ValidateIntermediary(ctx context.Context, intermediaryID string) (entities.IntermediaryValidation, error)
}

// ICompanyGradeProvider resolves the IRP grade of a prospect company.

type ICompanyGradeProvider interface {
	GetCompanyGrade(ctx context.Context, companyID string) (entities.CompanyGrade, error)
}

// ISanctionScreener screens a beneficiary. Outcomes are informational to the agent.

type ISanctionScreener interface {
	CheckSanction(ctx context.Context, check entities.SanctionCheck) (entities.SanctionResult, error)
}

// IPricingRetriever answers pricing queries.
//
// Implementations must return entities.ErrAccessDenied for grades outside A-C.

type IPricingRetriever interface {
	QueryPricing(ctx context.Context, query entities.PricingQuery) (entities.PricingGuidance, error)
}

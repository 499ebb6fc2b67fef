package sanction

import (
	"context"
	"strings"

	"bond_quotation/internal/domain/entities"
	"bond_quotation/internal/usecase/interfaces"
)

const (
	restrictedTerm          = "sanctioned"
	reviewCountry           = "XX"
	autoApprovalLimitAmount = 10_000_000
)

// StubScreener applies a fixed rule set instead of a real sanctions list.
//
// Rules, first match wins:
//   - beneficiary name containing "sanctioned" => FAIL
//   - country XX => REVIEW
//   - amount above 10M => REVIEW
//   - otherwise PASS
type StubScreener struct{}

var _ interfaces.ISanctionScreener = (*StubScreener)(nil)

func NewStubScreener() *StubScreener {
	return &StubScreener{}
}

func (s *StubScreener) CheckSanction(ctx context.Context, check entities.SanctionCheck) (entities.SanctionResult, error) {
	if err := ctx.Err(); err != nil {
		return entities.SanctionResult{}, err
	}
	if strings.Contains(strings.ToLower(check.BeneficiaryName), restrictedTerm) {
		return entities.SanctionResult{Status: entities.SanctionFail, Reason: "Beneficiary name contains restricted terms"}, nil
	}
	if strings.EqualFold(strings.TrimSpace(check.Country), reviewCountry) {
		return entities.SanctionResult{Status: entities.SanctionReview, Reason: "Country requires manual review"}, nil
	}
	if check.Amount > autoApprovalLimitAmount {
		return entities.SanctionResult{Status: entities.SanctionReview, Reason: "Amount exceeds automatic approval threshold"}, nil
	}
	return entities.SanctionResult{Status: entities.SanctionPass, Reason: "No sanctions found"}, nil
}

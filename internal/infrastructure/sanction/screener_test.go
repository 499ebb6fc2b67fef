package sanction

import (
	"context"
	"testing"

	"bond_quotation/internal/domain/entities"
)

func TestStubScreener_CheckSanction(t *testing.T) {
	s := NewStubScreener()
	cases := []struct {
		name  string
		check entities.SanctionCheck
		want  entities.SanctionStatus
	}{
		{"restricted name", entities.SanctionCheck{BeneficiaryName: "Sanctioned Holdings", Country: "US", Amount: 1}, entities.SanctionFail},
		{"review country", entities.SanctionCheck{BeneficiaryName: "ACME", Country: "XX", Amount: 1}, entities.SanctionReview},
		{"large amount", entities.SanctionCheck{BeneficiaryName: "ACME", Country: "US", Amount: 10_000_001}, entities.SanctionReview},
		{"threshold amount passes", entities.SanctionCheck{BeneficiaryName: "ACME", Country: "US", Amount: 10_000_000}, entities.SanctionPass},
		{"unknown amount passes", entities.SanctionCheck{BeneficiaryName: "Company C-001"}, entities.SanctionPass},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := s.CheckSanction(context.Background(), tc.check)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected %s, got %+v", tc.want, res)
			}
			if res.Reason == "" {
				t.Fatalf("expected a reason")
			}
		})
	}
}

func TestStubScreener_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewStubScreener().CheckSanction(ctx, entities.SanctionCheck{}); err == nil {
		t.Fatalf("expected context error")
	}
}

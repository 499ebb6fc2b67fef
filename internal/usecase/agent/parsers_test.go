package agent

import (
	"errors"
	"testing"

	"bond_quotation/internal/domain/entities"
)

func TestParseStage(t *testing.T) {
	tests := []struct {
		name   string
		stage  entities.Stage
		input  string
		ok     bool
		text   string
		months int
		days   int
		yes    bool
	}{
		{name: "intermediary upper-cased", stage: entities.StageIntermediaryID, input: "my id is int-100", ok: true, text: "INT-100"},
		{name: "intermediary four digits", stage: entities.StageIntermediaryID, input: "INT-1000", ok: false},
		{name: "intermediary missing", stage: entities.StageIntermediaryID, input: "hello", ok: false},
		{name: "company id", stage: entities.StageCompanyID, input: "company C-001 please", ok: true, text: "C-001"},
		{name: "company id lower-case rejected", stage: entities.StageCompanyID, input: "c-001", ok: false},
		{name: "address too short", stage: entities.StageCompanyAddress, input: " abcd ", ok: false},
		{name: "address", stage: entities.StageCompanyAddress, input: "12 Main St", ok: true, text: "12 Main St"},
		{name: "business unit blank", stage: entities.StageBusinessUnit, input: "   ", ok: false},
		{name: "business unit", stage: entities.StageBusinessUnit, input: " Construction ", ok: true, text: "Construction"},
		{name: "months", stage: entities.StageDuration, input: "6 months", ok: true, months: 6},
		{name: "days", stage: entities.StageDuration, input: "180 Days", ok: true, days: 180},
		{name: "months and days", stage: entities.StageDuration, input: "1 month 15 days", ok: true, months: 1, days: 15},
		{name: "zero duration", stage: entities.StageDuration, input: "0 days", ok: false},
		{name: "no duration", stage: entities.StageDuration, input: "soon", ok: false},
		{name: "yes", stage: entities.StageContractAsk, input: "Yes, there is", ok: true, yes: true},
		{name: "y", stage: entities.StageContractAsk, input: "y", ok: true, yes: true},
		{name: "no", stage: entities.StageContractAsk, input: "NO", ok: true, yes: false},
		{name: "nope", stage: entities.StageContractAsk, input: "nope", ok: false},
		{name: "maybe", stage: entities.StageContractAsk, input: "maybe", ok: false},
		{name: "pricing accepts anything", stage: entities.StagePricing, input: "", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ParseStage(tt.stage, tt.input)
			if res.OK() != tt.ok {
				t.Fatalf("expected ok=%v, got %+v", tt.ok, res)
			}
			if !tt.ok {
				var verr *ValidationError
				if !errors.As(res.Err, &verr) || verr.Stage != tt.stage {
					t.Fatalf("expected ValidationError for %s, got %v", tt.stage, res.Err)
				}
				return
			}
			if res.Text != tt.text || res.Months != tt.months || res.Days != tt.days || res.Yes != tt.yes {
				t.Fatalf("unexpected result: %+v", res)
			}
		})
	}
}

func TestParseStage_UnknownStage(t *testing.T) {
	res := ParseStage(entities.Stage("nope"), "x")
	if res.OK() {
		t.Fatalf("expected unknown stage to be rejected")
	}
}

func TestExtractSlots(t *testing.T) {
	tests := []struct {
		input    string
		company  string
		bondType entities.BondType
		amount   float64
		months   int
		days     int
		country  string
		pricing  bool
	}{
		{input: "Company ID C-001", company: "C-001"},
		{input: "Performance bond, $2.5M, 180 days, US", bondType: entities.BondTypePerformance, amount: 2_500_000, days: 180, country: "US"},
		{input: "a bid bond for 3 million over 6 months in DE", bondType: entities.BondTypeBid, amount: 3_000_000, months: 6, country: "DE"},
		{input: "advanced payment guarantee of $750k", bondType: entities.BondTypeAdvance, amount: 750_000},
		{input: "amount 2,500,000 for a custom bond", bondType: entities.BondTypeCustom, amount: 2_500_000},
		{input: "I need pricing for a performance bond", bondType: entities.BondTypePerformance, pricing: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := extractSlots(tt.input)
			if s.CompanyID != tt.company || s.BondType != tt.bondType || s.Amount != tt.amount ||
				s.Months != tt.months || s.Days != tt.days || s.Country != tt.country || s.WantsPricing != tt.pricing {
				t.Fatalf("unexpected slots: %+v", s)
			}
		})
	}
}

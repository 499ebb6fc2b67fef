package rag

import (
	"context"
	"errors"
	"testing"

	"bond_quotation/internal/domain/entities"
)

func query(q string, grade entities.Grade) entities.PricingQuery {
	return entities.PricingQuery{Query: q, Context: entities.PricingContext{CompanyID: "C-001", Grade: grade}}
}

func TestStubRetriever_GradeGate(t *testing.T) {
	r := NewStubRetriever()
	for _, g := range []entities.Grade{entities.GradeD, entities.GradeE, ""} {
		_, err := r.QueryPricing(context.Background(), query("performance", g))
		if !errors.Is(err, entities.ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied for grade %q, got %v", g, err)
		}
	}
}

func TestStubRetriever_Performance(t *testing.T) {
	r := NewStubRetriever()
	res, err := r.QueryPricing(context.Background(), query("performance bond", entities.GradeA))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BondType != "Performance" || res.Base != 200 || res.Loadings != 35 || res.Discounts != 15 {
		t.Fatalf("unexpected guidance: %+v", res)
	}
	if len(res.Bands) != 2 || res.Bands[0] != (entities.RateBand{Min: 180, Max: 240}) {
		t.Fatalf("unexpected bands: %+v", res.Bands)
	}
	if len(res.Rules) != 4 || res.Rules[0] != "Grade A base rate: 200 bps" || res.Rules[3] != "Type multiplier: 1x" {
		t.Fatalf("unexpected rules: %+v", res.Rules)
	}
	if len(res.Notes) != 3 {
		t.Fatalf("unexpected notes: %+v", res.Notes)
	}
}

func TestStubRetriever_DraftContextLoadings(t *testing.T) {
	r := NewStubRetriever()
	q := entities.PricingQuery{
		Query: "advance payment bond",
		Context: entities.PricingContext{
			CompanyID: "C-001",
			Grade:     entities.GradeB,
			Country:   "IT",
			TenorDays: 400,
			Amount:    6_000_000,
		},
	}
	res, err := r.QueryPricing(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (30 + 20) * 1.2 loadings, 12 relationship + 10 volume discount.
	if res.BondType != "Advance" || res.Base != 270 || res.Loadings != 60 || res.Discounts != 22 {
		t.Fatalf("unexpected guidance: %+v", res)
	}
	if res.Rules[1] != "Country loading: 30 bps" || res.Rules[2] != "Tenor loading: 20 bps" {
		t.Fatalf("unexpected rules: %+v", res.Rules)
	}
	if res.Notes[2] != "Loadings adjusted for IT over 400 days" {
		t.Fatalf("unexpected notes: %+v", res.Notes)
	}

	q.Context.Country = ""
	q.Context.Amount = 500_000
	res, err = r.QueryPricing(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// unlisted country falls back to 25 bps
	if res.Loadings != 54 || res.Discounts != 12 {
		t.Fatalf("unexpected fallback guidance: %+v", res)
	}
}

func TestStubRetriever_ExactMatchWins(t *testing.T) {
	r := NewStubRetriever()
	res, err := r.QueryPricing(context.Background(), query("for a bid", entities.GradeC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BondType != "Bid" || res.Base != 280 {
		t.Fatalf("unexpected guidance: %+v", res)
	}
}

func TestStubRetriever_SubstringMatch(t *testing.T) {
	r := NewStubRetriever()
	res, err := r.QueryPricing(context.Background(), query("perf guarantee", entities.GradeB))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BondType != "Performance" || res.Base != 250 {
		t.Fatalf("unexpected guidance: %+v", res)
	}
}

func TestStubRetriever_NotFound(t *testing.T) {
	r := NewStubRetriever()
	for _, q := range []string{"", "   ", "xyz"} {
		if _, err := r.QueryPricing(context.Background(), query(q, entities.GradeA)); !errors.Is(err, entities.ErrNoPricingFound) {
			t.Fatalf("expected ErrNoPricingFound for %q, got %v", q, err)
		}
	}
}

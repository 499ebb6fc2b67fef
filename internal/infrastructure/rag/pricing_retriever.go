package rag

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bond_quotation/internal/domain/entities"
	"bond_quotation/internal/domain/pricing"
	"bond_quotation/internal/usecase/interfaces"
)

type loadingTable struct {
	country    int
	tenor      int
	multiplier float64
}

type discountTable struct {
	relationship int
	volume       int
}

type pricingTable struct {
	bondType  entities.BondType
	baseRates map[entities.Grade]int
	loadings  loadingTable
	discounts discountTable
}

// pricingTables is the in-memory pricing knowledge base, in search order.
var pricingTables = []pricingTable{
	{
		bondType:  entities.BondTypePerformance,
		baseRates: map[entities.Grade]int{"A": 200, "B": 250, "C": 300, "D": 400, "E": 500},
		loadings:  loadingTable{country: 20, tenor: 15, multiplier: 1.0},
		discounts: discountTable{relationship: 10, volume: 5},
	},
	{
		bondType:  entities.BondTypeAdvance,
		baseRates: map[entities.Grade]int{"A": 220, "B": 270, "C": 320, "D": 420, "E": 520},
		loadings:  loadingTable{country: 25, tenor: 20, multiplier: 1.2},
		discounts: discountTable{relationship: 12, volume: 6},
	},
	{
		bondType:  entities.BondTypeBid,
		baseRates: map[entities.Grade]int{"A": 180, "B": 230, "C": 280, "D": 380, "E": 480},
		loadings:  loadingTable{country: 15, tenor: 10, multiplier: 0.8},
		discounts: discountTable{relationship: 8, volume: 4},
	},
	{
		bondType:  entities.BondTypeCustom,
		baseRates: map[entities.Grade]int{"A": 210, "B": 260, "C": 310, "D": 410, "E": 510},
		loadings:  loadingTable{country: 22, tenor: 18, multiplier: 1.1},
		discounts: discountTable{relationship: 11, volume: 5},
	},
}

// StubRetriever answers pricing queries by keyword search over pricingTables.
type StubRetriever struct {
	now func() time.Time
}

var _ interfaces.IPricingRetriever = (*StubRetriever)(nil)

func NewStubRetriever() *StubRetriever {
	return &StubRetriever{now: time.Now}
}

// QueryPricing denies grades outside A-C, then returns the guidance of the
// best matching bond type: an exact keyword match on the type name first,
// otherwise the first type whose name contains any keyword.
func (r *StubRetriever) QueryPricing(ctx context.Context, query entities.PricingQuery) (entities.PricingGuidance, error) {
	if err := ctx.Err(); err != nil {
		return entities.PricingGuidance{}, err
	}
	grade := query.Context.Grade
	if !grade.AllowsPricing() {
		return entities.PricingGuidance{}, fmt.Errorf("%w for grade %s. Only grades A, B, and C are permitted", entities.ErrAccessDenied, grade)
	}

	table, ok := search(query.Query)
	if !ok {
		return entities.PricingGuidance{}, entities.ErrNoPricingFound
	}
	return r.guidance(table, query.Context), nil
}

func search(query string) (pricingTable, bool) {
	keywords := strings.Fields(strings.ToLower(query))
	if len(keywords) == 0 {
		return pricingTable{}, false
	}
	for _, t := range pricingTables {
		name := strings.ToLower(string(t.bondType))
		for _, k := range keywords {
			if k == name {
				return t, true
			}
		}
	}
	for _, t := range pricingTables {
		name := strings.ToLower(string(t.bondType))
		for _, k := range keywords {
			if strings.Contains(name, k) {
				return t, true
			}
		}
	}
	return pricingTable{}, false
}

// guidance prices t for the query context. Country and tenor loadings come
// from the draft when it carries them, and the volume discount from its
// amount; missing values fall back to the table.
func (r *StubRetriever) guidance(t pricingTable, pc entities.PricingContext) entities.PricingGuidance {
	grade := pc.Grade
	base, ok := t.baseRates[grade]
	if !ok {
		base = t.baseRates[entities.GradeB]
	}

	countryLoading, tenorLoading := t.loadings.country, t.loadings.tenor
	loadings := countryLoading + tenorLoading
	loadingNote := "Standard loadings applied"
	if pc.Country != "" || pc.TenorDays > 0 {
		countryLoading = pricing.CountryRisk(pc.Country)
		tenorLoading = pricing.TenorLoading(pc.TenorDays)
		loadings = pricing.CalculateLoadings(pc.Country, pc.TenorDays, string(t.bondType))
		loadingNote = fmt.Sprintf("Loadings adjusted for %s over %d days", orDefault(pc.Country, "unlisted country"), pc.TenorDays)
	}

	discounts := t.discounts.relationship + t.discounts.volume
	if pc.Amount > 0 {
		discounts = t.discounts.relationship + pricing.CalculateDiscounts("", pc.Amount)
	}

	multiplier := strconv.FormatFloat(t.loadings.multiplier, 'f', -1, 64)
	return entities.PricingGuidance{
		BondType: string(t.bondType),
		Bands: []entities.RateBand{
			{Min: base - 20, Max: base + 40},
			{Min: base - 10, Max: base + 30},
		},
		Rules: []string{
			fmt.Sprintf("Grade %s base rate: %d bps", grade, base),
			fmt.Sprintf("Country loading: %d bps", countryLoading),
			fmt.Sprintf("Tenor loading: %d bps", tenorLoading),
			fmt.Sprintf("Type multiplier: %sx", multiplier),
		},
		Notes: []string{
			fmt.Sprintf("Applicable for %s bonds", t.bondType),
			fmt.Sprintf("Grade %s pricing tier", grade),
			loadingNote,
		},
		Base:      base,
		Loadings:  loadings,
		Discounts: discounts,
		Timestamp: r.now().UTC(),
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// Package pricing holds the rate and premium arithmetic shared by the
// pricing retriever and the conversation pricers. Rates are basis points.
package pricing

import "math"

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// EstimatePremium is the draft's premium estimate:
// round2(amount × rate / 10000 × tenor/365). It is 0 for non-positive rates.
func EstimatePremium(amount float64, finalRateBps, tenorDays int) float64 {
	if finalRateBps <= 0 {
		return 0
	}
	return Round2(amount * float64(finalRateBps) / 10000 * (float64(tenorDays) / 365))
}

// PremiumForTenor computes round2(amount × rate × tenor / (365 × 10000)).
// Same quantity as EstimatePremium, in the evaluation order used by the
// retrieval-backed pricer.
func PremiumForTenor(amount float64, finalRateBps, tenorDays int) float64 {
	if finalRateBps <= 0 {
		return 0
	}
	return Round2(amount * float64(finalRateBps) * float64(tenorDays) / (365 * 10000))
}

type Band struct {
	Min int
	Max int
}

type Result struct {
	FinalRateBps     int
	EstimatedPremium float64
}

// ComputePricing clamps base + loadings - discounts into band and prices the tenor.
func ComputePricing(band Band, base, loadings, discounts int, amount float64, tenorDays int) Result {
	raw := base + loadings - discounts
	final := max(band.Min, min(band.Max, raw))
	return Result{
		FinalRateBps:     final,
		EstimatedPremium: EstimatePremium(amount, final, tenorDays),
	}
}

var countryRiskBps = map[string]int{
	"US": 0,
	"CA": 5,
	"UK": 10,
	"DE": 15,
	"FR": 20,
	"IT": 30,
	"ES": 35,
}

const defaultCountryRiskBps = 25

var bondTypeMultipliers = map[string]float64{
	"Performance": 1.0,
	"Advance":     1.2,
	"Bid":         0.8,
	"Custom":      1.1,
}

// CountryRisk returns the country loading, falling back to the default band.
func CountryRisk(country string) int {
	if v, ok := countryRiskBps[country]; ok {
		return v
	}
	return defaultCountryRiskBps
}

func TenorLoading(tenorDays int) int {
	switch {
	case tenorDays > 365:
		return 20
	case tenorDays > 180:
		return 10
	case tenorDays > 90:
		return 5
	}
	return 0
}

// CalculateLoadings is (country risk + tenor loading) × bond type multiplier, rounded.
func CalculateLoadings(country string, tenorDays int, bondType string) int {
	multiplier, ok := bondTypeMultipliers[bondType]
	if !ok {
		multiplier = 1.0
	}
	return int(math.Round(float64(CountryRisk(country)+TenorLoading(tenorDays)) * multiplier))
}

// CalculateDiscounts adds the relationship tier discount to the volume discount.
func CalculateDiscounts(relationship string, volume float64) int {
	relationshipDiscount := 0
	switch relationship {
	case "premium":
		relationshipDiscount = 20
	case "standard":
		relationshipDiscount = 10
	}

	volumeDiscount := 0
	switch {
	case volume > 10_000_000:
		volumeDiscount = 15
	case volume > 5_000_000:
		volumeDiscount = 10
	case volume > 1_000_000:
		volumeDiscount = 5
	}

	return relationshipDiscount + volumeDiscount
}

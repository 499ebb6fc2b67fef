package agent

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"bond_quotation/internal/domain/entities"
	"bond_quotation/internal/domain/pricing"
)

const (
	PricerStrict = "strict"
	PricerRandom = "random"
)

// PricingOutcome is what a pricer wrote into the draft, plus the retrieval
// rules it relied on (if any) for display.
type PricingOutcome struct {
	Pricing entities.Pricing
	Rules   []string
}

// Pricer computes the pricing sub-record of a draft. Pricers refuse grades
// outside A-C with entities.ErrAccessDenied.
type Pricer interface {
	Name() string
	Price(ctx context.Context, draft entities.QuoteDraft) (PricingOutcome, error)
}

// PricingConfig holds the rate constants of both pricers.
type PricingConfig struct {
	BaseRates           map[entities.Grade]int
	DefaultBaseRate     int
	FixedLoadingBps     int
	RandomLoadingMaxBps int
}

// DefaultPricingConfig returns A=200, B=250, others=300 bps with a 20 bps loading.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		BaseRates:           map[entities.Grade]int{entities.GradeA: 200, entities.GradeB: 250},
		DefaultBaseRate:     300,
		FixedLoadingBps:     20,
		RandomLoadingMaxBps: 50,
	}
}

// NewPricer builds the pricer named by strategy ("strict" or "random").
func NewPricer(strategy string, cfg PricingConfig, lookups Lookups, opts ...Option) (Pricer, error) {
	o := newOptions(opts)
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", PricerStrict:
		return NewStrictPricer(cfg), nil
	case PricerRandom:
		return NewRandomPricer(cfg, lookups, o.rng, opts...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPricer, strategy)
}

// StrictPricer is deterministic: grade base rate plus a fixed loading.
type StrictPricer struct {
	cfg PricingConfig
}

func NewStrictPricer(cfg PricingConfig) *StrictPricer {
	return &StrictPricer{cfg: cfg}
}

func (p *StrictPricer) Name() string { return PricerStrict }

func (p *StrictPricer) Price(_ context.Context, d entities.QuoteDraft) (PricingOutcome, error) {
	if !d.CanUseRAG() {
		return PricingOutcome{}, fmt.Errorf("%w for grade %s", entities.ErrAccessDenied, d.Grade)
	}
	base, ok := p.cfg.BaseRates[d.Grade]
	if !ok {
		base = p.cfg.DefaultBaseRate
	}
	final := base + p.cfg.FixedLoadingBps
	return PricingOutcome{
		Pricing: entities.Pricing{
			BaseRateBps:      base,
			LoadingsBps:      p.cfg.FixedLoadingBps,
			FinalRateBps:     final,
			EstimatedPremium: pricing.EstimatePremium(d.Amount, final, d.TenorDays),
		},
	}, nil
}

// RandomPricer asks the pricing retriever for guidance and adds a random
// loading in [0, RandomLoadingMaxBps] before clamping to the first band.
type RandomPricer struct {
	cfg     PricingConfig
	lookups *lookupRunner

	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomPricer(cfg PricingConfig, lookups Lookups, rng *rand.Rand, opts ...Option) *RandomPricer {
	o := newOptions(opts)
	if rng == nil {
		rng = o.rng
	}
	return &RandomPricer{
		cfg:     cfg,
		lookups: &lookupRunner{lookups: lookups, timeout: o.timeout},
		rng:     rng,
	}
}

func (p *RandomPricer) Name() string { return PricerRandom }

func (p *RandomPricer) Price(ctx context.Context, d entities.QuoteDraft) (PricingOutcome, error) {
	if !d.CanUseRAG() {
		return PricingOutcome{}, fmt.Errorf("%w for grade %s", entities.ErrAccessDenied, d.Grade)
	}
	bondType := d.BondType
	if bondType == "" {
		bondType = entities.BondTypePerformance
	}
	country := d.Country
	if country == "" {
		country = d.DepositionCountry
	}
	g, err := p.lookups.queryPricing(ctx, entities.PricingQuery{
		Query: strings.ToLower(string(bondType)) + " bond",
		Context: entities.PricingContext{
			CompanyID: d.CompanyID,
			Grade:     d.Grade,
			BondType:  string(bondType),
			Country:   country,
			Amount:    d.Amount,
			TenorDays: d.TenorDays,
		},
	})
	if err != nil {
		return PricingOutcome{}, err
	}

	loadings := g.Loadings + p.jitter()
	band := pricing.Band{Min: g.Base, Max: g.Base + loadings}
	if len(g.Bands) > 0 {
		band = pricing.Band{Min: g.Bands[0].Min, Max: g.Bands[0].Max}
	}
	res := pricing.ComputePricing(band, g.Base, loadings, g.Discounts, d.Amount, d.TenorDays)

	return PricingOutcome{
		Pricing: entities.Pricing{
			BaseRateBps:      g.Base,
			LoadingsBps:      loadings,
			DiscountsBps:     g.Discounts,
			FinalRateBps:     res.FinalRateBps,
			EstimatedPremium: pricing.PremiumForTenor(d.Amount, res.FinalRateBps, d.TenorDays),
		},
		Rules: g.Rules,
	}, nil
}

func (p *RandomPricer) jitter() int {
	if p.cfg.RandomLoadingMaxBps <= 0 {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.IntN(p.cfg.RandomLoadingMaxBps + 1)
}

func newSeededRand() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

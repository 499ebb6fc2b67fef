package agent

import (
	"context"
	"errors"
	"time"

	"bond_quotation/internal/domain/entities"
	"bond_quotation/internal/usecase/interfaces"
)

// Lookup names, used in LookupFailure and logs.
const (
	LookupValidateIntermediary = "validateIntermediary"
	LookupCompanyGrade         = "getCompanyGrade"
	LookupPostCompanyAddress   = "postCompanyAddress"
	LookupCheckSanction        = "checkSanction"
	LookupQueryPricing         = "queryPricing"
)

// Lookups bundles the collaborators the stage machine calls.
type Lookups struct {
	Registry  interfaces.IIntermediaryRegistry
	Grades    interfaces.ICompanyGradeProvider
	Addresses interfaces.ICompanyAddressRepository
	Sanctions interfaces.ISanctionScreener
	Pricing   interfaces.IPricingRetriever
}

// lookupRunner calls collaborators one at a time under a bounded timeout.
type lookupRunner struct {
	lookups Lookups
	timeout time.Duration
}

type lookupResult[T any] struct {
	value T
	err   error
}

// runLookup calls fn and waits at most timeout for it. Errors come back as
// *LookupFailure, except pricing denials which are returned as-is.
func runLookup[T any](ctx context.Context, timeout time.Duration, name string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	done := make(chan lookupResult[T], 1)
	go func() {
		v, err := fn(ctx)
		done <- lookupResult[T]{value: v, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			if errors.Is(r.err, entities.ErrAccessDenied) {
				return zero, r.err
			}
			return zero, &LookupFailure{Lookup: name, Err: r.err}
		}
		return r.value, nil
	case <-ctx.Done():
		return zero, &LookupFailure{Lookup: name, Err: ctx.Err()}
	}
}

func (r *lookupRunner) validateIntermediary(ctx context.Context, id string) (entities.IntermediaryValidation, error) {
	if r.lookups.Registry == nil {
		return entities.IntermediaryValidation{}, &LookupFailure{Lookup: LookupValidateIntermediary, Err: errNotConfigured}
	}
	return runLookup(ctx, r.timeout, LookupValidateIntermediary, func(ctx context.Context) (entities.IntermediaryValidation, error) {
		return r.lookups.Registry.ValidateIntermediary(ctx, id)
	})
}

func (r *lookupRunner) companyGrade(ctx context.Context, companyID string) (entities.CompanyGrade, error) {
	if r.lookups.Grades == nil {
		return entities.CompanyGrade{}, &LookupFailure{Lookup: LookupCompanyGrade, Err: errNotConfigured}
	}
	g, err := runLookup(ctx, r.timeout, LookupCompanyGrade, func(ctx context.Context) (entities.CompanyGrade, error) {
		return r.lookups.Grades.GetCompanyGrade(ctx, companyID)
	})
	if err != nil {
		return entities.CompanyGrade{}, err
	}
	if !g.Grade.IsValid() {
		return entities.CompanyGrade{}, &LookupFailure{Lookup: LookupCompanyGrade, Err: errInvalidGrade}
	}
	return g, nil
}

func (r *lookupRunner) postCompanyAddress(ctx context.Context, a entities.CompanyAddress) error {
	if r.lookups.Addresses == nil {
		return &LookupFailure{Lookup: LookupPostCompanyAddress, Err: errNotConfigured}
	}
	_, err := runLookup(ctx, r.timeout, LookupPostCompanyAddress, func(ctx context.Context) (entities.CompanyAddress, error) {
		return r.lookups.Addresses.Create(ctx, a)
	})
	return err
}

func (r *lookupRunner) checkSanction(ctx context.Context, check entities.SanctionCheck) (entities.SanctionResult, error) {
	if r.lookups.Sanctions == nil {
		return entities.SanctionResult{}, &LookupFailure{Lookup: LookupCheckSanction, Err: errNotConfigured}
	}
	return runLookup(ctx, r.timeout, LookupCheckSanction, func(ctx context.Context) (entities.SanctionResult, error) {
		return r.lookups.Sanctions.CheckSanction(ctx, check)
	})
}

func (r *lookupRunner) queryPricing(ctx context.Context, q entities.PricingQuery) (entities.PricingGuidance, error) {
	if r.lookups.Pricing == nil {
		return entities.PricingGuidance{}, &LookupFailure{Lookup: LookupQueryPricing, Err: errNotConfigured}
	}
	return runLookup(ctx, r.timeout, LookupQueryPricing, func(ctx context.Context) (entities.PricingGuidance, error) {
		return r.lookups.Pricing.QueryPricing(ctx, q)
	})
}

var (
	errNotConfigured = errors.New("lookup not configured")
	errInvalidGrade  = errors.New("grade lookup returned an unknown grade")
)

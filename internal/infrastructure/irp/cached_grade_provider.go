package irp

import (
	"context"
	"time"

	"bond_quotation/internal/domain/entities"
	"bond_quotation/internal/usecase/interfaces"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedGradeProvider memoizes successful grade lookups for a bounded time.
// Failed lookups are never cached.
type CachedGradeProvider struct {
	next  interfaces.ICompanyGradeProvider
	cache *expirable.LRU[string, entities.CompanyGrade]
}

var _ interfaces.ICompanyGradeProvider = (*CachedGradeProvider)(nil)

func NewCachedGradeProvider(next interfaces.ICompanyGradeProvider, size int, ttl time.Duration) *CachedGradeProvider {
	if size <= 0 {
		size = 256
	}
	return &CachedGradeProvider{
		next:  next,
		cache: expirable.NewLRU[string, entities.CompanyGrade](size, nil, ttl),
	}
}

func (p *CachedGradeProvider) GetCompanyGrade(ctx context.Context, companyID string) (entities.CompanyGrade, error) {
	if g, ok := p.cache.Get(companyID); ok {
		return g, nil
	}
	g, err := p.next.GetCompanyGrade(ctx, companyID)
	if err != nil {
		return entities.CompanyGrade{}, err
	}
	p.cache.Add(companyID, g)
	return g, nil
}

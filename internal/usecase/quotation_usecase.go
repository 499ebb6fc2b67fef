package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bond_quotation/internal/domain/entities"
	"bond_quotation/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrQuotationNotFound   = errors.New("quotation not found")
	ErrInvalidQuotationID  = errors.New("invalid quotation id")
	ErrIncompleteQuotation = errors.New("companyId, bondType and amount > 0 are required")
)

// IQuotationUseCase exposes quotation persistence to the HTTP layer.
//
//   - POST /quotation/save => Save()
//   - GET /quotation/{id} => GetByID()
//   - POST /bond/payload => BuildBondPayload()

type IQuotationUseCase interface {
	Save(ctx context.Context, draft entities.QuoteDraft) (entities.SaveQuotationResult, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	BuildBondPayload(ctx context.Context, quotationID string, draft *entities.QuoteDraft) (entities.BondRequestPayload, error)
}

type QuotationUseCase struct {
	repo    interfaces.IQuotationRepository
	saveTTL time.Duration
	now     func() time.Time
	log     *zap.Logger
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(repo interfaces.IQuotationRepository, saveTTL time.Duration, log *zap.Logger) *QuotationUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuotationUseCase{
		repo:    repo,
		saveTTL: saveTTL,
		now:     func() time.Time { return time.Now().UTC() },
		log:     log,
	}
}

// NewQuotationID returns "Q-<unix millis>-<6 char token>".
func NewQuotationID(now time.Time) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("Q-%d-%s", now.UnixMilli(), token)
}

// Save persists draft as a new active quotation.
func (u *QuotationUseCase) Save(ctx context.Context, draft entities.QuoteDraft) (entities.SaveQuotationResult, error) {
	if strings.TrimSpace(draft.CompanyID) == "" || draft.BondType == "" || draft.Amount <= 0 {
		return entities.SaveQuotationResult{}, ErrIncompleteQuotation
	}
	if err := entities.ValidateDraft(draft); err != nil {
		return entities.SaveQuotationResult{}, err
	}
	q, err := persistQuotation(ctx, u.repo, draft, u.now(), u.saveTTL)
	if err != nil {
		u.log.Error("[quotation][usecase] save failed", zap.Error(err))
		return entities.SaveQuotationResult{}, err
	}
	u.log.Info("[quotation][usecase] saved", zap.String("quotation_id", q.ID), zap.Time("expires_at", q.ExpiresAt))
	return entities.SaveQuotationResult{QuotationID: q.ID, ExpiresAt: q.ExpiresAt}, nil
}

// GetByID returns the stored quotation. An active quotation past its expiry
// is reported as expired even before the sweep has run.
func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	if q.Status == entities.QuotationStatusActive && u.now().After(q.ExpiresAt) {
		q.Status = entities.QuotationStatusExpired
	}
	return q, nil
}

// BuildBondPayload renders the bond request body. Without a draft, the
// stored quotation's draft is used.
func (u *QuotationUseCase) BuildBondPayload(ctx context.Context, quotationID string, draft *entities.QuoteDraft) (entities.BondRequestPayload, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.BondRequestPayload{}, ErrInvalidQuotationID
	}
	if draft != nil {
		return entities.NewBondRequestPayload(quotationID, *draft), nil
	}
	q, err := u.GetByID(ctx, quotationID)
	if err != nil {
		return entities.BondRequestPayload{}, err
	}
	return entities.NewBondRequestPayload(q.ID, q.Draft), nil
}

func persistQuotation(ctx context.Context, repo interfaces.IQuotationRepository, draft entities.QuoteDraft, now time.Time, ttl time.Duration) (entities.Quotation, error) {
	q := entities.Quotation{
		ID:        NewQuotationID(now),
		Draft:     draft,
		Status:    entities.QuotationStatusActive,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	return repo.Create(ctx, q)
}

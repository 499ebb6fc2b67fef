package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bond_quotation/internal/domain/entities"
	"bond_quotation/internal/usecase/agent"
	"bond_quotation/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrNoDraft              = errors.New("no draft to finalize for this session")
	ErrFinalizeNotPermitted = errors.New("quotation cannot be finalized: grade not eligible or pricing missing")
)

// SessionSnapshot is a point-in-time copy of a conversation session.
type SessionSnapshot struct {
	SessionID        string                        `json:"sessionId"`
	Strategy         string                        `json:"strategy"`
	Stage            entities.Stage                `json:"stage"`
	SanctionDone     bool                          `json:"sanctionDone"`
	Draft            entities.QuoteDraft           `json:"draft"`
	IsComplete       bool                          `json:"isComplete"`
	CanUseRAG        bool                          `json:"canUseRAG"`
	CanFinalize      bool                          `json:"canFinalize"`
	EstimatedPremium float64                       `json:"estimatedPremium"`
	ContractAnswer   string                        `json:"contractAnswer"`
	Messages         []entities.ChatMessage        `json:"messages"`
	Finalized        *entities.SaveQuotationResult `json:"finalized,omitempty"`
	CreatedAt        time.Time                     `json:"createdAt"`
	UpdatedAt        time.Time                     `json:"updatedAt"`
}

type FinalizeResult struct {
	Quotation entities.SaveQuotationResult `json:"quotation"`
	Payload   entities.BondRequestPayload  `json:"payload"`
	Message   entities.ChatMessage         `json:"message"`
}

// IQuoteAgentUseCase drives conversation sessions.
//
//   - POST /chat/sessions => StartSession()
//   - POST /chat/sessions/{id}/messages => ProcessMessage()
//   - PUT /chat/sessions/{id}/draft => ReplaceDraft()
//   - POST /chat/sessions/{id}/finalize => FinalizeQuotation()

type IQuoteAgentUseCase interface {
	StartSession(ctx context.Context) (SessionSnapshot, error)
	GetSession(ctx context.Context, sessionID string) (SessionSnapshot, error)
	ProcessMessage(ctx context.Context, sessionID, text string) (entities.ChatMessage, error)
	ReplaceDraft(ctx context.Context, sessionID string, draft entities.QuoteDraft) (SessionSnapshot, error)
	FinalizeQuotation(ctx context.Context, sessionID string) (FinalizeResult, error)
	EndSession(ctx context.Context, sessionID string) error
}

type QuoteAgentUseCase struct {
	agent       *agent.Agent
	sessions    interfaces.ISessionRepository
	quotations  interfaces.IQuotationRepository
	finalizeTTL time.Duration
	now         func() time.Time
	newID       func() string
	log         *zap.Logger
}

var _ IQuoteAgentUseCase = (*QuoteAgentUseCase)(nil)

func NewQuoteAgentUseCase(
	a *agent.Agent,
	sessions interfaces.ISessionRepository,
	quotations interfaces.IQuotationRepository,
	finalizeTTL time.Duration,
	log *zap.Logger,
) *QuoteAgentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteAgentUseCase{
		agent:       a,
		sessions:    sessions,
		quotations:  quotations,
		finalizeTTL: finalizeTTL,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
		log:         log,
	}
}

func (u *QuoteAgentUseCase) StartSession(ctx context.Context) (SessionSnapshot, error) {
	s := entities.NewConversationSession(u.newID(), u.agent.StrategyName(), u.now())
	s.Append(u.agent.Greeting())
	u.sessions.Save(s)

	u.log.Info("[agent][usecase] session started", zap.String("session_id", s.ID), zap.String("strategy", s.Strategy))
	return snapshotOf(s), nil
}

func (u *QuoteAgentUseCase) GetSession(ctx context.Context, sessionID string) (SessionSnapshot, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return SessionSnapshot{}, err
	}
	s.Lock()
	defer s.Unlock()
	if s.Ended {
		return SessionSnapshot{}, ErrSessionNotFound
	}
	return snapshotOf(s), nil
}

// ProcessMessage records the user input, runs it through the agent and
// records the reply. Inputs for one session are handled one at a time.
func (u *QuoteAgentUseCase) ProcessMessage(ctx context.Context, sessionID, text string) (entities.ChatMessage, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.ChatMessage{}, err
	}
	s.Lock()
	defer s.Unlock()
	if s.Ended {
		return entities.ChatMessage{}, ErrSessionNotFound
	}

	s.Append(entities.ChatMessage{
		ID:        u.newID(),
		Type:      entities.MessageTypeUser,
		Content:   text,
		Timestamp: u.now(),
	})
	reply := u.agent.ProcessMessage(ctx, s, text)
	s.Append(reply)
	s.UpdatedAt = u.now()
	u.sessions.Save(s)
	return reply, nil
}

// ReplaceDraft overwrites the whole draft. The stage is left where it is.
func (u *QuoteAgentUseCase) ReplaceDraft(ctx context.Context, sessionID string, draft entities.QuoteDraft) (SessionSnapshot, error) {
	if err := entities.ValidateDraft(draft); err != nil {
		return SessionSnapshot{}, err
	}
	s, err := u.session(sessionID)
	if err != nil {
		return SessionSnapshot{}, err
	}
	s.Lock()
	defer s.Unlock()
	if s.Ended {
		return SessionSnapshot{}, ErrSessionNotFound
	}

	s.Draft = draft
	s.UpdatedAt = u.now()
	u.sessions.Save(s)

	u.log.Info("[agent][usecase] draft replaced", zap.String("session_id", s.ID))
	return snapshotOf(s), nil
}

// FinalizeQuotation mints a quotation from the current draft. Every call
// mints a new quotation.
func (u *QuoteAgentUseCase) FinalizeQuotation(ctx context.Context, sessionID string) (FinalizeResult, error) {
	s, ok := u.sessions.Get(strings.TrimSpace(sessionID))
	if !ok {
		return FinalizeResult{}, ErrNoDraft
	}
	s.Lock()
	defer s.Unlock()
	if s.Ended {
		return FinalizeResult{}, ErrNoDraft
	}

	if !s.Draft.CanFinalize() {
		return FinalizeResult{}, ErrFinalizeNotPermitted
	}

	now := u.now()
	q, err := persistQuotation(ctx, u.quotations, s.Draft, now, u.finalizeTTL)
	if err != nil {
		u.log.Error("[agent][usecase] finalize failed", zap.String("session_id", s.ID), zap.Error(err))
		return FinalizeResult{}, fmt.Errorf("save quotation: %w", err)
	}

	result := entities.SaveQuotationResult{QuotationID: q.ID, ExpiresAt: q.ExpiresAt}
	msg := u.agent.Say(
		fmt.Sprintf("Perfect! Your quotation has been saved with ID: %s\n\nIt is valid until %s. The bond request payload is ready to submit.",
			q.ID, q.ExpiresAt.Format("2006-01-02")),
		entities.ToolChip{Label: "Quotation", Value: q.ID, Status: entities.ChipSuccess},
	)
	s.Finalized = &result
	s.Append(msg)
	s.UpdatedAt = now
	u.sessions.Save(s)

	u.log.Info("[agent][usecase] quotation finalized",
		zap.String("session_id", s.ID),
		zap.String("quotation_id", q.ID),
	)
	return FinalizeResult{
		Quotation: result,
		Payload:   entities.NewBondRequestPayload(q.ID, s.Draft),
		Message:   msg,
	}, nil
}

// EndSession waits for any in-flight input on the session, then deletes it.
func (u *QuoteAgentUseCase) EndSession(ctx context.Context, sessionID string) error {
	s, err := u.session(sessionID)
	if err != nil {
		return err
	}
	s.Lock()
	defer s.Unlock()
	if s.Ended {
		return ErrSessionNotFound
	}
	s.Ended = true
	u.sessions.Delete(s.ID)
	u.log.Info("[agent][usecase] session ended", zap.String("session_id", s.ID))
	return nil
}

func (u *QuoteAgentUseCase) session(sessionID string) (*entities.ConversationSession, error) {
	s, ok := u.sessions.Get(strings.TrimSpace(sessionID))
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// snapshotOf copies s. The caller must hold the session lock.
func snapshotOf(s *entities.ConversationSession) SessionSnapshot {
	msgs := make([]entities.ChatMessage, len(s.Messages))
	copy(msgs, s.Messages)

	var finalized *entities.SaveQuotationResult
	if s.Finalized != nil {
		f := *s.Finalized
		finalized = &f
	}
	return SessionSnapshot{
		SessionID:        s.ID,
		Strategy:         s.Strategy,
		Stage:            s.State.Stage,
		SanctionDone:     s.State.SanctionDone,
		Draft:            s.Draft,
		IsComplete:       s.Draft.IsComplete(),
		CanUseRAG:        s.Draft.CanUseRAG(),
		CanFinalize:      s.Draft.CanFinalize(),
		EstimatedPremium: s.Draft.EstimatedPremium(),
		ContractAnswer:   s.Draft.ContractAnswer(),
		Messages:         msgs,
		Finalized:        finalized,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

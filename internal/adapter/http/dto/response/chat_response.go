package response

import (
	"time"

	"bond_quotation/internal/domain/entities"
	"bond_quotation/internal/usecase"
)

type DraftResponse struct {
	Draft            entities.QuoteDraft `json:"draft"`
	IsComplete       bool                `json:"isComplete"`
	CanUseRAG        bool                `json:"canUseRAG"`
	CanFinalize      bool                `json:"canFinalize"`
	EstimatedPremium float64             `json:"estimatedPremium"`
	ContractAnswer   string              `json:"contractAnswer"`
}

type SessionResponse struct {
	SessionID    string                        `json:"sessionId"`
	Strategy     string                        `json:"strategy"`
	Stage        string                        `json:"stage"`
	SanctionDone bool                          `json:"sanctionDone"`
	Draft        DraftResponse                 `json:"quote"`
	Messages     []entities.ChatMessage        `json:"messages"`
	Finalized    *entities.SaveQuotationResult `json:"finalized,omitempty"`
	CreatedAt    time.Time                     `json:"createdAt"`
	UpdatedAt    time.Time                     `json:"updatedAt"`
}

func FromSessionSnapshot(s usecase.SessionSnapshot) SessionResponse {
	msgs := s.Messages
	if msgs == nil {
		msgs = []entities.ChatMessage{}
	}
	return SessionResponse{
		SessionID:    s.SessionID,
		Strategy:     s.Strategy,
		Stage:        string(s.Stage),
		SanctionDone: s.SanctionDone,
		Draft: DraftResponse{
			Draft:            s.Draft,
			IsComplete:       s.IsComplete,
			CanUseRAG:        s.CanUseRAG,
			CanFinalize:      s.CanFinalize,
			EstimatedPremium: s.EstimatedPremium,
			ContractAnswer:   s.ContractAnswer,
		},
		Messages:  msgs,
		Finalized: s.Finalized,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type FinalizeResponse struct {
	QuotationID string                      `json:"quotationId"`
	ExpiresAt   time.Time                   `json:"expiresAt"`
	Payload     entities.BondRequestPayload `json:"payload"`
	Message     entities.ChatMessage        `json:"message"`
}

func FromFinalizeResult(r usecase.FinalizeResult) FinalizeResponse {
	return FinalizeResponse{
		QuotationID: r.Quotation.QuotationID,
		ExpiresAt:   r.Quotation.ExpiresAt,
		Payload:     r.Payload,
		Message:     r.Message,
	}
}

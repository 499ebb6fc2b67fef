package entities

import (
	"sync"
	"time"
)

// Stage identifies the piece of applicant data the agent is waiting for.
type Stage string

const (
	StageIntermediaryID    Stage = "intermediaryId"
	StageCompanyID         Stage = "companyId"
	StageCompanyAddress    Stage = "companyAddress"
	StageBusinessUnit      Stage = "businessUnit"
	StageDebtTypeCode      Stage = "debtTypeCode"
	StageDepositionCountry Stage = "depositionCountry"
	StageDuration          Stage = "duration"
	StageContractAsk       Stage = "contractAsk"
	StageContractNumber    Stage = "contractNumber"
	StageSubcontractNumber Stage = "subcontractNumber"
	StageLimitNumber       Stage = "limitNumber"
	StagePricing           Stage = "pricing"
)

// ConversationState is owned by the stage machine and reset with the draft.
type ConversationState struct {
	Stage        Stage `json:"stage"`
	SanctionDone bool  `json:"sanctionDone"`
}

func NewConversationState() ConversationState {
	return ConversationState{Stage: StageIntermediaryID}
}

// ConversationSession is one client conversation: its draft, its stage and
// the append-only message log shown by the client.
//
// Callers must hold the session lock while reading or mutating any field
// other than ID, so that one input is fully processed before the next.
type ConversationSession struct {
	mu sync.Mutex

	ID        string
	Strategy  string
	Draft     QuoteDraft
	State     ConversationState
	Messages  []ChatMessage
	Finalized *SaveQuotationResult
	CreatedAt time.Time
	UpdatedAt time.Time

	// Ended is set once the session is deleted. An ended session must not be
	// saved again.
	Ended bool
}

func NewConversationSession(id, strategy string, now time.Time) *ConversationSession {
	return &ConversationSession{
		ID:        id,
		Strategy:  strategy,
		Draft:     NewQuoteDraft(),
		State:     NewConversationState(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *ConversationSession) Lock()   { s.mu.Lock() }
func (s *ConversationSession) Unlock() { s.mu.Unlock() }

// Reset replaces the draft and the conversation state with fresh values.
// The message log is kept.
func (s *ConversationSession) Reset() {
	s.Draft = NewQuoteDraft()
	s.State = NewConversationState()
	s.Finalized = nil
}

func (s *ConversationSession) Append(msgs ...ChatMessage) {
	s.Messages = append(s.Messages, msgs...)
}

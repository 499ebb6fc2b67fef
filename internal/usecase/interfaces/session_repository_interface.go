package interfaces

import "bond_quotation/internal/domain/entities"

// ISessionRepository keeps live conversation sessions keyed by session ID.

type ISessionRepository interface {
	Save(session *entities.ConversationSession)
	Get(sessionID string) (*entities.ConversationSession, bool)
	Delete(sessionID string)
}

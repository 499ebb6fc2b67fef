package memory

import (
	"time"

	"bond_quotation/internal/domain/entities"
	"bond_quotation/internal/usecase/interfaces"

	"github.com/patrickmn/go-cache"
)

const defaultSessionCleanupInterval = 10 * time.Minute

// SessionCacheRepository keeps conversation sessions in process memory.
// A session expires ttl after it was last saved.
type SessionCacheRepository struct {
	cache *cache.Cache
}

var _ interfaces.ISessionRepository = (*SessionCacheRepository)(nil)

func NewSessionCacheRepository(ttl time.Duration) *SessionCacheRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	cleanup := defaultSessionCleanupInterval
	if ttl < cleanup {
		cleanup = ttl
	}
	return &SessionCacheRepository{
		cache: cache.New(ttl, cleanup),
	}
}

func (r *SessionCacheRepository) Save(session *entities.ConversationSession) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionCacheRepository) Get(sessionID string) (*entities.ConversationSession, bool) {
	if x, found := r.cache.Get(sessionID); found {
		s, ok := x.(*entities.ConversationSession)
		return s, ok
	}
	return nil, false
}

func (r *SessionCacheRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

// Count reports how many sessions are currently held, expired ones included
// until the next cleanup.
func (r *SessionCacheRepository) Count() int {
	return r.cache.ItemCount()
}

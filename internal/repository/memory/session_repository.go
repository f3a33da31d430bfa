package memory

import (
	"time"

	"nko-content-assistant/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps wizard sessions in process memory. Sessions
// idle longer than the expiration window are purged; the next event on
// that conversation starts a fresh session at the greeting.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

// GetOrCreate returns the session for the conversation, creating an
// idle one when none exists or the previous one expired.
func (r *SessionRepository) GetOrCreate(conversationID string) *store.Session {
	if x, found := r.cache.Get(conversationID); found {
		return x.(*store.Session)
	}
	s := store.NewSession(conversationID)
	r.cache.Set(conversationID, s, cache.DefaultExpiration)
	return s
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ConversationID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(conversationID string) (*store.Session, bool) {
	if x, found := r.cache.Get(conversationID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(conversationID string) {
	r.cache.Delete(conversationID)
}

// OnEvicted registers a callback fired when a session is deleted or
// expires, so callers can release per-conversation resources.
func (r *SessionRepository) OnEvicted(fn func(conversationID string)) {
	r.cache.OnEvicted(func(key string, _ interface{}) {
		fn(key)
	})
}

package session

import (
	"sync"

	"github.com/google/uuid"
)

// インメモリのセッションストア。
// mapの保護だけ行い、Session自体の排他はしない（1セッション1リクエスト前提）。
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// 新しいセッションを発行する
func (s *Store) New() *Session {
	sess := &Session{ID: uuid.NewString()}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// IDでセッションを取得する。無ければnil。
func (s *Store) Get(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// セッションを破棄する
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

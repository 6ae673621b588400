// Package store holds assessment sessions in memory. Sessions are anonymous
// and short-lived, so a mutex-guarded map is the whole persistence layer;
// restarting the process discards all sessions.
//
// Dependency rule: store never imports api, scoring, or assistant.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no live session matches the given token.
var ErrSessionNotFound = errors.New("store: session not found")

// Session is one in-progress assessment. Exactly one of the two answer maps
// is populated, depending on the assessment's scheme. The maps are never
// handed out directly; accessors return copies.
type Session struct {
	ID           uuid.UUID
	AnonToken    string
	AssessmentID string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	weighted map[string]int
	boolean  map[string]bool
}

// Store is the in-memory session table, keyed by anonymous token. All methods
// are safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create registers a new session for the given assessment and returns a copy
// of it. The caller generates the token; the store only indexes by it.
func (s *Store) Create(assessmentID, anonToken string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess := &Session{
		ID:           uuid.New(),
		AnonToken:    anonToken,
		AssessmentID: assessmentID,
		CreatedAt:    now,
		UpdatedAt:    now,
		weighted:     make(map[string]int),
		boolean:      make(map[string]bool),
	}
	s.sessions[anonToken] = sess
	return *sess
}

// GetByToken returns the session for the token, or ErrSessionNotFound.
func (s *Store) GetByToken(token string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return *sess, nil
}

// MergeWeighted records weighted answers for the session, overwriting any
// previous answer to the same question.
func (s *Store) MergeWeighted(token string, answers map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return ErrSessionNotFound
	}
	for id, w := range answers {
		sess.weighted[id] = w
	}
	sess.UpdatedAt = s.now()
	return nil
}

// MergeBoolean records yes/no answers for the session, overwriting any
// previous answer to the same question.
func (s *Store) MergeBoolean(token string, answers map[string]bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return ErrSessionNotFound
	}
	for id, v := range answers {
		sess.boolean[id] = v
	}
	sess.UpdatedAt = s.now()
	return nil
}

// WeightedAnswers returns a copy of the session's weighted answers.
func (s *Store) WeightedAnswers(token string) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	out := make(map[string]int, len(sess.weighted))
	for id, w := range sess.weighted {
		out[id] = w
	}
	return out, nil
}

// BooleanAnswers returns a copy of the session's yes/no answers.
func (s *Store) BooleanAnswers(token string) (map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	out := make(map[string]bool, len(sess.boolean))
	for id, v := range sess.boolean {
		out[id] = v
	}
	return out, nil
}

// AnsweredCount returns how many questions the session has answered.
func (s *Store) AnsweredCount(token string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok {
		return 0, ErrSessionNotFound
	}
	return len(sess.weighted) + len(sess.boolean), nil
}

// Delete removes the session. Deleting an unknown token is not an error: the
// end state is the same either way.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// DeleteExpired removes sessions whose last activity predates cutoff and
// returns how many were removed.
func (s *Store) DeleteExpired(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for token, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, token)
			n++
		}
	}
	return n
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

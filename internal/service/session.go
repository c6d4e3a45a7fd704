package service

import (
	"sync"

	"github.com/Kamibony/DealUpCool/internal/domain"
)

// SessionStore keeps per-user in-memory conversation state. The collection
// flow and the admin deal-creation flow own disjoint slots, so releasing one
// never disturbs the other. State is never persisted and vanishes with the
// process.
type SessionStore struct {
	mu      sync.RWMutex
	collect map[int64]*domain.CollectSession
	drafts  map[int64]*domain.DealDraft
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		collect: make(map[int64]*domain.CollectSession),
		drafts:  make(map[int64]*domain.DealDraft),
	}
}

// InstallCollect opens a collection session for the user, replacing any
// previous one
func (s *SessionStore) InstallCollect(userID int64, sess *domain.CollectSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collect[userID] = sess
}

// Collect returns the user's open collection session, or nil
func (s *SessionStore) Collect(userID int64) *domain.CollectSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect[userID]
}

// ClearCollect releases the collection session atomically
func (s *SessionStore) ClearCollect(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collect, userID)
}

// ReleaseCollectFor clears the collection session only when it belongs to
// the given deal. Cancelling one participation must not abort a questionnaire
// that is running for a different deal.
func (s *SessionStore) ReleaseCollectFor(userID, dealID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.collect[userID]; ok && sess.DealID == dealID {
		delete(s.collect, userID)
	}
}

// InstallDraft opens an admin deal draft for the user
func (s *SessionStore) InstallDraft(userID int64, draft *domain.DealDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[userID] = draft
}

// Draft returns the user's open deal draft, or nil
func (s *SessionStore) Draft(userID int64) *domain.DealDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drafts[userID]
}

// ClearDraft releases the deal draft atomically
func (s *SessionStore) ClearDraft(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, userID)
}

package memstore

import (
	"context"
	"time"

	"kuliner/internal/domain/sessions"
)

type sessionStore struct{ table }

func (s *sessionStore) Create(ctx context.Context, sess *sessions.Session) error {
	s.lock()
	defer s.unlock()

	s.sessions[sess.ID] = *sess
	return nil
}

func (s *sessionStore) Get(ctx context.Context, id string) (*sessions.Session, error) {
	s.rlock()
	defer s.runlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, sessions.ErrNotFound
	}
	return &sess, nil
}

func (s *sessionStore) Delete(ctx context.Context, id string) error {
	s.lock()
	defer s.unlock()

	if _, ok := s.sessions[id]; !ok {
		return sessions.ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *sessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	s.lock()
	defer s.unlock()

	var n int64
	for id, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n, nil
}

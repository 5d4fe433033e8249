// Package memstore keeps every domain store in process memory. It backs the
// STORE=memory development mode and the service and HTTP tests.
package memstore

import (
	"maps"
	"sync"
	"time"

	"kuliner/internal/domain/accounts"
	"kuliner/internal/domain/admindashboard"
	"kuliner/internal/domain/listings"
	"kuliner/internal/domain/reviews"
	"kuliner/internal/domain/sessions"
)

type DB struct {
	mu sync.RWMutex

	now func() time.Time

	accounts map[int64]accounts.Account
	emails   map[string]int64
	sessions map[string]sessions.Session
	listings map[int64]listings.Listing
	slugs    map[string]int64
	reviews  map[int64]reviews.Review

	nextAccountID int64
	nextListingID int64
	nextReviewID  int64
}

func New() *DB {
	return &DB{
		now:      time.Now,
		accounts: map[int64]accounts.Account{},
		emails:   map[string]int64{},
		sessions: map[string]sessions.Session{},
		listings: map[int64]listings.Listing{},
		slugs:    map[string]int64{},
		reviews:  map[int64]reviews.Review{},
	}
}

func (m *DB) Accounts() accounts.Store        { return &accountStore{table{DB: m}} }
func (m *DB) Sessions() sessions.Store        { return &sessionStore{table{DB: m}} }
func (m *DB) Listings() listings.Store        { return &listingStore{table{DB: m}} }
func (m *DB) Reviews() reviews.Store          { return &reviewStore{table{DB: m}} }
func (m *DB) Dashboard() admindashboard.Store { return &dashboardStore{table{DB: m}} }

// table is the DB as seen by one store. Stores handed out by Atomic run with
// the write lock already held and skip locking.
type table struct {
	*DB
	held bool
}

func (t table) lock() {
	if !t.held {
		t.mu.Lock()
	}
}

func (t table) unlock() {
	if !t.held {
		t.mu.Unlock()
	}
}

func (t table) rlock() {
	if !t.held {
		t.mu.RLock()
	}
}

func (t table) runlock() {
	if !t.held {
		t.mu.RUnlock()
	}
}

// Tx is the set of stores usable inside Atomic.
type Tx struct {
	Accounts accounts.Store
	Sessions sessions.Store
	Listings listings.Store
	Reviews  reviews.Store
}

// Atomic runs fn with the write lock held and restores every table to its
// prior contents if fn fails. fn must only use the stores in tx; the DB's own
// accessors block until Atomic returns.
func (m *DB) Atomic(fn func(tx *Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := struct {
		accounts map[int64]accounts.Account
		emails   map[string]int64
		sessions map[string]sessions.Session
		listings map[int64]listings.Listing
		slugs    map[string]int64
		reviews  map[int64]reviews.Review
		ids      [3]int64
	}{
		maps.Clone(m.accounts), maps.Clone(m.emails), maps.Clone(m.sessions),
		maps.Clone(m.listings), maps.Clone(m.slugs), maps.Clone(m.reviews),
		[3]int64{m.nextAccountID, m.nextListingID, m.nextReviewID},
	}

	held := table{DB: m, held: true}
	err := fn(&Tx{
		Accounts: &accountStore{held},
		Sessions: &sessionStore{held},
		Listings: &listingStore{held},
		Reviews:  &reviewStore{held},
	})
	if err != nil {
		m.accounts, m.emails, m.sessions = snap.accounts, snap.emails, snap.sessions
		m.listings, m.slugs, m.reviews = snap.listings, snap.slugs, snap.reviews
		m.nextAccountID, m.nextListingID, m.nextReviewID = snap.ids[0], snap.ids[1], snap.ids[2]
	}
	return err
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

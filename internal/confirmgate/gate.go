// Package confirmgate prevents two confirmation flows from racing on the same
// account. The gate is advisory process-local state: losing it on restart is
// harmless because the ledger's conditional updates stay authoritative.
package confirmgate

import (
	"sync"
	"time"
)

const guardTimeout = 180 * time.Second

type guard struct {
	accountID int64
	issuedAt  time.Time
	blocked   bool
}

type Gate struct {
	mu      sync.Mutex
	byUser  map[int64]*guard
	byAccnt map[int64]struct{}
	now     func() time.Time
}

func New() *Gate {
	return &Gate{
		byUser:  make(map[int64]*guard),
		byAccnt: make(map[int64]struct{}),
		now:     time.Now,
	}
}

// NewWithClock is used by tests to control guard expiry.
func NewWithClock(now func() time.Time) *Gate {
	g := New()
	g.now = now
	return g
}

// Acquire succeeds iff no guard currently holds the account, regardless of
// which user requests it.
func (g *Gate) Acquire(userID, accountID int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, held := g.byAccnt[accountID]; held {
		return false
	}

	// A user holds at most one guard: a new one supersedes the previous
	// guard and frees its account lock.
	if prev, ok := g.byUser[userID]; ok {
		delete(g.byAccnt, prev.accountID)
	}

	g.byUser[userID] = &guard{accountID: accountID, issuedAt: g.now()}
	g.byAccnt[accountID] = struct{}{}
	return true
}

// IsExpiredAndBlock returns true exactly once for a guard left unresolved past
// the timeout, marking it blocked. Later calls for the same guard return false.
func (g *Gate) IsExpiredAndBlock(userID int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	gd, ok := g.byUser[userID]
	if !ok || gd.blocked {
		return false
	}
	if g.now().Sub(gd.issuedAt) <= guardTimeout {
		return false
	}
	gd.blocked = true
	return true
}

// IsBlocked reports whether the user's guard has been marked blocked.
func (g *Gate) IsBlocked(userID int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	gd, ok := g.byUser[userID]
	return ok && gd.blocked
}

// Release frees the user's guard and the account lock however the flow ended.
func (g *Gate) Release(userID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	gd, ok := g.byUser[userID]
	if !ok {
		return
	}
	delete(g.byAccnt, gd.accountID)
	delete(g.byUser, userID)
}

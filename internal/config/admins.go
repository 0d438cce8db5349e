package config

import (
	"sort"
	"sync"
)

// AdminState holds the runtime admin roster. Main admins are fixed at
// startup; regular admins can be added and removed while running. It is
// built at startup and passed to the components that need it.
type AdminState struct {
	mu    sync.RWMutex
	main  map[int64]struct{}
	extra map[int64]struct{}
}

func NewAdminState(mainIDs, adminIDs []int64) *AdminState {
	main := make(map[int64]struct{}, len(mainIDs))
	for _, id := range mainIDs {
		main[id] = struct{}{}
	}
	extra := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		extra[id] = struct{}{}
	}
	return &AdminState{main: main, extra: extra}
}

// IsAdmin reports whether the user may handle accounts and payouts.
func (a *AdminState) IsAdmin(userID int64) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if _, ok := a.main[userID]; ok {
		return true
	}
	_, ok := a.extra[userID]
	return ok
}

// IsMainAdmin reports whether the user may manage admins and balances.
func (a *AdminState) IsMainAdmin(userID int64) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.main[userID]
	return ok
}

// Add grants admin rights; it reports false if the user already has them.
func (a *AdminState) Add(userID int64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.main[userID]; ok {
		return false
	}
	if _, ok := a.extra[userID]; ok {
		return false
	}
	a.extra[userID] = struct{}{}
	return true
}

// Remove revokes admin rights. Main admins cannot be removed; it reports
// false for them and for users who were not admins.
func (a *AdminState) Remove(userID int64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.extra[userID]; !ok {
		return false
	}
	delete(a.extra, userID)
	return true
}

// Snapshot returns the full roster, main admins included, in ascending order.
func (a *AdminState) Snapshot() []int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	ids := make([]int64, 0, len(a.main)+len(a.extra))
	for id := range a.main {
		ids = append(ids, id)
	}
	for id := range a.extra {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

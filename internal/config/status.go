package config

import "sync"

// ServiceState tracks per-service availability toggled by admins at runtime.
// It is built at startup and passed to the components that need it.
type ServiceState struct {
	mu     sync.RWMutex
	active map[string]bool
}

func NewServiceState(services ...string) *ServiceState {
	active := make(map[string]bool, len(services))
	for _, s := range services {
		active[s] = true
	}
	return &ServiceState{active: active}
}

func (s *ServiceState) IsActive(service string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active[service]
}

func (s *ServiceState) Set(service string, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[service] = active
}

func (s *ServiceState) Snapshot() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := make(map[string]bool, len(s.active))
	for k, v := range s.active {
		snap[k] = v
	}
	return snap
}

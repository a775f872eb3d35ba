package services

import "sync"

// StoreManager hands out one ProjectStore per authenticated user, replacing
// the global singleton shape with explicitly constructed instances.
type StoreManager struct {
	deps StoreDeps

	mu     sync.Mutex
	stores map[string]*ProjectStore
}

// NewStoreManager creates a StoreManager.
func NewStoreManager(deps StoreDeps) *StoreManager {
	return &StoreManager{
		deps:   deps,
		stores: make(map[string]*ProjectStore),
	}
}

// For returns the store for userID, creating it on first use.
func (m *StoreManager) For(userID string) *ProjectStore {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, ok := m.stores[userID]
	if !ok {
		store = NewProjectStore(userID, m.deps)
		m.stores[userID] = store
	}
	return store
}

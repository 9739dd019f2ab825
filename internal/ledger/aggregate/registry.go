package aggregate

import (
	"sort"
	"sync"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
)

// Registry keeps one Address ledger per watched key.
type Registry struct {
	mu        sync.RWMutex
	addresses map[model.LedgerKey]*Address
}

func NewRegistry() *Registry {
	return &Registry{addresses: make(map[model.LedgerKey]*Address)}
}

// Ensure returns the ledger of key, creating it for profile on first use.
func (r *Registry) Ensure(key model.LedgerKey, profile model.ChainProfile) *Address {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a, ok := r.addresses[key]; ok {
		return a
	}
	a := NewAddress(key, profile)
	r.addresses[key] = a
	return a
}

// Get returns the ledger of key if it was ever scanned.
func (r *Registry) Get(key model.LedgerKey) (*Address, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.addresses[key]
	return a, ok
}

// Keys lists the registered keys in lexical order.
func (r *Registry) Keys() []model.LedgerKey {
	r.mu.RLock()
	keys := make([]model.LedgerKey, 0, len(r.addresses))
	for k := range r.addresses {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.addresses)
}

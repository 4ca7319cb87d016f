// SPDX-License-Identifier: MIT
//
// File: registry.go
// Role: Variable identifier allocation and naming.
//
// Concurrency:
//   - Id allocation uses an atomic counter (no lock on the hot path).
//   - The name catalog is protected by mu (RWMutex).

package core

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// Allocator hands out fresh, never-before-used variable ids.
type Allocator interface {
	Fresh() VarID
}

// Registry allocates variable ids and optionally remembers a name per id.
// The zero value is not usable; construct with NewRegistry.
type Registry struct {
	mu     sync.RWMutex     // guards names and byName
	next   uint32           // atomic id counter; last id handed out
	names  map[VarID]string // id → name (named variables only)
	byName map[string]VarID // name → id
}

// Compile-time assertion.
var _ Allocator = (*Registry)(nil)

// NewRegistry creates an empty registry. Ids start at 1.
func NewRegistry() *Registry {
	return &Registry{
		names:  make(map[VarID]string),
		byName: make(map[string]VarID),
	}
}

// Fresh returns a new anonymous variable id.
// Complexity: O(1), lock-free.
func (r *Registry) Fresh() VarID {
	return VarID(atomic.AddUint32(&r.next, 1))
}

// NewVar returns the id registered under name, allocating it on first use.
// Calling NewVar twice with the same name yields the same id (idempotent).
//
// Errors:
//   - ErrEmptyVarName if name == "".
//
// Complexity: O(1) amortized.
func (r *Registry) NewVar(name string) (VarID, error) {
	if name == "" {
		return 0, ErrEmptyVarName
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byName[name]; ok {
		return id, nil // already registered
	}
	id := r.Fresh()
	r.names[id] = name
	r.byName[name] = id

	return id, nil
}

// MustVar is NewVar for setup code where the name is a literal; it panics on error.
func (r *Registry) MustVar(name string) VarID {
	id, err := r.NewVar(name)
	if err != nil {
		abortf("Registry.MustVar", err)
	}

	return id
}

// Lookup returns the id registered under name.
func (r *Registry) Lookup(name string) (VarID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[name]

	return id, ok
}

// Name returns the registered name of id, or id.String() for anonymous ids.
//
// Errors:
//   - ErrUnknownVariable if id was never allocated by r.
func (r *Registry) Name(id VarID) (string, error) {
	if id == 0 || uint32(id) > atomic.LoadUint32(&r.next) {
		return "", fmt.Errorf("Registry.Name(%d): %w", uint32(id), ErrUnknownVariable)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if name, ok := r.names[id]; ok {
		return name, nil
	}

	return id.String(), nil
}

// Len returns how many ids have been allocated (named and anonymous).
func (r *Registry) Len() int {
	return int(atomic.LoadUint32(&r.next))
}

// Names returns the registered names sorted ascending.
// Complexity: O(k log k) for k named variables.
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.byName))
	for name := range r.byName {
		out = append(out, name)
	}
	r.mu.RUnlock()
	sort.Strings(out)

	return out
}

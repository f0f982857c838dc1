package dispatch

import (
	"sort"
	"sync"

	"github.com/lupkg/lupkg/internal/capability"
)

// Registry maps roles to their handlers. One handler per role.
type Registry struct {
	mu       sync.RWMutex
	handlers map[capability.Role]Handler
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[capability.Role]Handler),
	}
}

// Register sets the handler for a role, replacing any previous one.
func (r *Registry) Register(role capability.Role, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[role] = h
}

// Unregister removes the handler for a role.
func (r *Registry) Unregister(role capability.Role) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, role)
}

// Get returns the handler for a role, or nil if none is registered.
func (r *Registry) Get(role capability.Role) Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.handlers[role]
}

// Has reports whether a handler is registered for the role.
func (r *Registry) Has(role capability.Role) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[role]
	return ok
}

// Roles returns the registered roles in ascending order.
func (r *Registry) Roles() []capability.Role {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roles := make([]capability.Role, 0, len(r.handlers))
	for role := range r.handlers {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// Count returns the number of registered roles.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

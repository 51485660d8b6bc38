package discord

import (
	"strings"
	"sync"
)

// ComponentHandlerFunc handles a button, select menu or modal submission
type ComponentHandlerFunc func(ctx *CommandContext) error

type route struct {
	prefix  string
	handler ComponentHandlerFunc
}

// ComponentRouter dispatches by custom id prefix. The longest matching
// prefix wins, so "laptop_code_result_" can coexist with "laptop_code_".
type ComponentRouter struct {
	mu     sync.RWMutex
	routes []route
}

// NewComponentRouter creates an empty router
func NewComponentRouter() *ComponentRouter {
	return &ComponentRouter{}
}

// Handle registers fn for every custom id starting with prefix
func (r *ComponentRouter) Handle(prefix string, fn ComponentHandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.routes {
		if r.routes[i].prefix == prefix {
			r.routes[i].handler = fn
			return
		}
	}
	r.routes = append(r.routes, route{prefix: prefix, handler: fn})
}

// Match finds the handler for a custom id
func (r *ComponentRouter) Match(customID string) (ComponentHandlerFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	best := -1
	for i, rt := range r.routes {
		if strings.HasPrefix(customID, rt.prefix) && (best < 0 || len(rt.prefix) > len(r.routes[best].prefix)) {
			best = i
		}
	}
	if best < 0 {
		return nil, false
	}
	return r.routes[best].handler, true
}

// routeLabel trims per-user suffixes so metrics stay low-cardinality
func routeLabel(customID string) string {
	parts := strings.Split(customID, "_")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, "_")
}

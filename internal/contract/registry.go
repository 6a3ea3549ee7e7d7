package contract

import (
	appErrors "github.com/yonasBSD/solidtime/internal/errors"
)

// Registry is the alias-keyed endpoint table. It is immutable once built.
type Registry struct {
	byAlias map[string]*Endpoint
	order   []*Endpoint
}

// NewRegistry indexes endpoints by alias. Aliases and (method, path) pairs
// must be unique.
func NewRegistry(endpoints ...*Endpoint) (*Registry, error) {
	r := &Registry{byAlias: make(map[string]*Endpoint, len(endpoints))}
	routes := make(map[string]string, len(endpoints))
	for _, e := range endpoints {
		if e == nil {
			return nil, appErrors.Definitionf("nil endpoint in registry")
		}
		if _, dup := r.byAlias[e.Alias]; dup {
			return nil, appErrors.Definitionf("alias %q registered twice", e.Alias)
		}
		route := e.Method + " " + e.Path
		if other, dup := routes[route]; dup {
			return nil, appErrors.Definitionf("%s is declared by both %q and %q", route, other, e.Alias)
		}
		routes[route] = e.Alias
		r.byAlias[e.Alias] = e
		r.order = append(r.order, e)
	}
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
func MustNewRegistry(endpoints ...*Endpoint) *Registry {
	r, err := NewRegistry(endpoints...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the endpoint registered under alias.
func (r *Registry) Lookup(alias string) (*Endpoint, bool) {
	e, ok := r.byAlias[alias]
	return e, ok
}

// Endpoints returns every endpoint in declaration order.
func (r *Registry) Endpoints() []*Endpoint {
	return append([]*Endpoint(nil), r.order...)
}

// Len returns the number of registered endpoints.
func (r *Registry) Len() int { return len(r.order) }

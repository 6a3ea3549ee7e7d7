package schema

import (
	appErrors "github.com/yonasBSD/solidtime/internal/errors"
)

// Registry holds named schemas. Populate it once, then share it read-only.
type Registry struct {
	schemas map[string]*Schema
	names   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// Define compiles shape and registers it under name.
func (r *Registry) Define(name string, shape Shape) (*Schema, error) {
	if name == "" {
		return nil, appErrors.Definitionf("schema name is empty")
	}
	if _, exists := r.schemas[name]; exists {
		return nil, appErrors.Definitionf("schema %q already defined", name)
	}
	s, err := compile(name, shape)
	if err != nil {
		return nil, err
	}
	r.schemas[name] = s
	r.names = append(r.names, name)
	return s, nil
}

// MustDefine is like Define but panics on error.
func (r *Registry) MustDefine(name string, shape Shape) *Schema {
	s, err := r.Define(name, shape)
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup returns the schema registered under name.
func (r *Registry) Lookup(name string) (*Schema, bool) {
	s, ok := r.schemas[name]
	return s, ok
}

// Names lists registered names in definition order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

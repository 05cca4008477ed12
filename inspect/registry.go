package inspect

import (
	"reflect"
	"sort"
	"sync"

	"github.com/layoutkit/typelayout"
	"github.com/layoutkit/typelayout/errors"
)

// Registry is an explicit opt-in table of inspectable types, keyed by their
// display name. It lets tools enumerate layouts without holding values of
// the types themselves.
type Registry struct {
	types map[string]reflect.Type
	mu    sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]reflect.Type),
	}
}

// Register adds the type T to the registry.
func Register[T any](r *Registry) error {
	return r.add(reflect.TypeOf((*T)(nil)).Elem())
}

// Add registers the dynamic type of v. Pointer values are dereferenced
// to their element type.
func (r *Registry) Add(v any) error {
	if v == nil {
		return errors.NilPointer(errors.PhaseInspect, "value cannot be nil")
	}

	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return r.add(t)
}

func (r *Registry) add(t reflect.Type) error {
	if t.Kind() != reflect.Struct {
		return errors.New(errors.PhaseInspect, errors.KindUnsupportedShape).
			TypeName(t.String()).
			Detail("%s is not an ordered-field product type", t.Kind()).
			Build()
	}

	name := t.Name()
	if name == "" {
		name = t.String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[name]; exists {
		return errors.Duplicate(errors.PhaseInspect, "type", name)
	}
	r.types[name] = t
	return nil
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the layout report for a registered type name.
func (r *Registry) Lookup(name string) (*typelayout.Report, error) {
	r.mu.RLock()
	t, ok := r.types[name]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.NotFound(errors.PhaseInspect, "type", name)
	}
	return TypeOf(t)
}

// Reports returns layout reports for every registered type, ordered by name.
func (r *Registry) Reports() ([]*typelayout.Report, error) {
	names := r.Names()
	reports := make([]*typelayout.Report, 0, len(names))
	for _, name := range names {
		report, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

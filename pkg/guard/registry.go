package guard

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps rule names to guard factories. It is intended to be
// populated during initialization and read-only afterwards; registration and
// resolution are nevertheless safe to interleave, guarded by a single
// writer lock.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry. Use Default for one preloaded with
// the builtin rules.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register associates a rule name with a guard factory. Names are unique:
// registering an existing name returns *DuplicateRuleError and leaves the
// previous registration in place.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("guard: rule name must not be empty")
	}
	if factory == nil {
		return fmt.Errorf("guard: factory for rule %q must not be nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return &DuplicateRuleError{Name: name}
	}
	r.factories[name] = factory
	return nil
}

// MustRegister is Register for init-time wiring; it panics on error.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// Has reports whether a rule name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered rule names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve instantiates the guard a token names. An unresolved name returns
// *UnknownRuleError; factory failures are reported as compile errors for the
// named rule.
func (r *Registry) Resolve(tok Token) (Guard, error) {
	r.mu.RLock()
	factory, ok := r.factories[tok.Name]
	r.mu.RUnlock()

	if !ok {
		return nil, &UnknownRuleError{Name: tok.Name}
	}
	g, err := factory(tok.Args)
	if err != nil {
		return nil, fmt.Errorf("guard: compiling rule %q: %w", tok.Name, err)
	}
	return g, nil
}

var defaultRegistry = func() *Registry {
	r := NewRegistry()
	registerBuiltins(r)
	return r
}()

// Default returns the process-wide registry preloaded with the builtin
// rules. Custom rules registered here are visible to the package-level
// Evaluate and Check helpers.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a rule to the default registry.
func Register(name string, factory Factory) error {
	return defaultRegistry.Register(name, factory)
}

package commands

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

// Registry maps command names and aliases to commands.
type Registry struct {
	mu    sync.RWMutex
	byKey map[string]Command
	order []Command // primary registrations, unsorted
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]Command)}
}

// Register adds c under its name and aliases.
// No key is added if any of them is taken.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := append([]string{c.Name()}, c.Aliases()...)
	for _, k := range keys {
		if prev, taken := r.byKey[k]; taken {
			return fmt.Errorf("command %q: name %q already used by %q", c.Name(), k, prev.Name())
		}
	}
	for _, k := range keys {
		r.byKey[k] = c
	}
	r.order = append(r.order, c)
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byKey[name]
	return c, ok
}

// All returns registered commands sorted by primary name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	out := slices.Clone(r.order)
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b Command) int {
		return cmp.Compare(a.Name(), b.Name())
	})
	return out
}

// DefaultRegistry holds the commands registered by this package's init functions.
var DefaultRegistry = NewRegistry()

// Register adds c to DefaultRegistry and panics on a name clash.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}

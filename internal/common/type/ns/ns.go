// Released under an MIT license. See LICENSE.

// Package ns provides lum's namespaces and the registry that owns them.
package ns

import (
	"sync"

	"github.com/michaelmacinnis/lum/internal/common/struct/hash"
	"github.com/michaelmacinnis/lum/internal/common/struct/slot"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/common/type/sym"
)

// Core is the namespace that qualifies prelude bindings.
const Core = "core"

// Qualify returns the symbol that identifies the prelude binding name.
func Qualify(name string) *sym.T {
	return sym.Intern(Core, name)
}

// T (ns) maps unqualified symbol names to slots.
type T struct {
	mappings *hash.T
	name     string
}

type ns = T

// Declare returns the slot for the unqualified symbol s in n. A new slot
// is left unbound.
func (n *ns) Declare(s *sym.T) *slot.T {
	v, _ := n.mappings.GetOrPut(s.Name(), sym.Intern(n.name, s.Name()), nil)

	return v
}

// Define binds the unqualified symbol s to c in n, creating a slot if needed.
// It returns the slot and the value it held before, if any.
func (n *ns) Define(s *sym.T, c *cell.T) (*slot.T, *cell.T) {
	return n.Bind(s.Name(), sym.Intern(n.name, s.Name()), c)
}

// Bind binds name to c in n. A new slot is identified by the qualified
// symbol q. Rebinding keeps the slot and replaces its value.
func (n *ns) Bind(name string, q *sym.T, c *cell.T) (*slot.T, *cell.T) {
	v, created := n.mappings.GetOrPut(name, q, c)
	if created {
		return v, nil
	}

	return v, v.Set(c)
}

// Literal returns the literal representation of the ns n.
func (n *ns) Literal() string {
	return "#<ns " + n.name + ">"
}

// Lookup returns the slot bound to the unqualified name or nil.
func (n *ns) Lookup(name string) *slot.T {
	return n.mappings.Get(name)
}

// Name returns the name of n.
func (n *ns) Name() string {
	return n.name
}

// Names returns the sorted names mapped in n.
func (n *ns) Names() []string {
	return n.mappings.Names()
}

// Registry owns every namespace. New namespaces are passed to a prelude
// function that populates them before they become visible.
type Registry struct {
	sync.Mutex
	m       map[string]*ns
	prelude func(*ns)
}

// NewRegistry creates a registry that populates new namespaces with prelude.
func NewRegistry(prelude func(*ns)) *Registry {
	return &Registry{m: map[string]*ns{}, prelude: prelude}
}

// Get returns the namespace called name, creating it if necessary.
func (r *Registry) Get(name string) *ns {
	r.Lock()
	defer r.Unlock()

	n, ok := r.m[name]
	if !ok {
		n = &ns{mappings: hash.New(), name: name}
		if r.prelude != nil {
			r.prelude(n)
		}

		r.m[name] = n
	}

	return n
}

// Find returns the namespace called name or nil if it does not exist.
func (r *Registry) Find(name string) *ns {
	r.Lock()
	defer r.Unlock()

	return r.m[name]
}

// Resolve looks s up. Unqualified symbols are looked up in current,
// qualified symbols in the namespace they name.
func (r *Registry) Resolve(current *ns, s *sym.T) *slot.T {
	if !s.Qualified() {
		return current.Lookup(s.Name())
	}

	n := r.Find(s.Namespace())
	if n == nil {
		return nil
	}

	return n.Lookup(s.Name())
}

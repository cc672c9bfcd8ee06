// Released under an MIT license. See LICENSE.

// Package hash provides lum's name to variable mapping type.
package hash

import (
	"sort"
	"sync"

	"github.com/michaelmacinnis/lum/internal/common/struct/slot"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/common/type/sym"
)

// T (hash) maps unqualified names to slots.
type T struct {
	sync.RWMutex
	m map[string]*slot.T
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]*slot.T{}}
}

// Get retrieves the slot associated with the name k in the hash h.
func (h *hash) Get(k string) *slot.T {
	if h == nil {
		return nil
	}

	h.RLock()
	defer h.RUnlock()

	return h.m[k]
}

// GetOrPut returns the slot for k, creating it with the qualified symbol q
// and the value c if there is none. The second result is true if the slot
// was created.
func (h *hash) GetOrPut(k string, q *sym.T, c *cell.T) (*slot.T, bool) {
	h.Lock()
	defer h.Unlock()

	if v, ok := h.m[k]; ok {
		return v, false
	}

	v := slot.New(q, c)
	h.m[k] = v

	return v, true
}

// Names returns the sorted names in the hash h.
func (h *hash) Names() []string {
	h.RLock()
	defer h.RUnlock()

	names := make([]string, 0, len(h.m))
	for k := range h.m {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

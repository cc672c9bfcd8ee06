// Released under an MIT license. See LICENSE.

// Package sym provides lum's interned symbols.
//
// Symbols are interned process-wide so that, once interned, two symbols are
// equal exactly when they are the same pointer. The table is never evicted.
package sym

import (
	"hash/maphash"
	"strings"
	"sync"

	"github.com/michaelmacinnis/adapted"
)

const shards = 16

// T (sym) is a possibly namespace-qualified name.
type T struct {
	ns   string
	name string
}

type sym = T

// Intern returns the unique symbol for the namespace ns and the name.
// An empty ns means the symbol is unqualified.
func Intern(ns, name string) *sym {
	k := name
	if ns != "" {
		k = ns + "/" + name
	}

	s := &table[index(k)]

	s.RLock()
	p, ok := s.m[k]
	s.RUnlock()

	if ok {
		return p
	}

	s.Lock()
	defer s.Unlock()

	if p, ok = s.m[k]; ok {
		return p
	}

	p = &sym{ns: ns, name: name}
	s.m[k] = p

	return p
}

// New parses text as "name" or "ns/name" and returns the interned symbol.
func New(text string) *sym {
	if i := strings.IndexByte(text, '/'); i > 0 && i < len(text)-1 {
		return Intern(text[:i], text[i+1:])
	}

	return Intern("", text)
}

// Equal returns true if s and o name the same symbol.
// Interned symbols are compared by identity first.
func (s *sym) Equal(o *sym) bool {
	if s == o {
		return true
	}

	if s == nil || o == nil {
		return false
	}

	return s.name == o.name && s.ns == o.ns
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return repr(s.String())
}

// Name returns the unqualified part of s.
func (s *sym) Name() string {
	return s.name
}

// Namespace returns the namespace part of s or "" if s is unqualified.
func (s *sym) Namespace() string {
	return s.ns
}

// Qualified returns true if s names a namespace.
func (s *sym) Qualified() bool {
	return s.ns != ""
}

// String returns the text of the sym s.
func (s *sym) String() string {
	if s.ns == "" {
		return s.name
	}

	return s.ns + "/" + s.name
}

// Variadic returns true if s is a rest parameter name such as "xs..." or "...".
func (s *sym) Variadic() bool {
	return strings.HasSuffix(s.name, "...")
}

type shard struct {
	sync.RWMutex
	m map[string]*sym
}

//nolint:gochecknoglobals
var (
	seed  = maphash.MakeSeed()
	table [shards]shard
)

func init() { //nolint:gochecknoinits
	for i := range table {
		table[i].m = map[string]*sym{}
	}
}

func index(k string) int {
	return int(maphash.String(seed, k) % shards)
}

func repr(s string) string {
	q := adapted.CanonicalString(s)

	if len(s) == 0 {
		return q
	}

	if Numeric(s) || s[0] == ':' || (s[0] == '$' && len(s) > 1) {
		return q
	}

	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '"', '(', ')', '\'', ';':
			return q
		}
	}

	if q[2:len(q)-1] != s {
		return q
	}

	return s
}

// Numeric returns true if the text s is read as a number rather than a symbol.
func Numeric(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	if s != "" && s[0] == '.' {
		s = s[1:]
	}

	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// Package ident provides interned identifiers.
//
// The canonicalization strategy mirrors the handle/store split used by
// cuelang's internal/anyunique.Store (map a value to a dense, comparable
// handle so that downstream maps and de Bruijn-keyed structures compare by
// handle equality rather than string equality). Identifiers here are plain
// strings already, so the store skips hashing and keys directly off the
// string, handing back a small integer handle instead of a wrapped value.
package ident

import "sync"

// ID is an interned identifier. The zero ID is never returned by Intern, so
// the zero value can be used as a sentinel "no identifier" where convenient.
type ID uint32

// Interner canonicalizes strings to dense IDs. It is safe for concurrent
// use, though the lowering pass itself never calls it concurrently (§5).
type Interner struct {
	mu    sync.Mutex
	ids   map[string]ID
	names []string // names[id-1] == the interned string for id
}

// NewInterner returns an empty interner.
func NewInterner() *Interner {
	return &Interner{ids: make(map[string]ID)}
}

// Intern returns the canonical ID for s, allocating a new one on first use.
func (in *Interner) Intern(s string) ID {
	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.ids[s]; ok {
		return id
	}
	in.names = append(in.names, s)
	id := ID(len(in.names))
	in.ids[s] = id
	return id
}

// String returns the original string for id. Panics on an unknown id, since
// any ID in circulation must have come from Intern on this same interner.
func (in *Interner) String(id ID) string {
	in.mu.Lock()
	defer in.mu.Unlock()
	if id == 0 || int(id) > len(in.names) {
		panic("ident: ID not produced by this interner")
	}
	return in.names[id-1]
}

// global is the package-level interner used by callers that don't want to
// thread one through explicitly (chalk's lowering.rs similarly leans on
// lalrpop_intern's process-global interner via the free function intern()).
var global = NewInterner()

// Intern interns s against the shared package-level interner.
func Intern(s string) ID { return global.Intern(s) }

// String resolves id against the shared package-level interner.
func String(id ID) string { return global.String(id) }

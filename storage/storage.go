// Package storage defines the interning backend for literals that are not inlined.
//
// A backend deduplicates literals by content and hands out stable node identifiers.
// Datatypes for which a backend has specialized storage are additionally stored as
// boxed native values, so reading them back does not need to parse the lexical form.
package storage

import (
	"errors"
	"sync/atomic"
)

// NodeID identifies a literal inside one backend. The zero NodeID is never assigned.
type NodeID uint64

// ErrNodeNotFound is returned by LiteralBackend for identifiers the backend did not
// assign.
var ErrNodeNotFound = errors.New("node not found")

// LiteralView describes a stored literal.
type LiteralView struct {
	// Datatype is the datatype IRI.
	Datatype string
	// Lexical is the lexical form, canonical for registered datatypes.
	Lexical string
	// Lang is the language tag of rdf:langString literals.
	Lang string
	// Boxed is the native value if the backend has specialized storage for the
	// datatype, nil otherwise.
	Boxed any
}

// Storage is the interning backend used by literals.
// Implementations must be safe for concurrent use.
type Storage interface {
	// FindOrMakeID returns the identifier of v, interning it if it is not yet stored.
	FindOrMakeID(v LiteralView) (NodeID, error)
	// FindID returns the identifier of v if it is stored.
	FindID(v LiteralView) (NodeID, bool, error)
	// HasSpecializedStorageFor reports whether values of the datatype are boxed.
	HasSpecializedStorageFor(datatype string) bool
	// LiteralBackend returns the stored view of id.
	LiteralBackend(id NodeID) (LiteralView, error)
}

type holder struct {
	s Storage
}

var defaultStorage atomic.Pointer[holder]

// Default returns the process default backend. Unless replaced with SetDefault it is
// an in-memory backend created on first use.
func Default() Storage {
	if h := defaultStorage.Load(); h != nil {
		return h.s
	}
	defaultStorage.CompareAndSwap(nil, &holder{s: NewMemory()})
	return defaultStorage.Load().s
}

// SetDefault replaces the process default backend. Literals already interned in the
// previous default keep referring to it.
func SetDefault(s Storage) {
	defaultStorage.Store(&holder{s: s})
}

package storage

import (
	"fmt"
	"sync"
)

// DefaultSpecialized lists the datatypes a memory backend boxes unless configured
// otherwise.
var DefaultSpecialized = []string{
	"http://www.w3.org/2001/XMLSchema#integer",
	"http://www.w3.org/2001/XMLSchema#decimal",
	"http://www.w3.org/2001/XMLSchema#double",
}

// Memory is an in-memory, content addressed backend.
type Memory struct {
	specialized map[string]bool

	mu    sync.RWMutex
	byKey map[Key]NodeID
	nodes []LiteralView
}

// MemoryOption configures a Memory backend.
type MemoryOption func(*Memory)

// WithSpecialized sets the datatypes whose values are boxed.
func WithSpecialized(iris ...string) MemoryOption {
	return func(m *Memory) {
		m.specialized = make(map[string]bool, len(iris))
		for _, iri := range iris {
			m.specialized[iri] = true
		}
	}
}

// NewMemory returns an empty memory backend.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{byKey: map[Key]NodeID{}}
	WithSpecialized(DefaultSpecialized...)(m)
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Memory) FindOrMakeID(v LiteralView) (NodeID, error) {
	k := KeyOf(v)

	m.mu.Lock()
	defer m.mu.Unlock()

	if id, ok := m.byKey[k]; ok {
		return id, nil
	}
	if !m.specialized[v.Datatype] {
		v.Boxed = nil
	}
	m.nodes = append(m.nodes, v)
	id := NodeID(len(m.nodes))
	m.byKey[k] = id
	return id, nil
}

func (m *Memory) FindID(v LiteralView) (NodeID, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byKey[KeyOf(v)]
	return id, ok, nil
}

func (m *Memory) HasSpecializedStorageFor(datatype string) bool {
	return m.specialized[datatype]
}

func (m *Memory) LiteralBackend(id NodeID) (LiteralView, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if id == 0 || int(id) > len(m.nodes) {
		return LiteralView{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	return m.nodes[id-1], nil
}

// Len returns the number of stored literals.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.nodes)
}

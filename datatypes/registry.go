package datatypes

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

// Entry is everything the registry knows about one datatype.
// Entries are created on registration and never mutated afterwards.
type Entry struct {
	ID          ID
	Datatype    Datatype
	Conversions *ConversionTable

	// Optional capabilities, nil if absent.
	Comparer Comparer
	EBV      EffectiveBooleaner
	Numeric  *NumericOps
	Inliner  Inliner
}

// NewEntry builds the entry for dt, detecting its capabilities.
func NewEntry(dt Datatype) (*Entry, error) {
	conversions, err := NewConversionTable(dt)
	if err != nil {
		return nil, err
	}
	e := &Entry{
		ID:          IDOf(dt.IRI()),
		Datatype:    dt,
		Conversions: conversions,
	}
	if c, ok := dt.(Comparer); ok {
		e.Comparer = c
	}
	if b, ok := dt.(EffectiveBooleaner); ok {
		e.EBV = b
	}
	if i, ok := dt.(Inliner); ok {
		e.Inliner = i
	}
	switch n := dt.(type) {
	case NumericImpl:
		e.Numeric = &NumericOps{impl: n}
	case NumericStub:
		hops, err := stubHops(dt, n.NumericImplType())
		if err != nil {
			return nil, err
		}
		e.Numeric = &NumericOps{hops: hops}
	}
	return e, nil
}

func stubHops(dt, impl Datatype) (int, error) {
	if _, ok := impl.(NumericImpl); !ok {
		return 0, fmt.Errorf("%w: %s forwards to %s", ErrInvalidStub, dt.IRI(), impl.IRI())
	}
	hops := 0
	for current := dt; current.IRI() != impl.IRI(); hops++ {
		st, ok := current.(Subtype)
		if !ok {
			return 0, fmt.Errorf("%w: %s is not a supertype of %s", ErrInvalidStub, impl.IRI(), dt.IRI())
		}
		current = st.Supertype().Target
	}
	return hops, nil
}

// IsNumeric reports whether the datatype has numeric operations.
func (e *Entry) IsNumeric() bool {
	return e.Numeric != nil
}

type snapshot struct {
	// fixed[i] holds the datatype with fixed identity i+1.
	fixed [DynamicOffset]*Entry
	// dynamic is sorted by IRI.
	dynamic []*Entry
}

func (s *snapshot) find(id ID) *Entry {
	if f, ok := id.Fixed(); ok {
		if int(f) > DynamicOffset {
			return nil
		}
		return s.fixed[f-1]
	}
	i, found := s.search(id.IRI())
	if !found {
		return nil
	}
	return s.dynamic[i]
}

func (s *snapshot) search(iri string) (int, bool) {
	return slices.BinarySearchFunc(s.dynamic, iri, func(e *Entry, iri string) int {
		return strings.Compare(e.ID.IRI(), iri)
	})
}

// Registry maps datatype identities to their entries.
//
// Fixed identities are looked up by index, dynamic identities by binary search over a
// segment sorted by IRI. Lookups work on an immutable snapshot and never block;
// registrations copy the snapshot and publish the copy. Registrations are serialized,
// so a Registry is safe for concurrent use by readers and writers.
type Registry struct {
	mu       sync.Mutex
	snapshot atomic.Pointer[snapshot]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.snapshot.Store(&snapshot{})
	return r
}

// AddFixed installs dt at the reserved slot of the fixed identity id.
// It fails if the slot is already occupied or id does not belong to dt.
func (r *Registry) AddFixed(dt Datatype, id FixedID) error {
	if id == 0 || int(id) > DynamicOffset {
		return fmt.Errorf("%w: %d", ErrNotFixed, id)
	}
	if id.IRI() != dt.IRI() {
		return fmt.Errorf("%w: %s for %s", ErrIRIMismatch, dt.IRI(), id)
	}
	entry, err := NewEntry(dt)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.snapshot.Load()
	if old.fixed[id-1] != nil {
		return fmt.Errorf("%w: %s", ErrSlotOccupied, id)
	}
	next := *old
	next.fixed[id-1] = entry
	r.snapshot.Store(&next)
	return nil
}

// Add registers dt and returns its identity.
//
// If a datatype with the same IRI is already registered it is replaced: the last
// registration wins. Replacing a datatype does not validate that the new one is
// consistent with the old one.
func (r *Registry) Add(dt Datatype) (ID, error) {
	entry, err := NewEntry(dt)
	if err != nil {
		return ID{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.snapshot.Load()
	next := *old

	if f, ok := entry.ID.Fixed(); ok {
		if old.fixed[f-1] != nil {
			slog.Warn("replacing registered datatype", "iri", dt.IRI())
		}
		next.fixed[f-1] = entry
		r.snapshot.Store(&next)
		return entry.ID, nil
	}

	i, found := old.search(dt.IRI())
	if found {
		slog.Warn("replacing registered datatype", "iri", dt.IRI())
		next.dynamic = slices.Clone(old.dynamic)
		next.dynamic[i] = entry
	} else {
		next.dynamic = slices.Insert(slices.Clip(old.dynamic), i, entry)
	}
	r.snapshot.Store(&next)
	return entry.ID, nil
}

// project looks up id and applies f to its entry. It reports false if the datatype is
// not registered; the projection of a registered datatype may still be absent.
func project[T any](r *Registry, id ID, f func(*Entry) T) (T, bool) {
	e := r.snapshot.Load().find(id)
	if e == nil {
		var zero T
		return zero, false
	}
	return f(e), true
}

// Entry returns the entry registered for id.
func (r *Registry) Entry(id ID) (*Entry, bool) {
	return project(r, id, func(e *Entry) *Entry { return e })
}

// Datatype returns the datatype registered for id.
func (r *Registry) Datatype(id ID) (Datatype, bool) {
	return project(r, id, func(e *Entry) Datatype { return e.Datatype })
}

// Parser returns the lexical form parser of id.
func (r *Registry) Parser(id ID) (func(lexical string) (Value, error), bool) {
	return project(r, id, func(e *Entry) func(string) (Value, error) { return e.Datatype.Parse })
}

// Numeric returns the numeric operations of id, nil if the datatype is not numeric.
func (r *Registry) Numeric(id ID) (*NumericOps, bool) {
	return project(r, id, func(e *Entry) *NumericOps { return e.Numeric })
}

// EffectiveBooleanValue returns the effective boolean value capability of id, nil if
// the datatype has none.
func (r *Registry) EffectiveBooleanValue(id ID) (EffectiveBooleaner, bool) {
	return project(r, id, func(e *Entry) EffectiveBooleaner { return e.EBV })
}

// Comparer returns the comparison capability of id, nil if values are not comparable.
func (r *Registry) Comparer(id ID) (Comparer, bool) {
	return project(r, id, func(e *Entry) Comparer { return e.Comparer })
}

// Inliner returns the inlining capability of id, nil if values are never inlined.
func (r *Registry) Inliner(id ID) (Inliner, bool) {
	return project(r, id, func(e *Entry) Inliner { return e.Inliner })
}

// Conversions returns the conversion table of id.
func (r *Registry) Conversions(id ID) (*ConversionTable, bool) {
	return project(r, id, func(e *Entry) *ConversionTable { return e.Conversions })
}

// IDs returns the identities of all registered datatypes, fixed ones first.
func (r *Registry) IDs() []ID {
	s := r.snapshot.Load()
	var ids []ID
	for _, e := range s.fixed {
		if e != nil {
			ids = append(ids, e.ID)
		}
	}
	for _, e := range s.dynamic {
		ids = append(ids, e.ID)
	}
	return ids
}

// CommonConversion returns the conversions of two datatypes to their closest common
// datatype.
func (r *Registry) CommonConversion(lhs, rhs ID) (CommonConversion, bool) {
	l, ok := r.Entry(lhs)
	if !ok {
		return CommonConversion{}, false
	}
	rr, ok := r.Entry(rhs)
	if !ok {
		return CommonConversion{}, false
	}
	return commonConversion(l.Conversions, rr.Conversions, 0, 0)
}

// CommonNumericConversion is like CommonConversion, but the walk of a numeric stub
// starts at the datatype implementing its arithmetic. Both entries must be numeric.
func (r *Registry) CommonNumericConversion(lhs, rhs *Entry) (CommonConversion, bool) {
	return commonConversion(lhs.Conversions, rhs.Conversions, lhs.Numeric.StubHops(), rhs.Numeric.StubHops())
}

// NumericImplConversion returns the conversion of a numeric stub to the datatype
// implementing its arithmetic. For an implementation it is the identity.
func (r *Registry) NumericImplConversion(e *Entry) Conversion {
	return e.Conversions.At(e.Numeric.StubHops(), 0)
}

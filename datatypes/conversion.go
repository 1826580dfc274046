package datatypes

import "fmt"

// Conversion converts values of a datatype to the Target datatype and back.
type Conversion struct {
	Target  ID
	Convert func(Value) Value
	Inverse func(Value) (Value, error)
}

func identityConversion(id ID) Conversion {
	return Conversion{
		Target:  id,
		Convert: func(v Value) Value { return v },
		Inverse: func(v Value) (Value, error) { return v, nil },
	}
}

// then appends the edge e to c.
func (c Conversion) then(e Edge) Conversion {
	convert, inverse := c.Convert, c.Inverse
	return Conversion{
		Target: IDOf(e.Target.IRI()),
		Convert: func(v Value) Value {
			return e.Convert(convert(v))
		},
		Inverse: func(v Value) (Value, error) {
			w, err := e.Inverse(v)
			if err != nil {
				return nil, err
			}
			return inverse(w)
		},
	}
}

// ConversionTable lists every datatype a datatype can be converted to.
//
// The table is organized in levels. Level 0 starts with the identity conversion,
// level k starts with the conversion to the k-th supertype. Each level continues with
// the transitive numeric promotions of the datatype the level starts with. The number
// of levels is the subtype rank, the length of a level its promotion rank.
//
// For xsd:int the table is
//
//	0: int
//	1: long
//	2: integer
//	3: decimal, float, double
type ConversionTable struct {
	levels [][]Conversion
}

// NewConversionTable derives the conversion table of dt from its Subtype and
// Promotable declarations.
func NewConversionTable(dt Datatype) (*ConversionTable, error) {
	t := &ConversionTable{}
	seen := map[string]bool{}

	base := identityConversion(IDOf(dt.IRI()))
	current := dt
	for {
		if seen[current.IRI()] {
			return nil, fmt.Errorf("%w: %s is its own supertype", ErrCyclicHierarchy, current.IRI())
		}
		seen[current.IRI()] = true

		level := []Conversion{base}
		promoted := map[string]bool{current.IRI(): true}
		chain := []Datatype{current}
		conv, p := base, current
		for {
			pr, ok := p.(Promotable)
			if !ok {
				break
			}
			e := pr.Promotion()
			if promoted[e.Target.IRI()] {
				return nil, fmt.Errorf("%w: %s promotes to itself", ErrCyclicHierarchy, e.Target.IRI())
			}
			promoted[e.Target.IRI()] = true
			conv = directConversion(chain, level, e.Target.IRI(), conv.then(e))
			chain = append(chain, e.Target)
			level = append(level, conv)
			p = e.Target
		}
		t.levels = append(t.levels, level)

		st, ok := current.(Subtype)
		if !ok {
			break
		}
		e := st.Supertype()
		base = base.then(e)
		current = e.Target
	}
	return t, nil
}

// directConversion returns the conversion to target from the first datatype of chain
// that promotes to it directly, or composed if there is none. level holds the
// conversions to the datatypes of chain.
func directConversion(chain []Datatype, level []Conversion, target string, composed Conversion) Conversion {
	for i, dt := range chain[:len(chain)-1] {
		dp, ok := dt.(DirectPromotable)
		if !ok {
			continue
		}
		if e, ok := dp.DirectPromotion(target); ok {
			return level[i].then(e)
		}
	}
	return composed
}

// SubtypeRank returns the number of levels.
func (t *ConversionTable) SubtypeRank() int {
	return len(t.levels)
}

// PromotionRank returns the number of conversions at level s.
func (t *ConversionTable) PromotionRank(s int) int {
	return len(t.levels[s])
}

// At returns the conversion at level s, promotion offset p.
func (t *ConversionTable) At(s, p int) Conversion {
	return t.levels[s][p]
}

// Targets returns the conversion targets level by level.
func (t *ConversionTable) Targets() [][]ID {
	targets := make([][]ID, len(t.levels))
	for s, level := range t.levels {
		for _, c := range level {
			targets[s] = append(targets[s], c.Target)
		}
	}
	return targets
}

// CommonConversion converts two values to a common datatype. LHS and RHS always
// correspond to the argument order of the call that produced the conversion.
type CommonConversion struct {
	Target ID
	LHS    Conversion
	RHS    Conversion
}

// commonConversion finds the common datatype of two conversion tables. The walk of each
// table starts at the given level.
//
// Both tables are aligned at their top level. They are then walked down in lock-step
// and at each level the conversion targets are compared. When the promotion ranks of
// the two levels differ the longer level is entered at an offset so that both walks end
// on the same promotion target.
func commonConversion(lhs, rhs *ConversionTable, lhsInit, rhsInit int) (CommonConversion, bool) {
	if lhs.SubtypeRank()-lhsInit < rhs.SubtypeRank()-rhsInit {
		return findCommonConversion(lhs, rhs, lhsInit, rhsInit)
	}
	c, ok := findCommonConversion(rhs, lhs, rhsInit, lhsInit)
	if ok {
		c.LHS, c.RHS = c.RHS, c.LHS
	}
	return c, ok
}

// findCommonConversion requires lesser to have the smaller subtype rank.
func findCommonConversion(lesser, greater *ConversionTable, lesserInit, greaterInit int) (CommonConversion, bool) {
	lesserRank := lesser.SubtypeRank() - lesserInit
	greaterRank := greater.SubtypeRank() - greaterInit

	lesserS := lesserInit
	greaterS := greaterInit + greaterRank - lesserRank

	for lesserS < lesser.SubtypeRank() && greaterS < greater.SubtypeRank() {
		lesserP := lesser.PromotionRank(lesserS)
		greaterP := greater.PromotionRank(greaterS)

		var lesserOff, greaterOff int
		if lesserP < greaterP {
			greaterOff = greaterP - lesserP
		} else {
			lesserOff = lesserP - greaterP
		}

		if lesserOff < lesserP && greaterOff < greaterP {
			l := lesser.At(lesserS, lesserOff)
			g := greater.At(greaterS, greaterOff)
			if l.Target == g.Target {
				return CommonConversion{Target: l.Target, LHS: l, RHS: g}, true
			}
		}

		lesserS++
		greaterS++
	}
	return CommonConversion{}, false
}

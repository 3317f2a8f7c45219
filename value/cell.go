package value

import "fmt"

// Cell is the per-owner value container the parser, environment binder
// and validator all write into (spec.md §3, "ValueCell"). One Cell is
// created fresh per parse invocation.
type Cell struct {
	Owner  string
	Arity  Arity
	Source Source

	// Raw holds one entry per occurrence; for ArityFixed each entry is a
	// tuple of n raw strings, for everything else it is a 1-element slice.
	Raw [][]string

	scalar    any
	list      []any
	set       []any
	setKeys   map[string]struct{} // de-dup key for ArritySet/ArityKeyValue
	count     int
	occurrences int
}

// NewCell returns a fresh, Missing-sourced cell for the given owner/arity.
func NewCell(owner string, arity Arity) *Cell {
	return &Cell{Owner: owner, Arity: arity, Source: SourceMissing}
}

// Occurrences returns the number of times the owner was bound. For
// collections this is the number of append operations, not the number
// of elements (a single occurrence of a fixed(n) option still counts
// as one occurrence).
func (c *Cell) Occurrences() int { return c.occurrences }

// Present reports whether the cell's source counts as operator-supplied
// for constraint-presence purposes (spec.md §4.7).
func (c *Cell) Present() bool { return c.Source.Present() }

// Bound reports whether the cell holds any value at all (occurrence
// count > 0, or source is Default/Environment/User). A collection that
// was explicitly bound to zero elements is still "bound" and is
// distinguishable from Missing, per the ValueCell invariants in §3.
func (c *Cell) Bound() bool { return c.Source != SourceMissing }

func (c *Cell) canTransitionTo(next Source) bool {
	return next.rank() >= c.Source.rank()
}

// setSource advances the cell's source, enforcing the monotonic
// transition invariant (spec.md invariant 3). Attempting to regress is
// a programming error in the core itself, not a user-facing condition,
// so it panics rather than returning an error.
func (c *Cell) setSource(next Source) {
	if !c.canTransitionTo(next) {
		panic(fmt.Sprintf("value: illegal source transition for %q: %s -> %s", c.Owner, c.Source, next))
	}
	c.Source = next
}

// BindScalar overwrites the scalar value. Re-binding (e.g. a later
// occurrence of the same switch) keeps the source at its current rank
// if it does not advance it.
func (c *Cell) BindScalar(v any, src Source) {
	c.setSource(src)
	c.scalar = v
	c.occurrences++
	c.Raw = append(c.Raw, []string{fmt.Sprint(v)})
}

// BindScalarRaw is like BindScalar but records the exact raw tokens
// supplied (needed because some converters are lossy, e.g. trimming).
func (c *Cell) BindScalarRaw(v any, raw []string, src Source) {
	c.setSource(src)
	c.scalar = v
	c.occurrences++
	c.Raw = append(c.Raw, raw)
}

// Scalar returns the scalar value, or nil if unbound.
func (c *Cell) Scalar() any { return c.scalar }

// AppendList appends one element to a list-arity cell, preserving order.
func (c *Cell) AppendList(v any, raw []string, src Source) {
	c.setSource(src)
	c.list = append(c.list, v)
	c.occurrences++
	c.Raw = append(c.Raw, raw)
}

// List returns the accumulated elements of a list-arity cell.
func (c *Cell) List() []any { return c.list }

// AppendSet appends v to a set-arity cell if key has not been seen
// before; the first occurrence of a given key wins, per spec.md §4.1.
// For non-keyvalue sets, key is the element's own string form.
func (c *Cell) AppendSet(v any, key string, raw []string, src Source) {
	c.setSource(src)
	c.occurrences++
	c.Raw = append(c.Raw, raw)
	if c.setKeys == nil {
		c.setKeys = make(map[string]struct{})
	}
	if _, seen := c.setKeys[key]; seen {
		return
	}
	c.setKeys[key] = struct{}{}
	c.set = append(c.set, v)
}

// Set returns the accumulated elements of a set-arity cell, in
// first-seen order.
func (c *Cell) Set() []any { return c.set }

// IncrementCount bumps a count-arity cell (e.g. -vvv).
func (c *Cell) IncrementCount(src Source) {
	c.setSource(src)
	c.count++
	c.occurrences++
	c.Raw = append(c.Raw, nil)
}

// Count returns the accumulated count.
func (c *Cell) Count() int { return c.count }

// Len reports the logical size of a collection cell (list/set/keyvalue
// element count), used by per-collection validators ({count}/{value}).
func (c *Cell) Len() int {
	switch c.Arity {
	case ArityList:
		return len(c.list)
	case ArritySet, ArityKeyValue:
		return len(c.set)
	case ArityCount:
		return c.count
	default:
		if c.Bound() {
			return 1
		}
		return 0
	}
}

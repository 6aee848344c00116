package schema

import (
	der "github.com/havregryn/strictder"
	"golang.org/x/exp/constraints"
)

/*
enum.go adapts the teacher's Enumeration closure (constr_on.go) to this
package's decode-only Node model. The teacher's version is a symmetric
encode/decode value constraint that rejects any integer outside a
declared set of named members; here the same K/V pairing instead
labels which member an ENUMERATED value decoded off the wire, with
decoding itself still left to the plain INTEGER wire rule X.690 gives
ENUMERATED (§8.4).
*/

// Enumeration names the valid members of an ENUMERATED type, mapping
// each underlying integer value of type K to its symbolic name V. K is
// constrained to the integer kinds because DER's ENUMERATED value is
// always a whole number; V is any string-like type so callers can use
// a defined type for their member names instead of a bare string.
type Enumeration[K constraints.Integer, V ~string] map[K]V

// Lookup resolves n to its symbolic name, reporting whether n is a
// declared member.
func (e Enumeration[K, V]) Lookup(n K) (V, bool) {
	v, ok := e[n]
	return v, ok
}

// Node builds a schema.Node for the ENUMERATED type whose decoded
// *big.Int value must name a declared member of e; for any other value
// Build fails, and der.Decode returns that error as it is (this
// package's own error type, not a der.DecodeError).
func (e Enumeration[K, V]) Node() *Node {
	return &Node{
		kind: der.KindEnumerated,
		build: func(c der.Content) (any, error) {
			if c.Int == nil || !c.Int.IsInt64() {
				return nil, mkerr("schema: ENUMERATED value out of range for this member set")
			}
			n := K(c.Int.Int64())
			name, ok := e.Lookup(n)
			if !ok {
				return nil, mkerr("schema: ENUMERATED value has no declared member")
			}
			return name, nil
		},
	}
}

// member is a helper for building an Enumeration literal from a slice
// of (value, name) pairs when K isn't conveniently used as a Go map
// key literal inline, e.g. when it's produced by a loop.
type member[K constraints.Integer, V ~string] struct {
	Value K
	Name  V
}

// NewEnumeration builds an Enumeration from a list of members, useful
// when they're assembled programmatically rather than as a map
// literal.
func NewEnumeration[K constraints.Integer, V ~string](members ...member[K, V]) Enumeration[K, V] {
	e := make(Enumeration[K, V], len(members))
	for _, m := range members {
		e[m.Value] = m.Name
	}
	return e
}

// Member constructs one (value, name) pair for NewEnumeration.
func Member[K constraints.Integer, V ~string](value K, name V) member[K, V] {
	return member[K, V]{Value: value, Name: name}
}

package schema

import der "github.com/havregryn/strictder"

/*
repeated.go implements the SEQUENCE OF / SET OF schema constructors.
Grounded on the teacher's own slice-of-primitive handling in
marshalComposite (runtime.go), which walks a Go slice field element by
element against a single component codec; here that single component
schema is supplied explicitly rather than derived from a Go element
type, since der.Schema's Component() is the only thing the core
dispatch core ever asks for.
*/

func repeated(kind der.Kind, component der.Schema, min, max int) *Node {
	hasSize := min >= 0 || max >= 0
	if min < 0 {
		min = 0
	}
	return &Node{
		kind:      kind,
		component: component,
		hasSize:   hasSize,
		min:       min,
		max:       max,
		build: func(c der.Content) (any, error) {
			return c.Children, nil
		},
	}
}

// SequenceOf returns a SEQUENCE OF schema node whose elements each
// decode against component. A negative min or max means that bound is
// unconstrained; pass (-1, -1) for no size constraint at all.
func SequenceOf(component der.Schema, min, max int) *Node {
	return repeated(der.KindSequenceOf, component, min, max)
}

// SetOf returns a SET OF schema node. In addition to whatever size
// constraint is given, DER also requires the wire's raw TLV bytes to
// be in ascending lexicographic order (spec.md §4.5); the dispatch
// core enforces that unconditionally for every SET OF node.
func SetOf(component der.Schema, min, max int) *Node {
	return repeated(der.KindSetOf, component, min, max)
}

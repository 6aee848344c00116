package schema

import der "github.com/havregryn/strictder"

/*
choice.go implements the CHOICE schema constructor. Grounded on the
teacher's choice.go concept of a tag-indexed alternative set
(errorAmbiguousChoice/errorNoChoiceForType in its err.go guard the same
kind of lookup on the encode side); here the lookup is supplied
directly as a map keyed by (class, number) rather than derived by
probing a Go interface value's dynamic type, since decode must resolve
the alternative from the wire tag alone, before any Go value exists.
*/

// Alternative pairs one CHOICE alternative's wire tag with its schema.
type Alternative struct {
	Class  int
	Number int
	Schema der.Schema
}

// Choice returns a CHOICE schema node resolving by (class, number)
// among alts. A CHOICE has no wrapping TLV of its own (spec.md §4.5):
// whichever alternative matches becomes the decoded value directly, so
// Choice's own Build is never invoked by the dispatch core.
func Choice(alts ...Alternative) *Node {
	m := make(map[der.TagKey]der.Schema, len(alts))
	for _, a := range alts {
		m[der.TagKey{Class: a.Class, Number: a.Number}] = a.Schema
	}
	return &Node{
		kind:         der.KindChoice,
		alternatives: m,
		build: func(der.Content) (any, error) {
			return nil, mkerr("schema: CHOICE node's Build is never called directly")
		},
	}
}

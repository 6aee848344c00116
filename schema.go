package der

import (
	"math/big"
	"time"
)

/*
schema.go defines the Schema Adapter surface (§4.6 of SPEC_FULL.md):
the one interface through which the dispatch core consults the
external schema object model. The concrete schema object model itself
(named types, default values, named bits, CHOICE alternatives, value
construction) is out of scope for this package per spec.md §1 — it is
implemented as a companion package ("schema", with per-kind
constructors and reflect-driven struct derivation)
that satisfies this interface, the way pyasn1's univ/char/namedtype
classes (see original_source/python/pyasn1_fasder) stand apart from
the native decoder that drives them.
*/

// TagKey identifies a CHOICE alternative or a tag overlay by (class,
// number), ignoring form — DER's tag comparison never looks at form
// to decide *which* schema node a TLV belongs to, only whether the
// form it finds matches what that node requires.
type TagKey struct {
	Class  int
	Number int
}

// Overlay is one IMPLICIT or EXPLICIT tag applied to a schema node. A
// node may carry more than one; Overlays() returns them outermost
// first, matching the wire order they are applied in (§4.5, "A field
// ... may carry multiple overlays; they are applied outermost-first").
type Overlay struct {
	Explicit bool
	Class    int
	Number   int
}

// Field is one named member of a SEQUENCE or SET schema node.
type Field struct {
	Name     string
	Schema   Schema
	Optional bool
}

// NamedBit names a single BIT STRING position, used to enforce the
// named-bit minimality rule (§4.4 "BIT STRING").
type NamedBit struct {
	Name     string
	Position int
}

// Content carries the validated payload of one primitive TLV (or the
// decoded children of a constructed one) up to the schema's Build
// method, which turns it into a caller-facing value. Only the fields
// relevant to a given Kind are populated.
type Content struct {
	Kind Kind

	Bool bool
	Int  *big.Int

	// Bytes holds OCTET STRING content verbatim, or BIT STRING value
	// octets (UnusedBits describes the trailing pad in that case).
	Bytes      []byte
	UnusedBits int

	OID []uint64

	Str  string
	Time time.Time

	// Children holds decoded element values for SEQUENCE OF / SET OF,
	// and Fields holds decoded field values, keyed by name, for
	// SEQUENCE / SET. Raw holds the full TLV bytes (header + content)
	// for an ANY node.
	Children []any
	Fields   map[string]any
	Raw      []byte
}

/*
Schema is the adapter surface the dispatch core speaks through. A
concrete implementation describes one ASN.1 type: its Kind, any tag
overlay, OPTIONAL/DEFAULT status, size constraints for SEQUENCE
OF/SET OF, named types for SEQUENCE/SET, the element type for
SEQUENCE OF/SET OF, named bits for BIT STRING, and CHOICE alternatives.
*/
type Schema interface {
	// Kind reports the node's ASN.1 kind.
	Kind() Kind

	// Overlays reports any IMPLICIT/EXPLICIT tag overlays, outermost
	// first. A nil/empty slice means the node uses its natural
	// universal tag.
	Overlays() []Overlay

	// Optional reports the node's own OPTIONAL flag. The dispatch core
	// does not consult it: whether a SEQUENCE/SET field may be absent
	// is decided by Field.Optional (or a DEFAULT) alone.
	Optional() bool

	// HasDefault reports whether the node carries a DEFAULT value,
	// and DefaultEqual reports whether a just-decoded value equals
	// that default (§4.5 DEFAULT enforcement). Equality semantics are
	// type-specific: the schema package normalizes before comparing
	// (e.g. UTCTime compares normalized time value, not raw text).
	HasDefault() bool
	DefaultEqual(value any) bool

	// SizeConstraint reports a declared element-count bound for
	// SEQUENCE OF / SET OF. ok is false when no bound applies.
	SizeConstraint() (min, max int, ok bool)

	// Fields returns the ordered named types of a SEQUENCE/SET node.
	Fields() []Field

	// Component returns the element schema of a SEQUENCE OF/SET OF
	// node.
	Component() Schema

	// NamedBits returns the named-bit table of a BIT STRING node, or
	// nil if none was declared.
	NamedBits() []NamedBit

	// Alternatives returns a CHOICE node's alternatives indexed by
	// (class, number).
	Alternatives() map[TagKey]Schema

	// Build constructs the caller-facing value from validated
	// content. Implementations for the "any" kind (§4.6 "Recognise an
	// 'any' schema") ignore everything but content.Raw.
	Build(content Content) (any, error)
}

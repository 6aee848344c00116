package schema

import der "github.com/havregryn/strictder"

/*
node.go defines Node, the one concrete type backing every schema value
this package hands to der.Decode. Node implements der.Schema directly
(no interface-per-kind hierarchy) the same way the teacher's own
internal codec registry keys everything off a single Options-bearing
value rather than a type per ASN.1 kind (see opts.go/class.go); the
difference here is Node also carries the data der.Schema needs at
decode time (fields, component, named bits, alternatives, a builder).
*/

// Node is the schema package's concrete der.Schema implementation.
// Callers build one with the per-kind constructors in this package
// (Boolean, Integer, OctetString, ...) rather than populating it by
// hand.
type Node struct {
	kind     der.Kind
	overlays []der.Overlay
	optional bool

	hasDefault bool
	defaultVal any
	defaultEq  func(decoded any) bool

	hasSize  bool
	min, max int

	fields       []der.Field
	component    der.Schema
	namedBits    []der.NamedBit
	alternatives map[der.TagKey]der.Schema

	build func(der.Content) (any, error)
}

func (n *Node) Kind() der.Kind          { return n.kind }
func (n *Node) Overlays() []der.Overlay { return n.overlays }
func (n *Node) Optional() bool          { return n.optional }
func (n *Node) HasDefault() bool        { return n.hasDefault }

func (n *Node) DefaultEqual(decoded any) bool {
	if n.defaultEq == nil {
		return false
	}
	return n.defaultEq(decoded)
}

func (n *Node) SizeConstraint() (int, int, bool) { return n.min, n.max, n.hasSize }
func (n *Node) Fields() []der.Field               { return n.fields }
func (n *Node) Component() der.Schema             { return n.component }
func (n *Node) NamedBits() []der.NamedBit         { return n.namedBits }
func (n *Node) Alternatives() map[der.TagKey]der.Schema { return n.alternatives }

func (n *Node) Build(c der.Content) (any, error) {
	if n.build == nil {
		return nil, mkerr("schema: node has no builder")
	}
	return n.build(c)
}

// WithTag returns a copy of n with one more tag overlay appended
// outermost of whatever overlays n already carries (EXPLICIT when
// explicit is true, IMPLICIT when it is false).
func (n Node) WithTag(class, number int, explicit bool) *Node {
	cp := n
	ov := make([]der.Overlay, 0, len(n.overlays)+1)
	ov = append(ov, der.Overlay{Explicit: explicit, Class: class, Number: number})
	ov = append(ov, n.overlays...)
	cp.overlays = ov
	return &cp
}

// WithOptional returns a copy of n marked OPTIONAL.
func (n Node) WithOptional() *Node {
	cp := n
	cp.optional = true
	return &cp
}

// applyOptions folds a parsed struct-tag Options onto a freshly built
// leaf node, applying any tag overlay and OPTIONAL flag it carries.
// Used by FromStruct when deriving a field's schema.
func applyOptions(n *Node, opts Options) *Node {
	if opts.HasTag {
		n = n.WithTag(opts.Class, opts.Tag, opts.Explicit)
	}
	if opts.Optional {
		n = n.WithOptional()
	}
	return n
}

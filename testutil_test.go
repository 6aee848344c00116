package der

import "math/big"

/*
testutil_test.go provides a minimal hand-written Schema implementation
used throughout this package's tests. It stands in for the companion
schema package (see /root/module/schema) so that the core decoder's
tests exercise the der.Schema interface directly, the way a from-scratch
collaborator would, without pulling in reflect-driven struct derivation
for what are otherwise single-node test fixtures.
*/

type fakeSchema struct {
	kind         Kind
	overlays     []Overlay
	optional     bool
	hasDefault   bool
	defaultEqual func(any) bool
	hasSize      bool
	min, max     int
	fields       []Field
	component    Schema
	namedBits    []NamedBit
	alternatives map[TagKey]Schema
	build        func(Content) (any, error)
}

func (f *fakeSchema) Kind() Kind             { return f.kind }
func (f *fakeSchema) Overlays() []Overlay    { return f.overlays }
func (f *fakeSchema) Optional() bool         { return f.optional }
func (f *fakeSchema) HasDefault() bool       { return f.hasDefault }
func (f *fakeSchema) DefaultEqual(v any) bool {
	if f.defaultEqual == nil {
		return false
	}
	return f.defaultEqual(v)
}
func (f *fakeSchema) SizeConstraint() (int, int, bool) { return f.min, f.max, f.hasSize }
func (f *fakeSchema) Fields() []Field                  { return f.fields }
func (f *fakeSchema) Component() Schema                { return f.component }
func (f *fakeSchema) NamedBits() []NamedBit            { return f.namedBits }
func (f *fakeSchema) Alternatives() map[TagKey]Schema  { return f.alternatives }

func (f *fakeSchema) Build(c Content) (any, error) {
	if f.build != nil {
		return f.build(c)
	}
	switch c.Kind {
	case KindBoolean:
		return c.Bool, nil
	case KindInteger, KindEnumerated:
		return c.Int, nil
	case KindNull:
		return nil, nil
	case KindOID:
		return c.OID, nil
	case KindBitString:
		return c.Bytes, nil
	case KindOctetString:
		return c.Bytes, nil
	case KindUTCTime, KindGeneralizedTime:
		return c.Time, nil
	case KindSequence, KindSet:
		return c.Fields, nil
	case KindSequenceOf, KindSetOf:
		return c.Children, nil
	case KindAny:
		return c.Raw, nil
	default:
		return c.Str, nil
	}
}

func leaf(kind Kind) *fakeSchema { return &fakeSchema{kind: kind} }

func leafOverlay(kind Kind, ov ...Overlay) *fakeSchema {
	return &fakeSchema{kind: kind, overlays: ov}
}

func explicitOverlay(class, number int) Overlay {
	return Overlay{Explicit: true, Class: class, Number: number}
}

func implicitOverlay(class, number int) Overlay {
	return Overlay{Explicit: false, Class: class, Number: number}
}

func seqSchema(fields ...Field) *fakeSchema {
	return &fakeSchema{kind: KindSequence, fields: fields}
}

func setSchema(fields ...Field) *fakeSchema {
	return &fakeSchema{kind: KindSet, fields: fields}
}

func seqOfSchema(component Schema, min, max int, hasSize bool) *fakeSchema {
	return &fakeSchema{kind: KindSequenceOf, component: component, min: min, max: max, hasSize: hasSize}
}

func setOfSchema(component Schema, min, max int, hasSize bool) *fakeSchema {
	return &fakeSchema{kind: KindSetOf, component: component, min: min, max: max, hasSize: hasSize}
}

func choiceSchema(alts map[TagKey]Schema) *fakeSchema {
	return &fakeSchema{kind: KindChoice, alternatives: alts}
}

func anySchema() *fakeSchema { return &fakeSchema{kind: KindAny} }

func bigInt(n int64) *big.Int { return big.NewInt(n) }

func errKindOf(err error) ErrorKind {
	de, ok := err.(*DecodeError)
	if !ok {
		return 0xFF
	}
	return de.Kind
}

package schema

import (
	"math/big"

	der "github.com/havregryn/strictder"
)

/*
leaf.go holds the per-kind constructors for every primitive and
restricted-string ASN.1 type der.Decode can dispatch into. Each
constructor returns a *Node whose Build method converts the decoder's
validated der.Content into an ordinary Go value, grounded on the
teacher's per-type files (bool.go's Boolean, int.go's Integer, ...)
but inverted: the teacher's types carry their own encode/decode
methods, whereas here the Node.Build closure is the only place a
Go-native value is produced from decoded content.
*/

// Boolean returns a schema node for the BOOLEAN type. Build yields a
// plain Go bool.
func Boolean() *Node {
	return &Node{kind: der.KindBoolean, build: func(c der.Content) (any, error) {
		return c.Bool, nil
	}}
}

// Integer returns a schema node for the INTEGER type. Build yields
// *big.Int, since DER integers are unbounded in principle.
func Integer() *Node {
	return &Node{kind: der.KindInteger, build: func(c der.Content) (any, error) {
		return c.Int, nil
	}}
}

// Enumerated returns a schema node for the ENUMERATED type, sharing
// INTEGER's wire encoding (X.690 §8.4) but carrying its own tag.
func Enumerated() *Node {
	return &Node{kind: der.KindEnumerated, build: func(c der.Content) (any, error) {
		return c.Int, nil
	}}
}

// Null returns a schema node for the NULL type. Build yields nil.
func Null() *Node {
	return &Node{kind: der.KindNull, build: func(der.Content) (any, error) {
		return nil, nil
	}}
}

// OctetString returns a schema node for the OCTET STRING type. Build
// yields the content bytes verbatim.
func OctetString() *Node {
	return &Node{kind: der.KindOctetString, build: func(c der.Content) (any, error) {
		return c.Bytes, nil
	}}
}

// BitString holds a decoded BIT STRING's value octets and the count of
// unused trailing pad bits in the last octet, mirroring the teacher's
// own unused-bits-count representation in bs.go.
type BitString struct {
	Bytes      []byte
	UnusedBits int
}

// NewBitString returns a schema node for the BIT STRING type. When
// named is non-empty, DER's named-bit minimality rule (§4.4) is
// enforced against those positions.
func NewBitString(named ...der.NamedBit) *Node {
	return &Node{kind: der.KindBitString, namedBits: named, build: func(c der.Content) (any, error) {
		return BitString{Bytes: c.Bytes, UnusedBits: c.UnusedBits}, nil
	}}
}

// OID is defined in oid.go, wiring github.com/JesseCoretta/go-objectid
// into its Build result.

func restrictedString(kind der.Kind) *Node {
	return &Node{kind: kind, build: func(c der.Content) (any, error) {
		return c.Str, nil
	}}
}

func UTF8String() *Node      { return restrictedString(der.KindUTF8String) }
func PrintableString() *Node { return restrictedString(der.KindPrintableString) }
func IA5String() *Node       { return restrictedString(der.KindIA5String) }
func NumericString() *Node   { return restrictedString(der.KindNumericString) }
func VisibleString() *Node   { return restrictedString(der.KindVisibleString) }
func TeletexString() *Node   { return restrictedString(der.KindTeletexString) }
func UniversalString() *Node { return restrictedString(der.KindUniversalString) }
func BMPString() *Node       { return restrictedString(der.KindBMPString) }
func GeneralString() *Node   { return restrictedString(der.KindGeneralString) }
func GraphicString() *Node   { return restrictedString(der.KindGraphicString) }

func timeNode(kind der.Kind) *Node {
	return &Node{kind: kind, build: func(c der.Content) (any, error) {
		return c.Time, nil
	}}
}

// UTCTime returns a schema node for the UTCTime type.
func UTCTime() *Node { return timeNode(der.KindUTCTime) }

// GeneralizedTime returns a schema node for the GeneralizedTime type.
func GeneralizedTime() *Node { return timeNode(der.KindGeneralizedTime) }

// Any returns a schema node that accepts whatever tag arrives and
// preserves the raw TLV bytes, the ANY escape hatch spec.md §4.6 calls
// for.
func Any() *Node {
	return &Node{kind: der.KindAny, build: func(c der.Content) (any, error) {
		return c.Raw, nil
	}}
}

// bigIntEqual is the DefaultEqual comparator wired onto INTEGER/
// ENUMERATED nodes carrying a DEFAULT, per the teacher's Integer type
// being the canonical representation of an ASN.1 integral value.
func bigIntEqual(want *big.Int) func(any) bool {
	return func(v any) bool {
		got, ok := v.(*big.Int)
		return ok && got != nil && want != nil && got.Cmp(want) == 0
	}
}

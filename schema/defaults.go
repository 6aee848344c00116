package schema

import (
	"bytes"
	"math/big"
	"time"

	der "github.com/havregryn/strictder"
)

/*
defaults.go implements DEFAULT-value equality per kind, resolving the
open question spec.md §9 leaves to the implementation: "spell out
equality semantics per type ... document any deviation". Time values
compare on their normalized time.Time form, never on raw octets, since
two different-but-equivalent DER GeneralizedTime strings (e.g. a
fractional-seconds value trimmed to a coarser precision that still
names the same instant) would otherwise compare unequal even though
X.690 treats them as encoding the same value. Every other kind compares
on its own natural Go equality.
*/

// WithDefault attaches a DEFAULT value to n, selecting an equality
// comparator appropriate to n's kind. DER's DEFAULT enforcement
// (spec.md §4.5) rejects an encoding whenever the decoded field equals
// this value.
func (n Node) WithDefault(value any) (*Node, error) {
	cp := n
	cp.hasDefault = true
	cp.defaultVal = value

	switch n.kind {
	case der.KindBoolean:
		want, ok := value.(bool)
		if !ok {
			return nil, mkerr("schema: BOOLEAN default must be a bool")
		}
		cp.defaultEq = func(v any) bool { got, ok := v.(bool); return ok && got == want }

	case der.KindInteger, der.KindEnumerated:
		want, err := toBigInt(value)
		if err != nil {
			return nil, err
		}
		cp.defaultEq = bigIntEqual(want)

	case der.KindOctetString, der.KindBitString:
		want, err := toBytes(value)
		if err != nil {
			return nil, err
		}
		cp.defaultEq = func(v any) bool {
			switch got := v.(type) {
			case []byte:
				return bytes.Equal(got, want)
			case BitString:
				return bytes.Equal(got.Bytes, want)
			default:
				return false
			}
		}

	case der.KindUTF8String, der.KindPrintableString, der.KindIA5String,
		der.KindNumericString, der.KindVisibleString, der.KindTeletexString,
		der.KindUniversalString, der.KindBMPString, der.KindGeneralString,
		der.KindGraphicString:
		want, ok := value.(string)
		if !ok {
			return nil, mkerr("schema: string default must be a string")
		}
		cp.defaultEq = func(v any) bool { got, ok := v.(string); return ok && got == want }

	case der.KindUTCTime, der.KindGeneralizedTime:
		text, ok := value.(string)
		if !ok {
			return nil, mkerr("schema: time default must be the textual DER form")
		}
		want, err := normalizeTime(n.kind, text)
		if err != nil {
			return nil, err
		}
		cp.defaultEq = func(v any) bool {
			switch got := v.(type) {
			case time.Time:
				return got.Equal(want)
			case string:
				t, err := normalizeTime(n.kind, got)
				return err == nil && t.Equal(want)
			default:
				return false
			}
		}

	default:
		return nil, mkerr("schema: DEFAULT is not supported for this kind")
	}

	return &cp, nil
}

func toBigInt(value any) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		return v, nil
	case int64:
		return big.NewInt(v), nil
	case int:
		return big.NewInt(int64(v)), nil
	default:
		return nil, mkerr("schema: INTEGER/ENUMERATED default must be int, int64, or *big.Int")
	}
}

func toBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, mkerr("schema: OCTET STRING/BIT STRING default must be []byte or string")
	}
}

// normalizeTime parses a DER UTCTime or GeneralizedTime textual value
// into its normalized time.Time form. Only the common no-fraction form
// is supported for defaults; a schema needing a fractional
// GeneralizedTime default should compare it via a custom Build/
// DefaultEqual pairing instead.
func normalizeTime(kind der.Kind, s string) (time.Time, error) {
	layout := "20060102150405Z"
	if kind == der.KindUTCTime {
		layout = "060102150405Z"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, mkerr("schema: invalid default time value \"" + s + "\"")
	}
	return t, nil
}

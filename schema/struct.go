package schema

import (
	"math/big"
	"reflect"
	"time"

	"github.com/JesseCoretta/go-objectid"
	der "github.com/havregryn/strictder"
)

/*
struct.go derives a SEQUENCE or SET schema node from an ordinary Go
struct type via reflection, the companion-package half of spec.md §4.6
("The schema object model itself ... is out of scope"; this package is
that external collaborator). Grounded on the teacher's own reflect-
driven field walk in runtime.go (unmarshalValue/unmarshalSequenceBranch)
and its `asn1:"..."` struct tag convention (opts.go), but inverted for
decode-only use: instead of walking a pre-existing Go value and filling
it in place, FromStruct first derives a der.Schema from the Go type,
then that schema's Build method constructs a fresh value of that type
once decoding succeeds.
*/

var (
	bigIntType    = reflect.TypeOf((*big.Int)(nil))
	timeType      = reflect.TypeOf(time.Time{})
	byteSliceType = reflect.TypeOf([]byte(nil))
	oidType       = reflect.TypeOf(objectid.DotNotation{})
)

// FromStruct derives a SEQUENCE schema node from ptr, which must be a
// pointer to a struct. Every exported field becomes a named type in
// wire declaration order; an `asn1:"..."` struct tag configures its
// tag overlay, OPTIONAL status, DEFAULT value, and (for string fields)
// which restricted character-string kind it decodes as.
func FromStruct(ptr any) (der.Schema, error) {
	return fromStruct(ptr, der.KindSequence)
}

// FromSetStruct is FromStruct for a SET: field wire order is
// unconstrained by declaration order (DER instead requires tag-
// ascending order on the wire; the dispatch core enforces that).
func FromSetStruct(ptr any) (der.Schema, error) {
	return fromStruct(ptr, der.KindSet)
}

func fromStruct(ptr any, kind der.Kind) (*Node, error) {
	rt, err := structPointerType(ptr)
	if err != nil {
		return nil, err
	}

	fields := make([]der.Field, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.PkgPath != "" {
			continue // unexported
		}

		tagStr, _ := sf.Tag.Lookup("asn1")
		opts, err := ParseOptions(tagStr)
		if err != nil {
			return nil, err
		}

		fieldSchema, err := schemaForType(sf.Type, opts)
		if err != nil {
			return nil, err
		}
		fieldSchema = applyOptions(fieldSchema, opts)

		if opts.HasDefault {
			withDef, err := fieldSchema.WithDefault(parseDefaultLiteral(sf.Type, opts.Default))
			if err != nil {
				return nil, err
			}
			fieldSchema = withDef
		}

		fields = append(fields, der.Field{Name: sf.Name, Schema: fieldSchema, Optional: opts.Optional})
	}

	n := &Node{kind: kind, fields: fields}
	n.build = func(c der.Content) (any, error) {
		return buildStruct(rt, fields, c)
	}
	return n, nil
}

func structPointerType(ptr any) (reflect.Type, error) {
	rt := reflect.TypeOf(ptr)
	if rt == nil || rt.Kind() != reflect.Ptr || rt.Elem().Kind() != reflect.Struct {
		return nil, mkerr("schema: FromStruct requires a pointer to a struct")
	}
	return rt.Elem(), nil
}

// schemaForType maps a Go field type to the schema node kind that
// naturally decodes into it.
func schemaForType(t reflect.Type, opts Options) (*Node, error) {
	switch {
	case t.Kind() == reflect.Bool:
		return Boolean(), nil
	case t == bigIntType:
		return Integer(), nil
	case t == timeType:
		return timeForIdentifier(opts.Identifier), nil
	case t == oidType:
		return OID(), nil
	case t == byteSliceType:
		return OctetString(), nil
	case t == reflect.TypeOf(BitString{}):
		return NewBitString(), nil
	case t.Kind() == reflect.String:
		return stringForIdentifier(opts.Identifier), nil
	case t.Kind() == reflect.Slice:
		elem, err := schemaForType(t.Elem(), Options{})
		if err != nil {
			return nil, err
		}
		if opts.Set {
			return SetOf(elem, -1, -1), nil
		}
		return SequenceOf(elem, -1, -1), nil
	case t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Struct:
		kind := der.KindSequence
		if opts.Set {
			kind = der.KindSet
		}
		zero := reflect.New(t.Elem()).Interface()
		return fromStruct(zero, kind)
	default:
		return nil, mkerr("schema: unsupported Go field type " + t.String())
	}
}

func stringForIdentifier(id string) *Node {
	switch id {
	case "ia5":
		return IA5String()
	case "numeric":
		return NumericString()
	case "printable":
		return PrintableString()
	case "visible":
		return VisibleString()
	case "t61":
		return TeletexString()
	case "universal":
		return UniversalString()
	case "bmp":
		return BMPString()
	case "general":
		return GeneralString()
	case "graphic":
		return GraphicString()
	case "utctime":
		return restrictedString(der.KindUTCTime)
	case "generalizedtime":
		return restrictedString(der.KindGeneralizedTime)
	default:
		return UTF8String()
	}
}

func timeForIdentifier(id string) *Node {
	if id == "utctime" {
		return UTCTime()
	}
	return GeneralizedTime()
}

// parseDefaultLiteral turns the textual `default:...` tag token into
// the any value WithDefault expects for t's corresponding schema kind.
func parseDefaultLiteral(t reflect.Type, literal string) any {
	switch {
	case t.Kind() == reflect.Bool:
		return literal == "true"
	case t == bigIntType:
		n := new(big.Int)
		n.SetString(literal, 10)
		return n
	case t == byteSliceType:
		return []byte(literal)
	default:
		return literal
	}
}

// buildStruct constructs a *T (where rt is T) from decoded field
// values, assigning each by name. Fields absent from c.Fields (skipped
// OPTIONAL, or DEFAULT fields the schema adapter populates here) are
// left at T's zero value, except a DEFAULT field, which is set to its
// declared default.
func buildStruct(rt reflect.Type, fields []der.Field, c der.Content) (any, error) {
	out := reflect.New(rt)
	elem := out.Elem()

	for _, f := range fields {
		fv := elem.FieldByName(f.Name)
		if val, ok := c.Fields[f.Name]; ok {
			if err := setField(fv, val); err != nil {
				return nil, mkerr("schema: field " + f.Name + ": " + err.Error())
			}
			continue
		}
		if node, ok := f.Schema.(*Node); ok && node.hasDefault {
			if err := setField(fv, node.defaultVal); err != nil {
				return nil, mkerr("schema: field " + f.Name + " default: " + err.Error())
			}
		}
	}

	return out.Interface(), nil
}

// setField assigns val into fv, converting a decoded []any (SEQUENCE
// OF/SET OF) into a concrete typed slice and widening numeric literals
// where a DEFAULT's Go literal form doesn't already match the field's
// exact type.
func setField(fv reflect.Value, val any) error {
	if val == nil {
		return nil
	}
	rv := reflect.ValueOf(val)

	if rv.Type().AssignableTo(fv.Type()) {
		fv.Set(rv)
		return nil
	}

	if fv.Kind() == reflect.Slice && rv.Kind() == reflect.Slice {
		out := reflect.MakeSlice(fv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elem := rv.Index(i)
			if elem.Kind() == reflect.Interface {
				elem = elem.Elem()
			}
			if err := setField(out.Index(i), elem.Interface()); err != nil {
				return err
			}
		}
		fv.Set(out)
		return nil
	}

	if rv.Type().ConvertibleTo(fv.Type()) {
		fv.Set(rv.Convert(fv.Type()))
		return nil
	}

	return mkerr("schema: cannot assign decoded " + rv.Type().String() + " to field of type " + fv.Type().String())
}

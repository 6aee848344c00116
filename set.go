package der

import "bytes"

/*
set.go implements SET and SET OF decoding (§4.5 of SPEC_FULL.md).
Grounded on the teacher's set.go (marshalSet's distinct-from-SEQUENCE
member handling), rewritten for decode. Unlike SEQUENCE, a SET's
members may be *declared* in any schema order, but DER requires them
to appear tag-ascending on the *wire* — so decodeSet matches each TLV
to whichever declared field claims its tag, rather than assuming
positional correspondence between schema order and wire order.
*/

// decodeSet matches each TLV in content against schema's fields by
// tag (order-independent), enforces DER's tag-ascending member
// ordering, and reports any required field left unfilled once content
// is exhausted.
func decodeSet(schema Schema, content *Cursor, depth int) (any, error) {
	fields := schema.Fields()
	values := make(map[string]any, len(fields))
	filled := make(map[string]bool, len(fields))

	var prevClass, prevNumber int
	haveSeen := false

	for content.remaining() > 0 {
		pos := content.pos()
		tag, err := peekIdentifier(content)
		if err != nil {
			return nil, err
		}

		if haveSeen && !(prevClass < tag.Class || (prevClass == tag.Class && prevNumber < tag.Number)) {
			return nil, newDecodeError(ErrSetMembersMisordered, pos, "SET member is out of tag order")
		}
		prevClass, prevNumber, haveSeen = tag.Class, tag.Number, true

		field, ok := findField(fields, tag)
		if !ok {
			return nil, newDecodeError(ErrUnexpectedTrailingField, pos,
				"no SET field claims class ", ClassNames[tag.Class], " tag ", itoa(tag.Number))
		}

		val, err := decodeNode(field.Schema, content, depth)
		if err != nil {
			return nil, err
		}

		if field.Schema.HasDefault() && field.Schema.DefaultEqual(val) {
			return nil, newDecodeError(ErrDefaultValueEncoded, pos,
				"field ", field.Name, " was encoded with its DEFAULT value")
		}

		values[field.Name] = val
		filled[field.Name] = true
	}

	for _, f := range fields {
		if !filled[f.Name] && !f.Optional && !f.Schema.HasDefault() {
			return nil, newDecodeError(ErrMissingRequiredField, content.pos(),
				"field ", f.Name, " is required but was not present")
		}
	}

	return schema.Build(Content{Kind: schema.Kind(), Fields: values})
}

func findField(fields []Field, tag Tag) (Field, bool) {
	for _, f := range fields {
		if fieldMatches(f.Schema, tag) {
			return f, true
		}
	}
	return Field{}, false
}

// checkSetOfOrder enforces DER's SET OF ordering: raw TLV byte-slices
// must be non-decreasing in unsigned lexicographic order. Equal
// consecutive elements are permitted (§4.5 "SET OF").
func checkSetOfOrder(raws [][]byte, pos int) error {
	for i := 1; i < len(raws); i++ {
		if bytes.Compare(raws[i-1], raws[i]) > 0 {
			return newDecodeError(ErrSetOfMembersMisordered, pos,
				"SET OF element ", itoa(i), " is out of byte order")
		}
	}
	return nil
}

package der

/*
seq.go implements SEQUENCE and SEQUENCE OF decoding (§4.5 of
SPEC_FULL.md). Grounded on the teacher's seq.go (marshalSequence's
field-by-field struct walk), rewritten for decode: walk the schema's
declared field order against successive TLVs, skipping OPTIONAL/DEFAULT
fields the wire omits, erroring on anything required that is missing
or any TLV left over once every field has been considered.
*/

// decodeSequence walks schema's ordered fields against successive TLVs
// in content, in schema declaration order (SEQUENCE preserves field
// order on the wire; see set.go for SET, where order is unconstrained
// by the schema but constrained on the wire).
func decodeSequence(schema Schema, content *Cursor, depth int) (any, error) {
	fields := schema.Fields()
	values := make(map[string]any, len(fields))

	for _, f := range fields {
		if content.remaining() == 0 {
			if f.Optional || f.Schema.HasDefault() {
				continue
			}
			return nil, newDecodeError(ErrMissingRequiredField, content.pos(),
				"field ", f.Name, " is required but no TLVs remain")
		}

		tag, err := peekIdentifier(content)
		if err != nil {
			return nil, err
		}

		if !fieldMatches(f.Schema, tag) {
			if f.Optional || f.Schema.HasDefault() {
				continue
			}
			return nil, newDecodeError(ErrMissingRequiredField, content.pos(),
				"field ", f.Name, " did not match the next TLV")
		}

		val, err := decodeNode(f.Schema, content, depth)
		if err != nil {
			return nil, err
		}

		if f.Schema.HasDefault() && f.Schema.DefaultEqual(val) {
			return nil, newDecodeError(ErrDefaultValueEncoded, content.pos(),
				"field ", f.Name, " was encoded with its DEFAULT value")
		}

		values[f.Name] = val
	}

	if content.remaining() != 0 {
		return nil, newDecodeError(ErrUnexpectedTrailingField, content.pos(),
			"unconsumed TLV(s) after the last declared field")
	}

	return schema.Build(Content{Kind: schema.Kind(), Fields: values})
}

// fieldMatches reports whether a peeked tag is the one a field's
// schema (including any overlay, or CHOICE alternative set) expects on
// the wire. An ANY field without an overlay matches every tag.
func fieldMatches(schema Schema, tag Tag) bool {
	overlays := schema.Overlays()
	if len(overlays) > 0 {
		ov := overlays[0]
		return tag.Class == ov.Class && tag.Number == ov.Number
	}
	if schema.Kind() == KindAny {
		return true
	}
	if schema.Kind() == KindChoice {
		_, ok := schema.Alternatives()[TagKey{Class: tag.Class, Number: tag.Number}]
		return ok
	}
	return tag.Class == ClassUniversal && tag.Number == universalTag(schema.Kind())
}

// decodeRepeated decodes every TLV in content against schema's
// Component schema, appending each to a list, then enforces the
// declared size constraint (§4.5 "SEQUENCE OF"/"SET OF", the common
// "minimum 1" rule). See set.go for the SET OF byte-ordering pass this
// feeds into when isSetOf is true.
func decodeRepeated(schema Schema, content *Cursor, depth int, isSetOf bool) (any, error) {
	component := schema.Component()
	var values []any
	var raws [][]byte

	for content.remaining() > 0 {
		start := content.pos()
		val, err := decodeNode(component, content, depth)
		if err != nil {
			return nil, err
		}
		values = append(values, val)
		if isSetOf {
			raws = append(raws, append([]byte(nil), content.data[start:content.offset]...))
		}
	}

	if min, max, ok := schema.SizeConstraint(); ok {
		n := len(values)
		if n < min || (max >= 0 && n > max) {
			return nil, newDecodeError(ErrSizeConstraintViolated, content.pos(),
				itoa(n), " elements outside declared size bound")
		}
	}

	if isSetOf {
		if err := checkSetOfOrder(raws, content.pos()); err != nil {
			return nil, err
		}
	}

	return schema.Build(Content{Kind: schema.Kind(), Children: values})
}

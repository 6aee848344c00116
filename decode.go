package der

/*
decode.go implements the Dispatch Core (§4.3 of SPEC_FULL.md): the
single recursive entry point that, given a schema node and a cursor,
enforces the recursion-depth limit, resolves any IMPLICIT/EXPLICIT tag
overlay, matches the outer tag, and dispatches into the per-kind
validators. Grounded on the teacher's runtime.go (unmarshalValue), but
schema-interface-driven instead of reflect-driven: this package's
Schema is supplied by the caller rather than derived from a Go struct's
field types.
*/

// decodeNode is the dispatch core's top-level recursive entry: decode
// one schema node starting at c, at the given recursion depth.
func decodeNode(schema Schema, c *Cursor, depth int) (any, error) {
	if depth > MaxDepth {
		return nil, newDecodeError(ErrRecursionLimitExceeded, c.pos(),
			"recursion depth ", itoa(depth), " exceeds MaxDepth ", itoa(MaxDepth))
	}

	if schema.Kind() == KindChoice {
		return decodeChoice(schema, c, depth)
	}

	return decodeOverlaid(schema, schema.Overlays(), c, depth)
}

// decodeKind reads a TLV using the schema's own natural universal tag
// (no overlay present) and dispatches into the per-kind validator.
func decodeKind(schema Schema, c *Cursor, depth int) (any, error) {
	start := c.pos()
	kind := schema.Kind()

	tlv, err := readTLV(c)
	if err != nil {
		return nil, err
	}

	if kind == KindAny {
		raw := append([]byte(nil), c.data[start:c.offset]...)
		return schema.Build(Content{Kind: KindAny, Raw: raw})
	}

	wantNumber := universalTag(kind)
	wantConstructed := isConstructedKind(kind)
	if err := checkTag(tlv, ClassUniversal, wantNumber, wantConstructed, start); err != nil {
		return nil, err
	}

	val, err := validateContent(kind, schema, tlv.Content, depth+1)
	if err != nil {
		return nil, err
	}
	if tlv.Content.remaining() != 0 {
		return nil, newDecodeError(ErrTrailingContentBytes, tlv.Content.pos(),
			"TLV content longer than its decoded value")
	}
	return val, nil
}

// validateContent dispatches a TLV's content cursor to the correct
// per-kind validator. Every branch consumes content entirely or
// returns an error; none of them re-read a tag (that already happened
// in decodeKind/decodeOverlaid).
func validateContent(kind Kind, schema Schema, content *Cursor, depth int) (any, error) {
	switch kind {
	case KindBoolean:
		return validateBoolean(schema, content)
	case KindInteger:
		return validateInteger(schema, content)
	case KindEnumerated:
		return validateEnumerated(schema, content)
	case KindNull:
		return validateNull(schema, content)
	case KindOID:
		return validateOID(schema, content)
	case KindBitString:
		return validateBitString(schema, content)
	case KindOctetString:
		return validateOctetString(schema, content)
	case KindUTF8String, KindPrintableString, KindIA5String, KindNumericString,
		KindVisibleString, KindTeletexString, KindUniversalString, KindBMPString,
		KindGeneralString, KindGraphicString:
		return validateRestrictedString(kind, schema, content)
	case KindUTCTime, KindGeneralizedTime:
		return validateTime(kind, schema, content)
	case KindSequence:
		return decodeSequence(schema, content, depth)
	case KindSet:
		return decodeSet(schema, content, depth)
	case KindSequenceOf:
		return decodeRepeated(schema, content, depth, false)
	case KindSetOf:
		return decodeRepeated(schema, content, depth, true)
	default:
		return nil, newDecodeError(ErrInvalidSchema, content.pos(), "unsupported schema kind ", kind.String())
	}
}

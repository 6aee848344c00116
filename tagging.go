package der

/*
tagging.go implements the Choice/Tagging Resolver's IMPLICIT/EXPLICIT
half (§4.5 of SPEC_FULL.md); see choice.go for the CHOICE half.
Grounded on the teacher's opts.go (its tag-override Options), rewritten
around Schema.Overlays rather than struct-field options, since overlays
here come from the external schema rather than Go struct tags.
*/

// formAfter reports the wire form (true == constructed) that applies
// to an IMPLICIT overlay given what comes next: a further EXPLICIT
// overlay always wraps as constructed; a further IMPLICIT overlay
// defers to whatever is beneath it; with no further overlay, the form
// is the base kind's own natural form.
func formAfter(schema Schema, rest []Overlay) bool {
	if len(rest) == 0 {
		return isConstructedKind(schema.Kind())
	}
	if rest[0].Explicit {
		return true
	}
	return formAfter(schema, rest[1:])
}

// checkTag compares a just-read TLV's (class, number, form) against
// what was expected, returning the appropriately-kinded DecodeError on
// mismatch.
func checkTag(tlv TLV, wantClass, wantNumber int, wantConstructed bool, pos int) error {
	if tlv.Class != wantClass || tlv.Number != wantNumber {
		return errTagMismatch(pos, wantClass, wantNumber, tlv.Class, tlv.Number)
	}
	if tlv.Constructed != wantConstructed {
		if !wantConstructed && tlv.Constructed {
			return newDecodeError(ErrConstructedFormForbidden, pos,
				TagNames[wantNumber], " must be encoded in primitive form")
		}
		return errTagMismatch(pos, wantClass, wantNumber, tlv.Class, tlv.Number)
	}
	return nil
}

// decodeOverlaid peels off tag overlays outermost-first. Once none
// remain it dispatches to decodeKind, which reads the node's own
// natural-tag TLV.
func decodeOverlaid(schema Schema, overlays []Overlay, c *Cursor, depth int) (any, error) {
	if depth > MaxDepth {
		return nil, newDecodeError(ErrRecursionLimitExceeded, c.pos(),
			"recursion depth ", itoa(depth), " exceeds MaxDepth ", itoa(MaxDepth))
	}
	if len(overlays) == 0 {
		return decodeKind(schema, c, depth)
	}

	ov := overlays[0]
	rest := overlays[1:]
	pos := c.pos()

	tlv, err := readTLV(c)
	if err != nil {
		return nil, err
	}

	if ov.Explicit {
		if err := checkTag(tlv, ov.Class, ov.Number, true, pos); err != nil {
			return nil, err
		}
		val, err := decodeOverlaid(schema, rest, tlv.Content, depth+1)
		if err != nil {
			return nil, err
		}
		if tlv.Content.remaining() != 0 {
			return nil, newDecodeError(ErrTrailingContentBytes, tlv.Content.pos(),
				"EXPLICIT wrapper content longer than its single inner TLV")
		}
		return val, nil
	}

	// IMPLICIT: tag replaced, form preserved from whatever is beneath.
	form := formAfter(schema, rest)
	if err := checkTag(tlv, ov.Class, ov.Number, form, pos); err != nil {
		return nil, err
	}
	if len(rest) == 0 {
		val, err := validateContent(schema.Kind(), schema, tlv.Content, depth+1)
		if err != nil {
			return nil, err
		}
		if tlv.Content.remaining() != 0 {
			return nil, newDecodeError(ErrTrailingContentBytes, tlv.Content.pos(),
				"TLV content longer than its decoded value")
		}
		return val, nil
	}
	return decodeOverlaid(schema, rest, tlv.Content, depth+1)
}

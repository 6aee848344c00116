package der

/*
entry.go implements the external entry point (§4.6 of SPEC_FULL.md).
Grounded on the teacher's top-level Unmarshal in runtime.go: validate
the input shape before any cursor is built, then hand off to the
dispatch core.
*/

// Decode validates substrate against spec as a single DER-encoded TLV.
// Every byte of substrate must belong to that one TLV: any byte left
// over once it has been decoded is ErrTrailingDataAfterTLV, matching
// the original decoder's decode_der, which always returns an empty
// remainder on success. rest is therefore always empty when err is
// nil; it is returned only to keep the failure case's partial cursor
// position inspectable by the caller.
func Decode(substrate any, spec Schema) (value any, rest []byte, err error) {
	b, err := coerceSubstrate(substrate)
	if err != nil {
		return nil, nil, err
	}

	c := newCursor(b)
	value, err = decodeNode(spec, c, 0)
	if err != nil {
		return nil, nil, err
	}

	if c.remaining() != 0 {
		left := append([]byte(nil), c.data[c.offset:]...)
		return nil, left, newDecodeError(ErrTrailingDataAfterTLV, c.offset,
			itoa(c.remaining()), " byte(s) remain after the top-level TLV")
	}

	return value, nil, nil
}

// coerceSubstrate mirrors the original decoder's bytes(substrate)
// coercion: accept anything byte-slice-shaped, reject anything else as
// ErrUnsupportedSubstrate before any decoding begins.
func coerceSubstrate(substrate any) ([]byte, error) {
	switch v := substrate.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	case interface{ Bytes() []byte }:
		return v.Bytes(), nil
	default:
		return nil, newDecodeError(ErrUnsupportedSubstrate, 0,
			"substrate must be []byte, string, or have a Bytes() []byte method")
	}
}

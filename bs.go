package der

/*
bs.go implements the BIT STRING validator (§4.4 of SPEC_FULL.md).
Grounded on the teacher's bs.go (BitString's unused-bits-count
representation), strict where the teacher is permissive: DER requires
the named pad bits to be zero, and when the schema names specific bit
positions, trailing zero bits beyond the last named one must be
trimmed from the wire (§4.4 "BIT STRING").
*/

func validateBitString(schema Schema, content *Cursor) (any, error) {
	pos := content.pos()
	b, err := content.readN(content.remaining())
	if err != nil {
		return nil, err
	}
	if len(b) < 1 {
		return nil, newDecodeError(ErrInsufficientData, pos,
			"BIT STRING requires at least the unused-bits octet")
	}

	unused := int(b[0])
	value := b[1:]

	if unused < 0 || unused > 7 {
		return nil, newDecodeError(ErrBitStringPadBitsNonZero, pos,
			"unused bit count ", itoa(unused), " out of range 0..7")
	}
	if unused > 0 {
		if len(value) == 0 {
			return nil, newDecodeError(ErrBitStringPadBitsNonZero, pos,
				"unused bits declared with no value octets")
		}
		last := value[len(value)-1]
		mask := byte(1<<uint(unused)) - 1
		if last&mask != 0 {
			return nil, newDecodeError(ErrBitStringPadBitsNonZero, pos,
				"nonzero bits in the unused-bit padding")
		}
	}

	if bits := schema.NamedBits(); len(bits) > 0 {
		if err := checkNamedBitMinimal(value, unused, pos); err != nil {
			return nil, err
		}
	}

	return schema.Build(Content{Kind: KindBitString, Bytes: append([]byte(nil), value...), UnusedBits: unused})
}

// checkNamedBitMinimal enforces that, when the schema declares named
// bit positions, no whole trailing zero octet remains beyond the last
// set bit, and the unused-bits count trims every trailing zero bit of
// the final octet (not just the pad).
func checkNamedBitMinimal(value []byte, unused int, pos int) error {
	if len(value) == 0 {
		return nil
	}
	if value[len(value)-1] == 0 {
		return newDecodeError(ErrNamedBitStringNonMinimal, pos,
			"trailing all-zero octet not trimmed")
	}

	last := value[len(value)-1]
	trailingZeros := 0
	for bit := 0; bit < 8; bit++ {
		if last&(1<<uint(bit)) != 0 {
			break
		}
		trailingZeros++
	}
	if trailingZeros > unused {
		return newDecodeError(ErrNamedBitStringNonMinimal, pos,
			"final octet has more trailing zero bits than the declared unused count")
	}
	return nil
}

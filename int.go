package der

import "math/big"

/*
int.go implements the INTEGER validator (§4.4 of SPEC_FULL.md). Grounded
on the teacher's int.go (Integer's big.Int-backed value type), but
strict about minimality: DER forbids any encoding of an INTEGER whose
leading nine bits are all zero or all one, since the content could then
have been one octet shorter (§8 test table: 02 02 00 7F →
IntegerNonMinimal).
*/

func validateInteger(schema Schema, content *Cursor) (any, error) {
	pos := content.pos()
	b, err := content.readN(content.remaining())
	if err != nil {
		return nil, err
	}
	if len(b) < 1 {
		return nil, newDecodeError(ErrInsufficientData, pos, "INTEGER requires at least one content octet")
	}
	if err := checkIntegerMinimal(b, pos); err != nil {
		return nil, err
	}

	v := new(big.Int).SetBytes(b)
	if b[0]&0x80 != 0 {
		// Negative: v currently holds the unsigned interpretation of the
		// two's-complement bytes; subtract 2^(8*len(b)) to recover the
		// signed value.
		mod := new(big.Int).Lsh(big.NewInt(1), uint(8*len(b)))
		v.Sub(v, mod)
	}

	return schema.Build(Content{Kind: KindInteger, Int: v})
}

// checkIntegerMinimal rejects a two's-complement encoding whose first
// nine bits are all zero or all one, which always indicates a
// non-minimal encoding (the leading octet could have been dropped).
func checkIntegerMinimal(b []byte, pos int) error {
	if len(b) < 2 {
		return nil
	}
	if b[0] == 0x00 && b[1]&0x80 == 0 {
		return newDecodeError(ErrIntegerNonMinimal, pos,
			"leading 0x00 octet is redundant")
	}
	if b[0] == 0xFF && b[1]&0x80 != 0 {
		return newDecodeError(ErrIntegerNonMinimal, pos,
			"leading 0xFF octet is redundant")
	}
	return nil
}


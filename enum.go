package der

import "math/big"

/*
enum.go implements the ENUMERATED validator (§4.4 of SPEC_FULL.md).
ENUMERATED shares INTEGER's encoding rules byte-for-byte (X.690 §8.4);
grounded on the teacher's enum.go, which likewise delegates to its
Integer codec under a distinct tag.
*/

func validateEnumerated(schema Schema, content *Cursor) (any, error) {
	pos := content.pos()
	b, err := content.readN(content.remaining())
	if err != nil {
		return nil, err
	}
	if len(b) < 1 {
		return nil, newDecodeError(ErrInsufficientData, pos, "ENUMERATED requires at least one content octet")
	}
	if err := checkIntegerMinimal(b, pos); err != nil {
		return nil, err
	}

	v := new(big.Int).SetBytes(b)
	if b[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(8*len(b)))
		v.Sub(v, mod)
	}

	return schema.Build(Content{Kind: KindEnumerated, Int: v})
}

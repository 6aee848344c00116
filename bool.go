package der

/*
bool.go implements the BOOLEAN validator (§4.4 of SPEC_FULL.md).
Grounded on the teacher's bool.go (the Boolean type and its read
method), but strict: the teacher's BER read accepts any nonzero octet
as true; DER permits only 0x00 and 0xFF (§8 test table: 01 01 01 →
BooleanNonCanonical).
*/

func validateBoolean(schema Schema, content *Cursor) (any, error) {
	pos := content.pos()
	b, err := content.readN(1)
	if err != nil {
		return nil, newDecodeError(ErrInsufficientData, pos, "BOOLEAN requires exactly one content octet")
	}

	switch b[0] {
	case 0x00:
		return schema.Build(Content{Kind: KindBoolean, Bool: false})
	case 0xFF:
		return schema.Build(Content{Kind: KindBoolean, Bool: true})
	default:
		return nil, newDecodeError(ErrBooleanNonCanonical, pos,
			"BOOLEAN content octet must be 0x00 or 0xFF")
	}
}

package der

/*
null.go implements the NULL validator (§4.4 of SPEC_FULL.md). Grounded
on the teacher's null.go. NULL's content must be empty; any content
octet at all is a violation (§8 test table: 05 01 00 → NullNonEmpty).
*/

func validateNull(schema Schema, content *Cursor) (any, error) {
	if content.remaining() != 0 {
		return nil, newDecodeError(ErrNullNonEmpty, content.pos(),
			"NULL must have zero content octets")
	}
	return schema.Build(Content{Kind: KindNull})
}

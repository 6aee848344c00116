package der

/*
oct.go implements the OCTET STRING validator (§4.4 of SPEC_FULL.md).
Grounded on the teacher's oct.go. DER places no constraint on OCTET
STRING content beyond what the Byte Cursor and the TLV/Length rules
already enforce: every content byte is taken verbatim.
*/

func validateOctetString(schema Schema, content *Cursor) (any, error) {
	b, err := content.readN(content.remaining())
	if err != nil {
		return nil, err
	}
	return schema.Build(Content{Kind: KindOctetString, Bytes: append([]byte(nil), b...)})
}

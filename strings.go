package der

/*
strings.go dispatches the restricted character string kinds (§4.4
"Restricted character strings" of SPEC_FULL.md) to their per-alphabet
checker, then hands the validated bytes to the schema. Grounded on the
teacher's convention of one file per string type (ps.go, ia5.go,
ns.go, vs.go, t61.go, us.go, bmp.go, gs.go, gen.go, utf8.go); this file
holds only what they all share.
*/

func validateRestrictedString(kind Kind, schema Schema, content *Cursor) (any, error) {
	pos := content.pos()
	b, err := content.readN(content.remaining())
	if err != nil {
		return nil, err
	}

	var checker func([]byte) (int, bool)
	switch kind {
	case KindPrintableString:
		checker = checkPrintableString
	case KindIA5String:
		checker = checkIA5String
	case KindNumericString:
		checker = checkNumericString
	case KindVisibleString:
		checker = checkVisibleString
	case KindUTF8String:
		checker = checkUTF8String
	case KindUniversalString:
		checker = checkUniversalString
	case KindBMPString:
		checker = checkBMPString
	case KindTeletexString, KindGeneralString, KindGraphicString:
		checker = checkByteString
	}

	if checker != nil {
		if badAt, ok := checker(b); !ok {
			return nil, newDecodeError(ErrIllegalCharacter, pos+badAt,
				TagNames[universalTag(kind)], " contains an illegal octet")
		}
	}

	return schema.Build(Content{Kind: kind, Str: string(b), Bytes: append([]byte(nil), b...)})
}

// checkByteString permits any octet, used by the string kinds whose
// alphabet this package does not restrict beyond what the TLV/Length
// rules already enforce (§4.4 "...etc.").
func checkByteString(b []byte) (int, bool) { return 0, true }

package der

/*
time.go implements the UTCTime and GeneralizedTime validators (§4.4 of
SPEC_FULL.md). Grounded on the teacher's vts.go (its shared validating
time string helper) but narrower: DER forbids the numeric offsets and
local-time forms BER otherwise tolerates, so both formats here accept
only a trailing "Z" and reject everything the teacher's codec would
let through alongside it.
*/

import "time"

func validateTime(kind Kind, schema Schema, content *Cursor) (any, error) {
	pos := content.pos()
	b, err := content.readN(content.remaining())
	if err != nil {
		return nil, err
	}
	s := string(b)

	var layout string
	switch kind {
	case KindUTCTime:
		if len(s) != 13 || s[12] != 'Z' {
			return nil, newDecodeError(ErrInvalidTime, pos,
				"UTCTime must be exactly 13 characters, ending in Z")
		}
		if !allDigits(s[:12]) {
			return nil, newDecodeError(ErrInvalidTime, pos, "UTCTime contains non-digit characters")
		}
		layout = "060102150405Z"
	case KindGeneralizedTime:
		if err := checkGeneralizedTimeForm(s, pos); err != nil {
			return nil, err
		}
		layout = generalizedTimeLayout(s)
	}

	t, perr := time.Parse(layout, s)
	if perr != nil {
		return nil, newDecodeError(ErrInvalidTime, pos, "invalid time value: ", perr.Error())
	}

	return schema.Build(Content{Kind: kind, Str: s, Time: t})
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// checkGeneralizedTimeForm enforces §4.4's GeneralizedTime shape:
// YYYYMMDDhhmmss, optionally followed by "." and one or more digits
// with no trailing zero, then a mandatory "Z".
func checkGeneralizedTimeForm(s string, pos int) error {
	if len(s) < 15 || s[len(s)-1] != 'Z' {
		return newDecodeError(ErrInvalidTime, pos,
			"GeneralizedTime must end in Z and carry at least YYYYMMDDhhmmss")
	}
	body := s[:len(s)-1]
	if !allDigits(body[:14]) {
		return newDecodeError(ErrInvalidTime, pos, "GeneralizedTime contains non-digit characters")
	}
	rest := body[14:]
	if rest == "" {
		return nil
	}
	if rest[0] != '.' || len(rest) < 2 {
		return newDecodeError(ErrInvalidTime, pos, "GeneralizedTime fraction must begin with '.' and have at least one digit")
	}
	frac := rest[1:]
	if !allDigits(frac) {
		return newDecodeError(ErrInvalidTime, pos, "GeneralizedTime fraction contains non-digit characters")
	}
	if frac[len(frac)-1] == '0' {
		return newDecodeError(ErrInvalidTime, pos, "GeneralizedTime fraction has a non-canonical trailing zero")
	}
	return nil
}

func generalizedTimeLayout(s string) string {
	const base = "20060102150405"
	body := s[:len(s)-1]
	if len(body) > 14 && body[14] == '.' {
		frac := body[15:]
		return base + "." + repeatZero(len(frac)) + "Z"
	}
	return base + "Z"
}

func repeatZero(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

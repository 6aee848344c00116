package der

import "unicode/utf8"

/*
utf8.go implements the UTF8String check (tag 12). Grounded on the
teacher's utf8.go. A DER UTF8String must be well-formed UTF-8.
*/

func checkUTF8String(b []byte) (int, bool) {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i, false
		}
		i += size
	}
	return 0, true
}

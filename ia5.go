package der

/*
ia5.go implements the IA5String alphabet check (tag 22). Grounded on
the teacher's ia5.go, which documents the full International Alphabet
No. 5 range (0x00-0xFF as the teacher's own tolerant BER codec accepts
it); this decoder holds IA5String to its true IA5 range, 0x00-0x7F.
*/

func checkIA5String(b []byte) (int, bool) {
	for i, c := range b {
		if c > 0x7F {
			return i, false
		}
	}
	return 0, true
}

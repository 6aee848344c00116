package der

/*
vs.go implements the VisibleString alphabet check (tag 26). Grounded
on the teacher's vs.go, which rejects control characters via isCtrl;
this validator works over raw bytes instead and accepts only printable
ASCII (0x20-0x7E), so it rejects control characters and every octet
above 0x7E.
*/

func checkVisibleString(b []byte) (int, bool) {
	for i, c := range b {
		if c < 0x20 || c > 0x7E {
			return i, false
		}
	}
	return 0, true
}

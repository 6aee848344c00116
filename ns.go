package der

/*
ns.go implements the NumericString alphabet check (tag 18). Grounded
on the teacher's ns.go (NumericString): digits and space only.
*/

func checkNumericString(b []byte) (int, bool) {
	for i, c := range b {
		if !(c >= '0' && c <= '9') && c != ' ' {
			return i, false
		}
	}
	return 0, true
}

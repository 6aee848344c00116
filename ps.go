package der

/*
ps.go implements the PrintableString alphabet check (tag 19).
Grounded on the teacher's ps.go (PrintableString), which documents the
same X.680 §41.4 character set this validator enforces at decode time.
*/

func checkPrintableString(b []byte) (int, bool) {
	for i, c := range b {
		if !isPrintableStringChar(c) {
			return i, false
		}
	}
	return 0, true
}

func isPrintableStringChar(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

package der

import "testing"

// nestedSeq builds a chain of n SEQUENCE schema nodes, each wrapping a
// single field named "inner", bottoming out at a NULL leaf.
func nestedSeq(n int) Schema {
	var inner Schema = leaf(KindNull)
	for i := 0; i < n; i++ {
		inner = seqSchema(Field{Name: "inner", Schema: inner})
	}
	return inner
}

func TestDecode_constructedNestingAtMaxDepthSucceeds(t *testing.T) {
	// SEQUENCE{SEQUENCE{SEQUENCE{SEQUENCE{NULL}}}}: four levels, reaching
	// MaxDepth exactly on the innermost NULL field.
	b := mustHex(t, "30083006300430020500")
	if _, _, err := Decode(b, nestedSeq(4)); err != nil {
		t.Fatalf("Decode: %v", err)
	}
}

func TestDecode_constructedNestingBeyondMaxDepthFails(t *testing.T) {
	// One level deeper than the previous case.
	b := mustHex(t, "300A30083006300430020500")
	if _, _, err := Decode(b, nestedSeq(5)); errKindOf(err) != ErrRecursionLimitExceeded {
		t.Fatalf("want ErrRecursionLimitExceeded, got %v", err)
	}
}

func TestDecode_anyPreservesRawTLV(t *testing.T) {
	b := mustHex(t, "0403616263")
	val, _, err := Decode(b, anySchema())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	raw := val.([]byte)
	if len(raw) != len(b) {
		t.Fatalf("ANY must preserve the whole TLV, got %d bytes want %d", len(raw), len(b))
	}
}

func TestDecode_constructedFormForbiddenForPrimitive(t *testing.T) {
	// OCTET STRING encoded in constructed form (bit 0x20 set) is illegal
	// in DER, which requires primitive form for OCTET STRING.
	b := mustHex(t, "2403616263")
	if _, _, err := Decode(b, leaf(KindOctetString)); errKindOf(err) != ErrConstructedFormForbidden {
		t.Fatalf("want ErrConstructedFormForbidden, got %v", err)
	}
}

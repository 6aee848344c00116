package der

import "testing"

func TestDecode_acceptsStringSubstrate(t *testing.T) {
	val, rest, err := Decode("\x04\x03abc", leaf(KindOctetString))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("rest must be empty")
	}
	if string(val.([]byte)) != "abc" {
		t.Fatalf("want abc, got %v", val)
	}
}

type byteser struct{ b []byte }

func (b byteser) Bytes() []byte { return b.b }

func TestDecode_acceptsBytesMethodSubstrate(t *testing.T) {
	val, _, err := Decode(byteser{b: mustHex(t, "0403616263")}, leaf(KindOctetString))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(val.([]byte)) != "abc" {
		t.Fatalf("want abc, got %v", val)
	}
}

func TestDecode_rejectsUnsupportedSubstrate(t *testing.T) {
	if _, _, err := Decode(42, leaf(KindOctetString)); errKindOf(err) != ErrUnsupportedSubstrate {
		t.Fatalf("want ErrUnsupportedSubstrate, got %v", err)
	}
}

func TestDecode_trailingDataAfterTopLevelTLV(t *testing.T) {
	b := mustHex(t, "04036162630500")
	_, rest, err := Decode(b, leaf(KindOctetString))
	if errKindOf(err) != ErrTrailingDataAfterTLV {
		t.Fatalf("want ErrTrailingDataAfterTLV, got %v", err)
	}
	if len(rest) != 2 {
		t.Fatalf("want 2 leftover bytes reported on the error path, got %d", len(rest))
	}
}

package schema

import (
	"testing"

	"github.com/JesseCoretta/go-objectid"
	der "github.com/havregryn/strictder"
)

func TestOID_decodesToDotNotation(t *testing.T) {
	// 06 03 2a 03 04 -> 1.2.3.4  (first octet 0x2a = 40*1 + 2)
	v, _, err := der.Decode(mustHex(t, "06032a0304"), OID())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dn, ok := v.(objectid.DotNotation)
	if !ok {
		t.Fatalf("expected objectid.DotNotation, got %T", v)
	}
	if dn.String() != "1.2.3.4" {
		t.Fatalf("expected \"1.2.3.4\", got %q", dn.String())
	}
}

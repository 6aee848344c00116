package schema

import (
	"testing"

	der "github.com/havregryn/strictder"
)

func TestWithDefault_booleanRejectsEncodedDefault(t *testing.T) {
	n, err := Boolean().WithDefault(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seq := seqOf(t, "SEQUENCE", der.Field{Name: "flag", Schema: n, Optional: true})
	if _, _, err := der.Decode(mustHex(t, "3003010100"), seq); err == nil {
		t.Fatal("expected DefaultValueEncoded error when the DEFAULT value is present on the wire")
	}
}

func TestWithDefault_booleanAllowsNonDefaultEncoded(t *testing.T) {
	n, err := Boolean().WithDefault(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seq := seqOf(t, "SEQUENCE", der.Field{Name: "flag", Schema: n, Optional: true})
	if _, _, err := der.Decode(mustHex(t, "30030101ff"), seq); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWithDefault_booleanRejectsNonBoolValue(t *testing.T) {
	if _, err := Boolean().WithDefault("nope"); err == nil {
		t.Fatal("expected error for non-bool BOOLEAN default")
	}
}

func TestWithDefault_integerAcceptsIntLiteral(t *testing.T) {
	if _, err := Integer().WithDefault(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWithDefault_unsupportedKindFails(t *testing.T) {
	if _, err := Null().WithDefault(nil); err == nil {
		t.Fatal("expected error: DEFAULT is not supported for NULL")
	}
}

// seqOf is a tiny local helper building a one-field SEQUENCE node for
// these DEFAULT-value tests, independent of FromStruct.
func seqOf(t *testing.T, _ string, fields ...der.Field) *Node {
	t.Helper()
	return &Node{
		kind:   der.KindSequence,
		fields: fields,
		build: func(c der.Content) (any, error) {
			return c.Fields, nil
		},
	}
}

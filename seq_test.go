package der

import "testing"

func TestDecode_sequenceFields(t *testing.T) {
	// SEQUENCE { PrintableString "A", OCTET STRING "a" }
	b := mustHex(t, "3006130141040161")
	schema := seqSchema(
		Field{Name: "name", Schema: leaf(KindPrintableString)},
		Field{Name: "value", Schema: leaf(KindOctetString)},
	)

	val, _, err := Decode(b, schema)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	fields := val.(map[string]any)
	if fields["name"].(string) != "A" {
		t.Fatalf("name: want A, got %v", fields["name"])
	}
	if string(fields["value"].([]byte)) != "a" {
		t.Fatalf("value: want a, got %v", fields["value"])
	}
}

func TestDecode_sequenceMissingRequiredField(t *testing.T) {
	b := mustHex(t, "3003130141")
	schema := seqSchema(
		Field{Name: "name", Schema: leaf(KindPrintableString)},
		Field{Name: "value", Schema: leaf(KindOctetString)},
	)
	if _, _, err := Decode(b, schema); errKindOf(err) != ErrMissingRequiredField {
		t.Fatalf("want ErrMissingRequiredField, got %v", err)
	}
}

func TestDecode_sequenceOptionalFieldOmitted(t *testing.T) {
	b := mustHex(t, "3003130141")
	schema := seqSchema(
		Field{Name: "name", Schema: leaf(KindPrintableString)},
		Field{Name: "value", Schema: leaf(KindOctetString), Optional: true},
	)
	val, _, err := Decode(b, schema)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	fields := val.(map[string]any)
	if _, present := fields["value"]; present {
		t.Fatalf("optional field must be absent, got %v", fields["value"])
	}
}

func TestDecode_sequenceTrailingField(t *testing.T) {
	b := mustHex(t, "30051301410500")
	schema := seqSchema(Field{Name: "name", Schema: leaf(KindPrintableString)})
	if _, _, err := Decode(b, schema); errKindOf(err) != ErrUnexpectedTrailingField {
		t.Fatalf("want ErrUnexpectedTrailingField, got %v", err)
	}
}

func TestDecode_sequenceDefaultValueEncoded(t *testing.T) {
	// SEQUENCE { PrintableString "A", UTCTime DEFAULT "251231235959Z" }
	b := mustHex(t, "3012"+"1301"+"41"+"170D"+hexEncode("251231235959Z"))
	def := leaf(KindUTCTime)
	def.hasDefault = true
	def.defaultEqual = func(v any) bool { return true }
	schema := seqSchema(
		Field{Name: "name", Schema: leaf(KindPrintableString)},
		Field{Name: "when", Schema: def},
	)
	if _, _, err := Decode(b, schema); errKindOf(err) != ErrDefaultValueEncoded {
		t.Fatalf("want ErrDefaultValueEncoded, got %v", err)
	}
}

func TestDecode_sequenceDefaultValueOmittedSucceeds(t *testing.T) {
	b := mustHex(t, "3003130141")
	def := leaf(KindUTCTime)
	def.hasDefault = true
	def.defaultEqual = func(v any) bool { return true }
	schema := seqSchema(
		Field{Name: "name", Schema: leaf(KindPrintableString)},
		Field{Name: "when", Schema: def},
	)
	if _, _, err := Decode(b, schema); err != nil {
		t.Fatalf("Decode: %v", err)
	}
}

func TestDecode_sequenceOfSizeConstraint(t *testing.T) {
	b := mustHex(t, "3000")
	schema := seqOfSchema(leaf(KindPrintableString), 1, -1, true)
	if _, _, err := Decode(b, schema); errKindOf(err) != ErrSizeConstraintViolated {
		t.Fatalf("want ErrSizeConstraintViolated, got %v", err)
	}
}

func TestDecode_sequenceOfValues(t *testing.T) {
	b := mustHex(t, "3006" + "130141" + "130142")
	schema := seqOfSchema(leaf(KindPrintableString), 1, -1, true)
	val, _, err := Decode(b, schema)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	children := val.([]any)
	if len(children) != 2 || children[0].(string) != "A" || children[1].(string) != "B" {
		t.Fatalf("unexpected children: %v", children)
	}
}

func hexEncode(s string) string {
	const hexdigits = "0123456789abcdef"
	out := make([]byte, 0, len(s)*2)
	for _, c := range []byte(s) {
		out = append(out, hexdigits[c>>4], hexdigits[c&0x0F])
	}
	return string(out)
}

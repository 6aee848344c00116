package schema

import (
	"math/big"
	"testing"

	der "github.com/havregryn/strictder"
)

type person struct {
	Name string
	Age  *big.Int
}

func TestFromStruct_decodesSimpleSequence(t *testing.T) {
	sch, err := FromStruct(&person{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// SEQUENCE { Name UTF8String "Ann", Age INTEGER 30 }
	// 0c 03 "Ann" -> 0c03416e6e (5 bytes) ; 02 01 1e (3 bytes) -> content 8 bytes
	hexStr := "30" + "08" + "0c03416e6e" + "02011e"
	v, rest, err := der.Decode(mustHex(t, hexStr), sch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("expected no trailing bytes, got %x", rest)
	}

	p, ok := v.(*person)
	if !ok {
		t.Fatalf("expected *person, got %T", v)
	}
	if p.Name != "Ann" {
		t.Fatalf("expected Name \"Ann\", got %q", p.Name)
	}
	if p.Age == nil || p.Age.Int64() != 30 {
		t.Fatalf("expected Age 30, got %v", p.Age)
	}
}

type withOptional struct {
	Name     string
	Nickname string `asn1:"tag:0,explicit,optional"`
}

func TestFromStruct_optionalFieldOmitted(t *testing.T) {
	sch, err := FromStruct(&withOptional{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hexStr := "30" + "05" + "0c03416e6e"
	v, _, err := der.Decode(mustHex(t, hexStr), sch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w, ok := v.(*withOptional)
	if !ok {
		t.Fatalf("expected *withOptional, got %T", v)
	}
	if w.Name != "Ann" {
		t.Fatalf("expected Name \"Ann\", got %q", w.Name)
	}
	if w.Nickname != "" {
		t.Fatalf("expected omitted Nickname to stay zero-valued, got %q", w.Nickname)
	}
}

type withSlice struct {
	Tags []string
}

func TestFromStruct_sliceFieldDecodesSequenceOf(t *testing.T) {
	sch, err := FromStruct(&withSlice{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// SEQUENCE { Tags SEQUENCE OF UTF8String { "a", "b" } }
	inner := "30" + "06" + "0c0161" + "0c0162"
	hexStr := "30" + "08" + inner
	v, _, err := der.Decode(mustHex(t, hexStr), sch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w, ok := v.(*withSlice)
	if !ok {
		t.Fatalf("expected *withSlice, got %T", v)
	}
	if len(w.Tags) != 2 || w.Tags[0] != "a" || w.Tags[1] != "b" {
		t.Fatalf("unexpected Tags: %#v", w.Tags)
	}
}

type withNested struct {
	Inner *person
}

func TestFromStruct_nestedStructField(t *testing.T) {
	sch, err := FromStruct(&withNested{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	innerPerson := "30" + "08" + "0c03416e6e" + "02011e" // tag+len+content = 10 bytes total
	hexStr := "30" + "0a" + innerPerson
	v, _, err := der.Decode(mustHex(t, hexStr), sch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w, ok := v.(*withNested)
	if !ok {
		t.Fatalf("expected *withNested, got %T", v)
	}
	if w.Inner == nil || w.Inner.Name != "Ann" {
		t.Fatalf("unexpected Inner: %#v", w.Inner)
	}
}

func TestFromStruct_rejectsNonPointerArgument(t *testing.T) {
	if _, err := FromStruct(person{}); err == nil {
		t.Fatal("expected error: FromStruct requires a pointer to a struct")
	}
}

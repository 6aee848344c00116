package der

/*
err.go contains the single DecodeError category (§7 of SPEC_FULL.md)
and the error-kind constructors used throughout the decoder. Message
building leans on the teacher's mkerrf pattern: build once with a
strings.Builder, avoid fmt on the hot path.
*/

import "strings"

/*
ErrorKind distinguishes the cause of a DecodeError. See the table in
§7 of SPEC_FULL.md for the full rationale behind each kind.
*/
type ErrorKind uint8

const (
	ErrInsufficientData ErrorKind = iota
	ErrLongFormTagUnsupported
	ErrIndefiniteLengthForbidden
	ErrReservedLength
	ErrNonMinimalLength
	ErrLengthTooLarge
	ErrTagMismatch
	ErrConstructedFormForbidden
	ErrBooleanNonCanonical
	ErrIntegerNonMinimal
	ErrBitStringPadBitsNonZero
	ErrNamedBitStringNonMinimal
	ErrNullNonEmpty
	ErrIllegalCharacter
	ErrInvalidOID
	ErrInvalidTime
	ErrTrailingContentBytes
	ErrTrailingDataAfterTLV
	ErrMissingRequiredField
	ErrUnexpectedTrailingField
	ErrSetMembersMisordered
	ErrSetOfMembersMisordered
	ErrSizeConstraintViolated
	ErrDefaultValueEncoded
	ErrNoChoiceAlternative
	ErrRecursionLimitExceeded
	ErrUnsupportedSubstrate
	ErrInvalidSchema
)

var errorKindNames = map[ErrorKind]string{
	ErrInsufficientData:          "InsufficientData",
	ErrLongFormTagUnsupported:    "LongFormTagUnsupported",
	ErrIndefiniteLengthForbidden: "IndefiniteLengthForbidden",
	ErrReservedLength:            "ReservedLength",
	ErrNonMinimalLength:          "NonMinimalLength",
	ErrLengthTooLarge:            "LengthTooLarge",
	ErrTagMismatch:               "TagMismatch",
	ErrConstructedFormForbidden:  "ConstructedFormForbidden",
	ErrBooleanNonCanonical:       "BooleanNonCanonical",
	ErrIntegerNonMinimal:         "IntegerNonMinimal",
	ErrBitStringPadBitsNonZero:   "BitStringPadBitsNonZero",
	ErrNamedBitStringNonMinimal:  "NamedBitStringNonMinimal",
	ErrNullNonEmpty:              "NullNonEmpty",
	ErrIllegalCharacter:          "IllegalCharacter",
	ErrInvalidOID:                "InvalidOID",
	ErrInvalidTime:               "InvalidTime",
	ErrTrailingContentBytes:      "TrailingContentBytes",
	ErrTrailingDataAfterTLV:      "TrailingDataAfterTLV",
	ErrMissingRequiredField:      "MissingRequiredField",
	ErrUnexpectedTrailingField:   "UnexpectedTrailingField",
	ErrSetMembersMisordered:      "SetMembersMisordered",
	ErrSetOfMembersMisordered:    "SetOfMembersMisordered",
	ErrSizeConstraintViolated:    "SizeConstraintViolated",
	ErrDefaultValueEncoded:       "DefaultValueEncoded",
	ErrNoChoiceAlternative:       "NoChoiceAlternative",
	ErrRecursionLimitExceeded:    "RecursionLimitExceeded",
	ErrUnsupportedSubstrate:      "UnsupportedSubstrate",
	ErrInvalidSchema:             "InvalidSchema",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return "UnknownErrorKind"
}

/*
DecodeError is the single error category surfaced by this package.
Every decoding failure carries a Kind, the byte Offset at which the
failure was detected, and a human-readable Message.
*/
type DecodeError struct {
	Kind    ErrorKind
	Offset  int
	Message string
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(" at offset ")
	b.WriteString(itoa(e.Offset))
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is lets errors.Is(err, der.ErrKind(k)) match any DecodeError of kind k.
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	return ok && t.Kind == e.Kind && t.Offset < 0
}

// ErrKind returns a sentinel usable with errors.Is to test a DecodeError's
// kind without caring about its offset or message.
func ErrKind(k ErrorKind) error {
	return &DecodeError{Kind: k, Offset: -1}
}

func newDecodeError(kind ErrorKind, offset int, parts ...string) *DecodeError {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p)
	}
	return &DecodeError{Kind: kind, Offset: offset, Message: b.String()}
}

func errTagMismatch(offset int, wantClass, wantTag, gotClass, gotTag int) error {
	return newDecodeError(ErrTagMismatch, offset,
		"expected tag ", TagNames[wantTag], " (class ", ClassNames[wantClass], ")",
		", got tag ", itoa(gotTag), " (class ", ClassNames[gotClass], ")")
}

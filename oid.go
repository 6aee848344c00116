package der

import (
	"strconv"
	"strings"

	"github.com/JesseCoretta/go-objectid"
)

/*
oid.go implements the OBJECT IDENTIFIER validator (§4.4 of
SPEC_FULL.md). Grounded on the teacher's oid.go (OID's own sub-identifier
walk) and on JesseCoretta/go-dirsyn's oid.go, which shows the pack's
convention of handing a fully-built dotted string to
objectid.NewDotNotation rather than constructing arcs through that
package's own builder API.
*/

func validateOID(schema Schema, content *Cursor) (any, error) {
	pos := content.pos()
	b, err := content.readN(content.remaining())
	if err != nil {
		return nil, err
	}
	if len(b) < 1 {
		return nil, newDecodeError(ErrInvalidOID, pos, "OBJECT IDENTIFIER requires at least one content octet")
	}

	arcs, err := readSubIdentifiers(b, pos)
	if err != nil {
		return nil, err
	}

	first := arcs[0]
	var x, y uint64
	switch {
	case first < 40:
		x, y = 0, first
	case first < 80:
		x, y = 1, first-40
	default:
		x, y = 2, first-80
	}

	full := make([]uint64, 0, len(arcs)+1)
	full = append(full, x, y)
	full = append(full, arcs[1:]...)

	dotted := dottedString(full)
	if _, err := objectid.NewDotNotation(dotted); err != nil {
		return nil, newDecodeError(ErrInvalidOID, pos, "invalid dotted OID: ", err.Error())
	}

	return schema.Build(Content{Kind: KindOID, OID: full})
}

// readSubIdentifiers splits content into its base-128 variable-length
// sub-identifiers, rejecting any leading 0x80 octet except for the
// single-octet encoding of the value zero (§4.4 "OBJECT IDENTIFIER").
func readSubIdentifiers(b []byte, base int) ([]uint64, error) {
	var arcs []uint64
	i := 0
	for i < len(b) {
		start := i
		if b[i] == 0x80 {
			return nil, newDecodeError(ErrInvalidOID, base+start,
				"sub-identifier has non-minimal leading 0x80 octet")
		}

		var v uint64
		for {
			if i >= len(b) {
				return nil, newDecodeError(ErrInvalidOID, base+start,
					"truncated sub-identifier")
			}
			v = v<<7 | uint64(b[i]&0x7F)
			cont := b[i]&0x80 != 0
			i++
			if !cont {
				break
			}
		}
		arcs = append(arcs, v)
	}
	if len(arcs) == 0 {
		return nil, newDecodeError(ErrInvalidOID, base, "no sub-identifiers present")
	}
	return arcs, nil
}

func dottedString(arcs []uint64) string {
	parts := make([]string, len(arcs))
	for i, a := range arcs {
		parts[i] = strconv.FormatUint(a, 10)
	}
	return strings.Join(parts, ".")
}

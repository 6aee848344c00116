package schema

import (
	"strconv"
	"strings"

	der "github.com/havregryn/strictder"
	"github.com/JesseCoretta/go-objectid"
)

/*
oid.go wires the OID schema node to github.com/JesseCoretta/go-objectid,
the same library der/oid.go already uses to validate a decoded arc
chain. There, the dotted string is built and handed to
objectid.NewDotNotation purely to confirm it is well-formed, and the
resulting value is thrown away in favor of the bare []uint64 arcs. Here,
in the schema adapter that actually hands a value back to a caller, the
DotNotation itself is preserved so an OID field decodes into a type
that already knows how to render itself and navigate its own arcs,
instead of a caller re-deriving that from []uint64 a second time.
*/

// OID returns a schema node for the OBJECT IDENTIFIER type whose Build
// yields a github.com/JesseCoretta/go-objectid DotNotation value rather
// than a bare arc slice.
func OID() *Node {
	return &Node{kind: der.KindOID, build: func(c der.Content) (any, error) {
		dotted := dottedArcs(c.OID)
		dn, err := objectid.NewDotNotation(dotted)
		if err != nil {
			return nil, mkerr("schema: decoded OID \"" + dotted + "\" rejected by go-objectid: " + err.Error())
		}
		return dn, nil
	}}
}

func dottedArcs(arcs []uint64) string {
	parts := make([]string, len(arcs))
	for i, a := range arcs {
		parts[i] = strconv.FormatUint(a, 10)
	}
	return strings.Join(parts, ".")
}

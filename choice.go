package der

/*
choice.go implements the CHOICE half of the Choice/Tagging Resolver
(§4.5 of SPEC_FULL.md). Grounded on the teacher's choice.go concept of
an ambiguity-resistant tag-indexed alternative lookup (errorAmbiguousChoice,
errorNoChoiceForType in its former err.go), rewritten around this
package's TagKey-indexed Schema.Alternatives rather than reflect type
matching, since CHOICE here is resolved purely by the tag actually on
the wire, not by inspecting a Go value's runtime type.
*/

// decodeChoice peeks the next identifier, looks it up among schema's
// alternatives by (class, number), and decodes with the matched
// alternative. A CHOICE has no wrapping TLV of its own: the matched
// alternative's own tag (possibly overlaid) is what appears on the
// wire.
func decodeChoice(schema Schema, c *Cursor, depth int) (any, error) {
	pos := c.pos()
	tag, err := peekIdentifier(c)
	if err != nil {
		return nil, err
	}

	alts := schema.Alternatives()
	alt, ok := alts[TagKey{Class: tag.Class, Number: tag.Number}]
	if !ok {
		return nil, newDecodeError(ErrNoChoiceAlternative, pos,
			"no CHOICE alternative registered for class ", ClassNames[tag.Class],
			" tag ", itoa(tag.Number))
	}

	return decodeNode(alt, c, depth+1)
}

// peekIdentifier reads just the identifier octet(s) of the next TLV
// without advancing c or reading its length/content, used by the
// CHOICE resolver to pick an alternative before committing to it.
func peekIdentifier(c *Cursor) (Tag, error) {
	clone := &Cursor{data: c.data, offset: c.offset}
	return readIdentifier(clone)
}

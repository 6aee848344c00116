package der

/*
tlv.go contains the TLV type, produced by reading one complete DER
tag-length header off a Cursor and handing back a content sub-cursor.
Grounded on the teacher's tlv.go (the TLV struct shape: Class, Tag,
Compound, Length, Value), trimmed to the single encoding rule this
package supports and rewritten around Cursor instead of the teacher's
multi-rule Packet.
*/

// TLV is one decoded DER tag-length header, plus an independent Cursor
// over its content bytes.
type TLV struct {
	Class       int
	Number      int
	Constructed bool
	Length      int
	Content     *Cursor
}

func tlvString(t TLV) string {
	return "{Class:" + itoa(t.Class) + ", Tag:" + itoa(t.Number) +
		", Constructed:" + bool2str(t.Constructed) + ", Length:" + itoa(t.Length) + "}"
}

func (t TLV) String() string { return tlvString(t) }

// readTLV reads one identifier and length off c and returns a TLV whose
// Content cursor covers exactly the declared length. The parent cursor
// c is left positioned immediately after this TLV's content.
func readTLV(c *Cursor) (TLV, error) {
	tag, err := readIdentifier(c)
	if err != nil {
		return TLV{}, err
	}

	length, err := readLength(c)
	if err != nil {
		return TLV{}, err
	}

	content, err := c.subCursor(length)
	if err != nil {
		return TLV{}, err
	}

	return TLV{
		Class:       tag.Class,
		Number:      tag.Number,
		Constructed: tag.Constructed,
		Length:      length,
		Content:     content,
	}, nil
}

// peekTLV reads one TLV header from a copy of c's state without
// advancing c. The CHOICE resolver and SEQUENCE/SET field matching
// inspect only the next identifier, through peekIdentifier, not this.
func peekTLV(c *Cursor) (TLV, error) {
	clone := &Cursor{data: c.data, offset: c.offset}
	return readTLV(clone)
}

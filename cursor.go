package der

/*
cursor.go implements the Byte Cursor component (§4.1 of SPEC_FULL.md):
a bounds-checked sequential reader over an immutable byte slice. This
is new to the package — the teacher's offset-tracking Packet/PDU
abstraction (formerly der.go/tlv.go/pkt.go) was built around a
multi-encoding-rule read/write cursor; this Cursor keeps only the
read-side bookkeeping idiom (an immutable []byte plus an advancing
int offset) and drops everything rule-agnostic that this package does
not need, since decoding is DER-only and never writes.
*/

// Cursor is a bounds-checked, read-only view over a byte slice. Only
// offset advances; the underlying slice is never mutated or copied.
// subCursor hands the child an independent view of a bounded
// sub-range of the same backing array.
type Cursor struct {
	data   []byte
	offset int
}

func newCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// remaining returns the number of unread bytes.
func (c *Cursor) remaining() int { return len(c.data) - c.offset }

// pos returns the cursor's current absolute offset, used for error
// reporting.
func (c *Cursor) pos() int { return c.offset }

// peekByte returns the next byte without advancing the cursor.
func (c *Cursor) peekByte() (byte, error) {
	if c.remaining() < 1 {
		return 0, newDecodeError(ErrInsufficientData, c.offset, "peek past end of input")
	}
	return c.data[c.offset], nil
}

// readByte returns the next byte and advances the cursor by one.
func (c *Cursor) readByte() (byte, error) {
	b, err := c.peekByte()
	if err == nil {
		c.offset++
	}
	return b, err
}

// readN returns the next k bytes and advances the cursor by k. The
// returned slice aliases the cursor's backing array; callers that
// need to retain it past further decoding should copy it.
func (c *Cursor) readN(k int) ([]byte, error) {
	if k < 0 || c.remaining() < k {
		return nil, newDecodeError(ErrInsufficientData, c.offset,
			"requested ", itoa(k), " bytes, ", itoa(c.remaining()), " remain")
	}
	b := c.data[c.offset : c.offset+k]
	c.offset += k
	return b, nil
}

// subCursor carves an independent Cursor over the next k bytes and
// advances the parent past them. The child cursor's offset starts at
// zero and is wholly separate from the parent's bookkeeping: once the
// child is handed off, the parent has already moved past the whole
// sub-range regardless of how much of it the child actually consumes.
func (c *Cursor) subCursor(k int) (*Cursor, error) {
	b, err := c.readN(k)
	if err != nil {
		return nil, err
	}
	return newCursor(b), nil
}

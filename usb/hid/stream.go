package hid

import "fmt"

// ReportDescriptor is a complete report descriptor as an ordered, flat item
// sequence. Order is semantically significant on a USB host (global/local
// state carries forward, collections nest), but this codec neither builds nor
// validates that structure.
type ReportDescriptor []Item

// Decode parses a report descriptor byte stream into its items.
//
// The stream has no framing beyond its total length: items are decoded back
// to back until the buffer is exactly exhausted. A header whose size class
// demands more payload bytes than remain fails with ErrTruncatedStream and no
// partial sequence is returned.
func Decode(data []byte) (ReportDescriptor, error) {
	var items ReportDescriptor
	off := 0
	for off < len(data) {
		p, s, err := DecodeHeader(data[off])
		if err != nil {
			return nil, fmt.Errorf("hid: item %d at offset %d: %w", len(items), off, err)
		}
		n, err := s.PayloadLen()
		if err != nil {
			return nil, fmt.Errorf("hid: item %d at offset %d: %w", len(items), off, err)
		}
		if rem := len(data) - off - 1; rem < n {
			return nil, fmt.Errorf("hid: item %d at offset %d (%s): payload needs %d bytes, %d remain: %w",
				len(items), off, p, n, rem, ErrTruncatedStream)
		}
		items = append(items, Item{
			Prefix: p,
			Data:   append(Data(nil), data[off+1:off+1+n]...),
		})
		off += 1 + n
	}
	return items, nil
}

// Bytes encodes the items back to back in sequence order. Decoding a valid
// buffer and encoding the result reproduces the original bytes exactly.
// Collection balance is not checked; that belongs to a usage-table validator,
// not the codec.
func (r ReportDescriptor) Bytes() ([]byte, error) {
	var buf []byte
	for i, it := range r {
		b, err := it.appendTo(buf)
		if err != nil {
			return nil, fmt.Errorf("hid: item %d: %w", i, err)
		}
		buf = b
	}
	return buf, nil
}

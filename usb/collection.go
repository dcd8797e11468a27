package usb

// DescriptorEntry is one registered descriptor blob.
type DescriptorEntry struct {
	Type uint8
	Data Data
}

// DescriptorCollection is an ordered table of encoded descriptors for one
// device. Emitters register their opaque byte blobs here; assembling the
// table into configuration descriptors, string tables or transfer responses
// is the host application's concern.
//
// The zero value is an empty collection ready for use. Collections are not
// safe for concurrent use.
type DescriptorCollection struct {
	entries []DescriptorEntry
}

// AddDescriptor appends a descriptor of the given type and returns its index
// in the table.
func (c *DescriptorCollection) AddDescriptor(data []byte, descriptorType uint8) int {
	c.entries = append(c.entries, DescriptorEntry{
		Type: descriptorType,
		Data: append(Data(nil), data...),
	})
	return len(c.entries) - 1
}

// Descriptors returns the registered blobs of the given type, in
// registration order.
func (c *DescriptorCollection) Descriptors(descriptorType uint8) []Data {
	var out []Data
	for _, e := range c.entries {
		if e.Type == descriptorType {
			out = append(out, e.Data)
		}
	}
	return out
}

// Len returns the number of registered descriptors of any type.
func (c *DescriptorCollection) Len() int {
	return len(c.entries)
}

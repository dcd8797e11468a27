package hid

import (
	"encoding/binary"
	"fmt"
)

// SizeClass is the 2-bit field in an item header selecting the payload byte
// length. The mapping to byte length is table-driven: class 3 selects 4
// bytes, not 3.
type SizeClass uint8

// sizeClassLen maps a size class to its payload byte length.
var sizeClassLen = [4]int{0, 1, 2, 4}

// PayloadLen returns the payload byte length selected by s.
func (s SizeClass) PayloadLen() (int, error) {
	if s > 3 {
		return 0, fmt.Errorf("hid: size class %d: %w", s, ErrInvalidSizeClass)
	}
	return sizeClassLen[s], nil
}

// SizeClassForLen returns the size class whose payload length is n.
// Valid payload lengths are 0, 1, 2, and 4 bytes.
func SizeClassForLen(n int) (SizeClass, error) {
	switch n {
	case 0:
		return 0, nil
	case 1:
		return 1, nil
	case 2:
		return 2, nil
	case 4:
		return 3, nil
	}
	return 0, fmt.Errorf("hid: item payload must be 0/1/2/4 bytes, got %d: %w", n, ErrInvalidPayloadLength)
}

// EncodeHeader packs a prefix and size class into the one-byte item header:
// prefix in bits 7..2, size class in bits 1..0.
func EncodeHeader(p Prefix, s SizeClass) (byte, error) {
	if !p.Valid() {
		return 0, fmt.Errorf("hid: prefix 0x%02X: %w", uint8(p), ErrInvalidPrefix)
	}
	if s > 3 {
		return 0, fmt.Errorf("hid: size class %d: %w", s, ErrInvalidSizeClass)
	}
	return byte(p)<<2 | byte(s), nil
}

// DecodeHeader splits a header byte into its prefix and size class.
// The 6-bit prefix must be a member of the closed set.
func DecodeHeader(b byte) (Prefix, SizeClass, error) {
	p := Prefix(b >> 2)
	if !p.Valid() {
		return 0, 0, fmt.Errorf("hid: header 0x%02X carries prefix 0x%02X: %w", b, uint8(p), ErrUnknownPrefix)
	}
	return p, SizeClass(b & 0b11), nil
}

// Item is one short item of a report descriptor: a prefix plus its raw
// payload bytes. The payload is kept in wire form so that decode followed by
// encode reproduces the input bit for bit; the Flags and Value accessors
// interpret it on demand.
//
// Whether the payload is a flag record or a plain integer is decided by the
// (prefix, payload length) pair, not by the payload itself: Input, Output and
// Feature items carry a flag record at 1 or 4 bytes and fall back to a plain
// integer otherwise (see Flags).
type Item struct {
	Prefix Prefix
	Data   Data
}

// NewItem builds an item from a prefix and raw payload bytes. The payload
// must be 0, 1, 2, or 4 bytes; its length selects the size class.
func NewItem(p Prefix, payload ...byte) (Item, error) {
	if !p.Valid() {
		return Item{}, fmt.Errorf("hid: prefix 0x%02X: %w", uint8(p), ErrInvalidPrefix)
	}
	if _, err := SizeClassForLen(len(payload)); err != nil {
		return Item{}, fmt.Errorf("hid: %s item: %w", p, err)
	}
	return Item{Prefix: p, Data: append(Data(nil), payload...)}, nil
}

// NewValueItem builds an item carrying v as a little-endian integer in the
// smallest of the 1/2/4-byte widths that holds it.
func NewValueItem(p Prefix, v uint32) (Item, error) {
	return NewItem(p, dataU32(v)...)
}

// NewSignedItem builds an item carrying v two's-complement little-endian in
// the smallest of the 1/2/4-byte widths that holds it.
func NewSignedItem(p Prefix, v int32) (Item, error) {
	return NewItem(p, dataI32(v)...)
}

// SizeClass returns the size class implied by the item's payload length.
func (it Item) SizeClass() (SizeClass, error) {
	return SizeClassForLen(len(it.Data))
}

// Value returns the payload interpreted as a little-endian unsigned integer.
// It returns false when the item has no payload (absent is not the same as
// present-and-zero) and when the payload is a flag record.
func (it Item) Value() (uint32, bool) {
	if it.flagged() {
		return 0, false
	}
	switch len(it.Data) {
	case 1:
		return uint32(it.Data[0]), true
	case 2:
		return uint32(binary.LittleEndian.Uint16(it.Data)), true
	case 4:
		return binary.LittleEndian.Uint32(it.Data), true
	}
	return 0, false
}

// Flags returns the payload interpreted as a flag record. It returns false
// for items outside the Input/Output/Feature category.
//
// For Input/Output/Feature items whose size class selects 0 or 2 bytes it
// also returns false: those payloads decode as plain integers. The HID spec
// only defines the 1- and 4-byte record shapes, and this codec keeps the
// fallback rather than rejecting such streams.
func (it Item) Flags() (ItemFlags, bool) {
	if !it.flagged() {
		return ItemFlags{}, false
	}
	if len(it.Data) == 1 {
		return decodeFlags1(it.Data[0]), true
	}
	return decodeFlags4(binary.LittleEndian.Uint32(it.Data)), true
}

// flagged is the payload dispatch: flag record iff the prefix is in the
// Input/Output/Feature category and the size class selects 1 or 4 bytes.
func (it Item) flagged() bool {
	return it.Prefix.HasFlags() && (len(it.Data) == 1 || len(it.Data) == 4)
}

// Bytes encodes the item as header byte plus payload bytes.
func (it Item) Bytes() ([]byte, error) {
	return it.appendTo(nil)
}

func (it Item) appendTo(buf []byte) ([]byte, error) {
	s, err := it.SizeClass()
	if err != nil {
		return nil, fmt.Errorf("hid: %s item: %w", it.Prefix, err)
	}
	h, err := EncodeHeader(it.Prefix, s)
	if err != nil {
		return nil, err
	}
	buf = append(buf, h)
	return append(buf, it.Data...), nil
}

func (it Item) String() string {
	if f, ok := it.Flags(); ok {
		return fmt.Sprintf("%s (%s)", it.Prefix, f)
	}
	if v, ok := it.Value(); ok {
		return fmt.Sprintf("%s 0x%X", it.Prefix, v)
	}
	return it.Prefix.String()
}

func dataU32(v uint32) Data {
	if v <= 0xFF {
		return Data{uint8(v)}
	}
	if v <= 0xFFFF {
		return Data{uint8(v), uint8(v >> 8)}
	}
	return Data{uint8(v), uint8(v >> 8), uint8(v >> 16), uint8(v >> 24)}
}

func dataI32(v int32) Data {
	if v >= -128 && v <= 127 {
		return Data{uint8(v)}
	}
	if v >= -32768 && v <= 32767 {
		uv := uint16(int16(v))
		return Data{uint8(uv), uint8(uv >> 8)}
	}
	uv := uint32(v)
	return Data{uint8(uv), uint8(uv >> 8), uint8(uv >> 16), uint8(uv >> 24)}
}

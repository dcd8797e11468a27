// Package hid implements a bit-exact codec for USB HID report descriptors.
//
// A report descriptor is a flat byte stream of short "items": a one-byte
// header (6-bit prefix, 2-bit size class) followed by 0, 1, 2, or 4 payload
// bytes. This package decodes such a stream into typed items, encodes items
// back to the identical bytes, and builds report descriptors incrementally
// together with the 9-byte HID class descriptor that advertises them.
//
// The codec deliberately treats the descriptor as a flat ordered sequence.
// It does not validate collection nesting or usage-table semantics.
package hid

import "errors"

// Data is a strongly-typed byte slice used for HID report descriptor payloads.
//
// It exists to avoid exposing raw []byte fields on report descriptor models.
// The underlying representation is still bytes because that is what the USB/HID
// specification ultimately requires.
type Data []uint8

// Decode and encode failures. All are deterministic input-validation errors;
// nothing in this package is transient or retryable.
var (
	// ErrUnknownPrefix is returned when a header byte carries a 6-bit prefix
	// outside the closed set enumerated by this package.
	ErrUnknownPrefix = errors.New("hid: unknown item prefix")

	// ErrInvalidPrefix is returned on the encode path when a caller supplies
	// a prefix value that is not a member of the closed set.
	ErrInvalidPrefix = errors.New("hid: invalid item prefix")

	// ErrTruncatedStream is returned when a buffer ends before a declared
	// payload length is satisfied. Decoding is all or nothing; no partial
	// item sequence is ever returned.
	ErrTruncatedStream = errors.New("hid: truncated item stream")

	// ErrInvalidPayloadLength is returned when a caller-supplied payload is
	// not exactly 0, 1, 2, or 4 bytes long.
	ErrInvalidPayloadLength = errors.New("hid: invalid item payload length")

	// ErrInvalidSizeClass is returned when a size class is outside 0..3.
	// Unreachable from the wire (the field is 2 bits wide); checked
	// defensively on the encode path.
	ErrInvalidSizeClass = errors.New("hid: invalid item size class")
)

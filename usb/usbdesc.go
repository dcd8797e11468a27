// Package usb contains the HID class descriptor record and the descriptor
// table that collects encoded descriptors for a device.
package usb

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// USB descriptor type constants
const (
	HIDDescType    = 0x21
	ReportDescType = 0x22
)

// Descriptor lengths in bytes (fixed values from USB spec)
const (
	HIDDescLen = 9
)

type Data []uint8

// HIDDescriptor is the fixed 9-byte HID class descriptor (USB HID 1.11
// section 6.2.1) that announces a report descriptor and its length.
//
// bLength and bDescriptorType are constants (9 and HIDDescType) and implied;
// the remaining fields are stored. WDescriptorLength must equal the exact
// byte length of the report descriptor it advertises; hid.ReportBuilder
// always recomputes it at emit time rather than trusting a caller value.
type HIDDescriptor struct {
	BcdHID             uint16 // LE, binary coded decimal (0x0111 = 1.11)
	BCountryCode       uint8
	BNumDescriptors    uint8
	BRepDescriptorType uint8
	WDescriptorLength  uint16 // LE
}

// NewHIDDescriptor returns a descriptor with the HID 1.11 defaults:
// version 1.11, no country code, one subordinate report descriptor (0x22).
func NewHIDDescriptor() HIDDescriptor {
	return HIDDescriptor{
		BcdHID:             0x0111,
		BCountryCode:       0,
		BNumDescriptors:    1,
		BRepDescriptorType: ReportDescType,
	}
}

// Bytes returns the 9-byte little-endian encoding with bLength and
// bDescriptorType auto-filled.
func (h HIDDescriptor) Bytes() []byte {
	var b bytes.Buffer
	b.WriteByte(HIDDescLen)
	b.WriteByte(HIDDescType)
	_ = binary.Write(&b, binary.LittleEndian, h.BcdHID)
	b.WriteByte(h.BCountryCode)
	b.WriteByte(h.BNumDescriptors)
	b.WriteByte(h.BRepDescriptorType)
	_ = binary.Write(&b, binary.LittleEndian, h.WDescriptorLength)
	return b.Bytes()
}

// Version renders BcdHID in its human form, e.g. "1.11".
func (h HIDDescriptor) Version() string {
	return fmt.Sprintf("%x.%02x", h.BcdHID>>8, uint8(h.BcdHID))
}

// ParseHIDDescriptor decodes a 9-byte HID class descriptor, validating the
// two constant fields.
func ParseHIDDescriptor(data []byte) (HIDDescriptor, error) {
	if len(data) < HIDDescLen {
		return HIDDescriptor{}, fmt.Errorf("usb: HID descriptor needs %d bytes, got %d", HIDDescLen, len(data))
	}
	if data[0] != HIDDescLen {
		return HIDDescriptor{}, fmt.Errorf("usb: HID descriptor bLength must be %d, got %d", HIDDescLen, data[0])
	}
	if data[1] != HIDDescType {
		return HIDDescriptor{}, fmt.Errorf("usb: HID descriptor bDescriptorType must be 0x%02X, got 0x%02X", HIDDescType, data[1])
	}
	return HIDDescriptor{
		BcdHID:             binary.LittleEndian.Uint16(data[2:4]),
		BCountryCode:       data[4],
		BNumDescriptors:    data[5],
		BRepDescriptorType: data[6],
		WDescriptorLength:  binary.LittleEndian.Uint16(data[7:9]),
	}, nil
}

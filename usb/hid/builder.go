package hid

import (
	"fmt"

	"github.com/hidwire/hidwire/usb"
)

// DescriptorRegistrar receives the encoded report descriptor when a
// ReportBuilder emits. *usb.DescriptorCollection implements it.
type DescriptorRegistrar interface {
	// AddDescriptor registers an opaque descriptor blob of the given type
	// and returns its index in the table.
	AddDescriptor(data []byte, descriptorType uint8) int
}

// pendingReport is one queued contribution: either a pre-encoded byte blob
// or a structured item, encoded at emit time.
type pendingReport struct {
	raw  []byte
	item Item
	// isItem discriminates; a nil raw blob is still a valid (empty) blob.
	isItem bool
}

// ReportBuilder accumulates report items for one HID function and emits the
// HID class descriptor that advertises them.
//
// The builder follows a two-phase protocol: Add* calls only accumulate and
// never touch the registrar; a single Emit call encodes everything, computes
// wDescriptorLength, and performs the one registrar write. Builders are not
// safe for concurrent use.
type ReportBuilder struct {
	registrar DescriptorRegistrar
	pending   []pendingReport
}

// NewReportBuilder returns a builder that will register its report
// descriptor with registrar on Emit. The registrar is borrowed, not owned.
func NewReportBuilder(registrar DescriptorRegistrar) *ReportBuilder {
	return &ReportBuilder{registrar: registrar}
}

// AddReportRaw appends a pre-encoded byte blob to the report descriptor.
// The bytes pass through Emit unchanged and unvalidated.
func (b *ReportBuilder) AddReportRaw(data []byte) {
	b.pending = append(b.pending, pendingReport{raw: data})
}

// AddRawItem appends a structured item. It is encoded, and therefore
// validated, at Emit time.
func (b *ReportBuilder) AddRawItem(it Item) {
	b.pending = append(b.pending, pendingReport{item: it, isItem: true})
}

// AddReportItem appends one item built from a prefix and raw payload bytes.
// The size class is derived from the payload length, which must be 0, 1, 2,
// or 4 bytes.
func (b *ReportBuilder) AddReportItem(p Prefix, payload ...byte) error {
	it, err := NewItem(p, payload...)
	if err != nil {
		return err
	}
	b.AddRawItem(it)
	return nil
}

// AddReportValue appends one item carrying v little-endian in the smallest
// width that holds it.
func (b *ReportBuilder) AddReportValue(p Prefix, v uint32) error {
	it, err := NewValueItem(p, v)
	if err != nil {
		return err
	}
	b.AddRawItem(it)
	return nil
}

// AddReportSigned appends one item carrying v two's-complement little-endian
// in the smallest width that holds it.
func (b *ReportBuilder) AddReportSigned(p Prefix, v int32) error {
	it, err := NewSignedItem(p, v)
	if err != nil {
		return err
	}
	b.AddRawItem(it)
	return nil
}

// AddInputItem appends an Input item with the given flag configuration.
// See HID 1.11 section 6.2.2.5 for flag meanings.
func (b *ReportBuilder) AddInputItem(cfg FlagConfig) error {
	return b.AddFlagItem(PrefixInput, cfg)
}

// AddOutputItem appends an Output item with the given flag configuration.
func (b *ReportBuilder) AddOutputItem(cfg FlagConfig) error {
	return b.AddFlagItem(PrefixOutput, cfg)
}

// AddFeatureItem appends a Feature item with the given flag configuration.
func (b *ReportBuilder) AddFeatureItem(cfg FlagConfig) error {
	return b.AddFlagItem(PrefixFeature, cfg)
}

// AddFlagItem appends an Input, Output or Feature item. The record shape is
// selected by cfg.BufferedBytes alone: the 4-byte shape is used exactly when
// the BufferedBytes flag is requested, since the 1-byte shape cannot carry it.
func (b *ReportBuilder) AddFlagItem(p Prefix, cfg FlagConfig) error {
	it, err := NewFlagItem(p, cfg.Flags(), cfg.BufferedBytes)
	if err != nil {
		return err
	}
	b.AddRawItem(it)
	return nil
}

// ReportBytes encodes the pending contributions in append order without
// touching the registrar.
func (b *ReportBuilder) ReportBytes() ([]byte, error) {
	var buf []byte
	for i, p := range b.pending {
		if !p.isItem {
			buf = append(buf, p.raw...)
			continue
		}
		out, err := p.item.appendTo(buf)
		if err != nil {
			return nil, fmt.Errorf("hid: report contribution %d: %w", i, err)
		}
		buf = out
	}
	return buf, nil
}

// Emit encodes the accumulated report descriptor, registers it with the
// registrar under type 0x22, and returns the 9-byte HID class descriptor
// whose wDescriptorLength advertises the report's exact byte length.
//
// The length is always recomputed from the current contents. Emit is
// single-use in practice: calling it again re-encodes and registers another
// table entry.
func (b *ReportBuilder) Emit() ([]byte, error) {
	report, err := b.ReportBytes()
	if err != nil {
		return nil, err
	}
	if len(report) > 0xFFFF {
		return nil, fmt.Errorf("hid: report descriptor too large: %d bytes", len(report))
	}
	desc := usb.NewHIDDescriptor()
	desc.WDescriptorLength = uint16(len(report))
	b.registrar.AddDescriptor(report, usb.ReportDescType)
	return desc.Bytes(), nil
}

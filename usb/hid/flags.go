package hid

import (
	"fmt"
	"strings"
)

// Flag bit positions within the Input/Output/Feature flag record.
// Values per HID 1.11 section 6.2.2.5; the low byte is shared by the 1-byte
// and 4-byte record shapes, BufferedBytes exists only in the 4-byte shape.
const (
	flagDataConstant     uint32 = 1 << 0
	flagArrayVariable    uint32 = 1 << 1
	flagAbsoluteRelative uint32 = 1 << 2
	flagWrap             uint32 = 1 << 3
	flagNLinear          uint32 = 1 << 4
	flagNPreferred       uint32 = 1 << 5
	flagNull             uint32 = 1 << 6
	flagVolatile         uint32 = 1 << 7
	flagBufferedBytes    uint32 = 1 << 8
)

// ItemFlags is the decoded flag record of an Input, Output or Feature item,
// in wire sense: each field mirrors its bit exactly as encoded.
//
// Field naming follows the HID convention for two-state flags: a name like
// DataConstant reads "data when clear, constant when set". NLinear and
// NPreferred are negated-sense bits: the feature is enabled when the bit is
// clear. FlagConfig carries the positive-sense view for builders.
type ItemFlags struct {
	DataConstant     bool
	ArrayVariable    bool
	AbsoluteRelative bool
	Wrap             bool
	NLinear          bool
	NPreferred       bool
	Null             bool
	Volatile         bool

	// BufferedBytes is bit 8 and only exists in the 4-byte record shape.
	// Encoding it into the 1-byte shape silently drops it; callers choose
	// the shape explicitly (see Item construction and ReportBuilder).
	BufferedBytes bool
}

// decodeFlags1 unpacks the 1-byte record shape.
func decodeFlags1(b byte) ItemFlags {
	return decodeFlags4(uint32(b))
}

// decodeFlags4 unpacks the 4-byte record shape from its little-endian value.
// Bits above BufferedBytes are reserved and ignored.
func decodeFlags4(v uint32) ItemFlags {
	return ItemFlags{
		DataConstant:     v&flagDataConstant != 0,
		ArrayVariable:    v&flagArrayVariable != 0,
		AbsoluteRelative: v&flagAbsoluteRelative != 0,
		Wrap:             v&flagWrap != 0,
		NLinear:          v&flagNLinear != 0,
		NPreferred:       v&flagNPreferred != 0,
		Null:             v&flagNull != 0,
		Volatile:         v&flagVolatile != 0,
		BufferedBytes:    v&flagBufferedBytes != 0,
	}
}

// bits returns the record as a 32-bit value with reserved bits zero.
func (f ItemFlags) bits() uint32 {
	var v uint32
	set := func(on bool, bit uint32) {
		if on {
			v |= bit
		}
	}
	set(f.DataConstant, flagDataConstant)
	set(f.ArrayVariable, flagArrayVariable)
	set(f.AbsoluteRelative, flagAbsoluteRelative)
	set(f.Wrap, flagWrap)
	set(f.NLinear, flagNLinear)
	set(f.NPreferred, flagNPreferred)
	set(f.Null, flagNull)
	set(f.Volatile, flagVolatile)
	set(f.BufferedBytes, flagBufferedBytes)
	return v
}

// encode1 packs the 1-byte record shape. BufferedBytes does not fit and is
// dropped.
func (f ItemFlags) encode1() byte {
	return byte(f.bits())
}

// encode4 packs the 4-byte record shape, little-endian, reserved bits zero.
func (f ItemFlags) encode4() Data {
	v := f.bits()
	return Data{uint8(v), uint8(v >> 8), uint8(v >> 16), uint8(v >> 24)}
}

// String renders the record the way HID listings usually do, e.g.
// "Data,Var,Abs" for the common keyboard input item.
func (f ItemFlags) String() string {
	pick := func(on bool, set, clear string) string {
		if on {
			return set
		}
		return clear
	}
	parts := []string{
		pick(f.DataConstant, "Const", "Data"),
		pick(f.ArrayVariable, "Var", "Array"),
		pick(f.AbsoluteRelative, "Rel", "Abs"),
	}
	if f.Wrap {
		parts = append(parts, "Wrap")
	}
	if f.NLinear {
		parts = append(parts, "NonLinear")
	}
	if f.NPreferred {
		parts = append(parts, "NoPreferred")
	}
	if f.Null {
		parts = append(parts, "Null")
	}
	if f.Volatile {
		parts = append(parts, "Volatile")
	}
	if f.BufferedBytes {
		parts = append(parts, "BufferedBytes")
	}
	return strings.Join(parts, ",")
}

// NewFlagItem builds an Input, Output or Feature item carrying f. The record
// shape is an explicit caller choice, never inferred from the flags: wide
// selects the 4-byte shape, otherwise the 1-byte shape is used (in which
// BufferedBytes cannot be represented).
func NewFlagItem(p Prefix, f ItemFlags, wide bool) (Item, error) {
	if !p.HasFlags() {
		return Item{}, fmt.Errorf("hid: %s does not carry a flag record: %w", p, ErrInvalidPrefix)
	}
	if wide {
		return Item{Prefix: p, Data: f.encode4()}, nil
	}
	return Item{Prefix: p, Data: Data{f.encode1()}}, nil
}

// FlagConfig is the builder-facing, positive-sense view of a flag record.
//
// Wire polarity and defaults, field by field:
//
//	Constant      default false  -> bit 0 (Data/Constant) clear
//	Variable      default true   -> bit 1 (Array/Variable) set
//	Relative      default false  -> bit 2 (Absolute/Relative) clear
//	Wrap          default false  -> bit 3 clear
//	Linear        default true   -> bit 4 (NonLinear) CLEAR when true
//	Preferred     default true   -> bit 5 (NoPreferred) CLEAR when true
//	Null          default false  -> bit 6 clear
//	Volatile      default false  -> bit 7 clear
//	BufferedBytes default false  -> bit 8 clear; true also selects the
//	                                4-byte record shape in the builder
//
// Use DefaultFlagConfig to start from these defaults; the zero value of
// FlagConfig instead has every feature disabled, including Variable, Linear
// and Preferred.
type FlagConfig struct {
	Constant      bool
	Variable      bool
	Relative      bool
	Wrap          bool
	Linear        bool
	Preferred     bool
	Null          bool
	Volatile      bool
	BufferedBytes bool
}

// DefaultFlagConfig returns the flag defaults of HID 1.11: variable, linear,
// absolute data with a preferred state.
func DefaultFlagConfig() FlagConfig {
	return FlagConfig{Variable: true, Linear: true, Preferred: true}
}

// Flags converts the positive-sense configuration to the wire-sense record,
// negating Linear and Preferred into their n-bits.
func (c FlagConfig) Flags() ItemFlags {
	return ItemFlags{
		DataConstant:     c.Constant,
		ArrayVariable:    c.Variable,
		AbsoluteRelative: c.Relative,
		Wrap:             c.Wrap,
		NLinear:          !c.Linear,
		NPreferred:       !c.Preferred,
		Null:             c.Null,
		Volatile:         c.Volatile,
		BufferedBytes:    c.BufferedBytes,
	}
}

package hid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagBitOrderOneByte(t *testing.T) {
	// The common keyboard input item: Data,Var,Abs with linear response and
	// a preferred state encodes to exactly 0x02.
	f := ItemFlags{ArrayVariable: true}
	assert.Equal(t, byte(0x02), f.encode1())

	it, err := NewFlagItem(PrefixInput, f, false)
	require.NoError(t, err)
	b, err := it.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x81, 0x02}, b)
}

func TestFlagBitPositions(t *testing.T) {
	cases := []struct {
		name  string
		flags ItemFlags
		want  byte
	}{
		{"constant", ItemFlags{DataConstant: true}, 0x01},
		{"variable", ItemFlags{ArrayVariable: true}, 0x02},
		{"relative", ItemFlags{AbsoluteRelative: true}, 0x04},
		{"wrap", ItemFlags{Wrap: true}, 0x08},
		{"nonlinear", ItemFlags{NLinear: true}, 0x10},
		{"no preferred", ItemFlags{NPreferred: true}, 0x20},
		{"null", ItemFlags{Null: true}, 0x40},
		{"volatile", ItemFlags{Volatile: true}, 0x80},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.flags.encode1())
			assert.Equal(t, tc.flags, decodeFlags1(tc.want))
		})
	}
}

func TestFourByteFlagShape(t *testing.T) {
	// BufferedBytes sits at bit 8, directly above the shared low byte.
	it, err := NewItem(PrefixOutput, 0x02, 0x01, 0x00, 0x00)
	require.NoError(t, err)

	f, ok := it.Flags()
	require.True(t, ok)
	assert.True(t, f.BufferedBytes)
	assert.True(t, f.ArrayVariable)
	assert.Equal(t, ItemFlags{ArrayVariable: true, BufferedBytes: true}, f)

	// Encoding the record back yields the same four bytes with reserved
	// bits zero.
	enc := f.encode4()
	assert.Equal(t, Data{0x02, 0x01, 0x00, 0x00}, enc)
}

func TestFourByteFlagReservedBitsIgnored(t *testing.T) {
	f := decodeFlags4(0xFFFF_FE00)
	assert.Equal(t, ItemFlags{}, f, "reserved bits must not surface as flags")
}

func TestFlagShapeIsCallerChosen(t *testing.T) {
	f := ItemFlags{ArrayVariable: true}

	narrow, err := NewFlagItem(PrefixFeature, f, false)
	require.NoError(t, err)
	assert.Len(t, narrow.Data, 1)

	wide, err := NewFlagItem(PrefixFeature, f, true)
	require.NoError(t, err)
	assert.Len(t, wide.Data, 4)

	nb, err := narrow.Bytes()
	require.NoError(t, err)
	wb, err := wide.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xB1, 0x02}, nb)
	assert.Equal(t, []byte{0xB3, 0x02, 0x00, 0x00, 0x00}, wb)
}

func TestNewFlagItemRejectsPlainPrefix(t *testing.T) {
	_, err := NewFlagItem(PrefixUsagePage, ItemFlags{}, false)
	assert.ErrorIs(t, err, ErrInvalidPrefix)
}

func TestFlagConfigPolarity(t *testing.T) {
	cfg := DefaultFlagConfig()
	assert.True(t, cfg.Variable)
	assert.True(t, cfg.Linear)
	assert.True(t, cfg.Preferred)

	// Positive-sense defaults map to cleared n-bits on the wire.
	assert.Equal(t, byte(0x02), cfg.Flags().encode1())

	cfg.Linear = false
	cfg.Preferred = false
	assert.Equal(t, byte(0x32), cfg.Flags().encode1())

	// The zero value disables everything, including the negated-sense pair.
	assert.Equal(t, byte(0x30), FlagConfig{}.Flags().encode1())
}

func TestFlagString(t *testing.T) {
	assert.Equal(t, "Data,Var,Abs", ItemFlags{ArrayVariable: true}.String())
	assert.Equal(t, "Const,Array,Abs", ItemFlags{DataConstant: true}.String())
	assert.Equal(t, "Data,Var,Rel,Wrap,BufferedBytes",
		ItemFlags{ArrayVariable: true, AbsoluteRelative: true, Wrap: true, BufferedBytes: true}.String())
}

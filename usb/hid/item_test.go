package hid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allPrefixes = []Prefix{
	PrefixInput, PrefixOutput, PrefixFeature, PrefixCollection, PrefixEndCollection,
	PrefixUsagePage, PrefixLogicalMin, PrefixLogicalMax, PrefixPhysicalMin, PrefixPhysicalMax,
	PrefixUnitExponent, PrefixUnit, PrefixReportSize, PrefixReportID, PrefixReportCount,
	PrefixPush, PrefixPop,
	PrefixUsage, PrefixUsageMin, PrefixUsageMax, PrefixDesignatorIdx, PrefixDesignatorMin,
	PrefixDesignatorMax, PrefixStringIdx, PrefixStringMin, PrefixStringMax, PrefixDelimiter,
}

func TestHeaderRoundTrip(t *testing.T) {
	for _, p := range allPrefixes {
		for s := SizeClass(0); s <= 3; s++ {
			h, err := EncodeHeader(p, s)
			require.NoError(t, err, "%s size %d", p, s)

			gotP, gotS, err := DecodeHeader(h)
			require.NoError(t, err, "%s size %d", p, s)
			assert.Equal(t, p, gotP)
			assert.Equal(t, s, gotS)
		}
	}
}

func TestHeaderPacking(t *testing.T) {
	// Keyboard sample bytes: prefix in the high 6 bits, size class in the low 2.
	h, err := EncodeHeader(PrefixUsagePage, 1)
	require.NoError(t, err)
	assert.Equal(t, byte(0x05), h)

	h, err = EncodeHeader(PrefixInput, 1)
	require.NoError(t, err)
	assert.Equal(t, byte(0x81), h)

	h, err = EncodeHeader(PrefixEndCollection, 0)
	require.NoError(t, err)
	assert.Equal(t, byte(0xC0), h)
}

func TestEncodeHeaderRejectsBadInput(t *testing.T) {
	_, err := EncodeHeader(Prefix(0b111111), 0)
	assert.ErrorIs(t, err, ErrInvalidPrefix)

	_, err = EncodeHeader(PrefixInput, 4)
	assert.ErrorIs(t, err, ErrInvalidSizeClass)
}

func TestDecodeHeaderRejectsUnknownPrefix(t *testing.T) {
	// 0b111111_00: reserved prefix, valid size class.
	_, _, err := DecodeHeader(0xFC)
	assert.ErrorIs(t, err, ErrUnknownPrefix)

	// 0xFE is the long-item sentinel; its 6-bit prefix is not in the set.
	_, _, err = DecodeHeader(0xFE)
	assert.ErrorIs(t, err, ErrUnknownPrefix)
}

func TestSizeClassTable(t *testing.T) {
	wantLen := map[SizeClass]int{0: 0, 1: 1, 2: 2, 3: 4}
	for s, want := range wantLen {
		n, err := s.PayloadLen()
		require.NoError(t, err)
		assert.Equal(t, want, n, "size class %d", s)

		back, err := SizeClassForLen(want)
		require.NoError(t, err)
		assert.Equal(t, s, back, "length %d", want)
	}

	_, err := SizeClass(4).PayloadLen()
	assert.ErrorIs(t, err, ErrInvalidSizeClass)

	for _, n := range []int{3, 5, -1, 16} {
		_, err := SizeClassForLen(n)
		assert.ErrorIs(t, err, ErrInvalidPayloadLength, "length %d", n)
	}
}

func TestNewItem(t *testing.T) {
	it, err := NewItem(PrefixUsagePage, 0x01)
	require.NoError(t, err)
	b, err := it.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x05, 0x01}, b)

	_, err = NewItem(PrefixUsagePage, 1, 2, 3)
	assert.ErrorIs(t, err, ErrInvalidPayloadLength)

	_, err = NewItem(Prefix(0b111111), 1)
	assert.ErrorIs(t, err, ErrInvalidPrefix)
}

func TestValueItemWidthSelection(t *testing.T) {
	cases := []struct {
		name string
		item func() (Item, error)
		want []byte
	}{
		{"one byte", func() (Item, error) { return NewValueItem(PrefixUsage, 6) }, []byte{0x09, 0x06}},
		{"two bytes", func() (Item, error) { return NewValueItem(PrefixUsage, 0x0238) }, []byte{0x0A, 0x38, 0x02}},
		{"four bytes", func() (Item, error) { return NewValueItem(PrefixUsage, 0x0001_0000) }, []byte{0x0B, 0x00, 0x00, 0x01, 0x00}},
		{"signed one byte", func() (Item, error) { return NewSignedItem(PrefixLogicalMin, -1) }, []byte{0x15, 0xFF}},
		{"signed two bytes", func() (Item, error) { return NewSignedItem(PrefixLogicalMax, 255) }, []byte{0x26, 0xFF, 0x00}},
		{"signed four bytes", func() (Item, error) { return NewSignedItem(PrefixLogicalMin, -100000) }, []byte{0x17, 0x60, 0x79, 0xFE, 0xFF}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it, err := tc.item()
			require.NoError(t, err)
			b, err := it.Bytes()
			require.NoError(t, err)
			assert.Equal(t, tc.want, b)
		})
	}
}

func TestValueAbsentVersusZero(t *testing.T) {
	empty, err := NewItem(PrefixEndCollection)
	require.NoError(t, err)
	_, ok := empty.Value()
	assert.False(t, ok, "zero-length payload must decode as absent")

	zero, err := NewItem(PrefixLogicalMin, 0x00)
	require.NoError(t, err)
	v, ok := zero.Value()
	assert.True(t, ok)
	assert.Equal(t, uint32(0), v)
}

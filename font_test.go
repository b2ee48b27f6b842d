package slyr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFont(t *testing.T) {
	buf := newBlob().font("Tahoma", 0, fontItalic|fontUnderline, 700, 85000).bytes()
	obj, err := Decode(buf, &DecodeOptions{RequireFullConsumption: true})
	require.NoError(t, err)
	f := obj.(*Font)
	assert.Equal(t, Dict{
		"type":          "Font",
		"version":       1,
		"font_name":     "Tahoma",
		"charset":       int64(0),
		"weight":        int64(700),
		"size":          8.5,
		"italic":        true,
		"strikethrough": false,
		"underline":     true,
	}, ToDict(f))
}

func TestFont_Charsets(t *testing.T) {
	testCases := []struct {
		name     string
		charset  uint16
		raw      []byte
		expected string
	}{
		{name: "western", charset: 0, raw: []byte{'C', 'a', 'f', 0xe9}, expected: "Café"},
		{name: "cyrillic", charset: 204, raw: []byte{0xc0, 0xf0, 0xe8, 0xe0, 0xeb}, expected: "Ариал"},
		{name: "greek", charset: 161, raw: []byte{0xc1, 0xe8}, expected: "Αθ"},
		{name: "shift jis", charset: 128, raw: []byte{0x82, 0xa0}, expected: "あ"},
		{name: "unknown falls back to 1252", charset: 77, raw: []byte{0xe9}, expected: "é"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf := newBlob().guid(GuidFont).u8(1).u16(tc.charset).u8(0).u16(400).u32(100000).
				u8(uint8(len(tc.raw))).raw(tc.raw...).bytes()
			obj, err := Decode(buf, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, obj.(*Font).Name)
		})
	}
}

func TestFont_BadMarker(t *testing.T) {
	buf := newBlob().guid(GuidFont).u8(2).bytes()
	_, err := Decode(buf, nil)
	require.ErrorIs(t, err, ErrUnsupportedVersion)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, uint16(2), de.Got)
	assert.Equal(t, "Font", de.TypeName)
	assert.Equal(t, 16, de.Offset)
}

func TestFont_TruncatedName(t *testing.T) {
	buf := newBlob().guid(GuidFont).u8(1).u16(0).u8(0).u16(400).u32(100000).u8(10).raw('a').bytes()
	_, err := Decode(buf, nil)
	assert.ErrorIs(t, err, ErrTruncated)
}

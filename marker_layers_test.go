package slyr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func characterMarkerHead(version uint16) *blob {
	return newBlob().object(GuidCharacterMarkerSymbol, version).rgb(labRed).u32(0x41).
		f64(30).f64(12).f64(1).f64(2).f64(1.5).f64(0.5)
}

func TestCharacterMarkerSymbol(t *testing.T) {
	t.Run("version 1", func(t *testing.T) {
		b := characterMarkerHead(1).font("Wingdings", 2, 0, 400, 120000).level(0)
		d := decodeLayer(t, b)
		assert.Equal(t, "Wingdings", d["font"])
		assert.Equal(t, int64(0x41), d["unicode"])
		assert.Equal(t, 30.0, d["angle"])
		assert.Equal(t, 12.0, d["size"])
		assert.Equal(t, 1.0, d["x_offset"])
		assert.Equal(t, 2.0, d["y_offset"])
		assert.Equal(t, 1.5, d["x_scale"])
		assert.Equal(t, 0.5, d["y_scale"])
		assert.Equal(t, false, d["rotate_with_transform"])
		assert.Equal(t, "Font", d["std_font"].(Dict)["type"])
	})
	t.Run("version 2", func(t *testing.T) {
		b := characterMarkerHead(2).font("Arial", 0, 0, 700, 80000).level(0).u16(1)
		d := decodeLayer(t, b)
		assert.Equal(t, "Arial", d["font"])
		assert.Equal(t, true, d["rotate_with_transform"])
	})
	t.Run("version 3", func(t *testing.T) {
		b := characterMarkerHead(3).level(0).u16(1).str("ESRI Default Marker").
			f64(0).f64(0).u32(400).u32(0).u32(10)
		d := decodeLayer(t, b)
		assert.Equal(t, "ESRI Default Marker", d["font"])
		assert.Nil(t, d["std_font"])
	})
	t.Run("version 4", func(t *testing.T) {
		b := characterMarkerHead(4).level(0).u16(0).str("ESRI North").
			f64(0).f64(1).u32(400).u32(5).u32(10).
			font("ESRI North", 0, fontItalic, 400, 100000)
		d := decodeLayer(t, b)
		assert.Equal(t, "ESRI North", d["font"])
		font := d["std_font"].(Dict)
		assert.Equal(t, true, font["italic"])
		assert.Equal(t, 10.0, font["size"])
	})
}

func TestArrowMarkerSymbol(t *testing.T) {
	b := newBlob().object(GuidArrowMarkerSymbol, 2).rgb(labBlue).
		f64(6).f64(3).f64(90).u32(0).level(0).f64(0.5).f64(-0.5).u16(1)
	d := decodeLayer(t, b)
	assert.Equal(t, blueDict(), d["color"])
	assert.Equal(t, 6.0, d["size"])
	assert.Equal(t, 3.0, d["width"])
	assert.Equal(t, 90.0, d["angle"])
	assert.Equal(t, int64(0), d["style"])
	assert.Equal(t, 0.5, d["x_offset"])
	assert.Equal(t, -0.5, d["y_offset"])
	assert.Equal(t, true, d["rotate_with_transform"])
}

func pictureMarkerTail(b *blob, version uint16) *blob {
	if version < 4 {
		b.null()
	}
	if version <= 8 {
		b.null()
	}
	b.rgb(labRed).rgb(labBlue)
	if version >= 9 {
		b.rgb(labGray127)
	}
	b.f64(0).f64(16).f64(0).f64(0).f64(1).f64(1).level(0).u8(0).u16(1)
	if version >= 5 {
		b.u32(0).u16(0)
	}
	if version == 8 {
		b.u32(3).zeros(3)
	}
	return b
}

func TestPictureMarkerSymbol(t *testing.T) {
	bmp := bitmapBytes(10)
	for _, version := range []uint16{3, 4, 5} {
		b := newBlob().object(GuidPictureMarkerSymbol, version)
		stdPicture(b, bmp)
		d := decodeLayer(t, pictureMarkerTail(b, version))
		assert.Equal(t, "bmp", d["picture"].(Dict)["format"], "version %d", version)
		assert.Equal(t, 16.0, d["size"])
	}
	for _, version := range []uint16{7, 8} {
		b := newBlob().object(GuidPictureMarkerSymbol, version).zeros(6)
		stdPicture(b, bmp)
		d := decodeLayer(t, pictureMarkerTail(b, version))
		assert.Equal(t, redDict(), d["color_foreground"], "version %d", version)
		assert.Nil(t, d["color_transparent"])
	}
	t.Run("version 9", func(t *testing.T) {
		b := newBlob().object(GuidPictureMarkerSymbol, 9).u32(2).u32(1).u32(uint32(len(bmp))).raw(bmp...)
		d := decodeLayer(t, pictureMarkerTail(b, 9))
		assert.Equal(t, "RgbColor", d["color_transparent"].(Dict)["type"])
		assert.Equal(t, true, d["rotate_with_transform"])
	})
	t.Run("version 6", func(t *testing.T) {
		_, err := Decode(newBlob().object(GuidPictureMarkerSymbol, 6).bytes(), nil)
		require.ErrorIs(t, err, ErrUnsupportedVersion)
	})
}

func TestSimpleMarkerSymbol_UnknownType(t *testing.T) {
	b := newBlob().object(GuidSimpleMarkerSymbol, 1).rgb(labRed).f64(3).u32(12)
	_, err := Decode(b.bytes(), nil)
	require.ErrorIs(t, err, ErrUnreadableSymbol)
	assert.Contains(t, err.Error(), "unknown marker type 12")
	assert.Equal(t, "marker type(12)", MarkerType(12).String())
}

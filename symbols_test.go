package slyr

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/north-road/slyr-sub002/_test_data/blobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFixtures(t *testing.T) {
	names := blobs.List()
	require.NotEmpty(t, names)
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			buf, err := blobs.Open(name)
			require.NoError(t, err)
			obj, err := Decode(buf, &DecodeOptions{RequireFullConsumption: true})
			require.NoError(t, err)
			require.NotNil(t, obj)
			d := ToDict(obj)
			switch name {
			case "rgb_255_0_0":
				assert.Equal(t, redDict(), d)
			case "gray_47":
				assert.Equal(t, "GrayColor", d["type"])
				assert.Equal(t, 47, d["R"])
				assert.Equal(t, 47, d["G"])
				assert.Equal(t, 47, d["B"])
			case "cmyk_10_20_30_40":
				assert.Equal(t, 4, d["version"])
				assert.Equal(t, 40, d["K"])
			case "dash_dot_dot":
				assert.Equal(t, Dict{
					"type":         "LineSymbol",
					"version":      2,
					"symbol_level": int64(0),
					"levels": []any{
						Dict{
							"type":         "SimpleLineSymbol",
							"version":      1,
							"color":        redDict(),
							"width":        1.0,
							"line_type":    "dash dot dot",
							"enabled":      true,
							"locked":       false,
							"symbol_level": int64(0),
						},
					},
				}, d)
			case "simple_fill":
				levels := d["levels"].([]any)
				require.Len(t, levels, 1)
				layer := levels[0].(Dict)
				assert.Equal(t, "SimpleFillSymbol", layer["type"])
				assert.Equal(t, "solid", layer["fill_style"])
				assert.Equal(t, redDict(), layer["color"])
				assert.Equal(t, "outlined", layer["tags"])
				assert.Equal(t, int64(1), layer["symbol_level"])
				outline := layer["outline"].(Dict)
				assert.Equal(t, "SimpleLineSymbol", outline["type"])
				assert.Equal(t, 0.4, outline["width"])
				assert.Equal(t, blueDict(), outline["color"])
			case "simple_marker":
				assert.Equal(t, "MarkerSymbol", d["type"])
				assert.Equal(t, false, d["halo"])
				assert.Nil(t, d["halo_symbol"])
				levels := d["levels"].([]any)
				require.Len(t, levels, 1)
				layer := levels[0].(Dict)
				assert.Equal(t, "diamond", layer["marker_type"])
				assert.Equal(t, 8.0, layer["size"])
				assert.Equal(t, 45.0, layer["angle"])
				assert.Equal(t, 1.5, layer["x_offset"])
				assert.Equal(t, -2.5, layer["y_offset"])
				assert.Equal(t, true, layer["outline_enabled"])
				assert.Equal(t, 0.5, layer["outline_size"])
				assert.Equal(t, redDict(), layer["outline_color"])
				assert.Equal(t, true, layer["rotate_with_transform"])
			case "algorithmic_ramp":
				assert.Equal(t, "cielab", d["algorithm"])
				assert.Equal(t, redDict(), d["color1"])
				assert.Equal(t, blueDict(), d["color2"])
				assert.Equal(t, "Default Ramp", obj.(ColorRamp).RampNameType())
			}
		})
	}
}

func lineSymbolBlob(version uint16, layers func(b *blob) *blob, count uint32) *blob {
	b := newBlob().object(GuidLineSymbol, version).level(0).u32(count)
	return layers(b)
}

func TestLineSymbol_LayerStates(t *testing.T) {
	b := lineSymbolBlob(2, func(b *blob) *blob {
		return b.simpleLine(1, LineSolid, labRed).simpleLine(2, LineDashed, labBlue)
	}, 2)
	b.u32(1).u32(0).u32(0).u32(1).str("first").str("")
	obj, err := Decode(b.bytes(), &DecodeOptions{RequireFullConsumption: true})
	require.NoError(t, err)
	sym := obj.(*LineSymbol)
	layers := sym.SymbolLayers()
	require.Len(t, layers, 2)
	assert.Equal(t, LayerProps{Enabled: true, Locked: false, Tags: "first"}, *layers[0].Props())
	assert.Equal(t, LayerProps{Enabled: false, Locked: true}, *layers[1].Props())
	assert.Equal(t, "dashed", ToDict(layers[1])["line_type"])
}

func TestLineSymbol_Version1HasNoTags(t *testing.T) {
	b := lineSymbolBlob(1, func(b *blob) *blob {
		return b.simpleLine(1, LineSolid, labRed)
	}, 1).u32(1).u32(0)
	obj, err := Decode(b.bytes(), &DecodeOptions{RequireFullConsumption: true})
	require.NoError(t, err)
	assert.Equal(t, uint16(1), obj.Version())
}

func TestLineSymbol_WrongFamily(t *testing.T) {
	b := lineSymbolBlob(2, func(b *blob) *blob {
		return b.object(GuidColorSymbol, 1).rgb(labRed).level(0).zeros(4)
	}, 1)
	_, err := Decode(b.bytes(), nil)
	require.ErrorIs(t, err, ErrUnreadableSymbol)
	assert.Contains(t, err.Error(), "ColorSymbol, expected a line layer")
}

func TestLineSymbol_NullLayer(t *testing.T) {
	b := lineSymbolBlob(2, func(b *blob) *blob {
		return b.null()
	}, 1)
	_, err := Decode(b.bytes(), nil)
	require.ErrorIs(t, err, ErrUnreadableSymbol)
	assert.Contains(t, err.Error(), "null object")
}

func TestLineSymbol_BadRasterOp(t *testing.T) {
	buf := newBlob().object(GuidLineSymbol, 2).u32(7).u32(0).u32(0).bytes()
	_, err := Decode(buf, nil)
	require.ErrorIs(t, err, ErrUnreadableSymbol)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 18, de.Offset)
}

func TestLineSymbol_HugeLayerCount(t *testing.T) {
	buf := newBlob().object(GuidLineSymbol, 2).level(0).u32(0xffffffff).bytes()
	_, err := Decode(buf, nil)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestFillSymbol_ColorSymbolLayer(t *testing.T) {
	b := newBlob().object(GuidFillSymbol, 1).level(0).rgb(labRed).u32(1).
		object(GuidColorSymbol, 1).rgb(labBlue).level(3).zeros(4).
		u32(1).u32(0)
	obj, err := Decode(b.bytes(), &DecodeOptions{RequireFullConsumption: true})
	require.NoError(t, err)
	layers := obj.(Symbol).SymbolLayers()
	require.Len(t, layers, 1)
	d := ToDict(layers[0])
	assert.Equal(t, blueDict(), d["color"])
	assert.Equal(t, int64(3), d["symbol_level"])
}

func TestMarkerSymbol_Halo(t *testing.T) {
	b := newBlob().object(GuidMarkerSymbol, 1).level(0).zeros(32).null().
		u32(1).f64(2.5).
		object(GuidFillSymbol, 2).level(0).null().u32(0).
		u32(0)
	obj, err := Decode(b.bytes(), &DecodeOptions{RequireFullConsumption: true})
	require.NoError(t, err)
	d := ToDict(obj)
	assert.Equal(t, true, d["halo"])
	assert.Equal(t, 2.5, d["halo_size"])
	halo := d["halo_symbol"].(Dict)
	assert.Equal(t, "FillSymbol", halo["type"])
	assert.Equal(t, []any{}, d["levels"])
}

func TestDecodeFixtures_EveryPrefixIsTruncated(t *testing.T) {
	for _, name := range blobs.List() {
		t.Run(name, func(t *testing.T) {
			buf, err := blobs.Open(name)
			require.NoError(t, err)
			for n := 0; n < len(buf); n++ {
				_, err := Decode(buf[:n], nil)
				if !errors.Is(err, ErrTruncated) {
					t.Fatalf("prefix of %d bytes: expected truncated, got %v", n, err)
				}
			}
		})
	}
}

// outlinedFillBlob nests inner as the color of a line layer inside a fill layer's outline
func outlinedFillBlob(inner func(b *blob) *blob) []byte {
	b := newBlob().object(GuidFillSymbol, 2).level(0).null().u32(1).
		object(GuidSimpleFillSymbol, 1).
		object(GuidLineSymbol, 2).level(0).u32(1).
		object(GuidSimpleLineSymbol, 1)
	return inner(b).bytes()
}

func TestFillSymbol_NestedErrors(t *testing.T) {
	layers := []string{"FillSymbol", "SimpleFillSymbol", "LineSymbol", "SimpleLineSymbol"}
	testCases := []struct {
		name     string
		inner    func(b *blob) *blob
		kind     error
		offset   int
		typeName string
		path     []string
	}{
		{
			name:     "invalid color",
			inner:    func(b *blob) *blob { return b.rgb([3]float64{400, 0, 0}) },
			kind:     ErrInvalidColor,
			offset:   133,
			typeName: "RgbColor",
			path:     append(slices.Clone(layers), "RgbColor"),
		},
		{
			name:     "truncated color",
			inner:    func(b *blob) *blob { return b.object(GuidRgbColor, 1).zeros(5) },
			kind:     ErrTruncated,
			offset:   133,
			typeName: "RgbColor",
			path:     append(slices.Clone(layers), "RgbColor"),
		},
		{
			name:     "unsupported color version",
			inner:    func(b *blob) *blob { return b.object(GuidRgbColor, 3).zeros(31) },
			kind:     ErrUnsupportedVersion,
			offset:   128,
			typeName: "RgbColor",
			path:     append(slices.Clone(layers), "RgbColor"),
		},
		{
			name:   "unknown guid",
			inner:  func(b *blob) *blob { return b.guid("01234567-89ab-cdef-0123-456789abcdef") },
			kind:   ErrUnknownGuid,
			offset: 112,
			path:   layers,
		},
		{
			name:     "not implemented",
			inner:    func(b *blob) *blob { return b.guid("c5c02d50-7282-11d2-9816-0080c7e04196") },
			kind:     ErrNotImplemented,
			offset:   112,
			typeName: "MarkerTextBackground",
			path:     layers,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(outlinedFillBlob(tc.inner), nil)
			require.ErrorIs(t, err, tc.kind)
			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Same(t, de, err, "returned unwrapped from the failure point")
			assert.Equal(t, tc.offset, de.Offset)
			assert.Equal(t, tc.typeName, de.TypeName)
			assert.Equal(t, tc.path, de.Path)
			assert.Contains(t, err.Error(), strings.Join(tc.path, " > "))
		})
	}
}

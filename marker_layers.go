package slyr

import (
	"fmt"
)

type MarkerType uint32

const (
	MarkerCircle MarkerType = iota
	MarkerSquare
	MarkerCross
	MarkerX
	MarkerDiamond
)

var markerTypeNames = map[MarkerType]string{
	MarkerCircle:  "circle",
	MarkerSquare:  "square",
	MarkerCross:   "cross",
	MarkerX:       "x",
	MarkerDiamond: "diamond",
}

func (m MarkerType) String() string {
	if name, ok := markerTypeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("marker type(%d)", uint32(m))
}

// markerPlacement are the offsets and rotation common to marker layers
type markerPlacement struct {
	Size                float64
	Angle               float64
	XOffset             float64
	YOffset             float64
	RotateWithTransform bool
}

func (p *markerPlacement) fields(d Dict) Dict {
	d["size"] = p.Size
	d["angle"] = p.Angle
	d["x_offset"] = p.XOffset
	d["y_offset"] = p.YOffset
	d["rotate_with_transform"] = p.RotateWithTransform
	return d
}

func (p *markerPlacement) readRotate(s *Stream) (err error) {
	p.RotateWithTransform, err = s.ReadBool16()
	return err
}

// SimpleMarkerSymbol is a basic geometric marker with an optional outline
type SimpleMarkerSymbol struct {
	markerLayer
	markerPlacement
	Color          Color
	MarkerType     MarkerType
	OutlineEnabled bool
	OutlineWidth   float64
	OutlineColor   Color
}

func (m *SimpleMarkerSymbol) TypeName() string {
	return "SimpleMarkerSymbol"
}

func (m *SimpleMarkerSymbol) Versions() []uint16 {
	return versionsOneTwo
}

func (m *SimpleMarkerSymbol) Read(s *Stream, version uint16) (err error) {
	if m.Color, err = readColor(s); err != nil {
		return err
	}
	if m.Size, err = s.ReadFloat64(); err != nil {
		return err
	}
	if m.MarkerType, err = readEnum(s, markerTypeNames, "marker type"); err != nil {
		return err
	}
	if m.SymbolLevel, err = readSymbolLevel(s); err != nil {
		return err
	}
	for _, v := range []*float64{&m.Angle, &m.XOffset, &m.YOffset} {
		if *v, err = s.ReadFloat64(); err != nil {
			return err
		}
	}
	if m.OutlineEnabled, err = s.ReadBool8(); err != nil {
		return err
	}
	if m.OutlineWidth, err = s.ReadFloat64(); err != nil {
		return err
	}
	if m.OutlineColor, err = readColor(s); err != nil {
		return err
	}
	if version > 1 {
		return m.readRotate(s)
	}
	return nil
}

func (m *SimpleMarkerSymbol) Fields() Dict {
	return m.fields(Dict{
		"color":           dictOf(m.Color),
		"marker_type":     m.MarkerType.String(),
		"outline_enabled": m.OutlineEnabled,
		"outline_color":   dictOf(m.OutlineColor),
		"outline_size":    m.OutlineWidth,
	})
}

// CharacterMarkerSymbol draws a single font glyph
type CharacterMarkerSymbol struct {
	markerLayer
	markerPlacement
	Color    Color
	Unicode  int32
	XScale   float64
	YScale   float64
	FontName string
	StdFont  *Font
}

func (m *CharacterMarkerSymbol) TypeName() string {
	return "CharacterMarkerSymbol"
}

func (m *CharacterMarkerSymbol) Versions() []uint16 {
	return versionsOneToFour
}

func (m *CharacterMarkerSymbol) Read(s *Stream, version uint16) (err error) {
	if m.Color, err = readColor(s); err != nil {
		return err
	}
	if m.Unicode, err = s.ReadInt32(); err != nil {
		return err
	}
	for _, v := range []*float64{&m.Angle, &m.Size, &m.XOffset, &m.YOffset, &m.XScale, &m.YScale} {
		if *v, err = s.ReadFloat64(); err != nil {
			return err
		}
	}
	if version <= 2 {
		if m.StdFont, err = readTyped[*Font](s, "font"); err != nil {
			return err
		}
		if m.StdFont != nil {
			m.FontName = m.StdFont.Name
		}
	}
	if m.SymbolLevel, err = readSymbolLevel(s); err != nil {
		return err
	}
	if version > 1 {
		if err = m.readRotate(s); err != nil {
			return err
		}
	}
	if version < 3 {
		return nil
	}
	if m.FontName, err = s.ReadString(); err != nil {
		return err
	}
	if err = s.expectFloat64(0, "character marker value"); err != nil {
		return err
	}
	if err = s.expectFloat64(0, "character marker value"); err != nil {
		return err
	}
	if err = s.Skip(4, "font weight"); err != nil {
		return err
	}
	if err = s.expectUint32(0, "character marker value"); err != nil {
		return err
	}
	if err = s.Skip(4, "font size"); err != nil {
		return err
	}
	if version >= 4 {
		m.StdFont, err = readTyped[*Font](s, "font")
	}
	return err
}

func (m *CharacterMarkerSymbol) Fields() Dict {
	return m.fields(Dict{
		"color":    dictOf(m.Color),
		"unicode":  int64(m.Unicode),
		"font":     m.FontName,
		"std_font": dictOf(m.StdFont),
		"x_scale":  m.XScale,
		"y_scale":  m.YScale,
	})
}

// ArrowMarkerSymbol is an arrow head of a given length and width
type ArrowMarkerSymbol struct {
	markerLayer
	markerPlacement
	Color Color
	Width float64
	Style uint32
}

func (m *ArrowMarkerSymbol) TypeName() string {
	return "ArrowMarkerSymbol"
}

func (m *ArrowMarkerSymbol) Versions() []uint16 {
	return versionsTwo
}

func (m *ArrowMarkerSymbol) Read(s *Stream, version uint16) (err error) {
	if m.Color, err = readColor(s); err != nil {
		return err
	}
	for _, v := range []*float64{&m.Size, &m.Width, &m.Angle} {
		if *v, err = s.ReadFloat64(); err != nil {
			return err
		}
	}
	if m.Style, err = s.ReadUint32(); err != nil {
		return err
	}
	if m.SymbolLevel, err = readSymbolLevel(s); err != nil {
		return err
	}
	if m.XOffset, err = s.ReadFloat64(); err != nil {
		return err
	}
	if m.YOffset, err = s.ReadFloat64(); err != nil {
		return err
	}
	return m.readRotate(s)
}

func (m *ArrowMarkerSymbol) Fields() Dict {
	return m.fields(Dict{
		"color": dictOf(m.Color),
		"width": m.Width,
		"style": int64(m.Style),
	})
}

var versionsPictureMarker = []uint16{3, 4, 5, 7, 8, 9}

// PictureMarkerSymbol draws an embedded picture as a marker
type PictureMarkerSymbol struct {
	markerLayer
	markerPlacement
	Picture          *Picture
	ColorForeground  Color
	ColorBackground  Color
	ColorTransparent Color
	XScale           float64
	YScale           float64
	SwapFgBg         bool
}

func (m *PictureMarkerSymbol) TypeName() string {
	return "PictureMarkerSymbol"
}

func (m *PictureMarkerSymbol) Versions() []uint16 {
	return versionsPictureMarker
}

func (m *PictureMarkerSymbol) Read(s *Stream, version uint16) (err error) {
	switch version {
	case 3, 4, 5:
		m.Picture, err = readPictureObject(s)
	case 7, 8:
		if err = s.Skip(2+4, "picture version and type"); err != nil {
			return err
		}
		m.Picture, err = readPictureObject(s)
	default:
		m.Picture, err = readInlinePicture(s)
	}
	if err != nil {
		return err
	}
	if version < 4 {
		if _, err = s.ReadObject(); err != nil {
			return err
		}
	}
	if version <= 8 {
		if _, err = s.ReadObject(); err != nil {
			return err
		}
	}
	if m.ColorForeground, err = readColor(s); err != nil {
		return err
	}
	if m.ColorBackground, err = readColor(s); err != nil {
		return err
	}
	if version >= 9 {
		if m.ColorTransparent, err = readColor(s); err != nil {
			return err
		}
	}
	for _, v := range []*float64{&m.Angle, &m.Size, &m.XOffset, &m.YOffset, &m.XScale, &m.YScale} {
		if *v, err = s.ReadFloat64(); err != nil {
			return err
		}
	}
	if m.SymbolLevel, err = readSymbolLevel(s); err != nil {
		return err
	}
	if m.SwapFgBg, err = s.ReadBool8(); err != nil {
		return err
	}
	if err = m.readRotate(s); err != nil {
		return err
	}
	if version < 5 {
		return nil
	}
	if err = s.expectUint32(0, "picture marker value"); err != nil {
		return err
	}
	if err = s.expectUint16(0, "picture marker value"); err != nil {
		return err
	}
	if version == 5 || version == 7 || version == 9 {
		return nil
	}
	size, err := s.ReadUint32()
	if err != nil {
		return err
	}
	return s.Skip(int(size), "picture marker trailer")
}

func (m *PictureMarkerSymbol) Fields() Dict {
	return m.fields(Dict{
		"color_foreground":  dictOf(m.ColorForeground),
		"color_background":  dictOf(m.ColorBackground),
		"color_transparent": dictOf(m.ColorTransparent),
		"swap_fg_bg":        m.SwapFgBg,
		"x_scale":           m.XScale,
		"y_scale":           m.YScale,
		"picture":           m.Picture.dict(),
	})
}

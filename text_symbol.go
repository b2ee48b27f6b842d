package slyr

import (
	"fmt"
)

const noBreakCharacter = 0xFFFFFFFF

type TextCase int32

const (
	CaseNormal TextCase = iota
	CaseLower
	CaseAllCaps
	CaseSmallCaps
)

var textCaseNames = map[TextCase]string{
	CaseNormal:    "normal",
	CaseLower:     "lower",
	CaseAllCaps:   "allcaps",
	CaseSmallCaps: "smallcaps",
}

type TextPosition int32

const (
	PositionNormal TextPosition = iota
	PositionSuperscript
	PositionSubscript
)

var textPositionNames = map[TextPosition]string{
	PositionNormal:      "normal",
	PositionSuperscript: "superscript",
	PositionSubscript:   "subscript",
}

type HorizontalAlignment int32

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenter
	AlignRight
	AlignFull
)

var horizontalAlignmentNames = map[HorizontalAlignment]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
	AlignFull:   "full",
}

type VerticalAlignment int32

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBaseline
	AlignBottom
)

var verticalAlignmentNames = map[VerticalAlignment]string{
	AlignTop:      "top",
	AlignMiddle:   "center",
	AlignBaseline: "baseline",
	AlignBottom:   "bottom",
}

// enumName returns the name of v, or nil for values outside the table
func enumName[T comparable](names map[T]string, v T) any {
	if name, ok := names[v]; ok {
		return name
	}
	return nil
}

func (c TextCase) String() string {
	if name, ok := textCaseNames[c]; ok {
		return name
	}
	return fmt.Sprintf("case(%d)", int32(c))
}

func (p TextPosition) String() string {
	if name, ok := textPositionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("position(%d)", int32(p))
}

func (a HorizontalAlignment) String() string {
	if name, ok := horizontalAlignmentNames[a]; ok {
		return name
	}
	return fmt.Sprintf("halign(%d)", int32(a))
}

func (a VerticalAlignment) String() string {
	if name, ok := verticalAlignmentNames[a]; ok {
		return name
	}
	return fmt.Sprintf("valign(%d)", int32(a))
}

// TextSymbol describes how label text is drawn
type TextSymbol struct {
	base
	Color               Color
	BreakCharacter      *uint32
	VerticalAlignment   VerticalAlignment
	HorizontalAlignment HorizontalAlignment
	Clip                bool
	RightToLeft         bool
	Angle               float64
	XOffset             float64
	YOffset             float64
	RasterOp            int32
	SymbolLevel         uint32
	ShadowColor         Color
	ShadowXOffset       float64
	ShadowYOffset       float64
	Position            TextPosition
	Case                TextCase
	CharacterSpacing    float64
	CharacterWidth      float64
	WordSpacing         float64
	Kerning             bool
	Leading             float64
	TextDirection       int32
	FlipAngle           float64
	TypeSetting         bool
	TextPath            Guid
	BackgroundSymbol    Object
	TextFillSymbol      Object
	SampleText          string
	FontSize            float64
	HaloEnabled         bool
	HaloSize            float64
	HaloSymbol          Object
	Font                *Font
	RotateWithTransform bool
	Parser              Guid
	CJKOrientation      bool
}

func (t *TextSymbol) TypeName() string {
	return "TextSymbol"
}

func (t *TextSymbol) Versions() []uint16 {
	return versionsOneToFour
}

func (t *TextSymbol) Read(s *Stream, version uint16) (err error) {
	if t.Color, err = readColor(s); err != nil {
		return err
	}
	breakChar, err := s.ReadUint32()
	if err != nil {
		return err
	}
	if breakChar != noBreakCharacter {
		t.BreakCharacter = &breakChar
	}
	if err = readInt32As(s, &t.VerticalAlignment); err != nil {
		return err
	}
	if err = readInt32As(s, &t.HorizontalAlignment); err != nil {
		return err
	}
	if t.Clip, err = s.ReadBool8(); err != nil {
		return err
	}
	if t.RightToLeft, err = s.ReadBool8(); err != nil {
		return err
	}
	for _, v := range []*float64{&t.Angle, &t.XOffset, &t.YOffset} {
		if *v, err = s.ReadFloat64(); err != nil {
			return err
		}
	}
	if t.RasterOp, err = s.ReadInt32(); err != nil {
		return err
	}
	if t.SymbolLevel, err = s.ReadUint32(); err != nil {
		return err
	}
	if t.ShadowColor, err = readColor(s); err != nil {
		return err
	}
	if t.ShadowXOffset, err = s.ReadFloat64(); err != nil {
		return err
	}
	if t.ShadowYOffset, err = s.ReadFloat64(); err != nil {
		return err
	}
	if err = readInt32As(s, &t.Position); err != nil {
		return err
	}
	if err = readInt32As(s, &t.Case); err != nil {
		return err
	}
	for _, v := range []*float64{&t.CharacterSpacing, &t.CharacterWidth, &t.WordSpacing} {
		if *v, err = s.ReadFloat64(); err != nil {
			return err
		}
	}
	kerning, err := s.ReadUint8()
	if err != nil {
		return err
	}
	t.Kerning = kerning == 1
	if t.Leading, err = s.ReadFloat64(); err != nil {
		return err
	}
	if t.TextDirection, err = s.ReadInt32(); err != nil {
		return err
	}
	if t.FlipAngle, err = s.ReadFloat64(); err != nil {
		return err
	}
	if t.TypeSetting, err = s.ReadBool8(); err != nil {
		return err
	}
	if t.TextPath, err = s.ReadRawGuid(); err != nil {
		return err
	}
	if t.BackgroundSymbol, err = s.ReadObject(); err != nil {
		return err
	}
	if t.TextFillSymbol, err = s.ReadObject(); err != nil {
		return err
	}
	if t.SampleText, err = s.ReadString(); err != nil {
		return err
	}
	if t.FontSize, err = s.ReadFloat64(); err != nil {
		return err
	}
	if t.HaloEnabled, err = s.ReadBool32(); err != nil {
		return err
	}
	if t.HaloSize, err = s.ReadFloat64(); err != nil {
		return err
	}
	if t.HaloSymbol, err = s.ReadObject(); err != nil {
		return err
	}
	if t.Font, err = readTyped[*Font](s, "font"); err != nil {
		return err
	}
	t.RotateWithTransform = true
	if version > 1 {
		if t.RotateWithTransform, err = s.ReadBool16(); err != nil {
			return err
		}
	}
	if version > 2 {
		if t.Parser, err = s.ReadRawGuid(); err != nil {
			return err
		}
	}
	if version > 3 {
		t.CJKOrientation, err = s.ReadBool16()
	}
	return err
}

func readInt32As[T ~int32](s *Stream, v *T) error {
	raw, err := s.ReadInt32()
	*v = T(raw)
	return err
}

func (t *TextSymbol) Fields() Dict {
	var breakChar any
	if t.BreakCharacter != nil {
		breakChar = int64(*t.BreakCharacter)
	}
	return Dict{
		"color":                 dictOf(t.Color),
		"raster_op":             int64(t.RasterOp),
		"symbol_level":          int64(t.SymbolLevel),
		"character_spacing":     t.CharacterSpacing,
		"character_width":       t.CharacterWidth,
		"word_spacing":          t.WordSpacing,
		"flip_angle":            t.FlipAngle,
		"leading":               t.Leading,
		"right_to_left":         t.RightToLeft,
		"cjk_orientation":       t.CJKOrientation,
		"kerning":               t.Kerning,
		"case":                  enumName(textCaseNames, t.Case),
		"x_offset":              t.XOffset,
		"y_offset":              t.YOffset,
		"position":              enumName(textPositionNames, t.Position),
		"shadow_x_offset":       t.ShadowXOffset,
		"shadow_y_offset":       t.ShadowYOffset,
		"shadow_color":          dictOf(t.ShadowColor),
		"angle":                 t.Angle,
		"font_size":             t.FontSize,
		"font":                  dictOf(t.Font),
		"halo_enabled":          t.HaloEnabled,
		"halo_size":             t.HaloSize,
		"halo_symbol":           dictOf(t.HaloSymbol),
		"background_symbol":     dictOf(t.BackgroundSymbol),
		"horizontal_alignment":  enumName(horizontalAlignmentNames, t.HorizontalAlignment),
		"vertical_alignment":    enumName(verticalAlignmentNames, t.VerticalAlignment),
		"text_fill_symbol":      dictOf(t.TextFillSymbol),
		"text_direction":        int64(t.TextDirection),
		"type_setting":          t.TypeSetting,
		"break_character":       breakChar,
		"clip":                  t.Clip,
		"rotate_with_transform": t.RotateWithTransform,
		"sample_text":           t.SampleText,
	}
}

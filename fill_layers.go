package slyr

import (
	"fmt"
)

type FillStyle uint32

const (
	FillSolid FillStyle = iota
	FillNull
	FillHorizontal
	FillVertical
	FillForwardDiagonal
	FillBackwardDiagonal
	FillCross
	FillDiagonalCross
)

var fillStyleNames = map[FillStyle]string{
	FillSolid:            "solid",
	FillNull:             "null",
	FillHorizontal:       "horizontal",
	FillVertical:         "vertical",
	FillForwardDiagonal:  "forward_diagonal",
	FillBackwardDiagonal: "backward_diagonal",
	FillCross:            "cross",
	FillDiagonalCross:    "diagonal_cross",
}

func (f FillStyle) String() string {
	if name, ok := fillStyleNames[f]; ok {
		return name
	}
	return fmt.Sprintf("fill style(%d)", uint32(f))
}

// withOutline adds the outline to d, if there is one
//
// the outline is either a whole line symbol or a single line layer
func withOutline(d Dict, outline Object) Dict {
	if !isNil(outline) {
		d["outline"] = ToDict(outline)
	}
	return d
}

// SimpleFillSymbol is a solid or hatched fill
type SimpleFillSymbol struct {
	fillLayer
	Color     Color
	Outline   Object
	FillStyle FillStyle
}

func (f *SimpleFillSymbol) TypeName() string {
	return "SimpleFillSymbol"
}

func (f *SimpleFillSymbol) Read(s *Stream, version uint16) (err error) {
	if f.Outline, err = s.ReadObject(); err != nil {
		return err
	}
	if f.Color, err = readColor(s); err != nil {
		return err
	}
	if f.SymbolLevel, err = readSymbolLevel(s); err != nil {
		return err
	}
	f.FillStyle, err = readEnum(s, fillStyleNames, "fill style")
	return err
}

func (f *SimpleFillSymbol) Fields() Dict {
	d := withOutline(Dict{"color": dictOf(f.Color)}, f.Outline)
	d["fill_style"] = f.FillStyle.String()
	return d
}

// ColorSymbol is a raster rendering color, occasionally found as a fill layer
type ColorSymbol struct {
	fillLayer
	Color Color
}

func (f *ColorSymbol) TypeName() string {
	return "ColorSymbol"
}

func (f *ColorSymbol) Read(s *Stream, version uint16) (err error) {
	if f.Color, err = readColor(s); err != nil {
		return err
	}
	if f.SymbolLevel, err = readSymbolLevel(s); err != nil {
		return err
	}
	return s.Skip(4, "color symbol trailer")
}

func (f *ColorSymbol) Fields() Dict {
	return Dict{"color": dictOf(f.Color)}
}

type GradientType uint32

const (
	GradientLinear GradientType = iota
	GradientRectangular
	GradientCircular
	GradientBuffered
)

var gradientTypeNames = map[GradientType]string{
	GradientLinear:      "linear",
	GradientRectangular: "rectangular",
	GradientCircular:    "circular",
	GradientBuffered:    "buffered",
}

func (g GradientType) String() string {
	if name, ok := gradientTypeNames[g]; ok {
		return name
	}
	return fmt.Sprintf("gradient type(%d)", uint32(g))
}

// GradientFillSymbol fills with a color ramp
type GradientFillSymbol struct {
	fillLayer
	Ramp         ColorRamp
	FillColor    Color
	Outline      Object
	Percent      float64
	Intervals    uint32
	Angle        float64
	GradientType GradientType
}

func (f *GradientFillSymbol) TypeName() string {
	return "GradientFillSymbol"
}

func (f *GradientFillSymbol) Read(s *Stream, version uint16) (err error) {
	if f.Ramp, err = readTyped[ColorRamp](s, "color ramp"); err != nil {
		return err
	}
	if f.FillColor, err = readColor(s); err != nil {
		return err
	}
	if f.Outline, err = s.ReadObject(); err != nil {
		return err
	}
	if f.Percent, err = s.ReadFloat64(); err != nil {
		return err
	}
	if f.Intervals, err = s.ReadUint32(); err != nil {
		return err
	}
	if f.Angle, err = s.ReadFloat64(); err != nil {
		return err
	}
	if f.GradientType, err = readEnum(s, gradientTypeNames, "gradient type"); err != nil {
		return err
	}
	f.SymbolLevel, err = readSymbolLevel(s)
	return err
}

func (f *GradientFillSymbol) Fields() Dict {
	return withOutline(Dict{
		"ramp":          dictOf(f.Ramp),
		"percent":       f.Percent,
		"angle":         f.Angle,
		"intervals":     int64(f.Intervals),
		"fill_color":    dictOf(f.FillColor),
		"gradient_type": f.GradientType.String(),
	}, f.Outline)
}

// LineFillSymbol hatches with a line symbol
type LineFillSymbol struct {
	fillLayer
	Line       Object
	Outline    Object
	Angle      float64
	Offset     float64
	Separation float64
}

func (f *LineFillSymbol) TypeName() string {
	return "LineFillSymbol"
}

func (f *LineFillSymbol) Read(s *Stream, version uint16) (err error) {
	if err = s.Skip(2*8, "unused line fill doubles"); err != nil {
		return err
	}
	if f.Line, err = s.ReadObject(); err != nil {
		return err
	}
	if f.Outline, err = s.ReadObject(); err != nil {
		return err
	}
	if f.Angle, err = s.ReadFloat64(); err != nil {
		return err
	}
	if f.Offset, err = s.ReadFloat64(); err != nil {
		return err
	}
	if f.Separation, err = s.ReadFloat64(); err != nil {
		return err
	}
	f.SymbolLevel, err = readSymbolLevel(s)
	return err
}

func (f *LineFillSymbol) Fields() Dict {
	return withOutline(Dict{
		"line_symbol": dictOf(f.Line),
		"angle":       f.Angle,
		"offset":      f.Offset,
		"separation":  f.Separation,
	}, f.Outline)
}

// MarkerFillSymbol places markers on a grid or at random
type MarkerFillSymbol struct {
	fillLayer
	Random      bool
	OffsetX     float64
	OffsetY     float64
	SeparationX float64
	SeparationY float64
	Marker      Object
	Outline     Object
	GridAngle   float64
}

func (f *MarkerFillSymbol) TypeName() string {
	return "MarkerFillSymbol"
}

func (f *MarkerFillSymbol) Read(s *Stream, version uint16) (err error) {
	if f.Random, err = s.ReadBool32(); err != nil {
		return err
	}
	for _, v := range []*float64{&f.OffsetX, &f.OffsetY, &f.SeparationX, &f.SeparationY} {
		if *v, err = s.ReadFloat64(); err != nil {
			return err
		}
	}
	if err = s.Skip(2*8, "unused marker fill doubles"); err != nil {
		return err
	}
	if f.Marker, err = s.ReadObject(); err != nil {
		return err
	}
	if f.Outline, err = s.ReadObject(); err != nil {
		return err
	}
	if f.SymbolLevel, err = readSymbolLevel(s); err != nil {
		return err
	}
	f.GridAngle, err = s.ReadFloat64()
	return err
}

func (f *MarkerFillSymbol) Fields() Dict {
	return withOutline(Dict{
		"marker":       dictOf(f.Marker),
		"offset_x":     f.OffsetX,
		"offset_y":     f.OffsetY,
		"separation_x": f.SeparationX,
		"separation_y": f.SeparationY,
		"random":       f.Random,
		"grid_angle":   f.GridAngle,
	}, f.Outline)
}

var versionsPictureFill = []uint16{3, 4, 7, 8}

// PictureFillSymbol tiles an embedded picture
type PictureFillSymbol struct {
	fillLayer
	Picture          *Picture
	ColorBackground  Color
	ColorForeground  Color
	ColorTransparent Color
	Outline          Object
	Angle            float64
	ScaleX           float64
	ScaleY           float64
	OffsetX          float64
	OffsetY          float64
	SeparationX      float64
	SeparationY      float64
	SwapFgBg         bool
}

func (f *PictureFillSymbol) TypeName() string {
	return "PictureFillSymbol"
}

func (f *PictureFillSymbol) Versions() []uint16 {
	return versionsPictureFill
}

func (f *PictureFillSymbol) Read(s *Stream, version uint16) (err error) {
	switch {
	case version <= 4:
		f.Picture, err = readPictureObject(s)
	case version == 7:
		if err = s.Skip(2+4, "picture version and type"); err != nil {
			return err
		}
		f.Picture, err = readPictureObject(s)
	default:
		f.Picture, err = readInlinePicture(s)
	}
	if err != nil {
		return err
	}
	for _, c := range []*Color{&f.ColorBackground, &f.ColorForeground, &f.ColorTransparent} {
		if *c, err = readColor(s); err != nil {
			return err
		}
	}
	if f.Outline, err = s.ReadObject(); err != nil {
		return err
	}
	for _, v := range []*float64{&f.Angle, &f.ScaleX, &f.ScaleY, &f.OffsetX, &f.OffsetY, &f.SeparationX, &f.SeparationY} {
		if *v, err = s.ReadFloat64(); err != nil {
			return err
		}
	}
	if err = s.Skip(16, "picture fill reserved"); err != nil {
		return err
	}
	if f.SymbolLevel, err = readSymbolLevel(s); err != nil {
		return err
	}
	if f.SwapFgBg, err = s.ReadBool8(); err != nil {
		return err
	}
	if version < 4 {
		return nil
	}
	if err = s.Skip(6, "picture fill trailer"); err != nil {
		return err
	}
	if version > 4 && version < 8 {
		return s.Skip(4, "picture fill trailer")
	}
	return nil
}

func (f *PictureFillSymbol) Fields() Dict {
	d := withOutline(Dict{
		"color_foreground":        dictOf(f.ColorForeground),
		"color_foreground_model":  colorModel(f.ColorForeground),
		"color_background":        dictOf(f.ColorBackground),
		"color_background_model":  colorModel(f.ColorBackground),
		"color_transparent":       dictOf(f.ColorTransparent),
		"color_transparent_model": colorModel(f.ColorTransparent),
		"swap_fg_bg":              f.SwapFgBg,
	}, f.Outline)
	d["picture"] = f.Picture.dict()
	d["angle"] = f.Angle
	d["scale_x"] = f.ScaleX
	d["scale_y"] = f.ScaleY
	d["offset_x"] = f.OffsetX
	d["offset_y"] = f.OffsetY
	d["separation_x"] = f.SeparationX
	d["separation_y"] = f.SeparationY
	return d
}

func colorModel(c Color) any {
	if isNil(c) {
		return nil
	}
	return c.Model()
}

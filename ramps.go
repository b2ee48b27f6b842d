package slyr

import (
	"fmt"
)

// ColorRamp is implemented by every color ramp
type ColorRamp interface {
	Object
	// RampNameType is the ramp's category label as stored with the ramp
	RampNameType() string
	isColorRamp()
}

type colorRamp struct {
	base
	NameType string
}

func (r *colorRamp) RampNameType() string {
	return r.NameType
}

func (*colorRamp) isColorRamp() {}

// RandomColorRamp picks colors at random within HSV ranges
type RandomColorRamp struct {
	colorRamp
	SameEverywhere bool
	ValueMin       uint16
	ValueMax       uint16
	SaturationMin  uint16
	SaturationMax  uint16
	HueMin         uint16
	HueMax         uint16
}

func (r *RandomColorRamp) TypeName() string {
	return "RandomColorRamp"
}

func (r *RandomColorRamp) Read(s *Stream, version uint16) (err error) {
	if r.NameType, err = s.ReadStringV2(); err != nil {
		return err
	}
	if err = s.Skip(4, "random ramp seed"); err != nil {
		return err
	}
	if r.SameEverywhere, err = s.ReadBool16(); err != nil {
		return err
	}
	if err = s.Skip(4, "random ramp color count"); err != nil {
		return err
	}
	for _, v := range []*uint16{&r.ValueMin, &r.ValueMax, &r.SaturationMin, &r.SaturationMax, &r.HueMin, &r.HueMax} {
		if *v, err = s.ReadUint16(); err != nil {
			return err
		}
	}
	return nil
}

func (r *RandomColorRamp) Fields() Dict {
	return Dict{
		"value_range":      []any{int64(r.ValueMin), int64(r.ValueMax)},
		"saturation_range": []any{int64(r.SaturationMin), int64(r.SaturationMax)},
		"hue_range":        []any{int64(r.HueMin), int64(r.HueMax)},
		"same_everywhere":  r.SameEverywhere,
	}
}

// PresetColorRamp is an explicit list of colors
type PresetColorRamp struct {
	colorRamp
	Colors []Color
}

func (r *PresetColorRamp) TypeName() string {
	return "PresetColorRamp"
}

func (r *PresetColorRamp) Read(s *Stream, version uint16) (err error) {
	if r.NameType, err = s.ReadStringV2(); err != nil {
		return err
	}
	if err = s.Skip(4, "preset ramp flags"); err != nil {
		return err
	}
	count, err := s.ReadUint32()
	if err != nil {
		return err
	}
	r.Colors = make([]Color, 0, min(int(count), s.Remaining()/16))
	for i := uint32(0); i < count; i++ {
		c, err := readColor(s)
		if err != nil {
			return err
		}
		r.Colors = append(r.Colors, c)
	}
	return nil
}

func (r *PresetColorRamp) Fields() Dict {
	colors := make([]any, 0, len(r.Colors))
	for _, c := range r.Colors {
		colors = append(colors, dictOf(c))
	}
	return Dict{"colors": colors}
}

// MultiPartColorRamp joins several ramps end to end
type MultiPartColorRamp struct {
	colorRamp
	Parts       []ColorRamp
	PartLengths []float64
}

func (r *MultiPartColorRamp) TypeName() string {
	return "MultiPartColorRamp"
}

func (r *MultiPartColorRamp) Versions() []uint16 {
	return versionsOneTwo
}

func (r *MultiPartColorRamp) Read(s *Stream, version uint16) (err error) {
	if r.NameType, err = s.ReadStringV2(); err != nil {
		return err
	}
	count, err := s.ReadUint32()
	if err != nil {
		return err
	}
	r.Parts = make([]ColorRamp, 0, min(int(count), s.Remaining()/16))
	for i := uint32(0); i < count; i++ {
		part, err := readTyped[ColorRamp](s, fmt.Sprintf("ramp part %d", i+1))
		if err != nil {
			return err
		}
		r.Parts = append(r.Parts, part)
	}
	if version < 2 {
		return nil
	}
	r.PartLengths = make([]float64, 0, len(r.Parts))
	for range r.Parts {
		length, err := s.ReadFloat64()
		if err != nil {
			return err
		}
		r.PartLengths = append(r.PartLengths, length)
	}
	return nil
}

func (r *MultiPartColorRamp) Fields() Dict {
	parts := make([]any, 0, len(r.Parts))
	for _, p := range r.Parts {
		parts = append(parts, dictOf(p))
	}
	lengths := make([]any, 0, len(r.PartLengths))
	for _, l := range r.PartLengths {
		lengths = append(lengths, l)
	}
	return Dict{
		"parts":        parts,
		"part_lengths": lengths,
	}
}

type RampAlgorithm uint32

const (
	RampHSV RampAlgorithm = iota
	RampCIELab
	RampLabLCh
)

var rampAlgorithmNames = map[RampAlgorithm]string{
	RampHSV:    "hsv",
	RampCIELab: "cielab",
	RampLabLCh: "lab_lch",
}

func (a RampAlgorithm) String() string {
	if name, ok := rampAlgorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("algorithm(%d)", uint32(a))
}

// AlgorithmicColorRamp interpolates between two colors
type AlgorithmicColorRamp struct {
	colorRamp
	Algorithm RampAlgorithm
	Color1    Color
	Color2    Color
}

func (r *AlgorithmicColorRamp) TypeName() string {
	return "AlgorithmicColorRamp"
}

func (r *AlgorithmicColorRamp) Read(s *Stream, version uint16) (err error) {
	if r.NameType, err = s.ReadStringV2(); err != nil {
		return err
	}
	if r.Algorithm, err = readEnum(s, rampAlgorithmNames, "ramp algorithm"); err != nil {
		return err
	}
	if r.Color1, err = readColor(s); err != nil {
		return err
	}
	r.Color2, err = readColor(s)
	return err
}

func (r *AlgorithmicColorRamp) Fields() Dict {
	return Dict{
		"color1":    dictOf(r.Color1),
		"color2":    dictOf(r.Color2),
		"algorithm": r.Algorithm.String(),
	}
}

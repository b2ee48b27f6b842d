package slyr

// Color is implemented by all color objects
type Color interface {
	Object
	// Model is the color model label: "rgb", "hsv" or "cmyk"
	Model() string
	Flags() ColorFlags
	isColor()
}

// ColorFlags are the two trailing bytes common to every color
type ColorFlags struct {
	Dither bool
	IsNull bool
}

func (f *ColorFlags) Flags() ColorFlags {
	return *f
}

func (f *ColorFlags) isColor() {}

// read interprets the flag bytes: 0x01 marks dithering, 0xFF a null color
func (f *ColorFlags) read(s *Stream) error {
	raw, err := s.ReadExact(2)
	if err != nil {
		return err
	}
	f.Dither = raw[0] == 0x01
	f.IsNull = raw[1] == 0xFF
	return nil
}

// RgbColor is stored as CIELAB and converted to RGB on read
type RgbColor struct {
	base
	ColorFlags
	L, A, B          float64
	Red, Green, Blue uint8
}

func (c *RgbColor) TypeName() string {
	return "RgbColor"
}

func (c *RgbColor) Model() string {
	return "rgb"
}

func (c *RgbColor) Read(s *Stream, version uint16) error {
	if err := s.Skip(3, "color prefix"); err != nil {
		return err
	}
	start := s.Tell()
	var err error
	if c.L, err = s.ReadFloat64(); err != nil {
		return err
	}
	if c.A, err = s.ReadFloat64(); err != nil {
		return err
	}
	if c.B, err = s.ReadFloat64(); err != nil {
		return err
	}
	if c.Red, c.Green, c.Blue, err = CIELabToRGB(c.L, c.A, c.B, s.lut); err != nil {
		return s.errorf(ErrInvalidColor, start, "L=%g a=%g b=%g", c.L, c.A, c.B)
	}
	return c.ColorFlags.read(s)
}

func (c *RgbColor) Fields() Dict {
	return Dict{
		"R":       int(c.Red),
		"G":       int(c.Green),
		"B":       int(c.Blue),
		"dither":  c.Dither,
		"is_null": c.IsNull,
	}
}

// HsvColor shares the RgbColor layout
type HsvColor struct {
	RgbColor
}

func (c *HsvColor) TypeName() string {
	return "HsvColor"
}

func (c *HsvColor) Model() string {
	return "hsv"
}

// HlsColor shares the RgbColor layout, ArcGIS exposes it as a named color
type HlsColor struct {
	RgbColor
}

func (c *HlsColor) TypeName() string {
	return "HlsColor"
}

type GrayColor struct {
	RgbColor
}

func (c *GrayColor) TypeName() string {
	return "GrayColor"
}

var versionsCmyk = []uint16{4}

// CmykColor stores its channels directly, no conversion is applied
type CmykColor struct {
	base
	ColorFlags
	Cyan, Magenta, Yellow, Black uint8
}

func (c *CmykColor) TypeName() string {
	return "CmykColor"
}

func (c *CmykColor) Versions() []uint16 {
	return versionsCmyk
}

func (c *CmykColor) Model() string {
	return "cmyk"
}

func (c *CmykColor) Read(s *Stream, version uint16) error {
	if err := s.Skip(2, "color prefix"); err != nil {
		return err
	}
	raw, err := s.ReadExact(4)
	if err != nil {
		return err
	}
	c.Cyan, c.Magenta, c.Yellow, c.Black = raw[0], raw[1], raw[2], raw[3]
	return c.ColorFlags.read(s)
}

func (c *CmykColor) Fields() Dict {
	return Dict{
		"C":       int(c.Cyan),
		"M":       int(c.Magenta),
		"Y":       int(c.Yellow),
		"K":       int(c.Black),
		"dither":  c.Dither,
		"is_null": c.IsNull,
	}
}

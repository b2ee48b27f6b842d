package slyr

// SimpleLineSymbol is a solid or dashed line of a single width
type SimpleLineSymbol struct {
	lineLayer
	Color    Color
	Width    float64
	LineType LineType
}

func (l *SimpleLineSymbol) TypeName() string {
	return "SimpleLineSymbol"
}

func (l *SimpleLineSymbol) Read(s *Stream, version uint16) (err error) {
	if l.Color, err = readColor(s); err != nil {
		return err
	}
	if l.Width, err = s.ReadFloat64(); err != nil {
		return err
	}
	if l.LineType, err = readLineType(s); err != nil {
		return err
	}
	l.SymbolLevel, err = readSymbolLevel(s)
	return err
}

func (l *SimpleLineSymbol) Fields() Dict {
	return Dict{
		"color":     dictOf(l.Color),
		"width":     l.Width,
		"line_type": l.LineType.String(),
	}
}

// lineDecorationProps are the template/decoration fields shared by the cartographic line family
type lineDecorationProps struct {
	Cap             CapStyle
	Join            JoinStyle
	Flip            bool
	Offset          float64
	Template        *LineTemplate
	Decoration      *LineDecoration
	DecorationOnTop bool
	LineStartOffset float64
	MiterLimit      float64
}

func (p *lineDecorationProps) readTemplateAndDecoration(s *Stream) (err error) {
	if p.Template, err = readTyped[*LineTemplate](s, "line template"); err != nil {
		return err
	}
	p.Decoration, err = readTyped[*LineDecoration](s, "line decoration")
	return err
}

// readTail reads the symbol level and the fields which follow it
func (p *lineDecorationProps) readTail(s *Stream, level *uint32) (err error) {
	if *level, err = readSymbolLevel(s); err != nil {
		return err
	}
	if p.DecorationOnTop, err = s.ReadBool8(); err != nil {
		return err
	}
	if p.LineStartOffset, err = s.ReadFloat64(); err != nil {
		return err
	}
	return nil
}

func (p *lineDecorationProps) readCapAndJoin(s *Stream) (err error) {
	if p.Cap, err = readCap(s); err != nil {
		return err
	}
	p.Join, err = readJoin(s)
	return err
}

func (p *lineDecorationProps) fields(d Dict) Dict {
	d["cap"] = p.Cap.String()
	d["join"] = p.Join.String()
	d["flip"] = p.Flip
	d["offset"] = p.Offset
	d["template"] = dictOf(p.Template)
	d["decoration"] = dictOf(p.Decoration)
	d["decoration_on_top"] = p.DecorationOnTop
	d["line_start_offset"] = p.LineStartOffset
	d["miter_limit"] = p.MiterLimit
	return d
}

// CartographicLineSymbol is a line with caps, joins, a dash template and decorations
type CartographicLineSymbol struct {
	lineLayer
	lineDecorationProps
	Color Color
	Width float64
}

func (l *CartographicLineSymbol) TypeName() string {
	return "CartographicLineSymbol"
}

func (l *CartographicLineSymbol) Read(s *Stream, version uint16) (err error) {
	if err = l.readCapAndJoin(s); err != nil {
		return err
	}
	if l.Width, err = s.ReadFloat64(); err != nil {
		return err
	}
	if l.Flip, err = s.ReadBool8(); err != nil {
		return err
	}
	if l.Offset, err = s.ReadFloat64(); err != nil {
		return err
	}
	if l.Color, err = readColor(s); err != nil {
		return err
	}
	if err = l.readTemplateAndDecoration(s); err != nil {
		return err
	}
	if err = l.readTail(s, &l.SymbolLevel); err != nil {
		return err
	}
	l.MiterLimit, err = s.ReadFloat64()
	return err
}

func (l *CartographicLineSymbol) Fields() Dict {
	return l.fields(Dict{
		"color": dictOf(l.Color),
		"width": l.Width,
	})
}

var versionsTwo = []uint16{2}

// MarkerLineSymbol repeats a marker along the line
type MarkerLineSymbol struct {
	lineLayer
	lineDecorationProps
	PatternMarker Object
}

func (l *MarkerLineSymbol) TypeName() string {
	return "MarkerLineSymbol"
}

func (l *MarkerLineSymbol) Versions() []uint16 {
	return versionsTwo
}

func (l *MarkerLineSymbol) Read(s *Stream, version uint16) (err error) {
	if l.Flip, err = s.ReadBool8(); err != nil {
		return err
	}
	if l.Offset, err = s.ReadFloat64(); err != nil {
		return err
	}
	if l.PatternMarker, err = s.ReadObject(); err != nil {
		return err
	}
	if err = l.readTemplateAndDecoration(s); err != nil {
		return err
	}
	if err = l.readTail(s, &l.SymbolLevel); err != nil {
		return err
	}
	if err = l.readCapAndJoin(s); err != nil {
		return err
	}
	l.MiterLimit, err = s.ReadFloat64()
	return err
}

func (l *MarkerLineSymbol) Fields() Dict {
	return l.fields(Dict{
		"pattern_marker": dictOf(l.PatternMarker),
	})
}

// HashLineSymbol draws short hash lines across the line
type HashLineSymbol struct {
	lineLayer
	lineDecorationProps
	Angle float64
	Width float64
	Line  Object
	Color Color
}

func (l *HashLineSymbol) TypeName() string {
	return "HashLineSymbol"
}

func (l *HashLineSymbol) Read(s *Stream, version uint16) (err error) {
	if l.Angle, err = s.ReadFloat64(); err != nil {
		return err
	}
	if err = l.readCapAndJoin(s); err != nil {
		return err
	}
	if l.Width, err = s.ReadFloat64(); err != nil {
		return err
	}
	if l.Flip, err = s.ReadBool8(); err != nil {
		return err
	}
	if l.Offset, err = s.ReadFloat64(); err != nil {
		return err
	}
	if l.Line, err = s.ReadObject(); err != nil {
		return err
	}
	if l.Color, err = readColor(s); err != nil {
		return err
	}
	if err = l.readTemplateAndDecoration(s); err != nil {
		return err
	}
	if err = l.readTail(s, &l.SymbolLevel); err != nil {
		return err
	}
	l.MiterLimit, err = s.ReadFloat64()
	return err
}

func (l *HashLineSymbol) Fields() Dict {
	return l.fields(Dict{
		"angle": l.Angle,
		"width": l.Width,
		"line":  dictOf(l.Line),
		"color": dictOf(l.Color),
	})
}

// PictureLineSymbol fills the line body with a fill symbol
type PictureLineSymbol struct {
	lineLayer
	Offset     float64
	Width      float64
	FillSymbol Object
}

func (l *PictureLineSymbol) TypeName() string {
	return "PictureLineSymbol"
}

func (l *PictureLineSymbol) Read(s *Stream, version uint16) (err error) {
	if err = s.expectUint8(0, "picture line flag"); err != nil {
		return err
	}
	if l.Offset, err = s.ReadFloat64(); err != nil {
		return err
	}
	if l.Width, err = s.ReadFloat64(); err != nil {
		return err
	}
	l.FillSymbol, err = s.ReadObject()
	return err
}

func (l *PictureLineSymbol) Fields() Dict {
	return Dict{
		"offset":      l.Offset,
		"width":       l.Width,
		"fill_symbol": dictOf(l.FillSymbol),
	}
}

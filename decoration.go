package slyr

// LineDecoration is a list of decoration elements placed along a line
type LineDecoration struct {
	base
	Elements []Object
}

func (d *LineDecoration) TypeName() string {
	return "LineDecoration"
}

func (d *LineDecoration) Read(s *Stream, version uint16) error {
	count, err := s.ReadUint32()
	if err != nil {
		return err
	}
	d.Elements = make([]Object, 0, min(int(count), s.Remaining()/16))
	for i := uint32(0); i < count; i++ {
		element, err := s.ReadObject()
		if err != nil {
			return err
		}
		d.Elements = append(d.Elements, element)
	}
	return nil
}

func (d *LineDecoration) Fields() Dict {
	decorations := make([]any, 0, len(d.Elements))
	for _, e := range d.Elements {
		if !isNil(e) {
			decorations = append(decorations, ToDict(e))
		}
	}
	return Dict{"decorations": decorations}
}

// SimpleLineDecorationElement places a marker at positions along the line
type SimpleLineDecorationElement struct {
	base
	FixedAngle      bool
	FlipFirst       bool
	FlipAll         bool
	PositionAsRatio bool
	Marker          Object
	Positions       []float64
}

func (e *SimpleLineDecorationElement) TypeName() string {
	return "SimpleLineDecorationElement"
}

func (e *SimpleLineDecorationElement) Read(s *Stream, version uint16) (err error) {
	// stored as "rotate with line"
	rotate, err := s.ReadBool8()
	if err != nil {
		return err
	}
	e.FixedAngle = !rotate
	if e.FlipFirst, err = s.ReadBool8(); err != nil {
		return err
	}
	if e.FlipAll, err = s.ReadBool8(); err != nil {
		return err
	}
	if e.PositionAsRatio, err = s.ReadBool16(); err != nil {
		return err
	}
	if e.Marker, err = s.ReadObject(); err != nil {
		return err
	}
	count, err := s.ReadUint32()
	if err != nil {
		return err
	}
	e.Positions = make([]float64, 0, min(int(count), s.Remaining()/8))
	for i := uint32(0); i < count; i++ {
		pos, err := s.ReadFloat64()
		if err != nil {
			return err
		}
		e.Positions = append(e.Positions, pos)
	}
	return nil
}

func (e *SimpleLineDecorationElement) Fields() Dict {
	positions := make([]any, len(e.Positions))
	for i, p := range e.Positions {
		positions[i] = p
	}
	return Dict{
		"fixed_angle":       e.FixedAngle,
		"flip_first":        e.FlipFirst,
		"flip_all":          e.FlipAll,
		"marker":            dictOf(e.Marker),
		"positions":         positions,
		"position_as_ratio": e.PositionAsRatio,
	}
}

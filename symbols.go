package slyr

// Symbol is a multi-layer line, fill or marker symbol
type Symbol interface {
	Object
	SymbolLayers() []SymbolLayer
	isSymbol()
}

type multiLayerSymbol struct {
	base
	Layers      []SymbolLayer
	SymbolLevel uint32
}

func (m *multiLayerSymbol) SymbolLayers() []SymbolLayer {
	return m.Layers
}

func (*multiLayerSymbol) isSymbol() {}

func (m *multiLayerSymbol) Fields() Dict {
	levels := make([]any, 0, len(m.Layers))
	for _, layer := range m.Layers {
		levels = append(levels, ToDict(layer))
	}
	return Dict{
		"levels":       levels,
		"symbol_level": int64(m.SymbolLevel),
	}
}

// readLayers reads count layers, each of which must satisfy accept
func (m *multiLayerSymbol) readLayers(s *Stream, count uint32, family string, accept func(SymbolLayer) bool) error {
	m.Layers = make([]SymbolLayer, 0, min(int(count), s.Remaining()/16))
	for i := uint32(0); i < count; i++ {
		at := s.Tell()
		obj, err := s.ReadObject()
		if err != nil {
			return err
		}
		layer, ok := obj.(SymbolLayer)
		if !ok || !accept(layer) {
			return s.errorf(ErrUnreadableSymbol, at, "layer %d/%d is %s, expected a %s layer", i+1, count, typeNameOf(obj), family)
		}
		s.debug().Int("layer", int(i)).Str("type", layer.TypeName()).Msg("read layer")
		m.Layers = append(m.Layers, layer)
	}
	return nil
}

// readLayerStates reads the enabled flag of every layer, then the locked flag of every layer
func (m *multiLayerSymbol) readLayerStates(s *Stream) (err error) {
	for _, layer := range m.Layers {
		if layer.Props().Enabled, err = s.ReadBool32(); err != nil {
			return err
		}
	}
	for _, layer := range m.Layers {
		if layer.Props().Locked, err = s.ReadBool32(); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiLayerSymbol) readLayerTags(s *Stream) (err error) {
	for _, layer := range m.Layers {
		if layer.Props().Tags, err = s.ReadString(); err != nil {
			return err
		}
	}
	return nil
}

func isLineLayer(l SymbolLayer) bool {
	_, ok := l.(LineLayer)
	return ok
}

func isFillLayer(l SymbolLayer) bool {
	_, ok := l.(FillLayer)
	return ok
}

func isMarkerLayer(l SymbolLayer) bool {
	_, ok := l.(MarkerLayer)
	return ok
}

type LineSymbol struct {
	multiLayerSymbol
}

func (m *LineSymbol) TypeName() string {
	return "LineSymbol"
}

func (m *LineSymbol) Versions() []uint16 {
	return versionsOneTwo
}

func (m *LineSymbol) Read(s *Stream, version uint16) (err error) {
	if m.SymbolLevel, err = readSymbolLevel(s); err != nil {
		return err
	}
	count, err := s.ReadUint32()
	if err != nil {
		return err
	}
	if err = m.readLayers(s, count, "line", isLineLayer); err != nil {
		return err
	}
	if err = m.readLayerStates(s); err != nil {
		return err
	}
	if version >= 2 {
		return m.readLayerTags(s)
	}
	return nil
}

type FillSymbol struct {
	multiLayerSymbol
}

func (m *FillSymbol) TypeName() string {
	return "FillSymbol"
}

func (m *FillSymbol) Versions() []uint16 {
	return versionsOneTwo
}

func (m *FillSymbol) Read(s *Stream, version uint16) (err error) {
	if m.SymbolLevel, err = readSymbolLevel(s); err != nil {
		return err
	}
	if _, err = s.ReadObject(); err != nil {
		return err
	}
	count, err := s.ReadUint32()
	if err != nil {
		return err
	}
	if err = m.readLayers(s, count, "fill", isFillLayer); err != nil {
		return err
	}
	if err = m.readLayerStates(s); err != nil {
		return err
	}
	if version >= 2 {
		return m.readLayerTags(s)
	}
	return nil
}

var versionsMarkerSymbol = []uint16{1, 2, 3}

// MarkerSymbol adds a halo to the common multi-layer structure
type MarkerSymbol struct {
	multiLayerSymbol
	Halo       bool
	HaloSize   float64
	HaloSymbol Object
}

func (m *MarkerSymbol) TypeName() string {
	return "MarkerSymbol"
}

func (m *MarkerSymbol) Versions() []uint16 {
	return versionsMarkerSymbol
}

func (m *MarkerSymbol) Read(s *Stream, version uint16) (err error) {
	if m.SymbolLevel, err = readSymbolLevel(s); err != nil {
		return err
	}
	// legacy size, offsets/angle and color, superseded by the layers
	if err = s.Skip(4*8, "unused marker size, offsets and angle"); err != nil {
		return err
	}
	if _, err = s.ReadObject(); err != nil {
		return err
	}
	halo, err := s.ReadUint32()
	if err != nil {
		return err
	}
	m.Halo = halo == 1
	if m.HaloSize, err = s.ReadFloat64(); err != nil {
		return err
	}
	if m.HaloSymbol, err = s.ReadObject(); err != nil {
		return err
	}
	count, err := s.ReadUint32()
	if err != nil {
		return err
	}
	if err = m.readLayers(s, count, "marker", isMarkerLayer); err != nil {
		return err
	}
	if err = m.readLayerStates(s); err != nil {
		return err
	}
	if version > 1 {
		if err = s.Skip(2*8, "unknown marker sizes"); err != nil {
			return err
		}
	}
	if version >= 3 {
		return m.readLayerTags(s)
	}
	return nil
}

func (m *MarkerSymbol) Fields() Dict {
	d := m.multiLayerSymbol.Fields()
	d["halo"] = m.Halo
	d["halo_size"] = m.HaloSize
	d["halo_symbol"] = dictOf(m.HaloSymbol)
	return d
}

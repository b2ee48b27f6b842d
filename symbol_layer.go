package slyr

import (
	"fmt"
)

// SymbolLevelMerge is the symbol level of a layer which has no independent render pass
const SymbolLevelMerge uint32 = 0xFFFFFFFF

// rasterOpCopyPen is the only raster operation found before a symbol level
const rasterOpCopyPen = 13

// LayerProps are the properties shared by every symbol layer
//
// Enabled, Locked and Tags are stored by the owning symbol, not by the layer itself
type LayerProps struct {
	Enabled     bool
	Locked      bool
	Tags        string
	SymbolLevel uint32
}

func (p *LayerProps) Props() *LayerProps {
	return p
}

// SymbolLayer is implemented by every line, fill and marker layer
type SymbolLayer interface {
	Object
	Props() *LayerProps
}

type LineLayer interface {
	SymbolLayer
	isLineLayer()
}

type FillLayer interface {
	SymbolLayer
	isFillLayer()
}

type MarkerLayer interface {
	SymbolLayer
	isMarkerLayer()
}

type lineLayer struct {
	base
	LayerProps
}

func (*lineLayer) isLineLayer() {}

type fillLayer struct {
	base
	LayerProps
}

func (*fillLayer) isFillLayer() {}

type markerLayer struct {
	base
	LayerProps
}

func (*markerLayer) isMarkerLayer() {}

// readSymbolLevel reads the raster op (always 13) followed by the symbol level
func readSymbolLevel(s *Stream) (uint32, error) {
	at := s.Tell()
	op, err := s.ReadUint32()
	if err != nil {
		return 0, err
	}
	if op != rasterOpCopyPen {
		_ = s.Rewind(4)
		return 0, s.errorf(ErrUnreadableSymbol, at, "expected raster op %d, got %d", rasterOpCopyPen, op)
	}
	return s.ReadUint32()
}

type CapStyle uint32

const (
	CapButt CapStyle = iota
	CapRound
	CapSquare
)

var capStyleNames = map[CapStyle]string{
	CapButt:   "butt",
	CapRound:  "round",
	CapSquare: "square",
}

func (c CapStyle) String() string {
	if name, ok := capStyleNames[c]; ok {
		return name
	}
	return fmt.Sprintf("cap(%d)", uint32(c))
}

type JoinStyle uint32

const (
	JoinMiter JoinStyle = iota
	JoinRound
	JoinBevel
)

var joinStyleNames = map[JoinStyle]string{
	JoinMiter: "miter",
	JoinRound: "round",
	JoinBevel: "bevel",
}

func (j JoinStyle) String() string {
	if name, ok := joinStyleNames[j]; ok {
		return name
	}
	return fmt.Sprintf("join(%d)", uint32(j))
}

type LineType uint32

const (
	LineSolid LineType = iota
	LineDashed
	LineDotted
	LineDashDot
	LineDashDotDot
	LineNull
)

var lineTypeNames = map[LineType]string{
	LineSolid:      "solid",
	LineDashed:     "dashed",
	LineDotted:     "dotted",
	LineDashDot:    "dash dot",
	LineDashDotDot: "dash dot dot",
	LineNull:       "null",
}

func (t LineType) String() string {
	if name, ok := lineTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("line type(%d)", uint32(t))
}

// readEnum reads a uint32 which must be one of the known values
func readEnum[T ~uint32](s *Stream, names map[T]string, what string) (T, error) {
	at := s.Tell()
	v, err := s.ReadUint32()
	if err != nil {
		return 0, err
	}
	if _, ok := names[T(v)]; !ok {
		_ = s.Rewind(4)
		return 0, s.errorf(ErrUnreadableSymbol, at, "unknown %s %d", what, v)
	}
	return T(v), nil
}

func readCap(s *Stream) (CapStyle, error) {
	return readEnum(s, capStyleNames, "cap style")
}

func readJoin(s *Stream) (JoinStyle, error) {
	return readEnum(s, joinStyleNames, "join style")
}

func readLineType(s *Stream) (LineType, error) {
	return readEnum(s, lineTypeNames, "line type")
}

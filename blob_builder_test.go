package slyr

import (
	"encoding/binary"
	"math"
	"unicode/utf16"
)

// blob assembles little-endian test input
type blob struct {
	buf []byte
}

func newBlob() *blob {
	return &blob{}
}

func (b *blob) bytes() []byte {
	return b.buf
}

func (b *blob) raw(v ...byte) *blob {
	b.buf = append(b.buf, v...)
	return b
}

func (b *blob) zeros(n int) *blob {
	b.buf = append(b.buf, make([]byte, n)...)
	return b
}

func (b *blob) u8(v uint8) *blob {
	b.buf = append(b.buf, v)
	return b
}

func (b *blob) u16(v uint16) *blob {
	b.buf = binary.LittleEndian.AppendUint16(b.buf, v)
	return b
}

func (b *blob) u32(v uint32) *blob {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, v)
	return b
}

func (b *blob) f64(v float64) *blob {
	b.buf = binary.LittleEndian.AppendUint64(b.buf, math.Float64bits(v))
	return b
}

// guid appends the wire form of a canonical guid
func (b *blob) guid(canonical string) *blob {
	wire := EncodeWireGuid(MustParseGuid(canonical))
	b.buf = append(b.buf, wire[:]...)
	return b
}

func (b *blob) null() *blob {
	return b.zeros(16)
}

// object appends a guid followed by a version marker
func (b *blob) object(canonical string, version uint16) *blob {
	return b.guid(canonical).u16(version)
}

// str appends a byte length prefixed, terminated UTF-16LE string
func (b *blob) str(v string) *blob {
	units := utf16.Encode([]rune(v))
	b.u32(uint32(len(units)*2 + 2))
	for _, u := range units {
		b.u16(u)
	}
	return b.u16(0)
}

// str2 appends a character count prefixed UTF-16LE string
func (b *blob) str2(v string) *blob {
	units := utf16.Encode([]rune(v))
	b.u32(uint32(len(units)))
	if len(units) == 0 {
		return b
	}
	for _, u := range units {
		b.u16(u)
	}
	return b.u16(0)
}

func (b *blob) level(level uint32) *blob {
	return b.u32(rasterOpCopyPen).u32(level)
}

func (b *blob) lab(guid string, l, a, bb float64) *blob {
	return b.object(guid, 1).zeros(3).f64(l).f64(a).f64(bb).zeros(2)
}

func (b *blob) rgb(lab [3]float64) *blob {
	return b.lab(GuidRgbColor, lab[0], lab[1], lab[2])
}

func (b *blob) cmyk(c, m, y, k uint8) *blob {
	return b.object(GuidCmykColor, 4).zeros(2).raw(c, m, y, k).zeros(2)
}

func (b *blob) simpleLine(width float64, lineType LineType, color [3]float64) *blob {
	return b.object(GuidSimpleLineSymbol, 1).rgb(color).f64(width).u32(uint32(lineType)).level(0)
}

// font appends a standard font object
func (b *blob) font(name string, charset uint16, attributes uint8, weight uint16, size uint32) *blob {
	b.guid(GuidFont).u8(1).u16(charset).u8(attributes).u16(weight).u32(size)
	return b.u8(uint8(len(name))).raw([]byte(name)...)
}

var (
	labRed     = [3]float64{56.547017615341, 76.8994334713463, 68.1034442713808}
	labGreen   = [3]float64{85.6070742290004, -91.4861929759672, 73.9622026853808}
	labBlue    = [3]float64{34.6689828323685, 71.1255602213487, -101.887893082443}
	labGray127 = [3]float64{60.3512433104593, 0, 0}
	labMagenta = [3]float64{61.3159233343074, 87.5007924739545, -47.2983051839587}
)

func redDict() Dict {
	return Dict{"R": 255, "G": 0, "B": 0, "dither": false, "is_null": false, "type": "RgbColor", "version": 1}
}

func blueDict() Dict {
	return Dict{"R": 0, "G": 0, "B": 255, "dither": false, "is_null": false, "type": "RgbColor", "version": 1}
}

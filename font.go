package slyr

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

const (
	fontItalic        = 2
	fontUnderline     = 4
	fontStrikethrough = 8
)

// fontCharsets maps lfCharSet values to the code page used for the font name
//
// JOHAB (130) has no decoder available and is read as Unified Hangul
var fontCharsets = map[uint16]encoding.Encoding{
	0:   charmap.Windows1252,
	1:   charmap.Windows1252,
	2:   charmap.Windows1251,
	128: japanese.ShiftJIS,
	129: korean.EUCKR,
	130: korean.EUCKR,
	134: simplifiedchinese.GBK,
	136: traditionalchinese.Big5,
	161: charmap.Windows1253,
	162: charmap.Windows1254,
	163: charmap.Windows1258,
	177: charmap.Windows1255,
	178: charmap.Windows1256,
	186: charmap.Windows1257,
	204: charmap.Windows1251,
	222: charmap.Windows874,
	238: charmap.Windows1250,
}

// Font is a standard OLE font description
type Font struct {
	base
	Name          string
	Charset       uint16
	Weight        uint16
	Size          float64
	Italic        bool
	Underline     bool
	Strikethrough bool
}

func (f *Font) TypeName() string {
	return "Font"
}

func (f *Font) Versions() []uint16 {
	return nil
}

func (f *Font) Read(s *Stream, version uint16) (err error) {
	at := s.Tell()
	marker, err := s.ReadUint8()
	if err != nil {
		return err
	}
	if marker != 1 {
		de := s.errorf(ErrUnsupportedVersion, at, "font")
		de.Got = uint16(marker)
		de.Accepted = versionsOne
		return de
	}
	if f.Charset, err = s.ReadUint16(); err != nil {
		return err
	}
	attributes, err := s.ReadUint8()
	if err != nil {
		return err
	}
	f.Italic = attributes&fontItalic != 0
	f.Underline = attributes&fontUnderline != 0
	f.Strikethrough = attributes&fontStrikethrough != 0
	if f.Weight, err = s.ReadUint16(); err != nil {
		return err
	}
	size, err := s.ReadUint32()
	if err != nil {
		return err
	}
	f.Size = float64(size) / 10000
	length, err := s.ReadUint8()
	if err != nil {
		return err
	}
	nameAt := s.Tell()
	raw, err := s.ReadExact(int(length))
	if err != nil {
		return err
	}
	enc, ok := fontCharsets[f.Charset]
	if !ok {
		s.warnUnexpected(at+1, "font charset", f.Charset, "a known charset")
		enc = charmap.Windows1252
	}
	name, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return s.errorf(ErrMalformedString, nameAt, "font name: %v", err)
	}
	f.Name = string(name)
	return nil
}

func (f *Font) Fields() Dict {
	return Dict{
		"font_name":     f.Name,
		"charset":       int64(f.Charset),
		"weight":        int64(f.Weight),
		"size":          f.Size,
		"italic":        f.Italic,
		"strikethrough": f.Strikethrough,
		"underline":     f.Underline,
	}
}

package slyr

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
)

type PictureFormat int

const (
	PictureBMP PictureFormat = iota
	PicturePNG
	PictureEMF
	PictureJPEG
)

var pictureFormatNames = map[PictureFormat]string{
	PictureBMP:  "bmp",
	PicturePNG:  "png",
	PictureEMF:  "emf",
	PictureJPEG: "jpeg",
}

func (f PictureFormat) String() string {
	return pictureFormatNames[f]
}

var (
	pngSignature = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	emfSignature = []byte{0x01, 0x00, 0x00, 0x00}
	jpegPrefix   = []byte{0xff, 0xd8, 0xff}
)

// Picture is an embedded image, either stored inline or wrapped in a StdPicture
type Picture struct {
	Format  PictureFormat
	Content []byte
}

func (p *Picture) typeName() string {
	if p.Format == PictureEMF {
		return "EmfPicture"
	}
	return "BmpPicture"
}

func (p *Picture) dict() any {
	if p == nil {
		return nil
	}
	return Dict{
		"type":    p.typeName(),
		"format":  p.Format.String(),
		"content": base64.StdEncoding.EncodeToString(p.Content),
	}
}

// sniffPicture identifies a complete picture from its leading bytes
func sniffPicture(content []byte) (PictureFormat, bool) {
	switch {
	case bytes.HasPrefix(content, []byte("BM")):
		if len(content) < 6 || int(binary.LittleEndian.Uint32(content[2:6])) != len(content) {
			return 0, false
		}
		return PictureBMP, true
	case bytes.HasPrefix(content, pngSignature[:4]):
		return PicturePNG, true
	case bytes.HasPrefix(content, emfSignature):
		return PictureEMF, true
	case bytes.HasPrefix(content, jpegPrefix):
		return PictureJPEG, true
	}
	return 0, false
}

// readInlinePicture reads a picture stored directly in a layer rather than as an object
func readInlinePicture(s *Stream) (*Picture, error) {
	at := s.Tell()
	version, err := s.ReadUint32()
	if err != nil {
		return nil, err
	}
	picType, err := s.ReadUint32()
	if err != nil {
		return nil, err
	}
	switch version {
	case 2:
		if picType == 0 {
			return readEMF(s)
		}
		return readPixmap(s)
	case 3:
		obj, err := s.ReadObject()
		if err != nil {
			return nil, err
		}
		return pictureOf(s, at, obj)
	}
	_ = s.Seek(at)
	return nil, s.errorf(ErrUnreadableSymbol, at, "unknown picture version %d", version)
}

func readEMF(s *Stream) (*Picture, error) {
	at := s.Tell()
	size, err := s.ReadUint32()
	if err != nil {
		return nil, err
	}
	content, err := s.ReadExact(int(size))
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(content, emfSignature) {
		return nil, s.errorf(ErrUnreadableSymbol, at+4, "expected EMF header, got % x", content[:min(len(content), 4)])
	}
	return &Picture{Format: PictureEMF, Content: bytes.Clone(content)}, nil
}

// readPixmap reads a size prefixed image, sniffing the format from its first bytes
func readPixmap(s *Stream) (*Picture, error) {
	size, err := s.ReadUint32()
	if err != nil {
		return nil, err
	}
	start := s.Tell()
	head, err := s.ReadExact(min(8, s.Remaining()))
	if err != nil {
		return nil, err
	}
	_ = s.Seek(start)
	var format PictureFormat
	switch {
	case bytes.HasPrefix(head, []byte("BM")):
		if len(head) < 6 || binary.LittleEndian.Uint32(head[2:6]) != size {
			return nil, s.errorf(ErrUnreadableSymbol, start, "bitmap size %d did not match size in header", size)
		}
		format = PictureBMP
	case bytes.HasPrefix(head, emfSignature[:2]):
		format = PictureEMF
	case bytes.HasPrefix(head, jpegPrefix):
		format = PictureJPEG
	case bytes.HasPrefix(head, pngSignature[:2]):
		found, err := pngLength(s, start)
		if err != nil {
			return nil, err
		}
		if found != int(size) {
			return nil, s.errorf(ErrUnreadableSymbol, start, "PNG size %d did not match size in header %d", found, size)
		}
		format = PicturePNG
	default:
		return nil, s.errorf(ErrUnreadableSymbol, start, "unrecognised picture header % x", head[:min(len(head), 4)])
	}
	content, err := s.ReadExact(int(size))
	if err != nil {
		return nil, err
	}
	return &Picture{Format: format, Content: bytes.Clone(content)}, nil
}

// pngLength walks the chunks of a PNG starting at start, returning its total length
func pngLength(s *Stream, start int) (int, error) {
	defer func() { _ = s.Seek(start) }()
	sig, err := s.ReadExact(len(pngSignature))
	if err != nil {
		return 0, err
	}
	if !bytes.Equal(sig, pngSignature) {
		return 0, s.errorf(ErrUnreadableSymbol, start, "corrupt PNG header")
	}
	for first := true; ; first = false {
		at := s.Tell()
		header, err := s.ReadExact(8)
		if err != nil {
			return 0, err
		}
		size := binary.BigEndian.Uint32(header[:4])
		chunkType := string(header[4:])
		if first && chunkType != "IHDR" {
			return 0, s.errorf(ErrUnreadableSymbol, at, "missing PNG IHDR chunk")
		}
		if err = s.Skip(int(size)+4, "png chunk"); err != nil {
			return 0, err
		}
		if chunkType == "IEND" {
			return s.Tell() - start, nil
		}
	}
}

// pictureOf extracts the picture from an object read in place of an inline picture
func pictureOf(s *Stream, at int, obj Object) (*Picture, error) {
	switch p := obj.(type) {
	case nil:
		return nil, nil
	case *StdPicture:
		return p.Picture, nil
	}
	return nil, s.errorf(ErrUnreadableSymbol, at, "expected picture, found %s", obj.TypeName())
}

func readPictureObject(s *Stream) (*Picture, error) {
	at := s.Tell()
	obj, err := s.ReadObject()
	if err != nil {
		return nil, err
	}
	return pictureOf(s, at, obj)
}

const stdPictureMagic = 0x746C

// StdPicture is a standard OLE picture wrapper
type StdPicture struct {
	base
	Picture *Picture
}

func (p *StdPicture) TypeName() string {
	return "StdPicture"
}

func (p *StdPicture) Versions() []uint16 {
	return nil
}

func (p *StdPicture) Read(s *Stream, version uint16) error {
	at := s.Tell()
	magic, err := s.ReadUint32()
	if err != nil {
		return err
	}
	if magic != stdPictureMagic {
		return s.errorf(ErrUnreadableSymbol, at, "could not read StdPicture constant, got 0x%X", magic)
	}
	size, err := s.ReadUint32()
	if err != nil {
		return err
	}
	content, err := s.ReadExact(int(size))
	if err != nil {
		return err
	}
	format, ok := sniffPicture(content)
	if !ok {
		return s.errorf(ErrUnreadableSymbol, at+8, "could not sniff picture type")
	}
	p.Picture = &Picture{Format: format, Content: bytes.Clone(content)}
	return nil
}

func (p *StdPicture) Fields() Dict {
	if p.Picture == nil {
		return Dict{"picture_type": nil, "content": nil}
	}
	return Dict{
		"picture_type": p.Picture.typeName(),
		"content":      base64.StdEncoding.EncodeToString(p.Picture.Content),
	}
}

package slyr

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/unicode"
)

// Stream is a forward reading cursor over an in-memory blob
//
// All reads are little-endian. A read that fails never moves the cursor, so callers
// may retry at the same position (the scanner relies on this)
type Stream struct {
	buf      []byte
	pos      int
	registry *Registry
	lut      ColorLUT
	logger   zerolog.Logger
	frames   []frame
}

// frame describes an object currently being read, used for error context
type frame struct {
	typeName string
	guid     Guid
	start    int
}

// NewStream creates a stream over buf
//
// if options is nil, the default registry, color lookup table and a no-op logger are used
func NewStream(buf []byte, options *DecodeOptions) *Stream {
	options = options.withDefaults()
	s := &Stream{
		buf:      buf,
		registry: options.Registry,
		lut:      options.ColorLUT,
		logger:   *options.Logger,
	}
	if options.Offset > 0 && options.Offset <= len(buf) {
		s.pos = options.Offset
	}
	return s
}

// Tell returns the current offset
func (s *Stream) Tell() int {
	return s.pos
}

// Len returns the total length of the underlying buffer
func (s *Stream) Len() int {
	return len(s.buf)
}

// Remaining returns the number of unread bytes
func (s *Stream) Remaining() int {
	return len(s.buf) - s.pos
}

// Seek moves the cursor to an absolute offset
func (s *Stream) Seek(offset int) error {
	if offset < 0 || offset > len(s.buf) {
		return s.errorf(ErrTruncated, offset, "seek outside buffer of %d bytes", len(s.buf))
	}
	s.pos = offset
	return nil
}

// Rewind moves the cursor back by n bytes
func (s *Stream) Rewind(n int) error {
	return s.Seek(s.pos - n)
}

// ReadExact returns exactly n bytes and advances past them
//
// the returned slice aliases the stream buffer and must not be modified
func (s *Stream) ReadExact(n int) ([]byte, error) {
	if n < 0 || n > len(s.buf)-s.pos {
		return nil, s.errorf(ErrTruncated, s.pos, "need %d bytes, %d remaining", n, len(s.buf)-s.pos)
	}
	b := s.buf[s.pos : s.pos+n : s.pos+n]
	s.pos += n
	return b, nil
}

// Skip discards n opaque bytes
func (s *Stream) Skip(n int, what string) error {
	start := s.pos
	if _, err := s.ReadExact(n); err != nil {
		return err
	}
	s.logger.Trace().Int("depth", len(s.frames)).Int("offset", start).Int("bytes", n).Msgf("skipped %s", what)
	return nil
}

// SkipUntil advances until marker is found (leaving the cursor just past it), giving up after limit bytes
//
// on failure the cursor is left where it started
func (s *Stream) SkipUntil(marker byte, limit int) error {
	start := s.pos
	for i := 0; i < limit && s.pos < len(s.buf); i++ {
		b := s.buf[s.pos]
		s.pos++
		if b == marker {
			return nil
		}
	}
	s.pos = start
	return s.errorf(ErrUnreadableSymbol, start, "marker 0x%02X not found within %d bytes", marker, limit)
}

func (s *Stream) ReadUint8() (uint8, error) {
	b, err := s.ReadExact(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *Stream) ReadUint16() (uint16, error) {
	b, err := s.ReadExact(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (s *Stream) ReadUint32() (uint32, error) {
	b, err := s.ReadExact(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (s *Stream) ReadInt32() (int32, error) {
	v, err := s.ReadUint32()
	return int32(v), err
}

func (s *Stream) ReadFloat64() (float64, error) {
	b, err := s.ReadExact(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// ReadBool32 reads a uint32 flag, any non-zero value is true
func (s *Stream) ReadBool32() (bool, error) {
	v, err := s.ReadUint32()
	return v != 0, err
}

// ReadBool16 reads a uint16 flag, any non-zero value is true
func (s *Stream) ReadBool16() (bool, error) {
	v, err := s.ReadUint16()
	return v != 0, err
}

// ReadBool8 reads a byte flag, any non-zero value is true
func (s *Stream) ReadBool8() (bool, error) {
	v, err := s.ReadUint8()
	return v != 0, err
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)

// ReadString reads a length prefixed UTF-16LE string
//
// the uint32 length counts the string bytes plus a two byte 0x0000 terminator
func (s *Stream) ReadString() (string, error) {
	start := s.pos
	length, err := s.ReadUint32()
	if err != nil {
		return "", err
	}
	if length < 2 || length%2 != 0 {
		s.pos = start
		return "", s.errorf(ErrMalformedString, start, "invalid string length %d", length)
	}
	return s.readUTF16(start, int(length-2))
}

// ReadStringV2 reads a UTF-16LE string prefixed by its character count
//
// an empty string has no terminator
func (s *Stream) ReadStringV2() (string, error) {
	start := s.pos
	count, err := s.ReadUint32()
	if err != nil {
		return "", err
	}
	if count == 0 {
		return "", nil
	}
	if uint64(count)*2 > uint64(len(s.buf)) {
		s.pos = start
		return "", s.errorf(ErrTruncated, start, "string of %d characters exceeds buffer", count)
	}
	return s.readUTF16(start, int(count)*2)
}

func (s *Stream) readUTF16(start int, size int) (string, error) {
	raw, err := s.ReadExact(size)
	if err != nil {
		s.pos = start
		return "", err
	}
	terminator, err := s.ReadUint16()
	if err != nil {
		s.pos = start
		return "", err
	}
	if terminator != 0 {
		s.pos = start
		return "", s.errorf(ErrMalformedString, start+4+size, "invalid string terminator 0x%04X", terminator)
	}
	decoded, err := utf16le.NewDecoder().Bytes(raw)
	if err != nil {
		s.pos = start
		return "", s.errorf(ErrMalformedString, start, "invalid utf-16: %v", err)
	}
	return string(decoded), nil
}

// ReadRawGuid reads a class id that is not followed by an object
func (s *Stream) ReadRawGuid() (Guid, error) {
	b, err := s.ReadExact(16)
	if err != nil {
		return Guid{}, err
	}
	return DecodeWireGuid([16]byte(b)), nil
}

// errorf creates a DecodeError of the given kind, annotated with the objects currently being read
func (s *Stream) errorf(kind error, offset int, format string, args ...any) *DecodeError {
	err := &DecodeError{
		Kind:   kind,
		Offset: offset,
		Detail: fmt.Sprintf(format, args...),
	}
	s.annotate(err)
	return err
}

func (s *Stream) annotate(err *DecodeError) {
	if len(s.frames) == 0 {
		return
	}
	top := s.frames[len(s.frames)-1]
	if err.TypeName == "" {
		err.TypeName = top.typeName
	}
	if err.Guid.IsNull() {
		err.Guid = top.guid
	}
	s.annotatePath(err)
}

func (s *Stream) annotatePath(err *DecodeError) {
	if len(s.frames) == 0 {
		return
	}
	err.Path = make([]string, len(s.frames))
	for i, f := range s.frames {
		err.Path[i] = f.typeName
	}
}

func (s *Stream) push(typeName string, guid Guid, start int) {
	s.frames = append(s.frames, frame{typeName: typeName, guid: guid, start: start})
}

func (s *Stream) pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

func (s *Stream) debug() *zerolog.Event {
	return s.logger.Debug().Int("depth", len(s.frames)).Int("offset", s.pos)
}

// expectUint8 reads a byte with a known value, a different value is logged but tolerated
func (s *Stream) expectUint8(expected uint8, what string) error {
	at := s.pos
	v, err := s.ReadUint8()
	if err == nil && v != expected {
		s.warnUnexpected(at, what, v, expected)
	}
	return err
}

func (s *Stream) expectUint16(expected uint16, what string) error {
	at := s.pos
	v, err := s.ReadUint16()
	if err == nil && v != expected {
		s.warnUnexpected(at, what, v, expected)
	}
	return err
}

func (s *Stream) expectUint32(expected uint32, what string) error {
	at := s.pos
	v, err := s.ReadUint32()
	if err == nil && v != expected {
		s.warnUnexpected(at, what, v, expected)
	}
	return err
}

func (s *Stream) expectFloat64(expected float64, what string) error {
	at := s.pos
	v, err := s.ReadFloat64()
	if err == nil && v != expected {
		s.warnUnexpected(at, what, v, expected)
	}
	return err
}

func (s *Stream) warnUnexpected(at int, what string, got, expected any) {
	event := s.logger.Warn().Int("offset", at).Interface("got", got).Interface("expected", expected)
	if len(s.frames) > 0 {
		event = event.Str("type", s.frames[len(s.frames)-1].typeName)
	}
	event.Msgf("unexpected %s", what)
}

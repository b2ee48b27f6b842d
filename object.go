package slyr

import (
	"errors"
	"slices"
)

// Object is implemented by every decodable type
//
// the set of objects is closed; concrete types embed base
type Object interface {
	// TypeName is the display name of the object type, e.g. "SimpleLineSymbol"
	TypeName() string
	// Versions returns the accepted version numbers, or nil when the object has no version marker
	Versions() []uint16
	// Read populates the object from the stream, the guid and version have already been consumed
	Read(s *Stream, version uint16) error
	// Fields returns the type specific plain-data projection, see ToDict
	Fields() Dict
	// Version returns the version the object was read with
	Version() uint16
	setVersion(v uint16)
}

var (
	versionsOne       = []uint16{1}
	versionsOneTwo    = []uint16{1, 2}
	versionsOneToFour = []uint16{1, 2, 3, 4}
)

type base struct {
	version uint16
}

func (b *base) Version() uint16 {
	return b.version
}

func (b *base) setVersion(v uint16) {
	b.version = v
}

func (b *base) Versions() []uint16 {
	return versionsOne
}

// ReadObject reads a guid, creates the matching object and reads its version and fields
//
// the null guid yields (nil, nil) after consuming exactly 16 bytes. On failure the cursor
// is restored to where the object started and the error is returned as produced by the
// innermost failing read
func (s *Stream) ReadObject() (Object, error) {
	start := s.pos
	raw, err := s.ReadExact(16)
	if err != nil {
		return nil, err
	}
	guid := DecodeWireGuid([16]byte(raw))
	obj, err := s.registry.Create(guid)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			// the failing object was never created, so only the enclosing path applies
			de.Offset = start
			de.TypeName = de.Name
			s.annotatePath(de)
		}
		s.pos = start
		return nil, err
	}
	if obj == nil {
		s.logger.Trace().Int("depth", len(s.frames)).Int("offset", start).Msg("null object")
		return nil, nil
	}
	if err = s.readObjectBody(obj, guid, start); err != nil {
		s.pos = start
		return nil, err
	}
	return obj, nil
}

func (s *Stream) readObjectBody(obj Object, guid Guid, start int) error {
	s.push(obj.TypeName(), guid, start)
	defer s.pop()
	version := uint16(1)
	if accepted := obj.Versions(); accepted != nil {
		at := s.pos
		v, err := s.ReadUint16()
		if err != nil {
			return err
		}
		if !slices.Contains(accepted, v) {
			de := s.errorf(ErrUnsupportedVersion, at, "")
			de.Got = v
			de.Accepted = accepted
			return de
		}
		version = v
	}
	obj.setVersion(version)
	s.debug().Str("type", obj.TypeName()).Uint16("version", version).Msg("reading object")
	return obj.Read(s, version)
}

// readTyped reads a nested object which must be a T (or null)
func readTyped[T Object](s *Stream, what string) (T, error) {
	var zero T
	start := s.pos
	obj, err := s.ReadObject()
	if err != nil || obj == nil {
		return zero, err
	}
	typed, ok := obj.(T)
	if !ok {
		s.pos = start
		return zero, s.errorf(ErrUnreadableSymbol, start, "expected %s, found %s", what, obj.TypeName())
	}
	return typed, nil
}

func readColor(s *Stream) (Color, error) {
	return readTyped[Color](s, "color")
}

package slyr

import (
	"strings"
)

// LineTemplate is a dash pattern, expressed in multiples of the interval
type LineTemplate struct {
	base
	PatternInterval float64
	PatternParts    []PatternPart
}

type PatternPart struct {
	Filled float64
	Empty  float64
}

func (t *LineTemplate) TypeName() string {
	return "LineTemplate"
}

func (t *LineTemplate) Read(s *Stream, version uint16) (err error) {
	if t.PatternInterval, err = s.ReadFloat64(); err != nil {
		return err
	}
	count, err := s.ReadUint32()
	if err != nil {
		return err
	}
	t.PatternParts = make([]PatternPart, 0, min(int(count), s.Remaining()/16))
	for i := uint32(0); i < count; i++ {
		var part PatternPart
		if part.Filled, err = s.ReadFloat64(); err != nil {
			return err
		}
		if part.Empty, err = s.ReadFloat64(); err != nil {
			return err
		}
		t.PatternParts = append(t.PatternParts, part)
	}
	s.debug().Str("pattern", t.Pattern()).Msg("read line template")
	return nil
}

// Pattern renders the template as dashes and dots, one character per interval
func (t *LineTemplate) Pattern() string {
	var sb strings.Builder
	for _, p := range t.PatternParts {
		sb.WriteString(strings.Repeat("-", max(int(p.Filled), 0)))
		sb.WriteString(strings.Repeat(".", max(int(p.Empty), 0)))
	}
	return sb.String()
}

func (t *LineTemplate) Fields() Dict {
	parts := make([]any, 0, len(t.PatternParts))
	for _, p := range t.PatternParts {
		parts = append(parts, []any{p.Filled, p.Empty})
	}
	return Dict{
		"pattern_interval": t.PatternInterval,
		"pattern_parts":    parts,
	}
}

package slyr

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rs/zerolog"
)

type MatchKind uint8

const (
	MatchString MatchKind = iota
	MatchGuid
	MatchColor
	MatchDouble
	MatchInt
)

func (k MatchKind) String() string {
	switch k {
	case MatchString:
		return "string"
	case MatchGuid:
		return "guid"
	case MatchColor:
		return "color"
	case MatchDouble:
		return "double"
	case MatchInt:
		return "int"
	}
	return "unknown"
}

const (
	PrecedenceString = 100
	PrecedenceGuid   = 100
	PrecedenceColor  = 80
	PrecedenceDouble = 30
	PrecedenceInt    = 20
)

// Match is a run of bytes which looks like a known kind of value
type Match struct {
	Kind       MatchKind
	Start      int
	Length     int
	Value      string
	Precedence int
}

func (m Match) End() int {
	return m.Start + m.Length
}

// Recognizer tests whether the bytes at the stream position look like a value
//
// recognizers never fail: malformed data simply does not match
type Recognizer func(s *Stream) (Match, bool)

// StringScan matches non-empty printable ASCII strings
func StringScan(s *Stream) (Match, bool) {
	start := s.Tell()
	value, err := s.ReadString()
	if err != nil || value == "" || !isPrintableASCII(value) {
		return Match{}, false
	}
	return Match{
		Kind:       MatchString,
		Start:      start,
		Length:     s.Tell() - start,
		Value:      strconv.Quote(value),
		Precedence: PrecedenceString,
	}, true
}

func isPrintableASCII(v string) bool {
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c > 0x7e || (c < 0x20 && c != '\t' && c != '\n' && c != '\r' && c != '\v' && c != '\f') {
			return false
		}
	}
	return true
}

// GuidCodeScan matches 16 bytes which encode a known class id
func GuidCodeScan(s *Stream) (Match, bool) {
	start := s.Tell()
	guid, err := s.ReadRawGuid()
	if err != nil {
		return Match{}, false
	}
	name, status := s.registry.Lookup(guid)
	if status == GuidUnknown {
		return Match{}, false
	}
	return Match{
		Kind:       MatchGuid,
		Start:      start,
		Length:     16,
		Value:      name,
		Precedence: PrecedenceGuid,
	}, true
}

// ColorScan matches a complete color object
func ColorScan(s *Stream) (Match, bool) {
	start := s.Tell()
	obj, err := s.ReadObject()
	if err != nil {
		return Match{}, false
	}
	color, ok := obj.(Color)
	if !ok {
		return Match{}, false
	}
	return Match{
		Kind:       MatchColor,
		Start:      start,
		Length:     s.Tell() - start,
		Value:      colorScanValue(color),
		Precedence: PrecedenceColor,
	}, true
}

func colorScanValue(c Color) string {
	switch v := c.(type) {
	case *CmykColor:
		return fmt.Sprintf("CMYK:%d,%d,%d,%d", v.Cyan, v.Magenta, v.Yellow, v.Black)
	case *RgbColor:
		return fmt.Sprintf("%d,%d,%d", v.Red, v.Green, v.Blue)
	case *HsvColor:
		return fmt.Sprintf("%d,%d,%d", v.Red, v.Green, v.Blue)
	case *HlsColor:
		return fmt.Sprintf("%d,%d,%d", v.Red, v.Green, v.Blue)
	case *GrayColor:
		return fmt.Sprintf("%d,%d,%d", v.Red, v.Green, v.Blue)
	}
	return c.TypeName()
}

// DoubleScan matches plausible measurements: within (-1000, 10000), not ~0, and a multiple of 0.1
func DoubleScan(s *Stream) (Match, bool) {
	start := s.Tell()
	v, err := s.ReadFloat64()
	if err != nil {
		return Match{}, false
	}
	if !(v > -1000 && v < 10000) || math.Abs(v) <= 0.00001 || math.RoundToEven(v*10) != v*10 {
		return Match{}, false
	}
	return Match{
		Kind:       MatchDouble,
		Start:      start,
		Length:     8,
		Value:      strconv.FormatFloat(v, 'g', -1, 64),
		Precedence: PrecedenceDouble,
	}, true
}

// IntScan matches small non-zero uint32 values
func IntScan(s *Stream) (Match, bool) {
	start := s.Tell()
	v, err := s.ReadUint32()
	if err != nil || v == 0 || v >= 255 {
		return Match{}, false
	}
	return Match{
		Kind:       MatchInt,
		Start:      start,
		Length:     4,
		Value:      strconv.FormatUint(uint64(v), 10),
		Precedence: PrecedenceInt,
	}, true
}

// DefaultRecognizers are tried in this order at every offset
var DefaultRecognizers = []Recognizer{StringScan, GuidCodeScan, DoubleScan, IntScan, ColorScan}

// ScanOptions represents the options passed to NewScanner
type ScanOptions struct {
	// Registry resolves class ids, defaults to DefaultRegistry
	Registry *Registry
	// ColorLUT is used when decoding candidate colors, defaults to DefaultColorLUT
	ColorLUT ColorLUT
	// Recognizers defaults to DefaultRecognizers
	Recognizers []Recognizer
	// MinPrecedence drops matches of a lower precedence
	MinPrecedence int
	Logger        *zerolog.Logger
}

// Scanner looks through a blob for anything resembling a known value, as an aid to
// working out undocumented layouts
type Scanner struct {
	options     DecodeOptions
	recognizers []Recognizer
	minimum     int
	logger      zerolog.Logger
}

func NewScanner(options *ScanOptions) *Scanner {
	if options == nil {
		options = &ScanOptions{}
	}
	sc := &Scanner{
		options: DecodeOptions{
			Registry: options.Registry,
			ColorLUT: options.ColorLUT,
		},
		recognizers: options.Recognizers,
		minimum:     options.MinPrecedence,
		logger:      zerolog.Nop(),
	}
	if sc.recognizers == nil {
		sc.recognizers = DefaultRecognizers
	}
	if options.Logger != nil {
		sc.logger = *options.Logger
	}
	return sc
}

// ScanResult holds the matches found in a blob
type ScanResult struct {
	Buf []byte
	// Matches in order of discovery (by offset, then recognizer order)
	Matches []Match
	// owners maps each byte to the index of the winning match, or -1
	owners []int
}

// Scan tries every recognizer at every offset
//
// each byte is attributed to the highest precedence match covering it; on equal
// precedence the earliest match wins
func (sc *Scanner) Scan(buf []byte) *ScanResult {
	result := &ScanResult{
		Buf:    buf,
		owners: make([]int, len(buf)),
	}
	for i := range result.owners {
		result.owners[i] = -1
	}
	s := NewStream(buf, &sc.options)
	for offset := 0; offset < len(buf); offset++ {
		for _, recognize := range sc.recognizers {
			_ = s.Seek(offset)
			m, ok := recognize(s)
			if !ok || m.Precedence < sc.minimum {
				continue
			}
			idx := len(result.Matches)
			result.Matches = append(result.Matches, m)
			for b := m.Start; b < m.End() && b < len(buf); b++ {
				if owner := result.owners[b]; owner < 0 || result.Matches[owner].Precedence < m.Precedence {
					result.owners[b] = idx
				}
			}
		}
	}
	sc.logger.Debug().Int("bytes", len(buf)).Int("matches", len(result.Matches)).Msg("scanned blob")
	return result
}

// MatchAt returns the match which owns the byte at offset
func (r *ScanResult) MatchAt(offset int) (Match, bool) {
	if offset < 0 || offset >= len(r.owners) || r.owners[offset] < 0 {
		return Match{}, false
	}
	return r.Matches[r.owners[offset]], true
}

// Winners returns the matches which own at least one byte, in offset order
func (r *ScanResult) Winners() []Match {
	var result []Match
	seen := make(map[int]bool)
	for _, owner := range r.owners {
		if owner >= 0 && !seen[owner] {
			seen[owner] = true
			result = append(result, r.Matches[owner])
		}
	}
	return result
}

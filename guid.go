package slyr

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// Guid is a 128-bit class id, held in canonical (textual) byte order
type Guid uuid.UUID

// NullGuid is the all-zero guid, which marks an absent object
var NullGuid Guid

// ParseGuid parses the canonical textual form (case-insensitive, braces allowed)
func ParseGuid(s string) (Guid, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Guid{}, fmt.Errorf("invalid guid %q: %w", s, err)
	}
	return Guid(u), nil
}

// MustParseGuid is ParseGuid for constants, it panics on invalid input
func MustParseGuid(s string) Guid {
	g, err := ParseGuid(s)
	if err != nil {
		panic(err)
	}
	return g
}

// String returns the lowercase hyphenated form, e.g. 7914e603-c892-11d0-8bb6-080009ee4e41
func (g Guid) String() string {
	return uuid.UUID(g).String()
}

func (g Guid) IsNull() bool {
	return g == NullGuid
}

// DecodeWireGuid converts the on-disk (Windows GUID) layout to a Guid
//
// the first three fields are stored little-endian, the last eight bytes as-is
func DecodeWireGuid(wire [16]byte) Guid {
	return Guid(swapGuidFields(wire))
}

// EncodeWireGuid converts a Guid to its on-disk layout
func EncodeWireGuid(g Guid) [16]byte {
	return swapGuidFields([16]byte(g))
}

// WireHex returns the on-disk layout as lowercase hex, e.g. 03e6147992c8d0118bb6080009ee4e41
func (g Guid) WireHex() string {
	wire := EncodeWireGuid(g)
	return hex.EncodeToString(wire[:])
}

func swapGuidFields(in [16]byte) (out [16]byte) {
	out[0], out[1], out[2], out[3] = in[3], in[2], in[1], in[0]
	out[4], out[5] = in[5], in[4]
	out[6], out[7] = in[7], in[6]
	copy(out[8:], in[8:])
	return out
}

package slyr

import (
	"maps"
	"math"
)

// LabKey is a CIELAB triple rounded to 4 decimal places
type LabKey struct {
	L, A, B float64
}

// NewLabKey rounds the components the way lookups do
func NewLabKey(l, a, b float64) LabKey {
	return LabKey{L: roundLab(l), A: roundLab(a), B: roundLab(b)}
}

func roundLab(v float64) float64 {
	return math.RoundToEven(v*10000) / 10000
}

// ColorLUT holds known CIELAB values whose standard RGB conversion differs from the
// RGB shown by ArcGIS by more than one unit in a channel
type ColorLUT map[LabKey][3]uint8

var defaultColorLUT = ColorLUT{
	NewLabKey(0.869, 14.067, -21.3789):   {0, 2, 20},
	NewLabKey(32.6742, 51.5019, 45.4267): {131, 2, 2},
}

// DefaultColorLUT returns the built-in table, it must not be modified (use Clone)
func DefaultColorLUT() ColorLUT {
	return defaultColorLUT
}

// Lookup returns the tabled RGB for a CIELAB value
func (lut ColorLUT) Lookup(l, a, b float64) ([3]uint8, bool) {
	rgb, ok := lut[NewLabKey(l, a, b)]
	return rgb, ok
}

// Add stores an override, the key is rounded
func (lut ColorLUT) Add(l, a, b float64, rgb [3]uint8) {
	lut[NewLabKey(l, a, b)] = rgb
}

func (lut ColorLUT) Clone() ColorLUT {
	return maps.Clone(lut)
}

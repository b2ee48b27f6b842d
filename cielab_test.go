package slyr

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCIELabToRGB(t *testing.T) {
	testCases := []struct {
		lab      [3]float64
		expected [3]uint8
	}{
		{lab: labRed, expected: [3]uint8{255, 0, 0}},
		{lab: labGreen, expected: [3]uint8{0, 255, 0}},
		{lab: labBlue, expected: [3]uint8{0, 0, 255}},
		{lab: labGray127, expected: [3]uint8{127, 127, 127}},
		{lab: labMagenta, expected: [3]uint8{242, 13, 232}},
		{lab: [3]float64{26.06, 0, 0}, expected: [3]uint8{47, 47, 47}},
		{lab: [3]float64{20, 0, 0}, expected: [3]uint8{36, 36, 36}},
		{lab: [3]float64{50, 0, 0}, expected: [3]uint8{100, 100, 100}},
		{lab: [3]float64{100, 0, 0}, expected: [3]uint8{255, 255, 255}},
		{lab: [3]float64{0, 0, 0}, expected: [3]uint8{0, 0, 0}},
	}
	for i, tc := range testCases {
		t.Run(fmt.Sprintf("[%d]%v", i+1, tc.lab), func(t *testing.T) {
			r, g, b, err := CIELabToRGB(tc.lab[0], tc.lab[1], tc.lab[2], nil)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, [3]uint8{r, g, b})
		})
	}
}

func TestCIELabToRGB_LookupTable(t *testing.T) {
	r, g, b, err := CIELabToRGB(0.869, 14.067, -21.3789, nil)
	require.NoError(t, err)
	assert.Equal(t, [3]uint8{11, 0, 28}, [3]uint8{r, g, b}, "standard conversion")

	r, g, b, err = CIELabToRGB(0.869, 14.067, -21.3789, DefaultColorLUT())
	require.NoError(t, err)
	assert.Equal(t, [3]uint8{0, 2, 20}, [3]uint8{r, g, b})

	r, g, b, err = CIELabToRGB(32.67418, 51.50193, 45.42671, DefaultColorLUT())
	require.NoError(t, err)
	assert.Equal(t, [3]uint8{131, 2, 2}, [3]uint8{r, g, b}, "keys are rounded to 4 places")
}

func TestCIELabToRGB_Invalid(t *testing.T) {
	for _, lab := range [][3]float64{
		{math.NaN(), 0, 0},
		{math.Inf(1), 0, 0},
		{0, math.Inf(-1), 0},
		{400, 0, 0},
	} {
		t.Run(fmt.Sprint(lab), func(t *testing.T) {
			_, _, _, err := CIELabToRGB(lab[0], lab[1], lab[2], nil)
			assert.ErrorIs(t, err, ErrInvalidColor)
		})
	}
}

func TestScaleAndRound(t *testing.T) {
	result, ok := scaleAndRound(4.6/255, 4.4/255, 1)
	require.True(t, ok)
	assert.Equal(t, [3]uint8{5, 0, 255}, result)

	result, ok = scaleAndRound(0.5/255, 1.5/255, 2.5/255)
	require.True(t, ok)
	assert.Equal(t, [3]uint8{0, 0, 0}, result, "below the floor")

	_, ok = scaleAndRound(1.01, 0, 0)
	assert.False(t, ok)
}

func TestColorLUT(t *testing.T) {
	lut := DefaultColorLUT().Clone()
	lut.Add(10.00004, 20, 30, [3]uint8{1, 2, 3})
	rgb, ok := lut.Lookup(10, 20, 30)
	require.True(t, ok)
	assert.Equal(t, [3]uint8{1, 2, 3}, rgb)

	_, ok = DefaultColorLUT().Lookup(10, 20, 30)
	assert.False(t, ok, "clone must not alias the default table")
	assert.Equal(t, LabKey{L: 1.2346, A: -2, B: 0}, NewLabKey(1.23456, -2, 0))
}

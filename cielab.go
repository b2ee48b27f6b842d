package slyr

import (
	"fmt"
	"math"
)

// CIELAB to XYZ constants, see http://www.brucelindbloom.com/
const (
	labEpsilon = 0.008856
	labKappa   = 903.3
	// D65 reference white
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
	// gamma of the Apple RGB working space
	rgbGamma = 1.8
	// channels which round below this are zeroed
	channelFloor = 5
)

// CIELabToRGB converts a stored CIELAB color to 8-bit RGB
//
// values found in the lookup table are returned as tabled, everything else goes through
// the standard conversion. Non-finite or out of range results yield ErrInvalidColor
func CIELabToRGB(l, a, b float64, lut ColorLUT) (red, green, blue uint8, err error) {
	if rgb, ok := lut.Lookup(l, a, b); ok {
		return rgb[0], rgb[1], rgb[2], nil
	}
	r, g, bl := xyzToRGB(cielabToXYZ(l, a, b))
	if !isFinite(r) || !isFinite(g) || !isFinite(bl) {
		return 0, 0, 0, fmt.Errorf("%w: L=%g a=%g b=%g converts to non-finite rgb", ErrInvalidColor, l, a, b)
	}
	channels, ok := scaleAndRound(applyGamma(r, g, bl))
	if !ok {
		return 0, 0, 0, fmt.Errorf("%w: L=%g a=%g b=%g converts outside 0-255", ErrInvalidColor, l, a, b)
	}
	return channels[0], channels[1], channels[2], nil
}

func cielabToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116.0
	fz := fy - b/200.0
	fx := a/500.0 + fy
	var xr, yr, zr float64
	if fx3 := fx * fx * fx; fx3 > labEpsilon {
		xr = fx3
	} else {
		xr = (116*fx - 16) / labKappa
	}
	if l > labKappa*labEpsilon {
		yr = fy * fy * fy
	} else {
		yr = l / labKappa
	}
	if fz3 := fz * fz * fz; fz3 > labEpsilon {
		zr = fz3
	} else {
		zr = (116*fz - 16) / labKappa
	}
	return xr * whiteX, yr * whiteY, zr * whiteZ
}

// xyzToRGB applies the Apple RGB working space matrix
func xyzToRGB(x, y, z float64) (r, g, b float64) {
	r = 2.9515373*x - 1.2894116*y - 0.4738445*z
	g = -1.0851093*x + 1.9908566*y + 0.0372026*z
	b = 0.0854934*x - 0.2694964*y + 1.0912975*z
	return r, g, b
}

func applyGamma(r, g, b float64) (float64, float64, float64) {
	companding := func(v float64) float64 {
		if v < 0 {
			v = 0
		}
		return math.Pow(v, 1/rgbGamma)
	}
	return companding(r), companding(g), companding(b)
}

// scaleAndRound scales to 0-255, rounding half to even, and zeroes channels below channelFloor
func scaleAndRound(r, g, b float64) (result [3]uint8, ok bool) {
	for i, v := range [3]float64{r, g, b} {
		rounded := math.RoundToEven(v * 255)
		if !isFinite(rounded) || rounded < 0 || rounded > 255 {
			return result, false
		}
		if rounded < channelFloor {
			rounded = 0
		}
		result[i] = uint8(rounded)
	}
	return result, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

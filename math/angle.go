// SPDX-License-Identifier: GPL-2.0-or-later

package math

import "math"

// AngleMod changes an angle to be within 0-360 degrees
func AngleMod(a float64) float64 {
	return a - math.Floor(a/360)*360
}

// DegToRad converts degrees to radians
func DegToRad(a float64) float64 {
	return a * math.Pi / 180
}

// RadToDeg converts radians to degrees
func RadToDeg(a float64) float64 {
	return a * 180 / math.Pi
}

// SinCos returns sin and cos of an angle given in degrees. The quarter turns
// are exact so axis aligned rotations do not pick up rounding noise.
func SinCos(deg float64) (float64, float64) {
	switch AngleMod(deg) {
	case 0:
		return 0, 1
	case 90:
		return 1, 0
	case 180:
		return 0, -1
	case 270:
		return -1, 0
	}
	return math.Sincos(DegToRad(deg))
}

// SPDX-License-Identifier: GPL-2.0-or-later

package math

import "math"

type Number interface {
	int64 | float64 | float32 | int
}

func Clamp[K Number](min, val, max K) K {
	if min > val {
		return min
	} else if max < val {
		return max
	}
	return val
}

// Correct snaps v to the nearest integer if it is closer than eps.
func Correct(v, eps float64) float64 {
	r := math.Round(v)
	if math.Abs(v-r) < eps {
		if r == 0 {
			// no negative zero
			return 0
		}
		return r
	}
	return v
}

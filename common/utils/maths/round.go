package maths

import "math"

// Round rounds half away from zero at the given number of decimal digits.
func Round(val float64, digits int) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return val
	}
	scale := math.Pow(10, float64(digits))
	r := math.Round(val*scale) / scale
	if math.IsInf(r, 0) {
		return val
	}
	return r
}

// SnapZero returns exactly 0 for magnitudes below eps, including negative zero.
func SnapZero(val float64, eps float64) float64 {
	if math.Abs(val) < eps {
		return 0
	}
	return val
}

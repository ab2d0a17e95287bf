package project

import (
	"math"

	"g2rapid/common/utils/maths"

	"gonum.org/v1/gonum/num/quat"
)

const (
	quaternionDigits  = 9
	quaternionEpsilon = 1e-10
)

func axisRotation(deg float64, axis int) quat.Number {
	half := deg * math.Pi / 180 * 0.5
	q := quat.Number{Real: math.Cos(half)}
	switch axis {
	case 0:
		q.Imag = math.Sin(half)
	case 1:
		q.Jmag = math.Sin(half)
	case 2:
		q.Kmag = math.Sin(half)
	}
	return q
}

// ToQuaternion converts roll/pitch/yaw degrees into a unit quaternion composed
// in Z-Y-X order (yaw outermost). Components are rounded to 9 digits and tiny
// magnitudes are snapped to zero so emitted text carries no float noise.
func ToQuaternion(euler EulerOrientation) Quaternion {
	roll := axisRotation(euler.X, 0)
	pitch := axisRotation(euler.Y, 1)
	yaw := axisRotation(euler.Z, 2)

	q := quat.Mul(yaw, quat.Mul(pitch, roll))

	// snapping again after rounding drops any -0 the rounding produced
	clean := func(v float64) float64 {
		v = maths.SnapZero(v, quaternionEpsilon)
		return maths.SnapZero(maths.Round(v, quaternionDigits), quaternionEpsilon)
	}
	return Quaternion{
		X: clean(q.Imag),
		Y: clean(q.Jmag),
		Z: clean(q.Kmag),
		W: clean(q.Real),
	}
}

package project

import (
	"math"
	"testing"
)

func nearlyEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestToQuaternionRollNinety(t *testing.T) {
	q := ToQuaternion(EulerOrientation{X: 90})
	if !nearlyEqual(q.X, 0.70710678, 1e-8) || !nearlyEqual(q.W, 0.70710678, 1e-8) {
		t.Fatalf("unexpected quaternion: %+v", q)
	}
	if q.Y != 0 || q.Z != 0 {
		t.Fatalf("expected exact zeros for y/z, got %+v", q)
	}
	if q.X != 0.707106781 {
		t.Fatalf("expected 9 digit rounding, got %v", q.X)
	}
}

func TestToQuaternionIdentity(t *testing.T) {
	q := ToQuaternion(EulerOrientation{})
	if q != (Quaternion{W: 1}) {
		t.Fatalf("expected identity, got %+v", q)
	}
}

func TestToQuaternionSnapsNoise(t *testing.T) {
	q := ToQuaternion(EulerOrientation{X: 180})
	if q.W != 0 || math.Signbit(q.W) {
		t.Fatalf("cos(90deg) noise should snap to +0, got %v", q.W)
	}
	if q.X != 1 {
		t.Fatalf("expected x=1, got %v", q.X)
	}
}

func TestToQuaternionMatchesZYXComposition(t *testing.T) {
	for _, e := range []EulerOrientation{{30, 45, 60}, {-120, 10, 200}, {0, 90, 0}, {15, -75, 5}} {
		r, p, y := e.X*math.Pi/360, e.Y*math.Pi/360, e.Z*math.Pi/360
		cr, sr := math.Cos(r), math.Sin(r)
		cp, sp := math.Cos(p), math.Sin(p)
		cy, sy := math.Cos(y), math.Sin(y)
		want := Quaternion{
			W: cr*cp*cy + sr*sp*sy,
			X: sr*cp*cy - cr*sp*sy,
			Y: cr*sp*cy + sr*cp*sy,
			Z: cr*cp*sy - sr*sp*cy,
		}
		got := ToQuaternion(e)
		if !nearlyEqual(got.W, want.W, 1e-9) || !nearlyEqual(got.X, want.X, 1e-9) ||
			!nearlyEqual(got.Y, want.Y, 1e-9) || !nearlyEqual(got.Z, want.Z, 1e-9) {
			t.Fatalf("euler %+v: got %+v, want %+v", e, got, want)
		}
		norm := got.W*got.W + got.X*got.X + got.Y*got.Y + got.Z*got.Z
		if !nearlyEqual(norm, 1, 1e-8) {
			t.Fatalf("euler %+v: not a unit quaternion (%v)", e, norm)
		}
	}
}

func TestQuaternionWXYZOrder(t *testing.T) {
	q := Quaternion{X: 1, Y: 2, Z: 3, W: 4}
	if q.WXYZ() != [4]float64{4, 1, 2, 3} {
		t.Fatalf("unexpected reorder: %v", q.WXYZ())
	}
}

func TestOrientationDerivesQuaternion(t *testing.T) {
	o := NewOrientation(EulerOrientation{Z: 90})
	if o.Euler() != (EulerOrientation{Z: 90}) {
		t.Fatalf("euler not kept: %+v", o.Euler())
	}
	if o.Quaternion() != ToQuaternion(EulerOrientation{Z: 90}) {
		t.Fatalf("quaternion not derived from euler: %+v", o.Quaternion())
	}
}

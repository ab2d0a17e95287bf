package project

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Bounds summarises a trace for viewers: per-axis extent, centroid and the
// largest axis range.
type Bounds struct {
	Min      Position
	Max      Position
	Centroid Position
	MaxRange float64
}

func traceAxes(trace []Position) (xs, ys, zs []float64) {
	xs = make([]float64, len(trace))
	ys = make([]float64, len(trace))
	zs = make([]float64, len(trace))
	for i, p := range trace {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}
	return xs, ys, zs
}

func TraceBounds(trace []Position) (Bounds, bool) {
	if len(trace) == 0 {
		return Bounds{}, false
	}
	xs, ys, zs := traceAxes(trace)
	b := Bounds{
		Min:      Position{X: floats.Min(xs), Y: floats.Min(ys), Z: floats.Min(zs)},
		Max:      Position{X: floats.Max(xs), Y: floats.Max(ys), Z: floats.Max(zs)},
		Centroid: Position{X: stat.Mean(xs, nil), Y: stat.Mean(ys, nil), Z: stat.Mean(zs, nil)},
	}
	b.MaxRange = math.Max(b.Max.X-b.Min.X, math.Max(b.Max.Y-b.Min.Y, b.Max.Z-b.Min.Z))
	return b, true
}

// EqualAspect returns a cube around the middle of the bounds whose side is
// the largest axis range, so all three axes share one scale.
func (b Bounds) EqualAspect() (Position, Position) {
	half := b.MaxRange / 2
	mid := Position{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
	return Position{X: mid.X - half, Y: mid.Y - half, Z: mid.Z - half},
		Position{X: mid.X + half, Y: mid.Y + half, Z: mid.Z + half}
}

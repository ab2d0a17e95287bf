package project

// Position is a point in robot coordinates (mm).
type Position struct {
	X float64
	Y float64
	Z float64
}

func (p Position) Scale(f float64) Position {
	return Position{X: p.X * f, Y: p.Y * f, Z: p.Z * f}
}

// EulerOrientation holds roll/pitch/yaw about X/Y/Z in degrees.
type EulerOrientation struct {
	X float64
	Y float64
	Z float64
}

// Quaternion is stored in (x,y,z,w) order; RAPID text wants (w,x,y,z), see WXYZ.
type Quaternion struct {
	X float64
	Y float64
	Z float64
	W float64
}

func (q Quaternion) WXYZ() [4]float64 {
	return [4]float64{q.W, q.X, q.Y, q.Z}
}

// Orientation pairs Euler angles with the quaternion derived from them. The
// quaternion is computed once at construction and never set independently.
type Orientation struct {
	euler      EulerOrientation
	quaternion Quaternion
}

func NewOrientation(euler EulerOrientation) Orientation {
	return Orientation{euler: euler, quaternion: ToQuaternion(euler)}
}

func (o Orientation) Euler() EulerOrientation {
	return o.euler
}

func (o Orientation) Quaternion() Quaternion {
	return o.quaternion
}

// GeometricObject is either the tool center point or the work object frame.
type GeometricObject struct {
	Position    Position
	Orientation Orientation
}

func NewGeometricObject() GeometricObject {
	return GeometricObject{Orientation: NewOrientation(EulerOrientation{})}
}

// CenterOfGravity is a placeholder: half of the TCP offset on each axis, not a
// mass computation.
func (g GeometricObject) CenterOfGravity() Position {
	return g.Position.Scale(0.5)
}

// quaternion implements rotation quaternions over any floating-point width. It exists as its own package
// so that the dual-quaternion algebra in the root package can treat rotation math as a collaborator,
// rather than reimplementing it.
package quaternion

import (
	"github.com/solarlune/dualquat/scalar"
	"github.com/solarlune/dualquat/vector"
)

// Quaternion represents a rotation as a 4-component value: a 3D vector part (X, Y, Z) and a scalar part (W).
// Like Vectors, Quaternions are immutable value types; functions that modify the calling Quaternion return modified copies.
type Quaternion[F scalar.Float] struct {
	X, Y, Z, W F
}

// New creates a new Quaternion with the specified x, y, z, and w components.
func New[F scalar.Float](x, y, z, w F) Quaternion[F] {
	return Quaternion[F]{X: x, Y: y, Z: z, W: w}
}

// Identity returns the identity Quaternion, representing no rotation.
func Identity[F scalar.Float]() Quaternion[F] {
	return Quaternion[F]{W: 1}
}

// Pure returns the pure (zero-scalar-part) Quaternion embedding of the given Vector.
func Pure[F scalar.Float](vec vector.Vector[F]) Quaternion[F] {
	return Quaternion[F]{X: vec.X, Y: vec.Y, Z: vec.Z}
}

// FromAxisAngle creates a Quaternion rotating by the given angle (in radians) around the given axis Vector.
// The axis does not need to be normalized beforehand.
func FromAxisAngle[F scalar.Float](axis vector.Vector[F], angle F) Quaternion[F] {
	axis = axis.Unit()
	sin := scalar.Sin(angle / 2)
	cos := scalar.Cos(angle / 2)
	return Quaternion[F]{X: axis.X * sin, Y: axis.Y * sin, Z: axis.Z * sin, W: cos}
}

// FromEulerAngles creates a Quaternion from the given rotations (in radians) around the x, y, and z axes.
func FromEulerAngles[F scalar.Float](x, y, z F) Quaternion[F] {

	cx, sx := scalar.Cos(x/2), scalar.Sin(x/2)
	cy, sy := scalar.Cos(y/2), scalar.Sin(y/2)
	cz, sz := scalar.Cos(z/2), scalar.Sin(z/2)

	return Quaternion[F]{
		X: sx*cy*cz - cx*sy*sz,
		Y: cx*sy*cz + sx*cy*sz,
		Z: cx*cy*sz - sx*sy*cz,
		W: cx*cy*cz + sx*sy*sz,
	}

}

// Mul returns the Hamilton product of the calling Quaternion and the other Quaternion provided.
// Note that quaternion multiplication is not commutative.
func (quat Quaternion[F]) Mul(other Quaternion[F]) Quaternion[F] {
	return Quaternion[F]{
		X: quat.W*other.X + quat.X*other.W + quat.Y*other.Z - quat.Z*other.Y,
		Y: quat.W*other.Y + quat.Y*other.W + quat.Z*other.X - quat.X*other.Z,
		Z: quat.W*other.Z + quat.Z*other.W + quat.X*other.Y - quat.Y*other.X,
		W: quat.W*other.W - quat.X*other.X - quat.Y*other.Y - quat.Z*other.Z,
	}
}

// Add returns a copy of the calling Quaternion, added together component-wise with the other Quaternion provided.
func (quat Quaternion[F]) Add(other Quaternion[F]) Quaternion[F] {
	quat.X += other.X
	quat.Y += other.Y
	quat.Z += other.Z
	quat.W += other.W
	return quat
}

// Scale returns a copy of the calling Quaternion, with all components scaled by the given scalar.
func (quat Quaternion[F]) Scale(scalar F) Quaternion[F] {
	quat.X *= scalar
	quat.Y *= scalar
	quat.Z *= scalar
	quat.W *= scalar
	return quat
}

// Conjugate returns the conjugate of the calling Quaternion (the vector part negated, the scalar part kept).
// For a unit Quaternion, the conjugate is also its inverse rotation.
func (quat Quaternion[F]) Conjugate() Quaternion[F] {
	quat.X = -quat.X
	quat.Y = -quat.Y
	quat.Z = -quat.Z
	return quat
}

// Dot returns the dot product of the calling Quaternion and the other Quaternion provided.
func (quat Quaternion[F]) Dot(other Quaternion[F]) F {
	return quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z + quat.W*other.W
}

// Magnitude returns the length of the Quaternion.
func (quat Quaternion[F]) Magnitude() F {
	return scalar.Sqrt(quat.Dot(quat))
}

// Normalize returns a copy of the Quaternion, set to be of unit length.
func (quat Quaternion[F]) Normalize() Quaternion[F] {
	l := quat.Magnitude()
	if l < 1e-8 {
		return quat
	}
	return quat.Scale(1 / l)
}

// Vector returns the vector part (X, Y, Z) of the Quaternion.
func (quat Quaternion[F]) Vector() vector.Vector[F] {
	return vector.New(quat.X, quat.Y, quat.Z)
}

// RotateVector rotates the given Vector by the rotation the calling Quaternion represents, returning a rotated copy.
// The Quaternion should be of unit length for the result to be a pure rotation.
func (quat Quaternion[F]) RotateVector(vec vector.Vector[F]) vector.Vector[F] {
	qv := quat.Vector()
	t := qv.Cross(vec).Scale(2)
	return vec.Add(t.Scale(quat.W)).Add(qv.Cross(t))
}

// Equals returns true if the two Quaternions are within epsilon of each other in all components.
func (quat Quaternion[F]) Equals(other Quaternion[F], epsilon F) bool {
	return scalar.Equals(quat.X, other.X, epsilon) &&
		scalar.Equals(quat.Y, other.Y, epsilon) &&
		scalar.Equals(quat.Z, other.Z, epsilon) &&
		scalar.Equals(quat.W, other.W, epsilon)
}

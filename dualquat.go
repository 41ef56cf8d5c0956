// dualquat implements dual-quaternion algebra: a compact 8-scalar value that encodes a combined
// 3D rotation and translation as a single composable rigid transform, useful for skeletal animation,
// robotics, and physics. The quaternion and vector math it builds on lives in the quaternion and
// vector subpackages.
package dualquat

import (
	"github.com/solarlune/dualquat/quaternion"
	"github.com/solarlune/dualquat/scalar"
	"github.com/solarlune/dualquat/vector"
)

// DualQuaternion represents a rigid 3D transform as a pair of Quaternions. The Real part encodes the
// rotation; the Dual part encodes the translation, entangled with the rotation (it is not meaningful
// on its own - use Translation() to extract the translation Vector).
//
// For a DualQuaternion to represent a valid rigid transform, the Real part must be of unit length and
// orthogonal to the Dual part (Real.Dot(Dual) == 0). Values built through FromRotationAndTranslation
// with a unit rotation satisfy this; Add and Scale generally break it, and Normalize restores it
// approximately. No function checks the invariant at runtime.
//
// Like Vectors and Quaternions, DualQuaternions are immutable value types; functions that modify the
// calling DualQuaternion return modified copies, so they can be method-chained and are safe to share
// between goroutines.
type DualQuaternion[F scalar.Float] struct {
	Real quaternion.Quaternion[F]
	Dual quaternion.Quaternion[F]
}

// Identity returns the identity DualQuaternion, representing no rotation and no translation.
func Identity[F scalar.Float]() DualQuaternion[F] {
	return DualQuaternion[F]{
		Real: quaternion.Identity[F](),
	}
}

// FromRotationAndTranslation creates a DualQuaternion from separate rotation and translation
// components. This is the entry point from ordinary transform data into the algebra; the rotation
// Quaternion should be of unit length.
func FromRotationAndTranslation[F scalar.Float](rotation quaternion.Quaternion[F], translation vector.Vector[F]) DualQuaternion[F] {
	return DualQuaternion[F]{
		Real: rotation,
		Dual: quaternion.Pure(translation).Mul(rotation).Scale(0.5),
	}
}

// Add returns a copy of the calling DualQuaternion, added together component-wise with the other
// DualQuaternion provided. Note that the sum of two valid rigid transforms is generally not itself
// a valid rigid transform (the Real part is no longer of unit length) - Add exists for blending,
// where the result is normalized afterwards.
func (dq DualQuaternion[F]) Add(other DualQuaternion[F]) DualQuaternion[F] {
	dq.Real = dq.Real.Add(other.Real)
	dq.Dual = dq.Dual.Add(other.Dual)
	return dq
}

// Mul composes the calling DualQuaternion with the other DualQuaternion provided. Composition works
// like matrix multiplication, right to left: the transform a.Mul(b) first applies b, then a. So for
// points transformed as p' = R*p + t, a.Mul(b) rotates by a.Rotation()*b.Rotation() and translates
// by a.Translation() + a's rotation applied to b.Translation().
func (dq DualQuaternion[F]) Mul(other DualQuaternion[F]) DualQuaternion[F] {
	return DualQuaternion[F]{
		Real: dq.Real.Mul(other.Real),
		Dual: dq.Real.Mul(other.Dual).Add(dq.Dual.Mul(other.Real)),
	}
}

// Scale returns a copy of the calling DualQuaternion with every component of both parts scaled by
// the given scalar. Scaling by anything other than 1 breaks the unit-rotation invariant; see Normalize.
func (dq DualQuaternion[F]) Scale(scalar F) DualQuaternion[F] {
	dq.Real = dq.Real.Scale(scalar)
	dq.Dual = dq.Dual.Scale(scalar)
	return dq
}

// Conjugate returns the conjugate of the calling DualQuaternion (both parts quaternion-conjugated).
// When the Real part is of unit length, the conjugate is the inverse transform:
// dq.Mul(dq.Conjugate()) is the identity.
func (dq DualQuaternion[F]) Conjugate() DualQuaternion[F] {
	dq.Real = dq.Real.Conjugate()
	dq.Dual = dq.Dual.Conjugate()
	return dq
}

// Dot returns the dot product of the Real parts of the two DualQuaternions. The Dual parts are
// deliberately left out of the reduction; this is the quantity Normalize divides by.
func (dq DualQuaternion[F]) Dot(other DualQuaternion[F]) F {
	return dq.Real.Dot(other.Real)
}

// Normalize returns a copy of the calling DualQuaternion, rescaled so that the Real part is of unit
// length, with the first-order component of the Dual part along the Real part removed. This is a
// first-order (not exact) normalization, but it is exact for values that only differ from a valid
// rigid transform by a uniform scale.
//
// Normalize divides by the length of the Real part: if that length is zero or near zero, the result
// is non-finite (NaN / Inf). Callers must guarantee a non-degenerate Real part.
func (dq DualQuaternion[F]) Normalize() DualQuaternion[F] {
	k := 1 / scalar.Sqrt(dq.Dot(dq))
	return DualQuaternion[F]{
		Real: dq.Real.Scale(k),
		Dual: dq.Dual.Scale(k).Add(dq.Real.Scale(-dq.Real.Dot(dq.Dual))),
	}
}

// Rotation returns the rotation component of the DualQuaternion (the Real part, unchanged).
// The result is only a valid rotation if the Real part is of unit length.
func (dq DualQuaternion[F]) Rotation() quaternion.Quaternion[F] {
	return dq.Real
}

// Translation extracts the translation component of the DualQuaternion as a Vector. This inverts the
// encoding done by FromRotationAndTranslation, and is exact when the Real part is of unit length.
func (dq DualQuaternion[F]) Translation() vector.Vector[F] {
	return dq.Dual.Scale(2).Mul(dq.Real.Conjugate()).Vector()
}

// Equals returns true if the two DualQuaternions are within epsilon of each other in all components.
func (dq DualQuaternion[F]) Equals(other DualQuaternion[F], epsilon F) bool {
	return dq.Real.Equals(other.Real, epsilon) && dq.Dual.Equals(other.Dual, epsilon)
}

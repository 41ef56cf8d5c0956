package vector

import "github.com/solarlune/dualquat/scalar"

// Vector represents a 3D Vector, which can be used for usual 3D applications (position, direction, velocity, etc).
// Any Vector functions that modify the calling Vector return copies of the modified Vector, meaning you can do method-chaining easily.
// Vectors seem to be most efficient when copied (so try not to store pointers to them if possible, as dereferencing pointers
// can be more inefficient than directly acting on data, and storing pointers moves variables to heap).
type Vector[F scalar.Float] struct {
	X F // The X (1st) component of the Vector
	Y F // The Y (2nd) component of the Vector
	Z F // The Z (3rd) component of the Vector
}

// New creates a new Vector with the specified x, y, and z components.
func New[F scalar.Float](x, y, z F) Vector[F] {
	return Vector[F]{X: x, Y: y, Z: z}
}

// Zero creates a new "zero-ed out" Vector, with the values of 0, 0, and 0.
func Zero[F scalar.Float]() Vector[F] {
	return Vector[F]{}
}

// Add returns a copy of the calling Vector, added together with the other Vector provided.
func (vec Vector[F]) Add(other Vector[F]) Vector[F] {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it.
func (vec Vector[F]) Sub(other Vector[F]) Vector[F] {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Invert returns a copy of the calling Vector with all components inverted.
func (vec Vector[F]) Invert() Vector[F] {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Scale returns a copy of the calling Vector, scaled by the given scalar.
func (vec Vector[F]) Scale(scalar F) Vector[F] {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Cross returns a new Vector, indicating the cross product of the calling Vector and the provided other Vector.
func (vec Vector[F]) Cross(other Vector[F]) Vector[F] {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Dot returns the dot product of the calling Vector and another Vector.
func (vec Vector[F]) Dot(other Vector[F]) F {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Magnitude returns the length of the Vector.
func (vec Vector[F]) Magnitude() F {
	return scalar.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector; this is faster than Magnitude() as it avoids using a square root.
func (vec Vector[F]) MagnitudeSquared() F {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
func (vec Vector[F]) Unit() Vector[F] {
	l := vec.Magnitude()
	if l < 1e-8 {
		// If it's 0, then don't modify the vector
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Equals returns true if the two Vectors are within epsilon of each other in all components.
func (vec Vector[F]) Equals(other Vector[F], epsilon F) bool {
	return scalar.Equals(vec.X, other.X, epsilon) &&
		scalar.Equals(vec.Y, other.Y, epsilon) &&
		scalar.Equals(vec.Z, other.Z, epsilon)
}

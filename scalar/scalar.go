// scalar is a stand-in for the built-in math package for the generic packages in this module; the functions
// take any floating-point type instead of just float64s, so the same algebra works at both 32-bit and 64-bit widths.
package scalar

import "math"

// Float covers the floating-point types the dualquat packages are generic over.
type Float interface {
	~float32 | ~float64
}

// Sqrt returns the square root of the value provided.
func Sqrt[F Float](value F) F {
	return F(math.Sqrt(float64(value)))
}

// Sin returns the sine of the angle provided (in radians).
func Sin[F Float](angle F) F {
	return F(math.Sin(float64(angle)))
}

// Cos returns the cosine of the angle provided (in radians).
func Cos[F Float](angle F) F {
	return F(math.Cos(float64(angle)))
}

// Abs returns the absolute value of the value provided.
func Abs[F Float](value F) F {
	if value < 0 {
		return -value
	}
	return value
}

// Equals returns true if the two values provided are within epsilon of each other.
func Equals[F Float](a, b, epsilon F) bool {
	return Abs(a-b) <= epsilon
}

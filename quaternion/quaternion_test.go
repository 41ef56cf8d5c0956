package quaternion

import (
	"math"
	"testing"

	"github.com/solarlune/dualquat/vector"
)

const epsilon = 1e-9

func TestFromAxisAngle(t *testing.T) {

	// Rotating the x-axis a quarter turn around +Y points it down -Z (right-handed coordinate system).
	q := FromAxisAngle(vector.New(0.0, 1.0, 0.0), math.Pi/2)

	rotated := q.RotateVector(vector.New(1.0, 0.0, 0.0))

	if !rotated.Equals(vector.New(0.0, 0.0, -1.0), epsilon) {
		t.Fatalf("rotating the x-axis around +Y gave %v", rotated)
	}

	// The same rotation expressed as Euler angles should produce the same quaternion.
	if !q.Equals(FromEulerAngles(0.0, math.Pi/2, 0.0), epsilon) {
		t.Fatal("axis-angle and Euler constructions of the same rotation disagree")
	}

}

func TestMulRotatesLikeChainedRotations(t *testing.T) {

	a := FromAxisAngle(vector.New(0.0, 1.0, 0.0), 0.6)
	b := FromAxisAngle(vector.New(1.0, 0.0, 0.0), -1.3)

	v := vector.New(0.5, -2.0, 1.25)

	// a.Mul(b) should rotate by b first, then by a.
	chained := a.RotateVector(b.RotateVector(v))

	if !a.Mul(b).RotateVector(v).Equals(chained, epsilon) {
		t.Fatal("multiplying quaternions does not chain their rotations")
	}

}

func TestConjugate(t *testing.T) {

	q := FromAxisAngle(vector.New(1.0, -1.0, 0.5), 0.9)

	if !q.Mul(q.Conjugate()).Equals(Identity[float64](), epsilon) {
		t.Fatal("a unit quaternion times its conjugate is not the identity")
	}

	v := vector.New(3.0, 1.0, -2.0)

	if !q.Conjugate().RotateVector(q.RotateVector(v)).Equals(v, epsilon) {
		t.Fatal("the conjugate does not undo the rotation")
	}

}

func TestNormalize(t *testing.T) {

	q := New(1.0, 2.0, 3.0, 4.0).Normalize()

	if math.Abs(q.Magnitude()-1) > epsilon {
		t.Fatalf("normalized quaternion has length %v", q.Magnitude())
	}

}

func BenchmarkMul(b *testing.B) {

	b.ReportAllocs()

	q1 := FromAxisAngle(vector.New(0.0, 1.0, 0.0), 0.01)
	q2 := q1

	for i := 0; i < b.N; i++ {
		q2 = q2.Mul(q1)
	}

}

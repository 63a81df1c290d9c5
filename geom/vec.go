/*package geom contains the vector and element primitives used by the
quality metrics.

Sign conventions matter here: the cross product is right-handed, and every
element type orders its vertices so that outward face normals follow that
handedness. The metric packages rely on this to distinguish inverted
elements from valid ones.
*/
package geom

import (
	"math"
)

// MinLength is the numerical floor below which a length is treated as zero.
// It is the smallest positive normalized double, so only genuinely
// degenerate geometry trips it.
const MinLength = 2.2250738585072014e-308

// Vec is a three dimensional vector.
type Vec [3]float64

// NewVec creates a vector from its three components.
func NewVec(x, y, z float64) Vec {
	return Vec{x, y, z}
}

// FromBuf creates a vector from the first three elements of a coordinate
// buffer.
func FromBuf(buf []float64) Vec {
	return Vec{buf[0], buf[1], buf[2]}
}

// Displacement returns the vector pointing from tail to head.
func Displacement(tail, head Vec) Vec {
	return head.Sub(tail)
}

// Add returns the componentwise sum v + u.
func (v Vec) Add(u Vec) Vec {
	return Vec{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

// Sub returns the componentwise difference v - u.
func (v Vec) Sub(u Vec) Vec {
	return Vec{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

// Scale returns v scaled by c.
func (v Vec) Scale(c float64) Vec {
	return Vec{v[0] * c, v[1] * c, v[2] * c}
}

// Div returns v divided by c. Dividing by exactly zero is a programming
// error and panics rather than propagating Infs.
func (v Vec) Div(c float64) Vec {
	if c == 0 {
		panic("geom: vector division by zero scalar")
	}
	return Vec{v[0] / c, v[1] / c, v[2] / c}
}

// Dot returns the inner product of v and u.
func (v Vec) Dot(u Vec) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

// Cross returns the right-handed cross product v x u.
func (v Vec) Cross(u Vec) Vec {
	return Vec{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}
}

// Length returns the Euclidean length of v.
func (v Vec) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// LengthSq returns the squared length of v. Use it instead of Length when
// only comparing lengths, since it skips the sqrt.
func (v Vec) LengthSq() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Normalize scales v to unit length in place and returns its previous
// length. A vector of exactly zero length is left unchanged and 0 is
// returned.
func (v *Vec) Normalize() float64 {
	l := v.Length()
	if l == 0 {
		return 0
	}
	v[0] /= l
	v[1] /= l
	v[2] /= l
	return l
}

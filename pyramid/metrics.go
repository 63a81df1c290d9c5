package pyramid

import (
	"math"

	"github.com/meshquality/gopyramid/element"
	"github.com/meshquality/gopyramid/geom"
)

// rightCornerFactor normalizes a corner Jacobian against the corner of a
// right tetrahedron, so that an ideal pyramid corner scores 1.
const rightCornerFactor = math.Sqrt2 / 2

// Evaluators bundles the single element evaluators the pyramid metrics
// delegate to. Both functions must follow the same winding and sign
// conventions as the decomposition tables; tests substitute stubs here to
// exercise the combination logic in isolation.
type Evaluators struct {
	// TetJacobian returns the Jacobian of a tetrahedron at its first
	// vertex.
	TetJacobian func(*geom.Tetra) float64
	// QuadShape returns a shape score in [0, 1] for a quadrilateral, 0 for
	// a degenerate one.
	QuadShape func(*geom.Quad) float64
}

// Default returns the evaluators backed by the element package.
func Default() Evaluators {
	return Evaluators{
		TetJacobian: element.TetJacobian,
		QuadShape:   element.QuadShape,
	}
}

// Volume returns the signed volume of the pyramid: the sum of the signed
// volumes of its two-tetrahedron decomposition. A negative result means the
// cell is inverted; the value is not clamped.
func Volume(p *geom.Pyramid) float64 {
	tets := VolumeTets(p)
	return signedTetVolume(&tets[0]) + signedTetVolume(&tets[1])
}

func signedTetVolume(t *geom.Tetra) float64 {
	s1 := t[1].Sub(t[0])
	s2 := t[2].Sub(t[0])
	s3 := t[3].Sub(t[0])
	return s3.Dot(s1.Cross(s2)) / 6.0
}

// Jacobian returns the minimum tetrahedron Jacobian over the four corner
// tetrahedra. The worst corner dominates the numerical conditioning the
// cell imposes on a solver, so the minimum is reported rather than an
// average.
func (ev Evaluators) Jacobian(p *geom.Pyramid) float64 {
	tets := JacobianTets(p)

	j1 := ev.TetJacobian(&tets[0])
	j2 := ev.TetJacobian(&tets[1])
	j3 := ev.TetJacobian(&tets[2])
	j4 := ev.TetJacobian(&tets[3])

	return min(min(j1, j2), min(j3, j4))
}

// ScaledJacobian returns the minimum over the four corner tetrahedra of the
// Jacobian normalized by the lengths of the three edges meeting at the
// corner. An ideal pyramid corner scores 1; corners steeper than a right
// tetrahedron corner score above 1 and the value is not clamped. If any of
// the eight edges is degenerate the metric is 0 rather than dividing by a
// vanishing length.
func (ev Evaluators) ScaledJacobian(p *geom.Pyramid) float64 {
	edges := Edges(p)

	var length [8]float64
	for i := range edges {
		length[i] = edges[i].Length()
		if length[i] < geom.MinLength {
			return 0
		}
	}

	tets := JacobianTets(p)

	minScaled := math.MaxFloat64
	for i := range tets {
		jac := ev.TetJacobian(&tets[i])
		e := cornerEdgeIdx[i]
		scaled := jac / (length[e[0]] * length[e[1]] * length[e[2]] *
			rightCornerFactor)
		minScaled = min(minScaled, scaled)
	}
	return minScaled
}

// Shape returns a scale invariant score in [0, 1] combining three factors:
// the shape of the quadrilateral base, the cosine of the apex tilt away
// from the base normal, and the apex height normalized against the largest
// edge. Any factor collapsing to zero zeroes the whole score; a good cell
// needs a good base and a well aligned, well proportioned apex.
func (ev Evaluators) Shape(p *geom.Pyramid) float64 {
	base, _ := Faces(p)
	baseShape := ev.QuadShape(&base)
	if baseShape == 0 {
		return 0
	}

	dist, cosAngle := ApexToBase(p)
	if dist <= 0 || cosAngle <= 0 {
		return 0
	}

	// The reference height of a balanced pyramid. Flatter cells are
	// penalized by dist/ref, needle cells by ref/dist.
	ref := LargestEdge(p) * rightCornerFactor
	var ratio float64
	if dist < ref {
		ratio = dist / ref
	} else {
		ratio = ref / dist
	}

	return baseShape * cosAngle * ratio
}

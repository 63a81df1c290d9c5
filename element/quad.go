package element

import (
	"github.com/meshquality/gopyramid/geom"
)

// QuadShape returns a shape score in [0, 1] for a quadrilateral: 1 for a
// planar square, smaller for stretched, sheared or warped quads, and 0 for
// quads with a degenerate side or a corner folded against the rest of the
// quad. The score is winding independent: a globally reversed quad gets
// the same score as its mirror image, since the center normal reverses
// with it. Cell metrics detect inversion from the apex side, not here.
func QuadShape(q *geom.Quad) float64 {
	e := quadEdges(q)

	var lsq [4]float64
	for i := range e {
		lsq[i] = e[i].LengthSq()
		if lsq[i] < geom.MinLength {
			return 0
		}
	}

	areas := signedCornerAreas(&e)

	shape := 2 * min(
		areas[0]/(lsq[0]+lsq[3]),
		areas[1]/(lsq[1]+lsq[0]),
		areas[2]/(lsq[2]+lsq[1]),
		areas[3]/(lsq[3]+lsq[2]),
	)
	if shape < 0 {
		return 0
	}
	return shape
}

// quadEdges returns the directed perimeter edges 0->1, 1->2, 2->3, 3->0.
func quadEdges(q *geom.Quad) [4]geom.Vec {
	return [4]geom.Vec{
		q[1].Sub(q[0]),
		q[2].Sub(q[1]),
		q[3].Sub(q[2]),
		q[0].Sub(q[3]),
	}
}

// signedCornerAreas projects the corner normals onto the quad's center
// normal, so that corners folded against the quad's overall orientation
// come out negative. The center normal follows the winding, so reversing
// the whole quad negates nothing.
func signedCornerAreas(e *[4]geom.Vec) [4]float64 {
	cornerNormals := [4]geom.Vec{
		e[3].Cross(e[0]),
		e[0].Cross(e[1]),
		e[1].Cross(e[2]),
		e[2].Cross(e[3]),
	}

	// The center normal comes from the principal axes so it is well defined
	// even for warped quads.
	centerNormal := e[0].Sub(e[2]).Cross(e[1].Sub(e[3]))
	centerNormal.Normalize()

	var areas [4]float64
	for i := range areas {
		areas[i] = centerNormal.Dot(cornerNormals[i])
	}
	return areas
}

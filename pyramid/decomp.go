/*package pyramid computes quality metrics for five vertex pyramid cells.

A pyramid is evaluated by decomposing it into canonical sub-shapes
(tetrahedra, faces, directed edges) and combining the sub-shape scores into
a single scalar per metric. The decomposition index tables below define the
sub-shape vertex orderings; the scaled Jacobian indexes into the edge set
positionally, so the tables must stay consistent with each other.
*/
package pyramid

import (
	"math"

	"github.com/meshquality/gopyramid/geom"
)

var (
	// volumeTetIdx splits the pyramid across base diagonal 0-2 into two
	// tetrahedra whose signed volumes sum to the pyramid's signed volume.
	volumeTetIdx = [2][4]int{
		{0, 1, 2, 4},
		{0, 2, 3, 4},
	}

	// jacobianTetIdx anchors one tetrahedron at each base vertex together
	// with its two base neighbors and the apex. The orderings fix the sign
	// convention seen by the tetrahedron Jacobian evaluator.
	jacobianTetIdx = [4][4]int{
		{0, 1, 2, 4},
		{2, 3, 0, 4},
		{0, 1, 3, 4},
		{1, 2, 3, 4},
	}

	// triFaceIdx lists the four triangular side faces, outward oriented.
	triFaceIdx = [4][3]int{
		{0, 1, 4},
		{1, 2, 4},
		{2, 3, 4},
		{3, 0, 4},
	}

	// edgeIdx lists tail and head vertices of the eight directed edges:
	// four around the base perimeter, then one from each base vertex up to
	// the apex. Positions in this table are load bearing; cornerEdgeIdx
	// refers to them.
	edgeIdx = [8][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{0, 4}, {1, 4}, {2, 4}, {3, 4},
	}

	// cornerEdgeIdx gives, for each Jacobian tetrahedron, the three edges
	// that meet at its anchor corner, as positions into edgeIdx.
	cornerEdgeIdx = [4][3]int{
		{0, 1, 5},
		{2, 3, 7},
		{0, 3, 4},
		{1, 2, 6},
	}
)

// VolumeTets returns the two tetrahedra of the volume decomposition.
func VolumeTets(p *geom.Pyramid) [2]geom.Tetra {
	var tets [2]geom.Tetra
	for i, idx := range volumeTetIdx {
		for j, v := range idx {
			tets[i][j] = p[v]
		}
	}
	return tets
}

// JacobianTets returns the four corner-anchored tetrahedra used by the
// Jacobian family of metrics.
func JacobianTets(p *geom.Pyramid) [4]geom.Tetra {
	var tets [4]geom.Tetra
	for i, idx := range jacobianTetIdx {
		for j, v := range idx {
			tets[i][j] = p[v]
		}
	}
	return tets
}

// Faces returns the five faces of the pyramid: the quadrilateral base and
// the four triangular sides.
func Faces(p *geom.Pyramid) (base geom.Quad, tris [4]geom.Tri) {
	base = p.Base()
	for i, idx := range triFaceIdx {
		for j, v := range idx {
			tris[i][j] = p[v]
		}
	}
	return base, tris
}

// Edges returns the eight directed edge vectors in the fixed order defined
// by edgeIdx.
func Edges(p *geom.Pyramid) [8]geom.Vec {
	var edges [8]geom.Vec
	for i, idx := range edgeIdx {
		edges[i] = p[idx[1]].Sub(p[idx[0]])
	}
	return edges
}

// LargestEdge returns the length of the longest of the eight edges. The
// comparison pass runs on squared lengths; the single sqrt happens at the
// end.
func LargestEdge(p *geom.Pyramid) float64 {
	edges := Edges(p)
	maxSq := edges[0].LengthSq()
	for i := 1; i < len(edges); i++ {
		maxSq = max(maxSq, edges[i].LengthSq())
	}
	return math.Sqrt(maxSq)
}

// ApexToBase returns the signed perpendicular distance from the apex to the
// base plane and the cosine of the angle between the apex offset and the
// base normal. The base plane is anchored at the centroid of the four base
// vertices with normal (v1-v0) x (v3-v0), so the distance is positive for
// a properly oriented cell and negative for an inverted one. For a
// degenerate base (zero area) or an apex on the centroid both results are
// 0, which downstream metrics treat as zero quality.
func ApexToBase(p *geom.Pyramid) (dist, cosAngle float64) {
	centroid := p[0].Add(p[1]).Add(p[2]).Add(p[3]).Scale(0.25)
	normal := p[1].Sub(p[0]).Cross(p[3].Sub(p[0]))

	normalLength := normal.Length()
	pq := p.Apex().Sub(centroid)
	pqLength := pq.Length()
	if normalLength < geom.MinLength || pqLength < geom.MinLength {
		return 0, 0
	}

	dist = pq.Dot(normal) / normalLength
	return dist, dist / pqLength
}

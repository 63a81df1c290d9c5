package geom

// Tri is a triangle.
type Tri [3]Vec

// Quad is a quadrilateral with vertices in winding order.
type Quad [4]Vec

// Tetra is a tetrahedron.
type Tetra [4]Vec

// Pyramid is a five vertex cell: vertices 0-3 form the quadrilateral base
// in winding order and vertex 4 is the apex. With a counterclockwise base
// (seen from the apex side) the cell has positive volume.
type Pyramid [5]Vec

// Apex returns the peak vertex of the pyramid.
func (p *Pyramid) Apex() Vec {
	return p[4]
}

// Base returns the quadrilateral base of the pyramid.
func (p *Pyramid) Base() Quad {
	return Quad{p[0], p[1], p[2], p[3]}
}

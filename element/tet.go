/*package element implements quality evaluators for single mesh elements.
These are the leaf formulas that composite cell metrics delegate to.*/
package element

import (
	"github.com/meshquality/gopyramid/geom"
)

// TetJacobian returns the Jacobian of a tetrahedron evaluated at vertex 0:
// the triple product of the three edge vectors leaving that corner. It is
// positive for a properly oriented tetrahedron, negative for an inverted
// one, and zero when the four vertices are coplanar.
func TetJacobian(t *geom.Tetra) float64 {
	s0 := t[1].Sub(t[0])
	s1 := t[2].Sub(t[0])
	s2 := t[3].Sub(t[0])
	return s2.Dot(s0.Cross(s1))
}

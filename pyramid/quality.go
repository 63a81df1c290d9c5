package pyramid

import (
	"errors"
	"fmt"
	"math"

	"github.com/meshquality/gopyramid/geom"
)

// NumVertices is the vertex count of a pyramid cell.
const NumVertices = 5

// Flag selects which metrics Quality computes.
type Flag uint32

const (
	VolumeMetric Flag = 1 << iota
	JacobianMetric
	ScaledJacobianMetric
	ShapeMetric

	AllMetrics = VolumeMetric | JacobianMetric | ScaledJacobianMetric |
		ShapeMetric
)

// Metrics holds the computed quality values for one pyramid. Fields whose
// metrics were not requested are left at zero.
type Metrics struct {
	Volume         float64
	Jacobian       float64
	ScaledJacobian float64
	Shape          float64
}

var (
	// ErrVertexCount reports a coordinate slice whose length is not
	// NumVertices.
	ErrVertexCount = errors.New("pyramid cell needs exactly 5 vertices")
	// ErrBadCoord reports a NaN or infinite coordinate component.
	ErrBadCoord = errors.New("coordinate is NaN or infinite")
)

// Validate checks that coords describes a well formed pyramid input: exactly
// NumVertices points with finite components. Geometric degeneracies (zero
// edges, flat bases) are not errors; the individual metrics degrade to zero
// on those.
func Validate(coords []geom.Vec) error {
	if len(coords) != NumVertices {
		return fmt.Errorf("%w, got %d", ErrVertexCount, len(coords))
	}
	for i, v := range coords {
		for k := 0; k < 3; k++ {
			if math.IsNaN(v[k]) || math.IsInf(v[k], 0) {
				return fmt.Errorf("vertex %d: %w", i, ErrBadCoord)
			}
		}
	}
	return nil
}

// Quality zeroes vals and then computes every metric selected by flags into
// it. All requested metrics are computed, independently of one another. The
// returned error is non-nil only for malformed input (see Validate), in
// which case vals is left zeroed.
func (ev Evaluators) Quality(coords []geom.Vec, flags Flag, vals *Metrics) error {
	*vals = Metrics{}

	if err := Validate(coords); err != nil {
		return err
	}

	var p geom.Pyramid
	copy(p[:], coords)

	if flags&VolumeMetric != 0 {
		vals.Volume = Volume(&p)
	}
	if flags&JacobianMetric != 0 {
		vals.Jacobian = ev.Jacobian(&p)
	}
	if flags&ScaledJacobianMetric != 0 {
		vals.ScaledJacobian = ev.ScaledJacobian(&p)
	}
	if flags&ShapeMetric != 0 {
		vals.Shape = ev.Shape(&p)
	}
	return nil
}

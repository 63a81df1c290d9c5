package io

import (
	"fmt"
	goio "io"

	"github.com/phil-mansfield/table"

	"github.com/meshquality/gopyramid/geom"
	"github.com/meshquality/gopyramid/pyramid"
)

// coordCols is the column count of an element file: three coordinates for
// each of the five vertices.
const coordCols = 3 * pyramid.NumVertices

// ReadPyramids reads pyramid elements from a whitespace separated text
// file, one element per line in the column layout described by
// ExampleQualityFile.
func ReadPyramids(fname string) ([]geom.Pyramid, error) {
	colIdxs := make([]int, coordCols)
	for i := range colIdxs {
		colIdxs[i] = i
	}

	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	ps := make([]geom.Pyramid, len(cols[0]))
	for i := range ps {
		for v := 0; v < pyramid.NumVertices; v++ {
			ps[i][v] = geom.FromBuf([]float64{
				cols[3*v][i], cols[3*v+1][i], cols[3*v+2][i],
			})
		}
	}
	return ps, nil
}

// Coords flattens pyramids into the coordinate-slice form the dispatch
// layer consumes.
func Coords(ps []geom.Pyramid) [][]geom.Vec {
	coords := make([][]geom.Vec, len(ps))
	for i := range ps {
		coords[i] = ps[i][:]
	}
	return coords
}

// WriteMetrics writes one row per element with a column for each requested
// metric, preceded by a # header naming the columns.
func WriteMetrics(
	w goio.Writer, vals []pyramid.Metrics, flags pyramid.Flag,
) error {
	names := []string{}
	if flags&pyramid.VolumeMetric != 0 {
		names = append(names, "Volume")
	}
	if flags&pyramid.JacobianMetric != 0 {
		names = append(names, "Jacobian")
	}
	if flags&pyramid.ScaledJacobianMetric != 0 {
		names = append(names, "ScaledJacobian")
	}
	if flags&pyramid.ShapeMetric != 0 {
		names = append(names, "Shape")
	}

	if _, err := fmt.Fprint(w, "# Element"); err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintf(w, " %s", name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for i, v := range vals {
		if _, err := fmt.Fprintf(w, "%d", i); err != nil {
			return err
		}
		cols := []struct {
			flag pyramid.Flag
			val  float64
		}{
			{pyramid.VolumeMetric, v.Volume},
			{pyramid.JacobianMetric, v.Jacobian},
			{pyramid.ScaledJacobianMetric, v.ScaledJacobian},
			{pyramid.ShapeMetric, v.Shape},
		}
		for _, col := range cols {
			if flags&col.flag == 0 {
				continue
			}
			if _, err := fmt.Fprintf(w, " %.12g", col.val); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

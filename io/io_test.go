package io

import (
	"os"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meshquality/gopyramid/geom"
	"github.com/meshquality/gopyramid/pyramid"
)

func writeTemp(t *testing.T, name, text string) string {
	t.Helper()
	fname := path.Join(t.TempDir(), name)
	if err := os.WriteFile(fname, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestReadPyramids(t *testing.T) {
	fname := writeTemp(t, "elems.txt",
		`# x0 y0 z0 x1 y1 z1 x2 y2 z2 x3 y3 z3 x4 y4 z4
0 0 0  1 0 0  1 1 0  0 1 0  0.5 0.5 1
0 0 0  2 0 0  2 2 0  0 2 0  1 1 3
`)

	ps, err := ReadPyramids(fname)
	assert.NoError(t, err)
	assert.Len(t, ps, 2)

	assert.Equal(t, geom.Pyramid{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {0.5, 0.5, 1},
	}, ps[0])
	assert.Equal(t, geom.Vec{1, 1, 3}, ps[1].Apex())
}

func TestCoords(t *testing.T) {
	ps := []geom.Pyramid{
		{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {0.5, 0.5, 1}},
	}
	coords := Coords(ps)
	assert.Len(t, coords, 1)
	assert.Len(t, coords[0], pyramid.NumVertices)
	assert.Equal(t, ps[0][4], coords[0][4])
}

func TestWriteMetrics(t *testing.T) {
	vals := []pyramid.Metrics{
		{Volume: 1.0 / 3, Shape: 0.5},
		{Volume: -2, Shape: 0},
	}

	buf := &strings.Builder{}
	err := WriteMetrics(buf, vals, pyramid.VolumeMetric|pyramid.ShapeMetric)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "# Element Volume Shape", lines[0])
	assert.Equal(t, "1 -2 0", lines[2])

	fields := strings.Fields(lines[1])
	assert.Equal(t, []string{"0", "0.333333333333", "0.5"}, fields)
}

func TestReadQualityConfig(t *testing.T) {
	fname := writeTemp(t, "quality.cfg",
		`[Quality]
Input = elems.txt
Metrics = ScaledJacobian, Shape
MinScaledJacobian = 0.2
Workers = 4
`)

	con, err := ReadQualityConfig(fname)
	assert.NoError(t, err)
	assert.Equal(t, "elems.txt", con.Input)
	assert.Equal(t, 0.2, con.MinScaledJacobian)
	assert.Equal(t, 4, con.Workers)
	assert.Equal(t,
		pyramid.ScaledJacobianMetric|pyramid.ShapeMetric, con.Flags())
}

func TestReadQualityConfigDefaults(t *testing.T) {
	fname := writeTemp(t, "quality.cfg",
		`[Quality]
Input = elems.txt
`)

	con, err := ReadQualityConfig(fname)
	assert.NoError(t, err)
	assert.Equal(t, pyramid.AllMetrics, con.Flags())
	assert.Equal(t, 0, con.Workers)
}

func TestReadQualityConfigRejectsBadInput(t *testing.T) {
	missing := writeTemp(t, "quality.cfg", "[Quality]\nWorkers = 2\n")
	_, err := ReadQualityConfig(missing)
	assert.Error(t, err, "missing Input")

	badMetric := writeTemp(t, "quality2.cfg",
		"[Quality]\nInput = x.txt\nMetrics = Warp\n")
	_, err = ReadQualityConfig(badMetric)
	assert.Error(t, err, "unknown metric name")
}

func TestParseMetrics(t *testing.T) {
	flags, err := ParseMetrics("volume, SHAPE")
	assert.NoError(t, err)
	assert.Equal(t, pyramid.VolumeMetric|pyramid.ShapeMetric, flags)

	_, err = ParseMetrics("volume, bogus")
	assert.Error(t, err)
}

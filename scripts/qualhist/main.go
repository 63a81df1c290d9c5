package main

import (
	"flag"
	"fmt"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/unixpickle/essentials"

	gio "github.com/meshquality/gopyramid/io"
	"github.com/meshquality/gopyramid/pyramid"
)

func main() {
	var (
		metric string
		bins   int
	)
	flag.StringVar(
		&metric, "Metric", "ScaledJacobian",
		"Metric to histogram: Volume, Jacobian, ScaledJacobian, or Shape.",
	)
	flag.IntVar(&bins, "Bins", 40, "Number of histogram bins.")
	flag.Parse()

	if flag.NArg() != 2 {
		essentials.Die("Usage: qualhist [flags] elem_file out_figure")
	}
	elemFile, outFigure := flag.Arg(0), flag.Arg(1)

	flags, err := gio.ParseMetrics(metric)
	essentials.Must(err)

	ps, err := gio.ReadPyramids(elemFile)
	essentials.Must(err)
	if len(ps) == 0 {
		essentials.Die(fmt.Sprintf("No elements in %s", elemFile))
	}

	vals, err := pyramid.Default().EvalAll(gio.Coords(ps), flags, 0)
	essentials.Must(err)

	xs := make([]float64, len(vals))
	for i, v := range vals {
		switch flags {
		case pyramid.VolumeMetric:
			xs[i] = v.Volume
		case pyramid.JacobianMetric:
			xs[i] = v.Jacobian
		case pyramid.ScaledJacobianMetric:
			xs[i] = v.ScaledJacobian
		case pyramid.ShapeMetric:
			xs[i] = v.Shape
		default:
			essentials.Die("Give exactly one metric name to -Metric.")
		}
	}

	centers, fracs := histogram(xs, bins)

	plt.Reset()
	plt.Figure()
	plt.Plot(centers, fracs, "k", plt.LW(2))
	plt.XLabel(metric)
	plt.YLabel("fraction of cells")
	plt.SaveFig(outFigure)
	plt.Execute()
}

func histogram(xs []float64, bins int) (centers, fracs []float64) {
	lo, hi := xs[0], xs[0]
	for _, x := range xs {
		lo, hi = min(lo, x), max(hi, x)
	}
	if lo == hi {
		// all values identical; widen so the single spike still plots
		hi = lo + 1
	}

	dx := (hi - lo) / float64(bins)
	counts := make([]int, bins)
	for _, x := range xs {
		i := int((x - lo) / dx)
		counts[min(i, bins-1)]++
	}

	centers = make([]float64, bins)
	fracs = make([]float64, bins)
	for i := range counts {
		centers[i] = lo + dx*(float64(i)+0.5)
		fracs[i] = float64(counts[i]) / float64(len(xs))
	}
	return centers, fracs
}

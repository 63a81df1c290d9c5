package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/meshquality/gopyramid/io"
	"github.com/meshquality/gopyramid/pyramid"
)

func main() {
	var (
		checkFile     string
		exampleConfig bool
	)

	flag.StringVar(
		&checkFile, "Check", "",
		"Configuration file for a quality-check pass over an element file.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Print an example configuration file to stdout.",
	)

	flag.Parse()

	switch {
	case exampleConfig:
		fmt.Println(io.ExampleQualityFile)
	case checkFile != "":
		if err := check(checkFile); err != nil {
			log.Fatal(err.Error())
		}
	default:
		log.Fatal("Specify a mode: -Check <config> or -ExampleConfig.")
	}
}

func check(confFile string) error {
	con, err := io.ReadQualityConfig(confFile)
	if err != nil {
		return err
	}

	ps, err := io.ReadPyramids(con.Input)
	if err != nil {
		return err
	}

	vals, err := pyramid.Default().EvalAll(
		io.Coords(ps), con.Flags(), con.Workers,
	)
	if err != nil {
		return err
	}

	out := os.Stdout
	if con.Output != "" {
		f, err := os.Create(con.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := io.WriteMetrics(out, vals, con.Flags()); err != nil {
		return err
	}

	flagged := 0
	for i := range vals {
		if belowThresholds(con, &vals[i]) {
			flagged++
		}
	}
	log.Printf("Evaluated %d cells, %d below quality thresholds.",
		len(vals), flagged)

	return nil
}

// belowThresholds reports whether an element falls under any configured
// quality threshold. Thresholds only apply to metrics that were computed.
func belowThresholds(con *io.QualityConfig, vals *pyramid.Metrics) bool {
	flags := con.Flags()
	if con.MinScaledJacobian > 0 &&
		flags&pyramid.ScaledJacobianMetric != 0 &&
		vals.ScaledJacobian < con.MinScaledJacobian {
		return true
	}
	if con.MinShape > 0 &&
		flags&pyramid.ShapeMetric != 0 &&
		vals.Shape < con.MinShape {
		return true
	}
	return false
}

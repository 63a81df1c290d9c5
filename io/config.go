/*package io reads quality-check configuration files and pyramid element
files.*/
package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/meshquality/gopyramid/pyramid"
)

const ExampleQualityFile = `[Quality]

#######################
# Required Parameters #
#######################

# File containing the pyramid elements, one element per line as 15
# whitespace separated columns: x y z for each of the four base vertices in
# winding order, then x y z for the apex. Lines starting with # are skipped.
Input = path/to/elements.txt

#######################
# Optional Parameters #
#######################

# Comma separated list of metrics to compute. Valid names are Volume,
# Jacobian, ScaledJacobian, and Shape. All four are computed when this is
# not set.
# Metrics = ScaledJacobian, Shape

# File the metric table is written to. Defaults to stdout.
# Output = path/to/metrics.txt

# Elements scoring below these thresholds are counted as poorly shaped in
# the summary. Zero disables the corresponding count.
# MinScaledJacobian = 0.2
# MinShape = 0.1

# Number of worker goroutines. Default is the number of logical cores.
# Workers = 8`

// QualityConfig holds the parameters of one quality-check pass.
type QualityConfig struct {
	// Required
	Input string

	// Optional
	Output            string
	Metrics           string
	MinScaledJacobian float64
	MinShape          float64
	Workers           int

	flags pyramid.Flag
}

// CheckInit validates the configuration, fills in defaults, and resolves
// the Metrics list into flags.
func (con *QualityConfig) CheckInit() error {
	if con.Input == "" {
		return fmt.Errorf("Need to specify an Input element file.")
	}
	if con.MinScaledJacobian < 0 || con.MinShape < 0 {
		return fmt.Errorf("Quality thresholds must not be negative.")
	}
	if con.Workers < 0 {
		return fmt.Errorf("Workers must not be negative.")
	}

	if con.Metrics == "" {
		con.flags = pyramid.AllMetrics
		return nil
	}
	flags, err := ParseMetrics(con.Metrics)
	if err != nil {
		return err
	}
	con.flags = flags
	return nil
}

// Flags returns the metric selection resolved by CheckInit.
func (con *QualityConfig) Flags() pyramid.Flag {
	return con.flags
}

// ReadQualityConfig reads and validates a [Quality] configuration file.
func ReadQualityConfig(fname string) (*QualityConfig, error) {
	cfg := &struct{ Quality QualityConfig }{}
	if err := gcfg.ReadFileInto(cfg, fname); err != nil {
		return nil, err
	}
	if err := cfg.Quality.CheckInit(); err != nil {
		return nil, err
	}
	return &cfg.Quality, nil
}

// ParseMetrics resolves a comma separated, case insensitive list of metric
// names into a flag set.
func ParseMetrics(list string) (pyramid.Flag, error) {
	var flags pyramid.Flag
	for _, name := range strings.Split(list, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "volume":
			flags |= pyramid.VolumeMetric
		case "jacobian":
			flags |= pyramid.JacobianMetric
		case "scaledjacobian":
			flags |= pyramid.ScaledJacobianMetric
		case "shape":
			flags |= pyramid.ShapeMetric
		default:
			return 0, fmt.Errorf(
				"Unknown metric name '%s'. Valid names are Volume, "+
					"Jacobian, ScaledJacobian, and Shape.",
				strings.TrimSpace(name),
			)
		}
	}
	return flags, nil
}

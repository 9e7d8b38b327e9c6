package report

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v2"

	"github.com/tanasatit/ci-demo/stat"
)

const (
	FormatText = "text"
	FormatYaml = "yaml"
)

type Report struct {
	Count    int     `yaml:"count"`
	Mean     float64 `yaml:"mean"`
	Variance float64 `yaml:"variance"`
	Stdev    float64 `yaml:"stdev"`
	Median   float64 `yaml:"median"`
	Maximum  float64 `yaml:"maximum"`
}

// New computes all statistics of values. An empty slice yields stat.ErrEmptyInput.
func New(values []float64) (Report, error) {
	mean, err := stat.Average(values)
	if err != nil {
		return Report{}, err
	}

	variance, err := stat.Variance(values)
	if err != nil {
		return Report{}, err
	}

	stdev, err := stat.Stdev(values)
	if err != nil {
		return Report{}, err
	}

	median, err := stat.Median(values)
	if err != nil {
		return Report{}, err
	}

	maximum, err := stat.Maximum(values)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Count:    len(values),
		Mean:     mean,
		Variance: variance,
		Stdev:    stdev,
		Median:   median,
		Maximum:  maximum,
	}, nil
}

func (r Report) Render(w io.Writer, format string) error {
	switch format {
	case "", FormatText:
		return r.renderText(w)
	case FormatYaml:
		out, err := yaml.Marshal(r)
		if err != nil {
			return err
		}

		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func (r Report) renderText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"count: %d\nmean: %v\nvariance: %v\nstdev: %v\nmedian: %v\nmaximum: %v\n",
		r.Count,
		formatFloat(r.Mean),
		formatFloat(r.Variance),
		formatFloat(r.Stdev),
		formatFloat(r.Median),
		formatFloat(r.Maximum),
	)

	return err
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

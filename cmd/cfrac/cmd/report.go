package cmd

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/contfrac/cf"
	"github.com/katalvlaran/contfrac/internal/config"
	"github.com/katalvlaran/contfrac/series"
)

// fractionReport describes one value.
type fractionReport struct {
	Input    string                `yaml:"input,omitempty"`
	Fraction *cf.ContinuedFraction `yaml:"fraction"`
	Value    float64               `yaml:"value"`
	Periodic bool                  `yaml:"periodic"`
}

func newFractionReport(input string, c *cf.ContinuedFraction) fractionReport {
	return fractionReport{Input: input, Fraction: c, Value: c.Float64(), Periodic: c.IsPeriodic()}
}

func (r fractionReport) text(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s = %s\n", r.Fraction, formatFloat(r.Value))

	return err
}

// convergentReport describes one convergent pₙ/qₙ.
type convergentReport struct {
	Index int     `yaml:"n"`
	Num   int64   `yaml:"num"`
	Den   int64   `yaml:"den"`
	Value float64 `yaml:"value"`
}

func newConvergentReports(rs []series.Ratio) []convergentReport {
	out := make([]convergentReport, len(rs))
	for i, r := range rs {
		out[i] = convergentReport{Index: i, Num: r.Num, Den: r.Den, Value: r.Float64()}
	}

	return out
}

// comparisonReport is the outcome of a relational calc.
type comparisonReport struct {
	X      *cf.ContinuedFraction `yaml:"x"`
	Op     string                `yaml:"op"`
	Y      *cf.ContinuedFraction `yaml:"y"`
	Result bool                  `yaml:"result"`
}

// render writes v in the configured format. textFn prints the text form.
func (a *app) render(w io.Writer, v interface{}, textFn func(io.Writer) error) error {
	if a.cfg.Output == config.OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	}

	return textFn(w)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

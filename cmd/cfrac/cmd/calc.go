package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/contfrac/cf"
)

// arithmetic maps calc operators to the cf operators.
var arithmetic = map[string]func(z, x, y *cf.ContinuedFraction) (*cf.ContinuedFraction, error){
	"+": (*cf.ContinuedFraction).Add,
	"-": (*cf.ContinuedFraction).Sub,
	"*": (*cf.ContinuedFraction).Mul,
	"x": (*cf.ContinuedFraction).Mul,
	"/": (*cf.ContinuedFraction).Quo,
}

// relation returns the comparison named by op; "~" uses epsilon.
func relation(op string, epsilon float64) (func(x, y *cf.ContinuedFraction) bool, bool) {
	switch op {
	case "==":
		return (*cf.ContinuedFraction).Equal, true
	case "!=":
		return func(x, y *cf.ContinuedFraction) bool { return !x.Equal(y) }, true
	case "<":
		return (*cf.ContinuedFraction).Less, true
	case "<=":
		return func(x, y *cf.ContinuedFraction) bool { return x.Cmp(y) <= 0 }, true
	case ">":
		return func(x, y *cf.ContinuedFraction) bool { return x.Cmp(y) > 0 }, true
	case ">=":
		return func(x, y *cf.ContinuedFraction) bool { return x.Cmp(y) >= 0 }, true
	case "~":
		return func(x, y *cf.ContinuedFraction) bool { return cf.ApproxEqual(x, y, epsilon) }, true
	default:
		return nil, false
	}
}

func (a *app) calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <x> <op> <y>",
		Short: "Combine or compare two fractions",
		Long: `Combine or compare two fractions given in text form.

Arithmetic operators: + - * x /
The result goes through float64 and is expanded again with the
default term limit, so it is an approximation.

Relations: == != (exact terms), < <= > >= (values), ~ (values within
the configured epsilon).`,
		Example: `  cfrac calc "[1; 2; 3]" + "[2]"
  cfrac calc "[3; 7; 16]" "~" "[3; 7; 15; 1; 292]"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := cf.Parse(args[0])
			if err != nil {
				return fmt.Errorf("left operand: %w", err)
			}
			y, err := cf.Parse(args[2])
			if err != nil {
				return fmt.Errorf("right operand: %w", err)
			}
			op := args[1]
			input := strings.Join(args, " ")

			if f, ok := arithmetic[op]; ok {
				z, err := f(new(cf.ContinuedFraction), x, y)
				if err != nil {
					return err
				}

				return a.show(cmd, input, z)
			}

			if rel, ok := relation(op, a.cfg.Epsilon); ok {
				r := comparisonReport{X: x, Op: op, Y: y, Result: rel(x, y)}
				a.log.Debug("comparison", "input", input, "result", r.Result)

				return a.render(out(cmd), r, func(w io.Writer) error {
					_, err := fmt.Fprintln(w, r.Result)

					return err
				})
			}

			return fmt.Errorf("%w: unknown operator %q", cf.ErrInvalidArgument, op)
		},
	}
}

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/contfrac/cf"
)

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "parse <text>",
		Short:   "Read a fraction written as \"[a0; a1; …]\"",
		Example: `  cfrac parse "[3; 7; 15; 1; 292]"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cf.Parse(args[0])
			if err != nil {
				return err
			}

			return a.show(cmd, args[0], c)
		},
	}
}

func (a *app) rationalCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rational <numerator> <denominator>",
		Short:   "Expand a rational number with the Euclidean algorithm",
		Example: "  cfrac rational 415 93",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			num, err := parseInt(args[0])
			if err != nil {
				return err
			}
			den, err := parseInt(args[1])
			if err != nil {
				return err
			}
			c, err := cf.FromRational(num, den)
			if err != nil {
				return err
			}

			return a.show(cmd, args[0]+"/"+args[1], c)
		},
	}
}

func (a *app) floatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "float <x>",
		Short:   "Expand a decimal number",
		Example: "  cfrac float 2.718281828 --terms 8",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not a number", cf.ErrInvalidArgument, args[0])
			}
			c, err := cf.FromFloat(x, a.terms(cmd))
			if err != nil {
				return err
			}

			return a.show(cmd, args[0], c)
		},
	}
	addTermsFlag(cmd)

	return cmd
}

func (a *app) sqrtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sqrt <n>",
		Short:   "Periodic expansion of the square root of an integer",
		Example: "  cfrac sqrt 7",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			c, err := cf.Sqrt(n, a.terms(cmd))
			if err != nil {
				return err
			}

			return a.show(cmd, "sqrt("+args[0]+")", c)
		},
	}
	addTermsFlag(cmd)

	return cmd
}

func (a *app) eCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "e",
		Short: "Euler's number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.show(cmd, "e", cf.E(a.terms(cmd)))
		},
	}
	addTermsFlag(cmd)

	return cmd
}

func (a *app) piCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pi",
		Short: "The expansion of π",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := cf.Pi(a.terms(cmd))
			if err != nil {
				return err
			}

			return a.show(cmd, "pi", c)
		},
	}
	addTermsFlag(cmd)

	return cmd
}

func (a *app) convergentsCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "convergents <text>",
		Short: "List the convergents pₙ/qₙ of a fraction",
		Long: `List the convergents of a fraction. A finite fraction has one
convergent per term; for a periodic value --count bounds the list.`,
		Example: `  cfrac convergents "[1; 2; 2; 2]"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cf.Parse(args[0])
			if err != nil {
				return err
			}
			n := count
			if !cmd.Flags().Changed("count") {
				n = c.Size()
			}
			reports := newConvergentReports(c.Convergents(n))
			a.log.Debug("convergents", "fraction", c.String(), "count", len(reports))

			return a.render(out(cmd), reports, func(w io.Writer) error {
				for _, r := range reports {
					if _, err := fmt.Fprintf(w, "%d: %d/%d = %s\n", r.Index, r.Num, r.Den, formatFloat(r.Value)); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of convergents (default: one per stored term)")

	return cmd
}

// show prints one fraction report.
func (a *app) show(cmd *cobra.Command, input string, c *cf.ContinuedFraction) error {
	a.log.Debug("result", "input", input, "fraction", c.String(), "size", c.Size(), "periodic", c.IsPeriodic())
	r := newFractionReport(input, c)

	return a.render(out(cmd), r, r.text)
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", cf.ErrInvalidArgument, s)
	}

	return v, nil
}

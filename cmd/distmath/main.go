// distmath evaluates and inverts probability distributions from the
// command line, and describes samples read from stdin.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/simkit/go-distmath/stats"
)

var log = logrus.New()

var distParams struct {
	mu, sigma    float64
	shape, scale float64
	alpha, beta  float64
	df           float64
	lambda       float64
	lo, hi       float64
	n            int
	prob         float64
	r            float64
}

func main() {
	root := &cobra.Command{
		Use:           "distmath",
		Short:         "probability distribution calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	}

	root.AddCommand(newCDFCommand(), newQuantileCommand(), newTukeyCommand(), newDescribeCommand())

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func addDistFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&distParams.mu, "mu", 0, "normal mean")
	f.Float64Var(&distParams.sigma, "sigma", 1, "normal standard deviation")
	f.Float64Var(&distParams.shape, "shape", 1, "gamma shape")
	f.Float64Var(&distParams.scale, "scale", 1, "gamma scale")
	f.Float64Var(&distParams.alpha, "alpha", 1, "beta first shape")
	f.Float64Var(&distParams.beta, "beta", 1, "beta second shape")
	f.Float64Var(&distParams.df, "df", 1, "chi-squared degrees of freedom")
	f.Float64Var(&distParams.lambda, "lambda", 1, "exponential/Poisson rate")
	f.Float64Var(&distParams.lo, "lo", 0, "uniform lower bound")
	f.Float64Var(&distParams.hi, "hi", 1, "uniform upper bound")
	f.IntVar(&distParams.n, "n", 1, "binomial trial count")
	f.Float64Var(&distParams.prob, "prob", 0.5, "binomial/negative binomial success probability")
	f.Float64Var(&distParams.r, "r", 1, "negative binomial success target")
}

func newDist(name string) (stats.DistCommon, error) {
	switch name {
	case "normal":
		return stats.NormalDist{Mu: distParams.mu, Sigma: distParams.sigma}, nil
	case "uniform":
		return stats.UniformDist{Lo: distParams.lo, Hi: distParams.hi}, nil
	case "exp":
		return stats.ExponentialDist{Lambda: distParams.lambda}, nil
	case "gamma":
		return stats.GammaDist{K: distParams.shape, Theta: distParams.scale}, nil
	case "chi2":
		return stats.ChiSquaredDist{V: distParams.df}, nil
	case "beta":
		return stats.BetaDist{Alpha: distParams.alpha, Beta: distParams.beta}, nil
	case "binomial":
		return stats.BinomialDist{N: distParams.n, P: distParams.prob}, nil
	case "poisson":
		return stats.PoissonDist{Lambda: distParams.lambda}, nil
	case "negbinom":
		return stats.NegBinomialDist{R: distParams.r, P: distParams.prob}, nil
	}
	return nil, errors.Errorf("unknown distribution %q", name)
}

func parseFloats(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, a := range args {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %q", a)
		}
		xs[i] = x
	}
	return xs, nil
}

func newCDFCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cdf DIST X...",
		Short: "evaluate Pr[X <= x]",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dist, err := newDist(args[0])
			if err != nil {
				return err
			}
			xs, err := parseFloats(args[1:])
			if err != nil {
				return err
			}
			for _, x := range xs {
				log.WithFields(logrus.Fields{"dist": args[0], "x": x}).Debug("cdf")
				fmt.Printf("%.10g\n", dist.CDF(x))
			}
			return nil
		},
	}
	addDistFlags(cmd)
	return cmd
}

func newQuantileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quantile DIST P...",
		Short: "evaluate the p quantile",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dist, err := newDist(args[0])
			if err != nil {
				return err
			}
			ps, err := parseFloats(args[1:])
			if err != nil {
				return err
			}
			inv := stats.InvCDF(dist)
			for _, p := range ps {
				log.WithFields(logrus.Fields{"dist": args[0], "p": p}).Debug("quantile")
				fmt.Printf("%.10g\n", inv(p))
			}
			return nil
		},
	}
	addDistFlags(cmd)
	return cmd
}

func newTukeyCommand() *cobra.Command {
	var means, df float64
	var invert bool
	cmd := &cobra.Command{
		Use:   "tukey X...",
		Short: "studentized range CDF or quantile",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseFloats(args)
			if err != nil {
				return err
			}
			dist := stats.StudentizedRangeDist{K: means, DF: df, Log: log}
			for _, x := range xs {
				if invert {
					fmt.Printf("%.10g\n", dist.InvCDF(x))
				} else {
					fmt.Printf("%.10g\n", dist.CDF(x))
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&means, "means", 2, "number of means being compared")
	cmd.Flags().Float64Var(&df, "df", 1, "error degrees of freedom")
	cmd.Flags().BoolVar(&invert, "invert", false, "treat arguments as probabilities and print quantiles")
	return cmd
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	mstats "github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "read newline-separated numbers from stdin and describe their distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := readInput(os.Stdin)
			if err != nil {
				return err
			}
			return describe(os.Stdout, xs)
		},
	}
}

func readInput(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		value, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, err
		}
		xs = append(xs, value)
	}
	return xs, scanner.Err()
}

func describe(w io.Writer, xs []float64) error {
	if len(xs) == 0 {
		return errors.New("no input")
	}
	data := mstats.Float64Data(xs)

	sum, _ := data.Sum()
	mean, _ := data.Mean()
	fmt.Fprintf(w, "N %d  sum %.6g  mean %.6g", len(xs), sum, mean)
	if gmean, err := data.GeometricMean(); err == nil && !math.IsNaN(gmean) {
		fmt.Fprintf(w, "  gmean %.6g", gmean)
	}
	stddev, _ := data.StandardDeviationSample()
	variance, _ := data.SampleVariance()
	fmt.Fprintf(w, "  std dev %.6g  variance %.6g\n\n", stddev, variance)

	// Quartiles and tails.
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		var v float64
		var err error
		switch p {
		case 0:
			v, err = data.Min()
		case 100:
			v, err = data.Max()
		default:
			v, err = data.Percentile(float64(p))
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%8s %.6g\n", label, v)
	}
	return nil
}

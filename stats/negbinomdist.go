// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/simkit/go-distmath/mathx"
)

// NegBinomialDist is a negative binomial distribution: the number of
// failures before the R-th success in a sequence of Bernoulli trials
// with success probability P. R > 0 need not be integral; 0 < P < 1.
type NegBinomialDist struct {
	R, P float64
}

func (d NegBinomialDist) valid() bool {
	return d.R > 0 && d.P > 0 && d.P < 1
}

// PMF is the probability of exactly int(k) failures before the R-th
// success.
func (d NegBinomialDist) PMF(k float64) float64 {
	if !d.valid() {
		return nan
	}
	kf := math.Floor(k)
	if kf < 0 {
		return 0
	}
	return math.Exp(mathx.Lgamma(kf+d.R) - mathx.Lgamma(kf+1) - mathx.Lgamma(d.R) +
		d.R*math.Log(d.P) + kf*math.Log1p(-d.P))
}

// pmfRecur computes the PMF through the recurrence
// pmf(k) = pmf(k-1)·(k+R-1)(1-P)/k. It is the reference for the
// gamma-based PMF.
func (d NegBinomialDist) pmfRecur(k float64) float64 {
	kf := math.Floor(k)
	if kf < 0 {
		return 0
	}
	term := math.Pow(d.P, d.R)
	for i := 1.0; i <= kf; i++ {
		term *= (i + d.R - 1) * (1 - d.P) / i
	}
	return term
}

// CDF is the probability of int(k) or fewer failures before the R-th
// success: Pr[X <= k] = I_P(R, k+1).
func (d NegBinomialDist) CDF(k float64) float64 {
	if !d.valid() {
		return nan
	}
	kf := math.Floor(k)
	if kf < 0 {
		return 0
	}
	p, err := mathx.BetaInc(d.P, d.R, kf+1)
	if err != nil {
		return nan
	}
	return p
}

// InvCDF returns the smallest k with CDF(k) >= p, so that
// InvCDF(CDF(k)) == k exactly for k in the support.
func (d NegBinomialDist) InvCDF(p float64) float64 {
	if !d.valid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	if p == 0 {
		return 0
	}
	if p == 1 {
		return inf
	}
	mean := d.Mean()
	sd := math.Sqrt(d.Variance())
	skew := (2 - d.P) / math.Sqrt(d.R*(1-d.P))
	return invCDFSearch(d, mean, sd, skew, p)
}

func (d NegBinomialDist) Bounds() (float64, float64) {
	return 0, math.Ceil(d.Mean() + 10*math.Sqrt(d.Variance()) + 10)
}

func (d NegBinomialDist) Step() float64 {
	return 1
}

func (d NegBinomialDist) Mean() float64 {
	return d.R * (1 - d.P) / d.P
}

func (d NegBinomialDist) Variance() float64 {
	return d.R * (1 - d.P) / (d.P * d.P)
}

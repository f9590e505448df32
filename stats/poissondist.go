// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/simkit/go-distmath/mathx"
)

// PoissonDist is a Poisson distribution with mean Lambda > 0.
type PoissonDist struct {
	Lambda float64
}

// PMF is the probability of exactly int(k) events.
func (d PoissonDist) PMF(k float64) float64 {
	if !(d.Lambda > 0) {
		return nan
	}
	kf := math.Floor(k)
	if kf < 0 {
		return 0
	}
	return math.Exp(-d.Lambda + kf*math.Log(d.Lambda) - mathx.Lgamma(kf+1))
}

// CDF is the probability of int(k) or fewer events. It is computed
// through the upper regularized incomplete gamma function:
// Pr[X <= k] = Q(k+1, λ).
func (d PoissonDist) CDF(k float64) float64 {
	if !(d.Lambda > 0) {
		return nan
	}
	kf := math.Floor(k)
	if kf < 0 {
		return 0
	}
	p, err := mathx.GammaIncComp(kf+1, d.Lambda)
	if err != nil {
		return nan
	}
	return p
}

// cdfSum accumulates the PMF recurrence pmf(k+1) = pmf(k)·λ/(k+1).
// It is the reference for the gamma-based CDF.
func (d PoissonDist) cdfSum(k float64) float64 {
	kf := math.Floor(k)
	if kf < 0 {
		return 0
	}
	term := math.Exp(-d.Lambda)
	sum := term
	for i := 1.0; i <= kf; i++ {
		term *= d.Lambda / i
		sum += term
	}
	return sum
}

// InvCDF returns the smallest k with CDF(k) >= p, so that
// InvCDF(CDF(k)) == k exactly for k in the support.
func (d PoissonDist) InvCDF(p float64) float64 {
	if !(d.Lambda > 0) || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	if p == 0 {
		return 0
	}
	if p == 1 {
		return inf
	}
	sd := math.Sqrt(d.Lambda)
	return invCDFSearch(d, d.Lambda, sd, 1/sd, p)
}

func (d PoissonDist) Bounds() (float64, float64) {
	return 0, math.Ceil(d.Lambda + 10*math.Sqrt(d.Lambda) + 10)
}

func (d PoissonDist) Step() float64 {
	return 1
}

func (d PoissonDist) Mean() float64 { return d.Lambda }

func (d PoissonDist) Variance() float64 { return d.Lambda }

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// ExponentialDist is an exponential distribution with rate Lambda > 0.
type ExponentialDist struct {
	Lambda float64
}

func (d ExponentialDist) PDF(x float64) float64 {
	if !(d.Lambda > 0) {
		return nan
	}
	if x < 0 {
		return 0
	}
	return d.Lambda * math.Exp(-d.Lambda*x)
}

func (d ExponentialDist) CDF(x float64) float64 {
	if !(d.Lambda > 0) {
		return nan
	}
	if x <= 0 {
		return 0
	}
	// -Expm1 is more accurate than 1-Exp for small x.
	return -math.Expm1(-d.Lambda * x)
}

// InvCDF returns the x with Pr[X <= x] = p, computed in closed form.
func (d ExponentialDist) InvCDF(p float64) float64 {
	if !(d.Lambda > 0) || p < 0 || p > 1 {
		return nan
	}
	if p == 1 {
		return inf
	}
	return -math.Log1p(-p) / d.Lambda
}

func (d ExponentialDist) Bounds() (float64, float64) {
	// CDF is within 1e-10 of 1 at the upper bound.
	return 0, math.Log(1e10) / d.Lambda
}

func (d ExponentialDist) Mean() float64 { return 1 / d.Lambda }

func (d ExponentialDist) Variance() float64 { return 1 / (d.Lambda * d.Lambda) }

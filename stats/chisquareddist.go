// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/simkit/go-distmath/mathx"
)

// ChiSquaredDist is a chi-square distribution with V > 0 degrees of
// freedom.
type ChiSquaredDist struct {
	V float64
}

func (d ChiSquaredDist) PDF(x float64) float64 {
	return GammaDist{K: d.V / 2, Theta: 2}.PDF(x)
}

func (d ChiSquaredDist) CDF(x float64) float64 {
	if !(d.V > 0) {
		return nan
	}
	if x <= 0 {
		return 0
	}
	p, err := mathx.GammaInc(d.V/2, x/2)
	if err != nil {
		return nan
	}
	return p
}

// InvCDF returns the x with Pr[X <= x] = p, computed with the AS 91
// percentage point algorithm.
func (d ChiSquaredDist) InvCDF(p float64) float64 {
	x, err := mathx.InvChiSquare(p, d.V)
	if err != nil {
		return nan
	}
	return x
}

func (d ChiSquaredDist) Bounds() (float64, float64) {
	return 0, d.V + 10*math.Sqrt(2*d.V) + 10
}

func (d ChiSquaredDist) Mean() float64 { return d.V }

func (d ChiSquaredDist) Variance() float64 { return 2 * d.V }

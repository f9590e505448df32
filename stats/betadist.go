// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/simkit/go-distmath/mathx"
)

// BetaDist is a beta distribution with shape parameters Alpha > 0 and
// Beta > 0.
type BetaDist struct {
	Alpha, Beta float64
}

func (d BetaDist) valid() bool {
	return d.Alpha > 0 && d.Beta > 0
}

func (d BetaDist) PDF(x float64) float64 {
	if !d.valid() {
		return nan
	}
	if x < 0 || x > 1 {
		return 0
	}
	if x == 0 || x == 1 {
		// The density diverges at an endpoint when the
		// corresponding shape parameter is below 1.
		a := d.Alpha
		if x == 1 {
			a = d.Beta
		}
		switch {
		case a > 1:
			return 0
		case a == 1:
			return math.Exp(-mathx.Lbeta(d.Alpha, d.Beta))
		default:
			return inf
		}
	}
	lp := (d.Alpha-1)*math.Log(x) + (d.Beta-1)*math.Log1p(-x) - mathx.Lbeta(d.Alpha, d.Beta)
	return math.Exp(lp)
}

func (d BetaDist) CDF(x float64) float64 {
	if !d.valid() {
		return nan
	}
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	p, err := mathx.BetaInc(x, d.Alpha, d.Beta)
	if err != nil {
		return nan
	}
	return p
}

// InvCDF returns the x with Pr[X <= x] = p by inverting the
// regularized incomplete beta function.
func (d BetaDist) InvCDF(p float64) float64 {
	if !d.valid() {
		return nan
	}
	x, err := mathx.InvBetaInc(p, d.Alpha, d.Beta)
	if err != nil {
		return nan
	}
	return x
}

func (d BetaDist) Bounds() (float64, float64) {
	return 0, 1
}

func (d BetaDist) Mean() float64 {
	return d.Alpha / (d.Alpha + d.Beta)
}

func (d BetaDist) Variance() float64 {
	s := d.Alpha + d.Beta
	return d.Alpha * d.Beta / (s * s * (s + 1))
}

// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/simkit/go-distmath/mathx"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma > 0.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = NormalDist{0, 1}

func (d NormalDist) PDF(x float64) float64 {
	if !(d.Sigma > 0) {
		return nan
	}
	return mathx.StdNormalPDF((x-d.Mu)/d.Sigma) / d.Sigma
}

func (d NormalDist) CDF(x float64) float64 {
	if !(d.Sigma > 0) {
		return nan
	}
	return mathx.PhiStdNormal((x - d.Mu) / d.Sigma)
}

// InvCDF returns the x with Pr[X <= x] = p.
func (d NormalDist) InvCDF(p float64) float64 {
	if !(d.Sigma > 0) {
		return nan
	}
	return d.Mu + d.Sigma*mathx.InvPhi(p)
}

func (d NormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return d.Mu - stddevs*d.Sigma, d.Mu + stddevs*d.Sigma
}

func (d NormalDist) Mean() float64 { return d.Mu }

func (d NormalDist) Variance() float64 { return d.Sigma * d.Sigma }

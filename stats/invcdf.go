// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/simkit/go-distmath/rootfind"
)

// InvCDF returns the inverse CDF (quantile function) of dist. If dist
// implements InvCDFer, that implementation is used; otherwise the
// monotone CDF is inverted numerically by bracketing and Brent's
// method starting from the distribution's bounds.
//
// The returned function maps p outside [0, 1] to NaN, and returns NaN
// if the numerical inversion fails to converge.
func InvCDF(dist DistCommon) func(p float64) float64 {
	if d, ok := dist.(InvCDFer); ok {
		return d.InvCDF
	}
	return func(p float64) float64 {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nan
		}
		lo, hi := dist.Bounds()
		if p == 0 {
			if dist.CDF(lo) == 0 {
				return lo
			}
			return -inf
		}
		if p == 1 {
			if dist.CDF(hi) == 1 {
				return hi
			}
			return inf
		}
		f := func(x float64) float64 { return dist.CDF(x) - p }
		br, ok := rootfind.FindBracket(f, rootfind.Interval{Lo: lo, Hi: hi})
		if !ok {
			return nan
		}
		x, err := rootfind.Brent(f, br.Lo, br.Hi, 1e-12)
		if err != nil {
			return nan
		}
		return x
	}
}

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// UniformDist is a continuous uniform distribution over [Lo, Hi),
// Lo < Hi.
type UniformDist struct {
	Lo, Hi float64
}

func (d UniformDist) PDF(x float64) float64 {
	if !(d.Lo < d.Hi) {
		return nan
	}
	if x < d.Lo || x >= d.Hi {
		return 0
	}
	return 1 / (d.Hi - d.Lo)
}

func (d UniformDist) CDF(x float64) float64 {
	if !(d.Lo < d.Hi) {
		return nan
	}
	if x <= d.Lo {
		return 0
	}
	if x >= d.Hi {
		return 1
	}
	return (x - d.Lo) / (d.Hi - d.Lo)
}

// InvCDF returns the x with Pr[X <= x] = p, computed in closed form.
func (d UniformDist) InvCDF(p float64) float64 {
	if !(d.Lo < d.Hi) || p < 0 || p > 1 {
		return nan
	}
	return d.Lo + p*(d.Hi-d.Lo)
}

func (d UniformDist) Bounds() (float64, float64) {
	return d.Lo, d.Hi
}

func (d UniformDist) Mean() float64 { return (d.Lo + d.Hi) / 2 }

func (d UniformDist) Variance() float64 {
	w := d.Hi - d.Lo
	return w * w / 12
}

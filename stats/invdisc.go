// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/simkit/go-distmath/mathx"
)

// invCDFSearch returns the smallest lattice point x of d with
// d.CDF(x) >= p.
//
// The starting point is the Cornish-Fisher-corrected normal
// approximation ⌊μ + σ(z + γ(z²−1)/6) + 0.5⌋, where γ is the law's
// skewness, clamped into the support. From there a linear search
// walks up or down the lattice. The downward walk steps onto x−s
// whenever CDF(x−s) >= p — including the exact-equality case, which
// is what makes InvCDF(CDF(x)) == x hold exactly at lattice points.
func invCDFSearch(d DiscreteDist, mean, sd, skew, p float64) float64 {
	lo, hi := d.Bounds()
	step := d.Step()

	z := mathx.InvPhi(p)
	x := math.Floor(mean + sd*(z+skew*(z*z-1)/6) + 0.5)
	if x < lo {
		x = lo
	} else if x > hi {
		x = hi
	}

	if d.CDF(x) <= p {
		for x < hi && d.CDF(x) < p {
			x += step
		}
		return x
	}
	for x > lo && d.CDF(x-step) >= p {
		x -= step
	}
	return x
}

// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A DistCommon is a statistical distribution. Dist and DiscreteDist
// are the interfaces for continuous and discrete distributions.
type DistCommon interface {
	// CDF returns the cumulative probability Pr[X <= x].
	//
	// For continuous distributions, the CDF is the integral of
	// the PDF from the lower bound to x.
	//
	// For discrete distributions, the CDF is implicitly defined
	// for the whole real line as the sum of the PMF at all
	// lattice points less than or equal to x.
	CDF(x float64) float64

	// Bounds returns reasonable bounds for this distribution. The
	// total weight outside of these bounds should be
	// approximately 0.
	//
	// For a discrete distribution, both bounds are integer
	// multiples of Step().
	//
	// If this distribution has finite support, it returns exactly
	// the bounds of this support. In this case the CDF is exactly
	// 0 at the lower bound and exactly 1 at the upper bound.
	Bounds() (float64, float64)
}

// A Dist is a continuous statistical distribution.
type Dist interface {
	DistCommon

	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64
}

// A DiscreteDist is a discrete statistical distribution.
//
// Most discrete distributions are defined only at integral values of
// the random variable. However, some are defined at other intervals,
// so this interface takes a float64 random variable and uses the
// Step method to expose the distribution's lattice.
type DiscreteDist interface {
	DistCommon

	// PMF returns the value of the probability mass function
	// Pr[X = x'], where x' is x rounded down to the nearest
	// multiple of Step().
	PMF(x float64) float64

	// Step returns s, where the distribution is defined for sℕ.
	Step() float64
}

// An InvCDFer computes the inverse of its CDF in closed form, or has
// an algorithm for it better than generic numerical inversion. InvCDF
// uses this when available.
type InvCDFer interface {
	// InvCDF returns the inverse of the CDF for p. That is,
	// InvCDF(CDF(x)) = x. The value of p must be in [0, 1].
	InvCDF(p float64) float64
}

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"github.com/pkg/errors"
)

// cfTiny floors the running convergent ratios so the modified Lentz
// recurrence never divides by zero. 1e-30 keeps the reciprocal finite,
// unlike the smallest subnormal.
const cfTiny = 1e-30

// ContFracTerms returns the n-th numerator/denominator pair (aₙ, bₙ)
// of a continued fraction
//
//	b₀ + a₁/(b₁ + a₂/(b₂ + ...))
//
// The call with n=0 must return (0, b₀).
type ContFracTerms func(n int) (an, bn float64)

// ContFrac evaluates a continued fraction using the modified Lentz
// recurrence, terminating when the per-step factor is within eps of 1.
// It returns ErrIterationLimit if maxIter steps do not converge; the
// incomplete gamma and beta fractions in this package are its
// specializations.
func ContFrac(terms ContFracTerms, maxIter int, eps float64) (float64, error) {
	_, b0 := terms(0)
	f := b0
	if math.Abs(f) < cfTiny {
		f = cfTiny
	}
	c := f
	d := 0.0
	for n := 1; n <= maxIter; n++ {
		an, bn := terms(n)
		d = bn + an*d
		if math.Abs(d) < cfTiny {
			d = cfTiny
		}
		c = bn + an/c
		if math.Abs(c) < cfTiny {
			c = cfTiny
		}
		d = 1 / d
		del := c * d
		f *= del
		if math.Abs(del-1) < eps {
			return f, nil
		}
	}
	return math.NaN(), errors.Wrapf(ErrIterationLimit, "contfrac: %d iterations", maxIter)
}

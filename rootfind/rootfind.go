// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rootfind provides one-dimensional root finding: sign-change
// bracketing, bisection, Brent's method, and the secant method.
//
// All solvers are pure functions. State lives in locals for the
// duration of a call, so concurrent invocations never interfere.
package rootfind // import "github.com/simkit/go-distmath/rootfind"

import (
	"math"

	"github.com/pkg/errors"
)

// epsilon is the double-precision machine epsilon, Nextafter(1, 2)-1.
const epsilon = 2.220446049250313e-16

// ErrIterationLimit is reported when a solver reaches its iteration
// cap before converging.
var ErrIterationLimit = errors.New("iteration limit reached before convergence")

// ErrNoBracket is reported when the supplied interval does not
// bracket a sign change of the function.
var ErrNoBracket = errors.New("interval does not bracket a sign change")

// An Interval is a candidate root bracket. A valid Interval has
// Lo < Hi.
type Interval struct {
	Lo, Hi float64
}

// Valid reports whether the interval is well-formed.
func (iv Interval) Valid() bool {
	return iv.Lo < iv.Hi
}

// FindBracket expands iv geometrically outward until f changes sign
// across it, and returns the expanded interval. The second result is
// false if no sign change is found within a bounded number of
// expansions or if iv is malformed; the input interval is returned
// unchanged in that case.
func FindBracket(f func(float64) float64, iv Interval) (Interval, bool) {
	return FindBracketWithin(f, iv, Interval{math.Inf(-1), math.Inf(1)})
}

// FindBracketWithin is FindBracket with the expansion clamped to the
// domain bounds. It is used to bracket roots of functions defined
// only on an interval, such as a CDF on (0, 1).
func FindBracketWithin(f func(float64) float64, iv, bounds Interval) (Interval, bool) {
	const (
		maxExpand = 60
		factor    = 1.6
	)
	if !iv.Valid() {
		return iv, false
	}
	lo, hi := iv.Lo, iv.Hi
	flo, fhi := f(lo), f(hi)
	for i := 0; i < maxExpand; i++ {
		if flo == 0 || fhi == 0 || flo*fhi < 0 {
			return Interval{lo, hi}, true
		}
		if lo <= bounds.Lo && hi >= bounds.Hi {
			// Nothing left to expand into.
			return iv, false
		}
		// Grow the end with the smaller function magnitude; the
		// root is more likely just beyond it.
		if math.Abs(flo) < math.Abs(fhi) {
			lo = math.Max(bounds.Lo, lo+factor*(lo-hi))
			flo = f(lo)
		} else {
			hi = math.Min(bounds.Hi, hi+factor*(hi-lo))
			fhi = f(hi)
		}
	}
	return iv, false
}

// Bisect returns a root of f in [lo, hi] by interval halving. f(lo)
// and f(hi) must have opposite signs (ErrNoBracket otherwise).
// Convergence is reached when |f(mid)| ≤ tol or the bracket width
// falls below tol; if maxIter halvings do not converge, Bisect
// reports ErrIterationLimit and callers must not treat the returned
// NaN as a root.
func Bisect(f func(float64) float64, lo, hi, tol float64, maxIter int) (float64, error) {
	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if (flo < 0) == (fhi < 0) {
		return math.NaN(), errors.Wrapf(ErrNoBracket, "bisect: f(%g)=%g, f(%g)=%g", lo, flo, hi, fhi)
	}
	for i := 0; i < maxIter; i++ {
		mid := 0.5 * (lo + hi)
		fmid := f(mid)
		if math.Abs(fmid) <= tol || hi-lo <= tol || mid == lo || mid == hi {
			return mid, nil
		}
		if (fmid < 0) == (flo < 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return math.NaN(), errors.Wrapf(ErrIterationLimit, "bisect: %d iterations", maxIter)
}

// Brent returns a root of f in [a, b] using Brent's method: bisection
// combined with linear or inverse quadratic interpolation. f(a) and
// f(b) must have opposite signs.
//
// Based on the zeroin procedure of Forsythe, Malcolm and Moler,
// Computer Methods for Mathematical Computations, as distributed in R.
func Brent(f func(float64) float64, a, b, tol float64) (float64, error) {
	const maxIter = 1000

	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa < 0) == (fb < 0) {
		return math.NaN(), errors.Wrapf(ErrNoBracket, "brent: f(%g)=%g, f(%g)=%g", a, fa, b, fb)
	}

	c, fc := a, fa
	for i := 0; i < maxIter; i++ {
		prevStep := b - a

		// Keep b the best approximation: |f(b)| <= |f(c)|, with
		// b and c bracketing the root.
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tolAct := 2*epsilon*math.Abs(b) + tol/2
		newStep := (c - b) / 2

		if math.Abs(newStep) <= tolAct || fb == 0 {
			return b, nil
		}

		// Try interpolation if the previous step was large enough
		// and moved toward the root.
		if math.Abs(prevStep) >= tolAct && math.Abs(fa) > math.Abs(fb) {
			var p, q float64
			cb := c - b
			if a == c {
				// Linear interpolation.
				t1 := fb / fa
				p = cb * t1
				q = 1 - t1
			} else {
				// Inverse quadratic interpolation.
				q = fa / fc
				t1 := fb / fc
				t2 := fb / fa
				p = t2 * (cb*q*(q-t1) - (b-a)*(t1-1))
				q = (q - 1) * (t1 - 1) * (t2 - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if p < 0.75*cb*q-math.Abs(tolAct*q)/2 && p < math.Abs(prevStep*q/2) {
				newStep = p / q
			}
		}

		if math.Abs(newStep) < tolAct {
			if newStep > 0 {
				newStep = tolAct
			} else {
				newStep = -tolAct
			}
		}

		a, fa = b, fb
		b += newStep
		fb = f(b)
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			c, fc = a, fa
		}
	}
	return math.NaN(), errors.Wrapf(ErrIterationLimit, "brent: %d iterations", maxIter)
}

// Secant returns a root of f by the secant method starting from x0
// and x1, terminating when successive iterates differ by less than
// tol. Iterates below floor are clamped to floor (pass -Inf for an
// unconstrained search). The iterates need not bracket the root.
func Secant(f func(float64) float64, x0, x1, tol float64, maxIter int, floor float64) (float64, error) {
	f0, f1 := f(x0), f(x1)
	ans := x1
	for i := 0; i < maxIter; i++ {
		if f1 == f0 || math.IsNaN(f1) || math.IsNaN(f0) {
			return math.NaN(), errors.Wrapf(ErrIterationLimit, "secant: no progress at x=%g", x1)
		}
		ans = x1 - f1*(x1-x0)/(f1-f0)
		if ans < floor {
			ans = floor
		}
		fa := f(ans)
		if math.Abs(ans-x1) < tol {
			return ans, nil
		}
		x0, f0 = x1, f1
		x1, f1 = ans, fa
	}
	return math.NaN(), errors.Wrapf(ErrIterationLimit, "secant: %d iterations", maxIter)
}

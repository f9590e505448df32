// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"

	"github.com/simkit/go-distmath/internal/mathtest"
	"github.com/simkit/go-distmath/vec"
)

func aeq(expect, got float64) bool {
	return mathtest.Aeq(expect, got)
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	mathtest.WantFunc(t, name, f, vals)
}

// testDiscreteCDF checks that dist's CDF is the running sum of its
// PMF over the support lattice, including between lattice points.
func testDiscreteCDF(t *testing.T, name string, dist DiscreteDist) {
	t.Helper()
	lo, hi := dist.Bounds()
	step := dist.Step()

	vals := map[float64]float64{lo - 0.1: 0, hi: 1}
	sum := 0.0
	for x := lo; x < hi; x += step {
		sum += dist.PMF(x)
		vals[x] = sum
		vals[x+step/2] = sum
	}
	testFunc(t, name, dist.CDF, vals)
}

// testDiscreteInvCDF checks that dist's InvCDF returns the smallest
// lattice point at which the CDF reaches p. At p exactly equal to
// CDF(x) the round trip must be exact, not merely close.
func testDiscreteInvCDF(t *testing.T, name string, dist DiscreteDist, inv func(float64) float64) {
	t.Helper()
	lo, hi := dist.Bounds()
	step := dist.Step()

	for x := lo; x < hi; x += step {
		p := dist.CDF(x)
		if p >= 1-1e-9 {
			// The tail has saturated in floating point.
			break
		}
		if got := inv(p); got != x {
			t.Errorf("want %s(CDF(%v)=%v)=%v, got %v", name, x, p, x, got)
		}
		// Just above the jump the quantile moves to the next
		// lattice point.
		pup := p + (dist.CDF(x+step)-p)/2
		if pup > p {
			if got := inv(pup); got != x+step {
				t.Errorf("want %s(%v)=%v, got %v", name, pup, x+step, got)
			}
		}
	}
}

// testInvCDF checks that InvCDF(dist) inverts dist.CDF over a grid of
// probabilities, and that the p=0, p=1, and out-of-domain edges
// behave.
func testInvCDF(t *testing.T, dist Dist, bounded bool) {
	t.Helper()
	inv := InvCDF(dist)
	name := fmt.Sprintf("InvCDF(%+v)", dist)

	if got := inv(nan); !math.IsNaN(got) {
		t.Errorf("want %s(NaN)=NaN, got %v", name, got)
	}
	vals := map[float64]float64{-0.01: nan, 1.01: nan}
	if !bounded {
		lo, hi := dist.Bounds()
		if dist.CDF(lo) > 0 {
			vals[0] = -inf
		}
		if dist.CDF(hi) < 1 {
			vals[1] = inf
		}
	}
	testFunc(t, name, inv, vals)

	for _, p := range vec.Linspace(0.01, 0.99, 99) {
		x := inv(p)
		if got := dist.CDF(x); !aeq(p, got) {
			t.Errorf("want CDF(%s(%v))=%v, got %v", name, p, p, got)
		}
	}
}

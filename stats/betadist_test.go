// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/simkit/go-distmath/vec"
)

func TestBetaDist(t *testing.T) {
	d := BetaDist{Alpha: 2, Beta: 2}
	testFunc(t, "Beta{2,2}.PDF", d.PDF, map[float64]float64{
		-0.5: 0, 0: 0, 0.25: 1.125, 0.5: 1.5, 0.75: 1.125, 1: 0, 1.5: 0,
	})
	testFunc(t, "Beta{2,2}.CDF", d.CDF, map[float64]float64{
		-0.5: 0, 0: 0, 0.25: 0.15625, 0.5: 0.5, 0.75: 0.84375, 1: 1, 1.5: 1,
	})
	if got := d.InvCDF(0.5); !aeq(0.5, got) {
		t.Errorf("want Beta{2,2}.InvCDF(0.5)=0.5, got %v", got)
	}

	// Endpoint density depends on the adjacent shape parameter.
	if got := (BetaDist{Alpha: 0.5, Beta: 2}).PDF(0); !math.IsInf(got, 1) {
		t.Errorf("want PDF(0)=+Inf for Alpha<1, got %v", got)
	}
	if got := (BetaDist{Alpha: 1, Beta: 3}).PDF(0); !aeq(3, got) {
		t.Errorf("want Beta{1,3}.PDF(0)=3, got %v", got)
	}
	if got := (BetaDist{Alpha: 2, Beta: 0.5}).PDF(1); !math.IsInf(got, 1) {
		t.Errorf("want PDF(1)=+Inf for Beta<1, got %v", got)
	}

	if !aeq(0.5, d.Mean()) || !aeq(0.05, d.Variance()) {
		t.Errorf("want mean 0.5 and variance 0.05, got %v and %v", d.Mean(), d.Variance())
	}

	bad := BetaDist{Alpha: 0, Beta: 1}
	if !math.IsNaN(bad.CDF(0.5)) || !math.IsNaN(bad.InvCDF(0.5)) {
		t.Errorf("want NaN for Alpha=0")
	}
}

func TestBetaDistInvCDF(t *testing.T) {
	// The skewed case drives the continued fraction through both
	// sides of its symmetry split.
	d := BetaDist{Alpha: 0.6, Beta: 3.3}
	if got := d.CDF(0.5); !aeq(0.9501972899934701, got) {
		t.Errorf("want Beta{0.6,3.3}.CDF(0.5)=0.95019729, got %v", got)
	}

	for _, ab := range [][2]float64{{2, 2}, {0.6, 3.3}, {5, 1}, {10, 30}} {
		d := BetaDist{Alpha: ab[0], Beta: ab[1]}
		testInvCDF(t, d, true)
		for _, p := range vec.Linspace(0.01, 0.99, 50) {
			x := d.InvCDF(p)
			if got := d.CDF(x); math.Abs(got-p) > 1e-9 {
				t.Errorf("want Beta%v.CDF(InvCDF(%v))=%v, got %v", ab, p, p, got)
			}
		}
	}
}

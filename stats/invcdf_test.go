// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

// cdfOnlyDist hides a distribution's InvCDF so the generic numerical
// inversion path gets exercised.
type cdfOnlyDist struct {
	d Dist
}

func (n cdfOnlyDist) CDF(x float64) float64      { return n.d.CDF(x) }
func (n cdfOnlyDist) PDF(x float64) float64      { return n.d.PDF(x) }
func (n cdfOnlyDist) Bounds() (float64, float64) { return n.d.Bounds() }

func TestInvCDFNumeric(t *testing.T) {
	// The numerical inversion must match the closed form.
	norm := NormalDist{Mu: 3, Sigma: 1.5}
	d := cdfOnlyDist{norm}
	inv := InvCDF(d)
	for _, p := range []float64{0.01, 0.1, 0.5, 0.9, 0.99} {
		want := norm.InvCDF(p)
		if got := inv(p); math.Abs(want-got) > 1e-9 {
			t.Errorf("want InvCDF(%v)=%v, got %v", p, want, got)
		}
	}
	testInvCDF(t, d, false)
}

func TestInvCDFBoundedSupport(t *testing.T) {
	// When the CDF pins its bounds to 0 and 1, the p=0 and p=1
	// quantiles are the bounds themselves rather than infinities.
	u := UniformDist{Lo: -1, Hi: 2}
	inv := InvCDF(cdfOnlyDist{u})
	if got := inv(0); got != -1 {
		t.Errorf("want InvCDF(0)=-1, got %v", got)
	}
	if got := inv(1); got != 2 {
		t.Errorf("want InvCDF(1)=2, got %v", got)
	}
	if got := inv(0.5); !aeq(0.5, got) {
		t.Errorf("want InvCDF(0.5)=0.5, got %v", got)
	}
}

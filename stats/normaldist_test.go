// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestNormalDist(t *testing.T) {
	d := StdNormal
	testFunc(t, "StdNormal.PDF", d.PDF, map[float64]float64{
		0: 0.398942280401433,
		1: 0.241970724519143,
		2: 0.053990966513188,
		5: 1.48671951473430e-06,
	})
	testFunc(t, "StdNormal.CDF", d.CDF, map[float64]float64{
		0:     0.5,
		1.96:  0.975002104851780,
		-1.96: 0.024997895148220,
		2.58:  0.995059984242229,
	})
	testFunc(t, "StdNormal.InvCDF", d.InvCDF, map[float64]float64{
		0.5:   0,
		0.975: 1.959963984540054,
		0.025: -1.959963984540054,
	})

	d = NormalDist{Mu: 10, Sigma: 2}
	if !aeq(10, d.Mean()) || !aeq(4, d.Variance()) {
		t.Errorf("want mean 10 and variance 4, got %v and %v", d.Mean(), d.Variance())
	}
	if got := d.InvCDF(d.CDF(12.5)); !aeq(12.5, got) {
		t.Errorf("want InvCDF(CDF(12.5))=12.5, got %v", got)
	}
	testInvCDF(t, d, false)

	bad := NormalDist{Mu: 0, Sigma: 0}
	if !math.IsNaN(bad.PDF(0)) || !math.IsNaN(bad.CDF(0)) || !math.IsNaN(bad.InvCDF(0.5)) {
		t.Errorf("want NaN for Sigma=0")
	}
}

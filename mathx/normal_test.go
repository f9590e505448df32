// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"

	"github.com/simkit/go-distmath/internal/mathtest"
	"github.com/simkit/go-distmath/vec"
)

func TestPhiStdNormal(t *testing.T) {
	mathtest.WantFunc(t, "PhiStdNormal", PhiStdNormal, map[float64]float64{
		0:     0.5,
		1:     0.841344746068543,
		-1:    0.158655253931457,
		1.96:  0.975002104851780,
		-1.96: 0.024997895148220,
		3:     0.998650101968370,
	})

	// Far tails clamp.
	if got := PhiStdNormal(9); got != 1 {
		t.Errorf("want PhiStdNormal(9)=1, got %v", got)
	}
	if got := PhiStdNormal(-9); got != 0 {
		t.Errorf("want PhiStdNormal(-9)=0, got %v", got)
	}

	// Agreement with erfc over the central range.
	for _, z := range vec.Linspace(-6, 6, 121) {
		want := 0.5 * math.Erfc(-z/math.Sqrt2)
		got := PhiStdNormal(z)
		if math.Abs(want-got) > 1e-12 {
			t.Errorf("want PhiStdNormal(%v)=%v, got %v", z, want, got)
		}
	}
}

func TestStdNormalPDF(t *testing.T) {
	mathtest.WantFunc(t, "StdNormalPDF", StdNormalPDF, map[float64]float64{
		0: 0.398942280401433,
		1: 0.241970724519143,
		2: 0.053990966513188,
	})
}

func TestInvPhi(t *testing.T) {
	mathtest.WantFunc(t, "InvPhi", InvPhi, map[float64]float64{
		0.5:   0,
		0.975: 1.959963984540054,
		0.025: -1.959963984540054,
		0.84:  0.994457883209753,
		1e-9:  -5.997807015008182,
	})

	if !math.IsInf(InvPhi(0), -1) || !math.IsInf(InvPhi(1), 1) {
		t.Errorf("want InvPhi(0)=-Inf and InvPhi(1)=+Inf, got %v, %v", InvPhi(0), InvPhi(1))
	}
	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		if got := InvPhi(p); !math.IsNaN(got) {
			t.Errorf("want InvPhi(%v)=NaN, got %v", p, got)
		}
	}

	// Round trip through the CDF.
	for _, p := range vec.Linspace(0.001, 0.999, 199) {
		got := PhiStdNormal(InvPhi(p))
		if math.Abs(got-p) > 1e-12 {
			t.Errorf("want PhiStdNormal(InvPhi(%v))=%v, got %v", p, p, got)
		}
	}
}

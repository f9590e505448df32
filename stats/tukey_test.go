// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/simkit/go-distmath/mathx"
	"github.com/simkit/go-distmath/vec"
)

// tCDF is the CDF of Student's t, computed through the incomplete
// beta function. It serves as an independent reference for the
// two-means case below.
func tCDF(t *testing.T, x, df float64) float64 {
	t.Helper()
	ib, err := mathx.BetaInc(df/(df+x*x), df/2, 0.5)
	if err != nil {
		t.Fatalf("BetaInc: %v", err)
	}
	if x > 0 {
		return 1 - 0.5*ib
	}
	return 0.5 * ib
}

func TestWProb(t *testing.T) {
	// For two means the range is |Z1-Z2|, so
	// WProb(w, 1, 2) = 2Φ(w/√2) - 1.
	for _, w := range vec.Linspace(0.1, 6, 30) {
		want := 2*mathx.PhiStdNormal(w/math.Sqrt2) - 1
		got := WProb(w, 1, 2)
		if math.Abs(want-got) > 1e-8 {
			t.Errorf("want WProb(%v, 1, 2)=%v, got %v", w, want, got)
		}
	}

	if got := WProb(0, 1, 4); got != 0 {
		t.Errorf("want WProb(0, 1, 4)=0, got %v", got)
	}
	if got := WProb(20, 1, 4); got != 1 {
		t.Errorf("want WProb(20, 1, 4)=1, got %v", got)
	}
	if got := WProb(2, 1, 1); !math.IsNaN(got) {
		t.Errorf("want NaN for cc<2, got %v", got)
	}
}

func TestPTukey(t *testing.T) {
	// Critical value from the studentized range table:
	// q(0.95; 4 means, 20 df) = 3.958.
	got, err := PTukey(3.958293, 1, 4, 20)
	if err != nil {
		t.Fatalf("PTukey: %v", err)
	}
	if math.Abs(got-0.95) > 1e-5 {
		t.Errorf("want PTukey(3.958293, 1, 4, 20)=0.95, got %v", got)
	}

	// For two means the studentized range is |T|√2, so
	// PTukey(q, 1, 2, df) = 2F_t(q/√2) - 1.
	for _, df := range []float64{5, 10, 60} {
		for _, q := range vec.Linspace(0.5, 6, 12) {
			want := 2*tCDF(t, q/math.Sqrt2, df) - 1
			got, err := PTukey(q, 1, 2, df)
			if err != nil {
				t.Fatalf("PTukey(%v, 1, 2, %v): %v", q, df, err)
			}
			if math.Abs(want-got) > 1e-8 {
				t.Errorf("want PTukey(%v, 1, 2, %v)=%v, got %v", q, df, want, got)
			}
		}
	}

	// Past the df threshold the scale estimate is treated as exact.
	got, err = PTukey(3.633, 1, 4, 30000)
	if err != nil {
		t.Fatalf("PTukey: %v", err)
	}
	if want := WProb(3.633, 1, 4); !aeq(want, got) {
		t.Errorf("want PTukey(3.633, 1, 4, 30000)=%v, got %v", want, got)
	}

	if v, err := PTukey(-1, 1, 4, 20); err != nil || v != 0 {
		t.Errorf("want PTukey(-1, ...)=0, got %v, %v", v, err)
	}
	if _, err := PTukey(2, 1, 1, 20); err == nil {
		t.Errorf("want error for cc<2")
	}
	if _, err := PTukey(2, 1, 4, 0.5); err == nil {
		t.Errorf("want error for df<1")
	}
}

func TestQTukey(t *testing.T) {
	for _, test := range []struct {
		p, cc, df, want float64
	}{
		{0.95, 4, 20, 3.958293},
		{0.99, 3, 10, 5.270160},
		{0.95, 2, 5, 3.635352},
	} {
		got, err := QTukey(test.p, 1, test.cc, test.df)
		if err != nil {
			t.Fatalf("QTukey(%v, 1, %v, %v): %v", test.p, test.cc, test.df, err)
		}
		if math.Abs(got-test.want) > 1e-3 {
			t.Errorf("want QTukey(%v, 1, %v, %v)=%v, got %v", test.p, test.cc, test.df, test.want, got)
		}
	}

	// Round trip through the CDF.
	for _, p := range []float64{0.05, 0.5, 0.9, 0.99} {
		q, err := QTukey(p, 1, 5, 30)
		if err != nil {
			t.Fatalf("QTukey(%v, 1, 5, 30): %v", p, err)
		}
		got, err := PTukey(q, 1, 5, 30)
		if err != nil {
			t.Fatalf("PTukey(%v, 1, 5, 30): %v", q, err)
		}
		if math.Abs(got-p) > 1e-3 {
			t.Errorf("want PTukey(QTukey(%v))=%v, got %v", p, p, got)
		}
	}

	if q, err := QTukey(0, 1, 4, 20); err != nil || q != 0 {
		t.Errorf("want QTukey(0, ...)=0, got %v, %v", q, err)
	}
	if q, err := QTukey(1, 1, 4, 20); err != nil || !math.IsInf(q, 1) {
		t.Errorf("want QTukey(1, ...)=+Inf, got %v, %v", q, err)
	}
	if _, err := QTukey(1.5, 1, 4, 20); err == nil {
		t.Errorf("want error for p>1")
	}
}

func TestStudentizedRangeDist(t *testing.T) {
	d := StudentizedRangeDist{K: 4, DF: 20}
	if got := d.CDF(3.958293); math.Abs(got-0.95) > 1e-5 {
		t.Errorf("want CDF(3.958293)=0.95, got %v", got)
	}
	if got := d.InvCDF(0.95); math.Abs(got-3.958293) > 1e-3 {
		t.Errorf("want InvCDF(0.95)=3.958293, got %v", got)
	}

	lo, hi := d.Bounds()
	if lo != 0 || !(hi > d.InvCDF(0.99)) {
		t.Errorf("want bounds containing the 99th percentile, got (%v, %v)", lo, hi)
	}

	// Invalid parameters return NaN and log a warning when a
	// logger is attached.
	logger, hook := logtest.NewNullLogger()
	bad := StudentizedRangeDist{K: 1, DF: 20, Log: logger}
	if got := bad.CDF(2); !math.IsNaN(got) {
		t.Errorf("want NaN for K<2, got %v", got)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel {
		t.Errorf("want a warning log entry, got %+v", entry)
	}

	// Without a logger the failure is still just NaN.
	quiet := StudentizedRangeDist{K: 1, DF: 20}
	if got := quiet.InvCDF(0.5); !math.IsNaN(got) {
		t.Errorf("want NaN for K<2, got %v", got)
	}
}

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/simkit/go-distmath/mathx"
	"github.com/simkit/go-distmath/rootfind"
)

const invSqrt2Pi = 0.398942280401432677939946059934

// Gauss-Legendre abscissae and weights. The 12-point rule integrates
// the range probability over the standard normal density; the
// 16-point rule integrates that over the chi density of the scale
// estimate. Both tables hold the positive half of a symmetric rule.
var (
	xleg = [6]float64{
		0.981560634246719250690549090149,
		0.904117256370474856678465866119,
		0.769902674194304687036893833213,
		0.587317954286617447296702418941,
		0.367831498998180193752691536644,
		0.125233408511468915472441369464,
	}
	aleg = [6]float64{
		0.047175336386511827194615961485,
		0.106939325995318430960254718194,
		0.160078328543346226334652529543,
		0.203167426723065921749064455810,
		0.233492536538354808760849898925,
		0.249147045813402785000562436043,
	}
	xlegq = [8]float64{
		0.989400934991649932596154173450,
		0.944575023073232576077988415535,
		0.865631202387831743880467897712,
		0.755404408355003033895101194847,
		0.617876244402643748446671764049,
		0.458016777657227386342419442984,
		0.281603550779258913230460501460,
		0.950125098376374401853193354250e-1,
	}
	alegq = [8]float64{
		0.271524594117540948517805724560e-1,
		0.622535239386478928628438369944e-1,
		0.951585116824927848099251076022e-1,
		0.124628971255533872052476282192,
		0.149595988816576732081501730547,
		0.169156519395002538189312079030,
		0.182603415044923588866763667969,
		0.189450610455068496285396723208,
	}
)

// WProb is the probability that the range of cc iid standard normal
// variables is at most w·√2, with an outer power rr. For rr=1 it is
// the CDF of the standardized range of cc means with known variance.
func WProb(w, rr, cc float64) float64 {
	const (
		bb     = 8.0
		wlar   = 3.0
		wincr1 = 2.0
		wincr2 = 3.0
		c1     = -30.0
		c2     = -50.0
		c3     = 60.0
	)
	if math.IsNaN(w) || rr < 1 || cc < 2 {
		return nan
	}
	if w <= 0 {
		return 0
	}

	qsqz := w * 0.5
	if qsqz >= bb {
		return 1
	}

	// First term: the probability that all cc variables land in a
	// half-width qsqz window around the smallest.
	prW := 2*mathx.PhiStdNormal(qsqz) - 1
	if prW >= 1 {
		return 1
	}
	prW = math.Pow(prW, cc)

	// The correction integral over [qsqz, bb] is cut into wincr
	// subintervals, more of them when w is small and the integrand
	// still has mass far from the origin.
	wincr := wincr2
	if w > wlar {
		wincr = wincr1
	}
	blb := qsqz
	binc := (bb - qsqz) / wincr
	cc1 := cc - 1

	einsum := 0.0
	for wi := 1.0; wi <= wincr; wi++ {
		elsum := 0.0
		a := 0.5 * (2*blb + binc)
		b := 0.5 * binc
		for jj := 1; jj <= 12; jj++ {
			var j int
			var xx float64
			if jj > 6 {
				j = 12 - jj + 1
				xx = xleg[j-1]
			} else {
				j = jj
				xx = -xleg[j-1]
			}
			ac := a + b*xx
			qexpo := ac * ac
			if qexpo > c3 {
				break
			}
			pplus := 2 * mathx.PhiStdNormal(ac)
			pminus := 2 * mathx.PhiStdNormal(ac-w)
			rinsum := pplus*0.5 - pminus*0.5
			if rinsum >= math.Exp(c1/cc1) {
				rinsum = aleg[j-1] * math.Exp(-0.5*qexpo) * math.Pow(rinsum, cc1)
				elsum += rinsum
			}
		}
		einsum += elsum * 2 * b * cc * invSqrt2Pi
		blb += binc
	}

	prW += einsum
	if prW <= math.Exp(c2/cc) {
		return 0
	}
	prW = math.Pow(prW, rr)
	if prW >= 1 {
		return 1
	}
	return prW
}

// PTukey is the CDF of the studentized range: the probability that the
// range of cc sample means, divided by an independent standard error
// estimate with df degrees of freedom, is at most q. rr independent
// such ranges may share the error estimate. It returns
// mathx.ErrIterationLimit when the outer quadrature fails to converge
// and mathx.ErrDomain for invalid arguments.
func PTukey(q, rr, cc, df float64) (float64, error) {
	const (
		nlegq  = 16
		ihalfq = 8
		eps1   = -30.0
		eps2   = 1e-14
		dhaf   = 100.0
		dquar  = 800.0
		deigh  = 5000.0
		dlarg  = 25000.0
		ulen1  = 1.0
		ulen2  = 0.5
		ulen3  = 0.25
		ulen4  = 0.125
	)
	if math.IsNaN(q) || math.IsNaN(rr) || math.IsNaN(cc) || math.IsNaN(df) {
		return nan, errors.Wrap(mathx.ErrDomain, "ptukey: NaN argument")
	}
	if rr < 1 || cc < 2 || df < 1 {
		return nan, errors.Wrapf(mathx.ErrDomain, "ptukey: rr=%v, cc=%v, df=%v", rr, cc, df)
	}
	if q <= 0 {
		return 0, nil
	}

	// With this many degrees of freedom the scale estimate is
	// effectively exact.
	if df > dlarg {
		return WProb(q, rr, cc), nil
	}

	f2 := df * 0.5
	f2lf := f2*math.Log(df) - df*math.Ln2 - mathx.Lgamma(f2)
	f21 := f2 - 1
	ff4 := df * 0.25

	var ulen float64
	switch {
	case df <= dhaf:
		ulen = ulen1
	case df <= dquar:
		ulen = ulen2
	case df <= deigh:
		ulen = ulen3
	default:
		ulen = ulen4
	}
	f2lf += math.Log(ulen)

	// Integrate WProb(q·√(u/2)) against the density of u = s²/σ²
	// over unit-length intervals until the contribution falls below
	// eps2. The interval count is capped; a cap hit means the sum
	// never tailed off.
	ans := 0.0
	otsum := 0.0
	for i := 1; i <= 50; i++ {
		otsum = 0
		twa1 := float64(2*i-1) * ulen

		for jj := 1; jj <= nlegq; jj++ {
			var j int
			var t1, u float64
			if jj > ihalfq {
				j = nlegq - jj + 1
				u = twa1 + xlegq[j-1]*ulen
				t1 = f2lf + f21*math.Log(u) - u*ff4
			} else {
				j = jj
				u = twa1 - xlegq[j-1]*ulen
				t1 = f2lf + f21*math.Log(u) - u*ff4
			}
			if t1 >= eps1 {
				qsqz := q * math.Sqrt(u*0.5)
				otsum += WProb(qsqz, rr, cc) * alegq[j-1] * math.Exp(t1)
			}
		}

		if float64(i)*ulen >= 1 && otsum <= eps2 {
			break
		}
		ans += otsum
	}

	if otsum > eps2 {
		return nan, errors.Wrapf(mathx.ErrIterationLimit,
			"ptukey(q=%v, nranges=%v, nmeans=%v, df=%v): quadrature", q, rr, cc, df)
	}
	if ans > 1 {
		ans = 1
	}
	return ans, nil
}

// qinv is a cheap starting value for the p quantile of the
// studentized range of c means with v degrees of freedom. It combines
// a rational approximation to the normal quantile with a finite-v
// correction.
func qinv(p, c, v float64) float64 {
	const (
		p0   = -0.322232431088
		q0   = 0.993484626060e-01
		p1   = -1.0
		q1   = 0.588581570495
		p2   = -0.342242088547
		q2   = 0.531103462366
		p3   = -0.204231210245e-01
		q3   = 0.103537752850
		p4   = -0.453642210148e-04
		q4   = 0.38560700634e-02
		c1   = 0.8832
		c2   = 0.2368
		c3   = 1.214
		c4   = 1.208
		c5   = 1.4142
		vmax = 120.0
	)

	ps := 0.5 - 0.5*p
	yi := math.Sqrt(math.Log(1 / (ps * ps)))
	t := yi + (((yi*p4+p3)*yi+p2)*yi+p1+p0/yi)/
		((((yi*q4+q3)*yi+q2)*yi+q1)*yi+q0)
	if v < vmax {
		t += (t*t*t + t) / v / 4
	}
	q := c1 - c2*t
	if v < vmax {
		q += -c3/v + c4*t/v
	}
	return t * (q*math.Log(c-1) + c5)
}

// QTukey is the p quantile of the studentized range: the smallest q
// with PTukey(q, rr, cc, df) >= p.
func QTukey(p, rr, cc, df float64) (float64, error) {
	if math.IsNaN(p) || math.IsNaN(rr) || math.IsNaN(cc) || math.IsNaN(df) {
		return nan, errors.Wrap(mathx.ErrDomain, "qtukey: NaN argument")
	}
	if rr < 1 || cc < 2 || df < 1 || p < 0 || p > 1 {
		return nan, errors.Wrapf(mathx.ErrDomain, "qtukey: p=%v, rr=%v, cc=%v, df=%v", p, rr, cc, df)
	}
	if p == 0 {
		return 0, nil
	}
	if p == 1 {
		return inf, nil
	}

	x0 := qinv(p, cc, df)
	x1 := x0 * 0.5
	if x0 > 1 {
		x1 = x0 - 1
	}

	var perr error
	f := func(q float64) float64 {
		v, err := PTukey(q, rr, cc, df)
		if err != nil {
			if perr == nil {
				perr = err
			}
			return nan
		}
		return v - p
	}

	// The quantile is only needed to a few decimals in practice, so
	// the secant tolerance is loose. Iterates are floored at 0,
	// where the CDF is exactly 0.
	ans, err := rootfind.Secant(f, x0, x1, 1e-4, 50, 0)
	if perr != nil {
		return nan, perr
	}
	if err != nil {
		return nan, errors.Wrapf(err, "qtukey(p=%v, nmeans=%v, df=%v)", p, cc, df)
	}
	return ans, nil
}

// StudentizedRangeDist is the distribution of the studentized range
// of K sample means with DF error degrees of freedom. It underlies
// Tukey's HSD multiple-comparison procedure.
type StudentizedRangeDist struct {
	// K is the number of means being compared. K >= 2.
	K float64

	// DF is the degrees of freedom of the error estimate. DF >= 1.
	DF float64

	// Log, if non-nil, receives a warning when the quadrature or
	// the quantile iteration fails to converge. Failed operations
	// return NaN either way.
	Log logrus.FieldLogger
}

func (d StudentizedRangeDist) warn(op string, err error) {
	if d.Log != nil {
		d.Log.WithError(err).WithFields(logrus.Fields{
			"nmeans": d.K,
			"df":     d.DF,
		}).Warnf("studentized range: %s failed", op)
	}
}

func (d StudentizedRangeDist) CDF(q float64) float64 {
	v, err := PTukey(q, 1, d.K, d.DF)
	if err != nil {
		d.warn("cdf", err)
		return nan
	}
	return v
}

func (d StudentizedRangeDist) InvCDF(p float64) float64 {
	q, err := QTukey(p, 1, d.K, d.DF)
	if err != nil {
		d.warn("quantile", err)
		return nan
	}
	return q
}

func (d StudentizedRangeDist) Bounds() (float64, float64) {
	if d.K < 2 || d.DF < 1 {
		return 0, 0
	}
	hi := qinv(0.999, d.K, d.DF)
	if math.IsNaN(hi) || hi < 1 {
		hi = 10
	}
	return 0, hi + 3
}

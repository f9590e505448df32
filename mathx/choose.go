// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Choose returns the binomial coefficient of n and k.
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	return math.Floor(math.Exp(Lchoose(n, k)) + 0.5)
}

// Lchoose returns math.Log(Choose(n, k)). It does not overflow for
// large n.
func Lchoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	return Lgamma(float64(n+1)) - Lgamma(float64(k+1)) - Lgamma(float64(n-k+1))
}

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

// Machine-precision constants and iteration guards shared by the
// iterative routines in this package and by package rootfind.
const (
	// Epsilon is the double-precision machine epsilon,
	// Nextafter(1, 2) - 1.
	Epsilon = 2.220446049250313e-16

	// MaxExpArg and MinExpArg bound the argument of math.Exp.
	// Beyond MaxExpArg, Exp overflows to +Inf; below MinExpArg it
	// underflows to 0.
	MaxExpArg = 709.0
	MinExpArg = -745.0

	// DefaultMaxIter caps iterative searches that have no
	// tighter, algorithm-specific bound.
	DefaultMaxIter = 5000

	// SeriesMaxIter and SeriesEps govern the power-series and
	// continued-fraction evaluations of the incomplete gamma and
	// beta functions.
	SeriesMaxIter = 200
	SeriesEps     = 3e-14
)

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions missing from the math
// package: the gamma and beta families, their regularized incomplete
// forms, standard normal primitives, and the chi-square percentage
// point function. These are the shared numerical machinery behind the
// distributions in package stats.
//
// All functions in this package are pure: they keep no state between
// calls and are safe for concurrent use. Iterative routines report
// failure to converge with ErrIterationLimit rather than returning a
// partially converged value.
package mathx // import "github.com/simkit/go-distmath/mathx"

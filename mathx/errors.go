// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "github.com/pkg/errors"

// ErrIterationLimit is reported when an iterative routine reaches its
// iteration cap before meeting its precision target. The accompanying
// value is NaN, never a partially converged estimate.
var ErrIterationLimit = errors.New("iteration limit reached before convergence")

// ErrDomain is reported when an argument lies outside a routine's
// domain, or when a parameter combination overflows the representable
// range.
var ErrDomain = errors.New("argument outside domain")

// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides statistical distributions built on the
// special-function engine in package mathx.
package stats // import "github.com/simkit/go-distmath/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

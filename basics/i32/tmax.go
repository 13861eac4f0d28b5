// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i32

// not returns 1 if x is zero and 0 otherwise. The sign bit of x|-x is
// set for every x except zero.
func not(x int32) int32 {
	return int32(uint32(x|-x)>>31) ^ 1
}

// IsTmax returns 1 if x is Max and 0 otherwise. Only Max and -1 satisfy
// x+x+2 == 0 modulo 2^32; the test x+1 != 0 excludes -1.
func IsTmax(x int32) int32 {
	a := x + x + 2
	b := x + 1
	return not(a) & not(not(b))
}

// IsTmaxVolatile computes the same result as IsTmax. The sums are formed
// with Add and the function is never inlined, so the wrapping additions
// are always performed at run time.
//
//go:noinline
func IsTmaxVolatile(x int32) int32 {
	a, _ := Add(x, x)
	a, _ = Add(a, 2)
	b, _ := Add(x, 1)
	return not(a) & not(not(b))
}

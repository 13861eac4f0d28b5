// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package i32 provides basic functions supporting the int32 type.
package i32

// Minimum and maximum value for the int32 type.
const (
	Min = -1 << 31
	Max = 1<<31 - 1
)

// Add adds x and y modulo 2^32 and detects signed overflow. The sum is
// computed on the unsigned bit pattern.
func Add(x, y int32) (z int32, overflow bool) {
	z = int32(uint32(x) + uint32(y))
	return z, (z^x)&(z^y)&Min != 0
}

// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tmax prints whether 0x7fffffff is recognized as the maximum
// int32 value by both i32.IsTmax and i32.IsTmaxVolatile.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ulikunitz/tmax/basics/i32"
)

func run(w io.Writer) error {
	const x int32 = 0x7fffffff
	if _, err := fmt.Fprintf(w, "isTmax(%#x)         = %d\n",
		x, i32.IsTmax(x)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "isTmaxVolatile(%#x) = %d\n",
		x, i32.IsTmaxVolatile(x))
	return err
}

func main() {
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)

	// The exit status is always zero.
	if err := run(os.Stdout); err != nil {
		log.Print(err)
	}
}

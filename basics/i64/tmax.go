package i64

func not(x int64) int64 {
	return int64(uint64(x|-x)>>63) ^ 1
}

// IsTmax returns 1 if x is Max and 0 otherwise.
func IsTmax(x int64) int64 {
	a := x + x + 2
	b := x + 1
	return not(a) & not(not(b))
}

// IsTmaxVolatile returns the same value as IsTmax but builds the sums
// with Add in a function that is not inlined.
//
//go:noinline
func IsTmaxVolatile(x int64) int64 {
	a, _ := Add(x, x)
	a, _ = Add(a, 2)
	b, _ := Add(x, 1)
	return not(a) & not(not(b))
}

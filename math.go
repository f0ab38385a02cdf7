package pulsenet

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// GCD returns the greatest common divisor of a and b using the binary
// (Stein) algorithm. GCD(0, n) = GCD(n, 0) = n.
func GCD[T constraints.Unsigned](a, b T) T {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	i := bits.TrailingZeros64(uint64(a))
	a >>= i
	j := bits.TrailingZeros64(uint64(b))
	b >>= j
	k := min(i, j)
	for {
		// a and b are odd here.
		if a > b {
			a, b = b, a
		}
		b -= a
		if b == 0 {
			return a << k
		}
		b >>= bits.TrailingZeros64(uint64(b))
	}
}

// LCM returns the least common multiple of the integers.
// It panics if called with no integers.
func LCM[T constraints.Unsigned](integers ...T) T {
	if len(integers) == 0 {
		panic("no integers")
	}
	result := integers[0]
	for _, v := range integers[1:] {
		if result == 0 || v == 0 {
			return 0
		}
		result = result / GCD(result, v) * v
	}
	return result
}

// Sum returns the sum of the numbers.
func Sum[T constraints.Integer | constraints.Float](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

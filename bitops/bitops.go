// Package bitops provides small integer helpers used in performance-sensitive
// code paths: branch-light min/max, modular addition over reduced arguments,
// power-of-two rounding and population count.
package bitops

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/ARM-software/golang-collections/collections/safecast"
)

// Min returns the smallest of the two given numbers.
func Min[T constraints.Integer](lhs, rhs T) T {
	if rhs < lhs {
		return rhs
	}
	return lhs
}

// Max returns the largest of the two given numbers.
func Max[T constraints.Integer](lhs, rhs T) T {
	if rhs > lhs {
		return rhs
	}
	return lhs
}

// AddMod returns (a + b) % modulo for arguments already reduced modulo
// `modulo`, without performing a division. Both a and b must be non-negative
// and strictly less than modulo, and a+b must not overflow T.
func AddMod[T constraints.Integer](a, b, modulo T) T {
	sum := a + b
	if sum >= modulo {
		sum -= modulo
	}
	return sum
}

// RoundUpToPowerOfTwo returns the closest power of two which is not less than
// the given number. The result must fit in the same type; n must be positive.
func RoundUpToPowerOfTwo[T constraints.Integer](n T) T {
	if n <= 1 {
		return 1
	}
	return T(1) << bits.Len64(safecast.ToUint64(n)-1)
}

// IsPowerOfTwo states whether the given number is a power of two.
func IsPowerOfTwo[T constraints.Integer](n T) bool {
	return n > 0 && n&(n-1) == 0
}

// OnesCount returns the number of one bits ("population count") in n.
func OnesCount[T constraints.Unsigned](n T) int {
	return bits.OnesCount64(uint64(n))
}

// Package safecast provides number conversions which are safe with regard to
// overflows: if a value does not fit in the destination type, the closest
// boundary of that type is returned instead of a wrapped-around value.
package safecast

import (
	"math"

	"golang.org/x/exp/constraints"
)

// IConvertable is an alias for any number which can be safely converted.
type IConvertable interface {
	constraints.Integer | constraints.Float
}

func greaterThanUpperBoundary[C1 IConvertable, C2 IConvertable](value C1, upperBoundary C2) (greater bool) {
	if value <= 0 {
		return
	}

	switch f := any(value).(type) {
	case float64:
		greater = f >= float64(upperBoundary)
	case float32:
		greater = float64(f) >= float64(upperBoundary)
	default:
		// for all other integer types, it fits in an uint64 without overflow as we know value is positive.
		greater = uint64(value) > uint64(upperBoundary)
	}

	return
}

func lessThanLowerBoundary[C1 IConvertable, C2 IConvertable](value C1, boundary C2) (lower bool) {
	if value >= 0 {
		return
	}

	switch f := any(value).(type) {
	case float64:
		lower = f <= float64(boundary)
	case float32:
		lower = float64(f) <= float64(boundary)
	default:
		lower = int64(value) < int64(boundary)
	}
	return
}

// ToInt attempts to convert any [IConvertable] value to an int.
// If the conversion results in a value outside the range of an int,
// the closest boundary value will be returned.
func ToInt[C IConvertable](i C) int {
	if lessThanLowerBoundary(i, math.MinInt) {
		return math.MinInt
	}
	if greaterThanUpperBoundary(i, math.MaxInt) {
		return math.MaxInt
	}
	return int(i)
}

// ToUint attempts to convert any [IConvertable] value to an uint.
// If the conversion results in a value outside the range of an uint,
// the closest boundary value will be returned.
func ToUint[C IConvertable](i C) uint {
	if lessThanLowerBoundary(i, uint(0)) {
		return 0
	}
	if greaterThanUpperBoundary(i, uint(math.MaxUint)) {
		return math.MaxUint
	}
	return uint(i)
}

// ToInt64 attempts to convert any [IConvertable] value to an int64.
// If the conversion results in a value outside the range of an int64,
// the closest boundary value will be returned.
func ToInt64[C IConvertable](i C) int64 {
	if lessThanLowerBoundary(i, math.MinInt64) {
		return math.MinInt64
	}
	if greaterThanUpperBoundary(i, math.MaxInt64) {
		return math.MaxInt64
	}
	return int64(i)
}

// ToUint64 attempts to convert any [IConvertable] value to an uint64.
// If the conversion results in a value outside the range of an uint64,
// the closest boundary value will be returned.
func ToUint64[C IConvertable](i C) uint64 {
	if lessThanLowerBoundary(i, uint64(0)) {
		return 0
	}
	if greaterThanUpperBoundary(i, uint64(math.MaxUint64)) {
		return math.MaxUint64
	}
	return uint64(i)
}

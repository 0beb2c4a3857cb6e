// File: numeric.go
// Role: the Numeric constraint and the type-extreme helpers Interval needs
// in place of a numeric "Bounded" trait, which Go's generics do not provide.
// Determinism: minValue/maxValue are pure functions of the type parameter.
package interval

import "math"

// Numeric constrains the register type D an Interval[D] ranges over to the
// fixed-width signed, unsigned, and floating-point kinds. A register that is
// conceptually boolean (e.g. a latch flag) should be represented as uint8
// (0/1): Go does not define ordering operators on bool, so bool cannot
// satisfy this constraint.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// minValue returns the smallest representable value of D, substituted for
// an unbounded lower endpoint.
func minValue[D Numeric]() D {
	var zero D
	switch any(zero).(type) {
	case int:
		return any(int(math.MinInt)).(D)
	case int8:
		return any(int8(math.MinInt8)).(D)
	case int16:
		return any(int16(math.MinInt16)).(D)
	case int32:
		return any(int32(math.MinInt32)).(D)
	case int64:
		return any(int64(math.MinInt64)).(D)
	case uint, uint8, uint16, uint32, uint64:
		return zero // unsigned kinds are bounded below by zero
	case float32:
		return any(float32(-math.MaxFloat32)).(D)
	case float64:
		return any(float64(-math.MaxFloat64)).(D)
	}
	return zero
}

// maxValue returns the largest representable value of D, substituted for
// an unbounded upper endpoint.
func maxValue[D Numeric]() D {
	var zero D
	switch any(zero).(type) {
	case int:
		return any(int(math.MaxInt)).(D)
	case int8:
		return any(int8(math.MaxInt8)).(D)
	case int16:
		return any(int16(math.MaxInt16)).(D)
	case int32:
		return any(int32(math.MaxInt32)).(D)
	case int64:
		return any(int64(math.MaxInt64)).(D)
	case uint:
		return any(uint(math.MaxUint)).(D)
	case uint8:
		return any(uint8(math.MaxUint8)).(D)
	case uint16:
		return any(uint16(math.MaxUint16)).(D)
	case uint32:
		return any(uint32(math.MaxUint32)).(D)
	case uint64:
		return any(uint64(math.MaxUint64)).(D)
	case float32:
		return any(float32(math.MaxFloat32)).(D)
	case float64:
		return any(float64(math.MaxFloat64)).(D)
	}
	return zero
}

// CheckedAdd returns a+b and true, or the wrapped/overflowed sum and false
// if the addition over- or underflowed D's range. It is used by
// AddUpdate.ApplyInterval to keep the symbolic lift sound when an upper
// bound would otherwise overflow.
func CheckedAdd[D Numeric](a, b D) (D, bool) {
	sum := a + b
	if sum > maxValue[D]() || sum < minValue[D]() {
		return sum, false // floating-point overflow to ±Inf
	}
	if b > 0 && sum < a {
		return sum, false
	}
	if b < 0 && sum > a {
		return sum, false
	}
	return sum, true
}

// Package modular implements the remainder variants of integer division
// and arithmetic in the ring of integers modulo n.
package modular

import "golang.org/x/exp/constraints"

// Truncated returns the remainder of truncated division, the one Go's %
// operator computes. The result has the sign of the dividend.
//
//	Truncated(21, 4)  == 1
//	Truncated(-21, 4) == -1
//
// Panics if b is zero.
func Truncated[T constraints.Signed](a, b T) T {
	mustNonZero(b)
	// MinInt % -1 overflows.
	if b == -1 {
		return 0
	}

	return a % b
}

// Floored returns the remainder of floored division. The result has the
// sign of the divisor.
//
//	Floored(-21, 4) == 3
//	Floored(21, -4) == -3
//
// Panics if b is zero.
func Floored[T constraints.Signed](a, b T) T {
	mustNonZero(b)
	if b == -1 {
		return 0
	}

	q := a / b
	if a%b != 0 && (a^b) < 0 {
		q--
	}

	return a - b*q
}

// Euclidean returns the Euclidean remainder, which is never negative.
//
//	Euclidean(-21, 4) == 3
//	Euclidean(21, -4) == 1
//
// Panics if b is zero.
func Euclidean[T constraints.Signed](a, b T) T {
	mustNonZero(b)
	if b == -1 {
		return 0
	}

	m := a % b
	if m < 0 {
		if b < 0 {
			m -= b
		} else {
			m += b
		}
	}

	return m
}

// EuclideanNatural is Euclidean restricted to a positive divisor.
// Panics if b is not positive.
func EuclideanNatural[T constraints.Signed](a, b T) T {
	if b <= 0 {
		panic("modular: divisor must be positive")
	}

	return ((a % b) + b) % b
}

func mustNonZero[T constraints.Signed](b T) {
	if b == 0 {
		panic("modular: division by zero")
	}
}

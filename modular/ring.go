package modular

import (
	"fmt"
	"math"
)

// Reduce maps any a into Z_n.
func Reduce(a int64, n uint64) uint64 {
	mustModulus(n)
	if n > math.MaxInt64 {
		if a >= 0 {
			return uint64(a)
		}
		// a is in (-2^63, 0), so n - |a| fits.
		return n - uint64(-(a + 1)) - 1
	}

	m := a % int64(n)
	if m < 0 {
		m += int64(n)
	}

	return uint64(m)
}

// Add returns (a + b) mod n without overflowing.
func Add(a, b, n uint64) uint64 {
	mustElements(n, a, b)
	if b == 0 {
		return a
	}

	// a + b - n, computed as a - (n - b)
	b = n - b
	if a >= b {
		return a - b
	}

	return n - b + a
}

// Sub returns (a - b) mod n.
func Sub(a, b, n uint64) uint64 {
	mustElements(n, a, b)
	if a >= b {
		return a - b
	}

	return n - b + a
}

// Inc returns (a + 1) mod n.
func Inc(a, n uint64) uint64 {
	mustElements(n, a)
	a++
	if a == n {
		a = 0
	}

	return a
}

// Dec returns (a - 1) mod n.
func Dec(a, n uint64) uint64 {
	mustElements(n, a)
	if a == 0 {
		return n - 1
	}

	return a - 1
}

// Neg returns the additive inverse of a: Add(a, Neg(a, n), n) == 0.
func Neg(a, n uint64) uint64 {
	mustElements(n, a)
	if a == 0 {
		return 0
	}

	return n - a
}

// Mul returns (a * b) mod n using double and add, O(log b).
func Mul(a, b, n uint64) uint64 {
	mustElements(n, a, b)

	var product uint64
	if b > a {
		a, b = b, a
	}

	for b != 0 {
		if b&1 == 1 {
			product = Add(product, a, n)
		}
		a = Add(a, a, n)
		b >>= 1
	}

	return product
}

// Sqr returns (a * a) mod n.
func Sqr(a, n uint64) uint64 {
	return Mul(a, a, n)
}

// Pow returns (a ^ e) mod n by square and multiply.
func Pow(a, e, n uint64) uint64 {
	mustElements(n, a)
	if e == 0 {
		return 1 % n
	}

	y, z := uint64(1)%n, a
	for {
		if e&1 == 1 {
			y = Mul(y, z, n)
		}
		e >>= 1
		if e == 0 {
			return y
		}
		z = Sqr(z, n)
	}
}

// Inverse returns the multiplicative inverse of a modulo a prime n, by
// Fermat's little theorem. The result is meaningless for a composite n;
// use ExtendedGCD there.
func Inverse(a, n uint64) uint64 {
	mustElements(n, a)
	if n < 2 {
		panic("modular: inverse requires n >= 2")
	}

	return Pow(a, n-2, n)
}

// ExtendedGCD returns g = gcd(a, n) along with x, y such that
// a*x + n*y == g. When g == 1, x is the inverse of a modulo n.
func ExtendedGCD(a, n int64) (g, x, y int64) {
	u1, u2, u3 := int64(1), int64(0), a
	v1, v2, v3 := int64(0), int64(1), n

	for v3 != 0 {
		q := u3 / v3
		u1, v1 = v1, u1-v1*q
		u2, v2 = v2, u2-v2*q
		u3, v3 = v3, u3-v3*q
	}

	return u3, u1, u2
}

func mustModulus(n uint64) {
	if n == 0 {
		panic("modular: modulus must be positive")
	}
}

func mustElements(n uint64, values ...uint64) {
	mustModulus(n)
	for _, v := range values {
		if v >= n {
			panic(fmt.Sprintf("modular: %d is not an element of Z_%d", v, n))
		}
	}
}

// Package field implements arithmetic on integers modulo N.
//
// An [Element] pairs a modulus with a value reduced into [0, N). Elements
// are immutable values: every operation allocates and returns a new
// Element, and accessors hand out copies of the underlying integers, so an
// Element may be shared freely between goroutines.
//
//	a, _ := field.NewInt(17, 5)
//	b, _ := field.NewInt(17, 3)
//	q, err := a.Div(b) // 5 * 3^-1 = 5 * 6 = 13 (mod 17)
//
// # Errors
//
// Operations between elements of different moduli fail with
// [ErrModulusMismatch]. Division by zero fails with [ErrDivisionByZero] and
// inverting a value that shares a factor with the modulus fails with
// [ErrNoInverse]. All errors can be matched with errors.Is.
//
// # Security Considerations
//
// Nothing in this package runs in constant time. It is meant for algebra on
// public values and small moduli, not for handling secrets.
package field

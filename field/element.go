package field

import (
	"fmt"
	"math/big"
)

// Element is an integer modulo N.
//
// The zero Element has no modulus and is not usable; build elements with
// [New] or [NewInt]. Methods never modify the receiver.
type Element struct {
	modulus *big.Int
	value   *big.Int
}

// New returns value mod modulus. Negative values are mapped into [0, modulus).
// Returns [ErrInvalidModulus] if modulus is nil or less than 2.
func New(modulus, value *big.Int) (Element, error) {
	if modulus == nil || modulus.Cmp(big.NewInt(2)) < 0 {
		return Element{}, fmt.Errorf("%w: got %v", ErrInvalidModulus, modulus)
	}
	if value == nil {
		value = new(big.Int)
	}
	m := new(big.Int).Set(modulus)
	return Element{modulus: m, value: new(big.Int).Mod(value, m)}, nil
}

// NewInt is like [New] for machine-sized integers.
func NewInt(modulus, value int64) (Element, error) {
	return New(big.NewInt(modulus), big.NewInt(value))
}

// with builds an element sharing e's modulus. The modulus is never mutated,
// so sharing the pointer keeps elements immutable.
func (e Element) with(v *big.Int) Element {
	return Element{modulus: e.modulus, value: v.Mod(v, e.modulus)}
}

// check reports whether b can be combined with e.
func (e Element) check(b Element) error {
	if e.modulus == nil || b.modulus == nil || e.modulus.Cmp(b.modulus) != 0 {
		return fmt.Errorf("%w: %v and %v", ErrModulusMismatch, e.modulus, b.modulus)
	}
	return nil
}

// Modulus returns a copy of the modulus N.
func (e Element) Modulus() *big.Int {
	if e.modulus == nil {
		return nil
	}
	return new(big.Int).Set(e.modulus)
}

// Value returns a copy of the reduced value in [0, N).
func (e Element) Value() *big.Int {
	if e.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(e.value)
}

// Add returns e + b (mod N).
func (e Element) Add(b Element) (Element, error) {
	if err := e.check(b); err != nil {
		return Element{}, err
	}
	return e.with(new(big.Int).Add(e.value, b.value)), nil
}

// Sub returns e - b (mod N).
func (e Element) Sub(b Element) (Element, error) {
	if err := e.check(b); err != nil {
		return Element{}, err
	}
	return e.with(new(big.Int).Sub(e.value, b.value)), nil
}

// Mul returns e * b (mod N).
func (e Element) Mul(b Element) (Element, error) {
	if err := e.check(b); err != nil {
		return Element{}, err
	}
	return e.with(new(big.Int).Mul(e.value, b.value)), nil
}

// Div returns e * b^-1 (mod N).
// Returns [ErrDivisionByZero] if b is zero and [ErrNoInverse] if b is not
// invertible modulo N.
func (e Element) Div(b Element) (Element, error) {
	if err := e.check(b); err != nil {
		return Element{}, err
	}
	if b.IsZero() {
		return Element{}, fmt.Errorf("%w: %v / 0 (mod %v)", ErrDivisionByZero, e.value, e.modulus)
	}
	inv, err := b.Inverse()
	if err != nil {
		return Element{}, err
	}
	return e.Mul(inv)
}

// Inverse returns the unique n in [1, N) with n*e = 1 (mod N).
// Returns [ErrNoInverse] when gcd(e, N) != 1, which includes e = 0.
func (e Element) Inverse() (Element, error) {
	if e.modulus == nil {
		return Element{}, fmt.Errorf("%w: element has no modulus", ErrNoInverse)
	}
	inv := new(big.Int).ModInverse(e.value, e.modulus)
	if inv == nil {
		return Element{}, fmt.Errorf("%w: %v modulo %v", ErrNoInverse, e.value, e.modulus)
	}
	return e.with(inv), nil
}

// Exp returns e^n (mod N) for n >= 0.
func (e Element) Exp(n *big.Int) (Element, error) {
	if n == nil || n.Sign() < 0 {
		return Element{}, fmt.Errorf("%w: %v", ErrNegativeExponent, n)
	}
	if e.modulus == nil {
		return Element{}, ErrInvalidModulus
	}
	return e.with(new(big.Int).Exp(e.value, n, e.modulus)), nil
}

// ExpInt is like [Element.Exp] for machine-sized exponents.
func (e Element) ExpInt(n int64) (Element, error) {
	return e.Exp(big.NewInt(n))
}

// Neg returns -e (mod N).
func (e Element) Neg() Element {
	if e.modulus == nil {
		return Element{}
	}
	return e.with(new(big.Int).Neg(e.value))
}

// Equal reports whether e and b have the same value and the same modulus.
func (e Element) Equal(b Element) bool {
	if e.modulus == nil || b.modulus == nil {
		return e.modulus == nil && b.modulus == nil
	}
	return e.modulus.Cmp(b.modulus) == 0 && e.value.Cmp(b.value) == 0
}

// IsZero reports whether the value of e is 0.
func (e Element) IsZero() bool {
	return e.value == nil || e.value.Sign() == 0
}

// String returns the decimal value of e.
func (e Element) String() string {
	if e.value == nil {
		return "0"
	}
	return e.value.String()
}

package field

import "errors"

var (
	// ErrInvalidModulus is returned when a modulus is missing or below 2.
	ErrInvalidModulus = errors.New("field: modulus must be at least 2")
	// ErrModulusMismatch is returned when two operands carry different moduli.
	ErrModulusMismatch = errors.New("field: moduli differ")
	// ErrDivisionByZero is returned when dividing by an element whose value is 0.
	ErrDivisionByZero = errors.New("field: division by zero")
	// ErrNoInverse is returned when a value has no multiplicative inverse.
	ErrNoInverse = errors.New("field: no inverse")
	// ErrNegativeExponent is returned by Exp for exponents below zero.
	ErrNegativeExponent = errors.New("field: negative exponent")
)

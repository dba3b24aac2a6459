package curve

import "errors"

var (
	// ErrNotOnCurve is returned when (x, y) does not satisfy y² = x³ + Ax + B.
	ErrNotOnCurve = errors.New("curve: not a point on curve")
	// ErrUndefinedAddition is returned when a sum would be the point at
	// infinity, which this package cannot represent: adding a point to its
	// negation, or doubling a point with y = 0.
	ErrUndefinedAddition = errors.New("curve: sum is the point at infinity")
	// ErrCurveMismatch is returned when combining points of different curves.
	ErrCurveMismatch = errors.New("curve: points belong to different curves")
	// ErrInvalidScalar is returned by scalar multiplication for k < 1.
	ErrInvalidScalar = errors.New("curve: scalar must be at least 1")
	// ErrLengthMismatch is returned by ScalarMultAll when its inputs differ in length.
	ErrLengthMismatch = errors.New("curve: points and scalars differ in length")
)

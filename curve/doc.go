// Package curve implements the group law on short Weierstrass curves
//
//	y² = x³ + A·x + B  (mod N)
//
// over the integers modulo N provided by package field.
//
// A [Params] value describes one curve and is shared, read-only, by every
// [Point] built on it. Points are immutable and validated on construction:
// [NewPoint] and every arithmetic result re-check the curve equation, so a
// Point that exists is always on its curve.
//
//	c, _ := curve.NewInt(17, 2, 2)
//	p, _ := c.PointInt(5, 1)
//	q, _ := p.Add(p)            // (6, 3)
//	r, _ := p.ScalarMultInt(2)  // equal to q
//
// # The Point at Infinity
//
// There is no identity element. Sums that would produce it, P + (-P) and
// doubling a point with y = 0, fail with [ErrUndefinedAddition]. That error
// also matches field.ErrDivisionByZero, since both cases amount to a
// vertical line. For the same reason scalar multiplication is only defined
// for k >= 1.
//
// # Curve Parameters
//
// No check is made that N is prime or that 4A³ + 27B² is nonzero. Over a
// composite N, non-invertible slopes surface as field.ErrNoInverse.
//
// # Concurrency
//
// All values are immutable and safe for concurrent use. [ScalarMultAll]
// spreads independent multiplications across goroutines.
package curve

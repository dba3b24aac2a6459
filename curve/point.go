package curve

import (
	"fmt"
	"math/big"

	"github.com/f3rmion/ecmod/field"
)

// Point is an affine point (x, y) on a curve described by [Params].
//
// The zero Point is not valid; points come from [NewPoint], [Params.Point]
// or arithmetic on existing points, each of which checks the curve equation.
type Point struct {
	curve *Params
	x, y  field.Element
}

// NewPoint returns the point (x, y) on c.
// Returns an error wrapping field.ErrModulusMismatch if a coordinate is not
// an element mod N, or [ErrNotOnCurve] if y² != x³ + A·x + B.
func NewPoint(c *Params, x, y field.Element) (Point, error) {
	for _, e := range []field.Element{x, y} {
		if m := e.Modulus(); m == nil || m.Cmp(c.n) != 0 {
			return Point{}, fmt.Errorf("curve: coordinate mod %v on curve mod %v: %w", m, c.n, field.ErrModulusMismatch)
		}
	}
	if !c.IsOnCurve(x, y) {
		return Point{}, fmt.Errorf("(%v, %v): %w", x, y, ErrNotOnCurve)
	}
	return Point{curve: c, x: x, y: y}, nil
}

// Curve returns the curve p lies on.
func (p Point) Curve() *Params {
	return p.curve
}

// X returns the x coordinate.
func (p Point) X() field.Element {
	return p.x
}

// Y returns the y coordinate.
func (p Point) Y() field.Element {
	return p.y
}

// Equal reports whether p and q have the same coordinates.
func (p Point) Equal(q Point) bool {
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Add returns p + q using the chord-and-tangent rule.
//
// If p == q the tangent slope (3x² + A) / 2y is used, otherwise the chord
// slope (p.y - q.y) / (p.x - q.x). When the line is vertical the sum is the
// point at infinity and Add returns an error matching both
// [ErrUndefinedAddition] and field.ErrDivisionByZero.
func (p Point) Add(q Point) (Point, error) {
	if !p.curve.Equal(q.curve) {
		return Point{}, fmt.Errorf("%w: %v and %v", ErrCurveMismatch, p.curve, q.curve)
	}

	var (
		m   field.Element
		err error
	)
	if p.Equal(q) {
		m, err = p.tangent()
	} else {
		m, err = p.chord(q)
	}
	if err != nil {
		return Point{}, err
	}

	// x3 = m² - p.x - q.x
	x3, err := m.ExpInt(2)
	if err != nil {
		return Point{}, err
	}
	if x3, err = x3.Sub(p.x); err != nil {
		return Point{}, err
	}
	if x3, err = x3.Sub(q.x); err != nil {
		return Point{}, err
	}

	// y3 = m(p.x - x3) - p.y
	y3, err := p.x.Sub(x3)
	if err != nil {
		return Point{}, err
	}
	if y3, err = m.Mul(y3); err != nil {
		return Point{}, err
	}
	if y3, err = y3.Sub(p.y); err != nil {
		return Point{}, err
	}

	return NewPoint(p.curve, x3, y3)
}

// tangent returns (3x² + A) / 2y.
func (p Point) tangent() (field.Element, error) {
	if p.y.IsZero() {
		return field.Element{}, fmt.Errorf("%w: doubling %v: %w", ErrUndefinedAddition, p, field.ErrDivisionByZero)
	}
	c := p.curve
	num, err := p.x.ExpInt(2)
	if err != nil {
		return field.Element{}, err
	}
	if num, err = c.ElementInt(3).Mul(num); err != nil {
		return field.Element{}, err
	}
	if num, err = num.Add(c.a); err != nil {
		return field.Element{}, err
	}
	den, err := c.ElementInt(2).Mul(p.y)
	if err != nil {
		return field.Element{}, err
	}
	return num.Div(den)
}

// chord returns (p.y - q.y) / (p.x - q.x).
func (p Point) chord(q Point) (field.Element, error) {
	if p.x.Equal(q.x) {
		return field.Element{}, fmt.Errorf("%w: %v + %v: %w", ErrUndefinedAddition, p, q, field.ErrDivisionByZero)
	}
	num, err := p.y.Sub(q.y)
	if err != nil {
		return field.Element{}, err
	}
	den, err := p.x.Sub(q.x)
	if err != nil {
		return field.Element{}, err
	}
	return num.Div(den)
}

// Double returns p + p.
func (p Point) Double() (Point, error) {
	return p.Add(p)
}

// Neg returns (x, -y).
func (p Point) Neg() (Point, error) {
	return NewPoint(p.curve, p.x, p.y.Neg())
}

// Sub returns p + (-q).
func (p Point) Sub(q Point) (Point, error) {
	nq, err := q.Neg()
	if err != nil {
		return Point{}, err
	}
	return p.Add(nq)
}

// ScalarMult returns k·p, the sum of k copies of p, for k >= 1.
//
// The result is computed by left-to-right double-and-add. It fails with
// [ErrUndefinedAddition] if an intermediate multiple of p is the point at
// infinity.
func (p Point) ScalarMult(k *big.Int) (Point, error) {
	if k == nil || k.Sign() < 1 {
		return Point{}, fmt.Errorf("%w: got %v", ErrInvalidScalar, k)
	}
	r := p
	for i := k.BitLen() - 2; i >= 0; i-- {
		var err error
		if r, err = r.Double(); err != nil {
			return Point{}, err
		}
		if k.Bit(i) == 1 {
			if r, err = r.Add(p); err != nil {
				return Point{}, err
			}
		}
	}
	return r, nil
}

// ScalarMultInt is like [Point.ScalarMult] for machine-sized scalars.
func (p Point) ScalarMultInt(k int64) (Point, error) {
	return p.ScalarMult(big.NewInt(k))
}

// String returns "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}

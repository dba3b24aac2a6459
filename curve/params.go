package curve

import (
	"fmt"
	"math/big"

	"github.com/f3rmion/ecmod/field"
)

// Params describes the curve y² = x³ + A·x + B over the integers modulo N.
// A Params is immutable once built; share it by pointer.
type Params struct {
	n    *big.Int
	a, b field.Element
}

// New returns the curve with modulus n and coefficients a and b, reduced mod n.
// Neither primality of n nor non-singularity of the curve is checked.
func New(n, a, b *big.Int) (*Params, error) {
	fa, err := field.New(n, a)
	if err != nil {
		return nil, err
	}
	fb, err := field.New(n, b)
	if err != nil {
		return nil, err
	}
	return &Params{n: fa.Modulus(), a: fa, b: fb}, nil
}

// NewInt is like [New] for machine-sized integers.
func NewInt(n, a, b int64) (*Params, error) {
	return New(big.NewInt(n), big.NewInt(a), big.NewInt(b))
}

// N returns a copy of the field modulus.
func (c *Params) N() *big.Int {
	return new(big.Int).Set(c.n)
}

// A returns the linear coefficient.
func (c *Params) A() field.Element {
	return c.a
}

// B returns the constant coefficient.
func (c *Params) B() field.Element {
	return c.b
}

// Equal reports whether c and d describe the same curve.
func (c *Params) Equal(d *Params) bool {
	if c == d {
		return true
	}
	if c == nil || d == nil {
		return false
	}
	return c.n.Cmp(d.n) == 0 && c.a.Equal(d.a) && c.b.Equal(d.b)
}

// Element reduces v into the curve's field.
func (c *Params) Element(v *big.Int) field.Element {
	// c.n >= 2 was checked by New, so this cannot fail.
	e, _ := field.New(c.n, v)
	return e
}

// ElementInt is like [Params.Element] for machine-sized integers.
func (c *Params) ElementInt(v int64) field.Element {
	return c.Element(big.NewInt(v))
}

// rhs returns x³ + A·x + B.
func (c *Params) rhs(x field.Element) (field.Element, error) {
	x3, err := x.ExpInt(3)
	if err != nil {
		return field.Element{}, err
	}
	ax, err := c.a.Mul(x)
	if err != nil {
		return field.Element{}, err
	}
	s, err := x3.Add(ax)
	if err != nil {
		return field.Element{}, err
	}
	return s.Add(c.b)
}

// IsOnCurve reports whether y² = x³ + A·x + B holds for x and y.
// Coordinates from a different field are never on the curve.
func (c *Params) IsOnCurve(x, y field.Element) bool {
	r, err := c.rhs(x)
	if err != nil {
		return false
	}
	y2, err := y.ExpInt(2)
	if err != nil {
		return false
	}
	return y2.Equal(r)
}

// Point reduces x and y mod N and returns the point (x, y).
// Returns an error wrapping [ErrNotOnCurve] if the pair is not on the curve.
func (c *Params) Point(x, y *big.Int) (Point, error) {
	return NewPoint(c, c.Element(x), c.Element(y))
}

// PointInt is like [Params.Point] for machine-sized integers.
func (c *Params) PointInt(x, y int64) (Point, error) {
	return c.Point(big.NewInt(x), big.NewInt(y))
}

// String renders the curve equation.
func (c *Params) String() string {
	return fmt.Sprintf("y^2 = x^3 + %v*x + %v (mod %v)", c.a, c.b, c.n)
}

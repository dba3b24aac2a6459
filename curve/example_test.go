package curve_test

import (
	"errors"
	"fmt"

	"github.com/f3rmion/ecmod/curve"
)

func Example() {
	c, err := curve.NewInt(17, 2, 2)
	if err != nil {
		panic(err)
	}
	p, err := c.PointInt(5, 1)
	if err != nil {
		panic(err)
	}

	sum, _ := p.Add(p)
	twice, _ := p.ScalarMultInt(2)
	neg, _ := p.Neg()
	fmt.Println(c)
	fmt.Println(sum, twice.Equal(sum), neg)

	_, err = p.Add(neg)
	fmt.Println(errors.Is(err, curve.ErrUndefinedAddition))

	_, err = c.PointInt(5, 2)
	fmt.Println(errors.Is(err, curve.ErrNotOnCurve))
	// Output:
	// y^2 = x^3 + 2*x + 2 (mod 17)
	// (6, 3) true (5, 16)
	// true
	// true
}

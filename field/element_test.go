package field

import (
	"errors"
	"math/big"
	"testing"
)

func mustInt(t testing.TB, modulus, value int64) Element {
	t.Helper()
	e, err := NewInt(modulus, value)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

// scanInverse is the reference linear search for n*v = 1 (mod N).
func scanInverse(modulus, value int64) (int64, bool) {
	for n := int64(1); n < modulus; n++ {
		if n*value%modulus == 1 {
			return n, true
		}
	}
	return 0, false
}

func TestNew(t *testing.T) {
	t.Run("Reduces", func(t *testing.T) {
		if got := mustInt(t, 17, 35).Value().Int64(); got != 1 {
			t.Errorf("35 mod 17 = %d, want 1", got)
		}
		if got := mustInt(t, 17, -1).Value().Int64(); got != 16 {
			t.Errorf("-1 mod 17 = %d, want 16", got)
		}
	})

	t.Run("InvalidModulus", func(t *testing.T) {
		for _, m := range []int64{-5, 0, 1} {
			if _, err := NewInt(m, 0); !errors.Is(err, ErrInvalidModulus) {
				t.Errorf("modulus %d: got %v, want ErrInvalidModulus", m, err)
			}
		}
		if _, err := New(nil, big.NewInt(1)); !errors.Is(err, ErrInvalidModulus) {
			t.Errorf("nil modulus: got %v", err)
		}
	})

	t.Run("CopiesInputs", func(t *testing.T) {
		m := big.NewInt(17)
		v := big.NewInt(5)
		e, err := New(m, v)
		if err != nil {
			t.Fatal(err)
		}
		m.SetInt64(19)
		v.SetInt64(6)
		if e.Modulus().Int64() != 17 || e.Value().Int64() != 5 {
			t.Errorf("element changed with its inputs: %v mod %v", e, e.Modulus())
		}
	})

	t.Run("AccessorsReturnCopies", func(t *testing.T) {
		e := mustInt(t, 17, 5)
		e.Value().SetInt64(9)
		e.Modulus().SetInt64(23)
		if e.Modulus().Int64() != 17 || e.Value().Int64() != 5 {
			t.Error("accessor exposed internal state")
		}
	})
}

func TestArithmetic(t *testing.T) {
	a := mustInt(t, 17, 5)
	b := mustInt(t, 17, 3)

	t.Run("Add", func(t *testing.T) {
		sum, err := a.Add(mustInt(t, 17, 15))
		if err != nil {
			t.Fatal(err)
		}
		if sum.Value().Int64() != 3 {
			t.Errorf("5+15 = %v, want 3", sum)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		diff, err := b.Sub(a)
		if err != nil {
			t.Fatal(err)
		}
		if diff.Value().Int64() != 15 {
			t.Errorf("3-5 = %v, want 15", diff)
		}
	})

	t.Run("Mul", func(t *testing.T) {
		prod, err := a.Mul(mustInt(t, 17, 7))
		if err != nil {
			t.Fatal(err)
		}
		if prod.Value().Int64() != 1 {
			t.Errorf("5*7 = %v, want 1", prod)
		}
	})

	t.Run("Div", func(t *testing.T) {
		q, err := a.Div(b)
		if err != nil {
			t.Fatal(err)
		}
		if q.Value().Int64() != 13 {
			t.Errorf("5/3 = %v, want 13", q)
		}
		back, err := q.Mul(b)
		if err != nil {
			t.Fatal(err)
		}
		if !back.Equal(a) {
			t.Error("(a/b)*b != a")
		}
	})

	t.Run("Neg", func(t *testing.T) {
		if got := a.Neg().Value().Int64(); got != 12 {
			t.Errorf("-5 = %d, want 12", got)
		}
		if !mustInt(t, 17, 0).Neg().IsZero() {
			t.Error("-0 != 0")
		}
	})

	t.Run("ReceiverUnchanged", func(t *testing.T) {
		before := a.Value()
		_, _ = a.Add(b)
		_, _ = a.Mul(b)
		_ = a.Neg()
		if a.Value().Cmp(before) != 0 {
			t.Error("operation mutated the receiver")
		}
	})
}

func TestModulusMismatch(t *testing.T) {
	a := mustInt(t, 17, 3)
	b := mustInt(t, 19, 3)

	ops := map[string]func(Element, Element) (Element, error){
		"Add": Element.Add,
		"Sub": Element.Sub,
		"Mul": Element.Mul,
		"Div": Element.Div,
	}
	for name, op := range ops {
		if _, err := op(a, b); !errors.Is(err, ErrModulusMismatch) {
			t.Errorf("%s: got %v, want ErrModulusMismatch", name, err)
		}
	}

	if _, err := a.Add(Element{}); !errors.Is(err, ErrModulusMismatch) {
		t.Errorf("zero Element operand: got %v", err)
	}
}

func TestDivisionByZero(t *testing.T) {
	_, err := mustInt(t, 17, 5).Div(mustInt(t, 17, 0))
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("got %v, want ErrDivisionByZero", err)
	}
}

func TestInverse(t *testing.T) {
	t.Run("Prime", func(t *testing.T) {
		for v := int64(1); v < 17; v++ {
			inv, err := mustInt(t, 17, v).Inverse()
			if err != nil {
				t.Fatalf("%d: %v", v, err)
			}
			if inv.Value().Int64()*v%17 != 1 {
				t.Errorf("%d * %v != 1 (mod 17)", v, inv)
			}
		}
	})

	t.Run("MatchesLinearScan", func(t *testing.T) {
		for _, m := range []int64{2, 9, 15, 16, 97, 100} {
			for v := int64(0); v < m; v++ {
				want, ok := scanInverse(m, v)
				inv, err := mustInt(t, m, v).Inverse()
				if !ok {
					if !errors.Is(err, ErrNoInverse) {
						t.Errorf("%d mod %d: got %v, want ErrNoInverse", v, m, err)
					}
					continue
				}
				if err != nil {
					t.Fatalf("%d mod %d: %v", v, m, err)
				}
				if got := inv.Value().Int64(); got != want {
					t.Errorf("%d^-1 mod %d = %d, want %d", v, m, got, want)
				}
			}
		}
	})

	t.Run("DivByNonInvertible", func(t *testing.T) {
		_, err := mustInt(t, 15, 1).Div(mustInt(t, 15, 6))
		if !errors.Is(err, ErrNoInverse) {
			t.Errorf("got %v, want ErrNoInverse", err)
		}
	})
}

func TestExp(t *testing.T) {
	a := mustInt(t, 17, 5)

	t.Run("MatchesRepeatedMul", func(t *testing.T) {
		want := mustInt(t, 17, 1)
		for n := int64(0); n < 40; n++ {
			got, err := a.ExpInt(n)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(want) {
				t.Errorf("5^%d = %v, want %v", n, got, want)
			}
			want, _ = want.Mul(a)
		}
	})

	t.Run("Fermat", func(t *testing.T) {
		for v := int64(1); v < 17; v++ {
			got, err := mustInt(t, 17, v).ExpInt(16)
			if err != nil {
				t.Fatal(err)
			}
			if got.Value().Int64() != 1 {
				t.Errorf("%d^16 = %v, want 1", v, got)
			}
		}
	})

	t.Run("NegativeExponent", func(t *testing.T) {
		if _, err := a.ExpInt(-1); !errors.Is(err, ErrNegativeExponent) {
			t.Errorf("got %v, want ErrNegativeExponent", err)
		}
	})
}

func TestEqual(t *testing.T) {
	if !mustInt(t, 17, 3).Equal(mustInt(t, 17, 20)) {
		t.Error("3 and 20 should be equal mod 17")
	}
	if mustInt(t, 17, 3).Equal(mustInt(t, 19, 3)) {
		t.Error("elements with different moduli should differ")
	}
	if mustInt(t, 17, 3).Equal(mustInt(t, 17, 4)) {
		t.Error("3 != 4 mod 17")
	}
	if !(Element{}).Equal(Element{}) {
		t.Error("zero Elements should be equal")
	}
}

func TestString(t *testing.T) {
	if s := mustInt(t, 17, -2).String(); s != "15" {
		t.Errorf("String() = %q, want \"15\"", s)
	}
}

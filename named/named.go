package named

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	blsfp "github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	blsfr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	bnfp "github.com/consensys/gnark-crypto/ecc/bn254/fp"
	bnfr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/secp256k1"
	kfp "github.com/consensys/gnark-crypto/ecc/secp256k1/fp"
	kfr "github.com/consensys/gnark-crypto/ecc/secp256k1/fr"

	"github.com/f3rmion/ecmod/curve"
)

// ErrUnknownCurve is returned by [Get] for curves this package does not provide.
var ErrUnknownCurve = errors.New("named: unknown curve")

// Curve bundles the parameters of a named curve with its base point.
type Curve struct {
	ID        ecc.ID
	Params    *curve.Params
	Generator curve.Point
	// Order is the order of Generator.
	Order *big.Int
}

// String returns the curve's gnark-crypto name, e.g. "bn254".
func (c *Curve) String() string {
	return c.ID.String()
}

// IDs lists the curves supported by [Get].
func IDs() []ecc.ID {
	return []ecc.ID{ecc.BN254, ecc.BLS12_381, ecc.SECP256K1}
}

// Get returns the curve identified by id.
func Get(id ecc.ID) (*Curve, error) {
	switch id {
	case ecc.BN254:
		return BN254()
	case ecc.BLS12_381:
		return BLS12381()
	case ecc.SECP256K1:
		return Secp256k1()
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCurve, id)
	}
}

// BN254 returns the G1 group of BN254: y² = x³ + 3.
func BN254() (*Curve, error) {
	_, _, g, _ := bn254.Generators()
	return load(ecc.BN254, bnfp.Modulus(), bnfr.Modulus(), 3,
		g.X.BigInt(new(big.Int)), g.Y.BigInt(new(big.Int)))
}

// BLS12381 returns the G1 group of BLS12-381: y² = x³ + 4.
func BLS12381() (*Curve, error) {
	_, _, g, _ := bls12381.Generators()
	return load(ecc.BLS12_381, blsfp.Modulus(), blsfr.Modulus(), 4,
		g.X.BigInt(new(big.Int)), g.Y.BigInt(new(big.Int)))
}

// Secp256k1 returns the SEC 2 curve secp256k1: y² = x³ + 7.
func Secp256k1() (*Curve, error) {
	_, g := secp256k1.Generators()
	return load(ecc.SECP256K1, kfp.Modulus(), kfr.Modulus(), 7,
		g.X.BigInt(new(big.Int)), g.Y.BigInt(new(big.Int)))
}

// load builds y² = x³ + b over F_p, all supported curves having A = 0.
func load(id ecc.ID, p, order *big.Int, b int64, gx, gy *big.Int) (*Curve, error) {
	params, err := curve.New(p, new(big.Int), big.NewInt(b))
	if err != nil {
		return nil, fmt.Errorf("named: %v: %w", id, err)
	}
	gen, err := params.Point(gx, gy)
	if err != nil {
		return nil, fmt.Errorf("named: %v generator: %w", id, err)
	}
	return &Curve{
		ID:        id,
		Params:    params,
		Generator: gen,
		Order:     order,
	}, nil
}

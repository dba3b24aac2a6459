package field

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/blake2b"
)

// Random returns an element drawn uniformly from [0, modulus) using r.
func Random(r io.Reader, modulus *big.Int) (Element, error) {
	if modulus == nil || modulus.Cmp(big.NewInt(2)) < 0 {
		return Element{}, fmt.Errorf("%w: got %v", ErrInvalidModulus, modulus)
	}
	v, err := rand.Int(r, modulus)
	if err != nil {
		return Element{}, fmt.Errorf("field: reading randomness: %w", err)
	}
	return New(modulus, v)
}

// Hash maps data to an element of the field of the given modulus.
// The inputs are concatenated and hashed with BLAKE2b-512; the digest is
// read as a big-endian integer and reduced modulo N.
func Hash(modulus *big.Int, data ...[]byte) (Element, error) {
	h, err := blake2b.New512(nil)
	if err != nil {
		return Element{}, err
	}
	for _, d := range data {
		h.Write(d)
	}
	return New(modulus, new(big.Int).SetBytes(h.Sum(nil)))
}

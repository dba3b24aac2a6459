// Package named provides well-known short Weierstrass curves as [curve.Params]
// values, with their base points and subgroup orders.
//
// The constants are read from gnark-crypto rather than restated here, and
// each base point is passed through curve.NewPoint so the curve equation is
// checked when a curve is loaded.
//
//	c, err := named.Secp256k1()
//	if err != nil {
//		return err
//	}
//	pub, err := c.Generator.ScalarMult(k)
//
// Supported curves are the G1 groups of BN254 and BLS12-381, and secp256k1.
package named

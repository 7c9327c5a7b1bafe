// Package backward evaluates the IAPWS IF-97 backward correlations: closed
// forms that recover temperature directly from (enthalpy, pressure) or
// (entropy, pressure) in regions 1 and 2, without the Newton iteration
// region 3 requires. Each is the same sparse bivariate polynomial kernel
// (poly.Eval) used by the forward Gibbs-energy evaluators, just evaluated
// at order 0 since only the function value is needed.
package backward

import (
	"math"

	"github.com/vaporcore/if97/internal/calc_core/bundle"
	"github.com/vaporcore/if97/internal/calc_core/errs"
	"github.com/vaporcore/if97/internal/calc_core/poly"
)

func value(x, y float64, terms []poly.Term) (float64, error) {
	v, _, _, _, _, _, err := poly.Eval(x, y, terms, poly.OrderValue)
	return v, err
}

// TFromHP1 returns temperature (K) from enthalpy h (kJ/kg) and pressure
// pBar (bar) in region 1.
func TFromHP1(b *bundle.Bundle, h, pBar float64) (float64, error) {
	eta := h / 2500.0
	pi := pBar / 10.0
	t, err := value(pi, eta+1, b.Th1)
	if err != nil {
		return 0, errs.DataCorruption("backward: region1 T(h,p): %v", err)
	}
	return t, nil
}

// TFromSP1 returns temperature (K) from entropy s (kJ/(kg*K)) and pressure
// pBar (bar) in region 1.
func TFromSP1(b *bundle.Bundle, s, pBar float64) (float64, error) {
	pi := pBar / 10.0
	t, err := value(pi, s+2, b.Ts1)
	if err != nil {
		return 0, errs.DataCorruption("backward: region1 T(s,p): %v", err)
	}
	return t, nil
}

// h2bc holds the B2bc boundary coefficients and h2bcEnthalpy gives the
// boundary enthalpy at a pressure; together they pick out the 2b/2c split
// for the backward T(p,h) correlation, per the standard B2bc boundary
// equation (IAPWS-IF97 backward equations, region 2).
var h2bc = struct{ n1, n2, n3, n4, n5 float64 }{
	n1: 0.90584278514723e3,
	n2: -0.67955786399241,
	n3: 0.12809002730136e-3,
	n4: 0.26526571908428e4,
	n5: 0.45257578905948e1,
}

func h2bcEnthalpy(pMPa float64) float64 {
	return h2bc.n4 + math.Sqrt((pMPa-h2bc.n5)/h2bc.n3)
}

// sigma2bcBoundary is the constant entropy that splits sub-regions 2b and
// 2c in the backward T(p,s) correlation above 4 MPa.
const sigma2bcBoundary = 5.85

// Sub is which region-2 sub-region a backward (h,p) or (s,p) query falls
// in, per the standard IF-97 partition.
type Sub int

const (
	Sub2a Sub = iota
	Sub2b
	Sub2c
)

// SubFromHP classifies a region 2 backward T(p,h) query into its
// sub-region.
func SubFromHP(pBar, h float64) Sub {
	pMPa := pBar / 10
	if pMPa <= 4 {
		return Sub2a
	}
	if h < h2bcEnthalpy(pMPa) {
		return Sub2c
	}
	return Sub2b
}

// SubFromSP classifies a region 2 backward T(p,s) query into its
// sub-region.
func SubFromSP(pBar, s float64) Sub {
	pMPa := pBar / 10
	if pMPa <= 4 {
		return Sub2a
	}
	if s < sigma2bcBoundary {
		return Sub2c
	}
	return Sub2b
}

// TFromHP2 returns temperature (K) from enthalpy h (kJ/kg) and pressure
// pBar (bar) in region 2, dispatching to the matching sub-region
// correlation.
func TFromHP2(b *bundle.Bundle, h, pBar float64) (float64, error) {
	eta := h / 2000.0
	pi := pBar / 10.0

	var t float64
	var err error
	switch SubFromHP(pBar, h) {
	case Sub2a:
		t, err = value(pi, eta-2.1, b.Th2a)
	case Sub2b:
		t, err = value(pi-2, eta-2.6, b.Th2b)
	default:
		t, err = value(pi+25, eta-1.8, b.Th2c)
	}
	if err != nil {
		return 0, errs.DataCorruption("backward: region2 T(h,p): %v", err)
	}
	return t, nil
}

// TFromSP2 returns temperature (K) from entropy s (kJ/(kg*K)) and pressure
// pBar (bar) in region 2, dispatching to the matching sub-region
// correlation.
func TFromSP2(b *bundle.Bundle, s, pBar float64) (float64, error) {
	pi := pBar / 10.0

	var t float64
	var err error
	switch SubFromSP(pBar, s) {
	case Sub2a:
		sigma := s / 2.0
		t, err = value(math.Pow(pi, 0.25), sigma-2, b.Ts2a)
	case Sub2b:
		sigma := s / 0.7853
		t, err = value(pi, 10-sigma, b.Ts2b)
	default:
		sigma := s / 2.9251
		t, err = value(pi, 2-sigma, b.Ts2c)
	}
	if err != nil {
		return 0, errs.DataCorruption("backward: region2 T(s,p): %v", err)
	}
	return t, nil
}

package poly

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestEvalConstant(t *testing.T) {
	terms := []Term{{M: 0, N: 0, C: 0.5}}
	p, _, _, _, _, _, err := Eval(3.0, 7.0, terms, OrderValue)
	if err != nil {
		t.Fatal(err)
	}
	chk.Scalar(t, "constant", 1e-12, p, 0.5)
}

func TestEvalMatchesPublishedExample(t *testing.T) {
	// p(x,y) = .5 + 1.2y + .2y**2 + 0.1xy, from the docstring this kernel
	// was ported from.
	terms := []Term{
		{M: 0, N: 0, C: 0.5},
		{M: 0, N: 1, C: 1.2},
		{M: 0, N: 2, C: 0.2},
		{M: 1, N: 1, C: 0.1},
	}
	x, y := 2.0, 3.0
	want := 0.5 + 1.2*y + 0.2*y*y + 0.1*x*y
	p, _, _, _, _, _, err := Eval(x, y, terms, OrderValue)
	if err != nil {
		t.Fatal(err)
	}
	chk.Scalar(t, "polynomial value", 1e-10, p, want)
}

func TestEvalGradientMatchesFiniteDifference(t *testing.T) {
	terms := []Term{
		{M: 0, N: 0, C: 0.5},
		{M: 0, N: 1, C: 1.2},
		{M: 1, N: 2, C: -0.7},
		{M: 2, N: 0, C: 0.3},
	}
	x, y := 1.7, -0.4
	const d = 1e-6

	p, px, py, _, _, _, err := Eval(x, y, terms, OrderGradient)
	if err != nil {
		t.Fatal(err)
	}

	pxPlus, _, _, _, _, _, _ := Eval(x+d, y, terms, OrderValue)
	pxMinus, _, _, _, _, _, _ := Eval(x-d, y, terms, OrderValue)
	fdx := (pxPlus - pxMinus) / (2 * d)

	pyPlus, _, _, _, _, _, _ := Eval(x, y+d, terms, OrderValue)
	pyMinus, _, _, _, _, _, _ := Eval(x, y-d, terms, OrderValue)
	fdy := (pyPlus - pyMinus) / (2 * d)

	chk.Scalar(t, "px finite-difference", 1e-5, px, fdx)
	chk.Scalar(t, "py finite-difference", 1e-5, py, fdy)
	_ = p
}

func TestEvalEmptyTermsIsZero(t *testing.T) {
	p, px, py, pxx, pxy, pyy, err := Eval(1, 1, nil, OrderHessian)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []float64{p, px, py, pxx, pxy, pyy} {
		if v != 0 {
			t.Fatalf("expected all-zero result for an empty term list, got %v", v)
		}
	}
}

func TestEvalRejectsExponentsPastGuard(t *testing.T) {
	terms := []Term{{M: 200, N: 0, C: 1}}
	_, _, _, _, _, _, err := Eval(1, 1, terms, OrderValue)
	if err == nil {
		t.Fatal("expected a corrupt-terms error for an out-of-range exponent")
	}
	var corrupt *CorruptTermsError
	if !asCorrupt(err, &corrupt) {
		t.Fatalf("expected *CorruptTermsError, got %T", err)
	}
}

func asCorrupt(err error, target **CorruptTermsError) bool {
	if c, ok := err.(*CorruptTermsError); ok {
		*target = c
		return true
	}
	return false
}

func TestEvalUnsortedTermsDoesNotLoopForever(t *testing.T) {
	// Deliberately descending N within an M group: Eval's sanity guard
	// must fail this rather than loop, since the real IAPWS tables are
	// always pre-sorted and a reversed list signals corrupted data.
	terms := []Term{{M: 0, N: 5, C: 1}, {M: 0, N: -150, C: 1}}
	_, _, _, _, _, _, err := Eval(1, 1, terms, OrderValue)
	if err == nil {
		t.Fatal("expected an error for a term list that cannot be a valid ascending table")
	}
}

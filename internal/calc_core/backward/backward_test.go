package backward

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/vaporcore/if97/internal/calc_core/bundle"
	"github.com/vaporcore/if97/internal/calc_core/region1"
	"github.com/vaporcore/if97/internal/calc_core/region2"
)

// IAPWS-IF97's backward equations are fit to within ~25 mK of the forward
// equation's own T(h,p)/T(s,p) inverse, so round-tripping through the
// forward region evaluator and back is the testable property spec.md
// names for C6.
func TestTFromHP1Roundtrip(t *testing.T) {
	b := bundle.New()
	cases := []struct{ tK, pBar float64 }{
		{300, 30}, {500, 800}, {600, 165},
	}
	for _, tc := range cases {
		p, err := region1.Calculate(b, tc.tK, tc.pBar)
		if err != nil {
			t.Fatalf("region1.Calculate error: %v", err)
		}
		t2, err := TFromHP1(b, p.SpecificEnthalpy, tc.pBar)
		if err != nil {
			t.Fatalf("TFromHP1 error: %v", err)
		}
		chk.Scalar(t, "T from (h,p) region1", 0.025, t2, tc.tK)
	}
}

func TestTFromSP1Roundtrip(t *testing.T) {
	b := bundle.New()
	cases := []struct{ tK, pBar float64 }{
		{300, 30}, {500, 800},
	}
	for _, tc := range cases {
		p, err := region1.Calculate(b, tc.tK, tc.pBar)
		if err != nil {
			t.Fatalf("region1.Calculate error: %v", err)
		}
		t2, err := TFromSP1(b, p.SpecificEntropy, tc.pBar)
		if err != nil {
			t.Fatalf("TFromSP1 error: %v", err)
		}
		chk.Scalar(t, "T from (s,p) region1", 0.025, t2, tc.tK)
	}
}

func TestTFromHP2Roundtrip(t *testing.T) {
	b := bundle.New()
	cases := []struct{ tK, pBar float64 }{
		{300, 0.035}, // sub-region 2a
		{700, 300},   // sub-region 2b/2c, pressure above 40 bar
	}
	for _, tc := range cases {
		p, err := region2.Calculate(b, tc.tK, tc.pBar)
		if err != nil {
			t.Fatalf("region2.Calculate error: %v", err)
		}
		t2, err := TFromHP2(b, p.SpecificEnthalpy, tc.pBar)
		if err != nil {
			t.Fatalf("TFromHP2 error: %v", err)
		}
		chk.Scalar(t, "T from (h,p) region2", 0.025, t2, tc.tK)
	}
}

func TestTFromSP2Roundtrip(t *testing.T) {
	b := bundle.New()
	cases := []struct{ tK, pBar float64 }{
		{300, 0.035},
		{700, 300},
	}
	for _, tc := range cases {
		p, err := region2.Calculate(b, tc.tK, tc.pBar)
		if err != nil {
			t.Fatalf("region2.Calculate error: %v", err)
		}
		t2, err := TFromSP2(b, p.SpecificEntropy, tc.pBar)
		if err != nil {
			t.Fatalf("TFromSP2 error: %v", err)
		}
		chk.Scalar(t, "T from (s,p) region2", 0.025, t2, tc.tK)
	}
}

func TestSubFromHPBoundary(t *testing.T) {
	if got := SubFromHP(40, 2000); got != Sub2a {
		t.Fatalf("SubFromHP at/under 4 MPa should be Sub2a, got %v", got)
	}
	if got := SubFromHP(100, 2000); got == Sub2a {
		t.Fatalf("SubFromHP above 4 MPa should not be Sub2a, got %v", got)
	}
}

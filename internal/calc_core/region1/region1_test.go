package region1

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/vaporcore/if97/internal/calc_core/bundle"
)

// Reference values from IAPWS-IF97 Table 5.
func TestCalculateReferenceScenarios(t *testing.T) {
	b := bundle.New()

	cases := []struct {
		name    string
		tK, pB  float64
		v, h, s float64
	}{
		{"T=300K p=30bar", 300, 30, 1.00215168e-3, 115.331273, 0.392294792},
		{"T=300K p=800bar", 300, 800, 0.971180894e-3, 184.142828, 0.368563852},
		{"T=500K p=30bar", 500, 30, 1.20241800e-3, 975.542239, 2.58041912},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Calculate(b, tc.tK, tc.pB)
			if err != nil {
				t.Fatalf("Calculate(%g, %g) error: %v", tc.tK, tc.pB, err)
			}
			chk.Scalar(t, "v", 1e-6, p.SpecificVolume, tc.v)
			chk.Scalar(t, "h", 1e-5, p.SpecificEnthalpy, tc.h)
			chk.Scalar(t, "s", 1e-5, p.SpecificEntropy, tc.s)
		})
	}
}

func TestEvalSignFlipMatchesFiniteDifference(t *testing.T) {
	b := bundle.New()
	const d = 1e-7

	g, err := Eval(b, 400, 50, 1)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}

	plus, err := Eval(b, 400, 50+d*165.3, 0)
	if err != nil {
		t.Fatalf("Eval(+) error: %v", err)
	}
	minus, err := Eval(b, 400, 50-d*165.3, 0)
	if err != nil {
		t.Fatalf("Eval(-) error: %v", err)
	}
	fdGPi := (plus.G - minus.G) / (2 * d)
	chk.Scalar(t, "gpi finite-difference", 1e-5, g.GPi, fdGPi)
}

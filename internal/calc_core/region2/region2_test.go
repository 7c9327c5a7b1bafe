package region2

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/vaporcore/if97/internal/calc_core/bundle"
)

// Reference values from IAPWS-IF97 Table 15.
func TestCalculateReferenceScenarios(t *testing.T) {
	b := bundle.New()

	cases := []struct {
		name    string
		tK, pB  float64
		v, h, s float64
	}{
		{"T=300K p=0.035bar", 300, 0.035, 394.913866, 2549.9115, 7.9456432},
		{"T=700K p=0.035bar", 700, 0.035, 923.015898, 3335.6894, 10.174996},
		{"T=700K p=300bar", 700, 300, 0.0542946619, 2631.4947, 5.1671306},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Calculate(b, tc.tK, tc.pB)
			if err != nil {
				t.Fatalf("Calculate(%g, %g) error: %v", tc.tK, tc.pB, err)
			}
			chk.Scalar(t, "v", 1e-2, p.SpecificVolume, tc.v)
			chk.Scalar(t, "h", 1e-2, p.SpecificEnthalpy, tc.h)
			chk.Scalar(t, "s", 1e-2, p.SpecificEntropy, tc.s)
		})
	}
}

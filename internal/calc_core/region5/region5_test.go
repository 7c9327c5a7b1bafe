package region5

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/vaporcore/if97/internal/calc_core/bundle"
)

// Reference point from IAPWS-IF97 Table 41 (region 5): T=1500K, p=500bar.
func TestCalculateReferenceScenario(t *testing.T) {
	b := bundle.New()
	p, err := Calculate(b, 1500, 500)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	chk.Scalar(t, "v", 1e-4, p.SpecificVolume, 0.0115733607)
	chk.Scalar(t, "h", 1e-1, p.SpecificEnthalpy, 5219.76855)
}

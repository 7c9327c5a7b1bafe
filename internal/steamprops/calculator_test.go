package steamprops

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/vaporcore/if97/internal/calc_core/classify"
)

func newTestCalculator() *Calculator {
	return New(Defaults{DefaultT: 293.15, DefaultP: 1.01325})
}

func TestCalculateDispatchesRegions(t *testing.T) {
	calc := newTestCalculator()

	cases := []struct {
		name   string
		tK, pB float64
	}{
		{"region1", 300, 30},
		{"region2", 700, 1},
		{"region3", 650, 250},
		{"region5", 1500, 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := calc.Calculate(tc.tK, tc.pB); err != nil {
				t.Fatalf("Calculate(%g, %g) error: %v", tc.tK, tc.pB, err)
			}
		})
	}
}

func TestCalculateRejectsInvalidRegion(t *testing.T) {
	calc := newTestCalculator()
	if _, err := calc.Calculate(1500, 600); err == nil {
		t.Fatal("expected a parameter error for T=1500K p=600bar (above region 5's ceiling)")
	}
}

// HSD must agree with independently computed h, s, d from Calculate.
func TestHSDAgreesWithCalculate(t *testing.T) {
	calc := newTestCalculator()
	const tK, pB = 400.0, 50.0

	h, s, d, err := calc.HSD(tK, pB)
	if err != nil {
		t.Fatalf("HSD error: %v", err)
	}
	props, err := calc.Calculate(tK, pB)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	chk.Scalar(t, "h", 1e-9, h, props.SpecificEnthalpy)
	chk.Scalar(t, "s", 1e-9, s, props.SpecificEntropy)
	chk.Scalar(t, "d", 1e-9, d, props.Density)
}

// Two-phase properties must be linear in quality x.
func TestHSDAtQualityIsLinearInX(t *testing.T) {
	calc := newTestCalculator()
	const tK = 400.0

	hs, err := calc.SaturationEnthalpy(tK, 0)
	if err != nil {
		t.Fatalf("SaturationEnthalpy error: %v", err)
	}
	ss, err := calc.SaturationEntropy(hs.T, hs.P)
	if err != nil {
		t.Fatalf("SaturationEntropy error: %v", err)
	}
	ds, err := calc.SaturationDensity(hs.T, hs.P)
	if err != nil {
		t.Fatalf("SaturationDensity error: %v", err)
	}

	for _, x := range []float64{0.0, 0.25, 0.5, 0.75, 1.0} {
		h, s, d, err := calc.HSDAtQuality(tK, 0, x)
		if err != nil {
			t.Fatalf("HSDAtQuality(x=%g) error: %v", x, err)
		}
		wantH := hs.Liquid + (hs.Vapor-hs.Liquid)*x
		wantS := ss.Liquid + (ss.Vapor-ss.Liquid)*x
		wantD := ds.Liquid + (ds.Vapor-ds.Liquid)*x
		chk.Scalar(t, "h linearity", 1e-8, h, wantH)
		chk.Scalar(t, "s linearity", 1e-8, s, wantS)
		chk.Scalar(t, "d linearity", 1e-8, d, wantD)
	}
}

func TestSaturationAccuracyWarningThreshold(t *testing.T) {
	calc := newTestCalculator()

	below, err := calc.SaturationEnthalpy(600, 0)
	if err != nil {
		t.Fatalf("SaturationEnthalpy(600K) error: %v", err)
	}
	if below.Accuracy != nil {
		t.Fatalf("expected no accuracy warning at 600K, got %v", below.Accuracy)
	}

	above, err := calc.SaturationEnthalpy(640, 0)
	if err != nil {
		t.Fatalf("SaturationEnthalpy(640K) error: %v", err)
	}
	if above.Accuracy == nil {
		t.Fatal("expected an accuracy warning above 623.15K, got none")
	}
}

func TestSaturationRoundtripThroughCalculator(t *testing.T) {
	calc := newTestCalculator()
	const tK = 450.0

	p, err := calc.SaturationPressure(tK)
	if err != nil {
		t.Fatalf("SaturationPressure error: %v", err)
	}
	t2, err := calc.SaturationTemperature(p)
	if err != nil {
		t.Fatalf("SaturationTemperature error: %v", err)
	}
	chk.Scalar(t, "roundtrip", 1e-4, t2, tK)
}

func TestTFromHPAndTFromSPRoundtrip(t *testing.T) {
	calc := newTestCalculator()

	cases := []struct {
		name   string
		tK, pB float64
	}{
		{"region1", 350, 100},
		{"region2", 700, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			props, err := calc.Calculate(tc.tK, tc.pB)
			if err != nil {
				t.Fatalf("Calculate error: %v", err)
			}
			tFromH, err := calc.TFromHP(props.SpecificEnthalpy, tc.pB)
			if err != nil {
				t.Fatalf("TFromHP error: %v", err)
			}
			chk.Scalar(t, "T from (h,p)", 0.025, tFromH, tc.tK)

			tFromS, err := calc.TFromSP(props.SpecificEntropy, tc.pB)
			if err != nil {
				t.Fatalf("TFromSP error: %v", err)
			}
			chk.Scalar(t, "T from (s,p)", 0.025, tFromS, tc.tK)
		})
	}
}

// CalculateArray on a batch spanning four different regions must scatter
// each element's result back to exactly what the scalar Calculate path
// produces for that point, in the caller's original order.
func TestCalculateArrayHandlesMixedRegions(t *testing.T) {
	calc := newTestCalculator()

	tKs := []float64{300, 700, 650, 1500, 300}
	pBs := []float64{30, 1, 250, 500, 800}
	wantRegions := []classify.Region{classify.Region1, classify.Region2, classify.Region3, classify.Region5, classify.Region1}

	got, err := calc.CalculateArray(tKs, pBs)
	if err != nil {
		t.Fatalf("CalculateArray error: %v", err)
	}
	if len(got) != len(tKs) {
		t.Fatalf("CalculateArray returned %d elements, want %d", len(got), len(tKs))
	}

	for i := range tKs {
		want, err := calc.Calculate(tKs[i], pBs[i])
		if err != nil {
			t.Fatalf("Calculate(%g, %g) error: %v", tKs[i], pBs[i], err)
		}
		if got[i].Region != wantRegions[i] {
			t.Fatalf("element %d region = %v, want %v", i, got[i].Region, wantRegions[i])
		}
		if got[i] != want {
			t.Fatalf("element %d = %+v, want %+v", i, got[i], want)
		}
	}
}

func TestCalculateArraySizeOneMatchesScalar(t *testing.T) {
	calc := newTestCalculator()

	got, err := calc.CalculateArray([]float64{400}, []float64{50})
	if err != nil {
		t.Fatalf("CalculateArray error: %v", err)
	}
	want, err := calc.Calculate(400, 50)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("CalculateArray([400],[50]) = %+v, want [%+v]", got, want)
	}
}

func TestCalculateArrayRejectsMismatchedLengths(t *testing.T) {
	calc := newTestCalculator()
	if _, err := calc.CalculateArray([]float64{300, 400}, []float64{30}); err == nil {
		t.Fatal("expected an error for mismatched array lengths, got none")
	}
}

func TestHSDArrayAgreesWithHSD(t *testing.T) {
	calc := newTestCalculator()
	tKs := []float64{400, 700}
	pBs := []float64{50, 1}

	hs, ss, ds, err := calc.HSDArray(tKs, pBs)
	if err != nil {
		t.Fatalf("HSDArray error: %v", err)
	}
	for i := range tKs {
		h, s, d, err := calc.HSD(tKs[i], pBs[i])
		if err != nil {
			t.Fatalf("HSD(%g, %g) error: %v", tKs[i], pBs[i], err)
		}
		chk.Scalar(t, "h", 1e-9, hs[i], h)
		chk.Scalar(t, "s", 1e-9, ss[i], s)
		chk.Scalar(t, "d", 1e-9, ds[i], d)
	}
}

func TestSaturationPressureArrayAgreesWithScalar(t *testing.T) {
	calc := newTestCalculator()
	tKs := []float64{350, 450, 550}

	ps, err := calc.SaturationPressureArray(tKs)
	if err != nil {
		t.Fatalf("SaturationPressureArray error: %v", err)
	}
	for i, tK := range tKs {
		want, err := calc.SaturationPressure(tK)
		if err != nil {
			t.Fatalf("SaturationPressure(%g) error: %v", tK, err)
		}
		chk.Scalar(t, "ps", 1e-12, ps[i], want)
	}

	ts, err := calc.SaturationTemperatureArray(ps)
	if err != nil {
		t.Fatalf("SaturationTemperatureArray error: %v", err)
	}
	for i, p := range ps {
		want, err := calc.SaturationTemperature(p)
		if err != nil {
			t.Fatalf("SaturationTemperature(%g) error: %v", p, err)
		}
		chk.Scalar(t, "ts", 1e-12, ts[i], want)
	}
}

func TestCriticalAndTriplePoints(t *testing.T) {
	calc := newTestCalculator()
	tc, pc := calc.Critical()
	if math.Abs(tc-647.096) > 1e-6 || math.Abs(pc-220.64) > 1e-6 {
		t.Fatalf("Critical() = (%g, %g), want (647.096, 220.64)", tc, pc)
	}
	tt, pt := calc.Triple()
	if math.Abs(tt-273.16) > 1e-6 || math.Abs(pt-0.00611657) > 1e-9 {
		t.Fatalf("Triple() = (%g, %g), want (273.16, 0.00611657)", tt, pt)
	}
	if calc.MolarMass() != 18.015257 {
		t.Fatalf("MolarMass() = %g, want 18.015257", calc.MolarMass())
	}
}

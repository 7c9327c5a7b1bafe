// Package steamprops is the public façade over the IAPWS IF-97 region
// evaluators: given any two of {T, p, x}, it dispatches to the region
// whose domain the query falls in and returns the full property set.
// Every function here is a pure, stateless computation — safe to call
// concurrently from any number of goroutines, and safe to memoize outside
// this package if a caller wants to (the core itself never does).
package steamprops

import (
	"github.com/vaporcore/if97/internal/calc_core/backward"
	"github.com/vaporcore/if97/internal/calc_core/bounds"
	"github.com/vaporcore/if97/internal/calc_core/bundle"
	"github.com/vaporcore/if97/internal/calc_core/classify"
	"github.com/vaporcore/if97/internal/calc_core/errs"
	"github.com/vaporcore/if97/internal/calc_core/region1"
	"github.com/vaporcore/if97/internal/calc_core/region2"
	"github.com/vaporcore/if97/internal/calc_core/region3"
	"github.com/vaporcore/if97/internal/calc_core/region4"
	"github.com/vaporcore/if97/internal/calc_core/region5"
	"github.com/vaporcore/if97/internal/calc_core/validation"
)

// Properties is the full thermodynamic property set shared across all
// five regions. Not every caller needs every field, but IF-97's Gibbs and
// Helmholtz evaluators compute them together at negligible marginal cost
// once the region is known, so the façade always returns the full set.
type Properties struct {
	SpecificVolume                float64
	Density                       float64
	SpecificInternalEnergy        float64
	SpecificEntropy               float64
	SpecificEnthalpy              float64
	SpecificIsochoricHeatCapacity float64
	SpecificIsobaricHeatCapacity  float64
	SpeedOfSound                  float64
	Region                        classify.Region
}

// Defaults holds the fallback (T, p) a caller may configure once. Only
// DefaultP is read, and only by saturation queries that omit both inputs;
// the saturation temperature is then solved from it. A saturation query
// that omits one input resolves it from the saturation line instead, and
// DefaultT is not used by any query. This mirrors the role a host
// framework's configuration system would otherwise play; the core itself
// does not read any config file or environment variable.
type Defaults struct {
	DefaultT float64 // K
	DefaultP float64 // bar
}

// Calculator evaluates IF-97 properties against one fixed coefficient
// bundle. It holds no other state and every method is safe for concurrent
// use.
type Calculator struct {
	b *bundle.Bundle
	d Defaults
}

// New builds a Calculator from the standard IF-97 (1997, revised 2007)
// coefficient bundle.
func New(d Defaults) *Calculator {
	return &Calculator{b: bundle.New(), d: d}
}

// Critical returns the critical point (Tc in K, pc in bar).
func (c *Calculator) Critical() (tc, pc float64) { return c.b.Tc, c.b.Pc }

// Triple returns the triple point (Tt in K, pt in bar).
func (c *Calculator) Triple() (tt, pt float64) { return c.b.Tt, c.b.Pt }

// MolarMass returns water's molar mass in kg/kmol.
func (c *Calculator) MolarMass() float64 { return c.b.Mw }

// Calculate returns the full property set at temperature tK (K) and
// pressure pBar (bar), classifying the region automatically.
func (c *Calculator) Calculate(tK, pBar float64) (Properties, error) {
	if err := validation.TemperaturePressure(tK, pBar); err != nil {
		return Properties{}, err
	}
	r, err := classify.FromTP(c.b, tK, pBar)
	if err != nil {
		return Properties{}, err
	}
	switch r {
	case classify.Region1:
		p, err := region1.Calculate(c.b, tK, pBar)
		if err != nil {
			return Properties{}, err
		}
		return fromRegion1(p, r), nil
	case classify.Region2:
		p, err := region2.Calculate(c.b, tK, pBar)
		if err != nil {
			return Properties{}, err
		}
		return fromRegion2(p, r), nil
	case classify.Region3:
		p, err := region3.Calculate(c.b, tK, pBar)
		if err != nil {
			return Properties{}, err
		}
		return fromRegion3(p, r), nil
	case classify.Region5:
		p, err := region5.Calculate(c.b, tK, pBar)
		if err != nil {
			return Properties{}, err
		}
		return fromRegion5(p, r), nil
	default:
		return Properties{}, errs.Parameter("unsupported region %d", r)
	}
}

// CalculateArray is Calculate's batched counterpart: every (tKs[i],
// pBars[i]) pair is classified together via classify.FromTPArray, then
// partitioned into region-homogeneous batches — one pass per region
// instead of a per-element region switch — before results are scattered
// back into a single output slice in the caller's original order. This is
// the array-input path spec.md's façade (C7) and derived-scratch sections
// describe: "partition the input into region-homogeneous batches,
// evaluate each region's EOS once on its batch, and scatter." A length-1
// array is special-cased back to Calculate, per spec.md §9's guidance to
// collapse size-1 arrays to the scalar path at the façade boundary rather
// than pay masking/scattering overhead for one point.
func (c *Calculator) CalculateArray(tKs, pBars []float64) ([]Properties, error) {
	if len(tKs) != len(pBars) {
		return nil, errs.Parameter("steamprops: T and p arrays have mismatched lengths (%d vs %d)", len(tKs), len(pBars))
	}
	if len(tKs) == 1 {
		p, err := c.Calculate(tKs[0], pBars[0])
		if err != nil {
			return nil, err
		}
		return []Properties{p}, nil
	}

	for i := range tKs {
		if err := validation.TemperaturePressure(tKs[i], pBars[i]); err != nil {
			return nil, errs.Parameter("steamprops: element %d: %v", i, err)
		}
	}

	regions, masks, err := classify.FromTPArray(c.b, tKs, pBars)
	if err != nil {
		return nil, err
	}

	out := make([]Properties, len(tKs))

	for _, i := range masks.Region1 {
		p, err := region1.Calculate(c.b, tKs[i], pBars[i])
		if err != nil {
			return nil, err
		}
		out[i] = fromRegion1(p, regions[i])
	}
	for _, i := range masks.Region2 {
		p, err := region2.Calculate(c.b, tKs[i], pBars[i])
		if err != nil {
			return nil, err
		}
		out[i] = fromRegion2(p, regions[i])
	}
	for _, i := range masks.Region3 {
		p, err := region3.Calculate(c.b, tKs[i], pBars[i])
		if err != nil {
			return nil, err
		}
		out[i] = fromRegion3(p, regions[i])
	}
	for _, i := range masks.Region5 {
		p, err := region5.Calculate(c.b, tKs[i], pBars[i])
		if err != nil {
			return nil, err
		}
		out[i] = fromRegion5(p, regions[i])
	}

	return out, nil
}

func fromRegion1(p region1.Properties, r classify.Region) Properties {
	return Properties{
		SpecificVolume: p.SpecificVolume, Density: p.Density,
		SpecificInternalEnergy: p.SpecificInternalEnergy, SpecificEntropy: p.SpecificEntropy,
		SpecificEnthalpy: p.SpecificEnthalpy, SpecificIsochoricHeatCapacity: p.SpecificIsochoricHeatCapacity,
		SpecificIsobaricHeatCapacity: p.SpecificIsobaricHeatCapacity, SpeedOfSound: p.SpeedOfSound, Region: r,
	}
}

func fromRegion2(p region2.Properties, r classify.Region) Properties {
	return Properties{
		SpecificVolume: p.SpecificVolume, Density: p.Density,
		SpecificInternalEnergy: p.SpecificInternalEnergy, SpecificEntropy: p.SpecificEntropy,
		SpecificEnthalpy: p.SpecificEnthalpy, SpecificIsochoricHeatCapacity: p.SpecificIsochoricHeatCapacity,
		SpecificIsobaricHeatCapacity: p.SpecificIsobaricHeatCapacity, SpeedOfSound: p.SpeedOfSound, Region: r,
	}
}

func fromRegion3(p region3.Properties, r classify.Region) Properties {
	return Properties{
		SpecificVolume: 1 / p.Density, Density: p.Density,
		SpecificInternalEnergy: p.SpecificInternalEnergy, SpecificEntropy: p.SpecificEntropy,
		SpecificEnthalpy: p.SpecificEnthalpy, SpecificIsochoricHeatCapacity: p.SpecificIsochoricHeatCapacity,
		SpecificIsobaricHeatCapacity: p.SpecificIsobaricHeatCapacity, SpeedOfSound: p.SpeedOfSound, Region: r,
	}
}

func fromRegion5(p region5.Properties, r classify.Region) Properties {
	return Properties{
		SpecificVolume: p.SpecificVolume, Density: p.Density,
		SpecificInternalEnergy: p.SpecificInternalEnergy, SpecificEntropy: p.SpecificEntropy,
		SpecificEnthalpy: p.SpecificEnthalpy, SpecificIsochoricHeatCapacity: p.SpecificIsochoricHeatCapacity,
		SpecificIsobaricHeatCapacity: p.SpecificIsobaricHeatCapacity, SpeedOfSound: p.SpeedOfSound, Region: r,
	}
}

// SaturationPressure returns the saturation pressure (bar) at temperature
// tK (K). tK must lie in [Tt, Tc].
func (c *Calculator) SaturationPressure(tK float64) (float64, error) {
	if err := validation.SaturationTemperature(c.b, tK); err != nil {
		return 0, err
	}
	return region4.SaturationPressure(c.b, tK)
}

// SaturationTemperature returns the saturation temperature (K) at pressure
// pBar (bar). pBar must lie in [Pt, Pc].
func (c *Calculator) SaturationTemperature(pBar float64) (float64, error) {
	if err := validation.SaturationPressure(c.b, pBar); err != nil {
		return 0, err
	}
	return region4.SaturationTemperature(c.b, pBar)
}

// SaturationPressureArray is SaturationPressure's rank-1 array form: each
// tKs[i] is validated and evaluated independently (the saturation curve
// has no region split to batch over, so there's nothing to partition —
// every element runs the same closed-form ps(T)), per spec.md §6's
// "scalar or rank-1 array" contract for every exposed function.
func (c *Calculator) SaturationPressureArray(tKs []float64) ([]float64, error) {
	out := make([]float64, len(tKs))
	for i, tK := range tKs {
		p, err := c.SaturationPressure(tK)
		if err != nil {
			return nil, errs.Parameter("steamprops: element %d: %v", i, err)
		}
		out[i] = p
	}
	return out, nil
}

// SaturationTemperatureArray is SaturationTemperature's rank-1 array form,
// mirroring SaturationPressureArray.
func (c *Calculator) SaturationTemperatureArray(pBars []float64) ([]float64, error) {
	out := make([]float64, len(pBars))
	for i, pBar := range pBars {
		t, err := c.SaturationTemperature(pBar)
		if err != nil {
			return nil, errs.Parameter("steamprops: element %d: %v", i, err)
		}
		out[i] = t
	}
	return out, nil
}

// Saturation is one saturated-liquid/saturated-vapor property pair, plus
// the (T, p) state they were evaluated at and a non-fatal accuracy
// warning for queries above 623.15 K (IAPWS IF-97 itself documents
// reduced precision on the saturation line above that temperature).
type Saturation struct {
	T, P     float64
	Liquid   float64
	Vapor    float64
	Accuracy *errs.AccuracyWarning
}

func (c *Calculator) resolveSaturationState(tK, pBar *float64) error {
	switch {
	case *tK == 0 && *pBar == 0:
		*pBar = c.d.DefaultP
		fallthrough
	case *tK == 0:
		if err := validation.SaturationPressure(c.b, *pBar); err != nil {
			return err
		}
		t, err := region4.SaturationTemperature(c.b, *pBar)
		if err != nil {
			return err
		}
		*tK = t
	case *pBar == 0:
		if err := validation.SaturationTemperature(c.b, *tK); err != nil {
			return err
		}
		p, err := region4.SaturationPressure(c.b, *tK)
		if err != nil {
			return err
		}
		*pBar = p
	}
	return nil
}

func accuracyFor(tK float64) *errs.AccuracyWarning {
	if tK > 623.15 {
		return errs.ReducedAccuracy()
	}
	return nil
}

// SaturationEnthalpy returns (hL, hV) at the saturation state implied by
// tK, pBar, or both (pass 0 for whichever is unknown; passing both skips
// resolving the saturation line and assumes the caller already matched
// them via SaturationPressure/SaturationTemperature).
func (c *Calculator) SaturationEnthalpy(tK, pBar float64) (Saturation, error) {
	if err := c.resolveSaturationState(&tK, &pBar); err != nil {
		return Saturation{}, err
	}
	g1, err := region1.Eval(c.b, tK, pBar, 1)
	if err != nil {
		return Saturation{}, err
	}
	g2, err := region2.Eval(c.b, tK, pBar, 1)
	if err != nil {
		return Saturation{}, err
	}
	hL := c.b.R * tK * g1.Tau * g1.GTau
	hV := c.b.R * tK * g2.Tau * g2.GTau
	return Saturation{T: tK, P: pBar, Liquid: hL, Vapor: hV, Accuracy: accuracyFor(tK)}, nil
}

// SaturationInternalEnergy returns (eL, eV), following SaturationEnthalpy's
// argument convention.
func (c *Calculator) SaturationInternalEnergy(tK, pBar float64) (Saturation, error) {
	if err := c.resolveSaturationState(&tK, &pBar); err != nil {
		return Saturation{}, err
	}
	g1, err := region1.Eval(c.b, tK, pBar, 1)
	if err != nil {
		return Saturation{}, err
	}
	g2, err := region2.Eval(c.b, tK, pBar, 1)
	if err != nil {
		return Saturation{}, err
	}
	eL := tK * c.b.R * (g1.Tau*g1.GTau - g1.Pi*g1.GPi)
	eV := tK * c.b.R * (g2.Tau*g2.GTau - g2.Pi*g2.GPi)
	return Saturation{T: tK, P: pBar, Liquid: eL, Vapor: eV, Accuracy: accuracyFor(tK)}, nil
}

// SaturationDensity returns (dL, dV), following SaturationEnthalpy's
// argument convention.
func (c *Calculator) SaturationDensity(tK, pBar float64) (Saturation, error) {
	if err := c.resolveSaturationState(&tK, &pBar); err != nil {
		return Saturation{}, err
	}
	g1, err := region1.Eval(c.b, tK, pBar, 1)
	if err != nil {
		return Saturation{}, err
	}
	g2, err := region2.Eval(c.b, tK, pBar, 1)
	if err != nil {
		return Saturation{}, err
	}
	dL := pBar * 100 / (c.b.R * tK * g1.Pi * g1.GPi)
	dV := pBar * 100 / (c.b.R * tK * g2.Pi * g2.GPi)
	return Saturation{T: tK, P: pBar, Liquid: dL, Vapor: dV, Accuracy: accuracyFor(tK)}, nil
}

// SaturationEntropy returns (sL, sV), following SaturationEnthalpy's
// argument convention.
func (c *Calculator) SaturationEntropy(tK, pBar float64) (Saturation, error) {
	if err := c.resolveSaturationState(&tK, &pBar); err != nil {
		return Saturation{}, err
	}
	g1, err := region1.Eval(c.b, tK, pBar, 1)
	if err != nil {
		return Saturation{}, err
	}
	g2, err := region2.Eval(c.b, tK, pBar, 1)
	if err != nil {
		return Saturation{}, err
	}
	sL := c.b.R * (g1.Tau*g1.GTau - g1.G)
	sV := c.b.R * (g2.Tau*g2.GTau - g2.G)
	return Saturation{T: tK, P: pBar, Liquid: sL, Vapor: sV, Accuracy: accuracyFor(tK)}, nil
}

// HSD bundles (enthalpy, entropy, density) at a single-phase (T, p) point
// in one region-dispatch pass, saving the redundant polynomial evaluation
// a caller would pay evaluating h, s, and d separately.
func (c *Calculator) HSD(tK, pBar float64) (h, s, d float64, err error) {
	p, err := c.Calculate(tK, pBar)
	if err != nil {
		return 0, 0, 0, err
	}
	return p.SpecificEnthalpy, p.SpecificEntropy, p.Density, nil
}

// HSDArray is HSD's batched counterpart: it runs the same
// (enthalpy, entropy, density) bundle over an array of (T, p) points via
// CalculateArray, so a mixed-region input batch still evaluates each
// region's EOS only once.
func (c *Calculator) HSDArray(tKs, pBars []float64) (hs, ss, ds []float64, err error) {
	props, err := c.CalculateArray(tKs, pBars)
	if err != nil {
		return nil, nil, nil, err
	}
	hs = make([]float64, len(props))
	ss = make([]float64, len(props))
	ds = make([]float64, len(props))
	for i, p := range props {
		hs[i] = p.SpecificEnthalpy
		ss[i] = p.SpecificEntropy
		ds[i] = p.Density
	}
	return hs, ss, ds, nil
}

// HSDAtQuality returns the two-phase (enthalpy, entropy, density) at
// saturation state (tK, pBar) and vapor quality x in [0, 1], linearly
// interpolating between the saturated-liquid and saturated-vapor values.
func (c *Calculator) HSDAtQuality(tK, pBar, x float64) (h, s, d float64, err error) {
	if err := validation.Quality(x); err != nil {
		return 0, 0, 0, err
	}
	hs, err := c.SaturationEnthalpy(tK, pBar)
	if err != nil {
		return 0, 0, 0, err
	}
	ss, err := c.SaturationEntropy(hs.T, hs.P)
	if err != nil {
		return 0, 0, 0, err
	}
	ds, err := c.SaturationDensity(hs.T, hs.P)
	if err != nil {
		return 0, 0, 0, err
	}
	h = hs.Liquid + (hs.Vapor-hs.Liquid)*x
	s = ss.Liquid + (ss.Vapor-ss.Liquid)*x
	d = ds.Liquid + (ds.Vapor-ds.Liquid)*x
	return h, s, d, nil
}

// boundaryEnthalpies returns the region 1/3 and 2/3 boundary enthalpies at
// pressure pBar: the enthalpy region 1 reaches at exactly 623.15 K, and
// the enthalpy region 2 reaches at the B23 boundary temperature. A target
// enthalpy between these two values at the same pressure can only be
// region 3 — IF-97 has no closed-form backward equation there, so the
// caller falls back to region3's Newton solve.
func (c *Calculator) boundaryEnthalpies(pBar float64) (h13, h23 float64, err error) {
	p1, err := region1.Calculate(c.b, 623.15, pBar)
	if err != nil {
		return 0, 0, err
	}
	t23 := bounds.B23Temperature(c.b, pBar)
	p2, err := region2.Calculate(c.b, t23, pBar)
	if err != nil {
		return 0, 0, err
	}
	return p1.SpecificEnthalpy, p2.SpecificEnthalpy, nil
}

func (c *Calculator) boundaryEntropies(pBar float64) (s13, s23 float64, err error) {
	p1, err := region1.Calculate(c.b, 623.15, pBar)
	if err != nil {
		return 0, 0, err
	}
	t23 := bounds.B23Temperature(c.b, pBar)
	p2, err := region2.Calculate(c.b, t23, pBar)
	if err != nil {
		return 0, 0, err
	}
	return p1.SpecificEntropy, p2.SpecificEntropy, nil
}

// TFromHP returns temperature (K) given specific enthalpy h (kJ/kg) and
// pressure pBar (bar), dispatching between the region 1/2 closed-form
// backward correlations and region 3's Newton iteration.
func (c *Calculator) TFromHP(h, pBar float64) (float64, error) {
	pSat623, err := region4.SaturationPressure(c.b, 623.15)
	if err != nil {
		return 0, err
	}

	if pBar <= pSat623 {
		ts, err := region4.SaturationTemperature(c.b, pBar)
		if err != nil {
			return 0, err
		}
		sat, err := c.SaturationEnthalpy(ts, pBar)
		if err != nil {
			return 0, err
		}
		switch {
		case h <= sat.Liquid:
			return backward.TFromHP1(c.b, h, pBar)
		case h >= sat.Vapor:
			return backward.TFromHP2(c.b, h, pBar)
		default:
			return ts, nil // two-phase: T is the saturation temperature regardless of quality
		}
	}

	h13, h23, err := c.boundaryEnthalpies(pBar)
	if err != nil {
		return 0, err
	}
	switch {
	case h <= h13:
		return backward.TFromHP1(c.b, h, pBar)
	case h >= h23:
		return backward.TFromHP2(c.b, h, pBar)
	default:
		t23 := bounds.B23Temperature(c.b, pBar)
		tInit := 0.5 * (623.15 + t23)
		t, err := region3.TFromHP(c.b, h, pBar, tInit, 500)
		if err != nil {
			if ce, ok := err.(*errs.ConvergenceError); ok && ce.Hint == "" {
				ce.Hint = "check that (h,p) actually falls in region 3 before retrying"
			}
			return 0, err
		}
		return t, nil
	}
}

// TFromSP returns temperature (K) given specific entropy s (kJ/(kg*K)) and
// pressure pBar (bar), mirroring TFromHP.
func (c *Calculator) TFromSP(s, pBar float64) (float64, error) {
	pSat623, err := region4.SaturationPressure(c.b, 623.15)
	if err != nil {
		return 0, err
	}

	if pBar <= pSat623 {
		ts, err := region4.SaturationTemperature(c.b, pBar)
		if err != nil {
			return 0, err
		}
		sat, err := c.SaturationEntropy(ts, pBar)
		if err != nil {
			return 0, err
		}
		switch {
		case s <= sat.Liquid:
			return backward.TFromSP1(c.b, s, pBar)
		case s >= sat.Vapor:
			return backward.TFromSP2(c.b, s, pBar)
		default:
			return ts, nil
		}
	}

	s13, s23, err := c.boundaryEntropies(pBar)
	if err != nil {
		return 0, err
	}
	switch {
	case s <= s13:
		return backward.TFromSP1(c.b, s, pBar)
	case s >= s23:
		return backward.TFromSP2(c.b, s, pBar)
	default:
		t23 := bounds.B23Temperature(c.b, pBar)
		tInit := 0.5 * (623.15 + t23)
		t, err := region3.TFromSP(c.b, s, pBar, tInit, 500)
		if err != nil {
			if ce, ok := err.(*errs.ConvergenceError); ok && ce.Hint == "" {
				ce.Hint = "check that (s,p) actually falls in region 3 before retrying"
			}
			return 0, err
		}
		return t, nil
	}
}

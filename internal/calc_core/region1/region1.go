// Package region1 evaluates IAPWS IF-97 region 1: subcooled water and
// compressed liquid, 273.15 K <= T <= 623.15 K with p from the saturation
// pressure up to 1000 bar. The fundamental equation is the dimensionless Gibbs free
// energy gamma(pi, tau).
package region1

import (
	"math"

	"github.com/vaporcore/if97/internal/calc_core/bundle"
	"github.com/vaporcore/if97/internal/calc_core/errs"
	"github.com/vaporcore/if97/internal/calc_core/poly"
)

// Gibbs holds the dimensionless Gibbs free energy and its scaled partial
// derivatives at a given (T, p), along with the reduced coordinates pi and
// tau the caller will usually need again to convert to dimensional
// properties.
type Gibbs struct {
	Pi, Tau                      float64
	G, GPi, GTau, GPiPi, GPiTau, GTauTau float64
}

// Eval computes the region 1 Gibbs free energy and derivatives at
// temperature tK (K) and pressure pBar (bar), to the given poly.Order.
func Eval(b *bundle.Bundle, tK, pBar float64, order poly.Order) (Gibbs, error) {
	tau := 1386.0 / tK
	pi := pBar / 165.3

	g, gp, gt, gpp, gpt, gtt, err := poly.Eval(7.1-pi, tau-1.222, b.R1, order)
	if err != nil {
		return Gibbs{}, errs.DataCorruption("region1: %v", err)
	}

	// gp came out of poly.Eval differentiated with respect to (7.1-pi), so it
	// carries a sign flip relative to d/dpi; gpp's double flip cancels,
	// but gpt picks up a single flip same as gp.
	return Gibbs{
		Pi: pi, Tau: tau,
		G: g, GPi: -gp, GTau: gt,
		GPiPi: gpp, GPiTau: -gpt, GTauTau: gtt,
	}, nil
}

// Properties is the set of dimensional thermodynamic properties derived
// from the region 1 Gibbs free energy.
type Properties struct {
	SpecificVolume                float64
	Density                       float64
	SpecificInternalEnergy        float64
	SpecificEntropy               float64
	SpecificEnthalpy              float64
	SpecificIsochoricHeatCapacity float64
	SpecificIsobaricHeatCapacity  float64
	SpeedOfSound                  float64
}

// Calculate evaluates the full region 1 property set at (tK, pBar).
func Calculate(b *bundle.Bundle, tK, pBar float64) (Properties, error) {
	g, err := Eval(b, tK, pBar, poly.OrderHessian)
	if err != nil {
		return Properties{}, err
	}
	r := b.R
	pi, tau := g.Pi, g.Tau

	v := pi * g.GPi * r * tK / (pBar * 100)
	if !isFinite(v) || v <= 0 {
		return Properties{}, errs.DataCorruption("region1: non-physical specific volume at T=%gK p=%gbar", tK, pBar)
	}

	h := r * tK * tau * g.GTau
	s := r * (tau*g.GTau - g.G)
	u := h - pBar*100*v

	cp := -r * tau * tau * g.GTauTau
	gpgpt := g.GPi - tau*g.GPiTau
	cv := cp + r*(gpgpt*gpgpt)/g.GPiPi

	w2 := r * tK * g.GPi * g.GPi / (gpgpt*gpgpt/(tau*tau*g.GTauTau) - g.GPiPi)
	if w2 < 0 {
		return Properties{}, errs.DataCorruption("region1: negative speed-of-sound radicand at T=%gK p=%gbar", tK, pBar)
	}

	return Properties{
		SpecificVolume:                v,
		Density:                       1 / v,
		SpecificInternalEnergy:        u,
		SpecificEntropy:               s,
		SpecificEnthalpy:              h,
		SpecificIsochoricHeatCapacity: cv,
		SpecificIsobaricHeatCapacity:  cp,
		SpeedOfSound:                  math.Sqrt(w2 * 1000), // kJ/kg -> m^2/s^2
	}, nil
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

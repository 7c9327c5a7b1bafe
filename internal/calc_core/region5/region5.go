// Package region5 evaluates IAPWS IF-97 region 5: high-temperature steam,
// 1073.15 K < T <= 2273.15 K at pressures up to 500 bar. Structurally this
// is the same ideal-plus-residual Gibbs energy split as region 2, just
// with a different ideal-gas term list and no sub-region split.
package region5

import (
	"math"

	"github.com/vaporcore/if97/internal/calc_core/bundle"
	"github.com/vaporcore/if97/internal/calc_core/errs"
	"github.com/vaporcore/if97/internal/calc_core/poly"
)

// Gibbs holds the dimensionless Gibbs free energy and its scaled partial
// derivatives at a given (T, p).
type Gibbs struct {
	Pi, Tau                              float64
	G, GPi, GTau, GPiPi, GPiTau, GTauTau float64
}

// Eval computes the region 5 Gibbs free energy and derivatives at
// temperature tK (K) and pressure pBar (bar).
func Eval(b *bundle.Bundle, tK, pBar float64, order poly.Order) (Gibbs, error) {
	tau := 1000.0 / tK
	pi := pBar / 10.0

	g, gp, gt, gpp, gpt, gtt, err := poly.Eval(pi, tau, b.R5o, order)
	if err != nil {
		return Gibbs{}, errs.DataCorruption("region5: ideal part: %v", err)
	}
	gr, grp, grt, grpp, grpt, grtt, err := poly.Eval(pi, tau, b.R5r, order)
	if err != nil {
		return Gibbs{}, errs.DataCorruption("region5: residual part: %v", err)
	}

	g += gr + math.Log(pi)
	if order > poly.OrderValue {
		gp += grp + 1/pi
		gt += grt
	}
	if order > poly.OrderGradient {
		gpp += grpp - 1/(pi*pi)
		gpt += grpt
		gtt += grtt
	}

	return Gibbs{
		Pi: pi, Tau: tau,
		G: g, GPi: gp, GTau: gt,
		GPiPi: gpp, GPiTau: gpt, GTauTau: gtt,
	}, nil
}

// Properties is the dimensional thermodynamic property set region 5
// produces.
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

// Calculate evaluates the full region 5 property set at (tK, pBar).
func Calculate(b *bundle.Bundle, tK, pBar float64) (Properties, error) {
	g, err := Eval(b, tK, pBar, poly.OrderHessian)
	if err != nil {
		return Properties{}, err
	}
	r := b.R
	pi, tau := g.Pi, g.Tau

	v := pi * g.GPi * r * tK / (pBar * 100)
	if !isFinite(v) || v <= 0 {
		return Properties{}, errs.DataCorruption("region5: non-physical specific volume at T=%gK p=%gbar", tK, pBar)
	}

	h := r * tK * tau * g.GTau
	s := r * (tau*g.GTau - g.G)
	u := h - pBar*100*v

	cp := -r * tau * tau * g.GTauTau

	num := 1 + pi*g.GPi - tau*pi*g.GPiTau
	cv := -r * (num*num/(1-pi*pi*g.GPiPi) + tau*tau*g.GTauTau)

	numerator := 1 + 2*pi*g.GPi + pi*pi*g.GPi*g.GPi
	bracket := 1 + pi*g.GPi - tau*pi*g.GPiTau
	denominator := (1 - pi*pi*g.GPiPi) + bracket*bracket/(tau*tau*g.GTauTau)
	w2 := r * tK * numerator / denominator
	if w2 < 0 {
		return Properties{}, errs.DataCorruption("region5: negative speed-of-sound radicand at T=%gK p=%gbar", tK, pBar)
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

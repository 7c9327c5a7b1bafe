// Package region3 evaluates IAPWS IF-97 region 3: the near-critical
// region, 623.15 K <= T with pressure at or above the region 2/3 boundary. IF-97
// gives no closed form here — the fundamental equation is the
// dimensionless Helmholtz free energy phi(delta, tau), and every property
// that needs a particular (T, p) or (h, p)/(s, p) pair requires a Newton
// iteration to find the matching reduced density delta.
//
// The 2x2 linear solves below use Cramer's rule inline rather than a
// linear-algebra dependency: two equations, two unknowns, computed once
// per Newton step, is exactly the case a dependency would be overkill for.
package region3

import (
	"math"

	"github.com/vaporcore/if97/internal/calc_core/bundle"
	"github.com/vaporcore/if97/internal/calc_core/errs"
	"github.com/vaporcore/if97/internal/calc_core/poly"
)

const (
	maxIter = 30
	epsilon = 1e-6
)

// Helmholtz holds the dimensionless Helmholtz free energy and its scaled
// partial derivatives at a given (delta, tau), along with those reduced
// coordinates.
type Helmholtz struct {
	Delta, Tau                          float64
	F, FDelta, FTau, FDD, FDT, FTT float64
}

func helmholtz(b *bundle.Bundle, delta, tau float64, order poly.Order) (Helmholtz, error) {
	f, fd, ft, fdd, fdt, ftt, err := poly.Eval(delta, tau, b.R3, order)
	if err != nil {
		return Helmholtz{}, errs.DataCorruption("region3: %v", err)
	}
	a := b.R3Ln
	f += a * math.Log(delta)
	dln := a / delta
	fd += dln
	fdd -= dln / delta
	return Helmholtz{Delta: delta, Tau: tau, F: f, FDelta: fd, FTau: ft, FDD: fdd, FDT: fdt, FTT: ftt}, nil
}

// Density solves for the reduced density (delta) matching temperature tK
// and pressure pBar, starting the Newton iteration from an initial guess
// density of 500 kg/m^3, which covers the region 3 domain in practice.
func Density(b *bundle.Bundle, tK, pBar float64) (Helmholtz, error) {
	r, dc, tc := b.R, b.Dc, b.Tc

	pp := pBar * 1e2 / (dc * r * tK)
	tau := tc / tK
	delta := 500.0 / dc

	for i := 0; i < maxIter; i++ {
		h, err := helmholtz(b, delta, tau, poly.OrderHessian)
		if err != nil {
			return Helmholtz{}, err
		}
		ptest := delta*delta*h.FDelta - pp
		if math.Abs(ptest) < epsilon*pp {
			return h, nil
		}
		dpdDelta := (2*h.FDelta + delta*h.FDD) * delta
		delta -= ptest / dpdDelta
		if delta <= 0 {
			return Helmholtz{}, errs.Convergence("", "region3: density iteration left the physical domain at T=%gK p=%gbar", tK, pBar)
		}
	}
	return Helmholtz{}, errs.Convergence("", "region3: density solve did not converge at T=%gK p=%gbar", tK, pBar)
}

// solve2x2 returns x such that [[a11,a12],[a21,a22]]*x = [b1,b2], via
// Cramer's rule.
func solve2x2(a11, a12, a21, a22, b1, b2 float64) (x1, x2 float64, ok bool) {
	det := a11*a22 - a12*a21
	if det == 0 {
		return 0, 0, false
	}
	x1 = (b1*a22 - a12*b2) / det
	x2 = (a11*b2 - b1*a21) / det
	return x1, x2, true
}

// TFromHP solves for temperature given specific enthalpy h (kJ/kg) and
// pressure pBar (bar), starting Newton iteration from (tInit, deltaInit).
// The caller is responsible for establishing that (h, p) falls in region
// 3 (by comparing against the region 1/3 and 2/3 boundary enthalpies at p) and for
// choosing a reasonable tInit/deltaInit — region 3 has no closed-form
// backward equation, unlike regions 1 and 2.
func TFromHP(b *bundle.Bundle, h, pBar, tInit, deltaInit float64) (float64, error) {
	r, dc, tc := b.R, b.Dc, b.Tc

	pp := pBar * 1e2 / (dc * r * tc)
	hh := h / (r * tc)
	delta := deltaInit / dc
	tau := tc / tInit

	for i := 0; i < maxIter; i++ {
		hm, err := helmholtz(b, delta, tau, poly.OrderHessian)
		if err != nil {
			return 0, err
		}
		ptest := delta*delta*hm.FDelta/tau - pp
		htest := delta*hm.FDelta/tau + hm.FTau - hh
		if math.Abs(ptest) < epsilon*pp && math.Abs(htest) < epsilon*hh {
			return tc / tau, nil
		}
		dpdDelta := delta / tau * (2*hm.FDelta + delta*hm.FDD)
		dpdTau := delta * delta / tau * (hm.FDT - hm.FDelta/tau)
		dhdDelta := hm.FDT + (hm.FDelta+delta*hm.FDD)/tau
		dhdTau := hm.FTT + delta/tau*(hm.FDT-hm.FDelta/tau)

		dDelta, dTau, ok := solve2x2(dpdDelta, dpdTau, dhdDelta, dhdTau, -ptest, -htest)
		if !ok {
			return 0, errs.Convergence("region 3 (h,p) Newton step singular; Jacobian degenerate",
				"region3: TFromHP failed at h=%g p=%gbar", h, pBar)
		}
		delta += dDelta
		tau += dTau
		if delta <= 0 || tau <= 0 {
			return 0, errs.Convergence("iterate left the physical domain; initial guess may be in the wrong region",
				"region3: TFromHP failed at h=%g p=%gbar", h, pBar)
		}
	}
	return 0, errs.Convergence("exceeded iteration budget; try a closer initial guess",
		"region3: TFromHP did not converge at h=%g p=%gbar", h, pBar)
}

// TFromSP solves for temperature given specific entropy s (kJ/(kg*K)) and
// pressure pBar (bar), mirroring TFromHP with the entropy residual in
// place of the enthalpy residual.
func TFromSP(b *bundle.Bundle, s, pBar, tInit, deltaInit float64) (float64, error) {
	r, dc, tc := b.R, b.Dc, b.Tc

	pp := pBar * 1e2 / (dc * r * tc)
	ss := s / r
	delta := deltaInit / dc
	tau := tc / tInit

	for i := 0; i < maxIter; i++ {
		hm, err := helmholtz(b, delta, tau, poly.OrderHessian)
		if err != nil {
			return 0, err
		}
		ptest := delta*delta*hm.FDelta/tau - pp
		stest := tau*hm.FTau - hm.F - ss
		if math.Abs(ptest) < epsilon*pp && math.Abs(stest) < epsilon*ss {
			return tc / tau, nil
		}
		dpdDelta := delta / tau * (2*hm.FDelta + delta*hm.FDD)
		dpdTau := delta * delta / tau * (hm.FDT - hm.FDelta/tau)
		dsdDelta := tau*hm.FDT - hm.FDelta
		dsdTau := tau * hm.FTT

		dDelta, dTau, ok := solve2x2(dpdDelta, dpdTau, dsdDelta, dsdTau, -ptest, -stest)
		if !ok {
			return 0, errs.Convergence("region 3 (s,p) Newton step singular; Jacobian degenerate",
				"region3: TFromSP failed at s=%g p=%gbar", s, pBar)
		}
		delta += dDelta
		tau += dTau
		if delta <= 0 || tau <= 0 {
			return 0, errs.Convergence("iterate left the physical domain; initial guess may be in the wrong region",
				"region3: TFromSP failed at s=%g p=%gbar", s, pBar)
		}
	}
	return 0, errs.Convergence("exceeded iteration budget; try a closer initial guess",
		"region3: TFromSP did not converge at s=%g p=%gbar", s, pBar)
}

// Properties is the dimensional thermodynamic property set region 3
// produces.
type Properties struct {
	Density                       float64
	SpecificInternalEnergy        float64
	SpecificEntropy               float64
	SpecificEnthalpy              float64
	SpecificIsochoricHeatCapacity float64
	SpecificIsobaricHeatCapacity  float64
	SpeedOfSound                  float64
}

// Calculate evaluates the full region 3 property set at (tK, pBar) by
// first solving for the matching reduced density.
func Calculate(b *bundle.Bundle, tK, pBar float64) (Properties, error) {
	hm, err := Density(b, tK, pBar)
	if err != nil {
		return Properties{}, err
	}
	r, dc := b.R, b.Dc
	delta, tau := hm.Delta, hm.Tau

	d := dc * delta
	h := r * tK * (delta*hm.FDelta + tau*hm.FTau)
	s := r * (tau*hm.FTau - hm.F)
	u := r * tK * tau * hm.FTau

	cv := -r * tau * tau * hm.FTT

	bracket := delta*hm.FDelta - delta*tau*hm.FDT
	denomCoeff := 2*delta*hm.FDelta + delta*delta*hm.FDD
	cp := cv + r*bracket*bracket/denomCoeff

	w2 := r * tK * (denomCoeff - bracket*bracket/(tau*tau*hm.FTT))
	if w2 < 0 {
		return Properties{}, errs.DataCorruption("region3: negative speed-of-sound radicand at T=%gK p=%gbar", tK, pBar)
	}

	return Properties{
		Density:                       d,
		SpecificInternalEnergy:        u,
		SpecificEntropy:               s,
		SpecificEnthalpy:              h,
		SpecificIsochoricHeatCapacity: cv,
		SpecificIsobaricHeatCapacity:  cp,
		SpeedOfSound:                  math.Sqrt(w2 * 1000), // kJ/kg -> m^2/s^2
	}, nil
}

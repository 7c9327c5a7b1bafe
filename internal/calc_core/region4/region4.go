// Package region4 evaluates IAPWS IF-97 region 4: the liquid-vapor
// saturation line. The correlation is a quadratic in disguise — both
// directions (pressure from temperature, temperature from pressure) solve
// the same underlying relation for a different unknown.
package region4

import (
	"math"

	"github.com/vaporcore/if97/internal/calc_core/bundle"
	"github.com/vaporcore/if97/internal/calc_core/errs"
)

// SaturationPressure returns the saturation pressure (bar) at temperature
// tK (K). tK must lie within [Tt, Tc]; callers are expected to have
// checked this already (see validation.SaturationTemperature) so
// this only returns an error for the numerical edge case of a degenerate
// radicand.
func SaturationPressure(b *bundle.Bundle, tK float64) (float64, error) {
	n := b.R4
	theta := tK + n[8]/(tK-n[9])

	a := (theta+n[0])*theta + n[1]
	bb := (n[2]*theta+n[3])*theta + n[4]
	c := (n[5]*theta+n[6])*theta + n[7]

	disc := bb*bb - 4*a*c
	if disc < 0 {
		return 0, errs.DataCorruption("region4: negative radicand solving saturation pressure at T=%gK", tK)
	}
	pMPa := math.Pow(2*c/(-bb+math.Sqrt(disc)), 4)
	return pMPa * 10, nil // MPa -> bar
}

// SaturationTemperature returns the saturation temperature (K) at pressure
// pBar (bar). pBar must lie within [Pt, Pc].
func SaturationTemperature(b *bundle.Bundle, pBar float64) (float64, error) {
	n := b.R4
	beta := math.Pow(pBar/10, 0.25) // bar -> MPa, then ^0.25

	a := (beta+n[2])*beta + n[5]
	bb := (n[0]*beta+n[3])*beta + n[6]
	c := (n[1]*beta+n[4])*beta + n[7]

	disc := bb*bb - 4*a*c
	if disc < 0 {
		return 0, errs.DataCorruption("region4: negative radicand solving saturation temperature at p=%gbar", pBar)
	}
	theta := 2 * c / (-bb - math.Sqrt(disc))

	tt := n[9] + theta
	inner := tt*tt - 4*(n[8]+n[9]*theta)
	if inner < 0 {
		return 0, errs.DataCorruption("region4: negative radicand de-scaling saturation temperature at p=%gbar", pBar)
	}
	return 0.5 * (tt - math.Sqrt(inner)), nil
}

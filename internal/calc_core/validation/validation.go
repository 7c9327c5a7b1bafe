// Package validation checks property-query inputs against the domain
// IAPWS IF-97 actually covers before the numerical core ever runs,
// returning the same errs.ParameterError kind region classification does
// for out-of-range (T, p).
package validation

import (
	"github.com/vaporcore/if97/internal/calc_core/bundle"
	"github.com/vaporcore/if97/internal/calc_core/errs"
)

const (
	tMin = 273.15
	tMax = 2273.15
	pMin = 0.0
	pMax = 1000.0 // bar
)

// TemperaturePressure checks (tK, pBar) against IF-97's overall validity
// envelope (the precise per-region limits are enforced by
// classify.FromTP; this is the coarse check worth failing fast on).
func TemperaturePressure(tK, pBar float64) error {
	if tK < tMin || tK > tMax {
		return errs.Parameter("temperature %gK is outside IF-97's validity range [%g, %g]K", tK, tMin, tMax)
	}
	if pBar < pMin || pBar > pMax {
		return errs.Parameter("pressure %gbar is outside IF-97's validity range [%g, %g]bar", pBar, pMin, pMax)
	}
	return nil
}

// SaturationTemperature checks that tK lies within [Tt, Tc], the only
// range the saturation-pressure correlation (region 4) is defined on.
func SaturationTemperature(b *bundle.Bundle, tK float64) error {
	if tK < b.Tt {
		return errs.Parameter("saturation properties are not available below the triple point (%gK)", b.Tt)
	}
	if tK > b.Tc {
		return errs.Parameter("saturation properties are not available above the critical point (%gK)", b.Tc)
	}
	return nil
}

// SaturationPressure checks that pBar lies within [Pt, Pc], the only range
// the saturation-temperature correlation (region 4) is defined on.
func SaturationPressure(b *bundle.Bundle, pBar float64) error {
	if pBar < b.Pt {
		return errs.Parameter("saturation properties are not available below the triple point (%gbar)", b.Pt)
	}
	if pBar > b.Pc {
		return errs.Parameter("saturation properties are not available above the critical point (%gbar)", b.Pc)
	}
	return nil
}

// Quality checks that a vapor quality x lies in the physical [0, 1] range.
func Quality(x float64) error {
	if x < 0 || x > 1 {
		return errs.Parameter("vapor quality %g is outside the physical range [0, 1]", x)
	}
	return nil
}

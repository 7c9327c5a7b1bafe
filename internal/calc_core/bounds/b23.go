// Package bounds evaluates the IAPWS IF-97 region 2/3 boundary: the
// forward direction (pressure as a function of temperature) is a plain
// quadratic; the inverse (temperature as a function of pressure) is a
// direct square-root form, not a second quadratic solve — the teacher's
// implementation of this boundary inverts via the quadratic formula
// instead, which is not what the IF-97 equations define.
package bounds

import (
	"math"

	"github.com/vaporcore/if97/internal/calc_core/bundle"
)

// B23Pressure returns the region 2/3 boundary pressure (bar) at
// temperature tK (K).
func B23Pressure(b *bundle.Bundle, tK float64) float64 {
	n := b.B23
	pMPa := (n[2]*tK+n[1])*tK + n[0]
	return pMPa * 10
}

// B23Temperature returns the region 2/3 boundary temperature (K) at
// pressure pBar (bar).
func B23Temperature(b *bundle.Bundle, pBar float64) float64 {
	n := b.B23
	pMPa := pBar / 10
	return n[3] + math.Sqrt((pMPa-n[4])/n[2])
}

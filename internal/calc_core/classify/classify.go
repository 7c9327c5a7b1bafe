// Package classify identifies which IAPWS IF-97 region a (T, p) point
// falls in, following the standard decision table: region 5 above
// 1073.15 K, region 2 above the 863.15 K isotherm, the B23 boundary
// between regions 2 and 3 between 623.15 K and 863.15 K, and the
// saturation line between regions 1 and 2 below 623.15 K.
package classify

import (
	"github.com/vaporcore/if97/internal/calc_core/bounds"
	"github.com/vaporcore/if97/internal/calc_core/bundle"
	"github.com/vaporcore/if97/internal/calc_core/errs"
	"github.com/vaporcore/if97/internal/calc_core/region4"
)

// Region is which of IF-97's five regions a (T, p) point was classified
// into.
type Region int

const (
	Region1 Region = iota + 1
	Region2
	Region3
	Region4 // the saturation line itself; see FromTP
	Region5
)

// RegionInvalid marks an array element FromTP rejects: the classification
// vector r[i] in spec terms, r[i] in {1,2,3,5,-1}. FromTP itself never
// returns it — a scalar query fails immediately instead — but FromTPArray
// uses it to keep classifying the rest of a batch past one bad element.
const RegionInvalid Region = -1

const (
	t13  = 623.15
	t32  = 863.15
	t25  = 1073.15
	tMin = 273.15
	tMax = 2273.15
	pMax = 1000.0 // bar
	p5Max = 500.0 // bar
)

// FromTP classifies temperature tK (K) and pressure pBar (bar) into one of
// regions 1, 2, 3, or 5. Region4 is never returned here — the saturation
// line is a measure-zero boundary a (T,p) classifier cannot land on
// exactly; callers asking about saturation state call region4 directly.
func FromTP(b *bundle.Bundle, tK, pBar float64) (Region, error) {
	if pBar < 0 {
		return 0, errs.Parameter("pressure must be non-negative, got %g bar", pBar)
	}
	if tK > tMax {
		return 0, errs.Parameter("temperature %gK exceeds the IF-97 validity ceiling of %gK", tK, tMax)
	}
	if tK < tMin {
		return 0, errs.Parameter("temperature %gK is below the IF-97 validity floor of %gK", tK, tMin)
	}

	if tK > t25 {
		if pBar > p5Max {
			return 0, errs.Parameter("pressure %gbar exceeds region 5's %gbar ceiling at T=%gK", pBar, p5Max, tK)
		}
		return Region5, nil
	}
	if pBar > pMax {
		return 0, errs.Parameter("pressure %gbar exceeds the IF-97 validity ceiling of %gbar", pBar, pMax)
	}
	if tK > t32 {
		return Region2, nil
	}
	if tK > t13 {
		if pBar < bounds.B23Pressure(b, tK) {
			return Region2, nil
		}
		return Region3, nil
	}

	ps, err := region4.SaturationPressure(b, tK)
	if err != nil {
		return 0, err
	}
	if pBar < ps {
		return Region2, nil
	}
	return Region1, nil
}

// Masks holds, for one batched (T,p) array, the index of every element
// landing in each region — the "per-region boolean index masks used for
// batched dispatch" the core's derived scratch carries (expressed as index
// lists rather than bitmasks, which is what a caller needs to slice the
// original arrays and scatter results back). A façade walks one mask at a
// time, evaluating that region's EOS once per batch instead of branching
// per element.
type Masks struct {
	Region1 []int
	Region2 []int
	Region3 []int
	Region5 []int
}

// FromTPArray classifies every (tKs[i], pBars[i]) pair exactly as FromTP
// does, elementwise, without stopping at the first invalid element: regions
// holds the full per-element classification vector (RegionInvalid where
// FromTP would have errored), and masks partitions the valid elements by
// region for batched dispatch. If any element failed to classify, err
// reports the first such failure (by index) and the caller gets both the
// partial classification and the error — the façade's array entry points
// treat this the same as a scalar parameter error: reported, no partial
// result returned to the caller above them.
func FromTPArray(b *bundle.Bundle, tKs, pBars []float64) (regions []Region, masks Masks, err error) {
	if len(tKs) != len(pBars) {
		return nil, Masks{}, errs.Parameter("classify: T and p arrays have mismatched lengths (%d vs %d)", len(tKs), len(pBars))
	}

	regions = make([]Region, len(tKs))
	for i := range tKs {
		r, e := FromTP(b, tKs[i], pBars[i])
		if e != nil {
			regions[i] = RegionInvalid
			if err == nil {
				err = errs.Parameter("classify: element %d (T=%g, p=%g): %v", i, tKs[i], pBars[i], e)
			}
			continue
		}
		regions[i] = r
		switch r {
		case Region1:
			masks.Region1 = append(masks.Region1, i)
		case Region2:
			masks.Region2 = append(masks.Region2, i)
		case Region3:
			masks.Region3 = append(masks.Region3, i)
		case Region5:
			masks.Region5 = append(masks.Region5, i)
		}
	}
	return regions, masks, err
}

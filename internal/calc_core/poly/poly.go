// Package poly evaluates the sparse bivariate polynomials that back every
// IAPWS IF-97 fundamental equation: a single pass over a term list yields
// the function value together with its first and second partial
// derivatives, with no intermediate allocation.
package poly

import (
	"fmt"
	"math"
)

// largestExponent bounds the x/y exponents a term list may carry. Walking
// past it means the term list is corrupted (unsorted, duplicated, or
// otherwise not the structural invariant Eval depends on) rather than a
// legitimate polynomial, so Eval fails instead of looping forever.
const largestExponent = 100

// Term is one entry c*x^M*y^N of a sparse bivariate polynomial.
type Term struct {
	M int
	N int
	C float64
}

// CorruptTermsError reports a term list that violates the structural
// invariant Eval requires: sorted ascending by (M, N), with no exponent
// magnitude beyond largestExponent.
type CorruptTermsError struct {
	Detail string
}

func (e *CorruptTermsError) Error() string {
	return fmt.Sprintf("poly: corrupt term list: %s", e.Detail)
}

// Order selects how many derivative orders Eval computes. Evaluating fewer
// derivatives is cheaper, so callers that only need the function value (the
// backward T-solvers) or the value and gradient (most property evaluators)
// should ask for exactly what they need.
type Order int

const (
	// OrderValue computes only p.
	OrderValue Order = 0
	// OrderGradient computes p, px, py.
	OrderGradient Order = 1
	// OrderHessian computes p and all first and second partials.
	OrderHessian Order = 2
)

// Eval evaluates sum(c_i * x^m_i * y^n_i) over terms, returning the value
// and, depending on order, its partial derivatives in x and y.
//
// terms must be sorted ascending by (M, N): M non-decreasing, and N
// non-decreasing within a run of equal M. This is the order the IAPWS-IF97
// tables are themselves published in, and Eval walks the list from the tail
// backward exactly as that ordering requires — see the Horner-on-both-axes
// walk below. Derivatives beyond order are left at zero, not computed.
func Eval(x, y float64, terms []Term, order Order) (p, px, py, pxx, pxy, pyy float64, err error) {
	if len(terms) == 0 {
		return 0, 0, 0, 0, 0, 0, nil
	}

	idx := len(terms) - 1
	m := terms[idx].M
	if m > largestExponent {
		return 0, 0, 0, 0, 0, 0, &CorruptTermsError{Detail: fmt.Sprintf("x-exponent %d exceeds %d", m, largestExponent)}
	}

	for idx >= 0 {
		var q, dq, ddq float64

		if terms[idx].M == m {
			n := terms[idx].N
			if n > largestExponent {
				return 0, 0, 0, 0, 0, 0, &CorruptTermsError{Detail: fmt.Sprintf("y-exponent %d exceeds %d", n, largestExponent)}
			}

			for idx >= 0 && terms[idx].M == m {
				if n == terms[idx].N {
					if order > OrderGradient {
						ddq = ddq*y + 2*dq
					}
					if order > OrderValue {
						dq = dq*y + q
					}
					q = q*y + terms[idx].C
					idx--
				} else {
					if order > OrderGradient {
						ddq = ddq*y + 2*dq
					}
					if order > OrderValue {
						dq = dq*y + q
					}
					q *= y
				}
				n--
				if n < -largestExponent {
					return 0, 0, 0, 0, 0, 0, &CorruptTermsError{Detail: "y-exponent run underflowed; term list is not sorted"}
				}
			}
			n++

			if n != 0 {
				var ddyn, dyn, yn float64
				if n == 1 {
					ddyn, dyn, yn = 0, 1, y
				} else {
					ddyn = math.Pow(y, float64(n-2))
					dyn = ddyn * y
					yn = dyn * y
					dyn *= float64(n)
					ddyn *= float64((n - 1) * n)
				}
				if order > OrderGradient {
					ddq = ddq*yn + 2*dq*dyn + q*ddyn
				}
				if order > OrderValue {
					dq = q*dyn + dq*yn
				}
				q *= yn
			}

			if order > OrderGradient {
				pyy = pyy*x + ddq
				pxy = pxy*x + py
				pxx = pxx*x + 2*px
			}
			if order > OrderValue {
				py = py*x + dq
				px = px*x + p
			}
			p = p*x + q
		} else {
			if order > OrderGradient {
				pyy *= x
				pxy = pxy*x + py
				pxx = pxx*x + 2*px
			}
			if order > OrderValue {
				py *= x
				px = px*x + p
			}
			p *= x
		}

		m--
		if m < -largestExponent {
			return 0, 0, 0, 0, 0, 0, &CorruptTermsError{Detail: "x-exponent run underflowed; term list is not sorted"}
		}
	}
	m++

	if m != 0 {
		var ddxm, dxm, xm float64
		if m == 1 {
			ddxm, dxm, xm = 0, 1, x
		} else {
			ddxm = math.Pow(x, float64(m-2))
			dxm = ddxm * x
			xm = dxm * x
			dxm *= float64(m)
			ddxm *= float64((m - 1) * m)
		}
		if order > OrderGradient {
			pxx = pxx*xm + 2*px*dxm + p*ddxm
			pxy = pxy*xm + py*dxm
			pyy *= xm
		}
		if order > OrderValue {
			px = px*xm + p*dxm
			py *= xm
		}
		p *= xm
	}

	return p, px, py, pxx, pxy, pyy, nil
}

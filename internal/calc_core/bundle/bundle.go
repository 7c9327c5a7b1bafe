// Package bundle holds the IAPWS IF-97 coefficient data the region
// evaluators consume: scalar constants (gas constant, critical and triple
// points, molar mass) and the sparse polynomial term lists for every
// region's fundamental equation and backward correlation.
//
// The data is compiled in as Go literals rather than parsed at runtime
// (compare the teacher's CSV+go:embed approach) since the table shapes
// never change across a process lifetime and a literal slice is both
// simpler and cheaper to construct.
package bundle

import "github.com/vaporcore/if97/internal/calc_core/poly"

// Bundle is the full set of constants and term tables the region
// evaluators need. It is built once by New and never mutated afterward;
// every field is read-only in practice even though Go cannot enforce that
// at the type level.
type Bundle struct {
	R  float64 // specific gas constant, kJ/(kg*K)
	Mw float64 // molecular weight, kg/kmol
	Tc float64 // critical temperature, K
	Pc float64 // critical pressure, bar
	Dc float64 // critical density, kg/m^3
	Tt float64 // triple-point temperature, K
	Pt float64 // triple-point pressure, bar

	R1  []poly.Term // region 1 Gibbs energy
	Th1 []poly.Term // region 1 backward T(p,h)
	Ts1 []poly.Term // region 1 backward T(p,s)

	R2o []poly.Term // region 2 ideal-gas Gibbs energy
	R2r []poly.Term // region 2 residual Gibbs energy

	Th2a []poly.Term // region 2a backward T(p,h)
	Th2b []poly.Term // region 2b backward T(p,h)
	Th2c []poly.Term // region 2c backward T(p,h)
	Ts2a []poly.Term // region 2a backward T(p,s)
	Ts2b []poly.Term // region 2b backward T(p,s)
	Ts2c []poly.Term // region 2c backward T(p,s)

	R3   []poly.Term // region 3 Helmholtz energy, polynomial part
	R3Ln float64     // region 3 Helmholtz energy, ln(delta) coefficient

	R5o []poly.Term // region 5 ideal-gas Gibbs energy
	R5r []poly.Term // region 5 residual Gibbs energy

	R4 [10]float64 // region 4 saturation-line coefficients
	B23 [5]float64 // region 2/3 boundary coefficients
}

// New builds the bundle IF-97 (1997, revised 2007) specifies. It is
// exported as a function rather than a package-level var so callers who
// never touch the numerical core never pay for initializing it.
func New() *Bundle {
	return &Bundle{
		R:  0.461526,
		Mw: 18.015257,
		Tc: 647.096,
		Pc: 220.64,
		Dc: 322.0,
		Tt: 273.16,
		Pt: 0.00611657,

		R1:  region1Terms,
		Th1: backwardTh1Terms,
		Ts1: backwardTs1Terms,

		R2o: region2IdealTerms,
		R2r: region2ResidualTerms,

		Th2a: backwardTh2aTerms,
		Th2b: backwardTh2bTerms,
		Th2c: backwardTh2cTerms,
		Ts2a: backwardTs2aTerms,
		Ts2b: backwardTs2bTerms,
		Ts2c: backwardTs2cTerms,

		R3:   region3Terms,
		R3Ln: 1.0658070028513,

		R5o: region5IdealTerms,
		R5r: region5ResidualTerms,

		R4: [10]float64{
			0.11670521452767e4, -0.72421316703206e6, -0.17073846940092e2,
			0.12020824702470e5, -0.32325550322333e7, 0.14915108613530e2,
			-0.48232657361591e4, 0.40511340542057e6, -0.23855557567849,
			0.65017534844798e3,
		},
		B23: [5]float64{
			0.34805185628969e3, -0.11671859879975e1, 0.10192970039326e-2,
			0.57254459862746e3, 0.13918839778870e2,
		},
	}
}

// Package errs defines the three error kinds the IF-97 core raises
// (parameter errors, convergence failures, and data corruption), built on
// github.com/cpmech/gosl/chk for message construction.
package errs

import "github.com/cpmech/gosl/chk"

// ParameterError reports an input outside the domain the core can
// evaluate: a negative pressure, a temperature below the triple point, a
// saturation query above the critical point, and so on.
type ParameterError struct {
	msg string
}

func (e *ParameterError) Error() string { return e.msg }

// Parameter builds a ParameterError from a format string, following
// gosl/chk's Err idiom for message construction.
func Parameter(format string, args ...interface{}) error {
	return &ParameterError{msg: chk.Err(format, args...).Error()}
}

// ConvergenceError reports a Newton iteration (region 3's density solve,
// or either of its backward (h,p)/(s,p) solves) that failed to reach the
// required tolerance within the iteration budget.
type ConvergenceError struct {
	msg string
	// Hint, when non-empty, names a likely cause a caller can act on —
	// e.g. a region misclassification suggested by comparing the target
	// enthalpy against the region 2/3 boundary enthalpy at the same
	// pressure. Empty when no better guess is available.
	Hint string
}

func (e *ConvergenceError) Error() string {
	if e.Hint == "" {
		return e.msg
	}
	return e.msg + " (" + e.Hint + ")"
}

// Convergence builds a ConvergenceError, optionally attaching hint as a
// diagnostic for the caller.
func Convergence(hint string, format string, args ...interface{}) error {
	return &ConvergenceError{msg: chk.Err(format, args...).Error(), Hint: hint}
}

// DataCorruptionError reports an internal invariant violation in a
// coefficient table: one of poly.Eval's exponent sanity checks tripped,
// which can only happen if a term list was built or edited incorrectly.
type DataCorruptionError struct {
	msg string
}

func (e *DataCorruptionError) Error() string { return e.msg }

// DataCorruption builds a DataCorruptionError.
func DataCorruption(format string, args ...interface{}) error {
	return &DataCorruptionError{msg: chk.Err(format, args...).Error()}
}

// AccuracyWarning is a non-fatal advisory: IAPWS IF-97 itself states that
// saturation-line properties lose precision above 623.15 K. It is returned
// alongside a successful result, never logged (the core performs no I/O),
// so callers can surface or ignore it as they see fit.
type AccuracyWarning struct {
	msg string
}

func (w *AccuracyWarning) Error() string { return w.msg }

// ReducedAccuracy builds the standard saturation-line accuracy warning.
func ReducedAccuracy() *AccuracyWarning {
	return &AccuracyWarning{msg: "saturation-line accuracy is reduced above 623.15 K"}
}

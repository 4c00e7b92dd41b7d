package pricing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// stdNormal is the N(0,1) distribution shared by the CDF/PDF helpers.
// distuv distributions are plain value types, safe for concurrent use.
var stdNormal = distuv.UnitNormal

// NormCDF returns Phi(x), the probability that a standard normal variable
// is <= x. Accurate to better than 1e-9 over (-10, 10); beyond that the
// result saturates to 0 or 1 within floating-point precision.
// Non-finite input yields a DomainError.
func NormCDF(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, &DomainError{Op: "NormCDF", Value: x}
	}
	return stdNormal.CDF(x), nil
}

// NormPDF returns phi(x), the standard normal density at x.
// Non-finite input yields a DomainError.
func NormPDF(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, &DomainError{Op: "NormPDF", Value: x}
	}
	return stdNormal.Prob(x), nil
}

// Unchecked variants for internal use once inputs have been validated.
func normCDF(x float64) float64 { return stdNormal.CDF(x) }
func normPDF(x float64) float64 { return stdNormal.Prob(x) }

// Package stats implements the significance tests applied to observed
// cluster-hit counts: one-proportion z-test, chi-square goodness of fit,
// Cohen's h effect size, and significance banding.
package stats

import "math"

// epsilon below which a standard error or expected cell is treated as
// degenerate. Degenerate inputs yield a neutral 0 rather than NaN/Inf.
const epsilon = 1e-15

// NormCDF is the standard normal cumulative distribution function, computed
// with the Abramowitz & Stegun 26.2.17 rational approximation. Outside ±8
// the result is clamped to 0 or 1; the approximation is unreliable there and
// the true tail mass is negligible.
func NormCDF(x float64) float64 {
	if x < -8.0 {
		return 0.0
	}
	if x > 8.0 {
		return 1.0
	}
	neg := x < 0
	if neg {
		x = -x
	}
	t := 1.0 / (1.0 + 0.2316419*x)
	b := t
	q := 0.319381530 * t
	b *= t
	q += -0.356563782 * b
	b *= t
	q += 1.781477937 * b
	b *= t
	q += -1.821255978 * b
	b *= t
	q += 1.330274429 * b
	s := q * math.Exp(-0.5*x*x) * 0.3989422804014327
	if neg {
		return s
	}
	return 1.0 - s
}

// ZTest returns the z statistic for an observed proportion against the
// baseline proportion p0. A non-positive total or a degenerate standard
// error (p0 of 0 or 1) yields 0.
func ZTest(observed, total int, p0 float64) float64 {
	if total <= 0 {
		return 0.0
	}
	pHat := float64(observed) / float64(total)
	se := math.Sqrt(p0 * (1.0 - p0) / float64(total))
	if se < epsilon {
		return 0.0
	}
	return (pHat - p0) / se
}

// PValue is the one-sided p-value for a z statistic.
func PValue(z float64) float64 {
	return 1.0 - NormCDF(z)
}

// ChiSquare is the two-category (hit vs. non-hit) goodness-of-fit statistic
// against baseline proportion p0. Returns 0 when either expected cell is
// degenerate.
func ChiSquare(observed, total int, p0 float64) float64 {
	eHit := float64(total) * p0
	eNon := float64(total) * (1.0 - p0)
	if eHit < epsilon || eNon < epsilon {
		return 0.0
	}
	oHit := float64(observed)
	oNon := float64(total - observed)
	return (oHit-eHit)*(oHit-eHit)/eHit + (oNon-eNon)*(oNon-eNon)/eNon
}

// CohensH is the arcsine-transformed effect size for the difference between
// two proportions. Unlike a raw difference it behaves sensibly near 0 and 1.
func CohensH(p1, p2 float64) float64 {
	return math.Abs(2.0*math.Asin(math.Sqrt(p1)) - 2.0*math.Asin(math.Sqrt(p2)))
}

// Significance returns the conventional marker for a one-sided p-value:
// "***" below 0.001, "**" below 0.01, "*" below 0.05, otherwise "".
func Significance(p float64) string {
	switch {
	case p < 0.001:
		return "***"
	case p < 0.01:
		return "**"
	case p < 0.05:
		return "*"
	default:
		return ""
	}
}

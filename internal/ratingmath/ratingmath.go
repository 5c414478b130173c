// Package ratingmath collects the pure numerical functions shared by the
// competitor variants: the logistic expected score, the Glicko g-function,
// the ECF linear score, and the DWZ development coefficient schedule.
// Nothing here holds state; every function is safe to call concurrently.
package ratingmath

import "math"

// Logistic400 returns the classic Elo/DWZ expected score of a competitor
// rated ra against one rated rb, on the standard 400-point scale:
// 1 / (1 + 10^((rb-ra)/400)).
func Logistic400(ra, rb float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (rb-ra)/400.0))
}

// GlickoQ is q = ln(10)/400, the constant the Glicko papers use to convert
// between the 1500-scale rating and the internal logistic scale.
const GlickoQ = math.Ln10 / 400.0

// GFunction attenuates the influence of an opponent's expected score by
// their rating deviation: g(RD) = 1 / sqrt(1 + 3*q^2*RD^2/pi^2).
func GFunction(rd float64) float64 {
	return 1.0 / math.Sqrt(1.0+3.0*GlickoQ*GlickoQ*rd*rd/(math.Pi*math.Pi))
}

// GlickoExpected returns the Glicko-1 expected score of a competitor
// rated ra against one rated rb with rating deviation rdb:
// 1 / (1 + 10^(-g(rdb)*(ra-rb)/400)).
func GlickoExpected(ra, rb, rdb float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, -GFunction(rdb)*(ra-rb)/400.0))
}

// ECFLinear returns the ECF's linear expected score: 0.5 + (ra-rb)/f,
// clamped to [0,1]. f defaults to 120 in the ECF competitor.
func ECFLinear(ra, rb, f float64) float64 {
	return Clamp(0.5+(ra-rb)/f, 0, 1)
}

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// DWZDevelopmentCoefficient reproduces the Deutsche Wertungszahl
// development-coefficient schedule: a rating-dependent base E0, a
// low-rating bonus B for ratings under 1300, and an experience clamp
// driven by the effective match count n. j is the DWZ constant (10 in
// the published tables).
func DWZDevelopmentCoefficient(rating float64, n int, j float64) float64 {
	e0 := math.Pow(rating/1000.0, 4) + j
	a := Clamp(rating/2000.0, 0.5, 1.0)

	var b float64
	if rating < 1300 {
		b = math.Exp((1300-rating)/150.0) - 1
	}

	e := math.Floor(a*e0 + b)
	if b == 0 {
		// Mirrors max(5, min(E, min(30, 5*n))): with few games the
		// upper bound collapses below 5 and the floor wins outright.
		upper := math.Min(30, 5*float64(n))
		return math.Max(5, math.Min(e, upper))
	}
	return math.Max(5, math.Min(e, 150))
}

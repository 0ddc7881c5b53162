package transforms

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

const (
	twoPi    = 2 * math.Pi
	radToDeg = 180 / math.Pi
	degToRad = math.Pi / 180
)

// QToTTH converts scattering vector magnitudes to two-theta angles in
// degrees via tth = 2*asin(q*lambda/(4*pi)).
//
// Without a wavelength it emits [NoticeMissingWavelength] and returns the
// index axis [0, 1, ..., n-1]. A q/wavelength combination whose two-theta
// leaves [0, 180] fails with [ErrImpossibleTwoTheta]; either the whole array
// converts or nothing is returned.
func QToTTH(q []float64, wl Wavelength, opts ...Option) ([]float64, error) {
	if len(q) == 0 {
		return []float64{}, nil
	}

	lambda, ok := wl.Value()
	if !ok {
		cfg := applyOptions(opts...)
		cfg.emit(Notice{Code: NoticeMissingWavelength, Message: missingWavelengthMsg})
		return indexAxis(len(q)), nil
	}

	tth := make([]float64, len(q))
	vecmath.ScaleBlock(tth, q, lambda/CanonicalWavelength)
	for i, v := range tth {
		tth[i] = 2 * math.Asin(v) * radToDeg
	}

	if err := checkDerivedTwoTheta(tth); err != nil {
		return nil, err
	}

	return tth, nil
}

// TTHToQ converts two-theta angles in degrees to scattering vector
// magnitudes via q = (4*pi/lambda)*sin(tth/2).
//
// Every input angle must be at most 180 degrees; a larger value fails with
// [ErrTwoThetaRange] before any computation. Without a wavelength it emits
// [NoticeMissingWavelength] and returns the index axis.
func TTHToQ(tth []float64, wl Wavelength, opts ...Option) ([]float64, error) {
	if len(tth) == 0 {
		return []float64{}, nil
	}

	if err := validateTwoTheta(tth); err != nil {
		return nil, err
	}

	lambda, ok := wl.Value()
	if !ok {
		cfg := applyOptions(opts...)
		cfg.emit(Notice{Code: NoticeMissingWavelength, Message: missingWavelengthMsg})
		return indexAxis(len(tth)), nil
	}

	q := make([]float64, len(tth))
	for i, v := range tth {
		q[i] = math.Sin(v / 2 * degToRad)
	}
	vecmath.ScaleBlock(q, q, CanonicalWavelength/lambda)

	return q, nil
}

// QToD converts scattering vector magnitudes to interplanar spacings via
// d = 2*pi/q. A zero element maps to +Inf.
func QToD(q []float64) []float64 {
	return reciprocal(q)
}

// DToQ converts interplanar spacings to scattering vector magnitudes via
// q = 2*pi/d. A zero element maps to +Inf.
func DToQ(d []float64) []float64 {
	return reciprocal(d)
}

// TTHToD converts two-theta angles in degrees to interplanar spacings by
// composing [TTHToQ] and [QToD]. Validation and notices follow the
// constituent functions, with the advisory emitted at most once per call.
func TTHToD(tth []float64, wl Wavelength, opts ...Option) ([]float64, error) {
	q, err := TTHToQ(tth, wl, opts...)
	if err != nil {
		return nil, err
	}

	// Without a wavelength TTHToQ already degraded to the index axis.
	if !wl.Present() {
		return q, nil
	}

	return QToD(q), nil
}

// DToTTH converts interplanar spacings to two-theta angles in degrees by
// composing [DToQ] and [QToTTH]. Validation and notices follow the
// constituent functions, with the advisory emitted at most once per call.
func DToTTH(d []float64, wl Wavelength, opts ...Option) ([]float64, error) {
	return QToTTH(DToQ(d), wl, opts...)
}

// indexAxis is the degraded independent variable used when no wavelength is
// available: the sample index stands in for the physical quantity.
func indexAxis(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func reciprocal(in []float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = twoPi / v
	}
	return out
}

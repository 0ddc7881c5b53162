package transforms

import "math"

// CanonicalWavelength is the wavelength, in angstroms, at which the q/tth
// prefactor 4*pi/lambda collapses to one.
const CanonicalWavelength = 4 * math.Pi

// Wavelength is an optional probe wavelength in angstroms. The zero value is
// absent; absence is legal input for every conversion and degrades the result
// to the sample index axis instead of failing.
type Wavelength struct {
	value float64
	set   bool
}

// NewWavelength returns a present wavelength of v angstroms.
func NewWavelength(v float64) Wavelength {
	return Wavelength{value: v, set: true}
}

// Value returns the wavelength and whether it is present.
func (w Wavelength) Value() (float64, bool) {
	return w.value, w.set
}

// Present reports whether a wavelength has been specified.
func (w Wavelength) Present() bool {
	return w.set
}

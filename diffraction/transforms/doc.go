// Package transforms converts between the standard representations of
// diffraction scattering geometry: scattering vector magnitude q (inverse
// angstroms), two-theta scattering angle tth (degrees), and interplanar
// spacing d (angstroms).
//
// All six conversions are pure functions over float64 slices. They never
// mutate their input and hold no state, so they are safe for concurrent use.
// Empty input always yields empty output with no validation performed.
//
// The angle-based conversions need a probe wavelength. [Wavelength] is an
// optional value; when it is absent the functions emit a one-time advisory
// [Notice] and fall back to the sample index axis instead of failing, so a
// data object without a calibrated wavelength stays usable.
//
// Common workflows:
//
//	tth, err := transforms.QToTTH(q, transforms.NewWavelength(1.54))
//	d := transforms.QToD(q)
//	q, err := transforms.TTHToQ(tth, transforms.Wavelength{},
//	    transforms.WithNoticeFunc(capture))
package transforms

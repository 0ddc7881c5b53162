package transforms

import (
	"errors"
	"math"
)

var (
	// ErrTwoThetaRange indicates an input two-theta value above 180 degrees.
	ErrTwoThetaRange = errors.New(
		"Two theta exceeds 180 degrees. Please check the input values for errors.")

	// ErrImpossibleTwoTheta indicates a q or d array whose derived two-theta
	// falls outside [0, 180] degrees for the given wavelength.
	ErrImpossibleTwoTheta = errors.New(
		"The supplied input array and wavelength will result in an impossible two-theta. " +
			"Please check these values and re-instantiate the DiffractionObject with correct values.")
)

func validateTwoTheta(tth []float64) error {
	for _, v := range tth {
		if v > 180 {
			return ErrTwoThetaRange
		}
	}
	return nil
}

// checkDerivedTwoTheta is the whole-array post-condition applied after an
// elementwise transform that produces two-theta. NaN covers arcsine domain
// violations. Either the full array is valid or the call fails.
func checkDerivedTwoTheta(tth []float64) error {
	for _, v := range tth {
		if math.IsNaN(v) || v > 180 {
			return ErrImpossibleTwoTheta
		}
	}
	return nil
}

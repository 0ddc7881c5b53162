package resample

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrTooFewSamples indicates a sample grid with fewer than two points.
	ErrTooFewSamples = errors.New("resample: need at least two sample points")
	// ErrLengthMismatch indicates sample grid and values of different length.
	ErrLengthMismatch = errors.New("resample: sample grid and values must have same length")
	// ErrInvalidGrid indicates invalid target grid bounds or point count.
	ErrInvalidGrid = errors.New("resample: invalid grid bounds or point count")
)

type config struct {
	left     float64
	right    float64
	hasLeft  bool
	hasRight bool
}

// Option configures interpolation behavior.
type Option func(*config)

// WithLeft sets the value returned for points below the sampled range.
// The default is the first sample value.
func WithLeft(v float64) Option {
	return func(c *config) {
		c.left = v
		c.hasLeft = true
	}
}

// WithRight sets the value returned for points above the sampled range.
// The default is the last sample value.
func WithRight(v float64) Option {
	return func(c *config) {
		c.right = v
		c.hasRight = true
	}
}

func applyOptions(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Wsinterp interpolates fp, sampled on the uniform grid xp, onto the grid x
// using the Whittaker-Shannon sinc kernel. It returns a new slice of the same
// length as x. Points outside [xp[0], xp[len-1]] clamp to the edge values
// unless overridden by options.
func Wsinterp(x, xp, fp []float64, opts ...Option) ([]float64, error) {
	if err := validateSamples(xp, fp); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts...)
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out, nil
	}

	step := xp[1] - xp[0]
	weights := make([]float64, len(xp))
	for i, t := range x {
		if v, ok := clampEdge(t, xp, fp, cfg); ok {
			out[i] = v
			continue
		}
		fillSincWeights(weights, t, xp, step)
		out[i] = floats.Dot(weights, fp)
	}

	return out, nil
}

// WsinterpAt interpolates a single point; see [Wsinterp].
func WsinterpAt(t float64, xp, fp []float64, opts ...Option) (float64, error) {
	if err := validateSamples(xp, fp); err != nil {
		return 0, err
	}

	cfg := applyOptions(opts...)
	if v, ok := clampEdge(t, xp, fp, cfg); ok {
		return v, nil
	}

	step := xp[1] - xp[0]
	weights := make([]float64, len(xp))
	fillSincWeights(weights, t, xp, step)
	return floats.Dot(weights, fp), nil
}

// Grid returns n points spanning [min, max] inclusive.
func Grid(min, max float64, n int) ([]float64, error) {
	if n < 2 || !(max > min) {
		return nil, ErrInvalidGrid
	}
	return floats.Span(make([]float64, n), min, max), nil
}

// Resample builds an n-point grid over [xmin, xmax] and interpolates the
// sampled data (xp, fp) onto it, returning the grid and the interpolated
// values.
func Resample(xp, fp []float64, xmin, xmax float64, n int, opts ...Option) ([]float64, []float64, error) {
	grid, err := Grid(xmin, xmax, n)
	if err != nil {
		return nil, nil, err
	}
	out, err := Wsinterp(grid, xp, fp, opts...)
	if err != nil {
		return nil, nil, err
	}
	return grid, out, nil
}

func validateSamples(xp, fp []float64) error {
	if len(xp) != len(fp) {
		return ErrLengthMismatch
	}
	if len(xp) < 2 {
		return ErrTooFewSamples
	}
	return nil
}

func clampEdge(t float64, xp, fp []float64, cfg config) (float64, bool) {
	if t < xp[0] {
		if cfg.hasLeft {
			return cfg.left, true
		}
		return fp[0], true
	}
	if t > xp[len(xp)-1] {
		if cfg.hasRight {
			return cfg.right, true
		}
		return fp[len(fp)-1], true
	}
	return 0, false
}

func fillSincWeights(dst []float64, t float64, xp []float64, step float64) {
	for j, xj := range xp {
		dst[j] = sinc((t - xj) / step)
	}
}

// sinc is the normalized kernel sin(pi*x)/(pi*x).
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}
